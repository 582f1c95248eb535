package gltf

import (
	gv "github.com/gogltf/validator"
)

// Component types an accessor may hold.
const (
	ComponentByte          = 5120
	ComponentUnsignedByte  = 5121
	ComponentShort         = 5122
	ComponentUnsignedShort = 5123
	ComponentUnsignedInt   = 5125
	ComponentFloat         = 5126
)

// Element types an accessor may hold.
const (
	TypeScalar = "SCALAR"
	TypeVec2   = "VEC2"
	TypeVec3   = "VEC3"
	TypeVec4   = "VEC4"
	TypeMat2   = "MAT2"
	TypeMat3   = "MAT3"
	TypeMat4   = "MAT4"
)

// Accessor describes a typed view of binary data: the keyframe times and
// values a sampler references are both accessors.
type Accessor struct {
	// BufferView indexes the document-wide buffer-view collection. Absent
	// means the data is all zeros until supplied by an extension.
	BufferView *Index[BufferView] `json:"bufferView,omitempty"`

	// ByteOffset is the offset into the buffer view in bytes.
	ByteOffset uint32 `json:"byteOffset,omitempty"`

	// ComponentType is the datatype of the components, e.g. ComponentFloat.
	ComponentType int `json:"componentType"`

	// Normalized specifies whether integer values are normalized.
	Normalized bool `json:"normalized,omitempty"`

	// Count is the number of elements referenced by this accessor.
	Count uint32 `json:"count"`

	// Type is the element shape, e.g. TypeVec3.
	Type string `json:"type"`

	// Min and Max bound the components of each element.
	Min []float64 `json:"min,omitempty"`
	Max []float64 `json:"max,omitempty"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate checks the accessor's local enum fields. The buffer-view index
// is a document-scoped reference checked by Root.
func (a Accessor) Validate(root *Root, path Path, report ReportFunc) {
	switch a.ComponentType {
	case ComponentByte, ComponentUnsignedByte, ComponentShort,
		ComponentUnsignedShort, ComponentUnsignedInt, ComponentFloat:
	default:
		report(gv.Error(gv.IssueTypeInvalidEnum).
			Diagnostics("invalid component type").
			At(path.Field("componentType").String()).
			Build())
	}

	switch a.Type {
	case TypeScalar, TypeVec2, TypeVec3, TypeVec4, TypeMat2, TypeMat3, TypeMat4:
	default:
		report(gv.InvalidEnum(path.Field("type").String(), a.Type))
	}
}
