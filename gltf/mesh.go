package gltf

// Primitive topology modes.
const (
	ModePoints        = 0
	ModeLines         = 1
	ModeLineLoop      = 2
	ModeLineStrip     = 3
	ModeTriangles     = 4
	ModeTriangleStrip = 5
	ModeTriangleFan   = 6
)

// Mesh is a set of primitives to be rendered.
type Mesh struct {
	// Primitives each define the geometry for one draw.
	Primitives []Primitive `json:"primitives"`

	// Weights are the weights to apply to the morph targets.
	Weights []float64 `json:"weights,omitempty"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate checks the mesh's primitives. Accessor indices inside them are
// document-scoped references checked by Root.
func (m Mesh) Validate(root *Root, path Path, report ReportFunc) {
	validateSlice(m.Primitives, root, path.Field("primitives"), report)
}

// Primitive is geometry to be rendered with a given material.
type Primitive struct {
	// Attributes maps attribute semantics ("POSITION", "NORMAL", ...) to
	// accessor indices.
	Attributes map[string]Index[Accessor] `json:"attributes"`

	// Indices optionally indexes the accessor holding vertex indices.
	Indices *Index[Accessor] `json:"indices,omitempty"`

	// Mode is the topology to render, e.g. ModeTriangles.
	Mode int `json:"mode,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate is a no-op: every reference a primitive holds is document
// scoped and checked by Root.
func (p Primitive) Validate(root *Root, path Path, report ReportFunc) {
}
