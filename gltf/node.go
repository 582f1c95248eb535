package gltf

import (
	gv "github.com/gogltf/validator"
)

// Node is one element of the scene hierarchy.
type Node struct {
	// Children indexes the document-wide node collection.
	Children []Index[Node] `json:"children,omitempty"`

	// Mesh optionally indexes the document-wide mesh collection.
	Mesh *Index[Mesh] `json:"mesh,omitempty"`

	// Matrix is a column-major transformation matrix. Exclusive with the
	// TRS properties below.
	Matrix []float64 `json:"matrix,omitempty"`

	// Translation, Rotation and Scale are the TRS properties animation
	// channels target.
	Translation []float64 `json:"translation,omitempty"`
	Rotation    []float64 `json:"rotation,omitempty"`
	Scale       []float64 `json:"scale,omitempty"`

	// Weights are the morph target weights of the instantiated mesh.
	Weights []float64 `json:"weights,omitempty"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate checks that matrix and TRS properties are not both present.
// Children and mesh indices are document-scoped references checked by
// Root.
func (n Node) Validate(root *Root, path Path, report ReportFunc) {
	if len(n.Matrix) > 0 &&
		(len(n.Translation) > 0 || len(n.Rotation) > 0 || len(n.Scale) > 0) {
		report(gv.Error(gv.IssueTypeInvalid).
			Diagnostics("matrix is exclusive with translation/rotation/scale").
			At(path.Field("matrix").String()).
			Build())
	}
}
