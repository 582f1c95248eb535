package gltf

// Scene is a set of root nodes.
type Scene struct {
	// Nodes indexes the document-wide node collection.
	Nodes []Index[Node] `json:"nodes,omitempty"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate is a no-op: node indices are document-scoped references
// checked by Root.
func (s Scene) Validate(root *Root, path Path, report ReportFunc) {
}
