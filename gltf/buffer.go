package gltf

// Buffer points at a block of raw binary data.
type Buffer struct {
	// URI locates the data. Absent refers to the binary chunk of a
	// binary-container document.
	URI string `json:"uri,omitempty"`

	// ByteLength is the length of the buffer in bytes.
	ByteLength uint32 `json:"byteLength"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate is a no-op: a buffer holds no references into the document.
func (b Buffer) Validate(root *Root, path Path, report ReportFunc) {
}

// BufferView is a contiguous slice of a buffer.
type BufferView struct {
	// Buffer indexes the document-wide buffer collection.
	Buffer Index[Buffer] `json:"buffer"`

	// ByteOffset is the offset into the buffer in bytes.
	ByteOffset uint32 `json:"byteOffset,omitempty"`

	// ByteLength is the length of the view in bytes.
	ByteLength uint32 `json:"byteLength"`

	// ByteStride is the stride between elements, for vertex data only.
	ByteStride *uint32 `json:"byteStride,omitempty"`

	// Target is the intended GPU buffer type, e.g. 34962 (ARRAY_BUFFER).
	Target int `json:"target,omitempty"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate is a no-op: the buffer index is a document-scoped reference
// checked by Root.
func (v BufferView) Validate(root *Root, path Path, report ReportFunc) {
}
