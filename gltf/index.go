package gltf

// Index is a typed, non-owning reference into one specific collection of
// the document. The type parameter names the record kind the index
// addresses, so an Index[Node] and an Index[Accessor] are distinct types
// that cannot be mixed up or compared.
//
// Construction performs no bounds checking: only validation, which can see
// the addressed collection's length, decides whether an index resolves.
type Index[T any] uint32

// NewIndex creates an index addressing position i of the collection
// holding T records.
func NewIndex[T any](i uint32) Index[T] {
	return Index[T](i)
}

// Value returns the zero-based position this index addresses.
func (i Index[T]) Value() uint32 {
	return uint32(i)
}

// InBounds reports whether the index resolves against a collection of n
// elements.
func (i Index[T]) InBounds(n int) bool {
	return int(uint32(i)) < n
}
