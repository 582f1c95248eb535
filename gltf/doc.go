// Package gltf defines the in-memory data model for the animation-bearing
// portion of a glTF 2.0 document, together with the cross-reference
// validation every record participates in.
//
// A document is decoded once into an immutable Root. Validation is a pure
// depth-first, left-to-right walk over that tree: each record implements
// Validator and reports its findings into a caller-supplied sink, never
// halting on the first violation. An index stored in a record is only a
// claim; whether it points at an existing element is decided here, against
// the length of the addressed collection.
//
// Bounds checks live with the nearest common ancestor of the referring
// field and the referenced collection. Animation owns the channel→sampler
// check because channel sampler indices are scoped to the animation's own
// sampler array; Root owns every document-scoped check (target→node,
// sampler→accessor, and so on).
package gltf
