package gltf

import (
	"github.com/gogltf/validator/pool"
)

// segmentKind discriminates path segments.
type segmentKind uint8

const (
	segmentField segmentKind = iota
	segmentIndex
)

// segment is one step from the document root toward a value: either a
// field name or an array position.
type segment struct {
	kind  segmentKind
	field string
	index int
}

// Path is an immutable locator describing a position within the document
// tree. It exists purely for diagnostics and is never used to resolve
// anything.
//
// Field and ArrayIndex return new Path values and leave the receiver
// untouched, so sibling branches of a traversal never share or corrupt
// each other's location state.
type Path struct {
	segments []segment
}

// NewPath returns the empty path, addressing the document root.
func NewPath() Path {
	return Path{}
}

// Field returns a new path with a field-name segment appended.
func (p Path) Field(name string) Path {
	return p.append(segment{kind: segmentField, field: name})
}

// ArrayIndex returns a new path with an array-index segment appended.
func (p Path) ArrayIndex(i int) Path {
	return p.append(segment{kind: segmentIndex, index: i})
}

// append copies the segment slice so that two paths branched off the same
// parent never alias the same backing array.
func (p Path) append(s segment) Path {
	segments := make([]segment, len(p.segments)+1)
	copy(segments, p.segments)
	segments[len(p.segments)] = s
	return Path{segments: segments}
}

// IsRoot reports whether the path addresses the document root.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.segments)
}

// String renders the path as a dotted/bracketed locator, e.g.
// "animations[2].channels[0].sampler".
func (p Path) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	return pool.BuildPath(func(b *pool.PathBuilder) {
		for _, s := range p.segments {
			switch s.kind {
			case segmentField:
				b.AppendWithDot(s.field)
			case segmentIndex:
				b.AppendIndex(s.index)
			}
		}
	})
}
