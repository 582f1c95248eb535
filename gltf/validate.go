package gltf

import (
	gv "github.com/gogltf/validator"
)

// ReportFunc receives validation findings during a traversal. The sink is
// invoked strictly sequentially; a traversal never signals success or
// failure by any other means.
type ReportFunc func(gv.Issue)

// Validator is implemented by every record type. Validate performs the
// record's local and child checks, reporting zero or more issues. It must
// never short-circuit: children are validated regardless of whether the
// parent's own checks fail, and vice versa, so one invocation always
// surfaces the complete set of findings in depth-first, left-to-right
// document order.
type Validator interface {
	Validate(root *Root, path Path, report ReportFunc)
}

// validateSlice validates each element at path[i], i ascending from 0.
func validateSlice[T Validator](items []T, root *Root, path Path, report ReportFunc) {
	for i := range items {
		items[i].Validate(root, path.ArrayIndex(i), report)
	}
}
