// Package engine provides the whole-document glTF validator.
package engine

import (
	"context"
	"time"

	gv "github.com/gogltf/validator"
	"github.com/gogltf/validator/gltf"
	"github.com/gogltf/validator/pkg/logger"
)

// Validator validates complete glTF documents. It runs the depth-first
// cross-reference traversal rooted at gltf.Root and layers the optional
// whole-document checks (duplicate animation targets) on top.
type Validator struct {
	options *gv.Options
	metrics *gv.Metrics
}

// New creates a Validator with the given options.
func New(opts ...gv.Option) *Validator {
	options := gv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Validator{
		options: options,
		metrics: gv.NewMetrics(),
	}
}

// Options returns the validator's configuration.
func (v *Validator) Options() *gv.Options {
	return v.options
}

// Metrics returns the validator's metrics.
func (v *Validator) Metrics() *gv.Metrics {
	return v.metrics
}

// Validate runs a full validation pass over an already decoded document.
// The traversal never stops early: the result holds every finding of the
// run in depth-first, left-to-right document order. A result with zero
// issues means every cross-reference in the document is consistent.
//
// Release the result when done if pooling is enabled.
func (v *Validator) Validate(doc *gltf.Root) *gv.Result {
	start := time.Now()

	var result *gv.Result
	if v.options.EnablePooling {
		result = gv.AcquireResult()
		v.metrics.RecordPoolAcquire()
	} else {
		result = gv.NewResult()
	}

	recorded := 0
	report := func(issue gv.Issue) {
		if v.options.StrictMode && issue.Severity == gv.SeverityWarning {
			issue.Severity = gv.SeverityError
		}
		// The traversal always completes; MaxErrors only caps what the
		// result retains.
		if v.options.MaxErrors > 0 && recorded >= v.options.MaxErrors {
			return
		}
		result.AddIssue(issue)
		recorded++
	}

	doc.Validate(doc, gltf.NewPath(), report)
	if v.options.CheckDuplicateTargets {
		v.checkDuplicateTargets(doc, report)
	}

	elapsed := time.Since(start)
	v.metrics.RecordValidation(elapsed, result.Valid)
	v.metrics.RecordIssues(result.Issues)
	logger.Debug("validated document in %s: %d issue(s)", elapsed, len(result.Issues))

	return result
}

// ValidateBytes decodes a glTF JSON document and validates it. Decode
// failures are Go errors; validation findings are issues on the result.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte) (*gv.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := gltf.Decode(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(doc), nil
}

// animationTarget identifies what a channel drives.
type animationTarget struct {
	node     uint32
	property string
}

// checkDuplicateTargets reports channels of one animation addressing the
// same (node, property) pair. The format documents the rule but the core
// traversal does not enforce it, so it runs as a separate opt-in pass.
func (v *Validator) checkDuplicateTargets(doc *gltf.Root, report gltf.ReportFunc) {
	path := gltf.NewPath().Field("animations")
	for i, animation := range doc.Animations {
		seen := make(map[animationTarget]int, len(animation.Channels))
		for j, channel := range animation.Channels {
			target := animationTarget{
				node:     channel.Target.Node.Value(),
				property: channel.Target.Path,
			}
			if _, dup := seen[target]; dup {
				loc := path.ArrayIndex(i).Field("channels").ArrayIndex(j).Field("target")
				report(gv.DuplicateTarget(loc.String()))
				continue
			}
			seen[target] = j
		}
	}
}
