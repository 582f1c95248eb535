package gltf

import (
	gv "github.com/gogltf/validator"
)

// Interpolation algorithms a sampler may name.
const (
	InterpolationLinear      = "LINEAR"
	InterpolationStep        = "STEP"
	InterpolationCubicSpline = "CUBICSPLINE"
)

// Node properties an animation channel may target.
const (
	PropertyTranslation = "translation"
	PropertyRotation    = "rotation"
	PropertyScale       = "scale"
	PropertyWeights     = "weights"
)

// Animation is a keyframe animation.
type Animation struct {
	// Channels each target one of this animation's samplers at a node
	// property. Different channels of the same animation must not have
	// equal targets.
	Channels []Channel `json:"channels"`

	// Samplers combine input and output accessors with an interpolation
	// algorithm to define a keyframe graph (but not its target).
	Samplers []Sampler `json:"samplers"`

	// Name is the optional user-defined name for this object.
	Name string `json:"name,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Channel targets an animation's sampler at a node's property.
type Channel struct {
	// Sampler indexes into the owning animation's sampler array, not the
	// document-wide accessor or sampler collections.
	Sampler Index[Sampler] `json:"sampler"`

	// Target is the node and property the sampler output drives.
	Target Target `json:"target"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Target is the node and property that an animation channel targets.
type Target struct {
	// Node indexes the document-wide node collection.
	Node Index[Node] `json:"node"`

	// Path names the node property to modify: "translation", "rotation",
	// "scale", or "weights" for the morph targets the node instantiates.
	Path string `json:"path"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Sampler defines a keyframe graph but not its target.
type Sampler struct {
	// Input indexes the accessor holding keyframe input values, e.g. time.
	Input Index[Accessor] `json:"input"`

	// Output indexes the accessor holding keyframe output values.
	Output Index[Accessor] `json:"output"`

	// Interpolation is the interpolation algorithm. Decoding defaults it
	// to "LINEAR" when the source omits the field.
	Interpolation string `json:"interpolation,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate checks the animation's children, then the one edge only the
// animation can see: each channel's sampler index against the length of
// the sibling sampler array. Channel sampler indices are scoped to this
// animation, which is why the check lives here and not in Channel.
func (a Animation) Validate(root *Root, path Path, report ReportFunc) {
	validateSlice(a.Samplers, root, path.Field("samplers"), report)
	validateSlice(a.Channels, root, path.Field("channels"), report)
	for i, channel := range a.Channels {
		if !channel.Sampler.InBounds(len(a.Samplers)) {
			loc := path.Field("channels").ArrayIndex(i).Field("sampler")
			report(gv.IndexOutOfBounds(loc.String()))
		}
	}
}

// Validate delegates to the channel's target. The channel performs no
// checks of its own: its one invariant, the sampler-index bound, belongs
// to the owning Animation.
func (c Channel) Validate(root *Root, path Path, report ReportFunc) {
	c.Target.Validate(root, path.Field("target"), report)
}

// Validate checks the target's property name. The node index is a
// document-scoped reference checked by Root.
func (t Target) Validate(root *Root, path Path, report ReportFunc) {
	switch t.Path {
	case PropertyTranslation, PropertyRotation, PropertyScale, PropertyWeights:
	default:
		report(gv.InvalidEnum(path.Field("path").String(), t.Path))
	}
}

// Validate checks the sampler's interpolation algorithm. Input and output
// accessor indices are document-scoped references checked by Root.
func (s Sampler) Validate(root *Root, path Path, report ReportFunc) {
	switch s.Interpolation {
	case InterpolationLinear, InterpolationStep, InterpolationCubicSpline:
	default:
		report(gv.InvalidEnum(path.Field("interpolation").String(), s.Interpolation))
	}
}
