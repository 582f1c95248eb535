package gltf

import (
	"slices"

	gv "github.com/gogltf/validator"
)

// Asset is the required metadata header of a document.
type Asset struct {
	// Version is the glTF version this document targets, e.g. "2.0".
	Version string `json:"version"`

	// MinVersion is the minimum glTF version support required.
	MinVersion string `json:"minVersion,omitempty"`

	// Generator names the tool that produced the document.
	Generator string `json:"generator,omitempty"`

	// Copyright is a copyright message suitable for display.
	Copyright string `json:"copyright,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate checks that the required version field is present.
func (a Asset) Validate(root *Root, path Path, report ReportFunc) {
	if a.Version == "" {
		report(gv.Error(gv.IssueTypeRequired).
			Diagnostics("missing required field").
			At(path.Field("version").String()).
			Build())
	}
}

// Root is the top-level container owning every indexable collection of a
// parsed document. It is constructed once at decode time and read-only
// during validation.
type Root struct {
	// Asset is the required metadata header.
	Asset Asset `json:"asset"`

	// Top-level collections. Every Index anywhere in the document
	// addresses one of these (or, for channel sampler indices, the
	// sampler array of the owning animation).
	Accessors   []Accessor   `json:"accessors,omitempty"`
	Animations  []Animation  `json:"animations,omitempty"`
	Buffers     []Buffer     `json:"buffers,omitempty"`
	BufferViews []BufferView `json:"bufferViews,omitempty"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
	Nodes       []Node       `json:"nodes,omitempty"`
	Scenes      []Scene      `json:"scenes,omitempty"`

	// Scene optionally indexes the scene to display on load.
	Scene *Index[Scene] `json:"scene,omitempty"`

	// Extras is optional application-specific data.
	Extras Extras `json:"extras,omitempty"`

	// Extensions is extension-specific data.
	Extensions Extensions `json:"extensions,omitempty"`
}

// Validate walks every collection depth-first, then performs the
// document-scoped cross-reference checks. Root owns these checks because
// it is the nearest ancestor with visibility of both the referring field
// and the referenced collection.
func (r *Root) Validate(root *Root, path Path, report ReportFunc) {
	r.Asset.Validate(root, path.Field("asset"), report)
	validateSlice(r.Accessors, root, path.Field("accessors"), report)
	validateSlice(r.Animations, root, path.Field("animations"), report)
	validateSlice(r.Buffers, root, path.Field("buffers"), report)
	validateSlice(r.BufferViews, root, path.Field("bufferViews"), report)
	validateSlice(r.Meshes, root, path.Field("meshes"), report)
	validateSlice(r.Nodes, root, path.Field("nodes"), report)
	validateSlice(r.Scenes, root, path.Field("scenes"), report)

	r.checkAccessors(path.Field("accessors"), report)
	r.checkAnimations(path.Field("animations"), report)
	r.checkBufferViews(path.Field("bufferViews"), report)
	r.checkMeshes(path.Field("meshes"), report)
	r.checkNodes(path.Field("nodes"), report)
	r.checkScenes(path.Field("scenes"), report)

	if r.Scene != nil && !r.Scene.InBounds(len(r.Scenes)) {
		report(gv.IndexOutOfBounds(path.Field("scene").String()))
	}
}

// checkAnimations bounds-checks the document-scoped references held by
// animation targets and samplers. The channel→sampler edge is not checked
// here: it is animation-scoped and belongs to Animation.Validate.
func (r *Root) checkAnimations(path Path, report ReportFunc) {
	for i, animation := range r.Animations {
		apath := path.ArrayIndex(i)
		for j, channel := range animation.Channels {
			if !channel.Target.Node.InBounds(len(r.Nodes)) {
				loc := apath.Field("channels").ArrayIndex(j).Field("target").Field("node")
				report(gv.IndexOutOfBounds(loc.String()))
			}
		}
		for j, sampler := range animation.Samplers {
			spath := apath.Field("samplers").ArrayIndex(j)
			if !sampler.Input.InBounds(len(r.Accessors)) {
				report(gv.IndexOutOfBounds(spath.Field("input").String()))
			}
			if !sampler.Output.InBounds(len(r.Accessors)) {
				report(gv.IndexOutOfBounds(spath.Field("output").String()))
			}
		}
	}
}

func (r *Root) checkAccessors(path Path, report ReportFunc) {
	for i, accessor := range r.Accessors {
		if accessor.BufferView != nil && !accessor.BufferView.InBounds(len(r.BufferViews)) {
			report(gv.IndexOutOfBounds(path.ArrayIndex(i).Field("bufferView").String()))
		}
	}
}

func (r *Root) checkBufferViews(path Path, report ReportFunc) {
	for i, view := range r.BufferViews {
		if !view.Buffer.InBounds(len(r.Buffers)) {
			report(gv.IndexOutOfBounds(path.ArrayIndex(i).Field("buffer").String()))
		}
	}
}

func (r *Root) checkMeshes(path Path, report ReportFunc) {
	for i, mesh := range r.Meshes {
		for j, primitive := range mesh.Primitives {
			ppath := path.ArrayIndex(i).Field("primitives").ArrayIndex(j)
			// Attribute order is sorted so findings stay deterministic.
			semantics := make([]string, 0, len(primitive.Attributes))
			for semantic := range primitive.Attributes {
				semantics = append(semantics, semantic)
			}
			slices.Sort(semantics)
			for _, semantic := range semantics {
				if !primitive.Attributes[semantic].InBounds(len(r.Accessors)) {
					loc := ppath.Field("attributes").Field(semantic)
					report(gv.IndexOutOfBounds(loc.String()))
				}
			}
			if primitive.Indices != nil && !primitive.Indices.InBounds(len(r.Accessors)) {
				report(gv.IndexOutOfBounds(ppath.Field("indices").String()))
			}
		}
	}
}

func (r *Root) checkNodes(path Path, report ReportFunc) {
	for i, node := range r.Nodes {
		npath := path.ArrayIndex(i)
		for j, child := range node.Children {
			if !child.InBounds(len(r.Nodes)) {
				report(gv.IndexOutOfBounds(npath.Field("children").ArrayIndex(j).String()))
			}
		}
		if node.Mesh != nil && !node.Mesh.InBounds(len(r.Meshes)) {
			report(gv.IndexOutOfBounds(npath.Field("mesh").String()))
		}
	}
}

func (r *Root) checkScenes(path Path, report ReportFunc) {
	for i, scene := range r.Scenes {
		for j, node := range scene.Nodes {
			if !node.InBounds(len(r.Nodes)) {
				loc := path.ArrayIndex(i).Field("nodes").ArrayIndex(j)
				report(gv.IndexOutOfBounds(loc.String()))
			}
		}
	}
}
