package gltf

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	gv "github.com/gogltf/validator"
)

// minimalRoot returns a document with one node and one accessor, enough
// for an animation to reference legally.
func minimalRoot() *Root {
	return &Root{
		Asset:     Asset{Version: "2.0"},
		Nodes:     []Node{{}},
		Accessors: []Accessor{{ComponentType: ComponentFloat, Count: 1, Type: TypeScalar}},
	}
}

func validAnimation() Animation {
	return Animation{
		Samplers: []Sampler{{
			Input:         NewIndex[Accessor](0),
			Output:        NewIndex[Accessor](0),
			Interpolation: InterpolationLinear,
		}},
		Channels: []Channel{{
			Sampler: NewIndex[Sampler](0),
			Target:  Target{Node: NewIndex[Node](0), Path: PropertyRotation},
		}},
	}
}

func validateRoot(root *Root) []gv.Issue {
	var issues []gv.Issue
	root.Validate(root, NewPath(), collect(&issues))
	return issues
}

func issuePaths(issues []gv.Issue) []string {
	paths := make([]string, 0, len(issues))
	for _, issue := range issues {
		paths = append(paths, issue.Path)
	}
	return paths
}

func TestRoot_Validate_Clean(t *testing.T) {
	root := minimalRoot()
	root.Animations = []Animation{validAnimation()}

	if issues := validateRoot(root); len(issues) != 0 {
		t.Errorf("valid document produced issues: %v", issues)
	}
}

func TestRoot_Validate_TargetNodeOutOfBounds(t *testing.T) {
	root := minimalRoot()
	a := validAnimation()
	a.Channels[0].Target.Node = NewIndex[Node](4)
	root.Animations = []Animation{a}

	issues := validateRoot(root)
	want := []string{"animations[0].channels[0].target.node"}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
	if issues[0].Code != gv.IssueTypeIndexOutOfBounds {
		t.Errorf("Code = %s; want %s", issues[0].Code, gv.IssueTypeIndexOutOfBounds)
	}
}

func TestRoot_Validate_SamplerAccessorsOutOfBounds(t *testing.T) {
	root := minimalRoot()
	a := validAnimation()
	a.Samplers[0].Input = NewIndex[Accessor](3)
	a.Samplers[0].Output = NewIndex[Accessor](7)
	root.Animations = []Animation{a}

	issues := validateRoot(root)
	want := []string{
		"animations[0].samplers[0].input",
		"animations[0].samplers[0].output",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

// The channel→sampler bound stays animation-scoped even at the document
// level: a channel may not address another animation's samplers.
func TestRoot_Validate_ChannelSamplerScopedLocally(t *testing.T) {
	root := minimalRoot()
	first := validAnimation()
	second := validAnimation()
	// Two samplers exist document-wide, but each animation owns only one.
	second.Channels[0].Sampler = NewIndex[Sampler](1)
	root.Animations = []Animation{first, second}

	issues := validateRoot(root)
	want := []string{"animations[1].channels[0].sampler"}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_Validate_SceneReferences(t *testing.T) {
	scene := NewIndex[Scene](2)
	root := &Root{
		Asset:  Asset{Version: "2.0"},
		Scenes: []Scene{{Nodes: []Index[Node]{NewIndex[Node](5)}}},
		Scene:  &scene,
	}

	issues := validateRoot(root)
	want := []string{
		"scenes[0].nodes[0]",
		"scene",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_Validate_NodeReferences(t *testing.T) {
	mesh := NewIndex[Mesh](0)
	root := &Root{
		Asset: Asset{Version: "2.0"},
		Nodes: []Node{
			{Children: []Index[Node]{NewIndex[Node](1), NewIndex[Node](9)}},
			{Mesh: &mesh},
		},
	}

	issues := validateRoot(root)
	want := []string{
		"nodes[0].children[1]",
		"nodes[1].mesh",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_Validate_BufferChain(t *testing.T) {
	view := NewIndex[BufferView](1)
	root := &Root{
		Asset: Asset{Version: "2.0"},
		Accessors: []Accessor{{
			BufferView:    &view,
			ComponentType: ComponentFloat,
			Count:         1,
			Type:          TypeScalar,
		}},
		BufferViews: []BufferView{{Buffer: NewIndex[Buffer](3), ByteLength: 4}},
	}

	issues := validateRoot(root)
	want := []string{
		"accessors[0].bufferView",
		"bufferViews[0].buffer",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_Validate_MeshPrimitiveAccessors(t *testing.T) {
	indices := NewIndex[Accessor](8)
	root := &Root{
		Asset: Asset{Version: "2.0"},
		Meshes: []Mesh{{
			Primitives: []Primitive{{
				Attributes: map[string]Index[Accessor]{
					"POSITION": NewIndex[Accessor](6),
					"NORMAL":   NewIndex[Accessor](7),
				},
				Indices: &indices,
				Mode:    ModeTriangles,
			}},
		}},
	}

	issues := validateRoot(root)
	// Attribute findings come sorted by semantic for determinism.
	want := []string{
		"meshes[0].primitives[0].attributes.NORMAL",
		"meshes[0].primitives[0].attributes.POSITION",
		"meshes[0].primitives[0].indices",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestRoot_Validate_MissingAssetVersion(t *testing.T) {
	root := &Root{}

	issues := validateRoot(root)
	if len(issues) != 1 {
		t.Fatalf("got %d issue(s); want 1: %v", len(issues), issues)
	}
	if issues[0].Code != gv.IssueTypeRequired {
		t.Errorf("Code = %s; want %s", issues[0].Code, gv.IssueTypeRequired)
	}
	if issues[0].Path != "asset.version" {
		t.Errorf("Path = %q; want %q", issues[0].Path, "asset.version")
	}
}

// A failure in one subtree never suppresses findings elsewhere, and child
// findings precede the parent's own cross-reference findings.
func TestRoot_Validate_AccumulatesAcrossSubtrees(t *testing.T) {
	root := minimalRoot()
	bad := validAnimation()
	bad.Samplers[0].Interpolation = "QUADRATIC"     // local enum violation
	bad.Channels[0].Sampler = NewIndex[Sampler](5)  // animation-scoped bound
	bad.Channels[0].Target.Node = NewIndex[Node](5) // document-scoped bound
	root.Animations = []Animation{bad, validAnimation()}

	issues := validateRoot(root)
	want := []string{
		"animations[0].samplers[0].interpolation",
		"animations[0].channels[0].sampler",
		"animations[0].channels[0].target.node",
	}
	if diff := cmp.Diff(want, issuePaths(issues)); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_Validate_MatrixExclusiveWithTRS(t *testing.T) {
	n := Node{
		Matrix:      make([]float64, 16),
		Translation: []float64{1, 2, 3},
	}

	var issues []gv.Issue
	n.Validate(&Root{}, NewPath().Field("nodes").ArrayIndex(0), collect(&issues))

	if len(issues) != 1 {
		t.Fatalf("got %d issue(s); want 1: %v", len(issues), issues)
	}
	if issues[0].Path != "nodes[0].matrix" {
		t.Errorf("Path = %q; want %q", issues[0].Path, "nodes[0].matrix")
	}
}
