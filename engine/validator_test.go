package engine

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	gv "github.com/gogltf/validator"
	"github.com/gogltf/validator/gltf"
)

func testDocument() *gltf.Root {
	return &gltf.Root{
		Asset:     gltf.Asset{Version: "2.0"},
		Nodes:     []gltf.Node{{}, {}},
		Accessors: []gltf.Accessor{{ComponentType: gltf.ComponentFloat, Count: 1, Type: gltf.TypeScalar}},
		Animations: []gltf.Animation{{
			Samplers: []gltf.Sampler{{
				Input:         gltf.NewIndex[gltf.Accessor](0),
				Output:        gltf.NewIndex[gltf.Accessor](0),
				Interpolation: gltf.InterpolationLinear,
			}},
			Channels: []gltf.Channel{
				{
					Sampler: gltf.NewIndex[gltf.Sampler](0),
					Target:  gltf.Target{Node: gltf.NewIndex[gltf.Node](0), Path: gltf.PropertyTranslation},
				},
				{
					Sampler: gltf.NewIndex[gltf.Sampler](0),
					Target:  gltf.Target{Node: gltf.NewIndex[gltf.Node](1), Path: gltf.PropertyTranslation},
				},
			},
		}},
	}
}

func TestValidator_Validate_Clean(t *testing.T) {
	v := New()
	result := v.Validate(testDocument())
	defer result.Release()

	if !result.Valid {
		t.Errorf("valid document reported issues: %v", result.Issues)
	}

	s := v.Metrics().Snapshot()
	if s.ValidationsTotal != 1 || s.ValidationsValid != 1 {
		t.Errorf("metrics = %+v; want one valid validation", s)
	}
}

func TestValidator_Validate_OutOfBounds(t *testing.T) {
	doc := testDocument()
	doc.Animations[0].Channels[1].Sampler = gltf.NewIndex[gltf.Sampler](3)

	v := New()
	result := v.Validate(doc)
	defer result.Release()

	if result.Valid {
		t.Fatal("out-of-bounds document reported valid")
	}
	want := []string{"animations[0].channels[1].sampler"}
	got := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		got = append(got, issue.Path)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issue paths mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_DuplicateTargets(t *testing.T) {
	doc := testDocument()
	// Both channels now drive (node 0, translation).
	doc.Animations[0].Channels[1].Target.Node = gltf.NewIndex[gltf.Node](0)

	// Off by default.
	result := New().Validate(doc)
	if len(result.Issues) != 0 {
		t.Errorf("duplicate-target check ran without opt-in: %v", result.Issues)
	}
	result.Release()

	v := New(gv.WithDuplicateTargets(true))
	result = v.Validate(doc)
	defer result.Release()

	if len(result.Issues) != 1 {
		t.Fatalf("got %d issue(s); want 1: %v", len(result.Issues), result.Issues)
	}
	issue := result.Issues[0]
	if issue.Code != gv.IssueTypeDuplicateTarget {
		t.Errorf("Code = %s; want %s", issue.Code, gv.IssueTypeDuplicateTarget)
	}
	if issue.Path != "animations[0].channels[1].target" {
		t.Errorf("Path = %q; want %q", issue.Path, "animations[0].channels[1].target")
	}
	if !result.Valid {
		t.Error("duplicate target is a warning; result should stay valid")
	}
}

func TestValidator_StrictMode(t *testing.T) {
	doc := testDocument()
	doc.Animations[0].Channels[1].Target.Node = gltf.NewIndex[gltf.Node](0)

	v := New(gv.WithDuplicateTargets(true), gv.WithStrictMode(true))
	result := v.Validate(doc)
	defer result.Release()

	if result.Valid {
		t.Error("strict mode should promote the warning to an error")
	}
	if result.Issues[0].Severity != gv.SeverityError {
		t.Errorf("Severity = %s; want %s", result.Issues[0].Severity, gv.SeverityError)
	}
}

func TestValidator_MaxErrors(t *testing.T) {
	doc := testDocument()
	doc.Animations[0].Channels[0].Sampler = gltf.NewIndex[gltf.Sampler](5)
	doc.Animations[0].Channels[1].Sampler = gltf.NewIndex[gltf.Sampler](6)
	doc.Animations[0].Channels[1].Target.Node = gltf.NewIndex[gltf.Node](9)

	v := New(gv.WithMaxErrors(2))
	result := v.Validate(doc)
	defer result.Release()

	if len(result.Issues) != 2 {
		t.Errorf("len(Issues) = %d; want 2 (capped)", len(result.Issues))
	}
	if result.Valid {
		t.Error("capped result should still be invalid")
	}
}

func TestValidator_ValidateBytes(t *testing.T) {
	doc := []byte(`{
		"asset": {"version": "2.0"},
		"nodes": [{}],
		"accessors": [{"componentType": 5126, "count": 1, "type": "SCALAR"}],
		"animations": [{
			"samplers": [{"input": 0, "output": 0}],
			"channels": [
				{"sampler": 0, "target": {"node": 0, "path": "translation"}},
				{"sampler": 1, "target": {"node": 0, "path": "rotation"}}
			]
		}]
	}`)

	v := New(gv.WithPooling(false))
	result, err := v.ValidateBytes(context.Background(), doc)
	if err != nil {
		t.Fatalf("ValidateBytes() error: %v", err)
	}

	if len(result.Issues) != 1 {
		t.Fatalf("got %d issue(s); want 1: %v", len(result.Issues), result.Issues)
	}
	if result.Issues[0].Path != "animations[0].channels[1].sampler" {
		t.Errorf("Path = %q; want %q", result.Issues[0].Path, "animations[0].channels[1].sampler")
	}
}

func TestValidator_ValidateBytes_DecodeError(t *testing.T) {
	v := New()
	if _, err := v.ValidateBytes(context.Background(), []byte(`{"bogus": 1}`)); err == nil {
		t.Error("ValidateBytes() accepted a malformed document")
	}
}
