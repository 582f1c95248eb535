package gltf

import "testing"

func TestPath_String(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{
			name: "root",
			path: NewPath(),
			want: "",
		},
		{
			name: "single field",
			path: NewPath().Field("asset"),
			want: "asset",
		},
		{
			name: "field then index",
			path: NewPath().Field("animations").ArrayIndex(2),
			want: "animations[2]",
		},
		{
			name: "nested",
			path: NewPath().Field("animations").ArrayIndex(2).Field("channels").ArrayIndex(0).Field("sampler"),
			want: "animations[2].channels[0].sampler",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("Path.String() = %q; want %q", got, tt.want)
			}
		})
	}
}

// Sibling branches built from one parent must not share location state:
// appending to a path may never change a previously derived path.
func TestPath_Immutable(t *testing.T) {
	parent := NewPath().Field("animations").ArrayIndex(0)

	channels := parent.Field("channels")
	samplers := parent.Field("samplers")

	first := channels.ArrayIndex(0)
	second := channels.ArrayIndex(1)

	if got := parent.String(); got != "animations[0]" {
		t.Errorf("parent changed: %q", got)
	}
	if got := channels.String(); got != "animations[0].channels" {
		t.Errorf("channels changed: %q", got)
	}
	if got := samplers.String(); got != "animations[0].samplers" {
		t.Errorf("samplers changed: %q", got)
	}
	if got := first.String(); got != "animations[0].channels[0]" {
		t.Errorf("first = %q", got)
	}
	if got := second.String(); got != "animations[0].channels[1]" {
		t.Errorf("second = %q", got)
	}
}

func TestPath_IsRoot(t *testing.T) {
	if !NewPath().IsRoot() {
		t.Error("NewPath().IsRoot() = false; want true")
	}
	if NewPath().Field("asset").IsRoot() {
		t.Error("non-empty path reported as root")
	}
}

func TestPath_Len(t *testing.T) {
	p := NewPath().Field("animations").ArrayIndex(1).Field("name")
	if got := p.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
}
