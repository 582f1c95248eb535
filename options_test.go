package gltfvalidator

import (
	"runtime"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.CheckDuplicateTargets {
		t.Error("CheckDuplicateTargets should default to false")
	}
	if o.StrictMode {
		t.Error("StrictMode should default to false")
	}
	if o.MaxErrors != 0 {
		t.Errorf("MaxErrors = %d; want 0 (unlimited)", o.MaxErrors)
	}
	if o.WorkerCount != runtime.NumCPU() {
		t.Errorf("WorkerCount = %d; want %d", o.WorkerCount, runtime.NumCPU())
	}
	if !o.EnablePooling {
		t.Error("EnablePooling should default to true")
	}
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name   string
		opt    Option
		verify func(*Options) bool
	}{
		{
			name:   "WithDuplicateTargets",
			opt:    WithDuplicateTargets(true),
			verify: func(o *Options) bool { return o.CheckDuplicateTargets },
		},
		{
			name:   "WithStrictMode",
			opt:    WithStrictMode(true),
			verify: func(o *Options) bool { return o.StrictMode },
		},
		{
			name:   "WithMaxErrors",
			opt:    WithMaxErrors(5),
			verify: func(o *Options) bool { return o.MaxErrors == 5 },
		},
		{
			name:   "WithWorkerCount",
			opt:    WithWorkerCount(3),
			verify: func(o *Options) bool { return o.WorkerCount == 3 },
		},
		{
			name:   "WithWorkerCount ignores non-positive",
			opt:    WithWorkerCount(-1),
			verify: func(o *Options) bool { return o.WorkerCount == runtime.NumCPU() },
		},
		{
			name:   "WithPooling",
			opt:    WithPooling(false),
			verify: func(o *Options) bool { return !o.EnablePooling },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.opt(o)
			if !tt.verify(o) {
				t.Errorf("option %s did not take effect", tt.name)
			}
		})
	}
}
