package gltfvalidator

import (
	"runtime"
)

// Option configures the Validator.
type Option func(*Options)

// Options holds all configuration for the Validator.
type Options struct {
	// Validation flags
	CheckDuplicateTargets bool
	StrictMode            bool

	// Performance
	MaxErrors     int
	WorkerCount   int
	EnablePooling bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		// The glTF specification documents the duplicate-target rule but
		// the reference validator does not enforce it, so it is opt-in.
		CheckDuplicateTargets: false,
		StrictMode:            false,

		MaxErrors:     0, // unlimited
		WorkerCount:   runtime.NumCPU(),
		EnablePooling: true,
	}
}

// WithDuplicateTargets enables detection of two channels of the same
// animation addressing the same (node, property) pair.
func WithDuplicateTargets(enable bool) Option {
	return func(o *Options) {
		o.CheckDuplicateTargets = enable
	}
}

// WithStrictMode treats warnings as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithMaxErrors limits how many issues a single validation run records.
// Zero means unlimited. The traversal itself always completes; the limit
// only caps what the result retains.
func WithMaxErrors(n int) Option {
	return func(o *Options) {
		o.MaxErrors = n
	}
}

// WithWorkerCount sets the number of workers used for batch validation.
func WithWorkerCount(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.WorkerCount = n
		}
	}
}

// WithPooling enables or disables result pooling.
func WithPooling(enable bool) Option {
	return func(o *Options) {
		o.EnablePooling = enable
	}
}
