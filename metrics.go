package gltfvalidator

import (
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance metrics using lock-free atomic
// operations. All methods are safe for concurrent use.
type Metrics struct {
	// Validation counts
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	// Pool metrics
	poolAcquires atomic.Uint64
	poolReleases atomic.Uint64

	// Issue counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.validationsTotal.Add(1)
	if valid {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.validationTimeTotal.Add(ns)

	for {
		min := m.validationTimeMin.Load()
		if ns >= min || m.validationTimeMin.CompareAndSwap(min, ns) {
			break
		}
	}
	for {
		max := m.validationTimeMax.Load()
		if ns <= max || m.validationTimeMax.CompareAndSwap(max, ns) {
			break
		}
	}
}

// RecordIssues records issue counts from a result.
func (m *Metrics) RecordIssues(issues []Issue) {
	var errors, warnings, infos uint64
	for _, issue := range issues {
		switch {
		case issue.IsError():
			errors++
		case issue.IsWarning():
			warnings++
		default:
			infos++
		}
	}
	m.errorsTotal.Add(errors)
	m.warningsTotal.Add(warnings)
	m.infosTotal.Add(infos)
}

// RecordPoolAcquire records a pool acquisition.
func (m *Metrics) RecordPoolAcquire() {
	m.poolAcquires.Add(1)
}

// RecordPoolRelease records a pool release.
func (m *Metrics) RecordPoolRelease() {
	m.poolReleases.Add(1)
}

// Snapshot is a point-in-time copy of the metrics.
type Snapshot struct {
	ValidationsTotal uint64
	ValidationsValid uint64

	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
	AvgTime   time.Duration

	PoolAcquires uint64
	PoolReleases uint64

	ErrorsTotal   uint64
	WarningsTotal uint64
	InfosTotal    uint64
}

// Snapshot returns a point-in-time copy of the metrics.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()
	totalTime := m.validationTimeTotal.Load()

	s := Snapshot{
		ValidationsTotal: total,
		ValidationsValid: m.validationsValid.Load(),
		TotalTime:        time.Duration(totalTime),
		MaxTime:          time.Duration(m.validationTimeMax.Load()),
		PoolAcquires:     m.poolAcquires.Load(),
		PoolReleases:     m.poolReleases.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		InfosTotal:       m.infosTotal.Load(),
	}

	if min := m.validationTimeMin.Load(); min != ^uint64(0) {
		s.MinTime = time.Duration(min)
	}
	if total > 0 {
		s.AvgTime = time.Duration(totalTime / total)
	}
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.poolAcquires.Store(0)
	m.poolReleases.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
}
