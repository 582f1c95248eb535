package gltfvalidator

import (
	"testing"
	"time"
)

func TestMetrics_RecordValidation(t *testing.T) {
	m := NewMetrics()

	m.RecordValidation(10*time.Millisecond, true)
	m.RecordValidation(30*time.Millisecond, false)

	s := m.Snapshot()
	if s.ValidationsTotal != 2 {
		t.Errorf("ValidationsTotal = %d; want 2", s.ValidationsTotal)
	}
	if s.ValidationsValid != 1 {
		t.Errorf("ValidationsValid = %d; want 1", s.ValidationsValid)
	}
	if s.MinTime != 10*time.Millisecond {
		t.Errorf("MinTime = %s; want 10ms", s.MinTime)
	}
	if s.MaxTime != 30*time.Millisecond {
		t.Errorf("MaxTime = %s; want 30ms", s.MaxTime)
	}
	if s.AvgTime != 20*time.Millisecond {
		t.Errorf("AvgTime = %s; want 20ms", s.AvgTime)
	}
}

func TestMetrics_RecordIssues(t *testing.T) {
	m := NewMetrics()

	m.RecordIssues([]Issue{
		IndexOutOfBounds("a"),
		DuplicateTarget("b"),
		Info(IssueTypeInvalid).Build(),
	})

	s := m.Snapshot()
	if s.ErrorsTotal != 1 {
		t.Errorf("ErrorsTotal = %d; want 1", s.ErrorsTotal)
	}
	if s.WarningsTotal != 1 {
		t.Errorf("WarningsTotal = %d; want 1", s.WarningsTotal)
	}
	if s.InfosTotal != 1 {
		t.Errorf("InfosTotal = %d; want 1", s.InfosTotal)
	}
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	m := NewMetrics()

	s := m.Snapshot()
	if s.MinTime != 0 {
		t.Errorf("MinTime on empty metrics = %s; want 0", s.MinTime)
	}
	if s.AvgTime != 0 {
		t.Errorf("AvgTime on empty metrics = %s; want 0", s.AvgTime)
	}
}

func TestMetrics_Reset(t *testing.T) {
	m := NewMetrics()
	m.RecordValidation(time.Millisecond, true)
	m.RecordPoolAcquire()
	m.RecordPoolRelease()
	m.RecordIssues([]Issue{IndexOutOfBounds("a")})

	m.Reset()

	s := m.Snapshot()
	if s.ValidationsTotal != 0 || s.PoolAcquires != 0 || s.ErrorsTotal != 0 {
		t.Errorf("Reset() left non-zero counters: %+v", s)
	}
	if s.MinTime != 0 {
		t.Errorf("MinTime after reset = %s; want 0", s.MinTime)
	}
}
