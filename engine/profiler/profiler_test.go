package profiler

import (
	"testing"
	"time"
)

func fakeClock(t *testing.T) *time.Time {
	t.Helper()
	cur := time.Unix(0, 0)
	prev := now
	now = func() time.Time { return cur }
	t.Cleanup(func() {
		now = prev
		Disable()
		Reset()
	})
	return &cur
}

func TestStartDisabledIsNoop(t *testing.T) {
	fakeClock(t)
	Disable()
	Start("frame")()
	if got := Snapshot(); len(got) != 0 {
		t.Fatalf("expected no scopes, got %d", len(got))
	}
}

func TestScopesAggregate(t *testing.T) {
	clock := fakeClock(t)
	Init()

	for _, d := range []time.Duration{2 * time.Millisecond, 4 * time.Millisecond} {
		end := Start("render")
		*clock = clock.Add(d)
		end()
	}
	end := Start("update")
	*clock = clock.Add(time.Millisecond)
	end()

	got := Snapshot()
	if len(got) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(got))
	}
	r := got[0]
	if r.Name != "render" {
		t.Fatalf("expected render first, got %s", r.Name)
	}
	if r.Count != 2 || r.Total != 6*time.Millisecond || r.Max != 4*time.Millisecond {
		t.Errorf("unexpected render stats %+v", r)
	}
	if r.Mean() != 3*time.Millisecond {
		t.Errorf("expected mean 3ms, got %v", r.Mean())
	}
}
