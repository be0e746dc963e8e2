package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	cur   time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.cur }
func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.cur = c.cur.Add(d)
}

func newTestPacer(fps int, mode PaceMode) (*FramePacer, *fakeClock) {
	c := &fakeClock{cur: time.Unix(100, 0)}
	p := NewFramePacer(fps, mode)
	p.now = c.now
	p.sleep = c.sleep
	return p, c
}

func TestFramePacerDeltaAccountsForWork(t *testing.T) {
	p, c := newTestPacer(10, PaceDelta) // 100ms

	if d := p.Wait(); d != 0 {
		t.Fatalf("first frame should not sleep, slept %v", d)
	}
	c.cur = c.cur.Add(30 * time.Millisecond) // frame work
	if d := p.Wait(); d != 70*time.Millisecond {
		t.Errorf("expected 70ms sleep, got %v", d)
	}
	c.cur = c.cur.Add(150 * time.Millisecond) // overrun
	if d := p.Wait(); d != 0 {
		t.Errorf("overrun frame should not sleep, got %v", d)
	}
}

func TestFramePacerFixedDelayIgnoresWork(t *testing.T) {
	p, c := newTestPacer(30, PaceFixedDelay)
	interval := time.Second / 30

	for i := 0; i < 3; i++ {
		c.cur = c.cur.Add(20 * time.Millisecond)
		if d := p.Wait(); d != interval {
			t.Errorf("frame %d: expected %v, got %v", i, interval, d)
		}
	}
	if len(c.slept) != 3 {
		t.Errorf("expected 3 sleeps, got %d", len(c.slept))
	}
}

func TestFramePacerUnlimited(t *testing.T) {
	p, c := newTestPacer(0, PaceFixedDelay)
	if d := p.Wait(); d != 0 || len(c.slept) != 0 {
		t.Errorf("unpaced frame slept %v", d)
	}
}

func TestParsePaceMode(t *testing.T) {
	tests := []struct {
		in   string
		want PaceMode
		ok   bool
	}{
		{"delta", PaceDelta, true},
		{"", PaceDelta, true},
		{"fixed", PaceFixedDelay, true},
		{"vsync", PaceDelta, false},
	}
	for _, tc := range tests {
		got, ok := ParsePaceMode(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePaceMode(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
