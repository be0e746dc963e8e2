package ui

import (
	"testing"
	"time"

	"github.com/hubastard/marley/engine/core"
)

type clickCounts struct{ clicks, holds int }

func count(c *Clickable) *clickCounts {
	n := &clickCounts{}
	c.OnClick.Add(func(EventParams) { n.clicks++ })
	c.OnHoldClick.Add(func(EventParams) { n.holds++ })
	return n
}

func TestClickVersusHold(t *testing.T) {
	const threshold = 500 * time.Millisecond

	tests := []struct {
		name       string
		holdFor    time.Duration
		updates    int // Update calls while held, spaced evenly
		releaseX   float32
		wantClicks int
		wantHolds  int
	}{
		{"quick release", 100 * time.Millisecond, 2, 50, 1, 0},
		{"held past threshold", 800 * time.Millisecond, 4, 50, 0, 1},
		{"held without updates", 800 * time.Millisecond, 0, 50, 0, 1},
		{"released outside", 100 * time.Millisecond, 1, 500, 0, 0},
		{"exactly at threshold", threshold, 1, 50, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := newFakeClock()
			c := NewHoldable("/roms/a.rom", threshold)
			n := count(c)
			b := placed("a", c, 0, 0)

			b.Touch(TouchInput{X: 50, Y: 20, Flags: TouchDown, Time: clk.now()})
			for i := 0; i < tt.updates; i++ {
				clk.advance(tt.holdFor / time.Duration(tt.updates))
				b.Update(clk.now())
			}
			if tt.updates == 0 {
				clk.advance(tt.holdFor)
			}
			b.Touch(TouchInput{X: tt.releaseX, Y: 20, Flags: TouchUp, Time: clk.now()})

			if n.clicks != tt.wantClicks || n.holds != tt.wantHolds {
				t.Errorf("clicks=%d holds=%d, want %d/%d", n.clicks, n.holds, tt.wantClicks, tt.wantHolds)
			}
		})
	}
}

func TestHoldFiresOnce(t *testing.T) {
	clk := newFakeClock()
	c := NewHoldable("", 200*time.Millisecond)
	n := count(c)
	b := placed("a", c, 0, 0)

	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchDown, Time: clk.now()})
	for i := 0; i < 10; i++ {
		clk.advance(100 * time.Millisecond)
		b.Update(clk.now())
	}
	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchUp, Time: clk.now()})
	if n.holds != 1 || n.clicks != 0 {
		t.Fatalf("clicks=%d holds=%d, want 0/1", n.clicks, n.holds)
	}

	// The next press starts a fresh cycle.
	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchDown, Time: clk.now()})
	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchUp, Time: clk.now()})
	if n.clicks != 1 || n.holds != 1 {
		t.Fatalf("second press: clicks=%d holds=%d, want 1/1", n.clicks, n.holds)
	}
}

func TestClickOnlyIgnoresHold(t *testing.T) {
	clk := newFakeClock()
	c := NewClickable("/roms")
	n := count(c)
	b := placed("dir", c, 0, 0)

	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchDown, Time: clk.now()})
	clk.advance(5 * time.Second)
	b.Update(clk.now())
	b.Touch(TouchInput{X: 1, Y: 1, Flags: TouchUp, Time: clk.now()})

	if n.clicks != 1 || n.holds != 0 {
		t.Fatalf("clicks=%d holds=%d, want 1/0", n.clicks, n.holds)
	}
}

func TestKeyActivation(t *testing.T) {
	clk := newFakeClock()
	c := NewHoldable("/roms/b.rom", 300*time.Millisecond)
	var got []EventParams
	c.OnClick.Add(func(p EventParams) { got = append(got, p) })
	b := placed("b", c, 0, 0)

	if !b.Key(KeyInput{Key: core.KeyEnter, Down: true, Time: clk.now()}) {
		t.Fatal("enter down not consumed")
	}
	b.Key(KeyInput{Key: core.KeyEnter, Down: true, Repeat: true, Time: clk.now()})
	b.Key(KeyInput{Key: core.KeyEnter, Down: false, Time: clk.now()})

	if len(got) != 1 {
		t.Fatalf("got %d clicks, want 1", len(got))
	}
	if got[0].Path != "/roms/b.rom" || got[0].Flags&FlagKey == 0 || got[0].View != b {
		t.Errorf("unexpected params %+v", got[0])
	}

	if b.Key(KeyInput{Key: core.KeyP, Down: true, Time: clk.now()}) {
		t.Error("non-activate key was consumed")
	}
}

func TestFocusLossCancelsPress(t *testing.T) {
	clk := newFakeClock()
	c := NewClickable("")
	n := count(c)
	b := placed("a", c, 0, 0)

	b.Key(KeyInput{Key: core.KeyEnter, Down: true, Time: clk.now()})
	b.FocusChanged(FocusLost)
	b.Key(KeyInput{Key: core.KeyEnter, Down: false, Time: clk.now()})
	if n.clicks != 0 {
		t.Fatalf("click fired after focus loss")
	}
}

func TestHoverHighlightOnEnterOnly(t *testing.T) {
	c := NewClickable("")
	var flags []EventFlags
	c.OnHighlight.Add(func(p EventParams) { flags = append(flags, p.Flags) })
	b := placed("a", c, 0, 0)

	moves := []float32{500, 10, 20, 30, 500, 40}
	for _, x := range moves {
		b.Touch(TouchInput{X: x, Y: 10, Flags: TouchMove})
	}
	if len(flags) != 2 {
		t.Fatalf("got %d highlights, want 2 (one per enter)", len(flags))
	}
	for _, f := range flags {
		if f != FlagHover {
			t.Errorf("flags = %v, want hover", f)
		}
	}
}
