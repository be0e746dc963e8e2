package ui

import (
	"testing"
	"time"

	"github.com/hubastard/marley/engine/core"
)

func newTestScreen(t *testing.T) (*Screen, *fakePainter, *fakeClock, []*Button) {
	t.Helper()
	var btns []*Button
	for _, name := range []string{"one", "two", "three"} {
		btns = append(btns, NewButton(name, NewHoldable(name, 300*time.Millisecond)).WidthExpand())
	}
	root := NewLinearLayout(Vertical, btns[0], btns[1], btns[2]).Gap(0)
	p := &fakePainter{}
	s := NewScreen(root, p, nil)
	clk := newFakeClock()
	s.SetClock(clk.now)
	s.Resize(400, 300)
	s.Layout()
	return s, p, clk, btns
}

func TestScreenKeyboardNavigation(t *testing.T) {
	s, _, _, btns := newTestScreen(t)

	s.OnEvent(nil, core.EventKey{Key: core.KeyDown, Down: true})
	if s.Focus.Focused() != btns[0] {
		t.Fatalf("first nav key should focus the default view")
	}
	s.OnEvent(nil, core.EventKey{Key: core.KeyPadDown, Down: true, Device: core.DeviceController})
	if s.Focus.Focused() != btns[1] {
		t.Fatalf("pad down should move to the second button")
	}

	var chosen []string
	btns[1].Clickable().OnClick.Add(func(p EventParams) { chosen = append(chosen, p.Path) })
	s.OnEvent(nil, core.EventKey{Key: core.KeyEnter, Down: true})
	s.OnEvent(nil, core.EventKey{Key: core.KeyEnter, Down: false})
	if len(chosen) != 1 || chosen[0] != "two" {
		t.Fatalf("chosen = %v, want [two]", chosen)
	}
}

func TestScreenMouseClickFocusesAndClicks(t *testing.T) {
	s, _, _, btns := newTestScreen(t)
	clicks := 0
	btns[2].Clickable().OnClick.Add(func(EventParams) { clicks++ })

	x, y := btns[2].Node().Pos()
	w, h := btns[2].Node().Size()
	cx, cy := float64(x+w/2), float64(y+h/2)

	if !s.OnEvent(nil, core.EventMouseButton{Button: core.MouseLeft, Down: true, X: cx, Y: cy}) {
		t.Fatal("press on a button not handled")
	}
	if s.Focus.Focused() != btns[2] {
		t.Fatal("press did not focus the button")
	}
	s.OnEvent(nil, core.EventMouseButton{Button: core.MouseLeft, Down: false, X: cx, Y: cy})
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestScreenHoldThroughUpdate(t *testing.T) {
	s, _, clk, btns := newTestScreen(t)
	s.Focus.SetFocus(btns[0])
	holds, clicks := 0, 0
	btns[0].Clickable().OnHoldClick.Add(func(EventParams) { holds++ })
	btns[0].Clickable().OnClick.Add(func(EventParams) { clicks++ })

	s.Key(KeyInput{Key: core.KeyPadA, Down: true, Time: clk.now()})
	for i := 0; i < 5; i++ {
		clk.advance(100 * time.Millisecond)
		s.Update()
	}
	s.Key(KeyInput{Key: core.KeyPadA, Down: false, Time: clk.now()})
	if holds != 1 || clicks != 0 {
		t.Fatalf("holds=%d clicks=%d, want 1/0", holds, clicks)
	}
}

func TestScreenBack(t *testing.T) {
	s, _, _, _ := newTestScreen(t)
	if s.Key(KeyInput{Key: core.KeyEscape, Down: true}) {
		t.Fatal("back handled with no listener")
	}
	backs := 0
	s.OnBack.Add(func(EventParams) { backs++ })
	s.Key(KeyInput{Key: core.KeyEscape, Down: true})
	s.Key(KeyInput{Key: core.KeyEscape, Down: true, Repeat: true})
	if backs != 1 {
		t.Fatalf("backs = %d, want 1", backs)
	}
}

func TestScreenDrawsThroughPainter(t *testing.T) {
	s, p, _, _ := newTestScreen(t)
	s.Root.Draw(&s.Ctx)
	if len(p.texts) != 3 {
		t.Fatalf("drew %d labels, want 3", len(p.texts))
	}
	if len(p.rects) != 3 {
		t.Fatalf("drew %d backgrounds, want 3", len(p.rects))
	}
}
