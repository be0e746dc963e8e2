package ui

import (
	"testing"
)

// focusTree builds
//
//	vertical
//	├── top
//	├── horizontal row: left, right
//	└── bottom
func focusTree() (root *LinearLayout, top, left, right, bottom *Button) {
	top = NewButton("top", nil)
	left = NewButton("left", nil)
	right = NewButton("right", nil)
	bottom = NewButton("bottom", nil)
	row := NewLinearLayout(Horizontal, left, right)
	root = NewLinearLayout(Vertical, top, row, bottom)
	return root, top, left, right, bottom
}

func TestFocusMoveWalksSiblingsAndParents(t *testing.T) {
	root, top, left, right, bottom := focusTree()
	f := NewFocus(root)

	steps := []struct {
		dir  Direction
		want View
	}{
		{DirDown, top}, // nothing focused: default view
		{DirDown, left},
		{DirRight, right},
		{DirRight, right}, // no sibling, row's parent is vertical
		{DirDown, bottom},
		{DirUp, right}, // entering the row from below picks its last view
		{DirLeft, left},
		{DirUp, top},
		{DirUp, top},
	}
	for i, s := range steps {
		f.Move(s.dir)
		if got := f.Focused(); got != s.want {
			t.Fatalf("step %d (%v): focused %v, want %v", i, s.dir, describe(got), describe(s.want))
		}
	}
	if !top.Node().HasFocus() || left.Node().HasFocus() {
		t.Error("focus flags out of sync")
	}
}

func TestFocusSkipsHiddenAndUnfocusable(t *testing.T) {
	root, top, left, right, bottom := focusTree()
	left.Visible(false)
	right.Focusable(false)
	f := NewFocus(root)

	f.SetFocus(top)
	f.Move(DirDown)
	if f.Focused() != bottom {
		t.Fatalf("focused %v, want bottom", describe(f.Focused()))
	}
}

func TestSetFocusSameViewIsNoop(t *testing.T) {
	root, top, _, _, _ := focusTree()
	f := NewFocus(root)
	highlights := 0
	top.Clickable().OnHighlight.Add(func(EventParams) { highlights++ })

	if !f.SetFocus(top) {
		t.Fatal("first SetFocus reported no change")
	}
	for i := 0; i < 3; i++ {
		if f.SetFocus(top) {
			t.Fatal("SetFocus on focused view reported a change")
		}
	}
	if highlights != 1 {
		t.Fatalf("highlights = %d, want 1", highlights)
	}
}

type defaultRoot struct {
	*LinearLayout
	fallback View
}

func (d *defaultRoot) DefaultFocusView() View { return d.fallback }

func TestDefaultFocusView(t *testing.T) {
	root, _, _, _, bottom := focusTree()
	f := NewFocus(&defaultRoot{LinearLayout: root, fallback: bottom})
	f.Move(DirUp)
	if f.Focused() != bottom {
		t.Fatalf("focused %v, want bottom", describe(f.Focused()))
	}
}

func TestFocusDroppedWhenDetached(t *testing.T) {
	root, top, _, _, _ := focusTree()
	f := NewFocus(root)
	f.SetFocus(top)
	root.RemoveAll()
	if f.Focused() != nil {
		t.Fatal("detached view still focused")
	}
	if top.Node().HasFocus() {
		t.Fatal("detached view kept its focus flag")
	}
}

// panel is a composite view that embeds its layout, the way screens wrap a
// LinearLayout with extra state.
type panel struct {
	*LinearLayout
}

func TestFocusMoveThroughEmbeddedLayouts(t *testing.T) {
	header := NewButton("header", nil)
	a := NewButton("a", nil)
	b := NewButton("b", nil)
	inner := &panel{NewLinearLayout(Vertical, a, b)}
	root := &panel{NewLinearLayout(Vertical, header, inner)}
	f := NewFocus(root)

	f.SetFocus(b)
	if f.Move(DirDown) {
		t.Fatalf("moved past the last view to %v", describe(f.Focused()))
	}
	if f.Focused() != b {
		t.Fatalf("focused %v, want b", describe(f.Focused()))
	}

	f.SetFocus(a)
	f.Move(DirUp)
	if f.Focused() != header {
		t.Fatalf("focused %v, want header", describe(f.Focused()))
	}
	f.Move(DirDown)
	if f.Focused() != a {
		t.Fatalf("focused %v, want a", describe(f.Focused()))
	}
}

func TestRemoveEmbeddedLayoutByInnerNode(t *testing.T) {
	inner := &panel{NewLinearLayout(Vertical, NewButton("a", nil))}
	root := NewLinearLayout(Vertical, NewButton("header", nil), inner)

	if !root.Remove(inner.LinearLayout) {
		t.Fatal("inner layout not found among children")
	}
	if root.Len() != 1 || inner.Node().parent != nil {
		t.Fatalf("len=%d parent=%v", root.Len(), inner.Node().parent)
	}
}
