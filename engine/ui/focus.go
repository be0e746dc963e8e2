package ui

import "github.com/hubastard/marley/engine/core"

// DefaultFocuser is implemented by containers that know which view should
// take focus when nothing is focused yet.
type DefaultFocuser interface {
	DefaultFocusView() View
}

// Focus tracks the single focused view under a root.
type Focus struct {
	root    View
	focused View
}

func NewFocus(root View) *Focus { return &Focus{root: root} }

func (f *Focus) Root() View { return f.root }

// Focused returns the focused view, or nil when nothing attached to the
// root holds focus.
func (f *Focus) Focused() View {
	if f.focused != nil && !IsAttached(f.root, f.focused) {
		f.focused.FocusChanged(FocusLost)
		f.focused = nil
	}
	return f.focused
}

// SetFocus moves focus to v and reports whether anything changed. Focusing
// the already focused view does nothing and fires no events.
func (f *Focus) SetFocus(v View) bool {
	cur := f.Focused()
	if v == cur {
		return false
	}
	if v != nil && !v.Node().IsFocusable() {
		return false
	}
	if cur != nil {
		cur.FocusChanged(FocusLost)
	}
	f.focused = v
	if v != nil {
		v.FocusChanged(FocusGained)
		core.Logger().Debug("ui focus", "view", describe(v))
	}
	return true
}

// Clear drops focus.
func (f *Focus) Clear() { f.SetFocus(nil) }

// DefaultView resolves the fallback focus target of the root.
func (f *Focus) DefaultView() View {
	if d, ok := f.root.(DefaultFocuser); ok {
		if v := d.DefaultFocusView(); v != nil {
			if t := firstFocusable(v, 1); t != nil {
				return t
			}
		}
	}
	return firstFocusable(f.root, 1)
}

// Move walks from the focused view up through its parents. At each level it
// looks along the parent's orientation for the next sibling in dir that is or
// contains a focusable view. Without a focused view the default view gets
// focus. It reports whether focus changed.
func (f *Focus) Move(dir Direction) bool {
	cur := f.Focused()
	if cur == nil {
		return f.SetFocus(f.DefaultView())
	}

	step := dir.step()
	child := cur
	for parent := child.Node().parent; parent != nil; child, parent = parent, parent.Node().parent {
		o, ok := parent.(Oriented)
		if !ok || o.Orientation() != dir.axis() {
			continue
		}
		idx := parent.Node().indexOf(child)
		if idx < 0 {
			break
		}
		kids := parent.Node().children
		for i := idx + step; i >= 0 && i < len(kids); i += step {
			if t := firstFocusable(kids[i], step); t != nil {
				return f.SetFocus(t)
			}
		}
		if parent.Node() == f.root.Node() {
			break
		}
	}
	return false
}

// firstFocusable returns v if it can take focus, else searches its
// descendants from the front (step > 0) or the back (step < 0).
func firstFocusable(v View, step int) View {
	if v == nil {
		return nil
	}
	b := v.Node()
	if !b.visible {
		return nil
	}
	if b.IsFocusable() {
		return v
	}
	kids := b.children
	if step >= 0 {
		for _, k := range kids {
			if t := firstFocusable(k, step); t != nil {
				return t
			}
		}
		return nil
	}
	for i := len(kids) - 1; i >= 0; i-- {
		if t := firstFocusable(kids[i], step); t != nil {
			return t
		}
	}
	return nil
}

func describe(v View) string {
	if b, ok := v.(*Button); ok {
		return b.Text()
	}
	return "view"
}
