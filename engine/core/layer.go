package core

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // return true if handled; propagation stops
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

// Remove drops l from the stack. The backing array is replaced so a ForEach
// in progress keeps walking the old list.
func (ls *LayerStack) Remove(l Layer) bool {
	for i, cur := range ls.list {
		if cur != l {
			continue
		}
		next := make([]Layer, 0, len(ls.list)-1)
		next = append(next, ls.list[:i]...)
		next = append(next, ls.list[i+1:]...)
		ls.list = next
		return true
	}
	return false
}

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) ForEach(f func(Layer)) {
	for _, l := range ls.list {
		f(l)
	}
}

func (ls *LayerStack) ForEachReverse(f func(Layer) bool) {
	list := ls.list
	for i := len(list) - 1; i >= 0; i-- {
		if stop := f(list[i]); stop {
			break
		}
	}
}
