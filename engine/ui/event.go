package ui

// EventFlags describe what caused a semantic event.
type EventFlags uint8

const (
	FlagFocus EventFlags = 1 << iota // focus moved onto the view
	FlagHover                        // pointer entered the view
	FlagKey                          // activated from the keyboard or a pad
	FlagHold                         // fired by the hold timer
)

// EventParams is the payload of every widget event.
type EventParams struct {
	View  View
	Path  string
	Flags EventFlags
}

// Handle identifies one registered listener.
type Handle uint64

type listener[T any] struct {
	id   Handle
	fn   func(T)
	dead bool
}

// Event is an ordered list of listeners invoked synchronously on Dispatch.
// Listeners may add or remove listeners, themselves included, while a
// dispatch is running: removed listeners that were not reached yet are
// skipped and new ones are first called on the next Dispatch.
type Event[T any] struct {
	next      Handle
	listeners []*listener[T]
}

func (e *Event[T]) Add(fn func(T)) Handle {
	e.next++
	e.listeners = append(e.listeners, &listener[T]{id: e.next, fn: fn})
	return e.next
}

func (e *Event[T]) Remove(h Handle) bool {
	for i, l := range e.listeners {
		if l.id != h {
			continue
		}
		l.dead = true
		ls := make([]*listener[T], 0, len(e.listeners)-1)
		ls = append(ls, e.listeners[:i]...)
		e.listeners = append(ls, e.listeners[i+1:]...)
		return true
	}
	return false
}

func (e *Event[T]) Clear() {
	for _, l := range e.listeners {
		l.dead = true
	}
	e.listeners = nil
}

func (e *Event[T]) Len() int { return len(e.listeners) }

// Dispatch calls every live listener in registration order and returns how
// many were called.
func (e *Event[T]) Dispatch(v T) int {
	n := 0
	for _, l := range e.listeners {
		if l.dead {
			continue
		}
		l.fn(v)
		n++
	}
	return n
}
