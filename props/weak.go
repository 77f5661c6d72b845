package props

import (
	"weak"
)

// Weak is a slot holding a non-owning reference to a value. The slot never
// keeps its referent alive: once all strong references elsewhere are gone and
// the referent is reclaimed, Get yields nil instead of failing. Use it to
// break reference cycles, e.g. a child's back-pointer to its parent.
type Weak[T any] struct {
	ref   weak.Pointer[T]
	onSet func(*T)
}

// NewWeak returns an empty slot. onSet, which may be nil, is invoked after
// every Set with the new referent as a change-notification hook; it is used
// for its side effect only.
func NewWeak[T any](onSet func(*T)) *Weak[T] {
	return &Weak[T]{onSet: onSet}
}

// Set points the slot at v without taking ownership, clearing it when v is
// nil, then invokes the change hook.
func (w *Weak[T]) Set(v *T) {
	if v == nil {
		w.ref = weak.Pointer[T]{}
	} else {
		w.ref = weak.Make(v)
	}

	if w.onSet != nil {
		w.onSet(v)
	}
}

// Get returns the live referent, or nil when the slot is empty or the
// referent has been reclaimed.
func (w *Weak[T]) Get() *T {
	return w.ref.Value()
}
