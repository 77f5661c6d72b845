// Package props provides per-instance value holders: weak-reference-backed
// slots that never extend their referent's lifetime, and lazily-computed
// memoized values with explicit overwrite and reset.
//
// None of the holders is safe for concurrent use; callers serialize access.
package props

// Lazy is a single memoized value: the compute function runs on first read,
// its result is stored, and later reads return the stored value until Reset.
//
// Fixed extra arguments for the computation are bound by closing over them:
//
//	user := props.NewLazy(func() *User { return fetchUser(db, id) })
type Lazy[T any] struct {
	compute func() T
	value   T
	done    bool
}

// NewLazy returns a holder whose value is produced by compute on first read.
// It panics when compute is nil.
func NewLazy[T any](compute func() T) *Lazy[T] {
	if compute == nil {
		panic("props: nil compute function")
	}

	return &Lazy[T]{compute: compute}
}

// Get returns the held value, computing and storing it first if no value is
// present. The computation runs at most once per fill; Set and Reset both
// count as ending a fill.
func (l *Lazy[T]) Get() T {
	if !l.done {
		l.value = l.compute()
		l.done = true
	}

	return l.value
}

// Set overwrites the held value, bypassing computation. A zero value stored
// with Set is an ordinary value; it will not be recomputed.
func (l *Lazy[T]) Set(v T) {
	l.value = v
	l.done = true
}

// Reset discards the held value; the next Get recomputes.
func (l *Lazy[T]) Reset() {
	var zero T

	l.value = zero
	l.done = false
}

// Computed reports whether a value is currently stored.
func (l *Lazy[T]) Computed() bool {
	return l.done
}
