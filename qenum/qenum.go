// Package qenum provides closed, immutable sets of named constant members
// with ordered name and value accessors.
package qenum

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName indicates two members were declared with the same name.
	ErrDuplicateName = errors.New("duplicate member name")

	// ErrDuplicateValue indicates two members were declared with the same value.
	ErrDuplicateValue = errors.New("duplicate member value")
)

// Member is a single named constant of an enumeration.
type Member[T comparable] struct {
	name  string
	value T
}

// M constructs a member for use with New or MustNew.
func M[T comparable](name string, value T) Member[T] {
	return Member[T]{name: name, value: value}
}

// Name returns the member's name.
func (m Member[T]) Name() string {
	return m.name
}

// Value returns the member's underlying value.
func (m Member[T]) Value() T {
	return m.value
}

func (m Member[T]) String() string {
	return m.name
}

// Set is a closed, immutable, ordered set of named constant members, fixed at
// construction. Accessors return copies; there is no mutation after creation.
type Set[T comparable] struct {
	members []Member[T]
	byName  map[string]int
	byValue map[T]int
}

// New builds a Set from the given members, preserving declaration order. It
// fails when two members share a name or a value, so malformed enumerations
// are rejected where they are defined rather than where they are used.
func New[T comparable](members ...Member[T]) (*Set[T], error) {
	s := &Set[T]{
		members: make([]Member[T], len(members)),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[T]int, len(members)),
	}

	for i, m := range members {
		if _, ok := s.byName[m.name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, m.name)
		}

		if _, ok := s.byValue[m.value]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, m.value)
		}

		s.members[i] = m
		s.byName[m.name] = i
		s.byValue[m.value] = i
	}

	return s, nil
}

// MustNew is New for package-level declarations; it panics on invalid input.
func MustNew[T comparable](members ...Member[T]) *Set[T] {
	s, err := New(members...)
	if err != nil {
		panic(err)
	}

	return s
}

// Keys returns the member names in declaration order.
func (s *Set[T]) Keys() []string {
	keys := make([]string, len(s.members))
	for i, m := range s.members {
		keys[i] = m.name
	}

	return keys
}

// Values returns the member values in declaration order, rendered with their
// default string conversion.
func (s *Set[T]) Values() []string {
	values := make([]string, len(s.members))
	for i, m := range s.members {
		values[i] = fmt.Sprint(m.value)
	}

	return values
}

// Members returns a copy of the members in declaration order.
func (s *Set[T]) Members() []Member[T] {
	out := make([]Member[T], len(s.members))
	copy(out, s.members)

	return out
}

// Lookup returns the member with the given name.
func (s *Set[T]) Lookup(name string) (Member[T], bool) {
	i, ok := s.byName[name]
	if !ok {
		return Member[T]{}, false
	}

	return s.members[i], true
}

// ByValue returns the member with the given underlying value.
func (s *Set[T]) ByValue(value T) (Member[T], bool) {
	i, ok := s.byValue[value]
	if !ok {
		return Member[T]{}, false
	}

	return s.members[i], true
}

// Contains reports whether a member with the given name exists.
func (s *Set[T]) Contains(name string) bool {
	_, ok := s.byName[name]

	return ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.members)
}
