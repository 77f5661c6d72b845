// Package qlist provides a generic ordered list with out-of-range-safe
// indexed reads and a name-registration helper for building symbol manifests.
package qlist

import (
	"fmt"
	"strings"
)

// List is an ordered sequence of values of type T. The zero value is an empty
// list ready to use.
type List[T any] []T

// Get returns the element at index when 0 <= index < len(l), otherwise def.
// It never panics, for any index, negative included.
func (l List[T]) Get(index int, def T) T {
	if index < 0 || index >= len(l) {
		return def
	}

	return l[index]
}

// Append adds values to the end of the list.
func (l *List[T]) Append(values ...T) {
	*l = append(*l, values...)
}

// String renders the list as a bracketed, comma-separated sequence of the
// elements' default string conversions, e.g. `[1, two, 3.5]`.
func (l List[T]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range l {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(fmt.Sprint(v))
	}

	sb.WriteByte(']')

	return sb.String()
}

// Named is anything that carries a declared name. Both the qlist and qdict
// registration helpers index registrable objects through it.
type Named interface {
	Name() string
}

// Register appends item's declared name (not the item itself) to l and
// returns item unchanged, so a manifest of public symbols can be built at
// the point each symbol is defined:
//
//	var Manifest qlist.List[string]
//
//	var DefaultCodec = qlist.Register(&Manifest, newCodec("json"))
func Register[T Named](l *List[string], item T) T {
	*l = append(*l, item.Name())

	return item
}
