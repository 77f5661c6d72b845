// Package qdict provides a string-keyed attribute mapping with additive
// combination, shallow and recursive merge policies, a named-object registry,
// and codecs that preserve nested mapping semantics.
package qdict

import (
	"fmt"
)

// Dict is a string-keyed mapping whose entries behave like named attributes:
// reads of absent keys fail with ErrMissingKey instead of yielding a zero
// value, and writes always insert or overwrite.
//
// Dict is an ordinary map underneath; construct it with a literal, New, or
// From, and use len, delete and range as usual. It is not safe for concurrent
// mutation.
type Dict map[string]any

// New returns an empty Dict.
func New() Dict {
	return Dict{}
}

// From returns a Dict with a shallow copy of m's entries.
func From(m map[string]any) Dict {
	d := make(Dict, len(m))

	for k, v := range m {
		d[k] = v
	}

	return d
}

// FromNested returns a Dict with m's entries, deep-converting every nested
// map[string]any value (including inside slices) to a Dict, so that decoded
// or hand-built documents merge recursively like native ones.
func FromNested(m map[string]any) Dict {
	d := make(Dict, len(m))

	for k, v := range m {
		d[k] = nestedValue(v)
	}

	return d
}

func nestedValue(v any) any {
	switch t := v.(type) {
	case Dict:
		return FromNested(t)
	case map[string]any:
		return FromNested(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = nestedValue(e)
		}

		return out
	default:
		return v
	}
}

// Get returns the value stored under key. A missing key yields an error
// satisfying errors.Is(err, ErrMissingKey); there is no fallback of any kind.
func (d Dict) Get(key string) (any, error) {
	v, ok := d[key]
	if !ok {
		return nil, &KeyError{Key: key, Err: ErrMissingKey}
	}

	return v, nil
}

// MustGet returns the value stored under key and panics when it is absent.
func (d Dict) MustGet(key string) any {
	v, err := d.Get(key)
	if err != nil {
		panic(err)
	}

	return v
}

// GetDefault returns the value stored under key, or def when it is absent.
func (d Dict) GetDefault(key string, def any) any {
	if v, ok := d[key]; ok {
		return v
	}

	return def
}

// Has reports whether key is present.
func (d Dict) Has(key string) bool {
	_, ok := d[key]

	return ok
}

// Set inserts or overwrites the entry under key. It always succeeds.
func (d Dict) Set(key string, v any) {
	d[key] = v
}

// Keys returns the keys in unspecified order.
func (d Dict) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}

	return keys
}

// As returns the value stored under key converted to T. A missing key yields
// ErrMissingKey; a value of the wrong dynamic type yields ErrConvert.
func As[T any](d Dict, key string) (T, error) {
	var zero T

	v, err := d.Get(key)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, &KeyError{Key: key, Err: fmt.Errorf("%w: have %T, want %T", ErrConvert, v, zero)}
	}

	return t, nil
}

// Copy returns a new Dict with the receiver's entries (a shallow, additive
// merge), then merges each given source in additively. The receiver is left
// untouched. Sources that are not mappings are ignored.
func (d Dict) Copy(add ...any) Dict {
	res := New()
	res.Update(d)

	for _, src := range add {
		res.Update(src)
	}

	return res
}

// Add returns a new Dict holding the receiver's entries overwritten by
// other's entries. Neither operand is mutated.
func (d Dict) Add(other any) Dict {
	return d.Copy(other)
}

// UpdateOption adjusts the merge policy of Update.
type UpdateOption func(*updateConfig)

type updateConfig struct {
	recursive    bool
	existingOnly bool
	convertMaps  bool
}

// Recursive makes Update descend into mapping values instead of overwriting
// them wholesale.
func Recursive() UpdateOption {
	return func(cfg *updateConfig) { cfg.recursive = true }
}

// ExistingOnly restricts Update to keys already present in the receiver:
// replacement values are pulled from the source, and keys present only in the
// source are silently ignored.
func ExistingOnly() UpdateOption {
	return func(cfg *updateConfig) { cfg.existingOnly = true }
}

// ConvertMaps makes a recursive Update wrap plain map[string]any values from
// the source as Dict before merging them in.
func ConvertMaps() UpdateOption {
	return func(cfg *updateConfig) { cfg.convertMaps = true }
}

// Update merges source into the receiver in place and returns the receiver.
// A source that is neither a Dict nor a map[string]any is a no-op.
//
// Without options the merge is a plain overwrite of all of source's entries.
// With Recursive, entries whose existing value is a Dict merge recursively
// (additively) with mapping sources and are left alone for non-mapping
// sources; plain-map existing values merge flat with plain-map sources;
// everything else overwrites. See ExistingOnly and ConvertMaps for the
// remaining policy axes.
func (d Dict) Update(source any, opts ...UpdateOption) Dict {
	var cfg updateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	src, ok := asEntries(source)
	if !ok {
		return d
	}

	if !cfg.recursive {
		if !cfg.existingOnly {
			for k, nv := range src {
				d[k] = nv
			}

			return d
		}

		for k := range d {
			if nv, ok := src[k]; ok {
				d[k] = nv
			}
		}

		return d
	}

	if !cfg.existingOnly {
		for k, nv := range src {
			if cfg.convertMaps {
				if m, isMap := nv.(map[string]any); isMap {
					nv = From(m)
				}
			}

			if cv, present := d[k]; present {
				if cd, isDict := cv.(Dict); isDict {
					cd.Update(nv, opts...)
					continue
				}

				cm, cvIsMap := cv.(map[string]any)
				nm, nvIsMap := asEntries(nv)

				if cvIsMap && nvIsMap {
					for mk, mv := range nm {
						cm[mk] = mv
					}

					continue
				}
			}

			d[k] = nv
		}

		return d
	}

	for k, cv := range d {
		nv, ok := src[k]
		if !ok {
			continue
		}

		if cd, isDict := cv.(Dict); isDict {
			cd.Update(nv, Recursive(), ExistingOnly())
			continue
		}

		if cm, isMap := cv.(map[string]any); isMap {
			if nm, nvIsMap := asEntries(nv); nvIsMap {
				for mk, mv := range nm {
					cm[mk] = mv
				}
			}

			continue
		}

		d[k] = nv
	}

	return d
}

// asEntries exposes any supported mapping value as a plain map for merging.
func asEntries(source any) (map[string]any, bool) {
	switch s := source.(type) {
	case Dict:
		return s, true
	case map[string]any:
		return s, true
	default:
		return nil, false
	}
}
