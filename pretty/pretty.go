// Package pretty derives human-readable debug representations from a declared
// list of field names. Types opt in by implementing FieldLister; plain structs
// fall back to their exported field names. Rendering never fails: a field
// that cannot be resolved shows the Placeholder marker, and a panic while
// rendering a field shows the recovered error instead of propagating.
//
// The usual wiring is a one-line Stringer:
//
//	type Conn struct {
//		Host string
//		Port int
//	}
//
//	func (c Conn) PrettyFields() []string { return []string{"Host", "Port"} }
//	func (c Conn) String() string         { return pretty.Format(c) }
package pretty

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Placeholder is shown for declared fields that do not resolve to a value.
const Placeholder = "??"

// FieldLister declares the ordered field names a type wants rendered. The
// list is read once per type and cached; it must not vary per instance.
type FieldLister interface {
	PrettyFields() []string
}

type typeInfo struct {
	fields []string
	tmpl   string // "name1=%s, name2=%s", empty when no fields are discoverable
}

// cache holds one typeInfo per concrete type.
var cache sync.Map // reflect.Type -> *typeInfo

// Format renders v as `<pkg.Type name1=v1, name2=v2>`. Field values are
// rendered independently with their default string conversion; unresolvable
// fields render as Placeholder. Types with no discoverable field list render
// as `<pkg.Type>`.
func Format(v any) string {
	if v == nil {
		return "<nil>"
	}

	info := infoFor(v)
	name := strings.TrimPrefix(reflect.TypeOf(v).String(), "*")

	if info.tmpl == "" {
		return "<" + name + ">"
	}

	args := make([]any, len(info.fields))
	for i, f := range info.fields {
		args[i] = renderField(v, f)
	}

	return "<" + name + " " + fmt.Sprintf(info.tmpl, args...) + ">"
}

// String is an alias of Format: string conversion delegates to
// representation conversion.
func String(v any) string {
	return Format(v)
}

// FieldsOf returns a copy of the field names Format would render for v, in
// order. It is empty when no field list is discoverable.
func FieldsOf(v any) []string {
	if v == nil {
		return nil
	}

	info := infoFor(v)

	out := make([]string, len(info.fields))
	copy(out, info.fields)

	return out
}

func infoFor(v any) *typeInfo {
	t := reflect.TypeOf(v)

	if cached, ok := cache.Load(t); ok {
		return cached.(*typeInfo)
	}

	info := &typeInfo{fields: discoverFields(v, t)}

	if len(info.fields) > 0 {
		parts := make([]string, len(info.fields))
		for i, f := range info.fields {
			parts[i] = f + "=%s"
		}

		info.tmpl = strings.Join(parts, ", ")
	}

	cache.Store(t, info)

	return info
}

// discoverFields prefers an explicit PrettyFields declaration and falls back
// to the exported struct field names in declaration order.
func discoverFields(v any, t reflect.Type) []string {
	if fl, ok := v.(FieldLister); ok {
		declared := fl.PrettyFields()

		fields := make([]string, len(declared))
		copy(fields, declared)

		return fields
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []string

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			fields = append(fields, f.Name)
		}
	}

	return fields
}

// renderField resolves one declared field of v to its display string. It
// never propagates a failure: a panic raised anywhere during resolution or
// formatting is recovered and displayed as the value.
func renderField(v any, name string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprint(r)
		}
	}()

	rv := reflect.ValueOf(v)

	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Placeholder
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return Placeholder
	}

	fv := rv.FieldByName(name)
	if !fv.IsValid() || !fv.CanInterface() {
		return Placeholder
	}

	return fmt.Sprintf("%v", fv.Interface())
}
