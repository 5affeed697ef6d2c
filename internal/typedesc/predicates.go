package typedesc

import "reflect"

// Set is a lightweight stand-in for a JS `Set`: a distinct Go type so the
// `Set` nominal predicate (spec.md §6) can recognize it structurally
// without needing a real generic container.
type Set struct {
	items []any
}

func NewSet(items ...any) *Set { return &Set{items: items} }
func (s *Set) Has(v any) bool {
	for _, item := range s.items {
		if item == v {
			return true
		}
	}
	return false
}
func (s *Set) Len() int { return len(s.items) }

// Thenable is anything exposing a `Then` method, the structural shape
// the `Promise` predicate looks for (JS recognizes promises the same
// way: duck-typed on `.then`).
type Thenable interface {
	Then(onFulfilled, onRejected func(any)) any
}

func isArrayValue(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

func isMapValue(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Map
}

func isSetValue(v any) bool {
	_, ok := v.(*Set)
	return ok
}

func isThenable(v any) bool {
	_, ok := v.(Thenable)
	return ok
}
