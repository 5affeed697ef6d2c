package typedesc

import "reflect"

// ArrayDescriptor accepts any sequence value whose elements all accept
// Elem (spec.md §4.1 `array(T)`).
type ArrayDescriptor struct {
	baseDescriptor
	Elem Descriptor
}

func (c *Context) Array(elem Descriptor) Descriptor {
	return &ArrayDescriptor{baseDescriptor{c}, elem}
}

func (d *ArrayDescriptor) TypeName() string { return "array" }

func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func (d *ArrayDescriptor) Accepts(v any, _ ...Descriptor) bool {
	elems, ok := asSlice(v)
	if !ok {
		return false
	}
	for _, e := range elems {
		if !d.Elem.Accepts(e) {
			return false
		}
	}
	return true
}

func (d *ArrayDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	elems, ok := asSlice(v)
	if !ok {
		val.Fail(path, d, v)
		return true
	}
	failed := false
	for i, e := range elems {
		if d.Elem.CollectErrors(val, path.With(Index(i)), e) {
			failed = true
		}
	}
	return failed
}

func (d *ArrayDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*ArrayDescriptor)
	if !ok {
		return false
	}
	return d.Elem.AcceptsType(o.Elem)
}

func (d *ArrayDescriptor) Unwrap() Descriptor { return d }
func (d *ArrayDescriptor) String() string     { return d.Elem.String() + "[]" }
func (d *ArrayDescriptor) ToJSON() map[string]any {
	return map[string]any{"typeName": "array", "elem": d.Elem.ToJSON()}
}
