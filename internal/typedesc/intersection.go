package typedesc

// IntersectionDescriptor accepts v iff every member accepts it. Unlike a
// union, a failing branch is not discarded: its own records are what gets
// reported, and checking stops at the first branch that fails (spec.md
// §4.1 `intersect(T1..Tn)`).
type IntersectionDescriptor struct {
	baseDescriptor
	Types []Descriptor
}

func (c *Context) Intersect(types ...Descriptor) Descriptor {
	flat := flattenIntersection(types)
	if len(flat) == 1 {
		return flat[0]
	}
	return &IntersectionDescriptor{baseDescriptor{c}, flat}
}

func flattenIntersection(types []Descriptor) []Descriptor {
	var out []Descriptor
	for _, t := range types {
		if i, ok := t.Unwrap().(*IntersectionDescriptor); ok {
			out = append(out, flattenIntersection(i.Types)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

func (d *IntersectionDescriptor) TypeName() string { return "intersection" }

func (d *IntersectionDescriptor) Accepts(v any, instances ...Descriptor) bool {
	for _, t := range d.Types {
		if !t.Accepts(v, instances...) {
			return false
		}
	}
	return true
}

func (d *IntersectionDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	for _, t := range d.Types {
		if t.CollectErrors(val, path, v) {
			return true
		}
	}
	return false
}

func (d *IntersectionDescriptor) AcceptsType(other Descriptor) bool {
	for _, t := range d.Types {
		if !t.AcceptsType(other) {
			return false
		}
	}
	return true
}

func (d *IntersectionDescriptor) Unwrap() Descriptor { return d }

func (d *IntersectionDescriptor) String() string {
	s := ""
	for i, t := range d.Types {
		if i > 0 {
			s += " & "
		}
		s += t.String()
	}
	return s
}

func (d *IntersectionDescriptor) ToJSON() map[string]any {
	types := make([]any, len(d.Types))
	for i, t := range d.Types {
		types[i] = t.ToJSON()
	}
	return map[string]any{"typeName": "intersection", "types": types}
}
