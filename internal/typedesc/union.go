package typedesc

// UnionDescriptor accepts v iff any member accepts it. Branches are tried
// in declared order and the first match wins; any recording a discarded
// branch might have performed (e.g. a flowed type parameter) is not
// rolled back (spec.md §9 open question).
type UnionDescriptor struct {
	baseDescriptor
	Types []Descriptor
}

// Union builds a normalized union: it flattens nested unions, drops
// duplicate members, and collapses a literal member that is already
// covered by a bare primitive member of the same kind (spec.md §4.2's
// widening-rule normalization, reused here for the general factory too).
func (c *Context) Union(types ...Descriptor) Descriptor {
	flat := flattenUnion(types)
	flat = dedupeUnion(flat)
	if len(flat) == 0 {
		return c.Empty()
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &UnionDescriptor{baseDescriptor{c}, flat}
}

func flattenUnion(types []Descriptor) []Descriptor {
	var out []Descriptor
	for _, t := range types {
		if u, ok := t.Unwrap().(*UnionDescriptor); ok {
			out = append(out, flattenUnion(u.Types)...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

func dedupeUnion(types []Descriptor) []Descriptor {
	var out []Descriptor
	for _, t := range types {
		redundant := false
		for _, existing := range out {
			if Equal(existing, t) {
				redundant = true
				break
			}
			// collapse a literal into an already-present bare primitive
			// of the same kind.
			if lit, ok := t.(*PrimDescriptor); ok && lit.Literal != nil {
				if bare, ok := existing.(*PrimDescriptor); ok && bare.Literal == nil && bare.Prim == lit.Prim {
					redundant = true
					break
				}
			}
		}
		if !redundant {
			out = append(out, t)
		}
	}
	return out
}

func (d *UnionDescriptor) TypeName() string { return "union" }

func (d *UnionDescriptor) Accepts(v any, instances ...Descriptor) bool {
	for _, t := range d.Types {
		if t.Accepts(v, instances...) {
			return true
		}
	}
	return false
}

// CollectErrors records a single failure at the union's own path when no
// branch matches — matching spec.md §8 scenario 1, which reports the
// union itself as "expected", not a breakdown per branch.
func (d *UnionDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Accepts(v) {
		return false
	}
	val.Fail(path, d, v)
	return true
}

func (d *UnionDescriptor) AcceptsType(other Descriptor) bool {
	if ou, ok := other.Unwrap().(*UnionDescriptor); ok {
		for _, ot := range ou.Types {
			if !d.AcceptsType(ot) {
				return false
			}
		}
		return true
	}
	for _, t := range d.Types {
		if t.AcceptsType(other) {
			return true
		}
	}
	return false
}

func (d *UnionDescriptor) Unwrap() Descriptor { return d }

func (d *UnionDescriptor) String() string {
	s := ""
	for i, t := range d.Types {
		if i > 0 {
			s += " | "
		}
		s += t.String()
	}
	return s
}

func (d *UnionDescriptor) ToJSON() map[string]any {
	types := make([]any, len(d.Types))
	for i, t := range d.Types {
		types[i] = t.ToJSON()
	}
	return map[string]any{"typeName": "union", "types": types}
}
