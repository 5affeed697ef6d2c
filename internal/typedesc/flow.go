package typedesc

// TypeParameter represents a single open type variable introduced by a
// generic function or class (spec.md §4.2). Used bare — e.g. at a return
// position, or any non-flowable occurrence — it monomorphizes on first
// observation: the first value's inferred shape becomes Recorded, and
// every later Accepts call is checked against that same Recorded shape.
// It never widens on its own; widening only happens through a
// FlowIntoType wrapper at a flowable parameter position.
type TypeParameter struct {
	baseDescriptor
	Name     string
	Bound    Descriptor
	Recorded Descriptor
}

func (c *Context) TypeParameter(name string, bound Descriptor) *TypeParameter {
	return &TypeParameter{baseDescriptor{c}, name, bound, nil}
}

func (d *TypeParameter) TypeName() string { return "typeParameter" }

func (d *TypeParameter) Accepts(v any, _ ...Descriptor) bool {
	// rule 2: monomorphized already — check against what was recorded.
	if d.Recorded != nil {
		return d.Recorded.Accepts(v)
	}
	// rule 3: an unconstrained (any/existential) bound accepts without
	// ever recording a shape.
	if d.Bound != nil && isAnyLike(d.Bound) {
		return true
	}
	// rule 4: a real bound that rejects fails outright.
	if d.Bound != nil && !d.Bound.Accepts(v) {
		return false
	}
	// rule 5: first observation — record the inferred shape and accept.
	d.Recorded = d.ctx.TypeOf(v)
	return true
}

func (d *TypeParameter) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Recorded != nil {
		if d.Recorded.Accepts(v) {
			return false
		}
		val.Fail(path, d.Recorded, v)
		return true
	}
	if d.Bound != nil && isAnyLike(d.Bound) {
		return false
	}
	if d.Bound != nil && !d.Bound.Accepts(v) {
		val.Fail(path, d.Bound, v)
		return true
	}
	d.Recorded = d.ctx.TypeOf(v)
	return false
}

func (d *TypeParameter) AcceptsType(other Descriptor) bool {
	if d.Recorded != nil {
		return d.Recorded.AcceptsType(other)
	}
	if d.Bound != nil {
		return d.Bound.AcceptsType(other)
	}
	return true
}

func (d *TypeParameter) Unwrap() Descriptor {
	if d.Recorded != nil {
		return d.Recorded.Unwrap()
	}
	return d
}

func (d *TypeParameter) String() string { return d.Name }

func (d *TypeParameter) ToJSON() map[string]any {
	out := map[string]any{"typeName": "typeParameter", "name": d.Name}
	if d.Recorded != nil {
		out["recorded"] = d.Recorded.ToJSON()
	}
	return out
}

// FlowIntoType wraps a TypeParameter at a flowable position — a function
// parameter or class property the converter identifies by walking up to
// the nearest enclosing parameter list (spec.md §4.2, §4.5). Every
// Accepts call widens Param.Recorded to cover the newly observed value's
// shape instead of monomorphizing, which is what lets
// `pair<T>(a: T, b: T): T` unify `a`/`b` of different primitive kinds
// into a union rather than rejecting the second argument.
type FlowIntoType struct {
	baseDescriptor
	Param *TypeParameter
}

func (c *Context) FlowInto(p *TypeParameter) Descriptor {
	return &FlowIntoType{baseDescriptor{c}, p}
}

func (d *FlowIntoType) TypeName() string { return "flowInto" }

func (d *FlowIntoType) widen(v any) bool {
	if d.Param.Bound != nil && !d.Param.Bound.Accepts(v) {
		return false
	}
	shape := d.ctx.TypeOf(v)
	if d.Param.Recorded == nil {
		d.Param.Recorded = shape
	} else {
		d.Param.Recorded = d.ctx.Union(d.Param.Recorded, shape)
	}
	return true
}

func (d *FlowIntoType) Accepts(v any, _ ...Descriptor) bool {
	return d.widen(v)
}

func (d *FlowIntoType) CollectErrors(val *Validation, path Path, v any) bool {
	if !d.widen(v) {
		val.Fail(path, d.Param.Bound, v)
		return true
	}
	return false
}

func (d *FlowIntoType) AcceptsType(other Descriptor) bool { return d.Param.AcceptsType(other) }
func (d *FlowIntoType) Unwrap() Descriptor                { return d.Param.Unwrap() }
func (d *FlowIntoType) String() string                    { return d.Param.Name }

func (d *FlowIntoType) ToJSON() map[string]any {
	return map[string]any{"typeName": "flowInto", "param": d.Param.ToJSON()}
}
