package typedesc

// RefDescriptor lazily resolves to a named type registered in a Context.
// Conversion of a self-referential or forward-referenced alias produces a
// Ref rather than eagerly recursing into the aliased descriptor (spec.md
// §4.4 cyclic-alias handling; mirrors the teacher's deferred-resolution
// approach for recursive type aliases).
type RefDescriptor struct {
	baseDescriptor
	Name      string
	Instances []Descriptor
}

// Ref builds a lazy by-name lookup, optionally with type-instance
// arguments: if the resolved target is a PartialDescriptor, Instances are
// applied to it (spec.md §3's "a direct descriptor with optional
// type-instance arguments"); otherwise Instances are recorded but not
// meaningful against a non-parametric target.
func (c *Context) Ref(name string, instances ...Descriptor) Descriptor {
	return &RefDescriptor{baseDescriptor{c}, name, instances}
}

func (d *RefDescriptor) TypeName() string { return "ref" }

func (d *RefDescriptor) resolve() Descriptor {
	resolved, ok := d.ctx.Lookup(d.Name)
	if !ok {
		return d.ctx.Empty()
	}
	if partial, ok := resolved.(*PartialDescriptor); ok {
		return partial.Apply(d.Instances...)
	}
	return resolved
}

func (d *RefDescriptor) Accepts(v any, instances ...Descriptor) bool {
	return d.resolve().Accepts(v, instances...)
}

func (d *RefDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	return d.resolve().CollectErrors(val, path, v)
}

func (d *RefDescriptor) AcceptsType(other Descriptor) bool {
	return d.resolve().AcceptsType(other)
}

func (d *RefDescriptor) Unwrap() Descriptor { return d.resolve().Unwrap() }

func (d *RefDescriptor) String() string { return d.Name }

func (d *RefDescriptor) ToJSON() map[string]any {
	return map[string]any{"typeName": "ref", "name": d.Name}
}
