package typedesc

// BoxDescriptor defers construction of its inner descriptor until first
// use, then caches it. A parameterized or self-referential alias is
// converted as `box(func() Descriptor { ... })` so the closure can close
// over a Ref to the alias's own name before the alias's RegisterType call
// returns (spec.md §4.4 cyclic-alias-without-thunk handling).
type BoxDescriptor struct {
	baseDescriptor
	build func() Descriptor
	inner Descriptor
}

func (c *Context) Box(build func() Descriptor) Descriptor {
	return &BoxDescriptor{baseDescriptor: baseDescriptor{c}, build: build}
}

// Type registers a named, lazily-built descriptor in one step: the
// common case for a converted `type X = ...` / `interface X` declaration,
// whose body may reference X itself before the declaration finishes
// (spec.md §4.4/§4.5). The registry entry is the Box itself, so every
// reference resolved via Lookup shares the same cached instantiation.
func (c *Context) Type(name string, build func() Descriptor) Descriptor {
	boxed := c.Box(build)
	c.RegisterType(name, boxed)
	return boxed
}

func (d *BoxDescriptor) resolve() Descriptor {
	if d.inner == nil {
		d.inner = d.build()
	}
	return d.inner
}

func (d *BoxDescriptor) TypeName() string { return "box" }

func (d *BoxDescriptor) Accepts(v any, instances ...Descriptor) bool {
	return d.resolve().Accepts(v, instances...)
}

func (d *BoxDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	return d.resolve().CollectErrors(val, path, v)
}

func (d *BoxDescriptor) AcceptsType(other Descriptor) bool {
	return d.resolve().AcceptsType(other)
}

func (d *BoxDescriptor) Unwrap() Descriptor { return d.resolve().Unwrap() }
func (d *BoxDescriptor) String() string     { return d.resolve().String() }
func (d *BoxDescriptor) ToJSON() map[string]any {
	return d.resolve().ToJSON()
}
