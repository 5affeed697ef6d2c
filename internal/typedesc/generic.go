package typedesc

// GenericDescriptor is an unapplied generic function: every Instantiate
// call runs Build again from scratch, producing brand-new TypeParameter
// state. Unlike PartialDescriptor (used for generic aliases/classes,
// which cache by explicit type-argument list), a generic function's call
// sites carry no explicit type arguments to key a cache on — two calls
// that happen to pass the same shape of arguments must still infer
// independently (spec.md §4.2's scope discipline, §8 scenario 2:
// `id(1); id("a")` are both accepted because each call gets its own `T`).
type GenericDescriptor struct {
	baseDescriptor
	Build func() Descriptor
}

func (c *Context) Generic(build func() Descriptor) *GenericDescriptor {
	return &GenericDescriptor{baseDescriptor{c}, build}
}

// Instantiate produces a fresh activation. Callers that need to run
// assertParams/assertReturn against a generic function's per-call
// inference state call this once per call site and operate on the
// result, rather than on the GenericDescriptor itself.
func (d *GenericDescriptor) Instantiate() Descriptor { return d.Build() }

func (d *GenericDescriptor) TypeName() string { return "generic" }

func (d *GenericDescriptor) Accepts(v any, instances ...Descriptor) bool {
	return d.Instantiate().Accepts(v, instances...)
}

func (d *GenericDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	return d.Instantiate().CollectErrors(val, path, v)
}

func (d *GenericDescriptor) AcceptsType(other Descriptor) bool {
	return d.Instantiate().AcceptsType(other)
}

func (d *GenericDescriptor) Unwrap() Descriptor    { return d }
func (d *GenericDescriptor) String() string        { return d.Instantiate().String() }
func (d *GenericDescriptor) ToJSON() map[string]any { return d.Instantiate().ToJSON() }
