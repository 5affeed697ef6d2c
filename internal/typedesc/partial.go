package typedesc

import "strings"

// PartialDescriptor is an uninstantiated generic type alias or class: the
// converter builds one per `type Foo<T> = ...` declaration instead of a
// concrete Descriptor, deferring substitution until a `GenericTypeAnn`
// actually supplies type arguments (spec.md §4.4/§4.5). Apply caches each
// distinct argument list's materialization so repeated uses of
// `Foo<number>` share one descriptor instance instead of rebuilding it.
type PartialDescriptor struct {
	baseDescriptor
	Name       string
	TypeParams []*TypeParameter
	Build      func(args []Descriptor) Descriptor
	cache      map[string]Descriptor
}

func (c *Context) Partial(name string, typeParams []*TypeParameter, build func([]Descriptor) Descriptor) *PartialDescriptor {
	return &PartialDescriptor{baseDescriptor{c}, name, typeParams, build, map[string]Descriptor{}}
}

func instantiationKey(args []Descriptor) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

// Apply materializes the descriptor for a specific set of type arguments.
// Build runs once per distinct argument list, producing fresh
// TypeParameter instances for it; applications with the same argument
// list return the cached descriptor and share its inference state.
func (d *PartialDescriptor) Apply(args ...Descriptor) Descriptor {
	key := instantiationKey(args)
	if cached, ok := d.cache[key]; ok {
		return cached
	}
	inst := d.Build(args)
	d.cache[key] = inst
	return inst
}

func (d *PartialDescriptor) TypeName() string { return "partial" }

func (d *PartialDescriptor) bare() Descriptor { return d.Apply() }

func (d *PartialDescriptor) Accepts(v any, instances ...Descriptor) bool {
	if len(instances) > 0 {
		return d.Apply(instances...).Accepts(v)
	}
	return d.bare().Accepts(v)
}

func (d *PartialDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	return d.bare().CollectErrors(val, path, v)
}

func (d *PartialDescriptor) AcceptsType(other Descriptor) bool {
	return d.bare().AcceptsType(other)
}

func (d *PartialDescriptor) Unwrap() Descriptor { return d.bare().Unwrap() }
func (d *PartialDescriptor) String() string     { return d.Name }

func (d *PartialDescriptor) ToJSON() map[string]any {
	return map[string]any{"typeName": "partial", "name": d.Name}
}
