package typedesc

// NominalDescriptor accepts a value iff a registered predicate recognizes
// it, bypassing structural shape entirely (spec.md §6's `Array`,
// `$ReadOnlyArray`, `Map`, `Set`, `Promise` predicates; also used for
// host/opaque types an annotation only names, never structurally describes).
type NominalDescriptor struct {
	baseDescriptor
	Name      string
	Predicate func(any) bool
}

// Nominal looks up Name in the context's predicate registry at
// construction time. A name with no registered predicate always rejects,
// mirroring how an unrecognized nominal annotation degrades to a
// type nothing but `any` can satisfy rather than panicking at build time.
func (c *Context) Nominal(name string) Descriptor {
	pred, ok := c.Predicate(name)
	if !ok {
		pred = func(any) bool { return false }
	}
	return &NominalDescriptor{baseDescriptor{c}, name, pred}
}

func (d *NominalDescriptor) TypeName() string { return "nominal" }

func (d *NominalDescriptor) Accepts(v any, _ ...Descriptor) bool {
	return d.Predicate(v)
}

func (d *NominalDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Predicate(v) {
		return false
	}
	val.Fail(path, d, v)
	return true
}

func (d *NominalDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*NominalDescriptor)
	return ok && o.Name == d.Name
}

func (d *NominalDescriptor) Unwrap() Descriptor { return d }
func (d *NominalDescriptor) String() string     { return d.Name }

func (d *NominalDescriptor) ToJSON() map[string]any {
	return map[string]any{"typeName": "nominal", "name": d.Name}
}
