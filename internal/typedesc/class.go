package typedesc

// ClassDescriptor converts a `class Foo extends Bar { ... }` declaration.
// Like TypeScript, class conformance here is structural: a value
// satisfies a class descriptor by having the declared shape (own members
// plus everything Supers declare), not by carrying some runtime class
// tag (spec.md §4.5 `ClassDecl`). Name is carried for diagnostics and
// `AcceptsType` identity only.
type ClassDescriptor struct {
	*ObjectDescriptor
	Name   string
	Supers []Descriptor
}

func (c *Context) Class(name string, supers []Descriptor, members ...ObjMember) *ClassDescriptor {
	obj := &ObjectDescriptor{baseDescriptor{c}, members, false}
	return &ClassDescriptor{obj, name, supers}
}

func (d *ClassDescriptor) TypeName() string { return "class" }

func (d *ClassDescriptor) Accepts(v any, instances ...Descriptor) bool {
	for _, super := range d.Supers {
		if !super.Accepts(v, instances...) {
			return false
		}
	}
	return d.ObjectDescriptor.Accepts(v, instances...)
}

func (d *ClassDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	failed := false
	for _, super := range d.Supers {
		if super.CollectErrors(val, path, v) {
			failed = true
		}
	}
	if d.ObjectDescriptor.CollectErrors(val, path, v) {
		failed = true
	}
	return failed
}

func (d *ClassDescriptor) AcceptsType(other Descriptor) bool {
	if o, ok := other.Unwrap().(*ClassDescriptor); ok && o.Name == d.Name {
		return true
	}
	for _, super := range d.Supers {
		if super.AcceptsType(other) {
			return true
		}
	}
	return d.ObjectDescriptor.AcceptsType(other)
}

func (d *ClassDescriptor) Unwrap() Descriptor { return d }
func (d *ClassDescriptor) String() string     { return d.Name }

func (d *ClassDescriptor) ToJSON() map[string]any {
	out := d.ObjectDescriptor.ToJSON()
	out["typeName"] = "class"
	out["name"] = d.Name
	supers := make([]any, len(d.Supers))
	for i, s := range d.Supers {
		supers[i] = s.ToJSON()
	}
	out["supers"] = supers
	return out
}
