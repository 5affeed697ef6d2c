package typedesc

// TupleDescriptor accepts sequences of at least len(Elems) whose first
// len(Elems) positions each accept the respective element descriptor
// (spec.md §4.1 `tuple(T1..Tn)`, §8 "tuple of length > input length rejects").
type TupleDescriptor struct {
	baseDescriptor
	Elems []Descriptor
}

func (c *Context) Tuple(elems ...Descriptor) Descriptor {
	return &TupleDescriptor{baseDescriptor{c}, elems}
}

func (d *TupleDescriptor) TypeName() string { return "tuple" }

func (d *TupleDescriptor) Accepts(v any, _ ...Descriptor) bool {
	elems, ok := asSlice(v)
	if !ok || len(elems) < len(d.Elems) {
		return false
	}
	for i, elemDesc := range d.Elems {
		if !elemDesc.Accepts(elems[i]) {
			return false
		}
	}
	return true
}

func (d *TupleDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	elems, ok := asSlice(v)
	if !ok || len(elems) < len(d.Elems) {
		val.Fail(path, d, v)
		return true
	}
	failed := false
	for i, elemDesc := range d.Elems {
		if elemDesc.CollectErrors(val, path.With(Index(i)), elems[i]) {
			failed = true
		}
	}
	return failed
}

func (d *TupleDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*TupleDescriptor)
	if !ok || len(o.Elems) < len(d.Elems) {
		return false
	}
	for i, elemDesc := range d.Elems {
		if !elemDesc.AcceptsType(o.Elems[i]) {
			return false
		}
	}
	return true
}

func (d *TupleDescriptor) Unwrap() Descriptor { return d }

func (d *TupleDescriptor) String() string {
	s := "["
	for i, e := range d.Elems {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + "]"
}

func (d *TupleDescriptor) ToJSON() map[string]any {
	elems := make([]any, len(d.Elems))
	for i, e := range d.Elems {
		elems[i] = e.ToJSON()
	}
	return map[string]any{"typeName": "tuple", "elems": elems}
}
