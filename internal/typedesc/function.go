package typedesc

import "fmt"

// RuntimeFunc is how callable values flow through this runtime: an
// erased, variadic Go func so FunctionDescriptor never needs reflection
// over a caller's concrete signature. A converted function annotation
// wraps a real implementation in a RuntimeFunc at the call boundary.
type RuntimeFunc func(args []any) (any, error)

func (f RuntimeFunc) Call(args []any) (any, error) { return f(args) }

// ParamSpec describes one positional parameter of a function descriptor.
type ParamSpec struct {
	Name     string
	Type     Descriptor
	Optional bool
}

// FunctionDescriptor accepts any callable value; it does not introspect
// the callable's actual signature (Go erases that at the RuntimeFunc
// boundary). Structural checking of arguments and return value only
// happens when AssertParams/AssertReturn are invoked explicitly, at the
// call site the orchestrator wraps (spec.md §4.1 `function(params, rest,
// returns)`, §4.6 `WrapMethod`).
type FunctionDescriptor struct {
	baseDescriptor
	Params     []*ParamSpec
	Rest       *ParamSpec
	TypeParams []*TypeParameter
	Return     Descriptor
}

func (c *Context) Function(params []*ParamSpec, rest *ParamSpec, ret Descriptor) *FunctionDescriptor {
	return &FunctionDescriptor{baseDescriptor{c}, params, rest, nil, ret}
}

func (c *Context) Param(name string, t Descriptor) *ParamSpec {
	return &ParamSpec{Name: name, Type: t}
}

func (c *Context) OptionalParam(name string, t Descriptor) *ParamSpec {
	return &ParamSpec{Name: name, Type: t, Optional: true}
}

func (d *FunctionDescriptor) TypeName() string { return "function" }

func (d *FunctionDescriptor) Accepts(v any, _ ...Descriptor) bool {
	return isCallable(v)
}

func (d *FunctionDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if !isCallable(v) {
		val.Fail(path, d, v)
		return true
	}
	return false
}

// AssertParams validates args positionally against Params/Rest and
// returns the aggregated Failure (or nil) — the compile-time-unknown,
// runtime-checked half of a converted function's call boundary.
func (d *FunctionDescriptor) AssertParams(args []any) error {
	val := NewValidation()
	for i, p := range d.Params {
		path := Path{}.With(Param(p.Name))
		if i >= len(args) {
			if !p.Optional {
				val.Fail(path, p.Type, Undefined)
			}
			continue
		}
		p.Type.CollectErrors(val, path, args[i])
	}
	if d.Rest != nil {
		// Rest.Type is the array type (see Context.Rest); each trailing
		// argument is checked against its element type.
		elem := d.Rest.Type
		if arr, ok := elem.(*ArrayDescriptor); ok {
			elem = arr.Elem
		}
		for i := len(d.Params); i < len(args); i++ {
			elem.CollectErrors(val, Path{}.With(Index(i)), args[i])
		}
	}
	if val.Empty() {
		return nil
	}
	return &Failure{Descriptor: d, Records: val.Records}
}

// AssertReturn validates a function's return value against Return.
func (d *FunctionDescriptor) AssertReturn(v any) error {
	if d.Return == nil {
		return nil
	}
	val := NewValidation()
	d.Return.CollectErrors(val, Path{}.With(Return()), v)
	if val.Empty() {
		return nil
	}
	return &Failure{Descriptor: d, Records: val.Records}
}

func (d *FunctionDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*FunctionDescriptor)
	if !ok {
		return false
	}
	if len(o.Params) < len(d.Params) {
		return false
	}
	for i, p := range d.Params {
		// parameters are contravariant: the other function's parameter
		// type must accept (at least) what this one promises to pass.
		if !o.Params[i].Type.AcceptsType(p.Type) {
			return false
		}
	}
	if d.Return != nil {
		if o.Return == nil {
			return false
		}
		if !d.Return.AcceptsType(o.Return) {
			return false
		}
	}
	return true
}

func (d *FunctionDescriptor) Unwrap() Descriptor { return d }

func (d *FunctionDescriptor) String() string {
	s := "("
	for i, p := range d.Params {
		if i > 0 {
			s += ", "
		}
		if p.Optional {
			s += fmt.Sprintf("%s?: %s", p.Name, p.Type.String())
		} else {
			s += fmt.Sprintf("%s: %s", p.Name, p.Type.String())
		}
	}
	if d.Rest != nil {
		if len(d.Params) > 0 {
			s += ", "
		}
		s += "..." + d.Rest.Name + ": " + d.Rest.Type.String()
	}
	s += ") => "
	if d.Return != nil {
		s += d.Return.String()
	} else {
		s += "void"
	}
	return s
}

func (d *FunctionDescriptor) ToJSON() map[string]any {
	params := make([]any, len(d.Params))
	for i, p := range d.Params {
		params[i] = map[string]any{"name": p.Name, "optional": p.Optional, "type": p.Type.ToJSON()}
	}
	out := map[string]any{"typeName": "function", "params": params}
	if d.Rest != nil {
		out["rest"] = map[string]any{"name": d.Rest.Name, "type": d.Rest.Type.ToJSON()}
	}
	if d.Return != nil {
		out["return"] = d.Return.ToJSON()
	}
	return out
}
