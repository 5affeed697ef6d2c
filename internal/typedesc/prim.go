package typedesc

import "fmt"

// anyLikeDescriptor backs Any, Mixed, and Existential: all three always
// accept (spec.md §4.1), but are kept as distinct variants so toString()
// round-trips the spelling the annotation used.
type anyLikeDescriptor struct {
	baseDescriptor
	name string
}

func newAnyLike(ctx *Context, name string) *anyLikeDescriptor {
	return &anyLikeDescriptor{baseDescriptor{ctx}, name}
}

func (d *anyLikeDescriptor) TypeName() string { return d.name }
func (d *anyLikeDescriptor) Accepts(v any, _ ...Descriptor) bool { return true }
func (d *anyLikeDescriptor) CollectErrors(val *Validation, path Path, v any) bool { return false }
func (d *anyLikeDescriptor) AcceptsType(other Descriptor) bool { return true }
func (d *anyLikeDescriptor) Unwrap() Descriptor                { return d }
func (d *anyLikeDescriptor) String() string                    { return d.name }
func (d *anyLikeDescriptor) ToJSON() map[string]any {
	return map[string]any{"typeName": d.name}
}

func (c *Context) Any() Descriptor         { return newAnyLike(c, "any") }
func (c *Context) Mixed() Descriptor       { return newAnyLike(c, "mixed") }
func (c *Context) Existential() Descriptor { return newAnyLike(c, "existential") }

func isAnyLike(d Descriptor) bool {
	if d == nil {
		return false
	}
	_, ok := d.Unwrap().(*anyLikeDescriptor)
	return ok
}

// EmptyDescriptor always rejects (spec.md §4.1 `empty`).
type EmptyDescriptor struct{ baseDescriptor }

func (c *Context) Empty() Descriptor { return &EmptyDescriptor{baseDescriptor{c}} }

func (d *EmptyDescriptor) TypeName() string                                      { return "empty" }
func (d *EmptyDescriptor) Accepts(v any, _ ...Descriptor) bool                    { return false }
func (d *EmptyDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	val.Fail(path, d, v)
	return true
}
func (d *EmptyDescriptor) AcceptsType(other Descriptor) bool { return false }
func (d *EmptyDescriptor) Unwrap() Descriptor                { return d }
func (d *EmptyDescriptor) String() string                    { return "empty" }
func (d *EmptyDescriptor) ToJSON() map[string]any             { return map[string]any{"typeName": "empty"} }

// VoidDescriptor accepts only Undefined.
type VoidDescriptor struct{ baseDescriptor }

func (c *Context) Void() Descriptor { return &VoidDescriptor{baseDescriptor{c}} }

func (d *VoidDescriptor) TypeName() string { return "void" }
func (d *VoidDescriptor) Accepts(v any, _ ...Descriptor) bool { return v == Undefined }
func (d *VoidDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Accepts(v) {
		return false
	}
	val.Fail(path, d, v)
	return true
}
func (d *VoidDescriptor) AcceptsType(other Descriptor) bool {
	_, ok := other.Unwrap().(*VoidDescriptor)
	return ok
}
func (d *VoidDescriptor) Unwrap() Descriptor    { return d }
func (d *VoidDescriptor) String() string        { return "void" }
func (d *VoidDescriptor) ToJSON() map[string]any { return map[string]any{"typeName": "void"} }

// NullDescriptor accepts only nil (JS `null`).
type NullDescriptor struct{ baseDescriptor }

func (c *Context) Null() Descriptor { return &NullDescriptor{baseDescriptor{c}} }

func (d *NullDescriptor) TypeName() string                       { return "null" }
func (d *NullDescriptor) Accepts(v any, _ ...Descriptor) bool     { return v == nil }
func (d *NullDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Accepts(v) {
		return false
	}
	val.Fail(path, d, v)
	return true
}
func (d *NullDescriptor) AcceptsType(other Descriptor) bool {
	_, ok := other.Unwrap().(*NullDescriptor)
	return ok
}
func (d *NullDescriptor) Unwrap() Descriptor    { return d }
func (d *NullDescriptor) String() string        { return "null" }
func (d *NullDescriptor) ToJSON() map[string]any { return map[string]any{"typeName": "null"} }

// Prim is the kind of JS-style primitive a PrimDescriptor checks typeof
// against.
type Prim string

const (
	NumberPrim  Prim = "number"
	StringPrim  Prim = "string"
	BooleanPrim Prim = "boolean"
	SymbolPrim  Prim = "symbol"
)

// PrimDescriptor checks `typeof v === Prim`; if Literal is non-nil it
// additionally requires `v === *Literal` (spec.md §4.1).
type PrimDescriptor struct {
	baseDescriptor
	Prim    Prim
	Literal any // optional: float64 | string | bool
}

func (c *Context) Number() Descriptor  { return &PrimDescriptor{baseDescriptor{c}, NumberPrim, nil} }
func (c *Context) String() Descriptor { return &PrimDescriptor{baseDescriptor{c}, StringPrim, nil} }
func (c *Context) Boolean() Descriptor { return &PrimDescriptor{baseDescriptor{c}, BooleanPrim, nil} }
func (c *Context) Symbol() Descriptor  { return &PrimDescriptor{baseDescriptor{c}, SymbolPrim, nil} }

func (c *Context) NumberLiteral(v float64) Descriptor {
	return &PrimDescriptor{baseDescriptor{c}, NumberPrim, v}
}
func (c *Context) StringLiteral(v string) Descriptor {
	return &PrimDescriptor{baseDescriptor{c}, StringPrim, v}
}
func (c *Context) BooleanLiteral(v bool) Descriptor {
	return &PrimDescriptor{baseDescriptor{c}, BooleanPrim, v}
}

func (d *PrimDescriptor) TypeName() string {
	if d.Literal != nil {
		return "literal"
	}
	return string(d.Prim)
}

func (d *PrimDescriptor) Accepts(v any, _ ...Descriptor) bool {
	switch d.Prim {
	case NumberPrim:
		n, ok := v.(float64)
		if !ok {
			return false
		}
		if d.Literal != nil {
			return n == d.Literal.(float64)
		}
		return true
	case StringPrim:
		s, ok := v.(string)
		if !ok {
			return false
		}
		if d.Literal != nil {
			return s == d.Literal.(string)
		}
		return true
	case BooleanPrim:
		b, ok := v.(bool)
		if !ok {
			return false
		}
		if d.Literal != nil {
			return b == d.Literal.(bool)
		}
		return true
	case SymbolPrim:
		_, ok := v.(Symbol)
		return ok
	default:
		return false
	}
}

func (d *PrimDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	if d.Accepts(v) {
		return false
	}
	val.Fail(path, d, v)
	return true
}

func (d *PrimDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*PrimDescriptor)
	if !ok {
		return false
	}
	if o.Prim != d.Prim {
		return false
	}
	if d.Literal != nil {
		return o.Literal == d.Literal
	}
	// a bare primitive accepts any literal of the same prim kind (widening)
	return true
}

func (d *PrimDescriptor) Unwrap() Descriptor { return d }

func (d *PrimDescriptor) String() string {
	if d.Literal == nil {
		return string(d.Prim)
	}
	switch d.Prim {
	case StringPrim:
		return fmt.Sprintf("%q", d.Literal)
	default:
		return fmt.Sprintf("%v", d.Literal)
	}
}

func (d *PrimDescriptor) ToJSON() map[string]any {
	m := map[string]any{"typeName": d.TypeName(), "prim": string(d.Prim)}
	if d.Literal != nil {
		m["literal"] = d.Literal
	}
	return m
}

// Symbol is a unique runtime symbol value (JS `Symbol()`), distinguished
// by identity rather than by any carried payload.
type Symbol struct {
	id    int
	Label string
}

var symbolSeq int

func NewSymbol(label string) Symbol {
	symbolSeq++
	return Symbol{id: symbolSeq, Label: label}
}
