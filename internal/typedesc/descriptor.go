package typedesc

import (
	"fmt"
	"reflect"
)

// Descriptor is the closed tagged union every type descriptor variant
// implements (spec.md §3, §4.1). Dispatch is by Go type switch rather
// than a `typeName` string compare in the hot path, but TypeName() is
// still carried for diagnostics, ToJSON, and the occasional cheap
// discriminator check the way the teacher's `isType()` marker methods do.
type Descriptor interface {
	TypeName() string
	Context() *Context
	// Accepts reports whether v structurally conforms. typeInstances are
	// only meaningful for parameterized descriptors applied inline.
	Accepts(v any, typeInstances ...Descriptor) bool
	// CollectErrors is Accepts with bookkeeping: it returns did-fail and
	// records (path, expected, actual) tuples into val on mismatch.
	CollectErrors(val *Validation, path Path, v any) bool
	// AcceptsType reports whether another descriptor is a structural
	// subtype of this one (used for variance checks between signatures).
	AcceptsType(other Descriptor) bool
	// Unwrap resolves references/parameters to their current concrete
	// descriptor. Idempotent: Unwrap().Unwrap() == Unwrap().
	Unwrap() Descriptor
	String() string
	ToJSON() map[string]any
}

// Check runs d against v under d.Context().Mode(), exactly the state
// machine in spec.md §4.3.
func Check(d Descriptor, v any) (any, error) {
	ctx := d.Context()
	switch ctx.Mode() {
	case ModeOff:
		return v, nil
	case ModeWarn:
		val := NewValidation()
		if d.CollectErrors(val, nil, v) {
			ctx.emitWarning(d, v, val)
		}
		return v, nil
	default: // ModeAssert
		val := NewValidation()
		if d.CollectErrors(val, nil, v) {
			return v, &Failure{Descriptor: d, Records: val.Records}
		}
		return v, nil
	}
}

// Assert always raises on mismatch regardless of context mode — the
// unconditional counterpart to Check, used at checkpoints the host marks
// as assertion sites even when warn/off governs ordinary value sites.
func Assert(d Descriptor, v any) (any, error) {
	val := NewValidation()
	if d.CollectErrors(val, nil, v) {
		return v, &Failure{Descriptor: d, Records: val.Records}
	}
	return v, nil
}

// Warn always collects and routes to the sink regardless of mode,
// returning v unconditionally (JS `flow-runtime`'s `.warn(v)`).
func Warn(d Descriptor, v any) any {
	val := NewValidation()
	if d.CollectErrors(val, nil, v) {
		d.Context().emitWarning(d, v, val)
	}
	return v
}

// baseDescriptor is embedded by every descriptor variant to carry the
// owning context, the way every type_system.*Type carries a provenance.
type baseDescriptor struct {
	ctx *Context
}

func (b baseDescriptor) Context() *Context { return b.ctx }

func describe(v any) string {
	if v == nil {
		return "null"
	}
	if v == Undefined {
		return "undefined"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return fmt.Sprintf("%s %v", rv.Kind(), v)
	default:
		return fmt.Sprintf("%T(%v)", v, v)
	}
}

// undefinedT is the sentinel used to distinguish JS-style `undefined`
// from Go's `nil` (which stands in for `null`, spec.md §4.1).
type undefinedT struct{}

var Undefined = undefinedT{}
