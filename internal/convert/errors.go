package convert

import "fmt"

// Error is a fatal conversion failure — the converter cannot sensibly
// continue. duplicateNameError builds one for a duplicate name, but the
// conversion pass does not return it: a duplicate declaration panics in
// typedesc.Context.RegisterType instead.
// Non-fatal issues (unknown annotation kind, an unresolvable typeof
// target) are reported as Diagnostics instead and do not stop the pass.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func duplicateNameError(name string) error {
	return &Error{Kind: "duplicate-name", Message: fmt.Sprintf("convert: %q already declared in this module", name)}
}

// Diagnostic is a non-fatal note the converter collects along the way:
// an unknown annotation kind degrading to `any`, or similar (spec.md §7).
type Diagnostic struct {
	Kind    string
	Message string
}

// Diagnostics accumulates Diagnostic values across a conversion pass.
type Diagnostics []Diagnostic

func (d *Diagnostics) addf(kind, format string, args ...any) {
	*d = append(*d, Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (d *Diagnostics) unknownKind(ann any) {
	d.addf("unknown-kind", "convert: unrecognized annotation node %T, emitting any", ann)
}
