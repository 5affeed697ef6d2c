// Package orchestrator is the single entry point a host calls to turn an
// annotated module into live checking: it converts every declaration
// (spec.md §4.6) and gives callers a way to wrap a class method so its
// call boundary enforces AssertParams/AssertReturn the way a generated
// constructor body would if this port emitted host source.
package orchestrator

import (
	"github.com/runtype-lang/runtype/internal/annotast"
	"github.com/runtype-lang/runtype/internal/convert"
	"github.com/runtype-lang/runtype/internal/typedesc"
)

// Result bundles the outcome of one orchestrator pass: the name registry
// is already live on ctx by the time Run returns, so Result mostly exists
// to surface non-fatal diagnostics collected along the way.
type Result struct {
	Diagnostics convert.Diagnostics
}

// Run performs the single pass spec.md §4.6 describes: predicate seeds
// are already registered at typedesc.NewContext construction (not here —
// there is exactly one seeding site), so a pass is just converting every
// top-level declaration of mod against ctx.
// suppressTypeNames collapses the named types to Any() per spec.md §6's
// Configuration.
func Run(ctx *typedesc.Context, mod *annotast.Module, suppressTypeNames ...string) (*Result, error) {
	conv := convert.New(ctx, suppressTypeNames...)
	if err := conv.ConvertModule(mod); err != nil {
		return &Result{Diagnostics: conv.Diagnostics()}, err
	}
	return &Result{Diagnostics: conv.Diagnostics()}, nil
}

// Method is the erased shape of a class method body once converted: no
// host emitter generates a receiver for it in this port, so a method is
// modeled as a plain positional-argument function (mirrors
// typedesc.RuntimeFunc, one level up at the call-boundary rather than the
// value-acceptance level).
type Method func(args []any) (any, error)

// WrapMethod is the runtime stand-in for what a host code emitter would
// otherwise weave into a generated method body: on entry it runs
// AssertParams against fn's descriptor, then runs impl, then runs
// AssertReturn against the result — gated by fn.Context().Mode() exactly
// as Check gates an ordinary value site (spec.md §4.3's state machine
// reused at a call boundary instead of a single value): off skips both
// checks, warn collects and routes to the context's sink without failing
// the call, assert raises.
func WrapMethod(fn *typedesc.FunctionDescriptor, impl Method) Method {
	return func(args []any) (any, error) {
		mode := fn.Context().Mode()

		if mode != typedesc.ModeOff {
			if err := fn.AssertParams(args); err != nil {
				if mode == typedesc.ModeAssert {
					return nil, err
				}
				emitMethodWarning(fn, err)
			}
		}

		result, implErr := impl(args)
		if implErr != nil {
			return result, implErr
		}

		if mode != typedesc.ModeOff && fn.Return != nil {
			if err := fn.AssertReturn(result); err != nil {
				if mode == typedesc.ModeAssert {
					return result, err
				}
				emitMethodWarning(fn, err)
			}
		}

		return result, nil
	}
}

func emitMethodWarning(fn *typedesc.FunctionDescriptor, err error) {
	failure, ok := err.(*typedesc.Failure)
	if !ok {
		return
	}
	fn.Context().EmitWarning(fn, nil, failure.Records)
}
