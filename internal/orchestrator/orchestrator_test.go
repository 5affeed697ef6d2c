package orchestrator

import (
	"testing"

	"github.com/runtype-lang/runtype/internal/annotast"
	"github.com/runtype-lang/runtype/internal/typedesc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noSpan = annotast.DefaultSpan

type recordingSink struct {
	warnings int
}

func (s *recordingSink) Warn(d typedesc.Descriptor, value any, records []typedesc.ErrorRecord) {
	s.warnings++
}

func pointModule() *annotast.Module {
	point := annotast.NewTypeAliasDecl("Point", nil, annotast.NewObjectTypeAnn([]annotast.ObjTypeAnnElem{
		&annotast.PropertyTypeAnn{Name: annotast.StrKey("x"), Value: annotast.NewNumberTypeAnn(noSpan)},
	}, false, noSpan), noSpan)
	return &annotast.Module{Decls: []annotast.Decl{point}}
}

func TestRunConvertsModuleAndExposesLookup(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	result, err := Run(ctx, pointModule())
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)

	desc, ok := ctx.Lookup("Point")
	require.True(t, ok)
	assert.True(t, desc.Accepts(map[string]any{"x": 1.0}))
}

func TestRunSuppressesNamedType(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	_, err := Run(ctx, pointModule(), "Point")
	require.NoError(t, err)

	_, ok := ctx.Lookup("Point")
	assert.False(t, ok, "a suppressed top-level name is never registered")
}

func incrementFunc() *typedesc.FunctionDescriptor {
	ctx := typedesc.NewContext(nil)
	return ctx.Function([]*typedesc.ParamSpec{ctx.Param("by", ctx.Number())}, nil, ctx.Number())
}

func TestWrapMethodAssertModeRejectsBadParams(t *testing.T) {
	fn := incrementFunc()
	fn.Context().SetMode(typedesc.ModeAssert)

	impl := WrapMethod(fn, func(args []any) (any, error) { return 1.0, nil })
	_, err := impl([]any{"not a number"})
	assert.Error(t, err)
}

func TestWrapMethodAssertModePassesGoodParamsAndReturn(t *testing.T) {
	fn := incrementFunc()
	fn.Context().SetMode(typedesc.ModeAssert)

	impl := WrapMethod(fn, func(args []any) (any, error) {
		return args[0].(float64) + 1, nil
	})
	result, err := impl([]any{1.0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, result)
}

func TestWrapMethodAssertModeRejectsBadReturn(t *testing.T) {
	fn := incrementFunc()
	fn.Context().SetMode(typedesc.ModeAssert)

	impl := WrapMethod(fn, func(args []any) (any, error) { return "not a number", nil })
	_, err := impl([]any{1.0})
	assert.Error(t, err)
}

func TestWrapMethodWarnModeCallsThroughAndEmitsWarning(t *testing.T) {
	sink := &recordingSink{}
	ctx := typedesc.NewContext(sink)
	ctx.SetMode(typedesc.ModeWarn)
	fn := ctx.Function([]*typedesc.ParamSpec{ctx.Param("by", ctx.Number())}, nil, ctx.Number())

	impl := WrapMethod(fn, func(args []any) (any, error) { return 1.0, nil })
	result, err := impl([]any{"not a number"})
	require.NoError(t, err, "warn mode never fails the call")
	assert.Equal(t, 1.0, result)
	assert.Equal(t, 1, sink.warnings)
}

func TestWrapMethodOffModeSkipsAllChecks(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	ctx.SetMode(typedesc.ModeOff)
	fn := ctx.Function([]*typedesc.ParamSpec{ctx.Param("by", ctx.Number())}, nil, ctx.Number())

	impl := WrapMethod(fn, func(args []any) (any, error) { return "not even a number", nil })
	result, err := impl([]any{"also wrong"})
	require.NoError(t, err)
	assert.Equal(t, "not even a number", result)
}

func TestWrapMethodPropagatesImplementationError(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	ctx.SetMode(typedesc.ModeAssert)
	fn := ctx.Function([]*typedesc.ParamSpec{ctx.Param("by", ctx.Number())}, nil, ctx.Number())

	implErr := assert.AnError
	impl := WrapMethod(fn, func(args []any) (any, error) { return nil, implErr })
	_, err := impl([]any{1.0})
	assert.Same(t, implErr, err, "an implementation error short-circuits before the return-value assertion")
}
