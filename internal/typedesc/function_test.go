package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionAcceptsOnlyCallableValues(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function(nil, nil, nil)

	assert.True(t, fn.Accepts(RuntimeFunc(func(args []any) (any, error) { return nil, nil })))
	assert.False(t, fn.Accepts("not callable"))
}

func TestAssertParamsRequiredOptionalAndRest(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function(
		[]*ParamSpec{
			ctx.Param("a", ctx.Number()),
			ctx.OptionalParam("b", ctx.String()),
		},
		ctx.Rest("more", ctx.Boolean()),
		nil,
	)

	assert.NoError(t, fn.AssertParams([]any{1.0}))
	assert.NoError(t, fn.AssertParams([]any{1.0, "x"}))
	assert.NoError(t, fn.AssertParams([]any{1.0, "x", true, false}))

	err := fn.AssertParams([]any{"wrong"})
	require.Error(t, err)
	failure, ok := err.(*Failure)
	require.True(t, ok)
	require.Len(t, failure.Records, 1)
	assert.Equal(t, "a", failure.Records[0].Path.String())

	err = fn.AssertParams([]any{1.0, "x", "not a bool"})
	require.Error(t, err)
	failure = err.(*Failure)
	require.Len(t, failure.Records, 1)
	assert.Equal(t, "[2]", failure.Records[0].Path.String())
}

func TestAssertParamsMissingRequiredRecordsUndefined(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function([]*ParamSpec{ctx.Param("a", ctx.Number())}, nil, nil)

	err := fn.AssertParams(nil)
	require.Error(t, err)
	failure := err.(*Failure)
	require.Len(t, failure.Records, 1)
	assert.Equal(t, Undefined, failure.Records[0].Actual)
}

func TestAssertParamsMissingOptionalIsFine(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function([]*ParamSpec{ctx.OptionalParam("a", ctx.Number())}, nil, nil)
	assert.NoError(t, fn.AssertParams(nil))
}

func TestAssertReturn(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function(nil, nil, ctx.Number())

	assert.NoError(t, fn.AssertReturn(1.0))
	err := fn.AssertReturn("wrong")
	require.Error(t, err)
	failure := err.(*Failure)
	require.Len(t, failure.Records, 1)
	assert.Equal(t, "return", failure.Records[0].Path.String())
}

func TestAssertReturnVoidFunctionNeverFails(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function(nil, nil, nil)
	assert.NoError(t, fn.AssertReturn("anything"))
}

func TestFunctionAcceptsTypeIsContravariantInParamsCovariantInReturn(t *testing.T) {
	ctx := NewContext(nil)

	// (x: number) => number
	narrow := ctx.Function([]*ParamSpec{ctx.Param("x", ctx.Number())}, nil, ctx.Number())
	// (x: any) => 1 -- accepts a wider param and a narrower (literal) return
	wide := ctx.Function([]*ParamSpec{ctx.Param("x", ctx.Any())}, nil, ctx.NumberLiteral(1))

	assert.True(t, narrow.AcceptsType(wide), "a function accepting a wider param and returning a narrower value is substitutable")
	assert.False(t, wide.AcceptsType(narrow), "the reverse is not substitutable")
}
