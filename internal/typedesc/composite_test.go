package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableAcceptsNullUndefinedOrInner(t *testing.T) {
	ctx := NewContext(nil)
	nullable := ctx.Nullable(ctx.String())

	assert.True(t, nullable.Accepts(nil))
	assert.True(t, nullable.Accepts(Undefined))
	assert.True(t, nullable.Accepts("hi"))
	assert.False(t, nullable.Accepts(1.0))
}

func TestArrayAcceptsEveryElement(t *testing.T) {
	ctx := NewContext(nil)
	arr := ctx.Array(ctx.Number())

	assert.True(t, arr.Accepts([]any{1.0, 2.0, 3.0}))
	assert.False(t, arr.Accepts([]any{1.0, "two"}))
	assert.False(t, arr.Accepts("not an array"))

	t.Run("empty array always accepts", func(t *testing.T) {
		assert.True(t, arr.Accepts([]any{}))
	})

	t.Run("reflect-inspected slices of concrete element types are accepted too", func(t *testing.T) {
		assert.True(t, arr.Accepts([]float64{1, 2, 3}))
	})
}

func TestTupleRejectsWhenShorterThanDeclared(t *testing.T) {
	ctx := NewContext(nil)
	tup := ctx.Tuple(ctx.Number(), ctx.String())

	assert.True(t, tup.Accepts([]any{1.0, "a"}))
	assert.True(t, tup.Accepts([]any{1.0, "a", true}), "extra trailing elements are permitted")
	assert.False(t, tup.Accepts([]any{1.0}), "tuple of length > input length rejects")
	assert.False(t, tup.Accepts([]any{"a", 1.0}), "element kinds must match positionally")
}

func TestTupleCollectErrorsRecordsIndexPaths(t *testing.T) {
	ctx := NewContext(nil)
	tup := ctx.Tuple(ctx.Number(), ctx.String())

	val := NewValidation()
	failed := tup.CollectErrors(val, nil, []any{"wrong", 1.0})
	require.True(t, failed)
	require.Len(t, val.Records, 2)
	assert.Equal(t, "[0]", val.Records[0].Path.String())
	assert.Equal(t, "[1]", val.Records[1].Path.String())
}

func TestArrayAcceptsTypeComparesElement(t *testing.T) {
	ctx := NewContext(nil)
	numArr := ctx.Array(ctx.Number())
	strArr := ctx.Array(ctx.String())

	assert.True(t, numArr.AcceptsType(ctx.Array(ctx.NumberLiteral(1))))
	assert.False(t, numArr.AcceptsType(strArr))
}
