package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectAcceptsRequiredAndOptionalProperties(t *testing.T) {
	ctx := NewContext(nil)
	obj := ctx.Object(
		ctx.Property("name", ctx.String()),
		ctx.OptionalProperty("nickname", ctx.String()),
	)

	assert.True(t, obj.Accepts(map[string]any{"name": "a"}))
	assert.True(t, obj.Accepts(map[string]any{"name": "a", "nickname": "b"}))
	assert.False(t, obj.Accepts(map[string]any{}), "missing required property rejects")
	assert.False(t, obj.Accepts(map[string]any{"name": "a", "nickname": 1.0}), "wrong optional-property type rejects")
}

func TestExactObjectRejectsExtraKeys(t *testing.T) {
	ctx := NewContext(nil)
	exact := ctx.ExactObject(ctx.Property("x", ctx.Number()))

	assert.True(t, exact.Accepts(map[string]any{"x": 1.0}))
	assert.False(t, exact.Accepts(map[string]any{"x": 1.0, "y": 2.0}), "own key beyond the declared shape rejects")
}

func TestOpenObjectPermitsExtraKeys(t *testing.T) {
	ctx := NewContext(nil)
	open := ctx.Object(ctx.Property("x", ctx.Number()))
	assert.True(t, open.Accepts(map[string]any{"x": 1.0, "y": 2.0}))
}

func TestObjectIndexerCoversExtraKeys(t *testing.T) {
	ctx := NewContext(nil)
	obj := ctx.Object(ctx.Indexer(StringPrim, ctx.Number()))

	assert.True(t, obj.Accepts(map[string]any{"a": 1.0, "b": 2.0}))
	assert.False(t, obj.Accepts(map[string]any{"a": "not a number"}))
}

func TestObjectMethodMemberRequiresCallable(t *testing.T) {
	ctx := NewContext(nil)
	obj := ctx.Object(ctx.Method("run", ctx.Function(nil, nil, nil)))

	fn := RuntimeFunc(func(args []any) (any, error) { return nil, nil })
	assert.True(t, obj.Accepts(map[string]any{"run": fn}))
	assert.False(t, obj.Accepts(map[string]any{"run": "not callable"}))
}

func TestObjectCollectErrorsPathsIncludePropertyName(t *testing.T) {
	ctx := NewContext(nil)
	obj := ctx.Object(ctx.Property("name", ctx.String()))

	val := NewValidation()
	failed := obj.CollectErrors(val, nil, map[string]any{"name": 1.0})
	require.True(t, failed)
	require.Len(t, val.Records, 1)
	assert.Equal(t, "name", val.Records[0].Path.String())
}

func TestObjectMethodLookupByName(t *testing.T) {
	ctx := NewContext(nil)
	fn := ctx.Function(nil, nil, ctx.Number())
	objDesc := ctx.Object(ctx.Method("run", fn))
	ordinary := objDesc.(*ObjectDescriptor)

	got, ok := ordinary.Method("run")
	require.True(t, ok)
	assert.Same(t, fn, got)

	_, ok = ordinary.Method("missing")
	assert.False(t, ok)
}
