package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionRequiresEveryBranch(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Object(ctx.Property("a", ctx.Number()))
	b := ctx.Object(ctx.Property("b", ctx.String()))
	i := ctx.Intersect(a, b)

	assert.True(t, i.Accepts(map[string]any{"a": 1.0, "b": "x"}))
	assert.False(t, i.Accepts(map[string]any{"a": 1.0}))
	assert.False(t, i.Accepts(map[string]any{"b": "x"}))
}

func TestIntersectionShortCircuitsAtFirstFailingBranch(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Object(ctx.Property("a", ctx.Number()))
	b := ctx.Object(ctx.Property("b", ctx.String()))
	i := ctx.Intersect(a, b)

	val := NewValidation()
	failed := i.CollectErrors(val, nil, map[string]any{"b": 1.0})
	require.True(t, failed)
	require.Len(t, val.Records, 1, "only the first failing branch's own records surface")
	assert.Equal(t, "a", val.Records[0].Path.String())
}

func TestIntersectionFlattensNestedIntersections(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Object(ctx.Property("a", ctx.Number()))
	b := ctx.Object(ctx.Property("b", ctx.String()))
	c := ctx.Object(ctx.Property("c", ctx.Boolean()))

	inner := ctx.Intersect(a, b)
	outer := ctx.Intersect(inner, c)

	flat, ok := outer.(*IntersectionDescriptor)
	require.True(t, ok)
	assert.Len(t, flat.Types, 3)
}

func TestIntersectionOfOneCollapses(t *testing.T) {
	ctx := NewContext(nil)
	i := ctx.Intersect(ctx.Number())
	_, isIntersection := i.(*IntersectionDescriptor)
	assert.False(t, isIntersection)
	assert.Equal(t, "number", i.String())
}
