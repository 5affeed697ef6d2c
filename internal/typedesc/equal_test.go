package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualComparesStructureNotIdentity(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Object(ctx.Property("x", ctx.Number()))
	b := ctx.Object(ctx.Property("x", ctx.Number()))

	assert.NotSame(t, a, b)
	assert.True(t, Equal(a, b), "two separately-built descriptors with the same shape are Equal")
}

func TestEqualDistinguishesDifferingShapes(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Object(ctx.Property("x", ctx.Number()))
	b := ctx.Object(ctx.Property("x", ctx.String()))
	assert.False(t, Equal(a, b))
}

func TestEqualHandlesNil(t *testing.T) {
	ctx := NewContext(nil)
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(ctx.Number(), nil))
}
