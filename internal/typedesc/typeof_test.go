package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOfPrimitives(t *testing.T) {
	ctx := NewContext(nil)
	assert.Equal(t, "null", ctx.TypeOf(nil).String())
	assert.Equal(t, "void", ctx.TypeOf(Undefined).String())
	assert.Equal(t, "boolean", ctx.TypeOf(true).String())
	assert.Equal(t, "number", ctx.TypeOf(1.0).String())
	assert.Equal(t, "number", ctx.TypeOf(1).String())
	assert.Equal(t, "string", ctx.TypeOf("a").String())
}

func TestTypeOfEmptyArrayIsArrayOfAny(t *testing.T) {
	ctx := NewContext(nil)
	inferred := ctx.TypeOf([]any{})
	arr, ok := inferred.(*ArrayDescriptor)
	if assert.True(t, ok) {
		assert.Equal(t, "any", arr.Elem.String())
	}
}

func TestTypeOfArrayUnionsElementShapes(t *testing.T) {
	ctx := NewContext(nil)
	inferred := ctx.TypeOf([]any{1.0, "a"})
	assert.True(t, inferred.Accepts([]any{2.0, "b", 3.0}))
	assert.False(t, inferred.Accepts([]any{true}))
}

func TestTypeOfObjectInfersOneLevelDeep(t *testing.T) {
	ctx := NewContext(nil)
	inferred := ctx.TypeOf(map[string]any{"x": 1.0, "y": "a"})
	assert.True(t, inferred.Accepts(map[string]any{"x": 2.0, "y": "b"}))
	assert.False(t, inferred.Accepts(map[string]any{"x": "wrong", "y": "b"}))
}

func TestTypeOfUnrecognizedValueFallsBackToAny(t *testing.T) {
	ctx := NewContext(nil)
	type hostValue struct{ n int }
	inferred := ctx.TypeOf(hostValue{n: 1})
	assert.Equal(t, "any", inferred.String())
}
