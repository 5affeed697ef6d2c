package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominalUsesRegisteredPredicate(t *testing.T) {
	ctx := NewContext(nil)
	ctx.RegisterPredicate("Even", func(v any) bool {
		n, ok := v.(float64)
		return ok && int(n)%2 == 0
	})

	even := ctx.Nominal("Even")
	assert.True(t, even.Accepts(2.0))
	assert.False(t, even.Accepts(3.0))
}

func TestNominalWithUnregisteredNameAlwaysRejects(t *testing.T) {
	ctx := NewContext(nil)
	unknown := ctx.Nominal("DoesNotExist")
	assert.False(t, unknown.Accepts("anything"))
	assert.False(t, unknown.Accepts(nil))
}

func TestNominalSeededPredicatesRecognizeBuiltins(t *testing.T) {
	ctx := NewContext(nil)
	arr := ctx.Nominal("Array")
	assert.True(t, arr.Accepts([]any{1.0, 2.0}))
	assert.False(t, arr.Accepts("not an array"))
}

func TestNominalAcceptsTypeComparesByName(t *testing.T) {
	ctx := NewContext(nil)
	ctx.RegisterPredicate("Even", func(any) bool { return true })
	ctx.RegisterPredicate("Odd", func(any) bool { return true })

	even := ctx.Nominal("Even")
	assert.True(t, even.AcceptsType(ctx.Nominal("Even")))
	assert.False(t, even.AcceptsType(ctx.Nominal("Odd")))
}
