package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextModeInheritsFromNearestAncestor(t *testing.T) {
	root := NewContext(nil)
	class := root.Child("Foo")
	method := class.Child("bar")

	assert.Equal(t, ModeAssert, method.Mode(), "defaults to the root's assert mode")

	class.SetMode(ModeWarn)
	assert.Equal(t, ModeWarn, method.Mode(), "a child with no mode of its own inherits the nearest ancestor override")

	method.SetMode(ModeOff)
	assert.Equal(t, ModeOff, method.Mode(), "an explicit override on the child itself wins")
	assert.Equal(t, ModeWarn, class.Mode(), "the override is local to the child, not propagated back up")
}

func TestRegisterTypePanicsOnRedeclaration(t *testing.T) {
	ctx := NewContext(nil)
	ctx.RegisterType("Foo", ctx.Number())

	assert.Panics(t, func() {
		ctx.RegisterType("Foo", ctx.String())
	})
}

func TestRegisterPredicateOverwritesSilently(t *testing.T) {
	ctx := NewContext(nil)
	ctx.RegisterPredicate("Custom", func(any) bool { return false })
	ctx.RegisterPredicate("Custom", func(any) bool { return true })

	pred, ok := ctx.Predicate("Custom")
	assert.True(t, ok)
	assert.True(t, pred(nil), "the later registration wins with no panic")
}

func TestLookupWalksAncestorChain(t *testing.T) {
	root := NewContext(nil)
	root.RegisterType("Foo", root.Number())
	child := root.Child("inner")

	d, ok := child.Lookup("Foo")
	assert.True(t, ok)
	assert.Equal(t, "number", d.String())

	_, ok = child.Lookup("DoesNotExist")
	assert.False(t, ok)
}

func TestChildNameRegistryShadowsWithoutPanicking(t *testing.T) {
	root := NewContext(nil)
	root.RegisterType("Foo", root.Number())
	child := root.Child("inner")

	assert.NotPanics(t, func() {
		child.RegisterType("Foo", child.String())
	})
	d, _ := child.Lookup("Foo")
	assert.Equal(t, "string", d.String())
}
