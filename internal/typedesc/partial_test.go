package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialAppliesTypeArguments(t *testing.T) {
	ctx := NewContext(nil)
	box := ctx.Partial("Box", nil, func(args []Descriptor) Descriptor {
		return ctx.Object(ctx.Property("value", args[0]))
	})

	numberBox := box.Apply(ctx.Number())
	assert.True(t, numberBox.Accepts(map[string]any{"value": 1.0}))
	assert.False(t, numberBox.Accepts(map[string]any{"value": "wrong"}))
}

func TestPartialCachesByInstantiationKey(t *testing.T) {
	ctx := NewContext(nil)
	calls := 0
	box := ctx.Partial("Box", nil, func(args []Descriptor) Descriptor {
		calls++
		return ctx.Object(ctx.Property("value", args[0]))
	})

	first := box.Apply(ctx.Number())
	second := box.Apply(ctx.Number())
	assert.Same(t, first, second, "repeated applications with the same type arguments share one instance")
	assert.Equal(t, 1, calls)

	box.Apply(ctx.String())
	assert.Equal(t, 2, calls, "a distinct type argument list materializes a fresh instance")
}

func TestPartialAcceptsWithoutInstancesUsesBareApplication(t *testing.T) {
	ctx := NewContext(nil)
	box := ctx.Partial("Box", nil, func(args []Descriptor) Descriptor {
		if len(args) == 0 {
			return ctx.Object(ctx.Property("value", ctx.Any()))
		}
		return ctx.Object(ctx.Property("value", args[0]))
	})

	assert.True(t, box.Accepts(map[string]any{"value": "anything"}))
}
