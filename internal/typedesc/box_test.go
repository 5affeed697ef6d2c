package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxDefersBuildUntilFirstUse(t *testing.T) {
	ctx := NewContext(nil)
	calls := 0
	boxed := ctx.Box(func() Descriptor {
		calls++
		return ctx.Number()
	})

	assert.Equal(t, 0, calls, "nothing forces the thunk before first use")
	boxed.Accepts(1.0)
	assert.Equal(t, 1, calls)
	boxed.Accepts(2.0)
	assert.Equal(t, 1, calls, "subsequent uses reuse the cached inner descriptor")
}

func TestBoxSupportsSelfReferentialAlias(t *testing.T) {
	ctx := NewContext(nil)
	// type List = { value: number, next: ?List }
	ctx.Type("List", func() Descriptor {
		return ctx.Object(
			ctx.Property("value", ctx.Number()),
			ctx.Property("next", ctx.Nullable(ctx.Ref("List"))),
		)
	})

	list, ok := ctx.Lookup("List")
	assert.True(t, ok)
	assert.True(t, list.Accepts(map[string]any{
		"value": 1.0,
		"next": map[string]any{
			"value": 2.0,
			"next":  nil,
		},
	}))
	assert.False(t, list.Accepts(map[string]any{"value": "not a number", "next": nil}))
}
