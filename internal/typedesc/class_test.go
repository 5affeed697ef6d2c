package typedesc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassAcceptsOwnMembersAndSupers(t *testing.T) {
	ctx := NewContext(nil)
	named := ctx.Class("Named", nil, ctx.Property("name", ctx.String()))
	point := ctx.Class("Point", []Descriptor{named}, ctx.Property("x", ctx.Number()), ctx.Property("y", ctx.Number()))

	assert.True(t, point.Accepts(map[string]any{"name": "origin", "x": 0.0, "y": 0.0}))
	assert.False(t, point.Accepts(map[string]any{"x": 0.0, "y": 0.0}), "missing a super's required property rejects")
	assert.False(t, point.Accepts(map[string]any{"name": "origin", "x": 0.0}), "missing an own required property rejects")
}

func TestClassAcceptsTypeByNameIdentity(t *testing.T) {
	ctx := NewContext(nil)
	a := ctx.Class("Point", nil, ctx.Property("x", ctx.Number()))
	b := ctx.Class("Point", nil, ctx.Property("x", ctx.Number()), ctx.Property("y", ctx.Number()))
	other := ctx.Class("Other", nil, ctx.Property("x", ctx.Number()))

	assert.True(t, a.AcceptsType(b), "two class descriptors sharing a name are substitutable regardless of member differences")
	assert.False(t, a.AcceptsType(other), "a differently named class is not a ClassDescriptor match and object-level AcceptsType only unwraps to *ObjectDescriptor, not *ClassDescriptor")
}

func TestClassCollectErrorsReportsBothOwnAndSuperFailures(t *testing.T) {
	ctx := NewContext(nil)
	named := ctx.Class("Named", nil, ctx.Property("name", ctx.String()))
	point := ctx.Class("Point", []Descriptor{named}, ctx.Property("x", ctx.Number()))

	val := NewValidation()
	failed := point.CollectErrors(val, nil, map[string]any{})
	assert.True(t, failed)
	assert.NotEmpty(t, val.Records)
}
