package convert

import (
	"testing"

	"github.com/runtype-lang/runtype/internal/typedesc"
	"github.com/stretchr/testify/assert"
)

func TestScopeClassifiesTypeParameterBeforeAlias(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	root := newRootScope()
	root.declareAlias("T")
	child := root.child()
	child.declareTypeParam("T", ctx.TypeParameter("T", nil))

	assert.Equal(t, ClassTypeParameter, child.Classify("T"), "an enclosing type parameter shadows a same-named alias")
}

func TestScopeClassifiesClassTypeParameterBeforeAlias(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	root := newRootScope()
	root.declareAlias("T")
	child := root.child()
	child.declareClassTypeParam("T", ctx.TypeParameter("T", nil))

	assert.Equal(t, ClassClassTypeParameter, child.Classify("T"))
}

func TestScopeClassifiesDeclaredAlias(t *testing.T) {
	root := newRootScope()
	root.declareAlias("Point")
	child := root.child()

	assert.Equal(t, ClassTypeAlias, child.Classify("Point"), "an alias declared by an ancestor scope is visible to children")
}

func TestScopeClassifiesUnknownNameAsExternal(t *testing.T) {
	root := newRootScope()
	assert.Equal(t, ClassExternalName, root.Classify("SomeHostType"))
}

func TestScopeChildDoesNotLeakToParent(t *testing.T) {
	ctx := typedesc.NewContext(nil)
	root := newRootScope()
	child := root.child()
	child.declareTypeParam("T", ctx.TypeParameter("T", nil))

	assert.Equal(t, ClassExternalName, root.Classify("T"), "a type parameter declared in a child scope is invisible to its parent")
}
