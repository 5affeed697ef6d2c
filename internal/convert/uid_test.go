package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassUIDsAreDistinctAndNamePrefixed(t *testing.T) {
	staticUID, instanceUID := classUIDs("Point")

	assert.True(t, strings.HasPrefix(staticUID, "pointTypeParameters_"))
	assert.True(t, strings.HasPrefix(instanceUID, "pointTypeParametersSymbol_"))
	assert.NotEqual(t, staticUID, instanceUID)
}

func TestClassUIDsVaryAcrossCalls(t *testing.T) {
	first, _ := classUIDs("Foo")
	second, _ := classUIDs("Foo")
	assert.NotEqual(t, first, second, "each call mints a fresh tag so repeated conversions of the same class name don't collide")
}
