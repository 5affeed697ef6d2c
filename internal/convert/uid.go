package convert

import (
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

// classUIDs mints the pair of storage keys a converted class needs for
// its type parameters: one reachable from static-method contexts, one a
// per-instance symbol key reachable from instance-method contexts
// (spec.md §4.4). The host's emitted constructor/method bodies are what
// would actually read and write through these keys; this port has no
// host code-emitter, and the converter discards the returned uids: no
// descriptor or diagnostic carries them and no runtime path reads them.
func classUIDs(className string) (staticUID, instanceSymbolUID string) {
	base := strcase.ToLowerCamel(className)
	tag := uuid.New().String()
	return base + "TypeParameters_" + tag, base + "TypeParametersSymbol_" + tag
}
