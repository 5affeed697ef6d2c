package typedesc

import "github.com/google/go-cmp/cmp"

// Equal reports whether two descriptors describe the same shape. Rather
// than diffing the live struct trees — which hold unexported caches,
// owning Contexts, and the occasional func-typed field go-cmp can't walk
// into — it compares each descriptor's ToJSON() projection, the same
// canonical, context-free tree the rest of this package already uses for
// serialization. Mirrors the teacher's `type_system.Equals`.
func Equal(a, b Descriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(a.ToJSON(), b.ToJSON())
}
