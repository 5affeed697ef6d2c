package typedesc

// TypeOf infers a structural descriptor from a concrete runtime value: it
// is the shape-recording primitive TypeParameter and FlowIntoType use to
// monomorphize/widen (flow.go). The converter does not call it for a
// `typeof X` annotation; it resolves X from its classification instead
// (convert.resolveTypeofTarget). Objects infer an (inexact) property
// shape, recursing into nested values; arrays infer a unioned element
// shape; anything else falls back to Any so an unrecognized host
// value never hard-fails a check it has no business failing.
func (c *Context) TypeOf(v any) Descriptor {
	switch val := v.(type) {
	case nil:
		return c.Null()
	case undefinedT:
		return c.Void()
	case bool:
		return c.Boolean()
	case float64:
		return c.Number()
	case int:
		return c.Number()
	case string:
		return c.String()
	case Symbol:
		return c.Symbol()
	case RuntimeFunc:
		return c.Function(nil, nil, nil)
	case CallableValue:
		return c.Function(nil, nil, nil)
	case []any:
		return c.typeOfSlice(val)
	case map[string]any:
		return c.typeOfMap(val)
	default:
		if elems, ok := asSlice(v); ok {
			return c.typeOfSlice(elems)
		}
		return c.Any()
	}
}

func (c *Context) typeOfSlice(elems []any) Descriptor {
	if len(elems) == 0 {
		return c.Array(c.Any())
	}
	elem := c.TypeOf(elems[0])
	for _, e := range elems[1:] {
		elem = c.Union(elem, c.TypeOf(e))
	}
	return c.Array(elem)
}

func (c *Context) typeOfMap(m map[string]any) Descriptor {
	members := make([]ObjMember, 0, len(m))
	for key, val := range m {
		members = append(members, PropertyMember{Name: key, Value: c.TypeOf(val)})
	}
	return c.Object(members...)
}
