package typedesc

// Convenience constructors for ObjMember values, used by the annotation
// converter so it never builds struct literals against this package's
// internals directly (spec.md §6 factory surface: property, staticProperty,
// method, staticMethod, indexer, callProperty).
//
// Static carries no separate runtime check here: this package models
// values as plain Go data with no distinct "class constructor" channel
// to check static members against, so a static member is validated
// against the same value a non-static one would be (documented in
// DESIGN.md as a deliberate simplification of the source system's
// instance/constructor split).
func (c *Context) Property(name string, t Descriptor) ObjMember {
	return PropertyMember{Name: name, Value: t}
}

func (c *Context) OptionalProperty(name string, t Descriptor) ObjMember {
	return PropertyMember{Name: name, Optional: true, Value: t}
}

func (c *Context) StaticProperty(name string, t Descriptor) ObjMember {
	return PropertyMember{Name: name, Static: true, Value: t}
}

func (c *Context) Method(name string, fn *FunctionDescriptor) ObjMember {
	return MethodMember{Name: name, Fn: fn}
}

func (c *Context) StaticMethod(name string, fn *FunctionDescriptor) ObjMember {
	return MethodMember{Name: name, Static: true, Fn: fn}
}

func (c *Context) Indexer(keyType Prim, value Descriptor) ObjMember {
	return IndexerMember{KeyType: keyType, Value: value}
}

func (c *Context) CallProperty(fn *FunctionDescriptor) ObjMember {
	return CallPropertyMember{Fn: fn}
}

// Rest builds the trailing variadic parameter of a function descriptor.
func (c *Context) Rest(name string, elem Descriptor) *ParamSpec {
	return &ParamSpec{Name: name, Type: c.Array(elem)}
}
