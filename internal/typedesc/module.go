package typedesc

// ModuleDescriptor accepts a namespace-shaped value: a map exposing
// exactly the declared exports, nothing more (spec.md §4.1
// `declareModule`, §4.5 `DeclareModuleDecl`). It is an exact object under
// another name so diagnostics read "module" rather than "exactObject".
type ModuleDescriptor struct {
	*ObjectDescriptor
	Name string
}

func (c *Context) Module(name string, exports ...ObjMember) Descriptor {
	obj := &ObjectDescriptor{baseDescriptor{c}, exports, true}
	return &ModuleDescriptor{obj, name}
}

func (d *ModuleDescriptor) TypeName() string { return "module" }

func (d *ModuleDescriptor) String() string { return "module " + d.Name }

func (d *ModuleDescriptor) ToJSON() map[string]any {
	out := d.ObjectDescriptor.ToJSON()
	out["typeName"] = "module"
	out["name"] = d.Name
	return out
}

// ModuleExports is the non-namespaced counterpart: the set of bindings a
// `declare module` block (or a plain module file) exposes, without a
// module name of its own (spec.md §4.5).
func (c *Context) ModuleExports(exports ...ObjMember) Descriptor {
	return &ObjectDescriptor{baseDescriptor{c}, exports, true}
}

// Declare marks a descriptor as coming from an ambient ("declare ...")
// declaration. Ambient declarations carry no runtime implementation to
// check against, so Declare is structurally a no-op wrapper kept
// separate from its argument only so conversion can round-trip the fact
// that a declaration was ambient (spec.md §4.5 `DeclareFunctionDecl`,
// `DeclareModuleDecl`).
func (c *Context) Declare(d Descriptor) Descriptor { return d }
