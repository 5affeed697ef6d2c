package convert

import (
	"github.com/runtype-lang/runtype/internal/annotast"
	"github.com/runtype-lang/runtype/internal/set"
	"github.com/runtype-lang/runtype/internal/typedesc"
)

// Converter walks an annotast tree and builds a typedesc descriptor tree
// against a single root Context (spec.md §2's "Annotation converter").
type Converter struct {
	ctx         *typedesc.Context
	root        *Scope
	suppress    set.Set[string]
	diagnostics Diagnostics
}

// New builds a Converter over ctx. suppressTypeNames lists names whose
// references collapse to `any` regardless of how they classify (spec.md
// §6's `suppressTypeNames` configuration knob).
func New(ctx *typedesc.Context, suppressTypeNames ...string) *Converter {
	normalized := make([]string, len(suppressTypeNames))
	for i, n := range suppressTypeNames {
		normalized[i] = normalizeName(n)
	}
	return &Converter{ctx: ctx, root: newRootScope(), suppress: set.FromSlice(normalized)}
}

// Diagnostics returns every non-fatal note collected since New.
func (c *Converter) Diagnostics() Diagnostics { return c.diagnostics }

// ConvertModule converts every top-level declaration in mod, registering
// named types/functions into the Converter's Context as a side effect
// (spec.md §4.6's single pass).
func (c *Converter) ConvertModule(mod *annotast.Module) error {
	for _, d := range mod.Decls {
		if _, _, err := c.convertDecl(d, c.root); err != nil {
			return err
		}
	}
	return nil
}

// convertDecl converts one declaration, returning the name it binds (if
// any) and the descriptor it produced.
func (c *Converter) convertDecl(decl annotast.Decl, scope *Scope) (string, typedesc.Descriptor, error) {
	switch d := decl.(type) {
	case *annotast.TypeAliasDecl:
		return c.convertTypeAliasDecl(d, scope)
	case *annotast.InterfaceDecl:
		return c.convertInterfaceDecl(d, scope)
	case *annotast.FuncDecl:
		return c.convertFuncDecl(d, scope)
	case *annotast.ClassDecl:
		return c.convertClassDecl(d, scope)
	case *annotast.DeclareModuleDecl:
		return c.convertDeclareModuleDecl(d, scope)
	case *annotast.DeclareFunctionDecl:
		return c.convertDeclareFunctionDecl(d, scope)
	default:
		c.diagnostics.unknownKind(decl)
		return "", c.ctx.Any(), nil
	}
}

// registerNamedType is the shared path for TypeAliasDecl/InterfaceDecl/
// ClassDecl: a name, a set of declared type parameters, and a builder
// that produces the declaration's body descriptor against whatever scope
// carries that declaration's (possibly fresh) type parameters. A
// non-parametric declaration is boxed once and registered directly,
// self-reference safe via Box's lazy resolution. A parametric one is
// registered as a Partial so each distinct type-argument list gets its
// own freshly-built TypeParameter set; the Partial caches per argument
// list, so instantiations with the same arguments share that set.
func (c *Converter) registerNamedType(
	name string,
	typeParams []*annotast.TypeParam,
	scope *Scope,
	build func(bodyScope *Scope) typedesc.Descriptor,
) (string, typedesc.Descriptor, error) {
	name = normalizeName(name)
	if c.suppress.Contains(name) {
		scope.declareAlias(name)
		return name, c.ctx.Any(), nil
	}
	scope.declareAlias(name)

	if len(typeParams) == 0 {
		bodyScope := scope.child()
		bodyScope.declareAlias(name)
		desc := c.ctx.Type(name, func() typedesc.Descriptor {
			return build(bodyScope)
		})
		return name, desc, nil
	}

	partial := c.ctx.Partial(name, nil, func(args []typedesc.Descriptor) typedesc.Descriptor {
		bodyScope := scope.child()
		bodyScope.declareAlias(name)
		for i, tp := range typeParams {
			var bound typedesc.Descriptor
			if tp.Bound != nil {
				bound = c.ConvertType(tp.Bound, scope, false)
			}
			if i < len(args) {
				if bound == nil {
					bound = args[i]
				} else {
					bound = c.ctx.Intersect(bound, args[i])
				}
			}
			bodyScope.declareTypeParam(tp.Name, c.ctx.TypeParameter(tp.Name, bound))
		}
		return c.ctx.Box(func() typedesc.Descriptor { return build(bodyScope) })
	})
	c.ctx.RegisterType(name, partial)
	return name, partial, nil
}

func (c *Converter) convertTypeAliasDecl(decl *annotast.TypeAliasDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	return c.registerNamedType(decl.Name, decl.TypeParams, scope, func(bodyScope *Scope) typedesc.Descriptor {
		return c.ConvertType(decl.Type, bodyScope, false)
	})
}

func (c *Converter) convertInterfaceDecl(decl *annotast.InterfaceDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	return c.registerNamedType(decl.Name, decl.TypeParams, scope, func(bodyScope *Scope) typedesc.Descriptor {
		obj := c.convertObjectTypeAnn(decl.Body, bodyScope)
		if len(decl.Extends) == 0 {
			return obj
		}
		parts := make([]typedesc.Descriptor, 0, len(decl.Extends)+1)
		for _, e := range decl.Extends {
			parts = append(parts, c.ConvertType(e, bodyScope, false))
		}
		parts = append(parts, obj)
		return c.ctx.Intersect(parts...)
	})
}

func (c *Converter) convertClassDecl(decl *annotast.ClassDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	// uids are minted and discarded; nothing stores them (see uid.go).
	classUIDs(decl.Name)
	return c.registerNamedType(decl.Name, decl.TypeParams, scope, func(bodyScope *Scope) typedesc.Descriptor {
		var supers []typedesc.Descriptor
		if decl.Extends != nil {
			supers = append(supers, c.ConvertType(decl.Extends, bodyScope, false))
		}
		members := make([]typedesc.ObjMember, 0, len(decl.Members))
		for _, m := range decl.Members {
			switch mem := m.(type) {
			case *annotast.ClassFieldMember:
				t := c.ConvertType(mem.Type, bodyScope, true)
				if mem.Static {
					members = append(members, c.ctx.StaticProperty(mem.Name, t))
				} else {
					members = append(members, c.ctx.Property(mem.Name, t))
				}
			case *annotast.ClassMethodMember:
				fn := c.buildFunctionDescriptor(mem.Fn, bodyScope)
				if mem.Static {
					members = append(members, c.ctx.StaticMethod(mem.Name, fn))
				} else {
					members = append(members, c.ctx.Method(mem.Name, fn))
				}
			}
		}
		return c.ctx.Class(decl.Name, supers, members...)
	})
}

func (c *Converter) convertFuncDecl(decl *annotast.FuncDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	name := normalizeName(decl.Name.Name)
	var desc typedesc.Descriptor
	if len(decl.Sig.TypeParams) > 0 {
		// a generic function instantiates fresh per call (spec.md §4.2,
		// §8 scenario 2: `id(1); id("a")` are independent activations).
		desc = c.ctx.Generic(func() typedesc.Descriptor {
			return c.buildFunctionDescriptor(decl.Sig, scope)
		})
	} else {
		desc = c.buildFunctionDescriptor(decl.Sig, scope)
	}
	c.ctx.RegisterType(name, desc)
	return name, desc, nil
}

func (c *Converter) convertDeclareModuleDecl(decl *annotast.DeclareModuleDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	name := normalizeName(decl.Name)
	child := scope.child()
	var exports []typedesc.ObjMember
	for _, bodyDecl := range decl.Body {
		exportName, desc, err := c.convertDecl(bodyDecl, child)
		if err != nil {
			return "", nil, err
		}
		if exportName != "" {
			exports = append(exports, c.ctx.Property(exportName, desc))
		}
	}
	mod := c.ctx.Declare(c.ctx.Module(name, exports...))
	c.ctx.RegisterType(name, mod)
	return name, mod, nil
}

func (c *Converter) convertDeclareFunctionDecl(decl *annotast.DeclareFunctionDecl, scope *Scope) (string, typedesc.Descriptor, error) {
	name := normalizeName(decl.Name)
	t := c.ConvertType(decl.Type, scope, false)
	// spec.md §9: `declare(name, typeAnnotation)`, no intermediate
	// `function(...)` wrapper — preserved deliberately, not a bug.
	desc := c.ctx.Declare(t)
	c.ctx.RegisterType(name, desc)
	return name, desc, nil
}

// buildFunctionDescriptor converts a signature into a concrete
// FunctionDescriptor. Its own type parameters (if any) are bound once,
// at this call — callers that need per-call-site freshness (a top-level
// generic FuncDecl) are responsible for wrapping the whole build in a
// GenericDescriptor (see convertFuncDecl); a generic method or
// call-property signature does not get that treatment, so its type
// parameters are shared by every call.
func (c *Converter) buildFunctionDescriptor(fn *annotast.FuncTypeAnn, scope *Scope) *typedesc.FunctionDescriptor {
	child := scope.child()
	for _, tp := range fn.TypeParams {
		var bound typedesc.Descriptor
		if tp.Bound != nil {
			bound = c.ConvertType(tp.Bound, scope, false)
		}
		child.declareTypeParam(tp.Name, c.ctx.TypeParameter(tp.Name, bound))
	}
	params := make([]*typedesc.ParamSpec, len(fn.Params))
	for i, p := range fn.Params {
		t := c.ConvertType(p.Type, child, true)
		if p.Optional {
			params[i] = c.ctx.OptionalParam(p.Name, t)
		} else {
			params[i] = c.ctx.Param(p.Name, t)
		}
	}
	var rest *typedesc.ParamSpec
	if fn.Rest != nil {
		elem := c.ConvertType(fn.Rest.Type, child, true)
		rest = c.ctx.Rest(fn.Rest.Name, elem)
	}
	var ret typedesc.Descriptor
	if fn.Return != nil {
		ret = c.ConvertType(fn.Return, child, false)
	}
	return c.ctx.Function(params, rest, ret)
}

func (c *Converter) convertObjectTypeAnn(ann *annotast.ObjectTypeAnn, scope *Scope) typedesc.Descriptor {
	members := make([]typedesc.ObjMember, 0, len(ann.Elems))
	for _, elem := range ann.Elems {
		switch e := elem.(type) {
		case *annotast.PropertyTypeAnn:
			t := c.ConvertType(e.Value, scope, false)
			if e.Optional {
				members = append(members, c.ctx.OptionalProperty(e.Name.String(), t))
			} else {
				members = append(members, c.ctx.Property(e.Name.String(), t))
			}
		case *annotast.MethodTypeAnn:
			fn := c.buildFunctionDescriptor(e.Fn, scope)
			members = append(members, c.ctx.Method(e.Name.String(), fn))
		case *annotast.IndexerTypeAnn:
			keyType := c.ConvertType(e.KeyType, scope, false)
			prim := typedesc.StringPrim
			if p, ok := keyType.(*typedesc.PrimDescriptor); ok {
				prim = p.Prim
			}
			value := c.ConvertType(e.Value, scope, false)
			members = append(members, c.ctx.Indexer(prim, value))
		case *annotast.CallPropertyTypeAnn:
			fn := c.buildFunctionDescriptor(e.Fn, scope)
			members = append(members, c.ctx.CallProperty(fn))
		default:
			c.diagnostics.unknownKind(elem)
		}
	}
	if ann.Exact {
		return c.ctx.ExactObject(members...)
	}
	return c.ctx.Object(members...)
}

// ConvertType converts a single annotation node (spec.md §4.5). flowable
// marks whether this occurrence sits at (or beneath) a function
// parameter or class property — the position at which a type parameter
// reference should be wrapped in flowInto rather than used bare
// (spec.md §4.2, "Flowable-position detection").
func (c *Converter) ConvertType(ann annotast.TypeAnn, scope *Scope, flowable bool) typedesc.Descriptor {
	switch a := ann.(type) {
	case *annotast.NumberTypeAnn:
		return c.ctx.Number()
	case *annotast.StringTypeAnn:
		return c.ctx.String()
	case *annotast.BooleanTypeAnn:
		return c.ctx.Boolean()
	case *annotast.SymbolTypeAnn:
		return c.ctx.Symbol()
	case *annotast.AnyTypeAnn:
		return c.ctx.Any()
	case *annotast.MixedTypeAnn:
		return c.ctx.Mixed()
	case *annotast.ExistentialTypeAnn:
		return c.ctx.Existential()
	case *annotast.EmptyTypeAnn:
		return c.ctx.Empty()
	case *annotast.VoidTypeAnn:
		return c.ctx.Void()
	case *annotast.NullTypeAnn:
		return c.ctx.Null()
	case *annotast.LitTypeAnn:
		switch lit := a.Lit.(type) {
		case *annotast.StrLit:
			return c.ctx.StringLiteral(lit.Value)
		case *annotast.NumLit:
			return c.ctx.NumberLiteral(lit.Value)
		case *annotast.BoolLit:
			return c.ctx.BooleanLiteral(lit.Value)
		default:
			c.diagnostics.unknownKind(lit)
			return c.ctx.Any()
		}
	case *annotast.NullableTypeAnn:
		return c.ctx.Nullable(c.ConvertType(a.Type, scope, flowable))
	case *annotast.UnionTypeAnn:
		types := make([]typedesc.Descriptor, len(a.Types))
		for i, t := range a.Types {
			types[i] = c.ConvertType(t, scope, flowable)
		}
		return c.ctx.Union(types...)
	case *annotast.IntersectionTypeAnn:
		types := make([]typedesc.Descriptor, len(a.Types))
		for i, t := range a.Types {
			types[i] = c.ConvertType(t, scope, flowable)
		}
		return c.ctx.Intersect(types...)
	case *annotast.ArrayTypeAnn:
		return c.ctx.Array(c.ConvertType(a.Elem, scope, flowable))
	case *annotast.TupleTypeAnn:
		elems := make([]typedesc.Descriptor, len(a.Elems))
		for i, e := range a.Elems {
			elems[i] = c.ConvertType(e, scope, flowable)
		}
		return c.ctx.Tuple(elems...)
	case *annotast.GenericTypeAnn:
		return c.convertGenericTypeAnn(a, scope, flowable)
	case *annotast.ObjectTypeAnn:
		return c.convertObjectTypeAnn(a, scope)
	case *annotast.FuncTypeAnn:
		if len(a.TypeParams) > 0 {
			return c.ctx.Generic(func() typedesc.Descriptor { return c.buildFunctionDescriptor(a, scope) })
		}
		return c.buildFunctionDescriptor(a, scope)
	case *annotast.TypeofTypeAnn:
		// there is no live value-level evaluator in this port (no host
		// AST/runtime in scope) — typeof is resolved structurally from
		// whatever the identifier classifies as, falling back to Any for
		// an external name the converter cannot see a sample value of.
		if desc, ok := c.resolveTypeofTarget(a.Value, scope); ok {
			return desc
		}
		c.diagnostics.addf("typeof-unresolved", "convert: cannot resolve typeof %s, emitting any", annotast.QualIdentString(a.Value))
		return c.ctx.Any()
	default:
		c.diagnostics.unknownKind(ann)
		return c.ctx.Any()
	}
}

func (c *Converter) resolveTypeofTarget(qi annotast.QualIdent, scope *Scope) (typedesc.Descriptor, bool) {
	ident, ok := qi.(*annotast.Ident)
	if !ok {
		return nil, false
	}
	name := normalizeName(ident.Name)
	switch scope.Classify(name) {
	case ClassTypeAlias:
		return c.ctx.Ref(name), true
	case ClassTypeParameter:
		tp, _ := scope.resolveTypeParam(name)
		return tp, true
	case ClassClassTypeParameter:
		tp, _ := scope.resolveClassTypeParam(name)
		return tp, true
	default:
		return nil, false
	}
}

func (c *Converter) convertGenericTypeAnn(a *annotast.GenericTypeAnn, scope *Scope, flowable bool) typedesc.Descriptor {
	ident, isIdent := a.Name.(*annotast.Ident)
	if isIdent {
		name := normalizeName(ident.Name)
		if c.suppress.Contains(name) {
			return c.ctx.Any()
		}
		// Array<T> / $ReadOnlyArray<T> specialize directly onto
		// typedesc.Array instead of going through the nominal Array
		// predicate (spec.md §4.5's "Array specialization").
		if (name == "Array" || name == "$ReadOnlyArray") && len(a.TypeArgs) == 1 {
			return c.ctx.Array(c.ConvertType(a.TypeArgs[0], scope, flowable))
		}
		switch scope.Classify(name) {
		case ClassTypeParameter:
			tp, _ := scope.resolveTypeParam(name)
			if flowable {
				return c.ctx.FlowInto(tp)
			}
			return tp
		case ClassClassTypeParameter:
			tp, _ := scope.resolveClassTypeParam(name)
			if flowable {
				return c.ctx.FlowInto(tp)
			}
			return tp
		case ClassTypeAlias:
			instances := make([]typedesc.Descriptor, len(a.TypeArgs))
			for i, t := range a.TypeArgs {
				instances[i] = c.ConvertType(t, scope, false)
			}
			return c.ctx.Ref(name, instances...)
		}
	}
	// external/unknown name (or a qualified Member reference, which is
	// always external — spec.md §4.4's ExternalName fallback).
	name := normalizeName(annotast.QualIdentString(a.Name))
	instances := make([]typedesc.Descriptor, len(a.TypeArgs))
	for i, t := range a.TypeArgs {
		instances[i] = c.ConvertType(t, scope, false)
	}
	if c.suppress.Contains(name) {
		return c.ctx.Any()
	}
	return c.ctx.Ref(name, instances...)
}
