package annotast

// Decl is a top-level (or class-member) declaration the orchestrator
// drives a pass over (spec.md §4.6).
//
//sumtype:decl
type Decl interface {
	isDecl()
	Span() Span
}

func (*TypeAliasDecl) isDecl()       {}
func (*InterfaceDecl) isDecl()       {}
func (*FuncDecl) isDecl()            {}
func (*ClassDecl) isDecl()           {}
func (*DeclareModuleDecl) isDecl()   {}
func (*DeclareFunctionDecl) isDecl() {}

// TypeAliasDecl is `type Name<Params> = TypeAnn`.
type TypeAliasDecl struct {
	base
	Name       string
	TypeParams []*TypeParam
	Type       TypeAnn
}

func NewTypeAliasDecl(name string, typeParams []*TypeParam, t TypeAnn, span Span) *TypeAliasDecl {
	return &TypeAliasDecl{base{span}, name, typeParams, t}
}

// InterfaceDecl is sugar for a TypeAliasDecl whose body is always an
// ObjectTypeAnn, optionally extending other named object types (§4.5).
type InterfaceDecl struct {
	base
	Name       string
	TypeParams []*TypeParam
	Extends    []*GenericTypeAnn
	Body       *ObjectTypeAnn
}

func NewInterfaceDecl(name string, typeParams []*TypeParam, extends []*GenericTypeAnn, body *ObjectTypeAnn, span Span) *InterfaceDecl {
	return &InterfaceDecl{base{span}, name, typeParams, extends, body}
}

// FuncDecl is a function declaration with a signature annotation. Body is
// opaque to the converter — everything relevant to CORE-B is in Sig.
type FuncDecl struct {
	base
	Name *Ident
	Sig  *FuncTypeAnn
}

func NewFuncDecl(name *Ident, sig *FuncTypeAnn, span Span) *FuncDecl {
	return &FuncDecl{base{span}, name, sig}
}

// ClassMember is a field or method declared on a ClassDecl.
type ClassMember interface{ isClassMember() }

func (*ClassFieldMember) isClassMember()  {}
func (*ClassMethodMember) isClassMember() {}

type ClassFieldMember struct {
	Name   string
	Type   TypeAnn
	Static bool
}

type ClassMethodMember struct {
	Name   string
	Fn     *FuncTypeAnn
	Static bool
}

// ClassDecl is `class Name<Params> extends Super { ...members }`.
type ClassDecl struct {
	base
	Name       string
	TypeParams []*TypeParam
	Extends    *GenericTypeAnn // optional superclass reference
	Members    []ClassMember
}

func NewClassDecl(name string, typeParams []*TypeParam, extends *GenericTypeAnn, members []ClassMember, span Span) *ClassDecl {
	return &ClassDecl{base{span}, name, typeParams, extends, members}
}

// DeclareModuleDecl is `declare module "name" { ...body }`.
type DeclareModuleDecl struct {
	base
	Name string
	Body []Decl
}

func NewDeclareModuleDecl(name string, body []Decl, span Span) *DeclareModuleDecl {
	return &DeclareModuleDecl{base{span}, name, body}
}

// DeclareFunctionDecl is `declare function name: TypeAnn`. Per spec.md §9
// this is emitted as `declare(name, typeAnnotation)` with no intermediate
// `function(...)` wrapper — preserved here deliberately, not a bug.
type DeclareFunctionDecl struct {
	base
	Name string
	Type TypeAnn
}

func NewDeclareFunctionDecl(name string, t TypeAnn, span Span) *DeclareFunctionDecl {
	return &DeclareFunctionDecl{base{span}, name, t}
}

// Module is the ordered list of top-level declarations the orchestrator
// drives a single pass over.
type Module struct {
	Decls []Decl
}
