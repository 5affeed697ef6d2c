package annotast

import "strconv"

// TypeAnn is the closed set of annotation-syntax nodes the converter
// dispatches on (spec.md §4.5). Anything outside this set is not a
// TypeAnn at all from the host's point of view and falls to the
// converter's unknown-kind rule (emit `any` + a diagnostic).
//
//sumtype:decl
type TypeAnn interface {
	isTypeAnn()
	Span() Span
}

func (*NumberTypeAnn) isTypeAnn()      {}
func (*StringTypeAnn) isTypeAnn()      {}
func (*BooleanTypeAnn) isTypeAnn()     {}
func (*SymbolTypeAnn) isTypeAnn()      {}
func (*AnyTypeAnn) isTypeAnn()         {}
func (*MixedTypeAnn) isTypeAnn()       {}
func (*ExistentialTypeAnn) isTypeAnn() {}
func (*EmptyTypeAnn) isTypeAnn()       {}
func (*VoidTypeAnn) isTypeAnn()        {}
func (*NullTypeAnn) isTypeAnn()        {}
func (*LitTypeAnn) isTypeAnn()         {}
func (*NullableTypeAnn) isTypeAnn()    {}
func (*UnionTypeAnn) isTypeAnn()       {}
func (*IntersectionTypeAnn) isTypeAnn() {}
func (*ArrayTypeAnn) isTypeAnn()       {}
func (*TupleTypeAnn) isTypeAnn()       {}
func (*GenericTypeAnn) isTypeAnn()     {}
func (*ObjectTypeAnn) isTypeAnn()      {}
func (*FuncTypeAnn) isTypeAnn()        {}
func (*TypeofTypeAnn) isTypeAnn()      {}

type base struct{ span Span }

func (b base) Span() Span { return b.span }

type NumberTypeAnn struct{ base }
type StringTypeAnn struct{ base }
type BooleanTypeAnn struct{ base }
type SymbolTypeAnn struct{ base }
type AnyTypeAnn struct{ base }
type MixedTypeAnn struct{ base }
type ExistentialTypeAnn struct{ base }
type EmptyTypeAnn struct{ base }
type VoidTypeAnn struct{ base }
type NullTypeAnn struct{ base }

func NewNumberTypeAnn(span Span) *NumberTypeAnn { return &NumberTypeAnn{base{span}} }
func NewStringTypeAnn(span Span) *StringTypeAnn { return &StringTypeAnn{base{span}} }
func NewBooleanTypeAnn(span Span) *BooleanTypeAnn { return &BooleanTypeAnn{base{span}} }
func NewSymbolTypeAnn(span Span) *SymbolTypeAnn { return &SymbolTypeAnn{base{span}} }
func NewAnyTypeAnn(span Span) *AnyTypeAnn       { return &AnyTypeAnn{base{span}} }
func NewMixedTypeAnn(span Span) *MixedTypeAnn   { return &MixedTypeAnn{base{span}} }
func NewExistentialTypeAnn(span Span) *ExistentialTypeAnn {
	return &ExistentialTypeAnn{base{span}}
}
func NewEmptyTypeAnn(span Span) *EmptyTypeAnn { return &EmptyTypeAnn{base{span}} }
func NewVoidTypeAnn(span Span) *VoidTypeAnn   { return &VoidTypeAnn{base{span}} }
func NewNullTypeAnn(span Span) *NullTypeAnn   { return &NullTypeAnn{base{span}} }

// Lit is a literal value carried by a LitTypeAnn.
type Lit interface{ isLit() }

func (*StrLit) isLit()  {}
func (*NumLit) isLit()  {}
func (*BoolLit) isLit() {}

type StrLit struct{ Value string }
type NumLit struct{ Value float64 }
type BoolLit struct{ Value bool }

type LitTypeAnn struct {
	base
	Lit Lit
}

func NewLitTypeAnn(lit Lit, span Span) *LitTypeAnn { return &LitTypeAnn{base{span}, lit} }

// NullableTypeAnn is `?T` — null or undefined in addition to T.
type NullableTypeAnn struct {
	base
	Type TypeAnn
}

func NewNullableTypeAnn(t TypeAnn, span Span) *NullableTypeAnn {
	return &NullableTypeAnn{base{span}, t}
}

type UnionTypeAnn struct {
	base
	Types []TypeAnn
}

func NewUnionTypeAnn(types []TypeAnn, span Span) *UnionTypeAnn {
	return &UnionTypeAnn{base{span}, types}
}

type IntersectionTypeAnn struct {
	base
	Types []TypeAnn
}

func NewIntersectionTypeAnn(types []TypeAnn, span Span) *IntersectionTypeAnn {
	return &IntersectionTypeAnn{base{span}, types}
}

// ArrayTypeAnn is `T[]`, kept distinct from the generic `Array<T>` spelling
// so the converter's "Array specialization" rule (§4.5) has two spellings
// that both land on typedesc.Context.Array.
type ArrayTypeAnn struct {
	base
	Elem TypeAnn
}

func NewArrayTypeAnn(elem TypeAnn, span Span) *ArrayTypeAnn { return &ArrayTypeAnn{base{span}, elem} }

type TupleTypeAnn struct {
	base
	Elems []TypeAnn
}

func NewTupleTypeAnn(elems []TypeAnn, span Span) *TupleTypeAnn {
	return &TupleTypeAnn{base{span}, elems}
}

// GenericTypeAnn is the identifier-reference annotation form: a bare type
// alias/parameter name, or a name applied to type arguments. Resolution of
// `Name` against alias/parameter/external classification is ConversionContext's
// job (§4.4), not this node's.
type GenericTypeAnn struct {
	base
	Name     QualIdent
	TypeArgs []TypeAnn
}

func NewGenericTypeAnn(name QualIdent, typeArgs []TypeAnn, span Span) *GenericTypeAnn {
	return &GenericTypeAnn{base{span}, name, typeArgs}
}

type ObjKey struct {
	Str string
	Num float64
	IsNum bool
}

func StrKey(s string) ObjKey  { return ObjKey{Str: s} }
func NumKey(n float64) ObjKey { return ObjKey{Num: n, IsNum: true} }

func (k ObjKey) String() string {
	if k.IsNum {
		return formatNum(k.Num)
	}
	return k.Str
}

type ObjTypeAnnElem interface{ isObjTypeAnnElem() }

func (*PropertyTypeAnn) isObjTypeAnnElem()     {}
func (*MethodTypeAnn) isObjTypeAnnElem()       {}
func (*IndexerTypeAnn) isObjTypeAnnElem()      {}
func (*CallPropertyTypeAnn) isObjTypeAnnElem() {}

type PropertyTypeAnn struct {
	Name     ObjKey
	Optional bool
	Value    TypeAnn
}

type MethodTypeAnn struct {
	Name ObjKey
	Fn   *FuncTypeAnn
}

type IndexerTypeAnn struct {
	KeyName string
	KeyType TypeAnn
	Value   TypeAnn
}

type CallPropertyTypeAnn struct {
	Fn *FuncTypeAnn
}

// ObjectTypeAnn is `{...}` (structural, open-world) or, when Exact is set,
// `{|...|}` (closed-world, no additional own keys — see exactObject, §4.1).
type ObjectTypeAnn struct {
	base
	Elems []ObjTypeAnnElem
	Exact bool
}

func NewObjectTypeAnn(elems []ObjTypeAnnElem, exact bool, span Span) *ObjectTypeAnn {
	return &ObjectTypeAnn{base{span}, elems, exact}
}

// TypeParam is a type parameter declaration site: `<T: Bound>`.
type TypeParam struct {
	Name       string
	Bound      TypeAnn // optional
}

type FuncParamAnn struct {
	Name     string
	Type     TypeAnn
	Optional bool
}

// FuncTypeAnn is a function signature annotation: `<T>(a: A, ...rest: R) => Ret`.
type FuncTypeAnn struct {
	base
	TypeParams []*TypeParam
	Params     []*FuncParamAnn
	Rest       *FuncParamAnn // optional
	Return     TypeAnn       // optional; nil means unannotated (infer any)
}

func NewFuncTypeAnn(typeParams []*TypeParam, params []*FuncParamAnn, rest *FuncParamAnn, ret TypeAnn, span Span) *FuncTypeAnn {
	return &FuncTypeAnn{base{span}, typeParams, params, rest, ret}
}

// TypeofTypeAnn captures `typeof expr`; Value is the value-level identifier
// chain `annotationToValue` (§4.5) would resolve back to an expression.
type TypeofTypeAnn struct {
	base
	Value QualIdent
}

func NewTypeofTypeAnn(value QualIdent, span Span) *TypeofTypeAnn {
	return &TypeofTypeAnn{base{span}, value}
}

func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
