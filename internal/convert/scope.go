// Package convert implements CORE-B: the annotation-to-descriptor
// compiler. It walks an internal/annotast tree and builds an
// internal/typedesc descriptor tree directly — there is no host AST
// parser/emitter in scope (see DESIGN.md), so "emission" here means
// invoking typedesc's Context factory methods in-process rather than
// printing constructor-call source text for a separate host to run.
package convert

import "github.com/runtype-lang/runtype/internal/typedesc"

// Classification is ConversionContext's verdict on an identifier seen in
// annotation position (spec.md §4.4).
type Classification int

const (
	ClassExternalName Classification = iota
	ClassTypeAlias
	ClassTypeParameter
	ClassClassTypeParameter
)

// Scope is one lexical scope in the symbol table the converter walks
// while resolving identifiers: module, then (optionally) an enclosing
// class, then a parametric alias/function/method scope. A child inherits
// resolution from its parent and may shadow (spec.md §3's TypeContext
// tree has a mirror-image lexical-scope sibling here, one level earlier
// in the pipeline).
type Scope struct {
	parent          *Scope
	aliases         map[string]bool
	typeParams      map[string]*typedesc.TypeParameter
	classTypeParams map[string]*typedesc.TypeParameter
}

func newScope(parent *Scope) *Scope {
	return &Scope{
		parent:          parent,
		aliases:         make(map[string]bool),
		typeParams:      make(map[string]*typedesc.TypeParameter),
		classTypeParams: make(map[string]*typedesc.TypeParameter),
	}
}

func newRootScope() *Scope { return newScope(nil) }

func (s *Scope) child() *Scope { return newScope(s) }

func (s *Scope) declareAlias(name string) { s.aliases[name] = true }

func (s *Scope) declareTypeParam(name string, tp *typedesc.TypeParameter) {
	s.typeParams[name] = tp
}

func (s *Scope) declareClassTypeParam(name string, tp *typedesc.TypeParameter) {
	s.classTypeParams[name] = tp
}

func (s *Scope) resolveTypeParam(name string) (*typedesc.TypeParameter, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if tp, ok := cur.typeParams[name]; ok {
			return tp, true
		}
	}
	return nil, false
}

func (s *Scope) resolveClassTypeParam(name string) (*typedesc.TypeParameter, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if tp, ok := cur.classTypeParams[name]; ok {
			return tp, true
		}
	}
	return nil, false
}

func (s *Scope) isAlias(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.aliases[name] {
			return true
		}
	}
	return false
}

// Classify resolves name against, in order: an enclosing parametric
// scope's own type parameters, an enclosing class's type parameters, a
// declared alias/interface/class name, falling through to ExternalName
// (spec.md §4.4's four classifications and the lexical walk that picks
// between them).
func (s *Scope) Classify(name string) Classification {
	if _, ok := s.resolveTypeParam(name); ok {
		return ClassTypeParameter
	}
	if _, ok := s.resolveClassTypeParam(name); ok {
		return ClassClassTypeParameter
	}
	if s.isAlias(name) {
		return ClassTypeAlias
	}
	return ClassExternalName
}
