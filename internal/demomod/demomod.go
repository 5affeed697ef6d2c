// Package demomod builds a small hand-written annotated module exercising
// most of the annotation surface CORE-B dispatches on (spec.md §4.5): a
// type alias, an interface with extends, a generic function, and a class
// with a static field plus an instance method. It stands in for the host
// source parser spec.md places out of scope (§9 Non-goals), so both
// cmd/runtypec and cmd/runtype-lsp have a fixed, real module to drive an
// orchestrator pass over without depending on one.
package demomod

import "github.com/runtype-lang/runtype/internal/annotast"

// Module returns a fresh *annotast.Module on every call so callers that
// mutate nodes (none currently do) never share state across orchestrator
// passes.
func Module() *annotast.Module {
	noSpan := annotast.DefaultSpan

	// type Point = { x: number, y: number }
	point := annotast.NewTypeAliasDecl(
		"Point",
		nil,
		annotast.NewObjectTypeAnn([]annotast.ObjTypeAnnElem{
			&annotast.PropertyTypeAnn{Name: annotast.StrKey("x"), Value: annotast.NewNumberTypeAnn(noSpan)},
			&annotast.PropertyTypeAnn{Name: annotast.StrKey("y"), Value: annotast.NewNumberTypeAnn(noSpan)},
		}, false, noSpan),
		noSpan,
	)

	// interface Named extends Point { name: string, nickname?: string }
	named := annotast.NewInterfaceDecl(
		"Named",
		nil,
		[]*annotast.GenericTypeAnn{annotast.NewGenericTypeAnn(annotast.NewIdent("Point"), nil, noSpan)},
		annotast.NewObjectTypeAnn([]annotast.ObjTypeAnnElem{
			&annotast.PropertyTypeAnn{Name: annotast.StrKey("name"), Value: annotast.NewStringTypeAnn(noSpan)},
			&annotast.PropertyTypeAnn{Name: annotast.StrKey("nickname"), Optional: true, Value: annotast.NewStringTypeAnn(noSpan)},
		}, false, noSpan),
		noSpan,
	)

	// function identity<T>(value: T): T
	identity := annotast.NewFuncDecl(
		annotast.NewIdent("identity"),
		annotast.NewFuncTypeAnn(
			[]*annotast.TypeParam{{Name: "T"}},
			[]*annotast.FuncParamAnn{{Name: "value", Type: annotast.NewGenericTypeAnn(annotast.NewIdent("T"), nil, noSpan)}},
			nil,
			annotast.NewGenericTypeAnn(annotast.NewIdent("T"), nil, noSpan),
			noSpan,
		),
		noSpan,
	)

	// function describe(id: number | string, tags: string[]): ?string
	describe := annotast.NewFuncDecl(
		annotast.NewIdent("describe"),
		annotast.NewFuncTypeAnn(
			nil,
			[]*annotast.FuncParamAnn{
				{Name: "id", Type: annotast.NewUnionTypeAnn([]annotast.TypeAnn{
					annotast.NewNumberTypeAnn(noSpan),
					annotast.NewStringTypeAnn(noSpan),
				}, noSpan)},
				{Name: "tags", Type: annotast.NewArrayTypeAnn(annotast.NewStringTypeAnn(noSpan), noSpan)},
			},
			nil,
			annotast.NewNullableTypeAnn(annotast.NewStringTypeAnn(noSpan), noSpan),
			noSpan,
		),
		noSpan,
	)

	// class Counter { static start: number; increment(by: number): number }
	counter := annotast.NewClassDecl(
		"Counter",
		nil,
		nil,
		[]annotast.ClassMember{
			&annotast.ClassFieldMember{Name: "start", Type: annotast.NewNumberTypeAnn(noSpan), Static: true},
			&annotast.ClassMethodMember{
				Name: "increment",
				Fn: annotast.NewFuncTypeAnn(
					nil,
					[]*annotast.FuncParamAnn{{Name: "by", Type: annotast.NewNumberTypeAnn(noSpan)}},
					nil,
					annotast.NewNumberTypeAnn(noSpan),
					noSpan,
				),
			},
		},
		noSpan,
	)

	return &annotast.Module{Decls: []annotast.Decl{point, named, identity, describe, counter}}
}
