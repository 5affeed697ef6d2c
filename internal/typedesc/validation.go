package typedesc

import (
	"strconv"
	"strings"
)

// PathSegmentKind discriminates the different things a PathSegment can
// name (spec.md §7): property names, array indices, parameter names, the
// literal "return", or union-branch indices.
type PathSegmentKind int

const (
	PathProperty PathSegmentKind = iota
	PathIndex
	PathParam
	PathReturn
	PathUnionBranch
)

type PathSegment struct {
	Kind  PathSegmentKind
	Name  string
	Index int
}

func Property(name string) PathSegment { return PathSegment{Kind: PathProperty, Name: name} }
func Index(i int) PathSegment           { return PathSegment{Kind: PathIndex, Index: i} }
func Param(name string) PathSegment     { return PathSegment{Kind: PathParam, Name: name} }
func Return() PathSegment               { return PathSegment{Kind: PathReturn} }
func UnionBranch(i int) PathSegment      { return PathSegment{Kind: PathUnionBranch, Index: i} }

func (s PathSegment) String() string {
	switch s.Kind {
	case PathProperty:
		return s.Name
	case PathIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	case PathParam:
		return s.Name
	case PathReturn:
		return "return"
	case PathUnionBranch:
		return "|" + strconv.Itoa(s.Index) + "|"
	default:
		return "?"
	}
}

// Path is an identifier path from a check's root to the failing value,
// e.g. `x[2]` or `kids[0].kids[0]` (spec.md §8 scenario 4 and 6).
type Path []PathSegment

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && seg.Kind != PathIndex {
			b.WriteString(".")
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

func (p Path) With(seg PathSegment) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, seg)
}

// ErrorRecord is one structural mismatch: the descriptor that rejected,
// the actual value, and the path at which the mismatch occurred.
type ErrorRecord struct {
	Expected Descriptor
	Actual   any
	Path     Path
}

// Validation accumulates ErrorRecords across a (possibly nested) check.
// A fresh Validation is empty; Accepts(v) is defined to be equivalent to
// collecting into a fresh Validation and finding no records (spec.md §3).
type Validation struct {
	Records []ErrorRecord
}

func NewValidation() *Validation { return &Validation{} }

func (v *Validation) Fail(path Path, expected Descriptor, actual any) {
	v.Records = append(v.Records, ErrorRecord{Expected: expected, Actual: actual, Path: path})
}

func (v *Validation) Empty() bool { return len(v.Records) == 0 }

// Failure is the aggregated error `assert`-mode checks surface: the
// descriptor that was being checked plus every record collected against
// it. JS `flow-runtime` throws; the idiomatic Go rendition returns this
// as an error instead (documented in DESIGN.md).
type Failure struct {
	Descriptor Descriptor
	Records    []ErrorRecord
}

func (f *Failure) Error() string {
	if len(f.Records) == 0 {
		return "type check failed"
	}
	var b strings.Builder
	for i, rec := range f.Records {
		if i > 0 {
			b.WriteString("; ")
		}
		path := rec.Path.String()
		if path == "" {
			path = "<root>"
		}
		b.WriteString(path)
		b.WriteString(": expected ")
		b.WriteString(rec.Expected.String())
		b.WriteString(", got ")
		b.WriteString(describe(rec.Actual))
	}
	return b.String()
}
