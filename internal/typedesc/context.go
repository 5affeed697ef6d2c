package typedesc

import "fmt"

// Mode is the assertion mode governing what a checkpoint does with a
// failed Validation (spec.md §4.3).
type Mode int

const (
	ModeAssert Mode = iota
	ModeWarn
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeAssert:
		return "assert"
	case ModeWarn:
		return "warn"
	case ModeOff:
		return "off"
	default:
		return "unknown"
	}
}

// WarnSink receives the records collected by a warn-mode check. The
// default implementation adapts github.com/tliron/commonlog; hosts may
// supply their own (e.g. the LSP adapter publishes diagnostics instead).
type WarnSink interface {
	Warn(descriptor Descriptor, value any, records []ErrorRecord)
}

// Context is a node in the TypeContext tree (spec.md §3): the factory for
// every descriptor variant, the registry of named types and nominal
// predicates, and the root of name resolution. A child context inherits
// resolution from its parent and may shadow; mode and predicate overrides
// at a child are local unless explicitly propagated.
type Context struct {
	parent            *Context
	name              string
	nameRegistry      map[string]Descriptor
	predicateRegistry map[string]func(any) bool
	mode              Mode
	modeSet           bool
	sink              WarnSink
	typeOfSeq         int
}

// NewContext creates a root TypeContext. Predicate seeds for Array,
// $ReadOnlyArray, Map, Set, and Promise (spec.md §6) are registered
// automatically.
func NewContext(sink WarnSink) *Context {
	c := &Context{
		name:              "module",
		nameRegistry:      make(map[string]Descriptor),
		predicateRegistry: make(map[string]func(any) bool),
		mode:              ModeAssert,
		modeSet:           true,
		sink:              sink,
	}
	seedPredicates(c)
	return c
}

// Child creates a nested context (module -> class -> method, spec.md §3).
func (c *Context) Child(name string) *Context {
	return &Context{
		parent:            c,
		name:              name,
		nameRegistry:      make(map[string]Descriptor),
		predicateRegistry: make(map[string]func(any) bool),
		sink:              c.sink,
	}
}

func (c *Context) Name() string { return c.name }

func (c *Context) Root() *Context {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

// SetMode changes the assertion mode for this context. Switches are
// immediate and atomic from a descriptor's perspective: descriptors only
// read Mode() at checkpoint entry (spec.md §4.3, §5).
func (c *Context) SetMode(m Mode) {
	c.mode = m
	c.modeSet = true
}

// Mode returns this context's effective assertion mode, inheriting from
// the nearest ancestor that has one set, defaulting to assert.
func (c *Context) Mode() Mode {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.modeSet {
			return cur.mode
		}
	}
	return ModeAssert
}

// RegisterType registers a name in this context's nameRegistry. Names are
// write-once per context; re-registration is a fatal configuration error
// (spec.md §4.3), mirroring how checker.Scope.SetTypeAlias panics on
// redeclaration.
func (c *Context) RegisterType(name string, d Descriptor) {
	if _, ok := c.nameRegistry[name]; ok {
		panic(fmt.Sprintf("typedesc: type %q already registered in context %q", name, c.name))
	}
	c.nameRegistry[name] = d
}

// Lookup resolves a name against this context, then its ancestors.
func (c *Context) Lookup(name string) (Descriptor, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if d, ok := cur.nameRegistry[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// RegisterPredicate installs a nominal predicate. Unlike type names,
// predicate registration overwrites silently — it permits a host to
// inject environment-specific predicates for the same name (spec.md §4.3).
func (c *Context) RegisterPredicate(name string, pred func(any) bool) {
	c.predicateRegistry[name] = pred
}

func (c *Context) Predicate(name string) (func(any) bool, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if p, ok := cur.predicateRegistry[name]; ok {
			return p, true
		}
	}
	return nil, false
}

func (c *Context) emitWarning(d Descriptor, value any, val *Validation) {
	if c.sink == nil {
		return
	}
	c.sink.Warn(d, value, val.Records)
}

// EmitWarning routes a pre-collected set of records to this context's
// sink. Exported so call-boundary wrappers outside this package (the
// orchestrator's WrapMethod) can reuse the same warn-mode delivery path
// `Check` uses for ordinary value sites, instead of duplicating sink
// plumbing.
func (c *Context) EmitWarning(d Descriptor, value any, records []ErrorRecord) {
	if c.sink == nil {
		return
	}
	c.sink.Warn(d, value, records)
}

func seedPredicates(c *Context) {
	c.RegisterPredicate("Array", isArrayValue)
	c.RegisterPredicate("$ReadOnlyArray", isArrayValue)
	c.RegisterPredicate("Map", isMapValue)
	c.RegisterPredicate("Set", isSetValue)
	c.RegisterPredicate("Promise", isThenable)
}
