package typedesc

import "strconv"

func parseNumericKey(key string) (float64, bool) {
	f, err := strconv.ParseFloat(key, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ObjMember is one declared shape element of an ObjectDescriptor: a
// property, a method, an indexer, or a call property (spec.md §4.1
// `object(members)`).
type ObjMember interface {
	isObjMember()
	memberName() string
}

type PropertyMember struct {
	Name     string
	Optional bool
	Static   bool
	Value    Descriptor
}

type MethodMember struct {
	Name   string
	Static bool
	Fn     *FunctionDescriptor
}

// IndexerMember checks every own key of v that matches KeyType: each
// value under such a key must accept Value. Go object values are
// represented as map[string]any, so KeyType is matched by coercion: a
// number KeyType matches keys that parse as a number, a string KeyType
// matches any key, a symbol KeyType never matches a plain map key (plain
// maps carry no symbol keys in this runtime's value model). A key that
// does not match KeyType is skipped by the indexer, not rejected.
type IndexerMember struct {
	KeyType Prim
	Value   Descriptor
}

type CallPropertyMember struct {
	Fn *FunctionDescriptor
}

func (PropertyMember) isObjMember()     {}
func (MethodMember) isObjMember()       {}
func (IndexerMember) isObjMember()      {}
func (CallPropertyMember) isObjMember() {}

func (m PropertyMember) memberName() string     { return m.Name }
func (m MethodMember) memberName() string       { return m.Name }
func (m IndexerMember) memberName() string      { return "" }
func (m CallPropertyMember) memberName() string { return "" }

// CallableValue is implemented by runtime values that want to satisfy a
// call-property member; RuntimeFunc values satisfy it too (see function.go).
type CallableValue interface {
	Call(args []any) (any, error)
}

// ObjectDescriptor accepts any map[string]any where every non-optional
// property/method accepts (or is present and callable), every optional
// property that is present accepts, every indexer-covered key's value
// accepts, and (when Exact) v has no own keys beyond the declared
// properties and methods (spec.md §4.1 `object`/`exactObject`).
type ObjectDescriptor struct {
	baseDescriptor
	Members []ObjMember
	Exact   bool
}

func (c *Context) Object(members ...ObjMember) Descriptor {
	return &ObjectDescriptor{baseDescriptor{c}, members, false}
}

func (c *Context) ExactObject(members ...ObjMember) Descriptor {
	return &ObjectDescriptor{baseDescriptor{c}, members, true}
}

func (d *ObjectDescriptor) TypeName() string {
	if d.Exact {
		return "exactObject"
	}
	return "object"
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func (d *ObjectDescriptor) Accepts(v any, _ ...Descriptor) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	for _, member := range d.Members {
		switch mem := member.(type) {
		case PropertyMember:
			val, present := m[mem.Name]
			if !present {
				if !mem.Optional {
					return false
				}
				continue
			}
			if !mem.Value.Accepts(val) {
				return false
			}
		case MethodMember:
			val, present := m[mem.Name]
			if !present || !isCallable(val) {
				return false
			}
		case IndexerMember:
			for key, val := range m {
				if !indexerKeyMatches(mem.KeyType, key) {
					continue
				}
				if !mem.Value.Accepts(val) {
					return false
				}
			}
		case CallPropertyMember:
			if !isCallable(v) {
				return false
			}
		}
	}
	if d.Exact && !exactKeysOK(d.Members, m) {
		return false
	}
	return true
}

func (d *ObjectDescriptor) CollectErrors(val *Validation, path Path, v any) bool {
	m, ok := asMap(v)
	if !ok {
		val.Fail(path, d, v)
		return true
	}
	failed := false
	for _, member := range d.Members {
		switch mem := member.(type) {
		case PropertyMember:
			propPath := path.With(Property(mem.Name))
			val2, present := m[mem.Name]
			if !present {
				if !mem.Optional {
					val.Fail(propPath, mem.Value, Undefined)
					failed = true
				}
				continue
			}
			if mem.Value.CollectErrors(val, propPath, val2) {
				failed = true
			}
		case MethodMember:
			propPath := path.With(Property(mem.Name))
			val2, present := m[mem.Name]
			if !present || !isCallable(val2) {
				val.Fail(propPath, d, val2)
				failed = true
			}
		case IndexerMember:
			for key, val2 := range m {
				if !indexerKeyMatches(mem.KeyType, key) {
					continue
				}
				if mem.Value.CollectErrors(val, path.With(Property(key)), val2) {
					failed = true
				}
			}
		case CallPropertyMember:
			if !isCallable(v) {
				val.Fail(path, d, v)
				failed = true
			}
		}
	}
	if d.Exact && !exactKeysOK(d.Members, m) {
		val.Fail(path, d, v)
		failed = true
	}
	return failed
}

func exactKeysOK(members []ObjMember, m map[string]any) bool {
	declared := make(map[string]bool, len(members))
	for _, member := range members {
		if name := member.memberName(); name != "" {
			declared[name] = true
		}
	}
	for key := range m {
		if !declared[key] {
			return false
		}
	}
	return true
}

func indexerKeyMatches(keyType Prim, key string) bool {
	switch keyType {
	case StringPrim:
		return true
	case NumberPrim:
		_, ok := parseNumericKey(key)
		return ok
	default:
		return false
	}
}

func isCallable(v any) bool {
	if _, ok := v.(RuntimeFunc); ok {
		return true
	}
	_, ok := v.(CallableValue)
	return ok
}

func (d *ObjectDescriptor) AcceptsType(other Descriptor) bool {
	o, ok := other.Unwrap().(*ObjectDescriptor)
	if !ok {
		return false
	}
	if d.Exact && !o.Exact {
		return false
	}
	for _, member := range d.Members {
		switch mem := member.(type) {
		case PropertyMember:
			oMem, ok := findProperty(o.Members, mem.Name)
			if !ok {
				if !mem.Optional {
					return false
				}
				continue
			}
			if !mem.Value.AcceptsType(oMem.Value) {
				return false
			}
		case MethodMember:
			oMem, ok := findMethod(o.Members, mem.Name)
			if !ok || !mem.Fn.AcceptsType(oMem.Fn) {
				return false
			}
		}
	}
	return true
}

func findProperty(members []ObjMember, name string) (PropertyMember, bool) {
	for _, m := range members {
		if p, ok := m.(PropertyMember); ok && p.Name == name {
			return p, true
		}
	}
	return PropertyMember{}, false
}

func findMethod(members []ObjMember, name string) (MethodMember, bool) {
	for _, m := range members {
		if fn, ok := m.(MethodMember); ok && fn.Name == name {
			return fn, true
		}
	}
	return MethodMember{}, false
}

// Method looks up a declared method member by name, for hosts that need
// to hand a method's FunctionDescriptor to orchestrator.WrapMethod
// without reaching into Members by hand.
func (d *ObjectDescriptor) Method(name string) (*FunctionDescriptor, bool) {
	m, ok := findMethod(d.Members, name)
	if !ok {
		return nil, false
	}
	return m.Fn, true
}

func (d *ObjectDescriptor) Unwrap() Descriptor { return d }

func (d *ObjectDescriptor) String() string {
	s := "{"
	for i, member := range d.Members {
		if i > 0 {
			s += ", "
		}
		switch mem := member.(type) {
		case PropertyMember:
			if mem.Optional {
				s += mem.Name + "?: " + mem.Value.String()
			} else {
				s += mem.Name + ": " + mem.Value.String()
			}
		case MethodMember:
			s += mem.Name + mem.Fn.String()
		case IndexerMember:
			s += "[key]: " + mem.Value.String()
		case CallPropertyMember:
			s += mem.Fn.String()
		}
	}
	return s + "}"
}

func (d *ObjectDescriptor) ToJSON() map[string]any {
	members := make([]any, 0, len(d.Members))
	for _, member := range d.Members {
		switch mem := member.(type) {
		case PropertyMember:
			members = append(members, map[string]any{
				"kind": "property", "name": mem.Name, "optional": mem.Optional, "value": mem.Value.ToJSON(),
			})
		case MethodMember:
			members = append(members, map[string]any{"kind": "method", "name": mem.Name, "fn": mem.Fn.ToJSON()})
		case IndexerMember:
			members = append(members, map[string]any{"kind": "indexer", "value": mem.Value.ToJSON()})
		case CallPropertyMember:
			members = append(members, map[string]any{"kind": "callProperty", "fn": mem.Fn.ToJSON()})
		}
	}
	return map[string]any{"typeName": d.TypeName(), "members": members}
}
