package hammer

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/reoring/hammer/jsonschema"
	"github.com/reoring/hammer/schema"
)

type keyTag uint8

const (
	keyKind keyTag = iota + 1
	keyType
	keyIdent
)

// Key identifies what an adapter converts: a semantic kind tag, the dynamic
// type of a schema.Type or schema.Validator, or a specific *schema.Func.
// The zero Key matches nothing.
type Key struct {
	tag   keyTag
	kind  schema.Kind
	typ   reflect.Type
	ident *schema.Func
}

// KindKey returns the key for a semantic kind tag.
func KindKey(k schema.Kind) Key {
	if k == "" {
		return Key{}
	}
	return Key{tag: keyKind, kind: k}
}

// TypeKey returns the key for the dynamic type of v. v and &v yield
// different keys.
func TypeKey(v any) Key {
	if v == nil {
		return Key{}
	}
	return Key{tag: keyType, typ: reflect.TypeOf(v)}
}

// FuncKey returns the identity key of f.
func FuncKey(f *schema.Func) Key {
	if f == nil {
		return Key{}
	}
	return Key{tag: keyIdent, ident: f}
}

// ValidatorKey returns the identity key for a *schema.Func and the type key
// for any other validator.
func ValidatorKey(v schema.Validator) Key {
	if f, ok := v.(*schema.Func); ok {
		return FuncKey(f)
	}
	return TypeKey(v)
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.tag == 0 }

func (k Key) String() string {
	switch k.tag {
	case keyKind:
		return "kind:" + string(k.kind)
	case keyType:
		return "type:" + k.typ.String()
	case keyIdent:
		return fmt.Sprintf("func:%s@%p", k.ident.ValidatorName(), k.ident)
	}
	return "none"
}

// Input is what an adapter converts. Validator is set only for validator
// adapters.
type Input struct {
	Node      *schema.Node
	Validator schema.Validator
	Draft     Draft
}

// AdapterFunc converts one node or validator. Container adapters recurse
// through b.Property.
type AdapterFunc func(b *Builder, in Input) (Result, error)

// Result is the outcome of an adapter: a schema fragment, or Ignore.
type Result struct {
	schema  *jsonschema.Schema
	ignored bool
	final   bool
}

// Ignore drops the node (with its subtree) or the validator that produced it.
var Ignore = Result{ignored: true}

// Emit returns a result carrying s.
func Emit(s *jsonschema.Schema) Result {
	if s == nil {
		s = jsonschema.New()
	}
	return Result{schema: s}
}

// Final returns a result carrying s that never receives validator fields.
func Final(s *jsonschema.Schema) Result {
	r := Emit(s)
	r.final = true
	return r
}

// Ignored reports whether r is Ignore.
func (r Result) Ignored() bool { return r.ignored }

// Schema returns the fragment, or nil for Ignore.
func (r Result) Schema() *jsonschema.Schema { return r.schema }

// IgnoreAdapter always returns Ignore.
func IgnoreAdapter(*Builder, Input) (Result, error) { return Ignore, nil }

// Registry maps (draft, key) pairs to adapters. Every draft has its own
// table; there is no fallback between drafts. A later registration for the
// same pair replaces the earlier one.
type Registry struct {
	mu     sync.RWMutex
	tables map[Draft]map[Key]AdapterFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	r := &Registry{tables: make(map[Draft]map[Key]AdapterFunc, len(jsonschema.Drafts))}
	for _, d := range jsonschema.Drafts {
		r.tables[d] = map[Key]AdapterFunc{}
	}
	return r
}

// NewDefaultRegistry returns a registry holding only the built-in adapters.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	registerBuiltins(r)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, populated with the built-in
// adapters on first use.
func Default() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewDefaultRegistry() })
	return defaultRegistry
}

// Register binds fn to every key for every draft in drafts, or for all
// supported drafts when drafts is empty.
func (r *Registry) Register(keys []Key, fn AdapterFunc, drafts ...Draft) error {
	if fn == nil {
		return &RegistrationError{Reason: "nil adapter"}
	}
	if len(keys) == 0 {
		return &RegistrationError{Reason: "no keys"}
	}
	for _, k := range keys {
		if k.IsZero() {
			return &RegistrationError{Reason: "zero key"}
		}
	}
	if len(drafts) == 0 {
		drafts = jsonschema.Drafts
	}
	for _, d := range drafts {
		if !d.Supported() {
			return &RegistrationError{Reason: "unsupported draft", Err: &ConfigError{Draft: d}}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range drafts {
		for _, k := range keys {
			r.tables[d][k] = fn
		}
	}
	return nil
}

func (r *Registry) mustRegister(fn AdapterFunc, keys ...Key) {
	if err := r.Register(keys, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the adapter bound to (d, k).
func (r *Registry) Resolve(d Draft, k Key) (AdapterFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.tables[d][k]
	return fn, ok
}

// Keys returns the keys registered for d, sorted by their string form.
func (r *Registry) Keys(d Draft) []Key {
	r.mu.RLock()
	out := make([]Key, 0, len(r.tables[d]))
	for k := range r.tables[d] {
		out = append(out, k)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{tables: make(map[Draft]map[Key]AdapterFunc, len(r.tables))}
	for d, t := range r.tables {
		ct := make(map[Key]AdapterFunc, len(t))
		for k, fn := range t {
			ct[k] = fn
		}
		c.tables[d] = ct
	}
	return c
}

// Adapts registers fn on the default registry for keys and all drafts, and
// returns fn unchanged. It panics on an unusable registration.
func Adapts(fn AdapterFunc, keys ...Key) AdapterFunc {
	return AdaptsFor(nil, fn, keys...)
}

// AdaptsFor is Adapts restricted to drafts.
func AdaptsFor(drafts []Draft, fn AdapterFunc, keys ...Key) AdapterFunc {
	if err := Default().Register(keys, fn, drafts...); err != nil {
		panic(err)
	}
	return fn
}
