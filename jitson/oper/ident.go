package oper

import "github.com/sxegroup/jitson/jitson"

// IdentBuilder pushes the replacement value for one registered
// identifier name onto st, the Go analogue of the cell a C
// ident_register entry points at.
type IdentBuilder func(st *jitson.Stack) jitson.Ref

// IdentRegistry is a name -> IdentBuilder table, the Go shape of the
// ident_register/ident_lookup_hook pair: Register populates the table,
// Hook adapts it into a jitson.IdentHook for jitson.Options.IdentHook.
type IdentRegistry struct {
	builders map[string]IdentBuilder
}

// NewIdentRegistry returns an empty IdentRegistry.
func NewIdentRegistry() *IdentRegistry {
	return &IdentRegistry{builders: make(map[string]IdentBuilder)}
}

// Register adds or replaces the builder for name.
func (r *IdentRegistry) Register(name string, builder IdentBuilder) {
	r.builders[name] = builder
}

// Hook adapts the registry into a jitson.IdentHook: an unregistered
// name leaves the identifier unresolved, so the parser falls through to
// ErrUnknownIdent.
func (r *IdentRegistry) Hook() jitson.IdentHook {
	return func(name string, st *jitson.Stack) bool {
		builder, ok := r.builders[name]
		if !ok {
			return false
		}
		builder(st)
		return true
	}
}

// DefaultIdents is a ready-made identifier registry for
// jitson.Options.IdentHook (via DefaultIdents.Hook()), pre-populated
// with sentinel names a configuration-style document might reference
// bare rather than as a string or number literal.
var DefaultIdents = NewIdentRegistry()

func init() {
	DefaultIdents.Register("unset", func(st *jitson.Stack) jitson.Ref { return st.AddNull() })
}
