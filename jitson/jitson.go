// Package jitson implements a compact, allocation-frugal in-memory
// representation for JSON-like values: every scalar, array, object,
// string and cross-document reference is packed into one or more
// fixed-size 16-byte cells in a single flat slice, addressed by index
// (Ref) rather than pointer. Parsing a document appends its cells to
// one growable slice instead of allocating a heap node per value;
// reads copy string bytes out and build array/object indexes lazily on
// first lookup.
package jitson

// New parses text under the default registry with no syntax
// extensions, the common case for well-formed JSON input.
func New(text string) (*Value, error) {
	return Parse([]byte(text))
}

// Registry returns the type registry a Value was built against.
func (v *Value) Registry() *TypeRegistry { return v.registry }
