package jitson

import "sync"

// CompareResult is the three-or-four-way result of comparing two cells of
// the same (or compatible) type. It mirrors sortedarray.CompareResult so a
// type's Cmp can feed directly into a sortedarray.Class.
type CompareResult int

const (
	Less          CompareResult = -1
	Equal         CompareResult = 0
	Greater       CompareResult = 1
	CompareFailed CompareResult = 2
)

// VTable is the set of behaviours a registered type must provide, the Go
// analogue of the spec's per-type C function-pointer table: free/test/
// size/len/clone/build_json/cmp/eq, dispatched off the small TypeID in a
// cell's tag word rather than off a Go interface, matching hivekit's
// pkg/types.RegType-keyed dispatch in hive/values (behaviour selected by a
// small integer tag, not by a type switch over concrete structs).
type VTable struct {
	// Test reports whether the cell at ref is "truthy" (used by operator
	// dispatch and boolean coercion).
	Test func(v *Value, ref Ref) bool
	// Size returns the number of cells the value at ref occupies,
	// including ref itself.
	Size func(v *Value, ref Ref) int
	// Len returns the type's logical length: string byte count, element
	// or member count, 0 for scalars.
	Len func(v *Value, ref Ref) int
	// Clone copies the value at ref (in src) onto dst, returning the new
	// root ref.
	Clone func(dst *Stack, src *Value, ref Ref) Ref
	// AppendJSON serialises the value at ref as JSON onto buf, returning
	// the extended slice.
	AppendJSON func(buf []byte, v *Value, ref Ref) []byte
	// Cmp orders a against b. Returns CompareFailed for incomparable
	// encodings (e.g. two user types with no shared ordering).
	Cmp func(v *Value, a, b Ref) CompareResult
	// Eq reports value equality; when Cmp is defined it must agree.
	Eq func(v *Value, a, b Ref) bool
	// Extra is an opaque, type-specific payload set at registration time
	// (e.g. a cast function table) and retrievable via TypeRegistry.Extra.
	Extra any
}

// TypeDescriptor is one entry of the process-wide type registry.
type TypeDescriptor struct {
	ID     TypeID
	Name   string
	VTable VTable
}

// TypeRegistry is a process-wide, append-only table of type descriptors
// indexed by TypeID, grounded on hivekit's pkg/types.RegType enumeration
// generalized from a closed set of Windows value types to an open,
// caller-extensible one — the same "small integer tag with behaviour
// attached" shape, but registrations may be added at runtime instead of
// compiled in.
//
// Registration is not concurrency-safe with lookup: all Register calls
// must happen before any goroutine begins parsing or reading.
type TypeRegistry struct {
	mu    sync.RWMutex
	descs []TypeDescriptor
}

// NewTypeRegistry returns a registry with the eight built-in types (0-7)
// already registered.
func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{}
	r.descs = make([]TypeDescriptor, FirstUserType)
	r.descs[TypeInvalid] = TypeDescriptor{ID: TypeInvalid, Name: "invalid"}
	r.descs[TypeNull] = TypeDescriptor{ID: TypeNull, Name: "null", VTable: nullVTable}
	r.descs[TypeBool] = TypeDescriptor{ID: TypeBool, Name: "bool", VTable: boolVTable}
	r.descs[TypeNumber] = TypeDescriptor{ID: TypeNumber, Name: "number", VTable: numberVTable}
	r.descs[TypeString] = TypeDescriptor{ID: TypeString, Name: "string", VTable: stringVTable}
	r.descs[TypeArray] = TypeDescriptor{ID: TypeArray, Name: "array", VTable: arrayVTable}
	r.descs[TypeObject] = TypeDescriptor{ID: TypeObject, Name: "object", VTable: objectVTable}
	r.descs[TypeReference] = TypeDescriptor{ID: TypeReference, Name: "reference", VTable: referenceVTable}
	return r
}

// Register adds a new type, returning the TypeID assigned to it. Once
// registered, a type's id and vtable are immutable for the process
// lifetime.
func (r *TypeRegistry) Register(name string, vt VTable) TypeID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := TypeID(len(r.descs))
	r.descs = append(r.descs, TypeDescriptor{ID: id, Name: name, VTable: vt})
	return id
}

// Get returns the descriptor for id, or false if id is unregistered.
func (r *TypeRegistry) Get(id TypeID) (TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) >= len(r.descs) {
		return TypeDescriptor{}, false
	}
	return r.descs[id], true
}

// Name returns the registered name for id, or "unknown" if unregistered.
func (r *TypeRegistry) Name(id TypeID) string {
	if d, ok := r.Get(id); ok {
		return d.Name
	}
	return "unknown"
}

// Extra returns the opaque per-type payload stashed at registration, or
// nil.
func (r *TypeRegistry) Extra(id TypeID) any {
	if d, ok := r.Get(id); ok {
		return d.VTable.Extra
	}
	return nil
}

// SetExtra replaces the opaque per-type payload for an already-registered
// type. Like Register, this must happen before concurrent readers appear.
func (r *TypeRegistry) SetExtra(id TypeID, extra any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) < len(r.descs) {
		r.descs[id].VTable.Extra = extra
	}
}

// defaultRegistry is the process-wide registry consulted by the free
// functions (New, Parse, ...) that don't take an explicit *TypeRegistry.
var defaultRegistry = NewTypeRegistry()

// DefaultTypeRegistry returns the process-wide registry used by the
// package-level parse/construction helpers.
func DefaultTypeRegistry() *TypeRegistry { return defaultRegistry }
