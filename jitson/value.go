package jitson

import (
	"sync"

	"github.com/sxegroup/jitson/internal/bufio16"
)

// Value is a sealed, owned run of cells returned by Stack.Seal or Parse. It
// is safe to read from multiple goroutines; the only write that can happen
// after sealing is lazy index materialisation (see index.go), published via
// sync.Map.LoadOrStore the same way hivekit tolerates two readers racing to
// build a cached KeyMeta.NameLower.
type Value struct {
	cells    []Cell
	strings  []string // backing storage for FlagIsRef string cells
	registry *TypeRegistry

	arrayIdx  sync.Map // Ref -> *arrayIndexData
	objectIdx sync.Map // Ref -> *objectIndexData
}

// Root returns the reference to the value's root cell.
func (v *Value) Root() Ref { return 0 }

func (v *Value) cell(ref Ref) *Cell { return &v.cells[ref] }

// Type returns the type id of the cell at ref (its own type, not resolved
// through a reference).
func (v *Value) Type(ref Ref) TypeID { return v.cell(ref).Type() }

// ResolvedType returns the type id of the value at ref after following
// a reference hop, the type operator dispatch should switch on.
func (v *Value) ResolvedType(ref Ref) TypeID { return v.cell(v.resolve(ref)).Type() }

// IsSorted reports whether the array at ref (resolved) is flagged
// FlagOrd, making a binary search over its elements valid.
func (v *Value) IsSorted(ref Ref) bool {
	return v.cell(v.resolve(ref)).FlagBits().Has(FlagOrd)
}

func (v *Value) vtableFor(t TypeID) VTable {
	d, _ := v.registry.Get(t)
	return d.VTable
}

// resolve follows one reference hop. References to references are
// disallowed by construction (Stack.AddReference rejects them), so a
// single hop always lands on a non-reference cell.
func (v *Value) resolve(ref Ref) Ref {
	if v.cell(ref).Type() == TypeReference {
		return v.targetRef(ref)
	}
	return ref
}

func (v *Value) targetRef(ref Ref) Ref {
	lo, _ := bufio16.Uint32Pair(v.cell(ref).Payload)
	return Ref(lo)
}

// Size returns the number of cells occupied by the value rooted at ref,
// including ref itself. Unlike Test/Len/AppendJSON, Size is NOT resolved
// through a reference: a reference cell's own footprint is always 1.
func (v *Value) Size(ref Ref) int {
	vt := v.vtableFor(v.cell(ref).Type())
	if vt.Size == nil {
		return 1
	}
	return vt.Size(v, ref)
}

// Test reports whether the value at ref is truthy.
func (v *Value) Test(ref Ref) bool {
	r := v.resolve(ref)
	vt := v.vtableFor(v.cell(r).Type())
	if vt.Test == nil {
		return false
	}
	return vt.Test(v, r)
}

// Len returns the logical length of the value at ref (string bytes,
// element/member count, or 0 for scalars).
func (v *Value) Len(ref Ref) int {
	r := v.resolve(ref)
	vt := v.vtableFor(v.cell(r).Type())
	if vt.Len == nil {
		return 0
	}
	return vt.Len(v, r)
}

// AppendJSON serialises the value at ref as JSON onto buf.
func (v *Value) AppendJSON(buf []byte, ref Ref) []byte {
	r := v.resolve(ref)
	vt := v.vtableFor(v.cell(r).Type())
	if vt.AppendJSON == nil {
		return append(buf, "null"...)
	}
	return vt.AppendJSON(buf, v, r)
}

// ToJSON renders the value at ref as a JSON string.
func (v *Value) ToJSON(ref Ref) string {
	return string(v.AppendJSON(nil, ref))
}

// Clone deep-copies the value at ref onto a fresh Stack and seals it,
// producing an independent owned Value (spec's dup()).
func (v *Value) Clone(ref Ref) *Value {
	dst := NewStack(v.registry)
	r := v.resolve(ref)
	vt := v.vtableFor(v.cell(r).Type())
	if vt.Clone != nil {
		vt.Clone(dst, v, r)
	}
	out, _ := dst.Seal()
	return out
}

// Cmp orders the values at a and b, resolving references on both sides
// first. Returns CompareFailed if the resolved types differ or the type
// has no Cmp implementation.
func (v *Value) Cmp(a, b Ref) CompareResult {
	ra, rb := v.resolve(a), v.resolve(b)
	ta, tb := v.cell(ra).Type(), v.cell(rb).Type()
	if ta != tb {
		return CompareFailed
	}
	vt := v.vtableFor(ta)
	if vt.Cmp == nil {
		return CompareFailed
	}
	return vt.Cmp(v, ra, rb)
}

// Eq reports value equality, resolving references on both sides first.
func (v *Value) Eq(a, b Ref) bool {
	ra, rb := v.resolve(a), v.resolve(b)
	ta, tb := v.cell(ra).Type(), v.cell(rb).Type()
	if ta != tb {
		return false
	}
	vt := v.vtableFor(ta)
	if vt.Eq == nil {
		return false
	}
	return vt.Eq(v, ra, rb)
}

// --- scalar accessors -------------------------------------------------

// GetBool returns the boolean payload of the cell at ref. Callers must
// check Type(ref) == TypeBool first; this is a raw accessor, not a
// coercion.
func (v *Value) GetBool(ref Ref) bool {
	return bufio16.Bool(v.cell(ref).Payload)
}

// IsUint reports whether the number cell at ref holds an unsigned 64-bit
// integer rather than a double.
func (v *Value) IsUint(ref Ref) bool {
	return v.cell(ref).FlagBits().Has(FlagUint)
}

// GetNumber returns the number cell at ref as a float64, converting from
// uint64 if FlagUint is set.
func (v *Value) GetNumber(ref Ref) float64 {
	c := v.cell(ref)
	if c.FlagBits().Has(FlagUint) {
		return float64(bufio16.Uint64(c.Payload))
	}
	return bufio16.Float64(c.Payload)
}

// GetUint returns the number cell at ref as a uint64. If the cell holds a
// double, it is truncated.
func (v *Value) GetUint(ref Ref) uint64 {
	c := v.cell(ref)
	if c.FlagBits().Has(FlagUint) {
		return bufio16.Uint64(c.Payload)
	}
	return uint64(bufio16.Float64(c.Payload))
}

// GetString returns the decoded bytes of the string cell at ref,
// transparently un-reversing FlagReversed storage (Open Question 3).
func (v *Value) GetString(ref Ref) string {
	return string(v.stringBytes(ref))
}

// RawStringBytes returns the string cell's stored bytes without
// un-reversing, for callers that opt into the raw layout.
func (v *Value) RawStringBytes(ref Ref) []byte {
	return v.rawStringBytes(ref)
}
