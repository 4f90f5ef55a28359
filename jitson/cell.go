// Package jitson implements a compact tagged-union JSON value
// representation, a zero-per-node-allocation parser, a sorted/uniform/
// homogeneous array optimisation, and lazy, concurrency-safe indexing.
//
// Values are laid out as a contiguous run of Cells inside a Stack, the same
// way hivekit lays NK/VK/SK records out as a contiguous run of bytes inside
// an HBIN: a Ref is a uint32 index into that run, not a pointer, so
// references are plain integers (see Stack.AddReference).
package jitson

// CellSize is the fixed size, in bytes, of one cell: a 4-byte tag word, a
// 4-byte length word, and an 8-byte payload.
const CellSize = 16

// Ref addresses a cell within a Stack's backing array. Ref 0 is a valid
// cell: the root of every non-empty value starts at index 0. An "absent"
// reference is spelled NoRef, the largest Ref value, to avoid ambiguity
// with that legitimate offset of 0.
type Ref uint32

// NoRef is the Ref value meaning "no cell".
const NoRef Ref = ^Ref(0)

// TypeID is a small integer identifying a cell's type. 0-7 are reserved for
// the built-in types; 8 and up are assigned by TypeRegistry.Register.
type TypeID uint16

const (
	TypeInvalid   TypeID = 0
	TypeNull      TypeID = 1
	TypeBool      TypeID = 2
	TypeNumber    TypeID = 3
	TypeString    TypeID = 4
	TypeArray     TypeID = 5
	TypeObject    TypeID = 6
	TypeReference TypeID = 7
	// FirstUserType is the smallest type id available to
	// TypeRegistry.Register.
	FirstUserType TypeID = 8
)

// Flags are the high 16 bits of a cell's tag word: capability and state
// bits layered on top of the type id.
type Flags uint16

const (
	// FlagMkSort marks an array under construction that must keep
	// insertion order sorted as elements are pushed: Stack.noteChild
	// routes each push through sortInsert, a binary-search insert that
	// physically rotates cells into place rather than trusting the
	// caller's push order. Cleared partway through if two pushed
	// elements turn out incomparable, since sortedness can no longer be
	// guaranteed for the rest of the array.
	FlagMkSort Flags = 1 << iota
	// FlagLocal marks a thread-local (here: goroutine-scoped, never
	// escaping to a sealed value) collection.
	FlagLocal
	// FlagHomo marks an array whose elements all share one type id.
	FlagHomo
	// FlagUnif marks an array whose elements all occupy the same cell
	// count. Implies no index is needed: element i is computed
	// arithmetically.
	FlagUnif
	// FlagOrd marks a homogeneous array whose elements are in
	// non-decreasing order under the element type's Compare. Implies
	// FlagHomo.
	FlagOrd
	// FlagUint marks a number cell's payload as an unsigned 64-bit
	// integer rather than an IEEE-754 double.
	FlagUint
	// FlagReversed marks a string cell whose bytes are stored in reverse
	// order (see Value.GetString and Value.RawStringBytes).
	FlagReversed
	// FlagKey marks a string cell as an object member key rather than a
	// value; its Len field still holds the key's byte length (hash-bucket
	// chaining lives in Value.objectIdx, not in the cell — see index.go).
	FlagKey
	// FlagIsRef marks a string or object cell that holds a pointer/index
	// to external storage rather than inline bytes.
	FlagIsRef
	// FlagOwn marks a cell whose referenced storage (string bytes, index
	// array) is owned and must be released when the cell is freed.
	FlagOwn
	// FlagIndexed names the materialised-index state of an array/object.
	// This package does not set it: GetElement and GetMember keep their
	// lazily built indexes in Value's side tables (see index.go), and the
	// cell's flags do not change when an index is built.
	FlagIndexed
	// FlagAlloced marks the root cell of an independently heap-allocated
	// value returned by Stack.Seal / New.
	FlagAlloced
)

// Has reports whether all bits of want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// tag packs a TypeID and Flags into the 32-bit tag word.
func tag(t TypeID, f Flags) uint32 {
	return uint32(t) | uint32(f)<<16
}

func tagType(word uint32) TypeID { return TypeID(word & 0xFFFF) }
func tagFlags(word uint32) Flags { return Flags(word >> 16) }

// Cell is the 16-byte tagged record that is the atomic unit of value
// storage: a type+flags word, a count word, and an 8-byte payload.
type Cell struct {
	Tag     uint32
	Len     uint32
	Payload [8]byte
}

// Type returns the cell's type id.
func (c *Cell) Type() TypeID { return tagType(c.Tag) }

// FlagBits returns the cell's flag bits.
func (c *Cell) FlagBits() Flags { return tagFlags(c.Tag) }

// SetFlags ORs extra bits into the cell's flag word.
func (c *Cell) SetFlags(extra Flags) {
	c.Tag = tag(c.Type(), c.FlagBits()|extra)
}

// ClearFlags ANDs bits out of the cell's flag word.
func (c *Cell) ClearFlags(remove Flags) {
	c.Tag = tag(c.Type(), c.FlagBits()&^remove)
}

func newTaggedCell(t TypeID, f Flags) Cell {
	return Cell{Tag: tag(t, f)}
}
