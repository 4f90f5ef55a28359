package jitson

import "github.com/sxegroup/jitson/internal/bufio16"

// frame tracks an array or object under construction. Arrays accumulate
// enough information about their children to decide, at close time,
// whether the uniform/homogeneous size optimisation applies: a run of
// same-type, same-size elements collapses to a single (elemSize,
// elemType) payload pair instead of per-element bookkeeping.
type frame struct {
	root     Ref
	typ      TypeID
	wantSort bool
	count    uint32
	sameType bool
	sameSize bool
	elemType TypeID
	elemSize int
	// childRoots holds the current Ref of every child pushed so far, in
	// storage order, but only while wantSort holds: sortInsert uses it
	// as the sorted prefix to binary-search against.
	childRoots []Ref
}

// Stack is a growable cell buffer used to build a Value one cell at a
// time, the Go analogue of hivekit's pkg/buf.Buffer used to assemble a
// hive image before it is handed off as read-only. A Stack is not safe
// for concurrent use; build on one goroutine, then Seal and share the
// result freely.
type Stack struct {
	cells    []Cell
	strings  []string
	registry *TypeRegistry
	frames   []frame
}

// NewStack returns an empty Stack bound to registry. A nil registry
// falls back to DefaultTypeRegistry.
func NewStack(registry *TypeRegistry) *Stack {
	if registry == nil {
		registry = DefaultTypeRegistry()
	}
	return &Stack{registry: registry}
}

// ensureCapacity grows the cell buffer to hold at least extra more
// cells, doubling below 4096 cells and growing by flat 4096-cell
// increments above it, matching the amortised-growth policy hivekit's
// buffer pool uses for hive images.
func (s *Stack) ensureCapacity(extra int) {
	need := len(s.cells) + extra
	if need <= cap(s.cells) {
		return
	}
	newCap := cap(s.cells)
	if newCap == 0 {
		newCap = 64
	}
	for newCap < need {
		if newCap < 4096 {
			newCap *= 2
		} else {
			newCap += 4096
		}
	}
	grown := make([]Cell, len(s.cells), newCap)
	copy(grown, s.cells)
	s.cells = grown
}

func (s *Stack) reserve(n int) Ref {
	s.ensureCapacity(n)
	start := Ref(len(s.cells))
	s.cells = s.cells[:len(s.cells)+n]
	return start
}

// noteChild records that a value of the given type and cell-span was
// just appended as a direct child of the innermost open collection,
// returning the child's final Ref (unchanged unless a sorted insert
// relocated it). It is a no-op outside any open collection (building a
// bare scalar Value).
func (s *Stack) noteChild(ref Ref, t TypeID, sizeCells int) Ref {
	if len(s.frames) == 0 {
		return ref
	}
	f := &s.frames[len(s.frames)-1]
	if f.typ == TypeObject {
		f.count++
		return ref
	}
	if f.wantSort {
		ref = s.sortInsert(f, ref, sizeCells)
	}
	if f.count == 0 {
		f.elemType = t
		f.elemSize = sizeCells
	} else {
		if f.elemType != t {
			f.sameType = false
		}
		if f.elemSize != sizeCells {
			f.sameSize = false
		}
	}
	f.count++
	return ref
}

// sortInsert binary-searches f.childRoots (the sorted prefix built so
// far) for newRef's position using a throwaway Value view over the
// stack's own in-progress cells, then physically rotates newRef's
// sizeCells-cell block into place so the frame's children stay in
// ascending Cmp order as they're pushed. Two elements that turn out to
// be incomparable (CompareFailed) permanently clear f.wantSort for the
// rest of this collection, the same give-up-on-first-surprise rule
// parseArray uses for its own speculative Optimize check.
func (s *Stack) sortInsert(f *frame, newRef Ref, sizeCells int) Ref {
	tmp := &Value{cells: s.cells, registry: s.registry}
	lo, hi := 0, len(f.childRoots)
	for lo < hi {
		mid := (lo + hi) / 2
		switch tmp.Cmp(newRef, f.childRoots[mid]) {
		case CompareFailed:
			f.wantSort = false
			return newRef
		case Less:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	if lo == len(f.childRoots) {
		f.childRoots = append(f.childRoots, newRef)
		return newRef
	}
	insertPos := f.childRoots[lo]
	s.rotateBlock(insertPos, newRef, sizeCells)
	f.childRoots = append(f.childRoots, NoRef)
	copy(f.childRoots[lo+1:], f.childRoots[lo:len(f.childRoots)-1])
	for i := lo + 1; i < len(f.childRoots); i++ {
		f.childRoots[i] += Ref(sizeCells)
	}
	f.childRoots[lo] = insertPos
	return insertPos
}

// rotateBlock moves the sizeCells-cell block currently at newRef (the
// child just appended at the end of the buffer) down to insertPos,
// shifting everything between the two positions up by sizeCells cells.
func (s *Stack) rotateBlock(insertPos, newRef Ref, sizeCells int) {
	sz := Ref(sizeCells)
	moving := make([]Cell, sz)
	copy(moving, s.cells[newRef:newRef+sz])
	copy(s.cells[insertPos+sz:newRef+sz], s.cells[insertPos:newRef])
	copy(s.cells[insertPos:insertPos+sz], moving)
}

func (s *Stack) cellSpan(ref Ref) int {
	c := &s.cells[ref]
	if c.Type() == TypeString {
		return cellsForInlineBytes(int(c.Len))
	}
	return 1
}

// AddNull appends a null scalar.
func (s *Stack) AddNull() Ref {
	ref := s.reserve(1)
	s.cells[ref] = newTaggedCell(TypeNull, 0)
	return s.noteChild(ref, TypeNull, 1)
}

// AddBool appends a boolean scalar.
func (s *Stack) AddBool(b bool) Ref {
	ref := s.reserve(1)
	c := newTaggedCell(TypeBool, 0)
	bufio16.PutBool(&c.Payload, b)
	s.cells[ref] = c
	return s.noteChild(ref, TypeBool, 1)
}

// AddNumber appends a double-precision number scalar.
func (s *Stack) AddNumber(f float64) Ref {
	ref := s.reserve(1)
	c := newTaggedCell(TypeNumber, 0)
	bufio16.PutFloat64(&c.Payload, f)
	s.cells[ref] = c
	return s.noteChild(ref, TypeNumber, 1)
}

// AddUint appends a number scalar stored as an unsigned 64-bit integer
// rather than a double, preserving full 64-bit precision for values
// that don't round-trip through float64.
func (s *Stack) AddUint(u uint64) Ref {
	ref := s.reserve(1)
	c := newTaggedCell(TypeNumber, FlagUint)
	bufio16.PutUint64(&c.Payload, u)
	s.cells[ref] = c
	return s.noteChild(ref, TypeNumber, 1)
}

func (s *Stack) addStringCells(data []byte, flags Flags) Ref {
	n := len(data)
	ncells := cellsForInlineBytes(n)
	root := s.reserve(ncells)
	c := newTaggedCell(TypeString, flags)
	c.Len = uint32(n)
	s.cells[root] = c
	writeInlineBytes(s.cells, root, data)
	return root
}

// AddString appends a string value, counting it as one child of the
// innermost open collection.
func (s *Stack) AddString(str string) Ref {
	ref := s.addStringCells([]byte(str), 0)
	return s.noteChild(ref, TypeString, s.cellSpan(ref))
}

// AddMemberName appends an object member's key, flagged FlagKey. It is
// not itself counted as a child; the member it introduces is counted
// when the paired value is pushed.
func (s *Stack) AddMemberName(name string) Ref {
	return s.addStringCells([]byte(name), FlagKey)
}

// addStringBytes is the string clone path: it writes raw bytes (already
// un-reversed by the caller) and always counts as a value child. The
// flags parameter is accepted for symmetry with the other vtable Clone
// signatures but string values never carry FlagKey; keys are written
// directly via AddMemberName.
func (s *Stack) addStringBytes(data []byte, _ Flags) Ref {
	ref := s.addStringCells(data, 0)
	return s.noteChild(ref, TypeString, s.cellSpan(ref))
}

// AddReference appends a reference cell pointing at target. Building a
// reference to a reference is rejected; chained indirection is
// disallowed so every resolve() is a single hop. target must not lie
// inside a still-open MK_SORT array higher up the frame stack: a later
// sorted insertion into that array can relocate target's cells out from
// under this reference's stored offset.
func (s *Stack) AddReference(target Ref) (Ref, error) {
	if s.cells[target].Type() == TypeReference {
		return NoRef, &Error{Kind: ErrKindContract, Msg: "cannot build a reference to a reference"}
	}
	ref := s.reserve(1)
	c := newTaggedCell(TypeReference, 0)
	bufio16.PutUint32Pair(&c.Payload, uint32(target), 0)
	s.cells[ref] = c
	return s.noteChild(ref, TypeReference, 1), nil
}

// openCollection reserves the header cell for an array or object and
// pushes a frame tracking its children. flags may carry FlagMkSort to
// have each child push kept in Cmp order via sortInsert (see
// FlagMkSort).
func (s *Stack) openCollection(t TypeID, flags Flags) (Ref, error) {
	root := s.reserve(1)
	s.frames = append(s.frames, frame{
		root:     root,
		typ:      t,
		wantSort: flags.Has(FlagMkSort),
		sameType: true,
		sameSize: true,
	})
	return root, nil
}

// closeCollection finalises the header cell at root, computing its Len,
// flags, and payload from the children observed since the matching
// openCollection, then counts the whole collection as one child of its
// own parent (if any).
func (s *Stack) closeCollection(root Ref) Ref {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	totalCells := len(s.cells) - int(root)

	var flags Flags
	if f.wantSort {
		flags |= FlagMkSort | FlagOrd
	}

	var payload [8]byte
	switch f.typ {
	case TypeArray:
		if f.count > 0 && f.sameType && f.sameSize {
			flags |= FlagUnif | FlagHomo
			bufio16.PutUint32Pair(&payload, uint32(f.elemSize), uint32(f.elemType))
		} else {
			if f.count > 0 && f.sameType {
				flags |= FlagHomo
			}
			bufio16.PutUint32Pair(&payload, uint32(totalCells), 0)
		}
	case TypeObject:
		bufio16.PutUint32Pair(&payload, uint32(totalCells), 0)
	}
	s.cells[root] = Cell{Tag: tag(f.typ, flags), Len: f.count, Payload: payload}
	return s.noteChild(root, f.typ, totalCells)
}

// OpenArray begins building an array, returning its header Ref. Pass
// sorted true to keep elements in ascending Cmp order as they're
// pushed: each push is routed through a binary-search insert (see
// sortInsert), so callers need not pre-sort themselves. The closed
// array is then tagged FlagMkSort|FlagOrd so package oper's
// IN/INTERSECT can binary-search it instead of scanning, unless an
// incomparable push cleared the sort partway (see FlagMkSort).
//
// Refs returned while a sorted array is still open are not stable: a
// later sibling push may binary-search ahead of an earlier one and
// shift its cells to make room. Only Refs obtained after CloseArray (or
// via GetElement/GetMember on the sealed Value) are safe to hold onto.
func (s *Stack) OpenArray(sorted bool) (Ref, error) {
	var flags Flags
	if sorted {
		flags |= FlagMkSort
	}
	return s.openCollection(TypeArray, flags)
}

// CloseArray finalises the array opened at root.
func (s *Stack) CloseArray(root Ref) Ref { return s.closeCollection(root) }

// OpenObject begins building an object, returning its header Ref.
func (s *Stack) OpenObject() (Ref, error) { return s.openCollection(TypeObject, 0) }

// CloseObject finalises the object opened at root.
func (s *Stack) CloseObject(root Ref) Ref { return s.closeCollection(root) }

// CloneFrom copies the value at ref (owned by a different, sealed
// Value) onto s, the public entry point cross-Value operators like
// package oper's Intersect use to assemble a fresh result.
func (s *Stack) CloneFrom(src *Value, ref Ref) Ref { return s.cloneValueInto(src, ref) }

// cloneValueInto copies the value at ref (owned by src) onto s via the
// registered vtable for its own type, without pre-resolving references:
// a reference child forwards through referenceVTable.Clone to whatever
// it targets, so dup() of a container holding a reference yields a
// fully materialised, reference-free copy.
func (s *Stack) cloneValueInto(src *Value, ref Ref) Ref {
	vt := src.vtableFor(src.cell(ref).Type())
	if vt.Clone == nil {
		return s.AddNull()
	}
	return vt.Clone(s, src, ref)
}

// Seal finalises the Stack into an immutable Value. It is an error to
// seal with any collection still open.
func (s *Stack) Seal() (*Value, error) {
	if len(s.frames) != 0 {
		return nil, &Error{Kind: ErrKindContract, Msg: "unclosed collection at seal"}
	}
	if len(s.cells) > 0 {
		s.cells[0].SetFlags(FlagAlloced)
	}
	return &Value{cells: s.cells, strings: s.strings, registry: s.registry}, nil
}
