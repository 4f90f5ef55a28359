package jitson

import "github.com/sxegroup/jitson/internal/bufio16"

// memberView names one key/value pair of an object, used by both
// vtable dispatch and the lazy object index.
type memberView struct {
	KeyRef   Ref
	ValueRef Ref
}

// arrayElements walks the array rooted at ref and returns every
// element's Ref. Uniform arrays are walked arithmetically in constant
// time per element; non-uniform arrays are walked by repeatedly adding
// each element's own Size.
func (v *Value) arrayElements(ref Ref) []Ref {
	c := v.cell(ref)
	n := int(c.Len)
	out := make([]Ref, 0, n)
	cur := ref + 1
	if c.FlagBits().Has(FlagUnif) {
		elemCells, _ := bufio16.Uint32Pair(c.Payload)
		for i := 0; i < n; i++ {
			out = append(out, cur)
			cur += Ref(elemCells)
		}
		return out
	}
	for i := 0; i < n; i++ {
		out = append(out, cur)
		cur += Ref(v.Size(cur))
	}
	return out
}

// objectMembers walks the object rooted at ref in storage order,
// pairing each key cell with the value cell that immediately follows
// it.
func (v *Value) objectMembers(ref Ref) []memberView {
	c := v.cell(ref)
	n := int(c.Len)
	out := make([]memberView, 0, n)
	cur := ref + 1
	for i := 0; i < n; i++ {
		keyRef := cur
		valueRef := keyRef + Ref(v.Size(keyRef))
		out = append(out, memberView{KeyRef: keyRef, ValueRef: valueRef})
		cur = valueRef + Ref(v.Size(valueRef))
	}
	return out
}

// arrayIndexData is the materialised random-access index for a
// non-uniform array: element offsets, built once and cached.
type arrayIndexData struct {
	offsets []Ref
}

// objectIndexData is the materialised hash index for an object: member
// key/value pairs bucketed by hashFNV1a(key) % numBuckets, built once
// and cached.
type objectIndexData struct {
	buckets    map[uint64][]memberView
	numBuckets uint64
}

// arrayIndex returns the cached (or freshly built) index for the array
// rooted at ref. Two goroutines racing to build it both succeed; the
// loser's result is discarded via sync.Map.LoadOrStore, tolerating the
// duplicate work rather than serializing concurrent first access.
func (v *Value) arrayIndex(ref Ref) *arrayIndexData {
	if cached, ok := v.arrayIdx.Load(ref); ok {
		return cached.(*arrayIndexData)
	}
	built := &arrayIndexData{offsets: v.arrayElements(ref)}
	actual, _ := v.arrayIdx.LoadOrStore(ref, built)
	return actual.(*arrayIndexData)
}

func (v *Value) objectIndex(ref Ref) *objectIndexData {
	if cached, ok := v.objectIdx.Load(ref); ok {
		return cached.(*objectIndexData)
	}
	members := v.objectMembers(ref)
	numBuckets := uint64(len(members))
	if numBuckets == 0 {
		numBuckets = 1
	}
	buckets := make(map[uint64][]memberView, numBuckets)
	for _, m := range members {
		h := hashFNV1a(string(v.rawStringBytes(m.KeyRef))) % numBuckets
		buckets[h] = append(buckets[h], m)
	}
	built := &objectIndexData{buckets: buckets, numBuckets: numBuckets}
	actual, _ := v.objectIdx.LoadOrStore(ref, built)
	return actual.(*objectIndexData)
}

// GetElement returns the idx'th element of the array at ref (which may
// itself be a reference; it is resolved first).
func (v *Value) GetElement(ref Ref, idx int) (Ref, bool) {
	r := v.resolve(ref)
	c := v.cell(r)
	if c.Type() != TypeArray || idx < 0 || idx >= int(c.Len) {
		return NoRef, false
	}
	if c.FlagBits().Has(FlagUnif) {
		elemCells, _ := bufio16.Uint32Pair(c.Payload)
		return r + 1 + Ref(idx)*Ref(elemCells), true
	}
	data := v.arrayIndex(r)
	return data.offsets[idx], true
}

// MemberValues returns the value Ref of every member of the object at
// ref, in storage order, resolving ref first if it is itself a
// reference. Returns nil if ref does not resolve to an object.
func (v *Value) MemberValues(ref Ref) []Ref {
	r := v.resolve(ref)
	if v.cell(r).Type() != TypeObject {
		return nil
	}
	members := v.objectMembers(r)
	out := make([]Ref, len(members))
	for i, m := range members {
		out[i] = m.ValueRef
	}
	return out
}

// GetMember looks up a member by name in the object at ref (resolved
// first if ref is itself a reference).
func (v *Value) GetMember(ref Ref, name string) (Ref, bool) {
	r := v.resolve(ref)
	if v.cell(r).Type() != TypeObject {
		return NoRef, false
	}
	idx := v.objectIndex(r)
	h := hashFNV1a(name) % idx.numBuckets
	for _, m := range idx.buckets[h] {
		if string(v.rawStringBytes(m.KeyRef)) == name {
			return m.ValueRef, true
		}
	}
	return NoRef, false
}
