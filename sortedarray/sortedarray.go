// Package sortedarray implements a generic ordered, contiguous array with a
// pluggable compare/visit pair, supporting insertion-sort builds, binary
// search, delete, and set intersection.
//
// The shape follows the same discipline as hivekit's subkey lists
// (hive/subkeys: LF/LH/LI/RI, sorted by NameLower with cached hashes, built
// via slices.BinarySearchFunc/cmp.Compare) generalized from a fixed record
// type to any T, and from a single flat slice to one that is optionally
// grown in fixed increments rather than relying on append's own policy,
// so that a Class with AllowGrowth false can report ErrFull instead of
// silently reallocating.
package sortedarray

import "errors"

// CompareResult is the three-or-four-way result of a key compare.
type CompareResult int

const (
	Less CompareResult = -1
	Equal CompareResult = 0
	Greater CompareResult = 1
	// CompareFailed is returned only by compare functions registered with
	// Class.CmpCanFail set; it signals "these keys cannot be ordered"
	// rather than an ordering decision.
	CompareFailed CompareResult = 2
)

// growthMinimum bounds how small a single growth step may be, matching the
// spec's "grow by max(alloc/2, 10)" policy.
const growthMinimum = 10

var (
	// ErrDuplicate is returned by Add when an element with an equal key is
	// already present.
	ErrDuplicate = errors.New("sortedarray: duplicate key")
	// ErrUnsortedInsert is returned by Add when the new element would land
	// out of append-order and Class.AllowInserts is false.
	ErrUnsortedInsert = errors.New("sortedarray: unsorted insertion not permitted")
	// ErrFull is returned by Add when capacity is exhausted and
	// Class.AllowGrowth is false.
	ErrFull = errors.New("sortedarray: array is full")
	// ErrCompareFailed is returned when Class.CmpCanFail is set and a
	// compare call reports CompareFailed mid-operation.
	ErrCompareFailed = errors.New("sortedarray: compare failed")
)

// Class describes the fixed behaviour of one sorted array: how to compare
// two elements' keys and which relaxations are permitted during Add. What
// to do with a matched element is not part of Class; Intersect takes it
// as its visit argument.
type Class[T any] struct {
	// Compare orders a against b by key. Returning CompareFailed is only
	// legal when CmpCanFail is true.
	Compare func(a, b T) CompareResult
	// AllowInserts permits Add to binary-search an insertion point when the
	// new element is smaller than the current last element. When false,
	// out-of-order Add calls fail with ErrUnsortedInsert.
	AllowInserts bool
	// AllowGrowth permits Add to reallocate when capacity runs out. When
	// false, Add fails with ErrFull instead.
	AllowGrowth bool
	// CmpCanFail marks Compare as capable of returning CompareFailed; Find
	// and Intersect propagate ErrCompareFailed rather than silently
	// treating a failed compare as an ordering decision.
	CmpCanFail bool
}

// Array is a sorted, contiguous run of T, ordered by Class.Compare.
type Array[T any] struct {
	class *Class[T]
	elems []T
}

// New returns an empty array governed by class.
func New[T any](class *Class[T]) *Array[T] {
	return &Array[T]{class: class}
}

// NewWithCapacity returns an empty array pre-sized to hold n elements
// without growing.
func NewWithCapacity[T any](class *Class[T], n int) *Array[T] {
	return &Array[T]{class: class, elems: make([]T, 0, n)}
}

// NewFromSorted wraps elems, which the caller guarantees is already in
// class order (duplicates permitted), without re-validating it through
// Add. This is how a reader attaches Find/Intersect to data that
// arrived pre-sorted from elsewhere (e.g. a jitson array built with
// FlagMkSort) instead of being built one Add call at a time.
func NewFromSorted[T any](class *Class[T], elems []T) *Array[T] {
	return &Array[T]{class: class, elems: elems}
}

// Len returns the number of elements currently stored.
func (a *Array[T]) Len() int { return len(a.elems) }

// At returns the element at position i. Panics if i is out of range, the
// same programmer-error contract the spec assigns to out-of-bounds access.
func (a *Array[T]) At(i int) T { return a.elems[i] }

// Elems returns the backing slice, in order. Callers must not mutate it in
// a way that breaks ordering.
func (a *Array[T]) Elems() []T { return a.elems }

func (a *Array[T]) ensureCapacity(extra int) error {
	if len(a.elems)+extra <= cap(a.elems) {
		return nil
	}
	if !a.class.AllowGrowth {
		return ErrFull
	}
	step := cap(a.elems) / 2
	if step < growthMinimum {
		step = growthMinimum
	}
	newCap := cap(a.elems) + step
	if want := len(a.elems) + extra; newCap < want {
		newCap = want
	}
	grown := make([]T, len(a.elems), newCap)
	copy(grown, a.elems)
	a.elems = grown
	return nil
}

// Add inserts elem, maintaining non-decreasing order. It returns
// ErrDuplicate if an element with an equal key is already present,
// ErrUnsortedInsert if elem would land before the current tail and
// Class.AllowInserts is false, or ErrFull if capacity is exhausted and
// Class.AllowGrowth is false.
func (a *Array[T]) Add(elem T) error {
	n := len(a.elems)
	if n > 0 {
		switch a.class.Compare(a.elems[n-1], elem) {
		case Equal:
			return ErrDuplicate
		case Greater:
			if !a.class.AllowInserts {
				return ErrUnsortedInsert
			}
			idx, status := a.findBetween(elem, 0, n)
			if status == findError {
				return ErrCompareFailed
			}
			if status == findMatch {
				return ErrDuplicate
			}
			if err := a.ensureCapacity(1); err != nil {
				return err
			}
			a.elems = a.elems[:n+1]
			copy(a.elems[idx+1:], a.elems[idx:n])
			a.elems[idx] = elem
			return nil
		case CompareFailed:
			return ErrCompareFailed
		}
	}
	if err := a.ensureCapacity(1); err != nil {
		return err
	}
	a.elems = append(a.elems, elem)
	return nil
}

type findStatus int

const (
	findMiss findStatus = iota
	findMatch
	findError
)

// findBetween binary-searches [lo, hi) for key, returning the insertion
// point on a miss (the first slot whose key is greater, or hi).
func (a *Array[T]) findBetween(key T, lo, hi int) (int, findStatus) {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch a.class.Compare(a.elems[mid], key) {
		case Less:
			lo = mid + 1
		case Greater:
			hi = mid
		case Equal:
			return mid, findMatch
		case CompareFailed:
			return 0, findError
		}
	}
	return lo, findMiss
}

// Find returns (index, true) if key is present, or (insertion point, false)
// on a miss. When Class.CmpCanFail is set and a compare call fails, Find
// returns (0, false) with err set to ErrCompareFailed.
func (a *Array[T]) Find(key T) (idx int, found bool, err error) {
	i, status := a.findBetween(key, 0, len(a.elems))
	switch status {
	case findMatch:
		return i, true, nil
	case findError:
		return 0, false, ErrCompareFailed
	default:
		return i, false, nil
	}
}

// Get returns the stored element matching key, if any.
func (a *Array[T]) Get(key T) (elem T, ok bool, err error) {
	idx, found, err := a.Find(key)
	if err != nil || !found {
		return elem, false, err
	}
	return a.elems[idx], true, nil
}

// Delete removes the element matching key, if present, preserving order.
// Reports whether an element was removed.
func (a *Array[T]) Delete(key T) (bool, error) {
	idx, found, err := a.Find(key)
	if err != nil || !found {
		return false, err
	}
	copy(a.elems[idx:], a.elems[idx+1:])
	var zero T
	a.elems[len(a.elems)-1] = zero
	a.elems = a.elems[:len(a.elems)-1]
	return true, nil
}

// Intersect visits every element of left whose key also appears in right,
// in ascending order, stopping early if visit returns false. It recurses on
// the median of the left half exactly as described by the design: the
// left-median's key is binary-searched in right to split right's range,
// the two halves are then recursed on independently and the median is
// visited in between if matched.
func Intersect[T any](left, right *Array[T], visit func(T) bool) error {
	_, err := intersectRange(left, 0, len(left.elems), right, 0, len(right.elems), visit)
	return err
}

func intersectRange[T any](left *Array[T], lLo, lHi int, right *Array[T], rLo, rHi int, visit func(T) bool) (cont bool, err error) {
	if lLo >= lHi || rLo >= rHi {
		return true, nil
	}
	mid := int(uint(lLo+lHi) >> 1)
	medianKey := left.elems[mid]
	idx, status := right.findBetween(medianKey, rLo, rHi)
	if status == findError {
		return false, ErrCompareFailed
	}

	cont, err = intersectRange(left, lLo, mid, right, rLo, idx, visit)
	if err != nil || !cont {
		return cont, err
	}

	if status == findMatch {
		if !visit(medianKey) {
			return false, nil
		}
	}

	return intersectRange(left, mid+1, lHi, right, idx, rHi, visit)
}

// IntersectTest reports whether left and right's key sets intersect at
// all, without materialising the shared elements. It stops at the first
// match.
func IntersectTest[T any](left, right *Array[T]) (bool, error) {
	found := false
	err := Intersect(left, right, func(T) bool {
		found = true
		return false
	})
	return found, err
}
