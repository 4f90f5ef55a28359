package sortedarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intClass() *Class[int] {
	return &Class[int]{
		Compare: func(a, b int) CompareResult {
			switch {
			case a < b:
				return Less
			case a > b:
				return Greater
			default:
				return Equal
			}
		},
		AllowInserts: true,
		AllowGrowth:  true,
	}
}

func TestAddBuildsStrictlyIncreasing(t *testing.T) {
	arr := New(intClass())
	for _, v := range []int{32, 31, 5, 1, 17, 2} {
		require.NoError(t, arr.Add(v))
	}
	require.Equal(t, []int{1, 2, 5, 17, 31, 32}, arr.Elems())
}

func TestAddRejectsDuplicates(t *testing.T) {
	arr := New(intClass())
	require.NoError(t, arr.Add(1))
	require.NoError(t, arr.Add(2))
	require.ErrorIs(t, arr.Add(1), ErrDuplicate)
	require.ErrorIs(t, arr.Add(2), ErrDuplicate)
}

func TestAddWithoutAllowInsertsRejectsOutOfOrder(t *testing.T) {
	class := intClass()
	class.AllowInserts = false
	arr := New(class)
	require.NoError(t, arr.Add(5))
	require.NoError(t, arr.Add(10))
	require.ErrorIs(t, arr.Add(3), ErrUnsortedInsert)
}

func TestAddWithoutAllowGrowthFailsWhenFull(t *testing.T) {
	class := intClass()
	class.AllowGrowth = false
	arr := NewWithCapacity(class, 2)
	require.NoError(t, arr.Add(1))
	require.NoError(t, arr.Add(2))
	require.ErrorIs(t, arr.Add(3), ErrFull)
}

func TestFindReturnsMatchedPositionOrInsertionPoint(t *testing.T) {
	arr := New(intClass())
	for _, v := range []int{2, 4, 6, 8} {
		require.NoError(t, arr.Add(v))
	}

	idx, found, err := arr.Find(6)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 2, idx)

	idx, found, err = arr.Find(5)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, 2, idx) // first slot whose key is greater

	idx, found, err = arr.Find(100)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, arr.Len(), idx)
}

func TestDeleteRemovesAndPreservesOrder(t *testing.T) {
	arr := New(intClass())
	for _, v := range []int{1, 2, 3, 4} {
		require.NoError(t, arr.Add(v))
	}
	ok, err := arr.Delete(2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{1, 3, 4}, arr.Elems())

	ok, err = arr.Delete(99)
	require.NoError(t, err)
	require.False(t, ok)
}

func buildFrom(t *testing.T, vals []int) *Array[int] {
	t.Helper()
	arr := New(intClass())
	for _, v := range vals {
		require.NoError(t, arr.Add(v))
	}
	return arr
}

func TestIntersectVisitsExactlySharedKeys(t *testing.T) {
	left := buildFrom(t, []int{1, 2, 3})
	right := buildFrom(t, []int{2, 4})

	var got []int
	require.NoError(t, Intersect(left, right, func(v int) bool {
		got = append(got, v)
		return true
	}))
	require.Equal(t, []int{2}, got)
}

func TestIntersectStopsEarlyWhenVisitorReturnsFalse(t *testing.T) {
	left := buildFrom(t, []int{1, 2, 3, 4, 5})
	right := buildFrom(t, []int{1, 2, 3, 4, 5})

	var got []int
	require.NoError(t, Intersect(left, right, func(v int) bool {
		got = append(got, v)
		return false
	}))
	require.Len(t, got, 1)
}

func TestIntersectTest(t *testing.T) {
	a := buildFrom(t, []int{1, 3})
	b := buildFrom(t, []int{2, 4})
	ok, err := IntersectTest(a, b)
	require.NoError(t, err)
	require.False(t, ok)

	c := buildFrom(t, []int{1, 2, 3})
	d := buildFrom(t, []int{2, 4})
	ok, err = IntersectTest(c, d)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCompareFailedPropagates(t *testing.T) {
	class := &Class[int]{
		CmpCanFail:   true,
		AllowInserts: true,
		AllowGrowth:  true,
		Compare: func(a, b int) CompareResult {
			if a == -1 || b == -1 {
				return CompareFailed
			}
			switch {
			case a < b:
				return Less
			case a > b:
				return Greater
			default:
				return Equal
			}
		},
	}
	arr := New(class)
	require.NoError(t, arr.Add(1))
	require.NoError(t, arr.Add(2))

	_, _, err := arr.Find(-1)
	require.ErrorIs(t, err, ErrCompareFailed)
}
