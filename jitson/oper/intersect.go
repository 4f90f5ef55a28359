package oper

import (
	"github.com/sxegroup/jitson/jitson"
	"github.com/sxegroup/jitson/sortedarray"
)

// intersectTest reports whether left and right (both sorted arrays)
// share at least one element, via sortedarray's median-split
// algorithm, stopping at the first match.
func intersectTest(v *jitson.Value, left, right jitson.Ref) (bool, error) {
	lArr, rArr, err := bothSorted(v, left, right)
	if err != nil {
		return false, err
	}
	return sortedarray.IntersectTest(lArr, rArr)
}

// intersectBuild constructs, onto dst, a new sorted array holding the
// elements shared by left and right, cloning each matched element's
// full subtree out of v.
func intersectBuild(dst *jitson.Stack, v *jitson.Value, left, right jitson.Ref) (jitson.Ref, error) {
	lArr, rArr, err := bothSorted(v, left, right)
	if err != nil {
		return jitson.NoRef, err
	}
	root, _ := dst.OpenArray(true)
	err = sortedarray.Intersect(lArr, rArr, func(e jitson.Ref) bool {
		dst.CloneFrom(v, e)
		return true
	})
	if err != nil {
		return jitson.NoRef, err
	}
	return dst.CloseArray(root), nil
}

func bothSorted(v *jitson.Value, left, right jitson.Ref) (*sortedarray.Array[jitson.Ref], *sortedarray.Array[jitson.Ref], error) {
	if v.ResolvedType(left) != jitson.TypeArray || v.ResolvedType(right) != jitson.TypeArray {
		return nil, nil, jitson.ErrNoOverride
	}
	if !v.IsSorted(left) || !v.IsSorted(right) {
		return nil, nil, jitson.ErrNoOverride
	}
	class := sortClassFor(v)
	lElems := collectElements(v, left, v.Len(left))
	rElems := collectElements(v, right, v.Len(right))
	return sortedarray.NewFromSorted(class, lElems), sortedarray.NewFromSorted(class, rElems), nil
}
