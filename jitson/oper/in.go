package oper

import (
	"strings"

	"github.com/sxegroup/jitson/jitson"
	"github.com/sxegroup/jitson/sortedarray"
)

// inArray implements IN against an array container: a binary search
// when the array is flagged sorted and needle has its elements' type,
// returning true or null for a direct hit/miss; a linear Eq scan otherwise, which
// on a miss falls through to a transitive search into nested array/
// object elements, returning the containing element (not the deeply
// nested needle itself) on a nested hit.
func inArray(dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error) {
	n := v.Len(container)
	if first, ok := v.GetElement(container, 0); ok && v.IsSorted(container) && v.ResolvedType(first) == v.ResolvedType(needle) {
		elems := collectElements(v, container, n)
		sorted := sortedarray.NewFromSorted(sortClassFor(v), elems)
		_, found, err := sorted.Find(needle)
		if err != nil {
			return jitson.NoRef, err
		}
		if found {
			return dst.AddBool(true), nil
		}
		return dst.AddNull(), nil
	}

	for i := 0; i < n; i++ {
		e, ok := v.GetElement(container, i)
		if !ok {
			break
		}
		if v.Eq(needle, e) {
			return dst.AddBool(true), nil
		}
	}
	for i := 0; i < n; i++ {
		e, ok := v.GetElement(container, i)
		if !ok {
			break
		}
		if containsValue(v, needle, e) {
			return dst.CloneFrom(v, e), nil
		}
	}
	return dst.AddNull(), nil
}

// inObject implements IN against an object container: needle must be a
// string naming one of its members; the member's value is returned (not
// a bare true), or null when absent.
func inObject(dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error) {
	if v.ResolvedType(needle) != jitson.TypeString {
		return jitson.NoRef, jitson.ErrNoOverride
	}
	member, ok := v.GetMember(container, v.GetString(needle))
	if !ok {
		return dst.AddNull(), nil
	}
	return dst.CloneFrom(v, member), nil
}

// inString implements IN against a string container as a substring
// search.
func inString(dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error) {
	if v.ResolvedType(needle) != jitson.TypeString {
		return jitson.NoRef, jitson.ErrNoOverride
	}
	if strings.Contains(v.GetString(container), v.GetString(needle)) {
		return dst.AddBool(true), nil
	}
	return dst.AddNull(), nil
}

// containsValue recursively tests whether needle appears at node itself
// or anywhere within node's array elements / object member values, the
// deep-membership test inArray's linear path uses once a direct
// top-level match has failed.
func containsValue(v *jitson.Value, needle, node jitson.Ref) bool {
	if v.Eq(needle, node) {
		return true
	}
	switch v.ResolvedType(node) {
	case jitson.TypeArray:
		n := v.Len(node)
		for i := 0; i < n; i++ {
			e, ok := v.GetElement(node, i)
			if !ok {
				break
			}
			if containsValue(v, needle, e) {
				return true
			}
		}
	case jitson.TypeObject:
		for _, mv := range v.MemberValues(node) {
			if containsValue(v, needle, mv) {
				return true
			}
		}
	}
	return false
}
