package oper

import "github.com/sxegroup/jitson/jitson"

// EQ and NE are total: every pair of values is either equal or not.
func EQ(v *jitson.Value, a, b jitson.Ref) bool { return v.Eq(a, b) }
func NE(v *jitson.Value, a, b jitson.Ref) bool { return !v.Eq(a, b) }

// LT, GT, LE and GE are partial: they fail with jitson.ErrNoOverride
// when the two values' resolved types don't share an ordering (the
// Cmp contract's CompareFailed result).
func LT(v *jitson.Value, a, b jitson.Ref) (bool, error) { return ordered(v, a, b, jitson.Less) }
func GT(v *jitson.Value, a, b jitson.Ref) (bool, error) { return ordered(v, a, b, jitson.Greater) }

func LE(v *jitson.Value, a, b jitson.Ref) (bool, error) {
	r := v.Cmp(a, b)
	if r == jitson.CompareFailed {
		return false, jitson.ErrNoOverride
	}
	return r != jitson.Greater, nil
}

func GE(v *jitson.Value, a, b jitson.Ref) (bool, error) {
	r := v.Cmp(a, b)
	if r == jitson.CompareFailed {
		return false, jitson.ErrNoOverride
	}
	return r != jitson.Less, nil
}

func ordered(v *jitson.Value, a, b jitson.Ref, want jitson.CompareResult) (bool, error) {
	r := v.Cmp(a, b)
	if r == jitson.CompareFailed {
		return false, jitson.ErrNoOverride
	}
	return r == want, nil
}
