package oper

import (
	"strconv"

	"github.com/sxegroup/jitson/jitson"
)

// ToFloat64 coerces the value at ref to a float64: numbers pass
// through, bool becomes 0/1, strings are parsed, anything else fails
// with jitson.ErrNoOverride.
func ToFloat64(v *jitson.Value, ref jitson.Ref) (float64, error) {
	switch v.ResolvedType(ref) {
	case jitson.TypeNumber:
		return v.GetNumber(ref), nil
	case jitson.TypeBool:
		if v.GetBool(ref) {
			return 1, nil
		}
		return 0, nil
	case jitson.TypeString:
		f, err := strconv.ParseFloat(v.GetString(ref), 64)
		if err != nil {
			return 0, jitson.ErrNoOverride
		}
		return f, nil
	default:
		return 0, jitson.ErrNoOverride
	}
}

// ToBool coerces the value at ref to a boolean using the same
// truthiness rule as Value.Test.
func ToBool(v *jitson.Value, ref jitson.Ref) bool { return v.Test(ref) }

// ToString renders the value at ref as a string: string values return
// their decoded bytes verbatim, everything else renders as JSON.
func ToString(v *jitson.Value, ref jitson.Ref) string {
	if v.ResolvedType(ref) == jitson.TypeString {
		return v.GetString(ref)
	}
	return v.ToJSON(ref)
}
