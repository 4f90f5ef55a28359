package oper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sxegroup/jitson/jitson"
)

func mustParse(t *testing.T, text string) *jitson.Value {
	t.Helper()
	v, err := jitson.ParseWithOptions([]byte(text), jitson.Options{Flags: jitson.Optimize})
	require.NoError(t, err)
	return v
}

func TestInArraySorted(t *testing.T) {
	v := mustParse(t, `[1, 2, 3, 5, 8]`)
	needle, ok := v.GetElement(v.Root(), 2)
	require.True(t, ok)
	out := jitson.NewStack(nil)
	ref, err := In(out, v, needle, v.Root())
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.True(t, result.GetBool(ref))

	st := jitson.NewStack(nil)
	st.AddNumber(99)
	sealed, err := st.Seal()
	require.NoError(t, err)
	merged := jitson.NewStack(nil)
	container := merged.CloneFrom(v, v.Root())
	absent := merged.CloneFrom(sealed, sealed.Root())
	mv, err := merged.Seal()
	require.NoError(t, err)
	out2 := jitson.NewStack(nil)
	ref2, err := In(out2, mv, absent, container)
	require.NoError(t, err)
	result2, err := out2.Seal()
	require.NoError(t, err)
	require.Equal(t, jitson.TypeNull, result2.ResolvedType(ref2))
}

func TestInObject(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": 2}`)
	st := jitson.NewStack(nil)
	st.AddString("a")
	needleDoc, err := st.Seal()
	require.NoError(t, err)

	merged := jitson.NewStack(nil)
	needle := merged.CloneFrom(needleDoc, needleDoc.Root())
	container := merged.CloneFrom(v, v.Root())
	mv, err := merged.Seal()
	require.NoError(t, err)

	out := jitson.NewStack(nil)
	ref, err := In(out, mv, needle, container)
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.Equal(t, 1.0, result.GetNumber(ref))
}

func TestInObjectAbsentMemberReturnsNull(t *testing.T) {
	v := mustParse(t, `{"a": 1}`)
	st := jitson.NewStack(nil)
	st.AddString("missing")
	needleDoc, err := st.Seal()
	require.NoError(t, err)

	merged := jitson.NewStack(nil)
	needle := merged.CloneFrom(needleDoc, needleDoc.Root())
	container := merged.CloneFrom(v, v.Root())
	mv, err := merged.Seal()
	require.NoError(t, err)

	out := jitson.NewStack(nil)
	ref, err := In(out, mv, needle, container)
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.Equal(t, jitson.TypeNull, result.ResolvedType(ref))
}

func TestInArrayTransitiveContainmentReturnsInnerArray(t *testing.T) {
	v := mustParse(t, `[0,[1,2,3],[4,5,6]]`)

	zero, ok := v.GetElement(v.Root(), 0)
	require.True(t, ok)
	out := jitson.NewStack(nil)
	ref, err := In(out, v, zero, v.Root())
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.True(t, result.GetBool(ref))

	inner, ok := v.GetElement(v.Root(), 1)
	require.True(t, ok)
	one, ok := v.GetElement(inner, 0)
	require.True(t, ok)
	out2 := jitson.NewStack(nil)
	ref2, err := In(out2, v, one, v.Root())
	require.NoError(t, err)
	result2, err := out2.Seal()
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", result2.ToJSON(ref2))
}

func TestInStringSubstring(t *testing.T) {
	st := jitson.NewStack(nil)
	container := st.AddString("hello world")
	needle := st.AddString("lo wo")
	v, err := st.Seal()
	require.NoError(t, err)

	out := jitson.NewStack(nil)
	ref, err := In(out, v, needle, container)
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.True(t, result.GetBool(ref))

	st2 := jitson.NewStack(nil)
	container2 := st2.AddString("hello world")
	needle2 := st2.AddString("absent")
	v2, err := st2.Seal()
	require.NoError(t, err)
	out2 := jitson.NewStack(nil)
	ref2, err := In(out2, v2, needle2, container2)
	require.NoError(t, err)
	result2, err := out2.Seal()
	require.NoError(t, err)
	require.Equal(t, jitson.TypeNull, result2.ResolvedType(ref2))
}

func TestIntersectAndIntersectTest(t *testing.T) {
	a := mustParse(t, `[1, 2, 3, 4]`)
	b := mustParse(t, `[2, 4, 6]`)

	merge := jitson.NewStack(nil)
	ra := merge.CloneFrom(a, a.Root())
	rb := merge.CloneFrom(b, b.Root())
	merged, err := merge.Seal()
	require.NoError(t, err)

	ok, err := IntersectTest(merged, ra, rb)
	require.NoError(t, err)
	require.True(t, ok)

	out := jitson.NewStack(nil)
	resultRef, err := Intersect(out, merged, ra, rb)
	require.NoError(t, err)
	result, err := out.Seal()
	require.NoError(t, err)
	require.Equal(t, "[2,4]", result.ToJSON(resultRef))
}

func TestIntersectTestNoOverlap(t *testing.T) {
	a := mustParse(t, `[1, 3, 5]`)
	b := mustParse(t, `[2, 4, 6]`)
	merge := jitson.NewStack(nil)
	ra := merge.CloneFrom(a, a.Root())
	rb := merge.CloneFrom(b, b.Root())
	merged, err := merge.Seal()
	require.NoError(t, err)

	ok, err := IntersectTest(merged, ra, rb)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCompareOperators(t *testing.T) {
	st := jitson.NewStack(nil)
	a := st.AddNumber(1)
	b := st.AddNumber(2)
	v, err := st.Seal()
	require.NoError(t, err)

	require.True(t, NE(v, a, b))
	require.False(t, EQ(v, a, b))
	lt, err := LT(v, a, b)
	require.NoError(t, err)
	require.True(t, lt)
	gt, err := GT(v, b, a)
	require.NoError(t, err)
	require.True(t, gt)
}

func TestToFloat64Coercion(t *testing.T) {
	st := jitson.NewStack(nil)
	s := st.AddString("3.5")
	bl := st.AddBool(true)
	v, err := st.Seal()
	require.NoError(t, err)

	f, err := ToFloat64(v, s)
	require.NoError(t, err)
	require.Equal(t, 3.5, f)

	f, err = ToFloat64(v, bl)
	require.NoError(t, err)
	require.Equal(t, 1.0, f)
}
