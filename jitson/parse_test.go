package jitson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	cases := []struct {
		text string
		json string
	}{
		{"null", "null"},
		{"true", "true"},
		{"false", "false"},
		{"42", "42"},
		{"-3.5", "-3.5"},
		{`"hello"`, `"hello"`},
		{`"quote: \""`, `"quote: \""`},
	}
	for _, tc := range cases {
		v, err := Parse([]byte(tc.text))
		require.NoError(t, err, tc.text)
		require.Equal(t, tc.json, v.ToJSON(v.Root()))
	}
}

func TestParseArrayRoundTrip(t *testing.T) {
	v, err := Parse([]byte(`[1, 2, 3, "four"]`))
	require.NoError(t, err)
	require.Equal(t, 4, v.Len(v.Root()))
	require.Equal(t, `[1,2,3,"four"]`, v.ToJSON(v.Root()))
}

func TestParseUniformArrayFlags(t *testing.T) {
	v, err := Parse([]byte(`[1, 2, 3]`))
	require.NoError(t, err)
	root := v.Root()
	require.True(t, v.cell(root).FlagBits().Has(FlagUnif))
	require.True(t, v.cell(root).FlagBits().Has(FlagHomo))
}

func TestParseObjectRoundTrip(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": [true, false], "c": {"d": null}}`))
	require.NoError(t, err)
	root := v.Root()
	require.Equal(t, 3, v.Len(root))

	ref, ok := v.GetMember(root, "b")
	require.True(t, ok)
	require.Equal(t, TypeArray, v.ResolvedType(ref))
	require.Equal(t, 2, v.Len(ref))

	ref, ok = v.GetMember(root, "c")
	require.True(t, ok)
	inner, ok := v.GetMember(ref, "d")
	require.True(t, ok)
	require.Equal(t, TypeNull, v.ResolvedType(inner))
}

func TestParseLongStringSpillsIntoContinuationCells(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "x"
	}
	v, err := Parse([]byte(`"` + long + `"`))
	require.NoError(t, err)
	require.Equal(t, long, v.GetString(v.Root()))
}

func TestParseRejectsUnbalancedInput(t *testing.T) {
	_, err := Parse([]byte(`[1, 2`))
	require.Error(t, err)

	_, err = Parse([]byte(`{"a": 1`))
	require.Error(t, err)

	_, err = Parse([]byte(`1 2`))
	require.Error(t, err)
}

func TestParseRejectsTrailingBareDecimalPoint(t *testing.T) {
	_, err := Parse([]byte(`1.`))
	require.Error(t, err)

	v, err := Parse([]byte(`1.5`))
	require.NoError(t, err)
	require.Equal(t, 1.5, v.GetNumber(v.Root()))
}

func TestParseHexNumber(t *testing.T) {
	v, err := ParseWithOptions([]byte(`0xFF`), Options{Flags: AllowHex})
	require.NoError(t, err)
	require.True(t, v.IsUint(v.Root()))
	require.Equal(t, uint64(255), v.GetUint(v.Root()))
}

func TestParseUnicodeEscape(t *testing.T) {
	v, err := Parse([]byte("\"\x5cu00e9\""))
	require.NoError(t, err)
	require.Equal(t, "é", v.GetString(v.Root()))
}

func TestParseSurrogatePairEscape(t *testing.T) {
	v, err := Parse([]byte("\"\\uD83D\\uDE00\""))
	require.NoError(t, err)
	require.Equal(t, "😀", v.GetString(v.Root()))
}

func TestParseIdentRequiresAllowIdents(t *testing.T) {
	_, err := Parse([]byte(`pi`))
	require.Error(t, err)

	v, err := ParseWithOptions([]byte(`pi`), Options{Flags: AllowIdents, Consts: map[string]float64{"pi": 3.14}})
	require.NoError(t, err)
	require.Equal(t, 3.14, v.GetNumber(v.Root()))
}

func TestParseAllowIdentsConsultsHook(t *testing.T) {
	_, err := ParseWithOptions([]byte(`unset`), Options{Flags: AllowIdents})
	require.Error(t, err)

	hook := func(name string, st *Stack) bool {
		if name != "unset" {
			return false
		}
		st.AddNull()
		return true
	}
	v, err := ParseWithOptions([]byte(`unset`), Options{Flags: AllowIdents, IdentHook: hook})
	require.NoError(t, err)
	require.Equal(t, TypeNull, v.ResolvedType(v.Root()))

	_, err = ParseWithOptions([]byte(`nonsense`), Options{Flags: AllowIdents, IdentHook: hook})
	require.Error(t, err)
}

func TestParseIdentHookIgnoredWithoutAllowIdents(t *testing.T) {
	hook := func(name string, st *Stack) bool {
		st.AddNull()
		return true
	}
	_, err := ParseWithOptions([]byte(`unset`), Options{IdentHook: hook})
	require.Error(t, err)
}

func TestParseOptimizeDowngradesUnsortedArray(t *testing.T) {
	v, err := ParseWithOptions([]byte(`[3, 1, 2]`), Options{Flags: Optimize})
	require.NoError(t, err)
	require.False(t, v.cell(v.Root()).FlagBits().Has(FlagOrd))

	v, err = ParseWithOptions([]byte(`[1, 2, 3]`), Options{Flags: Optimize})
	require.NoError(t, err)
	require.True(t, v.cell(v.Root()).FlagBits().Has(FlagOrd))
}
