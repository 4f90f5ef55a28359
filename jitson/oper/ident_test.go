package oper

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sxegroup/jitson/jitson"
)

func TestIdentRegistryHookResolvesRegisteredNames(t *testing.T) {
	reg := NewIdentRegistry()
	reg.Register("online", func(st *jitson.Stack) jitson.Ref { return st.AddBool(true) })

	v, err := jitson.ParseWithOptions([]byte(`online`), jitson.Options{
		Flags:     jitson.AllowIdents,
		IdentHook: reg.Hook(),
	})
	require.NoError(t, err)
	require.True(t, v.GetBool(v.Root()))

	_, err = jitson.ParseWithOptions([]byte(`offline`), jitson.Options{
		Flags:     jitson.AllowIdents,
		IdentHook: reg.Hook(),
	})
	require.Error(t, err)
}

func TestDefaultIdentsResolvesUnset(t *testing.T) {
	v, err := jitson.ParseWithOptions([]byte(`unset`), jitson.Options{
		Flags:     jitson.AllowIdents,
		IdentHook: DefaultIdents.Hook(),
	})
	require.NoError(t, err)
	require.Equal(t, jitson.TypeNull, v.ResolvedType(v.Root()))
}
