package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sxegroup/jitson/jitson"
)

func TestNavigateWalksMembersAndIndices(t *testing.T) {
	v, err := jitson.Parse([]byte(`{"a": [10, 20, {"b": "c"}]}`))
	require.NoError(t, err)

	ref, ok := navigate(v, "a.2.b")
	require.True(t, ok)
	require.Equal(t, "c", v.GetString(ref))
}

func TestNavigateEmptyPathReturnsRoot(t *testing.T) {
	v, err := jitson.Parse([]byte(`42`))
	require.NoError(t, err)
	ref, ok := navigate(v, "")
	require.True(t, ok)
	require.Equal(t, v.Root(), ref)
}

func TestNavigateMissingSegmentFails(t *testing.T) {
	v, err := jitson.Parse([]byte(`{"a": 1}`))
	require.NoError(t, err)
	_, ok := navigate(v, "missing")
	require.False(t, ok)
}
