package plccompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBuildIndexMapExample walks {a:1,b:2} by hand against the worked
// example: root map is 0, then per entry a marker, key, value - giving
// indices 0 through 6 for a two-entry map.
func TestBuildIndexMapExample(t *testing.T) {
	doc := NewMap([]MapEntry{
		{Key: NewText("a"), Val: NewUint(1)},
		{Key: NewText("b"), Val: NewUint(2)},
	})

	table := BuildIndex(doc)
	require.Equal(t, uint64(6), table.Max())

	root, err := table.Lookup(0)
	require.NoError(t, err)
	require.Equal(t, RoleRoot, root.Role)
	require.True(t, root.Node.Equal(doc))

	marker0, err := table.Lookup(1)
	require.NoError(t, err)
	require.Equal(t, RoleMapEntryMarker, marker0.Role)
	require.Equal(t, 0, marker0.Pos)

	keyA, err := table.Lookup(2)
	require.NoError(t, err)
	require.Equal(t, RoleMapKey, keyA.Role)
	require.Equal(t, "a", keyA.Node.Text)

	valA, err := table.Lookup(3)
	require.NoError(t, err)
	require.Equal(t, RoleMapValue, valA.Role)
	require.Equal(t, uint64(1), valA.Node.Uint)

	marker1, err := table.Lookup(4)
	require.NoError(t, err)
	require.Equal(t, RoleMapEntryMarker, marker1.Role)
	require.Equal(t, 1, marker1.Pos)

	keyB, err := table.Lookup(5)
	require.NoError(t, err)
	require.Equal(t, "b", keyB.Node.Text)

	valB, err := table.Lookup(6)
	require.NoError(t, err)
	require.Equal(t, uint64(2), valB.Node.Uint)
}

func TestBuildIndexArrayElements(t *testing.T) {
	doc := NewArray([]*Value{NewText("x"), NewText("y"), NewText("z")})
	table := BuildIndex(doc)
	require.Equal(t, uint64(3), table.Max())

	for i, want := range []string{"x", "y", "z"} {
		entry, err := table.Lookup(uint64(i + 1))
		require.NoError(t, err)
		require.Equal(t, RoleArrayElement, entry.Role)
		require.Equal(t, i, entry.Pos)
		require.Equal(t, want, entry.Node.Text)
	}
}

func TestBuildIndexDeterministic(t *testing.T) {
	build := func() *Value {
		return NewMap([]MapEntry{
			{Key: NewText("rotationKeys"), Val: NewArray([]*Value{NewText("k1"), NewText("k2")})},
			{Key: NewText("prev"), Val: NewNull()},
		})
	}
	t1 := BuildIndex(build())
	t2 := BuildIndex(build())
	require.Equal(t, t1.Max(), t2.Max())
	for i := uint64(0); i <= t1.Max(); i++ {
		e1, err1 := t1.Lookup(i)
		e2, err2 := t2.Lookup(i)
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, e1.Role, e2.Role)
		require.Equal(t, e1.Pos, e2.Pos)
	}
}

func TestIndexTableLookupOutOfRange(t *testing.T) {
	table := BuildIndex(NewUint(1))
	_, err := table.Lookup(5)
	require.Error(t, err)
	var plcErr Error
	require.ErrorAs(t, err, &plcErr)
	require.True(t, plcErr.IsFatal())
}
