package plccompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueEqual(t *testing.T) {
	a := NewMap([]MapEntry{
		{Key: NewText("a"), Val: NewUint(1)},
		{Key: NewText("b"), Val: NewUint(2)},
	})
	b := NewMap([]MapEntry{
		{Key: NewText("a"), Val: NewUint(1)},
		{Key: NewText("b"), Val: NewUint(2)},
	})
	require.True(t, a.Equal(b))

	reordered := NewMap([]MapEntry{
		{Key: NewText("b"), Val: NewUint(2)},
		{Key: NewText("a"), Val: NewUint(1)},
	})
	require.False(t, a.Equal(reordered), "map equality must be order-sensitive")
}

func TestValueCloneIsIndependent(t *testing.T) {
	original := NewArray([]*Value{NewText("x"), NewUint(1)})
	clone := original.Clone()
	require.True(t, original.Equal(clone))

	clone.Array[0].Text = "mutated"
	require.Equal(t, "x", original.Array[0].Text, "mutating a clone must not affect the original")
}

func TestValueEncodeDecodeRoundTrip(t *testing.T) {
	doc := NewMap([]MapEntry{
		{Key: NewText("type"), Val: NewText("plc_operation")},
		{Key: NewText("rotationKeys"), Val: NewArray([]*Value{NewText("did:key:zQ3s")})},
		{Key: NewText("prev"), Val: NewNull()},
		{Key: NewText("count"), Val: NewNegInt(-5)},
	})

	data, err := EncodeToBytes(doc)
	require.NoError(t, err)

	decoded, err := DecodeValueFromBytes(data)
	require.NoError(t, err)
	require.True(t, doc.Equal(decoded))
}
