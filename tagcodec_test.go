package plccompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressSigRoundTrip(t *testing.T) {
	raw := make([]byte, sigRawLen)
	for i := range raw {
		raw[i] = byte(i)
	}
	text, err := decompressSig(NewBytes(raw))
	require.NoError(t, err)

	tag, ok := compressSig(text.Text)
	require.True(t, ok)
	require.Equal(t, uint64(TagSig), tag.TagNumber)
	require.True(t, tag.TagContent.Equal(NewBytes(raw)))

	back, err := decompressSig(tag.TagContent)
	require.NoError(t, err)
	require.Equal(t, text.Text, back.Text)
}

func TestCompressSigLeavesNonMatchingTextAlone(t *testing.T) {
	_, ok := compressSig("not a signature")
	require.False(t, ok)

	v := compressLeafText("not a signature")
	require.Equal(t, KindText, v.Kind)
	require.Equal(t, "not a signature", v.Text)
}

func TestCompressCIDRoundTrip(t *testing.T) {
	// A CIDv1 header (version 1, dag-cbor codec 0x71, sha2-256 multihash
	// 0x12, digest length 0x20) followed by a 32-byte digest, so that its
	// base32 form begins with cidPrefix.
	raw := make([]byte, cidRawLen)
	copy(raw, []byte{0x01, 0x71, 0x12, 0x20})
	for i := 4; i < len(raw); i++ {
		raw[i] = byte(i * 3)
	}
	text, err := decompressCID(NewBytes(raw))
	require.NoError(t, err)
	require.Len(t, text.Text, cidShapeLen)
	require.Equal(t, cidPrefix, text.Text[:len(cidPrefix)])

	tag, ok := compressCID(text.Text)
	require.True(t, ok)
	require.Equal(t, uint64(TagCID), tag.TagNumber)
	require.True(t, tag.TagContent.Equal(NewBytes(raw)))
}

func TestCompressDIDKeyRoundTrip(t *testing.T) {
	raw := make([]byte, didKeyRawLen)
	for i := range raw {
		raw[i] = byte(255 - i)
	}
	text, err := decompressDIDKey(NewBytes(raw))
	require.NoError(t, err)
	require.Equal(t, didKeyPrefix, text.Text[:len(didKeyPrefix)])

	tag, ok := compressDIDKey(text.Text)
	require.True(t, ok)
	require.Equal(t, uint64(TagDIDKey), tag.TagNumber)
	require.True(t, tag.TagContent.Equal(NewBytes(raw)))
}

func TestCompressAtURIRoundTrip(t *testing.T) {
	tag, ok := compressAtURI("at://did:plc:abc123/app.bsky.feed.post/xyz")
	require.True(t, ok)
	require.Equal(t, uint64(TagAtURI), tag.TagNumber)
	require.Equal(t, "did:plc:abc123/app.bsky.feed.post/xyz", tag.TagContent.Text)

	back, err := decompressAtURI(tag.TagContent)
	require.NoError(t, err)
	require.Equal(t, "at://did:plc:abc123/app.bsky.feed.post/xyz", back.Text)
}

func TestCompressKeyKnownAndUnknown(t *testing.T) {
	compressed := compressKey(NewText("rotationKeys"))
	require.Equal(t, KindTag, compressed.Kind)
	require.Equal(t, uint64(TagKeyRotationKeys), compressed.TagNumber)

	unchanged := compressKey(NewText("someUnknownField"))
	require.Equal(t, KindText, unchanged.Kind)
	require.Equal(t, "someUnknownField", unchanged.Text)
}

func TestCompressDecompressValueDocument(t *testing.T) {
	raw := make([]byte, sigRawLen)
	for i := range raw {
		raw[i] = byte(i + 1)
	}
	sigText, err := decompressSig(NewBytes(raw))
	require.NoError(t, err)

	doc := NewMap([]MapEntry{
		{Key: NewText("someUnknownField"), Val: NewText("plc_operation")},
		{Key: NewText("rotationKeys"), Val: NewArray([]*Value{NewText("at://did:plc:foo/bar")})},
		{Key: NewText("sig"), Val: sigText},
		{Key: NewText("prev"), Val: NewNull()},
	})

	compressed := CompressValue(doc)

	// "someUnknownField" has no key tag and keeps its literal value;
	// "rotationKeys" and "sig" keys become tag(N, null); their values
	// become tag(6/9,...).
	require.Equal(t, KindText, compressed.Entries[0].Key.Kind)
	require.Equal(t, KindTag, compressed.Entries[1].Key.Kind)
	require.Equal(t, uint64(TagKeyRotationKeys), compressed.Entries[1].Key.TagNumber)
	require.Equal(t, KindTag, compressed.Entries[1].Val.Array[0].Kind)
	require.Equal(t, uint64(TagAtURI), compressed.Entries[1].Val.Array[0].TagNumber)
	require.Equal(t, uint64(TagSig), compressed.Entries[2].Val.TagNumber)

	decompressed, err := DecompressValue(compressed)
	require.NoError(t, err)
	require.True(t, doc.Equal(decompressed))
}

func TestCompressValueIdempotent(t *testing.T) {
	doc := NewArray([]*Value{NewText("at://did:plc:foo/bar")})
	once := CompressValue(doc)
	twice := CompressValue(once)
	require.True(t, once.Equal(twice))
}

func TestDecompressValueUnknownTagErrors(t *testing.T) {
	_, err := DecompressValue(NewTag(999, NewNull()))
	require.Error(t, err)
}

func TestDecompressKeyAcceptsPlainString(t *testing.T) {
	// Open Question 1: decoders MUST accept an unabbreviated key string
	// even where an abbreviation exists.
	key, err := decompressKey(NewText("rotationKeys"))
	require.NoError(t, err)
	require.Equal(t, "rotationKeys", key.Text)
}
