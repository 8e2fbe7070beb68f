package plccompress

import "encoding/base64"

// sigShapeLen is the length of a base64url-encoded (no padding) 64-byte
// signature: 64 bytes -> ceil(64*4/3) = 86 characters.
const sigShapeLen = 86

const sigRawLen = 64

// compressSig rewrites a signature string to tag(6, 64 raw bytes) if text
// is exactly 86 characters and decodes (without padding) to exactly 64
// bytes. Per _examples/original_source/compress.py, a string that merely
// looks like a signature but fails to decode or decodes to the wrong
// length is left unmodified rather than rejected: compression never fails.
func compressSig(text string) (*Value, bool) {
	if len(text) != sigShapeLen {
		return nil, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil || len(raw) != sigRawLen {
		return nil, false
	}
	return NewTag(TagSig, NewBytes(raw)), true
}

// decompressSig reverses compressSig. content must be exactly 64 bytes.
func decompressSig(content *Value) (*Value, error) {
	if content == nil || content.Kind != KindBytes || len(content.Bytes) != sigRawLen {
		return nil, NewTagPayloadInvalidError(TagSig, "expected a 64-byte string of raw bytes")
	}
	return NewText(base64.RawURLEncoding.EncodeToString(content.Bytes)), nil
}
