package plccompress

import "encoding/base32"

// cidPrefix and cidShapeLen narrow spec.md's "59 characters beginning
// with 'b'" rule to the exact shape _examples/original_source/compress.py
// actually tests: a CIDv1, dag-cbor codec, sha2-256 multihash, base32
// multibase string always begins "bafyrei" and is 59 characters long.
// See SPEC_FULL.md ss10 for why the narrower rule is the binding one.
const (
	cidPrefix     = "bafyrei"
	cidShapeLen   = 59
	cidRawLen     = 36
	multibaseB32p = 'b'
)

// base32MultibaseEncoding is RFC 4648 base32, lowercase, no padding -
// multibase code 'b'. It is the only multibase this codec ever needs to
// speak, so it is implemented directly with encoding/base32 rather than
// by pulling in a general multibase/multicodec library (see DESIGN.md).
var base32MultibaseEncoding = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

func compressCID(text string) (*Value, bool) {
	if len(text) != cidShapeLen || text[0] != multibaseB32p {
		return nil, false
	}
	if len(text) < len(cidPrefix) || text[:len(cidPrefix)] != cidPrefix {
		return nil, false
	}
	raw, err := base32MultibaseEncoding.DecodeString(text[1:])
	if err != nil || len(raw) != cidRawLen {
		return nil, false
	}
	return NewTag(TagCID, NewBytes(raw)), true
}

func decompressCID(content *Value) (*Value, error) {
	if content == nil || content.Kind != KindBytes || len(content.Bytes) != cidRawLen {
		return nil, NewTagPayloadInvalidError(TagCID, "expected a 36-byte CID")
	}
	return NewText(string(multibaseB32p) + base32MultibaseEncoding.EncodeToString(content.Bytes)), nil
}
