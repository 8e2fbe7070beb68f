package plccompress

import (
	"strings"

	"github.com/mr-tron/base58"
)

const (
	didKeyPrefix = "did:key:z"
	didKeyRawLen = 35 // 2-byte multicodec varint + 33-byte compressed pubkey
)

func compressDIDKey(text string) (*Value, bool) {
	if !strings.HasPrefix(text, didKeyPrefix) {
		return nil, false
	}
	raw, err := base58.Decode(text[len(didKeyPrefix):])
	if err != nil || len(raw) != didKeyRawLen {
		return nil, false
	}
	return NewTag(TagDIDKey, NewBytes(raw)), true
}

func decompressDIDKey(content *Value) (*Value, error) {
	if content == nil || content.Kind != KindBytes || len(content.Bytes) != didKeyRawLen {
		return nil, NewTagPayloadInvalidError(TagDIDKey, "expected a 35-byte multicodec+pubkey payload")
	}
	return NewText(didKeyPrefix + base58.Encode(content.Bytes)), nil
}
