package plccompress

import "strings"

const atURIPrefix = "at://"

func compressAtURI(text string) (*Value, bool) {
	if !strings.HasPrefix(text, atURIPrefix) {
		return nil, false
	}
	return NewTag(TagAtURI, NewText(text[len(atURIPrefix):])), true
}

func decompressAtURI(content *Value) (*Value, error) {
	if content == nil || content.Kind != KindText {
		return nil, NewTagPayloadInvalidError(TagAtURI, "expected a text string suffix")
	}
	return NewText(atURIPrefix + content.Text), nil
}
