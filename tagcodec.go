package plccompress

// CompressValue recursively rewrites every leaf text string in v that
// matches a known shape (sig, CID, did:key, at://) to its tagged
// compressed form, and every known map key to tag(N, null). It is
// applied uniformly regardless of where a string occurs in the tree -
// top-level document, diff update RHS, diff insert/prepend payload,
// nested inside an array or map - per spec.md ss4.2. Compression never
// fails: a string that merely looks like one of the four shapes but does
// not decode cleanly is left unmodified (see tagcodec_sig.go).
func CompressValue(v *Value) *Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindText:
		return compressLeafText(v.Text)

	case KindArray:
		elems := make([]*Value, len(v.Array))
		for i, e := range v.Array {
			elems[i] = CompressValue(e)
		}
		return NewArray(elems)

	case KindMap:
		entries := make([]MapEntry, len(v.Entries))
		for i, e := range v.Entries {
			entries[i] = MapEntry{Key: compressKey(e.Key), Val: CompressValue(e.Val)}
		}
		return NewMap(entries)

	case KindTag:
		// Already tagged (e.g. produced by a previous compression pass,
		// or embedded verbatim by a caller): pass through unchanged
		// rather than re-processing, keeping compression idempotent.
		return v

	default:
		return v
	}
}

// compressLeafText tries each of the four value-tag shape tests in turn.
// The shapes are mutually exclusive by construction (distinct prefixes,
// or a fixed length none of the others share), so order does not matter
// for correctness, but this mirrors the prototype's check order.
func compressLeafText(text string) *Value {
	if tag, ok := compressDIDKey(text); ok {
		return tag
	}
	if tag, ok := compressAtURI(text); ok {
		return tag
	}
	if tag, ok := compressCID(text); ok {
		return tag
	}
	if tag, ok := compressSig(text); ok {
		return tag
	}
	return NewText(text)
}

// compressKey rewrites a map key to tag(N, null) if it is a plain text
// string naming one of the ten known fields; any other key (including
// one that is already a tag) passes through unchanged.
func compressKey(key *Value) *Value {
	if key.Kind != KindText {
		return key
	}
	if tag, ok := keyTagForName(key.Text); ok {
		return NewTag(tag, NewNull())
	}
	return key
}

// DecompressValue reverses CompressValue. It is total over any tree this
// package could have produced, but returns an error if it encounters a
// tag number outside 6-19, or a known tag with a malformed payload -
// signals of a corrupted or non-conforming stream.
func DecompressValue(v *Value) (*Value, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Kind {
	case KindArray:
		elems := make([]*Value, len(v.Array))
		for i, e := range v.Array {
			d, err := DecompressValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = d
		}
		return NewArray(elems), nil

	case KindMap:
		entries := make([]MapEntry, len(v.Entries))
		for i, e := range v.Entries {
			key, err := decompressKey(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := DecompressValue(e.Val)
			if err != nil {
				return nil, err
			}
			entries[i] = MapEntry{Key: key, Val: val}
		}
		return NewMap(entries), nil

	case KindTag:
		return decompressValueTag(v.TagNumber, v.TagContent)

	default:
		return v, nil
	}
}

// decompressValueTag expands a tag encountered at a value position.
func decompressValueTag(tag uint64, content *Value) (*Value, error) {
	switch tag {
	case TagSig:
		return decompressSig(content)
	case TagCID:
		return decompressCID(content)
	case TagDIDKey:
		return decompressDIDKey(content)
	case TagAtURI:
		return decompressAtURI(content)
	default:
		if isKeyTagRange(tag) {
			return nil, NewMalformedCBORError("key tag found at a value position")
		}
		return nil, NewUnknownKeyTagError(tag)
	}
}

// decompressKey reverses compressKey: a key already in string form is
// accepted as-is per spec.md ss9 Open Question 1 ("decoders MUST accept
// both"); a tag(N, null) key is expanded to its known field name.
func decompressKey(key *Value) (*Value, error) {
	if key.Kind != KindTag {
		return key, nil
	}
	name, ok := keyNameForTag(key.TagNumber)
	if !ok {
		if key.TagNumber >= minValueTag && key.TagNumber <= maxValueTag {
			return nil, NewMalformedCBORError("value tag found at a key position")
		}
		return nil, NewUnknownKeyTagError(key.TagNumber)
	}
	return NewText(name), nil
}
