package plccompress

// EncodeStream builds a compressed stream per spec.md ss4.4: first is
// compressed with TagCodec, and each subsequent diff has TagCodec
// applied to every embedded value. Each diff is addressed against the
// uncompressed document it follows, so EncodeStream rebuilds that
// document (via applyPlain) as it goes, the same way a decoder rebuilds
// the chain on the way back in. len(diffs) need not equal any particular
// count; the caller is responsible for having produced exactly one diff
// per document after the first.
func EncodeStream(first *Value, diffs []*EditScript) ([]byte, error) {
	elems := make([]*Value, 0, len(diffs)+1)
	elems = append(elems, CompressValue(first))

	prev := first
	for _, d := range diffs {
		table := BuildIndex(prev)

		compressed, err := compressEditScript(table, d)
		if err != nil {
			return nil, err
		}
		elems = append(elems, BuildEditScriptValue(compressed))

		next, err := applyPlain(prev, d)
		if err != nil {
			return nil, err
		}
		prev = next
	}

	return EncodeToBytes(NewArray(elems))
}

// DecodeStream parses a compressed stream and returns every document in
// the chain, decoded strictly in order (spec.md ss1, "the chain is
// decoded strictly in order"). An error decoding document N is wrapped
// in a ChainDecodeError naming N.
func DecodeStream(data []byte) ([]*Value, error) {
	outer, err := DecodeValueFromBytes(data)
	if err != nil {
		return nil, NewChainDecodeError(0, err)
	}
	if outer.Kind != KindArray {
		return nil, NewChainDecodeError(0, NewMalformedCBORError("outer stream must be an array"))
	}
	if len(outer.Array) == 0 {
		return nil, NewChainDecodeError(0, NewMalformedCBORError("outer stream must not be empty"))
	}

	docs := make([]*Value, len(outer.Array))

	prev, err := DecompressValue(outer.Array[0])
	if err != nil {
		return nil, NewChainDecodeError(0, err)
	}
	docs[0] = prev

	for i := 1; i < len(outer.Array); i++ {
		script, err := ParseEditScript(outer.Array[i])
		if err != nil {
			return nil, NewChainDecodeError(i, err)
		}
		next, err := Apply(prev, script)
		if err != nil {
			return nil, NewChainDecodeError(i, err)
		}
		docs[i] = next
		prev = next
	}

	return docs, nil
}
