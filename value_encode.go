package plccompress

import "bytes"

// Encode writes v to enc in canonical CBOR, preserving map insertion
// order exactly (map key sorting is never applied to a Value's Entries,
// unlike the package's encOptions.Sort setting which only governs
// encoding of plain Go maps passed directly to cbor.Marshal).
func (v *Value) Encode(enc *Encoder) error {
	switch v.Kind {
	case KindUint:
		if err := enc.CBOR.EncodeUint64(v.Uint); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindNegInt:
		if err := enc.CBOR.EncodeInt64(v.Int); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindBytes:
		if err := enc.CBOR.EncodeBytes(v.Bytes); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindText:
		if err := enc.CBOR.EncodeString(v.Text); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindBool:
		if err := enc.CBOR.EncodeBool(v.Bool); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindNull:
		if err := enc.CBOR.EncodeNil(); err != nil {
			return NewMalformedCBORError(err.Error())
		}

	case KindArray:
		if err := enc.CBOR.EncodeArrayHead(uint64(len(v.Array))); err != nil {
			return NewMalformedCBORError(err.Error())
		}
		for _, e := range v.Array {
			if err := e.Encode(enc); err != nil {
				return err
			}
		}

	case KindMap:
		if err := enc.CBOR.EncodeMapHead(uint64(len(v.Entries))); err != nil {
			return NewMalformedCBORError(err.Error())
		}
		for _, e := range v.Entries {
			if err := e.Key.Encode(enc); err != nil {
				return err
			}
			if err := e.Val.Encode(enc); err != nil {
				return err
			}
		}

	case KindTag:
		if err := enc.CBOR.EncodeTagHead(v.TagNumber); err != nil {
			return NewMalformedCBORError(err.Error())
		}
		if err := v.TagContent.Encode(enc); err != nil {
			return err
		}

	default:
		return NewMalformedCBORError("unknown value kind")
	}
	return nil
}

// EncodeToBytes encodes v as a standalone CBOR item.
func EncodeToBytes(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := v.Encode(enc); err != nil {
		return nil, err
	}
	if err := enc.CBOR.Flush(); err != nil {
		return nil, NewMalformedCBORError(err.Error())
	}
	return buf.Bytes(), nil
}
