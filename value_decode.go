package plccompress

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// DecodeValue reads one Value from dec, dispatching on the CBOR major
// type the same way the teacher's decodeStorable dispatches on
// (*cbor.StreamDecoder).NextType() before deciding which Decode* call to
// make.
func DecodeValue(dec *cbor.StreamDecoder) (*Value, error) {
	t, err := dec.NextType()
	if err != nil {
		return nil, NewMalformedCBORError(fmt.Sprintf("reading value head: %v", err))
	}

	switch t {
	case cbor.UintType:
		n, err := dec.DecodeUint64()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding uint: %v", err))
		}
		return NewUint(n), nil

	case cbor.IntType:
		n, err := dec.DecodeInt64()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding negative int: %v", err))
		}
		return NewNegInt(n), nil

	case cbor.ByteStringType:
		b, err := dec.DecodeBytes()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding byte string: %v", err))
		}
		return NewBytes(b), nil

	case cbor.TextStringType:
		s, err := dec.DecodeString()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding text string: %v", err))
		}
		return NewText(s), nil

	case cbor.BoolType:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding bool: %v", err))
		}
		return NewBool(b), nil

	case cbor.NilType:
		if err := dec.DecodeNil(); err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding null: %v", err))
		}
		return NewNull(), nil

	case cbor.ArrayType:
		n, err := dec.DecodeArrayHead()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding array head: %v", err))
		}
		elems := make([]*Value, n)
		for i := range elems {
			elems[i], err = DecodeValue(dec)
			if err != nil {
				return nil, err
			}
		}
		return NewArray(elems), nil

	case cbor.MapType:
		n, err := dec.DecodeMapHead()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding map head: %v", err))
		}
		entries := make([]MapEntry, n)
		for i := range entries {
			key, err := DecodeValue(dec)
			if err != nil {
				return nil, err
			}
			val, err := DecodeValue(dec)
			if err != nil {
				return nil, err
			}
			entries[i] = MapEntry{Key: key, Val: val}
		}
		return NewMap(entries), nil

	case cbor.TagType:
		num, err := dec.DecodeTagNumber()
		if err != nil {
			return nil, NewMalformedCBORError(fmt.Sprintf("decoding tag number: %v", err))
		}
		content, err := DecodeValue(dec)
		if err != nil {
			return nil, err
		}
		return NewTag(num, content), nil

	default:
		return nil, NewMalformedCBORError(fmt.Sprintf("unsupported CBOR major type %v", t))
	}
}

// DecodeValueFromBytes decodes the first CBOR item in data as a Value.
// Any bytes after that item are not examined.
func DecodeValueFromBytes(data []byte) (*Value, error) {
	dec := NewByteStreamDecoder(data)
	v, err := DecodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}
