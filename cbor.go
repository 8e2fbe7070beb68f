package plccompress

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encOptions and decOptions configure the underlying CBOR codec.
// TagsAllowed is required: this package emits tag numbers 6-19, which
// DAG-CBOR forbids (only tag 42 is legal there) but plain CBOR does not.
var (
	encOptions = cbor.EncOptions{
		IndefLength: cbor.IndefLengthForbidden,
		Sort:        cbor.SortNone,
		TagsMd:      cbor.TagsAllowed,
	}

	decOptions = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsAllowed,
	}

	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	if encMode, err = encOptions.EncMode(); err != nil {
		panic(err)
	}
	if decMode, err = decOptions.DecMode(); err != nil {
		panic(err)
	}
}

// Encoder writes Values to an io.Writer using the package's deterministic
// CBOR encode mode. Value.Encode writes everything, tag headers
// included, through CBOR; nothing in this package uses Scratch.
type Encoder struct {
	io.Writer
	CBOR    *cbor.StreamEncoder
	Scratch [16]byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		Writer: w,
		CBOR:   encMode.NewStreamEncoder(w),
	}
}

// NewByteStreamDecoder returns a decoder over data using the package's
// decode mode, for callers that want to drive DecodeValue directly.
func NewByteStreamDecoder(data []byte) *cbor.StreamDecoder {
	return decMode.NewByteStreamDecoder(data)
}
