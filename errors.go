package plccompress

import "fmt"

// Error is implemented by every error this package returns.
type Error interface {
	// IsFatal reports whether the error leaves the decode of the current
	// document (or the whole chain) in a state too damaged to continue.
	IsFatal() bool
	error
}

// MalformedCBORError is returned when the bytes being decoded are not a
// valid CBOR item of the shape the caller expected (outer array, map,
// [index,value] pair, and so on).
type MalformedCBORError struct {
	reason string
}

func NewMalformedCBORError(reason string) *MalformedCBORError {
	return &MalformedCBORError{reason: reason}
}

func (e *MalformedCBORError) Error() string {
	return fmt.Sprintf("malformed CBOR: %s", e.reason)
}

func (e *MalformedCBORError) IsFatal() bool { return true }

// IndexOutOfRangeError is returned when a diff references an index that
// does not exist in the previous document.
type IndexOutOfRangeError struct {
	index uint64
	max   uint64
}

func NewIndexOutOfRangeError(index, max uint64) *IndexOutOfRangeError {
	return &IndexOutOfRangeError{index: index, max: max}
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range (max %d)", e.index, e.max)
}

func (e *IndexOutOfRangeError) IsFatal() bool { return true }

// WrongContainerKindError is returned when an edit's kind is incompatible
// with the node its index addresses (delete of a map key or other
// non-element node, prepend against a map entry, insert into a scalar,
// update of a map entry marker). An array insert accepts any payload as
// the new element, so its payload shape is never rejected.
type WrongContainerKindError struct {
	index uint64
	op    string
	want  string
	got   string
}

func NewWrongContainerKindError(index uint64, op, want, got string) *WrongContainerKindError {
	return &WrongContainerKindError{index: index, op: op, want: want, got: got}
}

func (e *WrongContainerKindError) Error() string {
	return fmt.Sprintf("%s at index %d requires %s, found %s", e.op, e.index, e.want, e.got)
}

func (e *WrongContainerKindError) IsFatal() bool { return true }

// MalformedEditError is returned when an edit script entry cannot be
// interpreted: a missing update payload, a map insert whose payload is
// not a [key, value] pair, an unknown edit script key, and so on.
type MalformedEditError struct {
	reason string
}

func NewMalformedEditError(reason string) *MalformedEditError {
	return &MalformedEditError{reason: reason}
}

func (e *MalformedEditError) Error() string {
	return fmt.Sprintf("malformed edit: %s", e.reason)
}

func (e *MalformedEditError) IsFatal() bool { return true }

// TagPayloadInvalidError is returned when a semantic tag (6-9) carries a
// payload of the wrong length or shape.
type TagPayloadInvalidError struct {
	tag    uint64
	reason string
}

func NewTagPayloadInvalidError(tag uint64, reason string) *TagPayloadInvalidError {
	return &TagPayloadInvalidError{tag: tag, reason: reason}
}

func (e *TagPayloadInvalidError) Error() string {
	return fmt.Sprintf("invalid payload for tag %d: %s", e.tag, e.reason)
}

func (e *TagPayloadInvalidError) IsFatal() bool { return true }

// UnknownKeyTagError is returned when a tag outside this codec's tag
// numbers is found: at a map key position, any tag other than the ten
// known key tags (10-19) and the value tags (6-9); at a value position,
// any tag outside 6-19.
type UnknownKeyTagError struct {
	tag uint64
}

func NewUnknownKeyTagError(tag uint64) *UnknownKeyTagError {
	return &UnknownKeyTagError{tag: tag}
}

func (e *UnknownKeyTagError) Error() string {
	return fmt.Sprintf("unknown key tag %d", e.tag)
}

func (e *UnknownKeyTagError) IsFatal() bool { return true }

// ChainDecodeError wraps any error raised while materializing document
// Index in a chain, so callers can tell which document in the stream
// failed.
type ChainDecodeError struct {
	Index int
	Err   error
}

func NewChainDecodeError(index int, err error) *ChainDecodeError {
	return &ChainDecodeError{Index: index, Err: err}
}

func (e *ChainDecodeError) Error() string {
	return fmt.Sprintf("decoding document %d: %v", e.Index, e.Err)
}

func (e *ChainDecodeError) IsFatal() bool { return true }

func (e *ChainDecodeError) Unwrap() error { return e.Err }
