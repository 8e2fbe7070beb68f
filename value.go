package plccompress

// Kind identifies which of the eight CBOR major shapes (plus tag) a Value
// holds. There is no polymorphic hierarchy of value types: every Value is
// this one struct, with only the fields for its Kind populated, matching
// the "tagged variant... avoid polymorphic class hierarchies" shape.
type Kind uint8

const (
	KindUint Kind = iota
	KindNegInt
	KindBytes
	KindText
	KindArray
	KindMap
	KindBool
	KindNull
	KindTag
)

// Value is a CBOR value: an unsigned integer, a negative integer, a byte
// string, a text string, an array, an order-preserving map, a boolean,
// null, or a tag wrapping another Value.
type Value struct {
	Kind Kind

	Uint   uint64 // KindUint
	Int    int64  // KindNegInt: the represented (negative) integer value
	Bytes  []byte // KindBytes
	Text   string // KindText
	Bool   bool   // KindBool

	Array   []*Value   // KindArray
	Entries []MapEntry // KindMap, insertion order preserved

	TagNumber  uint64 // KindTag
	TagContent *Value // KindTag
}

// MapEntry is one (key, value) pair of a KindMap Value, in the order it
// appears in the document.
type MapEntry struct {
	Key *Value
	Val *Value
}

func NewUint(n uint64) *Value { return &Value{Kind: KindUint, Uint: n} }

// NewNegInt builds a CBOR negative integer Value. n must be < 0.
func NewNegInt(n int64) *Value { return &Value{Kind: KindNegInt, Int: n} }

func NewBytes(b []byte) *Value { return &Value{Kind: KindBytes, Bytes: b} }

func NewText(s string) *Value { return &Value{Kind: KindText, Text: s} }

func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

func NewNull() *Value { return &Value{Kind: KindNull} }

func NewArray(elems []*Value) *Value { return &Value{Kind: KindArray, Array: elems} }

func NewMap(entries []MapEntry) *Value { return &Value{Kind: KindMap, Entries: entries} }

func NewTag(number uint64, content *Value) *Value {
	return &Value{Kind: KindTag, TagNumber: number, TagContent: content}
}

// IsContainer reports whether v can be the target of an insert, delete,
// or prepend edit.
func (v *Value) IsContainer() bool {
	return v != nil && (v.Kind == KindArray || v.Kind == KindMap)
}

// Equal performs structural, order-sensitive comparison: map equality
// requires identical insertion order, since PLC operation CIDs depend on
// byte-exact re-encoding.
func (v *Value) Equal(other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindUint:
		return v.Uint == other.Uint
	case KindNegInt:
		return v.Int == other.Int
	case KindBytes:
		return bytesEqual(v.Bytes, other.Bytes)
	case KindText:
		return v.Text == other.Text
	case KindBool:
		return v.Bool == other.Bool
	case KindNull:
		return true
	case KindArray:
		if len(v.Array) != len(other.Array) {
			return false
		}
		for i, e := range v.Array {
			if !e.Equal(other.Array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.Entries) != len(other.Entries) {
			return false
		}
		for i, e := range v.Entries {
			o := other.Entries[i]
			if !e.Key.Equal(o.Key) || !e.Val.Equal(o.Val) {
				return false
			}
		}
		return true
	case KindTag:
		return v.TagNumber == other.TagNumber && v.TagContent.Equal(other.TagContent)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone deep-copies v. DiffApplier never mutates prev; callers that build
// fresh subtrees for inserts/updates use Clone defensively when a caller
// retains its own reference to the value being inserted.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	clone := *v
	switch v.Kind {
	case KindBytes:
		clone.Bytes = append([]byte(nil), v.Bytes...)
	case KindArray:
		clone.Array = make([]*Value, len(v.Array))
		for i, e := range v.Array {
			clone.Array[i] = e.Clone()
		}
	case KindMap:
		clone.Entries = make([]MapEntry, len(v.Entries))
		for i, e := range v.Entries {
			clone.Entries[i] = MapEntry{Key: e.Key.Clone(), Val: e.Val.Clone()}
		}
	case KindTag:
		clone.TagContent = v.TagContent.Clone()
	}
	return &clone
}
