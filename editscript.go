package plccompress

// EditScript is the four-key diff shape of spec.md ss3/ss6. Update and
// insert/prepend payload Values are kept exactly as they appear on the
// wire - compressed, per TagCodec - when parsed from a stream, and are
// compressed by EncodeStream just before being embedded when built
// from a caller-supplied, uncompressed script.
type EditScript struct {
	Updates  []UpdateEdit
	Deletes  []uint64
	Inserts  []InsertEdit
	Prepends []PrependEdit
}

type UpdateEdit struct {
	Index uint64
	Value *Value
}

type InsertEdit struct {
	Index   uint64
	Payload *Value
}

type PrependEdit struct {
	Index   uint64
	Payload *Value
}

const (
	editScriptKeyUpdates  = "u"
	editScriptKeyDeletes  = "d"
	editScriptKeyInserts  = "i"
	editScriptKeyPrepends = "p"
)

// ParseEditScript reads an EditScript out of a decoded Value. Any of the
// four keys may be absent, meaning that edit class is empty.
func ParseEditScript(v *Value) (*EditScript, error) {
	if v == nil || v.Kind != KindMap {
		return nil, NewMalformedEditError("edit script must be a map")
	}

	script := &EditScript{}
	for _, entry := range v.Entries {
		if entry.Key.Kind != KindText {
			return nil, NewMalformedEditError("edit script key must be a text string")
		}
		switch entry.Key.Text {
		case editScriptKeyUpdates:
			updates, err := parseIndexValuePairs(entry.Val)
			if err != nil {
				return nil, err
			}
			for _, p := range updates {
				script.Updates = append(script.Updates, UpdateEdit{Index: p.index, Value: p.value})
			}

		case editScriptKeyDeletes:
			deletes, err := parseIndexList(entry.Val)
			if err != nil {
				return nil, err
			}
			script.Deletes = deletes

		case editScriptKeyInserts:
			inserts, err := parseIndexValuePairs(entry.Val)
			if err != nil {
				return nil, err
			}
			for _, p := range inserts {
				script.Inserts = append(script.Inserts, InsertEdit{Index: p.index, Payload: p.value})
			}

		case editScriptKeyPrepends:
			prepends, err := parseIndexValuePairs(entry.Val)
			if err != nil {
				return nil, err
			}
			for _, p := range prepends {
				script.Prepends = append(script.Prepends, PrependEdit{Index: p.index, Payload: p.value})
			}

		default:
			return nil, NewMalformedEditError("unknown edit script key " + entry.Key.Text)
		}
	}
	return script, nil
}

type indexValuePair struct {
	index uint64
	value *Value
}

func parseIndexValuePairs(v *Value) ([]indexValuePair, error) {
	if v.Kind != KindArray {
		return nil, NewMalformedEditError("expected an array of [index, value] pairs")
	}
	pairs := make([]indexValuePair, len(v.Array))
	for i, e := range v.Array {
		if e.Kind != KindArray || len(e.Array) != 2 {
			return nil, NewMalformedEditError("expected a two-element [index, value] pair")
		}
		if e.Array[0].Kind != KindUint {
			return nil, NewMalformedEditError("edit index must be a non-negative integer")
		}
		pairs[i] = indexValuePair{index: e.Array[0].Uint, value: e.Array[1]}
	}
	return pairs, nil
}

func parseIndexList(v *Value) ([]uint64, error) {
	if v.Kind != KindArray {
		return nil, NewMalformedEditError("expected an array of indices")
	}
	out := make([]uint64, len(v.Array))
	for i, e := range v.Array {
		if e.Kind != KindUint {
			return nil, NewMalformedEditError("delete index must be a non-negative integer")
		}
		out[i] = e.Uint
	}
	return out, nil
}

// BuildEditScriptValue is the inverse of ParseEditScript: it renders an
// EditScript as a Value map, omitting any of the four keys whose edit
// list is empty (spec.md ss6, "Empty arrays for any key MAY also be
// omitted").
func BuildEditScriptValue(script *EditScript) *Value {
	var entries []MapEntry

	if len(script.Updates) > 0 {
		pairs := make([]*Value, len(script.Updates))
		for i, u := range script.Updates {
			pairs[i] = NewArray([]*Value{NewUint(u.Index), u.Value})
		}
		entries = append(entries, MapEntry{Key: NewText(editScriptKeyUpdates), Val: NewArray(pairs)})
	}

	if len(script.Deletes) > 0 {
		idxs := make([]*Value, len(script.Deletes))
		for i, d := range script.Deletes {
			idxs[i] = NewUint(d)
		}
		entries = append(entries, MapEntry{Key: NewText(editScriptKeyDeletes), Val: NewArray(idxs)})
	}

	if len(script.Inserts) > 0 {
		pairs := make([]*Value, len(script.Inserts))
		for i, ins := range script.Inserts {
			pairs[i] = NewArray([]*Value{NewUint(ins.Index), ins.Payload})
		}
		entries = append(entries, MapEntry{Key: NewText(editScriptKeyInserts), Val: NewArray(pairs)})
	}

	if len(script.Prepends) > 0 {
		pairs := make([]*Value, len(script.Prepends))
		for i, p := range script.Prepends {
			pairs[i] = NewArray([]*Value{NewUint(p.Index), p.Payload})
		}
		entries = append(entries, MapEntry{Key: NewText(editScriptKeyPrepends), Val: NewArray(pairs)})
	}

	return NewMap(entries)
}

// IsEmpty reports whether the script has no edits at all (spec.md ss8,
// "apply(D, empty-script) == D").
func (s *EditScript) IsEmpty() bool {
	return len(s.Updates) == 0 && len(s.Deletes) == 0 && len(s.Inserts) == 0 && len(s.Prepends) == 0
}

// compressEditScript applies TagCodec to every embedded value of an
// otherwise-uncompressed, caller-supplied EditScript, per spec.md ss4.4
// ("Encode... with TagCodec applied to every embedded value"). table is
// the IndexTable of the document the script is addressed against: it is
// what tells an update targeting a map key (which must follow key-tag
// rules, spec.md ss6) from one targeting an ordinary value. Delete
// indices carry no values and are copied as-is.
func compressEditScript(table *IndexTable, script *EditScript) (*EditScript, error) {
	out := &EditScript{Deletes: script.Deletes}

	for _, u := range script.Updates {
		entry, err := table.Lookup(u.Index)
		if err != nil {
			return nil, err
		}
		cv := CompressValue(u.Value)
		if entry.Role == RoleMapKey {
			cv = compressKey(u.Value)
		}
		out.Updates = append(out.Updates, UpdateEdit{Index: u.Index, Value: cv})
	}

	for _, ins := range script.Inserts {
		entry, err := table.Lookup(ins.Index)
		if err != nil {
			return nil, err
		}
		payload, err := compressInsertPayload(entry, ins.Payload)
		if err != nil {
			return nil, err
		}
		out.Inserts = append(out.Inserts, InsertEdit{Index: ins.Index, Payload: payload})
	}

	for _, p := range script.Prepends {
		out.Prepends = append(out.Prepends, PrependEdit{Index: p.Index, Payload: CompressValue(p.Payload)})
	}

	return out, nil
}

// decompressEditScript reverses compressEditScript, for a script whose
// embedded values are still in wire (compressed) form. table is the
// IndexTable of the document the script is about to be applied to.
func decompressEditScript(table *IndexTable, script *EditScript) (*EditScript, error) {
	out := &EditScript{Deletes: script.Deletes}

	for _, u := range script.Updates {
		entry, err := table.Lookup(u.Index)
		if err != nil {
			return nil, err
		}
		var dv *Value
		if entry.Role == RoleMapKey {
			dv, err = decompressKey(u.Value)
		} else {
			dv, err = DecompressValue(u.Value)
		}
		if err != nil {
			return nil, err
		}
		out.Updates = append(out.Updates, UpdateEdit{Index: u.Index, Value: dv})
	}

	for _, ins := range script.Inserts {
		entry, err := table.Lookup(ins.Index)
		if err != nil {
			return nil, err
		}
		payload, err := decompressInsertPayload(entry, ins.Payload)
		if err != nil {
			return nil, err
		}
		out.Inserts = append(out.Inserts, InsertEdit{Index: ins.Index, Payload: payload})
	}

	for _, p := range script.Prepends {
		dv, err := DecompressValue(p.Payload)
		if err != nil {
			return nil, err
		}
		out.Prepends = append(out.Prepends, PrependEdit{Index: p.Index, Payload: dv})
	}

	return out, nil
}

// compressInsertPayload and decompressInsertPayload apply TagCodec to an
// insert's payload according to the shape its target container requires:
// a map insert's payload is a [key, value] pair whose key follows
// key-tag rules and whose value follows value-tag rules (spec.md ss6);
// an array insert's payload is a single ordinary value.
func compressInsertPayload(entry IndexEntry, payload *Value) (*Value, error) {
	if entry.Node != nil && entry.Node.Kind == KindMap {
		if payload.Kind != KindArray || len(payload.Array) != 2 {
			return nil, NewMalformedEditError("map insert payload must be a [key, value] pair")
		}
		return NewArray([]*Value{compressKey(payload.Array[0]), CompressValue(payload.Array[1])}), nil
	}
	return CompressValue(payload), nil
}

func decompressInsertPayload(entry IndexEntry, payload *Value) (*Value, error) {
	if entry.Node != nil && entry.Node.Kind == KindMap {
		if payload.Kind != KindArray || len(payload.Array) != 2 {
			return nil, NewMalformedEditError("map insert payload must be a [key, value] pair")
		}
		key, err := decompressKey(payload.Array[0])
		if err != nil {
			return nil, err
		}
		val, err := DecompressValue(payload.Array[1])
		if err != nil {
			return nil, err
		}
		return NewArray([]*Value{key, val}), nil
	}
	return DecompressValue(payload)
}
