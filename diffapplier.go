package plccompress

// resolvedEdits is an EditScript flattened into direct-lookup tables
// keyed by prev-relative index, built and validated against prev's
// IndexTable before any mutation happens - the "resolve every edit's
// target to a persistent logical address... before any mutation"
// approach spec.md ss4.3 calls for.
type resolvedEdits struct {
	updates  map[uint64]*Value
	deletes  map[uint64]bool
	inserts  map[uint64][]*Value
	prepends map[uint64][]*Value
}

// Apply materializes the next document from prev plus a wire-form
// (TagCodec-compressed) script, per spec.md ss4.3. prev is never
// mutated; the result is always a fresh tree.
func Apply(prev *Value, script *EditScript) (*Value, error) {
	if script.IsEmpty() {
		return prev.Clone(), nil
	}

	table := BuildIndex(prev)

	plain, err := decompressEditScript(table, script)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveEdits(table, plain)
	if err != nil {
		return nil, err
	}

	var counter uint64
	return rebuild(prev, &counter, resolved), nil
}

// applyPlain applies an already-decompressed EditScript directly, with
// no TagCodec pass. StreamCodec.EncodeStream uses it to re-derive each
// next document in a chain from a caller-supplied, uncompressed script,
// so it can build the IndexTable the following diff needs without first
// compressing and decompressing its way there.
func applyPlain(prev *Value, script *EditScript) (*Value, error) {
	if script.IsEmpty() {
		return prev.Clone(), nil
	}

	table := BuildIndex(prev)

	resolved, err := resolveEdits(table, script)
	if err != nil {
		return nil, err
	}

	var counter uint64
	return rebuild(prev, &counter, resolved), nil
}

func resolveEdits(table *IndexTable, script *EditScript) (*resolvedEdits, error) {
	r := &resolvedEdits{
		updates:  make(map[uint64]*Value),
		deletes:  make(map[uint64]bool),
		inserts:  make(map[uint64][]*Value),
		prepends: make(map[uint64][]*Value),
	}

	for _, u := range script.Updates {
		entry, err := table.Lookup(u.Index)
		if err != nil {
			return nil, err
		}
		if entry.Role == RoleMapEntryMarker {
			return nil, NewWrongContainerKindError(u.Index, "update", "a value or key node", "a map entry marker")
		}
		r.updates[u.Index] = u.Value
	}

	for _, d := range script.Deletes {
		entry, err := table.Lookup(d)
		if err != nil {
			return nil, err
		}
		if entry.Role != RoleArrayElement && entry.Role != RoleMapEntryMarker {
			return nil, NewWrongContainerKindError(d, "delete", "an array element or map entry marker", roleName(entry.Role))
		}
		r.deletes[d] = true
	}

	for _, ins := range script.Inserts {
		entry, err := table.Lookup(ins.Index)
		if err != nil {
			return nil, err
		}
		if entry.Node == nil || !entry.Node.IsContainer() {
			return nil, NewWrongContainerKindError(ins.Index, "insert", "a map or array container", roleName(entry.Role))
		}
		if entry.Node.Kind == KindMap {
			if ins.Payload.Kind != KindArray || len(ins.Payload.Array) != 2 {
				return nil, NewMalformedEditError("map insert payload must be a [key, value] pair")
			}
		}
		r.inserts[ins.Index] = append(r.inserts[ins.Index], ins.Payload)
	}

	for _, p := range script.Prepends {
		entry, err := table.Lookup(p.Index)
		if err != nil {
			return nil, err
		}
		if entry.Role != RoleArrayElement {
			return nil, NewWrongContainerKindError(p.Index, "prepend", "an array element", roleName(entry.Role))
		}
		r.prepends[p.Index] = append(r.prepends[p.Index], p.Payload)
	}

	return r, nil
}

func roleName(r Role) string {
	switch r {
	case RoleRoot:
		return "the document root"
	case RoleArrayElement:
		return "an array element"
	case RoleMapEntryMarker:
		return "a map entry marker"
	case RoleMapKey:
		return "a map key"
	case RoleMapValue:
		return "a map value"
	case RoleTagContent:
		return "a tag's content"
	default:
		return "an unknown node"
	}
}

// rebuild walks prev in exactly the order walkIndex does (the two must
// be kept in lock-step, see indexer.go) and returns the edited tree.
// Every container on the path to an edit is cloned fresh; this is the
// "safe implementation clones each modified container once per diff"
// choice spec.md ss9 offers as an alternative to persistent sharing.
func rebuild(v *Value, counter *uint64, edits *resolvedEdits) *Value {
	idx := *counter
	*counter++

	if nv, ok := edits.updates[idx]; ok {
		// idx itself is already consumed (above); v's own index was never
		// re-consumed, only its children need to be walked through so
		// that sibling indices elsewhere in the script stay aligned with
		// prev's original layout.
		consumeChildren(v, counter)
		return nv
	}

	switch v.Kind {
	case KindArray:
		return rebuildArray(v, idx, counter, edits)
	case KindMap:
		return rebuildMap(v, idx, counter, edits)
	case KindTag:
		content := rebuild(v.TagContent, counter, edits)
		return NewTag(v.TagNumber, content)
	default:
		return v
	}
}

// rebuildArray handles delete/insert/prepend against an array whose own
// index is idx. Deletes remove elements at their original position
// (spec.md ss8 "Non-commutativity guard": a delete list computed against
// prev's indices is never reinterpreted against a shifting array).
// Prepends targeting the same element are emitted in script order
// immediately before it, so the last one listed ends up adjacent to the
// target (spec.md ss4.3 step 5). Appends land at the end in script order.
func rebuildArray(v *Value, idx uint64, counter *uint64, edits *resolvedEdits) *Value {
	var out []*Value
	for _, e := range v.Array {
		elemIdx := *counter

		if prepends, ok := edits.prepends[elemIdx]; ok {
			out = append(out, prepends...)
		}

		if edits.deletes[elemIdx] {
			consumeNode(e, counter)
			continue
		}

		out = append(out, rebuild(e, counter, edits))
	}

	if inserts, ok := edits.inserts[idx]; ok {
		out = append(out, inserts...)
	}

	return NewArray(out)
}

// rebuildMap handles delete/insert against a map whose own index is idx.
// Deletes target the entry marker and remove the whole (key, value)
// pair. Inserts append fresh [key, value] pairs at the end, in script
// order.
func rebuildMap(v *Value, idx uint64, counter *uint64, edits *resolvedEdits) *Value {
	var out []MapEntry
	for _, entry := range v.Entries {
		markerIdx := *counter
		*counter++

		if edits.deletes[markerIdx] {
			consumeNode(entry.Key, counter)
			consumeNode(entry.Val, counter)
			continue
		}

		newKey := rebuild(entry.Key, counter, edits)
		newVal := rebuild(entry.Val, counter, edits)
		out = append(out, MapEntry{Key: newKey, Val: newVal})
	}

	if inserts, ok := edits.inserts[idx]; ok {
		for _, pair := range inserts {
			out = append(out, MapEntry{Key: pair.Array[0], Val: pair.Array[1]})
		}
	}

	return NewMap(out)
}

// consumeNode and consumeChildren advance counter exactly as walkIndex
// would, without keeping the resulting table. They are used when a node
// is replaced wholesale (update) or removed (delete): later sibling
// indices in the script still refer to prev's original layout, so the
// counter must advance as if v had been visited in full either way.
// consumeNode consumes v's own index plus its subtree; consumeChildren
// consumes only the subtree, for callers whose preamble already
// consumed v's own index.
func consumeNode(v *Value, counter *uint64) {
	*counter++
	consumeChildren(v, counter)
}

func consumeChildren(v *Value, counter *uint64) {
	switch v.Kind {
	case KindArray:
		for _, e := range v.Array {
			consumeNode(e, counter)
		}
	case KindMap:
		for _, entry := range v.Entries {
			*counter++ // entry marker
			consumeNode(entry.Key, counter)
			consumeNode(entry.Val, counter)
		}
	case KindTag:
		consumeNode(v.TagContent, counter)
	}
}
