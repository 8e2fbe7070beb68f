package plccompress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditScriptParseBuildRoundTrip(t *testing.T) {
	script := &EditScript{
		Updates:  []UpdateEdit{{Index: 3, Value: NewText("new")}},
		Deletes:  []uint64{7, 9},
		Inserts:  []InsertEdit{{Index: 0, Payload: NewArray([]*Value{NewText("k"), NewUint(1)})}},
		Prepends: []PrependEdit{{Index: 2, Payload: NewText("first")}},
	}

	v := BuildEditScriptValue(script)
	parsed, err := ParseEditScript(v)
	require.NoError(t, err)

	require.Equal(t, script.Updates, parsed.Updates)
	require.Equal(t, script.Deletes, parsed.Deletes)
	require.Len(t, parsed.Inserts, 1)
	require.Equal(t, script.Inserts[0].Index, parsed.Inserts[0].Index)
	require.True(t, script.Inserts[0].Payload.Equal(parsed.Inserts[0].Payload))
	require.Len(t, parsed.Prepends, 1)
}

func TestEditScriptOmitsEmptyKeys(t *testing.T) {
	script := &EditScript{Deletes: []uint64{4}}
	v := BuildEditScriptValue(script)
	require.Len(t, v.Entries, 1)
	require.Equal(t, editScriptKeyDeletes, v.Entries[0].Key.Text)
}

func TestEditScriptIsEmpty(t *testing.T) {
	require.True(t, (&EditScript{}).IsEmpty())
	require.False(t, (&EditScript{Deletes: []uint64{0}}).IsEmpty())
}

func TestParseEditScriptRejectsNonMap(t *testing.T) {
	_, err := ParseEditScript(NewArray(nil))
	require.Error(t, err)
}

func TestParseEditScriptRejectsUnknownKey(t *testing.T) {
	v := NewMap([]MapEntry{{Key: NewText("x"), Val: NewArray(nil)}})
	_, err := ParseEditScript(v)
	require.Error(t, err)
}
