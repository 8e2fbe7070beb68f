package plccompress

// Tag numbers used by this codec's semantic-tag substitution layer.
//
// DAG-CBOR allows only tag 42; every number below is therefore
// unambiguously a compression marker in any stream produced by this
// package, and none of them is legal input to a DAG-CBOR decoder. Tags
// 0-5 are skipped because CBOR gives them standard meaning (datetime,
// epoch time, bignums) that common CBOR libraries do interpret.
const (
	// Value tags (6-9): a known leaf-value shape replaced by its decoded
	// binary or stripped-prefix form.
	TagSig    = 6 // base64url 64-byte signature -> raw bytes
	TagCID    = 7 // base32lower multibase CID -> raw CID bytes
	TagDIDKey = 8 // "did:key:z..." -> raw multicodec + compressed pubkey bytes
	TagAtURI  = 9 // "at://..." -> suffix text string

	// Key tags (10-19): a known map key name replaced by tag(N, null).
	TagKeySig                  = 10
	TagKeyPrev                 = 11
	TagKeyType                 = 12
	TagKeyServices             = 13
	TagKeyAlsoKnownAs          = 14
	TagKeyRotationKeys         = 15
	TagKeyVerificationMethods  = 16
	TagKeyAtprotoPDS           = 17
	TagKeyEndpoint             = 18
	TagKeyAtproto              = 19

	minKeyTag = TagKeySig
	maxKeyTag = TagKeyAtproto

	minValueTag = TagSig
	maxValueTag = TagAtURI
)

// keyTagNames maps every known key tag to the field name it replaces.
// Walked in both directions by TagCodec: forward to find the tag for a
// given key string, backward to recover the string for a given tag.
var keyTagNames = [...]struct {
	tag  uint64
	name string
}{
	{TagKeySig, "sig"},
	{TagKeyPrev, "prev"},
	{TagKeyType, "type"},
	{TagKeyServices, "services"},
	{TagKeyAlsoKnownAs, "alsoKnownAs"},
	{TagKeyRotationKeys, "rotationKeys"},
	{TagKeyVerificationMethods, "verificationMethods"},
	{TagKeyAtprotoPDS, "atproto_pds"},
	{TagKeyEndpoint, "endpoint"},
	{TagKeyAtproto, "atproto"},
}

func keyNameForTag(tag uint64) (string, bool) {
	for _, e := range keyTagNames {
		if e.tag == tag {
			return e.name, true
		}
	}
	return "", false
}

func keyTagForName(name string) (uint64, bool) {
	for _, e := range keyTagNames {
		if e.name == name {
			return e.tag, true
		}
	}
	return 0, false
}

// isKeyTagRange reports whether tag falls within the reserved key tag
// range 10-19. decompressValueTag uses it to report a key tag found at a
// value position as MalformedCBORError rather than UnknownKeyTagError.
func isKeyTagRange(tag uint64) bool {
	return tag >= minKeyTag && tag <= maxKeyTag
}
