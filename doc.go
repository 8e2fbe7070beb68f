// Package plccompress implements a codec for compressing a chronologically
// ordered chain of DID:PLC operations into a compact byte stream, and
// decompressing that stream back into byte-exact CBOR.
//
// A DID:PLC operation is a CBOR map describing one step of a decentralized
// identity document's history. Successive operations in a log typically
// differ only slightly - they share rotation keys, verification methods,
// and service endpoints - and many of their leaf values are verbose
// textual encodings of binary data: base64url signatures, base32 CIDs,
// base58 public keys, AT-URIs. This package exploits both facts.
//
// Four pieces compose the codec:
//
//   - Value (value.go and friends) is the CBOR data model every other
//     piece operates on: a small tagged variant over CBOR's eight major
//     shapes plus tag, with order-preserving maps.
//
//   - the Indexer (indexer.go) assigns a stable integer index to every
//     structural position of a Value by a single deterministic walk.
//
//   - TagCodec (tagcodec.go and tagcodec_*.go) rewrites known leaf-value
//     shapes and known map keys to compact tagged forms, and back.
//
//   - DiffApplier (diffapplier.go, editscript.go) rebuilds a document
//     from a previous document plus an edit script addressed by the
//     previous document's indices.
//
// StreamCodec (streamcodec.go) frames the outer `[full_op, diff_1, ...]`
// array and orchestrates the other three in both directions.
//
// The package is purely functional: it performs no I/O, holds no shared
// mutable state, and never mutates an input document. Decompressing a
// chain is inherently sequential (each diff depends on the previous
// document), but independent chains may be decoded concurrently with no
// shared state between them.
package plccompress
