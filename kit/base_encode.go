package kit

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
)

// EncodeBase16, EncodeBase32 and EncodeBase64 give callers a single
// place to pick a wire/display encoding for binary jitson payloads
// (e.g. a string cell holding raw bytes rather than text). No
// third-party codec appears anywhere in the retrieved corpus for this
// concern, so these wrap the standard library directly rather than
// importing an unrelated package just to have one (DESIGN.md).
func EncodeBase16(b []byte) string { return hex.EncodeToString(b) }
func DecodeBase16(s string) ([]byte, error) { return hex.DecodeString(s) }

func EncodeBase32(b []byte) string { return base32.StdEncoding.EncodeToString(b) }
func DecodeBase32(s string) ([]byte, error) { return base32.StdEncoding.DecodeString(s) }

func EncodeBase64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
func DecodeBase64(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }
