package kit

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// EncodeUTF8 converts Windows-1252 encoded bytes — the legacy encoding
// configuration files and exported Windows tooling output still show up
// in — to UTF-8, so a caller feeding such a file into jitson.Parse
// doesn't need to hand-roll the byte translation.
func EncodeUTF8(legacy []byte) ([]byte, error) {
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), legacy)
	return out, err
}
