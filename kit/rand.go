package kit

import (
	"crypto/rand"
	"encoding/binary"
)

// SeedUint64 returns a cryptographically random 64-bit seed. It
// replaces the kind of ARC4-keyed PRNG seeding older C codebases use
// for non-cryptographic sampling: crypto/rand is the source of entropy,
// the caller decides what pseudo-random sequence to key with it.
func SeedUint64() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
