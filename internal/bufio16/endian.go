// Package bufio16 provides endian-safe encode/decode helpers for the 8-byte
// payload half of a jitson cell.
package bufio16

import (
	"encoding/binary"
	"math"
)

// PutFloat64 writes f into payload as a little-endian IEEE-754 double.
func PutFloat64(payload *[8]byte, f float64) {
	binary.LittleEndian.PutUint64(payload[:], math.Float64bits(f))
}

// Float64 reads a little-endian IEEE-754 double out of payload.
func Float64(payload [8]byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(payload[:]))
}

// PutUint64 writes u into payload as little-endian.
func PutUint64(payload *[8]byte, u uint64) {
	binary.LittleEndian.PutUint64(payload[:], u)
}

// Uint64 reads a little-endian uint64 out of payload.
func Uint64(payload [8]byte) uint64 {
	return binary.LittleEndian.Uint64(payload[:])
}

// PutUint32Pair writes two uint32s into payload (used for array/object
// "integer" size fields and uniform-array size+type pairs).
func PutUint32Pair(payload *[8]byte, a, b uint32) {
	binary.LittleEndian.PutUint32(payload[0:4], a)
	binary.LittleEndian.PutUint32(payload[4:8], b)
}

// Uint32Pair reads two uint32s out of payload.
func Uint32Pair(payload [8]byte) (a, b uint32) {
	return binary.LittleEndian.Uint32(payload[0:4]), binary.LittleEndian.Uint32(payload[4:8])
}

// PutBool writes a boolean into payload's first byte.
func PutBool(payload *[8]byte, v bool) {
	if v {
		payload[0] = 1
	} else {
		payload[0] = 0
	}
}

// Bool reads a boolean out of payload's first byte.
func Bool(payload [8]byte) bool {
	return payload[0] != 0
}

// PutPointer stashes a pointer-sized value into payload as a
// little-endian uint64.
func PutPointer(payload *[8]byte, p uintptr) {
	binary.LittleEndian.PutUint64(payload[:], uint64(p))
}

// Pointer reads back a stashed pointer-sized value.
func Pointer(payload [8]byte) uintptr {
	return uintptr(binary.LittleEndian.Uint64(payload[:]))
}
