package jitson

import "github.com/sxegroup/jitson/internal/bufio16"

// cellsForInlineBytes returns the number of cells needed to hold n inline
// string bytes: up to 8 fit in the root cell's payload, the rest spill into
// 16-byte continuation cells.
func cellsForInlineBytes(n int) int {
	if n <= 8 {
		return 1
	}
	rem := n - 8
	return 1 + (rem+15)/16
}

// rawBytes packs a cell's 16 bytes (tag, len, payload) as a flat buffer, the
// representation continuation cells use: their Tag/Len fields carry no
// meaning of their own, only 16 bytes of string content.
func (c *Cell) rawBytes() [16]byte {
	var b [16]byte
	var word [8]byte
	bufio16.PutUint32Pair(&word, c.Tag, c.Len)
	copy(b[0:8], word[:])
	copy(b[8:16], c.Payload[:])
	return b
}

func cellFromRawBytes(b [16]byte) Cell {
	var word [8]byte
	copy(word[:], b[0:8])
	tag, ln := bufio16.Uint32Pair(word)
	var payload [8]byte
	copy(payload[:], b[8:16])
	return Cell{Tag: tag, Len: ln, Payload: payload}
}

// writeInlineBytes writes data into the cell run starting at root (which
// must already have cellsForInlineBytes(len(data)) cells reserved).
func writeInlineBytes(cells []Cell, root Ref, data []byte) {
	n := len(data)
	head := n
	if head > 8 {
		head = 8
	}
	copy(cells[root].Payload[:head], data[:head])
	rest := data[head:]
	idx := root + 1
	for len(rest) > 0 {
		take := len(rest)
		if take > 16 {
			take = 16
		}
		var raw [16]byte
		copy(raw[:], rest[:take])
		cells[idx] = cellFromRawBytes(raw)
		rest = rest[take:]
		idx++
	}
}

func readInlineBytes(cells []Cell, root Ref, n int) []byte {
	buf := make([]byte, n)
	head := n
	if head > 8 {
		head = 8
	}
	copy(buf, cells[root].Payload[:head])
	rest := buf[head:]
	idx := root + 1
	for len(rest) > 0 {
		take := len(rest)
		if take > 16 {
			take = 16
		}
		raw := cells[idx].rawBytes()
		copy(rest[:take], raw[:take])
		rest = rest[take:]
		idx++
	}
	return buf
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// rawStringBytes returns the string's stored bytes, without un-reversing.
func (v *Value) rawStringBytes(ref Ref) []byte {
	c := v.cell(ref)
	if c.FlagBits().Has(FlagIsRef) {
		idx, _ := bufio16.Uint32Pair(c.Payload)
		return []byte(v.strings[idx])
	}
	return readInlineBytes(v.cells, ref, int(c.Len))
}

// stringBytes returns the string's logical bytes, un-reversing FlagReversed
// storage transparently.
func (v *Value) stringBytes(ref Ref) []byte {
	raw := v.rawStringBytes(ref)
	c := v.cell(ref)
	if c.FlagBits().Has(FlagReversed) {
		out := make([]byte, len(raw))
		copy(out, raw)
		reverseBytes(out)
		return out
	}
	return raw
}
