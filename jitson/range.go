package jitson

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/sxegroup/jitson/internal/bufio16"
)

// TypeRange is the built-in numeric-range type: a lazily-enumerable
// start/stop/step sequence, supplementing the core scalar/array/object
// type set with the arithmetic-sequence construct the distilled spec
// omitted. It occupies two cells: the root carries its element count
// and start value, a continuation cell carries stop and step.
var TypeRange TypeID

func init() { TypeRange = defaultRegistry.Register("range", rangeVTable) }

func rangeCount(start, stop, step float64) uint32 {
	if step == 0 {
		return 0
	}
	n := (stop - start) / step
	if n <= 0 {
		return 0
	}
	return uint32(math.Ceil(n))
}

// AddRange appends a range value, the spec-supplemented analogue of
// AddNumber/AddString for the other scalar types.
func (s *Stack) AddRange(start, stop, step float64) Ref {
	root := s.reserve(2)
	count := rangeCount(start, stop, step)
	c := newTaggedCell(TypeRange, 0)
	c.Len = count
	bufio16.PutFloat64(&c.Payload, start)
	s.cells[root] = c

	var raw [16]byte
	binary.LittleEndian.PutUint64(raw[0:8], math.Float64bits(stop))
	binary.LittleEndian.PutUint64(raw[8:16], math.Float64bits(step))
	s.cells[root+1] = cellFromRawBytes(raw)

	return s.noteChild(root, TypeRange, 2)
}

func (v *Value) rangeStart(ref Ref) float64 {
	return bufio16.Float64(v.cell(ref).Payload)
}

func (v *Value) rangeStopStep(ref Ref) (stop, step float64) {
	raw := v.cell(ref + 1).rawBytes()
	stop = math.Float64frombits(binary.LittleEndian.Uint64(raw[0:8]))
	step = math.Float64frombits(binary.LittleEndian.Uint64(raw[8:16]))
	return stop, step
}

// RangeAt returns the i'th element of the range at ref (start + i*step),
// without materialising the sequence.
func (v *Value) RangeAt(ref Ref, i int) float64 {
	start := v.rangeStart(ref)
	_, step := v.rangeStopStep(ref)
	return start + float64(i)*step
}

var rangeVTable = VTable{
	Test: func(v *Value, ref Ref) bool { return v.cell(ref).Len > 0 },
	Size: func(v *Value, ref Ref) int { return 2 },
	Len:  func(v *Value, ref Ref) int { return int(v.cell(ref).Len) },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte {
		n := int(v.cell(ref).Len)
		buf = append(buf, '[')
		for i := 0; i < n; i++ {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, v.RangeAt(ref, i), 'g', -1, 64)
		}
		return append(buf, ']')
	},
	Clone: func(dst *Stack, src *Value, ref Ref) Ref {
		start := src.rangeStart(ref)
		stop, step := src.rangeStopStep(ref)
		return dst.AddRange(start, stop, step)
	},
	Cmp: func(v *Value, a, b Ref) CompareResult {
		sa, sb := v.rangeStart(a), v.rangeStart(b)
		stopA, stepA := v.rangeStopStep(a)
		stopB, stepB := v.rangeStopStep(b)
		switch {
		case sa != sb:
			if sa < sb {
				return Less
			}
			return Greater
		case stopA != stopB:
			if stopA < stopB {
				return Less
			}
			return Greater
		case stepA != stepB:
			if stepA < stepB {
				return Less
			}
			return Greater
		default:
			return Equal
		}
	},
	Eq: func(v *Value, a, b Ref) bool {
		sa, sb := v.rangeStart(a), v.rangeStart(b)
		stopA, stepA := v.rangeStopStep(a)
		stopB, stepB := v.rangeStopStep(b)
		return sa == sb && stopA == stopB && stepA == stepB
	},
}
