package jitson

import (
	"strconv"

	"github.com/sxegroup/jitson/internal/bufio16"
)

var nullVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return false },
	Size:       func(v *Value, ref Ref) int { return 1 },
	Len:        func(v *Value, ref Ref) int { return 0 },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte { return append(buf, "null"...) },
	Clone:      func(dst *Stack, src *Value, ref Ref) Ref { return dst.AddNull() },
	Cmp:        func(v *Value, a, b Ref) CompareResult { return Equal },
	Eq:         func(v *Value, a, b Ref) bool { return true },
}

var boolVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return v.GetBool(ref) },
	Size:       func(v *Value, ref Ref) int { return 1 },
	Len:        func(v *Value, ref Ref) int { return 0 },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte { return strconv.AppendBool(buf, v.GetBool(ref)) },
	Clone:      func(dst *Stack, src *Value, ref Ref) Ref { return dst.AddBool(src.GetBool(ref)) },
	Cmp: func(v *Value, a, b Ref) CompareResult {
		ba, bb := v.GetBool(a), v.GetBool(b)
		switch {
		case ba == bb:
			return Equal
		case !ba && bb:
			return Less
		default:
			return Greater
		}
	},
	Eq: func(v *Value, a, b Ref) bool { return v.GetBool(a) == v.GetBool(b) },
}

var numberVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return v.GetNumber(ref) != 0 },
	Size:       func(v *Value, ref Ref) int { return 1 },
	Len:        func(v *Value, ref Ref) int { return 0 },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte { return appendJSONNumber(buf, v, ref) },
	Clone: func(dst *Stack, src *Value, ref Ref) Ref {
		if src.IsUint(ref) {
			return dst.AddUint(src.GetUint(ref))
		}
		return dst.AddNumber(src.GetNumber(ref))
	},
	Cmp: func(v *Value, a, b Ref) CompareResult {
		na, nb := v.GetNumber(a), v.GetNumber(b)
		switch {
		case na < nb:
			return Less
		case na > nb:
			return Greater
		default:
			return Equal
		}
	},
	Eq: func(v *Value, a, b Ref) bool { return v.GetNumber(a) == v.GetNumber(b) },
}

func appendJSONNumber(buf []byte, v *Value, ref Ref) []byte {
	if v.IsUint(ref) {
		return strconv.AppendUint(buf, v.GetUint(ref), 10)
	}
	return strconv.AppendFloat(buf, v.GetNumber(ref), 'g', -1, 64)
}

var stringVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return v.Len(ref) > 0 },
	Size:       func(v *Value, ref Ref) int { return stringCellSize(v.cell(ref)) },
	Len:        func(v *Value, ref Ref) int { return int(v.cell(ref).Len) },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte { return appendJSONString(buf, v.stringBytes(ref)) },
	Clone: func(dst *Stack, src *Value, ref Ref) Ref {
		return dst.addStringBytes(src.stringBytes(ref), src.cell(ref).FlagBits()&FlagKey)
	},
	Cmp: func(v *Value, a, b Ref) CompareResult {
		sa, sb := string(v.stringBytes(a)), string(v.stringBytes(b))
		switch {
		case sa < sb:
			return Less
		case sa > sb:
			return Greater
		default:
			return Equal
		}
	},
	Eq: func(v *Value, a, b Ref) bool { return string(v.stringBytes(a)) == string(v.stringBytes(b)) },
}

func stringCellSize(c *Cell) int {
	if c.FlagBits().Has(FlagIsRef) {
		return 1
	}
	return cellsForInlineBytes(int(c.Len))
}

func appendJSONString(buf []byte, s []byte) []byte {
	buf = append(buf, '"')
	for _, b := range s {
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if b < 0x20 {
				buf = append(buf, '\\', 'u')
				buf = append(buf, hexDigits(b)...)
			} else {
				buf = append(buf, b)
			}
		}
	}
	return append(buf, '"')
}

func hexDigits(b byte) []byte {
	const hex = "0123456789abcdef"
	return []byte{'0', '0', hex[b>>4], hex[b&0xF]}
}

var arrayVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return v.Len(ref) > 0 },
	Size:       arraySize,
	Len:        func(v *Value, ref Ref) int { return int(v.cell(ref).Len) },
	AppendJSON: appendJSONArray,
	Clone:      cloneArray,
	Cmp:        cmpArray,
	Eq:         eqArray,
}

func arraySize(v *Value, ref Ref) int {
	c := v.cell(ref)
	if c.FlagBits().Has(FlagUnif) {
		elemCells, _ := bufio16.Uint32Pair(c.Payload)
		return 1 + int(c.Len)*int(elemCells)
	}
	sz, _ := bufio16.Uint32Pair(c.Payload)
	return int(sz)
}

func appendJSONArray(buf []byte, v *Value, ref Ref) []byte {
	buf = append(buf, '[')
	elems := v.arrayElements(ref)
	for i, e := range elems {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.AppendJSON(buf, e)
	}
	return append(buf, ']')
}

func cloneArray(dst *Stack, src *Value, ref Ref) Ref {
	c := src.cell(ref)
	flags := c.FlagBits() &^ FlagIndexed
	root, _ := dst.openCollection(TypeArray, flags&FlagMkSort)
	for _, e := range src.arrayElements(ref) {
		dst.cloneValueInto(src, e)
	}
	dst.closeCollection(root)
	return root
}

func cmpArray(v *Value, a, b Ref) CompareResult {
	ea, eb := v.arrayElements(a), v.arrayElements(b)
	n := len(ea)
	if len(eb) < n {
		n = len(eb)
	}
	for i := 0; i < n; i++ {
		if r := v.Cmp(ea[i], eb[i]); r != Equal {
			return r
		}
	}
	switch {
	case len(ea) < len(eb):
		return Less
	case len(ea) > len(eb):
		return Greater
	default:
		return Equal
	}
}

func eqArray(v *Value, a, b Ref) bool {
	ea, eb := v.arrayElements(a), v.arrayElements(b)
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if !v.Eq(ea[i], eb[i]) {
			return false
		}
	}
	return true
}

var objectVTable = VTable{
	Test:       func(v *Value, ref Ref) bool { return v.Len(ref) > 0 },
	Size:       objectSize,
	Len:        func(v *Value, ref Ref) int { return int(v.cell(ref).Len) },
	AppendJSON: appendJSONObject,
	Clone:      cloneObject,
	Cmp:        func(v *Value, a, b Ref) CompareResult { return CompareFailed },
	Eq:         eqObject,
}

func objectSize(v *Value, ref Ref) int {
	sz, _ := bufio16.Uint32Pair(v.cell(ref).Payload)
	return int(sz)
}

func appendJSONObject(buf []byte, v *Value, ref Ref) []byte {
	buf = append(buf, '{')
	members := v.objectMembers(ref)
	for i, m := range members {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSONString(buf, v.rawStringBytes(m.KeyRef))
		buf = append(buf, ':')
		buf = v.AppendJSON(buf, m.ValueRef)
	}
	return append(buf, '}')
}

func cloneObject(dst *Stack, src *Value, ref Ref) Ref {
	root, _ := dst.openCollection(TypeObject, 0)
	for _, m := range src.objectMembers(ref) {
		dst.AddMemberName(string(src.rawStringBytes(m.KeyRef)))
		dst.cloneValueInto(src, m.ValueRef)
	}
	dst.closeCollection(root)
	return root
}

func eqObject(v *Value, a, b Ref) bool {
	ma, mb := v.objectMembers(a), v.objectMembers(b)
	if len(ma) != len(mb) {
		return false
	}
	for _, x := range ma {
		found := false
		xname := string(v.rawStringBytes(x.KeyRef))
		for _, y := range mb {
			if string(v.rawStringBytes(y.KeyRef)) == xname {
				if !v.Eq(x.ValueRef, y.ValueRef) {
					return false
				}
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var referenceVTable = VTable{
	Size: func(v *Value, ref Ref) int { return 1 },
	Test: func(v *Value, ref Ref) bool { return v.Test(v.targetRef(ref)) },
	Len:  func(v *Value, ref Ref) int { return v.Len(v.targetRef(ref)) },
	AppendJSON: func(buf []byte, v *Value, ref Ref) []byte {
		return v.AppendJSON(buf, v.targetRef(ref))
	},
	Clone: func(dst *Stack, src *Value, ref Ref) Ref {
		r := src.resolve(ref)
		vt := src.vtableFor(src.cell(r).Type())
		if vt.Clone == nil {
			return dst.AddNull()
		}
		return vt.Clone(dst, src, r)
	},
}
