package main

import (
	"strconv"
	"strings"

	"github.com/sxegroup/jitson/jitson"
)

// navigate walks a dotted member/index path ("a.b.2.c") from v's root,
// treating a segment as an array index when it parses as an integer
// and as an object member name otherwise.
func navigate(v *jitson.Value, path string) (jitson.Ref, bool) {
	ref := v.Root()
	if path == "" {
		return ref, true
	}
	for _, seg := range strings.Split(path, ".") {
		if idx, err := strconv.Atoi(seg); err == nil {
			next, ok := v.GetElement(ref, idx)
			if !ok {
				return jitson.NoRef, false
			}
			ref = next
			continue
		}
		next, ok := v.GetMember(ref, seg)
		if !ok {
			return jitson.NoRef, false
		}
		ref = next
	}
	return ref, true
}
