// Package oper implements jitson's operator layer: IN, INTERSECT and
// INTERSECT_TEST, dispatched off the resolved type of their container
// operand the way the core package dispatches vtable calls off a
// cell's TypeID, plus a small set of supplemented comparison and cast
// helpers built the same way.
package oper

import (
	"github.com/sxegroup/jitson/jitson"
	"github.com/sxegroup/jitson/sortedarray"
)

// PredicateFunc implements a boolean operator (INTERSECT_TEST) for one
// dispatch type.
type PredicateFunc func(v *jitson.Value, a, b jitson.Ref) (bool, error)

// BuilderFunc implements an operator that constructs a new value
// (INTERSECT) for one dispatch type.
type BuilderFunc func(dst *jitson.Stack, v *jitson.Value, a, b jitson.Ref) (jitson.Ref, error)

// MembershipFunc implements IN for one dispatch type. IN never returns
// a raw bool: it builds its result onto dst as a jitson value (the
// boolean true, the found sub-value, or null for absent) the same way
// BuilderFunc does for INTERSECT.
type MembershipFunc func(dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error)

type key struct {
	op  string
	typ jitson.TypeID
}

// Registry dispatches a named operator to the implementation registered
// for its container operand's resolved type: IN, INTERSECT and
// INTERSECT_TEST are all keyed by (operator, dispatch-type).
type Registry struct {
	predicates  map[key]PredicateFunc
	builders    map[key]BuilderFunc
	memberships map[key]MembershipFunc
}

// NewRegistry returns a Registry with IN pre-registered for arrays,
// objects and strings, and INTERSECT/INTERSECT_TEST pre-registered for
// arrays.
func NewRegistry() *Registry {
	r := &Registry{
		predicates:  make(map[key]PredicateFunc),
		builders:    make(map[key]BuilderFunc),
		memberships: make(map[key]MembershipFunc),
	}
	r.RegisterMembership("IN", jitson.TypeArray, inArray)
	r.RegisterMembership("IN", jitson.TypeObject, inObject)
	r.RegisterMembership("IN", jitson.TypeString, inString)
	r.RegisterPredicate("INTERSECT_TEST", jitson.TypeArray, intersectTest)
	r.RegisterBuilder("INTERSECT", jitson.TypeArray, intersectBuild)
	return r
}

// RegisterPredicate adds or replaces the implementation of op for
// container values whose resolved type is typ.
func (r *Registry) RegisterPredicate(op string, typ jitson.TypeID, fn PredicateFunc) {
	r.predicates[key{op, typ}] = fn
}

// RegisterBuilder adds or replaces the implementation of op for
// container values whose resolved type is typ.
func (r *Registry) RegisterBuilder(op string, typ jitson.TypeID, fn BuilderFunc) {
	r.builders[key{op, typ}] = fn
}

// RegisterMembership adds or replaces the IN implementation for
// container values whose resolved type is typ.
func (r *Registry) RegisterMembership(op string, typ jitson.TypeID, fn MembershipFunc) {
	r.memberships[key{op, typ}] = fn
}

// Apply runs a predicate operator, dispatching on b's resolved type.
func (r *Registry) Apply(op string, v *jitson.Value, a, b jitson.Ref) (bool, error) {
	fn, ok := r.predicates[key{op, v.ResolvedType(b)}]
	if !ok {
		return false, jitson.ErrNoOverride
	}
	return fn(v, a, b)
}

// Build runs a builder operator, dispatching on a's resolved type (both
// operands of INTERSECT share the dispatch type by construction).
func (r *Registry) Build(op string, dst *jitson.Stack, v *jitson.Value, a, b jitson.Ref) (jitson.Ref, error) {
	fn, ok := r.builders[key{op, v.ResolvedType(a)}]
	if !ok {
		return jitson.NoRef, jitson.ErrNoOverride
	}
	return fn(dst, v, a, b)
}

// Membership runs IN, dispatching on container's resolved type (the
// right operand).
func (r *Registry) Membership(op string, dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error) {
	fn, ok := r.memberships[key{op, v.ResolvedType(container)}]
	if !ok {
		return jitson.NoRef, jitson.ErrNoOverride
	}
	return fn(dst, v, needle, container)
}

// DefaultRegistry is the package-level registry the free functions
// (In, Intersect, IntersectTest) consult.
var DefaultRegistry = NewRegistry()

// In builds, onto dst, the jitson value that IN(needle, container)
// evaluates to: true for a direct array/sorted-array match or a string
// substring hit, the containing sub-array or sub-object when needle is
// only found transitively nested inside one of container's elements,
// the matched member's value for an object container, or null when
// needle is not found at all. Never returns a raw bool.
func In(dst *jitson.Stack, v *jitson.Value, needle, container jitson.Ref) (jitson.Ref, error) {
	return DefaultRegistry.Membership("IN", dst, v, needle, container)
}

// Intersect builds, onto dst, a new sorted array holding the elements
// shared by left and right.
func Intersect(dst *jitson.Stack, v *jitson.Value, left, right jitson.Ref) (jitson.Ref, error) {
	return DefaultRegistry.Build("INTERSECT", dst, v, left, right)
}

// IntersectTest reports whether left and right share at least one
// element, without materialising the intersection.
func IntersectTest(v *jitson.Value, left, right jitson.Ref) (bool, error) {
	return DefaultRegistry.Apply("INTERSECT_TEST", v, left, right)
}

func sortClassFor(v *jitson.Value) *sortedarray.Class[jitson.Ref] {
	return &sortedarray.Class[jitson.Ref]{
		Compare:    func(a, b jitson.Ref) sortedarray.CompareResult { return sortedarray.CompareResult(v.Cmp(a, b)) },
		CmpCanFail: true,
	}
}

func collectElements(v *jitson.Value, ref jitson.Ref, n int) []jitson.Ref {
	out := make([]jitson.Ref, 0, n)
	for i := 0; i < n; i++ {
		e, ok := v.GetElement(ref, i)
		if !ok {
			break
		}
		out = append(out, e)
	}
	return out
}
