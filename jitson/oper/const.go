package oper

import "math"

// DefaultConsts is a ready-made identifier table for
// jitson.Options.Consts, covering the handful of named numeric
// constants a configuration-style document typically wants. The
// AllowConsts hook leaves the table itself up to the caller.
var DefaultConsts = map[string]float64{
	"pi":       math.Pi,
	"e":        math.E,
	"sqrt2":    math.Sqrt2,
	"max_uint": math.MaxUint32,
	"inf":      math.Inf(1),
}
