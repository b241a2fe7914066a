// Package fib computes Fibonacci numbers as arbitrary-precision integers,
// via three observationally-equivalent algorithms. The decomposition loop
// in package zeckcode is the hot caller: it queries F(i) for a descending
// run of indices, so the linear cache amortizes well there after a single
// warm-up, at the cost of memory proportional to the highest FI ever
// reached.
package fib

import (
	"math"

	"github.com/zeckcodec/zeck/internal/bignat"
)

// Nat is the BigNat type the rest of the codec uses; aliased here so
// callers of package fib never need to import internal/bignat directly.
type Nat = bignat.Nat

// Phi is the golden ratio, used only off the correctness-critical path
// (the container parser's plausibility estimate for original_size).
var Phi = (1 + math.Sqrt(5)) / 2

// Phi2 is Phi squared.
var Phi2 = Phi * Phi

var (
	defaultLinear = NewLinearCache()
	defaultMemo   = NewMemoFastDoubling()
)

// FibSlowIterativeMemo returns F(n) using the process-wide dense linear
// cache, extending it as needed.
func FibSlowIterativeMemo(n uint64) Nat {
	return defaultLinear.F(n)
}

// FibFastDoubling returns F(n) using the cacheless fast-doubling recurrence.
func FibFastDoubling(n uint64) Nat {
	fk, _ := FastDoublingPair(n)
	return fk
}

// FibFastDoublingMemo returns F(n) using fast doubling backed by the
// process-wide sparse cache.
func FibFastDoublingMemo(n uint64) Nat {
	return defaultMemo.F(n)
}
