package fib

import "github.com/zeckcodec/zeck/internal/bignat"

// FastDoublingPair returns (F(n), F(n+1)) using the identities
// F(2k) = F(k)*(2*F(k+1)-F(k)) and F(2k+1) = F(k)^2+F(k+1)^2. Returning the
// pair lets the recursion avoid recomputing F(k+1) at each level: each
// call needs F(k+1) to compute both F(2k) and F(2k+1), so computing it
// once per level and threading it back up saves a second recursive
// descent for the same value.
func FastDoublingPair(n uint64) (fn, fn1 Nat) {
	if n == 0 {
		return bignat.FromUint64(0), bignat.FromUint64(1)
	}
	a, b := FastDoublingPair(n / 2)
	twoB := b.Double()
	t := twoB.Sub(a)
	c := a.Mul(t)               // F(2k)
	d := a.Mul(a).Add(b.Mul(b)) // F(2k+1)
	if n%2 == 0 {
		return c, d
	}
	return d, c.Add(d)
}
