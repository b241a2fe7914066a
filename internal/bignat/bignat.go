// Package bignat provides the arbitrary-precision non-negative integer type
// the rest of the codec is built on. It is a thin, invariant-preserving
// wrapper around math/big.Int: canonical by construction, never negative,
// with the exact fixed-width/endianness byte conversions the Zeckendorf
// codec needs that math/big does not provide directly.
package bignat

import (
	"errors"
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// ErrDoesNotFit is returned by ToBytesBE/ToBytesLE when the value does not
// fit in the requested number of bytes.
var ErrDoesNotFit = errors.New("bignat: value does not fit in requested byte width")

// fftThreshold is the operand bit-length above which Multiply dispatches to
// bigfft's FFT-based multiplication instead of math/big's schoolbook/Karatsuba
// multiply. Below this size FFT setup cost dominates; bigfft itself only pays
// off on large operands.
const fftThreshold = 1 << 15 // bits, 1024 32-bit words

// Nat is a non-negative arbitrary-precision integer. The zero value is 0.
type Nat struct {
	v big.Int
}

// Zero returns the additive identity.
func Zero() Nat {
	return Nat{}
}

// FromUint64 builds a Nat from a uint64.
func FromUint64(x uint64) Nat {
	var n Nat
	n.v.SetUint64(x)
	return n
}

// FromBytesBE parses b as an unsigned big-endian integer. Empty input is 0.
func FromBytesBE(b []byte) Nat {
	var n Nat
	n.v.SetBytes(b)
	return n
}

// FromBytesLE parses b as an unsigned little-endian integer. Empty input is 0.
func FromBytesLE(b []byte) Nat {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	var n Nat
	n.v.SetBytes(rev)
	return n
}

// ToBytesBE renders n as exactly size big-endian bytes, left-padded with
// zeroes. It fails with ErrDoesNotFit if n does not fit in size bytes.
func (n Nat) ToBytesBE(size int) ([]byte, error) {
	raw := n.v.Bytes()
	if len(raw) > size {
		return nil, ErrDoesNotFit
	}
	out := make([]byte, size)
	copy(out[size-len(raw):], raw)
	return out, nil
}

// ToBytesLE renders n as exactly size little-endian bytes, right-padded with
// zeroes. It fails with ErrDoesNotFit if n does not fit in size bytes.
func (n Nat) ToBytesLE(size int) ([]byte, error) {
	raw := n.v.Bytes() // big-endian
	if len(raw) > size {
		return nil, ErrDoesNotFit
	}
	out := make([]byte, size)
	for i, c := range raw {
		out[len(raw)-1-i] = c
	}
	return out, nil
}

// BitLen returns the smallest k such that n < 2^k. BitLen of 0 is 0.
func (n Nat) BitLen() int {
	return n.v.BitLen()
}

// Bit returns the i-th bit of n as 0 or 1.
func (n Nat) Bit(i int) uint {
	return n.v.Bit(i)
}

// HighestOneBit returns the 0-indexed position of the most significant set
// bit. It is undefined (returns -1) for zero.
func (n Nat) HighestOneBit() int {
	bl := n.v.BitLen()
	if bl == 0 {
		return -1
	}
	return bl - 1
}

// IsZero reports whether n is the additive identity.
func (n Nat) IsZero() bool {
	return n.v.Sign() == 0
}

// Cmp compares n and o: -1 if n<o, 0 if equal, 1 if n>o.
func (n Nat) Cmp(o Nat) int {
	return n.v.Cmp(&o.v)
}

// Add returns n+o.
func (n Nat) Add(o Nat) Nat {
	var r Nat
	r.v.Add(&n.v, &o.v)
	return r
}

// Sub returns n-o. Callers guarantee n>=o; the result is undefined otherwise
// (matches spec: "callers guarantee non-underflow").
func (n Nat) Sub(o Nat) Nat {
	var r Nat
	r.v.Sub(&n.v, &o.v)
	return r
}

// Mul returns n*o, dispatching to FFT multiplication for large operands.
func (n Nat) Mul(o Nat) Nat {
	var r Nat
	if n.v.BitLen() >= fftThreshold && o.v.BitLen() >= fftThreshold {
		r.v = *bigfft.Mul(&n.v, &o.v)
		return r
	}
	r.v.Mul(&n.v, &o.v)
	return r
}

// Double returns n*2 via a left shift.
func (n Nat) Double() Nat {
	var r Nat
	r.v.Lsh(&n.v, 1)
	return r
}

// Halve returns n/2 (floor) via a right shift.
func (n Nat) Halve() Nat {
	var r Nat
	r.v.Rsh(&n.v, 1)
	return r
}

// String renders n in base 10, for logging and test failure messages.
func (n Nat) String() string {
	return n.v.String()
}
