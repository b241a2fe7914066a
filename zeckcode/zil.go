package zeckcode

import (
	"github.com/zeckcodec/zeck/fib"
	"github.com/zeckcodec/zeck/internal/bignat"
)

// ZIL is a Zeckendorf Index List: the Fibonacci indices used in a number's
// canonical Zeckendorf decomposition, each >= 2, strictly descending, with
// no two adjacent (the Zeckendorf non-adjacency invariant).
type ZIL []uint64

// EZIL is the Effective Zeckendorf Index List: ZIL shifted down by 2
// (EFI = FI - 2), so the smallest usable Fibonacci index starts at 0. This
// is the indexing the bit stream in bitstream.go actually uses, since a
// bit position can't be negative and FI starts at 2, not 0.
type EZIL []uint64

// FIToEFI converts a single Fibonacci index to its effective index,
// rejecting FI < 2 — F(0)=0 and F(1)=1 both participate in no Zeckendorf
// decomposition of a positive integer, so they're excluded from the start.
func FIToEFI(fi uint64) (uint64, error) {
	if fi < 2 {
		return 0, ErrOutOfRange
	}
	return fi - 2, nil
}

// EFIToFI converts an effective index back to a Fibonacci index. Every
// uint64 EFI has a valid FI, so this never fails.
func EFIToFI(efi uint64) uint64 {
	return efi + 2
}

// ZLToEZL converts a ZIL to an EZIL, preserving order.
func ZLToEZL(zl ZIL) (EZIL, error) {
	ezl := make(EZIL, len(zl))
	for i, fi := range zl {
		efi, err := FIToEFI(fi)
		if err != nil {
			return nil, err
		}
		ezl[i] = efi
	}
	return ezl, nil
}

// EZLToZL converts an EZIL back to a ZIL, preserving order.
func EZLToZL(ezl EZIL) ZIL {
	zl := make(ZIL, len(ezl))
	for i, efi := range ezl {
		zl[i] = EFIToFI(efi)
	}
	return zl
}

// largestFibIndexLE finds the largest FI such that F(FI) <= remaining,
// by exponential search for an upper bound followed by binary search —
// the decomposition loop below calls this once per term, and remaining
// can be arbitrarily large, so a unary walk up from FI=2 isn't an option.
func largestFibIndexLE(remaining bignat.Nat) uint64 {
	lo, hi := uint64(2), uint64(2)
	for fib.FibSlowIterativeMemo(hi).Cmp(remaining) <= 0 {
		lo = hi
		if hi > 1<<62 {
			break
		}
		hi *= 2
	}
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if fib.FibSlowIterativeMemo(mid).Cmp(remaining) <= 0 {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Decompose computes the canonical ZIL of n via greedy descent: repeatedly
// subtract the largest Fibonacci number not exceeding what remains. This is
// the algorithm proven (Zeckendorf's theorem) to always land on the unique
// non-adjacent representation, and it mirrors the original's
// memoized_zeckendorf_list_descending_for_bigint loop.
func Decompose(n bignat.Nat) ZIL {
	zero := bignat.FromUint64(0)
	if n.Cmp(zero) == 0 {
		return ZIL{}
	}
	var zl ZIL
	remaining := n
	for remaining.Cmp(zero) != 0 {
		fi := largestFibIndexLE(remaining)
		zl = append(zl, fi)
		remaining = remaining.Sub(fib.FibSlowIterativeMemo(fi))
	}
	return zl
}

// DecomposeU64 is a convenience wrapper for plain machine integers, useful
// to callers who never need BigNat at all.
func DecomposeU64(n uint64) ZIL {
	return Decompose(bignat.FromUint64(n))
}

// Recompose sums the Fibonacci numbers named by zl, the inverse of
// Decompose. It does not itself enforce the non-adjacency invariant —
// callers that need to validate an externally-supplied ZIL should do so
// before calling Recompose; a ZIL with adjacent or repeated indices still
// sums to a well-defined (if non-canonical) value.
func Recompose(zl ZIL) (bignat.Nat, error) {
	sum := bignat.FromUint64(0)
	for _, fi := range zl {
		if fi < 2 {
			return bignat.Nat{}, ErrOutOfRange
		}
		sum = sum.Add(fib.FibSlowIterativeMemo(fi))
	}
	return sum, nil
}
