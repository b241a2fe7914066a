package zeckcode

import (
	"github.com/zeckcodec/zeck/fib"
	"github.com/zeckcodec/zeck/internal/bignat"
)

// BitCountForNumber returns the number of bits needed to represent n, i.e.
// 0 for n<=0 and floor(log2(n))+1 otherwise. Kept as a small standalone
// utility (mirrors the original's bit_count_for_number) because callers
// doing complexity/diagnostic work want it for plain machine integers
// without going through BigNat.
func BitCountForNumber(n int64) int {
	if n <= 0 {
		return 0
	}
	count := 0
	for n > 0 {
		n >>= 1
		count++
	}
	return count
}

// HighestOneBit returns the 0-indexed position of n's most significant set
// bit, or -1 if n is zero. Thin re-export of bignat's version so callers
// working purely in zeckcode's vocabulary don't need to import internal/bignat.
func HighestOneBit(n bignat.Nat) int {
	return n.HighestOneBit()
}

// MemoizedEffectiveFibonacci returns F(EFIToFI(efi)) = F(efi+2), i.e. the
// Fibonacci number at effective index efi, via the process-wide linear
// cache (EZIL decode/encode work through a contiguous low range of
// indices, where the dense cache wins over sparse fast-doubling).
func MemoizedEffectiveFibonacci(efi uint64) bignat.Nat {
	return fib.FibSlowIterativeMemo(EFIToFI(efi))
}

// AllOnesZeckendorfToBignat builds the BigNat whose canonical EZIL is
// exactly {0, 2, 4, ..., 2*(k-1)} — the "all ones" pattern used by the
// original's benchmark/plotting code to construct worst-case-length
// Zeckendorf inputs (every other effective index used, the densest
// non-adjacent pattern possible).
func AllOnesZeckendorfToBignat(k int) bignat.Nat {
	sum := bignat.FromUint64(0)
	for i := 0; i < k; i++ {
		sum = sum.Add(MemoizedEffectiveFibonacci(uint64(2 * i)))
	}
	return sum
}
