package zeckcode

import "errors"

// ErrOutOfRange is returned by FIToEFI when given an FI < 2. F(0)=0 and
// F(1)=1 (the same value as F(2)) never appear in the Zeckendorf
// decomposition of a positive integer, so EFI only needs to enumerate
// FI >= 2.
var ErrOutOfRange = errors.New("zeckcode: FI must be >= 2")

// ErrTruncatedCode is returned by Decode when the bit stream runs out
// before a "11" terminator is found.
var ErrTruncatedCode = errors.New("zeckcode: truncated code, no terminator found")

// ErrMalformedCode is returned by Decode when non-zero bits are found
// after the terminator — the only place two consecutive 1-bits can occur
// in a stream that actually obeys Zeckendorf non-adjacency up to the
// terminator is the terminator itself, so any 1-bit surviving past it
// means the tail that should be all-zero padding was corrupted.
var ErrMalformedCode = errors.New("zeckcode: malformed code, data after terminator")
