package zeck

import (
	"errors"

	"github.com/zeckcodec/zeck/zeckcode"
)

// Container-level sentinels. Functions that need to attach context wrap
// these with fmt.Errorf("%w: ...", ...) so errors.Is still matches.
var (
	ErrHeaderTooShort       = errors.New("zeck: container shorter than the 10-byte header")
	ErrUnsupportedVersion   = errors.New("zeck: unsupported header version")
	ErrReservedFlagsSet     = errors.New("zeck: reserved header flag bits set")
	ErrDataSizeTooLarge     = errors.New("zeck: original size does not fit in 64 bits")
	ErrCompressionFailed    = errors.New("zeck: best-of-two compression could not beat the original size")
	ErrDecompressedTooLarge = errors.New("zeck: decompressed value does not fit in the expected size")
)

// Bit-stream-level sentinels are defined in package zeckcode; re-exported
// here so callers of the root package's BytesCodec never need to import
// zeckcode directly just to errors.Is against them.
var (
	ErrTruncatedCode = zeckcode.ErrTruncatedCode
	ErrMalformedCode = zeckcode.ErrMalformedCode
	ErrOutOfRange    = zeckcode.ErrOutOfRange
)
