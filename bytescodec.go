// Package zeck is the root of the Zeckendorf codec: BytesCodec (this
// file), the ZeckFile container (zeckfile.go), and the sentinel error
// taxonomy (errors.go), built on package zeckcode and package fib below
// it.
package zeck

import (
	"fmt"

	"github.com/zeckcodec/zeck/internal/bignat"
	"github.com/zeckcodec/zeck/zeckcode"
)

// EncodeBE interprets data as a big-endian unsigned integer and returns its
// Zeckendorf bit-packed payload. Zero (including empty input) encodes to
// the empty payload.
func EncodeBE(data []byte) []byte {
	return encode(bignat.FromBytesBE(data))
}

// EncodeLE is EncodeBE's little-endian counterpart.
func EncodeLE(data []byte) []byte {
	return encode(bignat.FromBytesLE(data))
}

func encode(n bignat.Nat) []byte {
	zl := zeckcode.Decompose(n)
	bits, err := zeckcode.Encode(zl)
	if err != nil {
		// Decompose only ever emits FI >= 2, so Encode (whose only error
		// path is an out-of-range FI) cannot fail on a ZIL it produced.
		panic(fmt.Sprintf("zeck: internal invariant broken: %v", err))
	}
	return zeckcode.Pack(bits)
}

// DecodeBE is EncodeBE's inverse: it renders payload back to exactly
// expectedOriginalSize bytes, big-endian. It fails with ErrTruncatedCode
// or ErrMalformedCode if payload's bit stream is ill-formed, and with
// ErrDecompressedTooLarge if the recomposed value doesn't fit in
// expectedOriginalSize bytes.
func DecodeBE(payload []byte, expectedOriginalSize int) ([]byte, error) {
	n, err := decode(payload)
	if err != nil {
		return nil, err
	}
	out, err := n.ToBytesBE(expectedOriginalSize)
	if err != nil {
		return nil, fmt.Errorf("%w: want %d bytes, have %s", ErrDecompressedTooLarge, expectedOriginalSize, n)
	}
	return out, nil
}

// DecodeLE is DecodeBE's little-endian counterpart.
func DecodeLE(payload []byte, expectedOriginalSize int) ([]byte, error) {
	n, err := decode(payload)
	if err != nil {
		return nil, err
	}
	out, err := n.ToBytesLE(expectedOriginalSize)
	if err != nil {
		return nil, fmt.Errorf("%w: want %d bytes, have %s", ErrDecompressedTooLarge, expectedOriginalSize, n)
	}
	return out, nil
}

func decode(payload []byte) (bignat.Nat, error) {
	bits := zeckcode.Unpack(payload)
	zl, err := zeckcode.Decode(bits)
	if err != nil {
		return bignat.Nat{}, err
	}
	n, err := zeckcode.Recompose(zl)
	if err != nil {
		// Decode only ever emits FI >= 2 (via EFIToFI, which can't
		// underflow), so Recompose's only error path is unreachable here.
		panic(fmt.Sprintf("zeck: internal invariant broken: %v", err))
	}
	return n, nil
}

// CompressKind names which variant CompressBest returned.
type CompressKind int

const (
	// Neither means neither endianness's container beat the input size.
	Neither CompressKind = iota
	// BigEndianBest means the big-endian container was chosen.
	BigEndianBest
	// LittleEndianBest means the little-endian container was chosen.
	LittleEndianBest
)

// CompressResult is compress_best's tagged result: exactly one of
// BigEndianBest/LittleEndianBest/Neither per spec, modeled here as a
// Kind discriminant plus the fields relevant to that kind (Payload is
// empty for Neither; BESize/LESize are the container sizes — payload
// length plus the 10-byte header — under each endianness, always both
// populated for diagnostics).
type CompressResult struct {
	Kind    CompressKind
	Payload []byte
	Endian  Endianness
	BESize  int
	LESize  int
}

// CompressBest encodes data under both endiannesses and picks whichever
// yields the smaller container (header included), preferring BE on a
// tie. "Smaller than input" is judged against the container size, not
// the bare payload size.
func CompressBest(data []byte) CompressResult {
	bePayload := EncodeBE(data)
	lePayload := EncodeLE(data)
	beSize := zeckHeaderSize + len(bePayload)
	leSize := zeckHeaderSize + len(lePayload)

	beOK := beSize < len(data)
	leOK := leSize < len(data)

	switch {
	case beOK && leOK:
		if beSize <= leSize {
			return CompressResult{Kind: BigEndianBest, Payload: bePayload, Endian: BigEndian, BESize: beSize, LESize: leSize}
		}
		return CompressResult{Kind: LittleEndianBest, Payload: lePayload, Endian: LittleEndian, BESize: beSize, LESize: leSize}
	case beOK:
		return CompressResult{Kind: BigEndianBest, Payload: bePayload, Endian: BigEndian, BESize: beSize, LESize: leSize}
	case leOK:
		return CompressResult{Kind: LittleEndianBest, Payload: lePayload, Endian: LittleEndian, BESize: beSize, LESize: leSize}
	default:
		return CompressResult{Kind: Neither, BESize: beSize, LESize: leSize}
	}
}

// Compress is the end-to-end convenience path: best-of-two encode, then
// wrap in a ZeckFile container. It fails with ErrCompressionFailed when
// neither endianness beats the original size.
func Compress(data []byte) ([]byte, error) {
	result := CompressBest(data)
	if result.Kind == Neither {
		return nil, ErrCompressionFailed
	}
	return Wrap(result.Payload, int64(len(data)), result.Endian)
}

// Decompress is Compress's inverse: parse the container, then decode its
// payload under the endianness its flags record.
func Decompress(container []byte) ([]byte, error) {
	f, err := Parse(container)
	if err != nil {
		return nil, err
	}
	if f.Endian == BigEndian {
		return DecodeBE(f.Payload, int(f.OriginalSize))
	}
	return DecodeLE(f.Payload, int(f.OriginalSize))
}
