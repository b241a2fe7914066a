package zeck

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeckcodec/zeck/fib"
	"github.com/zeckcodec/zeck/internal/zlog"
)

// zeckHeaderSize is the fixed header width; the wire format has no
// framing beyond it — a container is exactly header+payload.
const zeckHeaderSize = 10

const zeckFormatVersion = 1

const (
	flagBigEndian    byte = 0b0000_0001
	flagReservedMask byte = 0b1111_1110
)

// Endianness names which byte order a BytesCodec payload was produced
// under.
type Endianness int

const (
	LittleEndian Endianness = iota
	BigEndian
)

func (e Endianness) String() string {
	if e == BigEndian {
		return "big"
	}
	return "little"
}

// ZeckFile is the parsed form of a serialized container: version,
// original size, endianness, and the raw BytesCodec payload.
type ZeckFile struct {
	Version      uint8
	OriginalSize uint64
	Endian       Endianness
	Payload      []byte
}

// String renders a ZeckFile for logs and test failure messages: version,
// sizes, endianness.
func (f *ZeckFile) String() string {
	return fmt.Sprintf("ZeckFile{version=%d, original_size=%d, payload_size=%d, endian=%s}",
		f.Version, f.OriginalSize, len(f.Payload), f.Endian)
}

// Wrap concatenates a 10-byte header in front of payload, recording
// originalSize and endian. originalSize is accepted as int64, mirroring
// the signed length Go's own len() would hand a caller; a negative value
// can't represent a real byte count and is rejected as DataSizeTooLarge
// rather than silently truncated into the header.
func Wrap(payload []byte, originalSize int64, endian Endianness) ([]byte, error) {
	if originalSize < 0 {
		return nil, ErrDataSizeTooLarge
	}
	out := make([]byte, zeckHeaderSize+len(payload))
	out[0] = zeckFormatVersion
	binary.LittleEndian.PutUint64(out[1:9], uint64(originalSize))
	var flags byte
	if endian == BigEndian {
		flags |= flagBigEndian
	}
	out[9] = flags
	copy(out[zeckHeaderSize:], payload)
	return out, nil
}

// Parse splits a serialized container into its header fields and payload.
func Parse(data []byte) (*ZeckFile, error) {
	if len(data) < zeckHeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrHeaderTooShort, len(data))
	}
	version := data[0]
	if version != zeckFormatVersion {
		return nil, fmt.Errorf("%w: got version %d", ErrUnsupportedVersion, version)
	}
	flags := data[9]
	if flags&flagReservedMask != 0 {
		return nil, fmt.Errorf("%w: flags=%#08b", ErrReservedFlagsSet, flags)
	}
	originalSize := binary.LittleEndian.Uint64(data[1:9])
	endian := LittleEndian
	if flags&flagBigEndian != 0 {
		endian = BigEndian
	}
	payload := make([]byte, len(data)-zeckHeaderSize)
	copy(payload, data[zeckHeaderSize:])

	if bound := maxPlausibleOriginalSize(len(payload)); originalSize > bound {
		zlog.L().Warn().
			Uint64("original_size", originalSize).
			Int("payload_len", len(payload)).
			Uint64("plausible_bound", bound).
			Msg("zeck: original_size far exceeds what this payload's bit length could decode to")
	}

	return &ZeckFile{
		Version:      version,
		OriginalSize: originalSize,
		Endian:       endian,
		Payload:      payload,
	}, nil
}

// log2Phi is log2 of the golden ratio: a Zeckendorf codeword needs
// roughly 1/log2Phi bits of code per bit of decoded value, since
// Fibonacci numbers grow like phi^n. maxPlausibleOriginalSize inverts
// that ratio to bound how large a value a given payload length could
// plausibly decode to.
var log2Phi = math.Log2(fib.Phi)

// maxPlausibleOriginalSize estimates, from a payload's byte length, the
// largest decoded value size (in bytes) that payload could plausibly
// produce, with generous slack. A declared original_size far above this
// bound doesn't make decoding fail — the value just gets zero-padded out
// to original_size bytes — but it's a signal of a corrupt or adversarial
// header, since a well-formed encoder never pads anywhere near this much.
func maxPlausibleOriginalSize(payloadLen int) uint64 {
	naturalBytes := uint64(float64(payloadLen)*8*log2Phi/8) + 1
	return 4*naturalBytes + 64
}

// ToBytes serializes f back into its wire form.
func (f *ZeckFile) ToBytes() ([]byte, error) {
	return Wrap(f.Payload, int64(f.OriginalSize), f.Endian)
}

// FromBytes is Parse as a constructor-style alias, pairing with ToBytes
// above under the wrap/parse/to_bytes/from_bytes naming the rest of this
// package uses.
func FromBytes(data []byte) (*ZeckFile, error) {
	return Parse(data)
}
