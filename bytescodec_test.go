package zeck

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBESingleByteTwelve(t *testing.T) {
	payload := EncodeBE([]byte{12})
	require.Equal(t, []byte{0x35}, payload)

	out, err := DecodeBE(payload, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{12}, out)
}

func TestEncodeDecodeEmptyInput(t *testing.T) {
	payload := EncodeBE(nil)
	assert.Empty(t, payload)

	out, err := DecodeBE(payload, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncodeDecodeZeroByte(t *testing.T) {
	payload := EncodeBE([]byte{0x00})
	assert.Empty(t, payload)

	out, err := DecodeBE(payload, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, out)
}

func TestDecodeBEDecompressedTooLarge(t *testing.T) {
	payload := EncodeBE([]byte{0xff, 0xff})
	_, err := DecodeBE(payload, 1)
	require.ErrorIs(t, err, ErrDecompressedTooLarge)
}

// TestRoundTripBE checks that EncodeBE/DecodeBE round-trip arbitrary byte
// slices back to their original value given the correct original size.
func TestRoundTripBE(t *testing.T) {
	condition := func(b []byte) bool {
		payload := EncodeBE(b)
		out, err := DecodeBE(payload, len(b))
		if err != nil {
			return false
		}
		if len(b) == 0 && len(out) == 0 {
			return true
		}
		return assert.ObjectsAreEqual(b, out)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 500}))
}

// TestRoundTripLE is TestRoundTripBE's little-endian counterpart.
func TestRoundTripLE(t *testing.T) {
	condition := func(b []byte) bool {
		payload := EncodeLE(b)
		out, err := DecodeLE(payload, len(b))
		if err != nil {
			return false
		}
		if len(b) == 0 && len(out) == 0 {
			return true
		}
		return assert.ObjectsAreEqual(b, out)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 500}))
}

func FuzzEncodeDecodeBE(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{12})
	f.Add([]byte{0x01, 0x00})
	f.Fuzz(func(t *testing.T, b []byte) {
		payload := EncodeBE(b)
		out, err := DecodeBE(payload, len(b))
		require.NoError(t, err)
		require.Equal(t, b, out)
	})
}

func FuzzEncodeDecodeLE(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{12})
	f.Add([]byte{0x01, 0x00})
	f.Fuzz(func(t *testing.T, b []byte) {
		payload := EncodeLE(b)
		out, err := DecodeLE(payload, len(b))
		require.NoError(t, err)
		require.Equal(t, b, out)
	})
}

// TestCompressBestNeitherOnTwoByteInput checks a 2-byte input where
// neither endianness's container beats the original size.
func TestCompressBestNeitherOnTwoByteInput(t *testing.T) {
	result := CompressBest([]byte{0x01, 0x00})
	assert.Equal(t, Neither, result.Kind)
}

// TestCompressBestSoundness checks that CompressBest's Kind always matches
// which encoding (if either) actually produced a smaller container.
func TestCompressBestSoundness(t *testing.T) {
	condition := func(b []byte) bool {
		result := CompressBest(b)
		beSize := zeckHeaderSize + len(EncodeBE(b))
		leSize := zeckHeaderSize + len(EncodeLE(b))
		bothFail := beSize >= len(b) && leSize >= len(b)
		if bothFail {
			return result.Kind == Neither
		}
		if result.Kind == Neither {
			return false
		}
		if beSize <= leSize {
			return result.Kind == BigEndianBest
		}
		return result.Kind == LittleEndianBest
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 500}))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	condition := func(b []byte) bool {
		container, err := Compress(b)
		if err != nil {
			// Only acceptable when compress_best genuinely found Neither.
			result := CompressBest(b)
			return result.Kind == Neither
		}
		out, err := Decompress(container)
		if err != nil {
			return false
		}
		return assert.ObjectsAreEqual(b, out)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 500}))
}
