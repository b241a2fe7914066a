package zeckcode

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeckcodec/zeck/internal/bignat"
)

func TestEncodeTwelve(t *testing.T) {
	// ZIL [6,4,2] -> EZIL ascending [0,2,4] -> bits 1,0,1,0,1,1.
	bits, err := Encode(ZIL{6, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, Bits{true, false, true, false, true, true}, bits)
}

func TestEncodeEmptyZIL(t *testing.T) {
	bits, err := Encode(ZIL{})
	require.NoError(t, err)
	assert.Empty(t, bits)
}

func TestDecodeEmptyBits(t *testing.T) {
	zl, err := Decode(Bits{})
	require.NoError(t, err)
	assert.Empty(t, zl)
}

func TestDecodeTruncated(t *testing.T) {
	// Ends in ...10, never reaches a "11" terminator.
	_, err := Decode(Bits{true, false, true, false})
	require.ErrorIs(t, err, ErrTruncatedCode)
}

func TestDecodeMalformedTrailingOne(t *testing.T) {
	bits, err := Encode(ZIL{6, 4, 2})
	require.NoError(t, err)
	bits = append(bits, true) // garbage 1-bit after the terminator
	_, err = Decode(bits)
	require.ErrorIs(t, err, ErrMalformedCode)
}

func TestDecodeToleratesZeroPaddingAfterTerminator(t *testing.T) {
	bits, err := Encode(ZIL{6, 4, 2})
	require.NoError(t, err)
	padded := append(append(Bits{}, bits...), false, false, false)
	zl, err := Decode(padded)
	require.NoError(t, err)
	assert.Equal(t, ZIL{6, 4, 2}, zl)
}

// TestEncodeDecodeRoundTrip checks self-delimitation (the encoded stream
// ends in "11" with no other adjacent 1-bit pair) and that Decode inverts
// Encode for every value's Zeckendorf decomposition.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		n := bignat.FromUint64(x)
		zl := Decompose(n)
		bits, err := Encode(zl)
		if err != nil {
			return false
		}
		if len(bits) > 0 {
			// Self-delimitation: ends in 11, and that's the only adjacent pair.
			if !bits[len(bits)-2] || !bits[len(bits)-1] {
				return false
			}
			for i := 0; i+1 < len(bits)-1; i++ {
				if bits[i] && bits[i+1] {
					return false
				}
			}
		}
		got, err := Decode(bits)
		if err != nil {
			return false
		}
		sum, err := Recompose(got)
		if err != nil {
			return false
		}
		return sum.Cmp(n) == 0
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 2000}))
}

func FuzzEncodeDecode(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(12))
	f.Add(uint64(256))
	f.Fuzz(func(t *testing.T, x uint64) {
		n := bignat.FromUint64(x)
		zl := Decompose(n)
		bits, err := Encode(zl)
		require.NoError(t, err)
		got, err := Decode(bits)
		require.NoError(t, err)
		sum, err := Recompose(got)
		require.NoError(t, err)
		require.Zero(t, sum.Cmp(n))
	})
}

func TestPackUnpackLSBFirst(t *testing.T) {
	// bits 1,0,1,0,1,1 pack LSB-first to 0b00110101 = 0x35.
	bits := Bits{true, false, true, false, true, true}
	packed := Pack(bits)
	require.Equal(t, []byte{0x35}, packed)

	unpacked := Unpack(packed)
	require.Equal(t, Bits{true, false, true, false, true, true, false, false}, unpacked)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	condition := func(x uint64) bool {
		n := bignat.FromUint64(x)
		zl := Decompose(n)
		bits, err := Encode(zl)
		if err != nil {
			return false
		}
		packed := Pack(bits)
		unpacked := Unpack(packed)
		got, err := Decode(unpacked)
		if err != nil {
			return false
		}
		sum, err := Recompose(got)
		if err != nil {
			return false
		}
		return sum.Cmp(n) == 0
	}
	require.NoError(t, quick.Check(condition, &quick.Config{MaxCount: 2000}))
}
