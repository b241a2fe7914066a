package zeckcode

// Bits is a sequence of 0/1 values representing a Fibonacci codeword or a
// packed payload, one bool per bit, index 0 first.
type Bits []bool

// Encode renders zl as its self-delimiting "use-skip" bit stream: bit i
// (0-indexed, EFI i) is set iff F(i+2) was used in the decomposition, the
// run stops at the highest used EFI, and one extra 1-bit is appended as
// terminator. Because Zeckendorf decompositions never use two adjacent
// Fibonacci numbers, the only place two consecutive 1-bits can appear is
// that terminator — which is exactly what makes the stream self-delimiting
// on decode.
//
// The empty ZIL (n=0) encodes to the empty bit stream; there is no
// Fibonacci term to mark a terminator after.
func Encode(zl ZIL) (Bits, error) {
	if len(zl) == 0 {
		return Bits{}, nil
	}
	ezl, err := ZLToEZL(zl)
	if err != nil {
		return nil, err
	}
	maxEFI := ezl[0]
	for _, e := range ezl {
		if e > maxEFI {
			maxEFI = e
		}
	}
	bits := make(Bits, maxEFI+2)
	for _, e := range ezl {
		bits[e] = true
	}
	bits[maxEFI+1] = true
	return bits, nil
}

// Decode is the inverse of Encode. It scans forward for the first pair of
// consecutive 1-bits, which by construction is the terminator; every 1-bit
// at or before that pair's first position is data, and every bit after the
// terminator must be the zero padding byte-packing introduces. A 1-bit
// found past the terminator means the tail is not padding — the stream was
// corrupted or was never a valid Fibonacci codeword — and is reported as
// ErrMalformedCode. Running out of bits without ever finding two
// consecutive 1s is ErrTruncatedCode.
//
// The empty bit stream decodes to the empty ZIL (n=0), the mirror image of
// Encode's special case.
func Decode(bits Bits) (ZIL, error) {
	if len(bits) == 0 {
		return ZIL{}, nil
	}
	for i := 0; i+1 < len(bits); i++ {
		if bits[i] && bits[i+1] {
			ezl := make(EZIL, 0, i/2+1)
			for j := i; j >= 0; j-- {
				if bits[j] {
					ezl = append(ezl, uint64(j))
				}
			}
			for k := i + 2; k < len(bits); k++ {
				if bits[k] {
					return nil, ErrMalformedCode
				}
			}
			return EZLToZL(ezl), nil
		}
	}
	return nil, ErrTruncatedCode
}

// Pack packs bits into bytes LSB-first: bit i lands at byte i/8, bit
// position i%8 within that byte. Any bits beyond the last full byte's
// worth are zero-padded.
func Pack(bits Bits) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// Unpack is the inverse of Pack: it expands b into len(b)*8 bits, LSB-first
// within each byte. The caller (the container/codec layer) is responsible
// for treating a Decode result's ErrTruncatedCode as meaningful — Unpack
// itself never trims trailing zero bits, since it doesn't know where the
// payload's real terminator is.
func Unpack(b []byte) Bits {
	bits := make(Bits, len(b)*8)
	for i := range bits {
		if b[i/8]&(1<<uint(i%8)) != 0 {
			bits[i] = true
		}
	}
	return bits
}
