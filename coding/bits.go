// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Bits is an append-only bit string, most significant bit first
// within each byte.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns an empty bit string with capacity for a full code
// of the given version.
func NewBits(v Version) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].words)}
}

// Bits returns the length of the bit string.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bit string as bytes.
// It panics if the length is not a multiple of 8.
func (b *Bits) Bytes() []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	return b.b
}

// Reset truncates the bit string to zero length.
func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Write appends the low nbit bits of v, most significant first.
func (b *Bits) Write(v uint, nbit int) {
	for nbit > 0 {
		n := nbit
		if n > 8 {
			n = 8
		}
		if b.nbit%8 == 0 {
			b.b = append(b.b, 0)
		} else {
			m := -b.nbit & 7
			if n > m {
				n = m
			}
		}
		b.nbit += n
		sh := uint(nbit - n)
		b.b[len(b.b)-1] |= uint8(v >> sh << uint(-b.nbit&7))
		nbit -= n
	}
}

// Add extends the bit string by n zero bytes and returns the added
// bytes. It panics if the length is not a multiple of 8.
func (b *Bits) Add(n int) []byte {
	if b.nbit%8 != 0 {
		panic("qr: fractional byte")
	}
	start := len(b.b)
	b.b = append(b.b, make([]byte, n)...)
	b.nbit = 8 * len(b.b)
	return b.b[start:]
}

// PadTo appends up to four zero terminator bits, zero-fills to a
// byte boundary and adds alternating pad codewords until the bit
// string is n bits long. n must be a multiple of 8.
func (b *Bits) PadTo(n int) {
	if b.nbit > n {
		panic("qr: too much data")
	}
	if b.nbit += 4; b.nbit > n {
		b.nbit = n
	}
	b.nbit = (b.nbit + 7) &^ 7
	for len(b.b)*8 < b.nbit {
		b.b = append(b.b, 0)
	}
	for pad := byte(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.b = append(b.b, pad)
		b.nbit += 8
	}
}

// A BitStream reads a byte slice bit by bit, most significant bit
// of each byte first. Reads past the end yield zero bits.
type BitStream struct {
	b   []byte
	pos int
}

// NewBitStream returns a BitStream reading b.
func NewBitStream(b []byte) BitStream { return BitStream{b: b} }

// Next returns the next bit.
func (s *BitStream) Next() byte {
	var b byte
	if i := s.pos >> 3; i < len(s.b) {
		b = s.b[i] >> (7 &^ s.pos) & 1
		s.pos++
	}
	return b
}
