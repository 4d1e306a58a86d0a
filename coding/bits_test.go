// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsWrite(t *testing.T) {
	var b Bits
	b.Write(0b101, 3)
	assert.Equal(t, 3, b.Bits())
	b.Write(0, 1)
	b.Write(0xabcd, 16)
	assert.Equal(t, 20, b.Bits())
	b.Write(0xf, 4)
	assert.Equal(t, []byte{0xaa, 0xbc, 0xdf}, b.Bytes())

	b.Reset()
	b.Write(0x1ffff, 17) // wider than a byte at once
	b.Write(0, 7)
	assert.Equal(t, []byte{0xff, 0xff, 0x80}, b.Bytes())
}

func TestBitsPad(t *testing.T) {
	var b Bits
	b.Write(0b10101, 5)
	b.PadTo(32)
	assert.Equal(t, []byte{0xa8, 0x00, 0xec, 0x11}, b.Bytes())

	// no terminator when the message fills the capacity
	b.Reset()
	b.Write(0xffff, 16)
	b.PadTo(16)
	assert.Equal(t, []byte{0xff, 0xff}, b.Bytes())

	// truncated terminator
	b.Reset()
	b.Write(0x3fff, 14)
	b.PadTo(16)
	assert.Equal(t, []byte{0xff, 0xfc}, b.Bytes())
}

func TestBitsAdd(t *testing.T) {
	var b Bits
	b.Write(0xab, 8)
	p := b.Add(2)
	assert.Len(t, p, 2)
	p[0], p[1] = 1, 2
	assert.Equal(t, []byte{0xab, 1, 2}, b.Bytes())
	assert.Equal(t, 24, b.Bits())
}

func TestBitStream(t *testing.T) {
	s := NewBitStream([]byte{0xa5})
	var got []byte
	for i := 0; i < 12; i++ {
		got = append(got, s.Next())
	}
	// reads past the end yield zero bits
	assert.Equal(t,
		[]byte{1, 0, 1, 0, 0, 1, 0, 1, 0, 0, 0, 0}, got)
}
