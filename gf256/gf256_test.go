// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var f = NewField(0x11d, 2)

// slowMul is bitwise carry-less multiplication modulo the field
// polynomial, independent of the log tables.
func slowMul(x, y byte) byte {
	var z, p = 0, int(y)
	for v := int(x); v > 0; v >>= 1 {
		if v&1 != 0 {
			z ^= p
		}
		p <<= 1
		if p&0x100 != 0 {
			p ^= 0x11d
		}
	}
	return byte(z)
}

func TestFieldTables(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 255; i++ {
		x := f.Exp(i)
		require.False(t, seen[x], "α**%d repeats", i)
		seen[x] = true
		assert.EqualValues(t, i, f.Log(x))
	}
	assert.False(t, seen[0], "zero is not a power of α")
}

func TestMul(t *testing.T) {
	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 5 {
			assert.Equal(t, slowMul(byte(x), byte(y)),
				f.Mul(byte(x), byte(y)), "%d*%d", x, y)
		}
	}
}

func TestInv(t *testing.T) {
	for x := 1; x < 256; x++ {
		assert.EqualValues(t, 1, f.Mul(byte(x), f.Inv(byte(x))))
	}
	assert.Panics(t, func() { f.Inv(0) })
	assert.Panics(t, func() { f.Log(0) })
}

func TestGenPoly(t *testing.T) {
	// (x - α**0)(x - α**1) = x² + 3x + 2
	rs := NewRSEncoder(f, 2)
	assert.Equal(t, []byte{1, 3, 2}, rs.gen)
}

func TestECC(t *testing.T) {
	// "HELLO WORLD" alphanumeric data codewords at 13 data, 13
	// check bytes, against the published worked example.
	data := []byte{
		32, 91, 11, 120, 209, 114, 220, 77, 67, 64, 236, 17, 236,
	}
	want := []byte{
		168, 72, 22, 82, 217, 54, 156, 0, 46, 15, 180, 122, 16,
	}
	check := make([]byte, 13)
	NewRSEncoder(f, 13).ECC(data, check)
	assert.Equal(t, want, check)

	// Appending the check bytes makes the whole codeword sequence
	// evaluate to zero at every root of the generator.
	whole := append(append([]byte{}, data...), check...)
	for i := 0; i < 13; i++ {
		root := f.Exp(i)
		var v byte
		for _, c := range whole {
			v = f.Mul(v, root) ^ c
		}
		assert.EqualValues(t, 0, v, "root α**%d", i)
	}
}

func TestBadField(t *testing.T) {
	assert.Panics(t, func() { NewField(0x1d, 2) })
	assert.Panics(t, func() { NewField(0x11c, 2) }) // x is a factor
}
