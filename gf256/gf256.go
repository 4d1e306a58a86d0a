// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256)
// and a Reed-Solomon encoder over it.
package gf256

import "strconv"

// A Field represents an instance of GF(256) defined by a generator
// polynomial and a generator element α.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte
}

// NewField returns the field defined by the given polynomial and
// generator. The polynomial must be of degree 8 and irreducible over
// GF(2), and the generator must generate the multiplicative group.
// QR error correction uses NewField(0x11d, 2).
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: invalid generator: " + strconv.Itoa(α))
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	if x != 1 {
		panic("gf256: reducible polynomial: " + strconv.Itoa(poly))
	}
	f.log[0] = 255
	return &f
}

// mul multiplies x and y modulo the polynomial poly over GF(2).
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// Add returns the sum of x and y.
func (f *Field) Add(x, y byte) byte { return x ^ y }

// Exp returns α**e.
func (f *Field) Exp(e int) byte { return f.exp[e%255] }

// Log returns log base α of x. It panics if x == 0.
func (f *Field) Log(x byte) byte {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return f.log[x]
}

// Mul returns the product of x and y.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// Inv returns the multiplicative inverse of x. It panics if x == 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		panic("gf256: inverse of zero")
	}
	return f.exp[255-int(f.log[x])]
}

// An RSEncoder implements Reed-Solomon encoding over a field,
// producing a fixed number of check bytes per message.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial, monic, highest degree first
	p   []byte // scratch
}

// NewRSEncoder returns an encoder generating c check bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	// gen = ∏ (x - α**i) for i in 0..c-1
	gen := []byte{1}
	for i := 0; i < c; i++ {
		root := f.Exp(i)
		next := make([]byte, len(gen)+1)
		for j, g := range gen {
			next[j] ^= g
			next[j+1] ^= f.Mul(g, root)
		}
		gen = next
	}
	return &RSEncoder{f: f, c: c, gen: gen}
}

// ECC writes the error correction bytes for data into check.
// The check slice must hold c bytes.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) < rs.c {
		panic("gf256: invalid check byte length")
	}
	if rs.c == 0 {
		return
	}

	// Polynomial long division of data·x**c by gen.
	n := len(data) + rs.c
	p := rs.p
	if len(p) < n {
		p = make([]byte, n)
		rs.p = p
	}
	p = p[:n]
	copy(p, data)
	for i := len(data); i < n; i++ {
		p[i] = 0
	}
	for i := 0; i < len(data); i++ {
		c := p[i]
		if c == 0 {
			continue
		}
		for j, g := range rs.gen {
			p[i+j] ^= rs.f.Mul(c, g)
		}
	}
	copy(check, p[len(data):])
}
