// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/qrforge/qrgen/gf256"

// Field is the Galois field of QR error correction.
var Field = gf256.NewField(0x11d, 2)

// AddCheckBytes splits the data codewords in b into the error
// correction blocks of the given version and level and appends the
// check codewords of every block. b must hold exactly the data
// capacity of the version and level.
func (b *Bits) AddCheckBytes(v Version, l Level) {
	nd := v.DataBytes(l)
	if b.nbit != nd*8 {
		panic("qr: interleave of unpadded data")
	}
	lev := &vtab[v].level[l]
	dat := b.Bytes()
	db := nd / lev.nblock
	// The first blocks hold db data codewords, the rest db+1.
	short := (db+1)*lev.nblock - nd
	rs := gf256.NewRSEncoder(Field, lev.check)
	for i := 0; i < lev.nblock; i++ {
		if i == short {
			db++
		}
		rs.ECC(dat[:db], b.Add(lev.check))
		dat = dat[db:]
	}
	if len(b.Bytes()) != vtab[v].words {
		panic("qr: internal error")
	}
}

// Interleave returns a BitStream reading the codewords in b in
// block-interleaved transmission order. b must hold a complete code:
// data capacity plus check bytes.
func (b *Bits) Interleave(v Version, l Level) BitStream {
	src := b.Bytes()
	if len(src) != vtab[v].words {
		panic("qr: internal error")
	}
	lev := &vtab[v].level[l]
	if lev.nblock == 1 {
		return NewBitStream(src)
	}
	nd := v.DataBytes(l)
	dst := make([]byte, len(src))
	interleave(dst[:nd], src[:nd], lev.nblock)
	interleave(dst[nd:], src[nd:], lev.nblock)
	return NewBitStream(dst)
}

// interleave copies nblock consecutive blocks from src to dst
// column-wise. If len(src) is not a multiple of nblock, the last
// blocks are one byte longer, their extra bytes following the
// interleaved columns.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	short := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= short {
			extra[i-short] = src[0]
			src = src[1:]
		}
	}
}
