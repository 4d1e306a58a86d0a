// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Matrix is a square grid of modules. Each module is dark or
// light, and is either reserved for function patterns and format
// information or carries data.
type Matrix struct {
	Size int
	m    []byte
}

// Module flags.
const (
	dark     = 1 << 0
	reserved = 1 << 1
)

// Dark reports whether the module at column x, row y is dark.
// Modules outside the matrix are light.
func (m *Matrix) Dark(x, y int) bool {
	return 0 <= x && x < m.Size && 0 <= y && y < m.Size &&
		m.m[y*m.Size+x]&dark != 0
}

// Reserved reports whether the module at column x, row y belongs to
// a function pattern or an information area.
func (m *Matrix) Reserved(x, y int) bool {
	return m.m[y*m.Size+x]&reserved != 0
}

// DataModules returns the number of modules available for data,
// check and remainder bits.
func (m *Matrix) DataModules() int {
	n := 0
	for _, v := range m.m {
		if v&reserved == 0 {
			n++
		}
	}
	return n
}

// Clone returns a copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{Size: m.Size, m: make([]byte, len(m.m))}
	copy(c.m, m.m)
	return c
}

func (m *Matrix) set(x, y int, v byte) { m.m[y*m.Size+x] = v }
func (m *Matrix) at(x, y int) byte     { return m.m[y*m.Size+x] }

// setBit sets a reserved module to the given information bit.
func (m *Matrix) setBit(x, y int, bit uint32) {
	v := byte(reserved)
	if bit != 0 {
		v |= dark
	}
	m.set(x, y, v)
}

// NewMatrix returns a matrix of the given version with all function
// patterns placed, the format information strips reserved and, for
// version 7 and above, the version information written.
func NewMatrix(v Version) *Matrix {
	siz := v.Size()
	m := &Matrix{Size: siz, m: make([]byte, siz*siz)}
	m.finder(0, 0)
	m.finder(siz-7, 0)
	m.finder(0, siz-7)
	m.timing()
	for _, cx := range vtab[v].align {
		for _, cy := range vtab[v].align {
			if cx <= 8 && cy <= 8 ||
				cx <= 8 && cy >= siz-9 ||
				cx >= siz-9 && cy <= 8 {
				continue // overlaps a finder
			}
			m.alignBox(cx, cy)
		}
	}
	m.reserveFormat()
	if v >= 7 {
		m.writeVersion(v)
	}
	return m
}

// finder draws a 7x7 finder pattern with its light separator border
// at upper left corner x, y.
func (m *Matrix) finder(x, y int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= m.Size || yy < 0 || yy >= m.Size {
				continue
			}
			v := byte(reserved)
			if 0 <= dx && dx <= 6 && 0 <= dy && dy <= 6 &&
				max(abs(dx-3), abs(dy-3)) != 2 {
				v |= dark
			}
			m.set(xx, yy, v)
		}
	}
}

// timing draws the alternating timing patterns along row 6 and
// column 6 between the finders.
func (m *Matrix) timing() {
	for i := 8; i < m.Size-8; i++ {
		v := byte(reserved)
		if i%2 == 0 {
			v |= dark
		}
		m.set(i, 6, v)
		m.set(6, i, v)
	}
}

// alignBox draws a 5x5 alignment pattern centered at x, y.
func (m *Matrix) alignBox(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			v := byte(reserved)
			if dx == 0 && dy == 0 || abs(dx) == 2 || abs(dy) == 2 {
				v |= dark
			}
			m.set(x+dx, y+dy, v)
		}
	}
}

// reserveFormat reserves both format information strips and places
// the fixed dark module above the bottom left finder.
func (m *Matrix) reserveFormat() {
	siz := m.Size
	for i := 0; i < 9; i++ {
		if i != 6 { // timing row and column
			m.set(i, 8, reserved)
			m.set(8, i, reserved)
		}
	}
	for i := 0; i < 8; i++ {
		m.set(siz-1-i, 8, reserved)
		m.set(8, siz-1-i, reserved)
	}
	m.set(8, siz-8, reserved|dark)
}

// bch appends the remainder of polynomial division by gen, a
// generator polynomial of degree d, to the low bits of v. The
// payload of v occupies bits d and up, total bits in all.
func bch(v, gen uint32, d, total int) uint32 {
	rem := v
	for i := total - d - 1; i >= 0; i-- {
		if rem&(1<<uint(d+i)) != 0 {
			rem ^= gen << uint(i)
		}
	}
	return v | rem
}

// formatPoly is the generator polynomial of the format information
// BCH code, x¹⁰+x⁸+x⁵+x⁴+x²+x+1.
const formatPoly = 0x537

// formatMask is XORed into the format information to avoid an all
// zero string.
const formatMask = 0x5412

// versionPoly is the generator polynomial of the version information
// BCH code, x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1.
const versionPoly = 0x1f25

// levelBits is the 2 bit format indicator of each Level.
var levelBits = [4]uint32{L: 1, M: 0, Q: 3, H: 2}

// formatInfo returns the 15 bit format information string for the
// given level and mask pattern.
func formatInfo(l Level, mask int) uint32 {
	f := levelBits[l]<<3 | uint32(mask)
	return bch(f<<10, formatPoly, 10, 15) ^ formatMask
}

// versionInfo returns the 18 bit version information string.
func versionInfo(v Version) uint32 {
	return bch(uint32(v)<<12, versionPoly, 12, 18)
}

// writeVersion places the version information blocks beside the top
// right and bottom left finders.
func (m *Matrix) writeVersion(ver Version) {
	vi := versionInfo(ver)
	siz := m.Size
	for i := 0; i < 18; i++ {
		m.setBit(i/3, siz-11+i%3, vi>>uint(i)&1)
		m.setBit(siz-11+i%3, i/3, vi>>uint(i)&1)
	}
}

// writeFormat places both copies of the format information string
// for the given level and mask pattern.
func (m *Matrix) writeFormat(l Level, mask int) {
	fb := formatInfo(l, mask)
	siz := m.Size
	// around the top left finder
	for i := 0; i < 6; i++ {
		m.setBit(i, 8, fb>>uint(14-i)&1)
		m.setBit(8, i, fb>>uint(i)&1)
	}
	m.setBit(7, 8, fb>>8&1)
	m.setBit(8, 8, fb>>7&1)
	m.setBit(8, 7, fb>>6&1)
	// split between the other two finders
	for i := 0; i < 8; i++ {
		m.setBit(siz-8+i, 8, fb>>uint(7-i)&1)
	}
	for i := 0; i < 7; i++ {
		m.setBit(8, siz-1-i, fb>>uint(14-i)&1)
	}
}

// placeData writes bits from s into the data modules in zigzag
// order: two-column strips from the right edge leftward, the right
// column of each strip first, alternating between upward and
// downward, skipping the vertical timing column.
func (m *Matrix) placeData(s BitStream) {
	siz := m.Size
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for xx := x; xx > x-2; xx-- {
				if m.at(xx, y)&reserved == 0 && s.Next() != 0 {
					m.m[y*siz+xx] |= dark
				}
			}
		}
		up = !up
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
