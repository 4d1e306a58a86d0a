// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Version represents a QR version, defining the size of the code.
// A version v code is a square of 4v+17 modules.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// Size returns the length of a side of the code in modules.
func (v Version) Size() int { return int(v)*4 + 17 }

// SizeClass returns the size class of the version, selecting the
// character count indicator width: 0 for versions 1 to 9, 1 for 10
// to 26 and 2 for 27 to 40.
func (v Version) SizeClass() int {
	switch {
	case v <= 9:
		return 0
	case v <= 26:
		return 1
	}
	return 2
}

// DataBytes returns the number of data codewords that a code of the
// given version and level holds.
func (v Version) DataBytes(l Level) int {
	vt := &vtab[v]
	lev := vt.level[l]
	return vt.words - lev.nblock*lev.check
}

// DataBits returns the data capacity in bits.
func (v Version) DataBits(l Level) int { return 8 * v.DataBytes(l) }

// CheckBytes returns the number of error correction codewords.
func (v Version) CheckBytes(l Level) int {
	lev := vtab[v].level[l]
	return lev.nblock * lev.check
}

// A Level represents a QR error correction level.
type Level int

const (
	L Level = iota // 20% redundancy
	M              // 38%
	Q              // 55%
	H              // 65%
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// minBits returns the length in bits of an n byte message in mode m
// at version v, including the mode and count indicators.
func minBits(m Mode, v Version, n int) int {
	return 4 + m.CountLength(v.SizeClass()) + m.EncodedLength(n)
}

// PickVersion returns the smallest version fitting an n byte message
// in mode m at level l, or ErrTooLong if none does.
func PickVersion(m Mode, l Level, n int) (Version, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if minBits(m, v, n) <= v.DataBits(l) {
			return v, nil
		}
	}
	return 0, ErrTooLong
}
