// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mode is a QR data encoding mode.
type Mode int

const (
	Numeric      Mode = iota // digits 0-9
	Alphanumeric             // digits, upper case letters, " $%*+-./:"
	Byte                     // raw 8 bit bytes
)

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "numeric"
	case Alphanumeric:
		return "alphanumeric"
	case Byte:
		return "byte"
	}
	return strconv.Itoa(int(m))
}

// Indicator returns the 4 bit mode indicator.
func (m Mode) Indicator() uint {
	return [3]uint{Numeric: 1, Alphanumeric: 2, Byte: 4}[m]
}

// CountLength returns the width in bits of the character count
// indicator for the given version size class.
func (m Mode) CountLength(class int) int {
	return int(countLen[m][class])
}

// EncodedLength returns the payload length in bits of an n byte
// message, excluding the mode and count indicators.
func (m Mode) EncodedLength(n int) int {
	switch m {
	case Numeric:
		return (10*n + 2) / 3
	case Alphanumeric:
		return (11*n + 1) / 2
	}
	return 8 * n
}

// Bitmap of valid alphanumeric characters, bit 0 representing space.
const alnumSet = 0x07fffffe_07ffec31

// Alphanumeric character values, indexed by the low six bits of the
// character, covering the ranges 0x20-0x3f and 0x40-0x5f.
var alnumVal = [64]byte{
	// @ A-O
	0, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	// P-Z
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 0, 0, 0, 0, 0,
	// SP $ % * + - . /
	36, 0, 0, 0, 37, 38, 0, 0, 0, 0, 39, 40, 0, 41, 42, 43,
	// 0-9 :
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 44, 0, 0, 0, 0, 0,
}

// Check returns a CharError describing the first byte of s outside
// the mode's character set, or ErrMode for an unknown mode.
func (m Mode) Check(s string) error {
	switch m {
	case Numeric:
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return CharError{m, i, rune(s[i])}
			}
		}
	case Alphanumeric:
		for i := 0; i < len(s); i++ {
			if c := s[i]; c < ' ' || c > 'Z' || alnumSet>>(c-' ')&1 == 0 {
				return CharError{m, i, rune(s[i])}
			}
		}
	case Byte:
	default:
		return ErrMode
	}
	return nil
}

// encode writes the mode indicator, the character count and the
// payload of s for a code of the given version size class.
// s must have passed Check.
func (m Mode) encode(b *Bits, s string, class int) {
	b.Write(m.Indicator(), 4)
	b.Write(uint(len(s)), m.CountLength(class))
	switch m {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint(s[0])*100+uint(s[1])*10+uint(s[2])-'0'*111, 10)
		}
		switch len(s) {
		case 2:
			b.Write(uint(s[0])*10+uint(s[1])-'0'*11, 7)
		case 1:
			b.Write(uint(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint(alnumVal[s[0]&0x3f])*45+
				uint(alnumVal[s[1]&0x3f]), 11)
		}
		if s != "" {
			b.Write(uint(alnumVal[s[0]&0x3f]), 6)
		}
	default:
		for i := 0; i < len(s); i++ {
			b.Write(uint(s[i]), 8)
		}
	}
}
