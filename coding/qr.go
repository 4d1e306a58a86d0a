// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details.
package coding

import (
	"errors"
	"fmt"
)

var (
	ErrVersion = errors.New("qr: invalid version")
	ErrLevel   = errors.New("qr: invalid error correction level")
	ErrMode    = errors.New("qr: invalid encoding mode")
	ErrTooLong = errors.New("qr: message too long for any version")
)

// A CharError reports a message character outside the character set
// of the encoding mode.
type CharError struct {
	Mode Mode
	Pos  int // byte offset in the message
	Char rune
}

func (e CharError) Error() string {
	return fmt.Sprintf("qr: invalid character %q at offset %d in %s mode",
		e.Char, e.Pos, e.Mode)
}

// A CapacityError reports a message that does not fit the requested
// version at the requested error correction level.
type CapacityError struct {
	Version Version
	Level   Level
	Need    int // message length in bits
	Have    int // data capacity in bits
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("qr: %d bit message exceeds the %d bit capacity of version %v-%v",
		e.Need, e.Have, e.Version, e.Level)
}

// A Code is a finished QR code.
type Code struct {
	*Matrix
	Version Version
	Level   Level
	Mode    Mode
	Mask    int // mask pattern applied to the data modules

	DataBytes  int // data codewords, including padding
	CheckBytes int // error correction codewords
	MsgBits    int // bits taken by the mode, count and payload
}

// Encode encodes text in the given mode at the given error
// correction level. Version 0 selects the smallest version the
// message fits; an explicit version fails with a CapacityError if
// too small.
func Encode(text string, m Mode, l Level, v Version) (*Code, error) {
	if m < Numeric || m > Byte {
		return nil, ErrMode
	}
	if l < L || l > H {
		return nil, ErrLevel
	}
	if err := m.Check(text); err != nil {
		return nil, err
	}
	if v == 0 {
		var err error
		if v, err = PickVersion(m, l, len(text)); err != nil {
			return nil, err
		}
	} else if v < MinVersion || v > MaxVersion {
		return nil, ErrVersion
	} else if need := minBits(m, v, len(text)); need > v.DataBits(l) {
		return nil, CapacityError{v, l, need, v.DataBits(l)}
	}

	b := NewBits(v)
	m.encode(b, text, v.SizeClass())
	msgBits := b.Bits()
	b.PadTo(v.DataBits(l))
	b.AddCheckBytes(v, l)

	mat := NewMatrix(v)
	if mat.DataModules() != 8*vtab[v].words+vtab[v].rem {
		panic("qr: internal error: data module count")
	}
	mat.placeData(b.Interleave(v, l))
	mask, masked := chooseMask(mat, l)

	return &Code{
		Matrix:     masked,
		Version:    v,
		Level:      l,
		Mode:       m,
		Mask:       mask,
		DataBytes:  v.DataBytes(l),
		CheckBytes: v.CheckBytes(l),
		MsgBits:    msgBits,
	}, nil
}
