// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrgen encodes QR codes.

A QR value holds encoding parameters and the last encoded result.
Accessors encode on first use; changing a parameter discards the
result, and the next access encodes again.
*/
package qrgen

import (
	"github.com/qrforge/qrgen/coding"
)

// Border is the width in modules of the quiet zone that renderers
// leave around a code.
const Border = 4

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L
	M = coding.M
	Q = coding.Q
	H = coding.H
)

// A Mode denotes a QR data encoding mode.
type Mode = coding.Mode

const (
	Numeric      = coding.Numeric
	Alphanumeric = coding.Alphanumeric
	Byte         = coding.Byte
)

// A QR holds the parameters of one QR code and the encoded result.
// The zero value is not usable; call New.
type QR struct {
	text    string
	mode    Mode
	level   Level
	version coding.Version // 0 selects the smallest fitting version
	code    *coding.Code   // nil until encoded
}

// An Option configures a QR.
type Option func(*QR)

// WithMode sets the encoding mode.
func WithMode(m Mode) Option { return func(q *QR) { q.mode = m } }

// WithLevel sets the error correction level.
func WithLevel(l Level) Option { return func(q *QR) { q.level = l } }

// WithVersion requests an explicit version instead of the smallest
// fitting one.
func WithVersion(v int) Option {
	return func(q *QR) { q.version = coding.Version(v) }
}

// New returns a QR encoding text. Without options the mode is Byte
// and the error correction level M.
func New(text string, opts ...Option) *QR {
	q := &QR{text: text, mode: Byte, level: M}
	for _, o := range opts {
		o(q)
	}
	return q
}

// SetText replaces the message, discarding any encoded result.
func (q *QR) SetText(text string) {
	q.text, q.code = text, nil
}

// SetMode sets the encoding mode, discarding any encoded result.
func (q *QR) SetMode(m Mode) {
	q.mode, q.code = m, nil
}

// SetLevel sets the error correction level, discarding any encoded
// result.
func (q *QR) SetLevel(l Level) {
	q.level, q.code = l, nil
}

// SetVersion sets the version, 0 for automatic, discarding any
// encoded result.
func (q *QR) SetVersion(v int) {
	q.version, q.code = coding.Version(v), nil
}

func (q *QR) encode() (*coding.Code, error) {
	if q.code == nil {
		c, err := coding.Encode(q.text, q.mode, q.level, q.version)
		if err != nil {
			return nil, err
		}
		q.code = c
	}
	return q.code, nil
}

// Matrix returns the module matrix of the code, encoding it if no
// result is cached.
func (q *QR) Matrix() (*coding.Matrix, error) {
	c, err := q.encode()
	if err != nil {
		return nil, err
	}
	return c.Matrix, nil
}

// Stats describes an encoded QR code.
type Stats struct {
	Version     int
	Mode        Mode
	Level       Level
	Mask        int     // mask pattern applied
	Size        int     // modules on a side, quiet zone excluded
	DataBytes   int     // data codewords, including padding
	CheckBytes  int     // error correction codewords
	Function    int     // modules taken by function patterns
	DataModules int     // modules carrying data and check bits
	Utilization float64 // fraction of the data capacity the message uses
}

// Stats returns the statistics of the code, encoding it if no result
// is cached.
func (q *QR) Stats() (Stats, error) {
	c, err := q.encode()
	if err != nil {
		return Stats{}, err
	}
	dm := c.DataModules()
	return Stats{
		Version:     int(c.Version),
		Mode:        c.Mode,
		Level:       c.Level,
		Mask:        c.Mask,
		Size:        c.Size,
		DataBytes:   c.DataBytes,
		CheckBytes:  c.CheckBytes,
		Function:    c.Size*c.Size - dm,
		DataModules: dm,
		Utilization: float64(c.MsgBits) / float64(8*c.DataBytes),
	}, nil
}
