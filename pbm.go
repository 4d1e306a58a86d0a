// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"bufio"
	"io"
	"strconv"
)

// WritePBM writes a Portable Bit Map image of the code with the
// quiet zone to w, at scale pixels per module, for use with netpbm.
// It encodes the code if no result is cached.
func (q *QR) WritePBM(w io.Writer, scale int) error {
	m, err := q.Matrix()
	if err != nil {
		return err
	}
	if scale < 1 {
		scale = 1
	}
	b := bufio.NewWriter(w)
	length := scale * (m.Size + 2*Border)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	writeRows := func(n int) error {
		for ; n > 0; n-- {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
		return nil
	}
	if err := writeRows(scale * Border); err != nil {
		return err
	}
	for y := 0; y < m.Size; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < m.Size; x++ {
			if !m.Dark(x, y) {
				continue
			}
			for px := (x + Border) * scale; px < (x+Border+1)*scale; px++ {
				row[px>>3] |= 0x80 >> uint(px&7)
			}
		}
		if err := writeRows(scale); err != nil {
			return err
		}
	}
	for i := range row {
		row[i] = 0
	}
	if err := writeRows(scale * Border); err != nil {
		return err
	}
	return b.Flush()
}
