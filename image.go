// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"image"
	"image/color"

	"github.com/qrforge/qrgen/coding"
)

// Image returns an image of the code with the quiet zone, at scale
// image pixels per module, encoding the code if no result is cached.
func (q *QR) Image(scale int) (image.Image, error) {
	m, err := q.Matrix()
	if err != nil {
		return nil, err
	}
	if scale < 1 {
		scale = 1
	}
	return &codeImage{m, scale}, nil
}

// codeImage implements image.Image.
type codeImage struct {
	m     *coding.Matrix
	scale int
}

var (
	whiteColor color.Color = color.Gray{0xff}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) ColorModel() color.Model { return color.GrayModel }

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.m.Size + 2*Border) * c.scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.m.Dark(x/c.scale-Border, y/c.scale-Border) {
		return blackColor
	}
	return whiteColor
}
