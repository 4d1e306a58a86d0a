// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgen

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Latin1 converts UTF-8 text to ISO 8859-1 for Byte mode encoding.
// It fails if the text contains characters outside Latin-1.
func Latin1(text string) (string, error) {
	s, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return "", fmt.Errorf("qr: text not representable in Latin-1: %w", err)
	}
	return s, nil
}
