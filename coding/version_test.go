// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionSize(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		assert.Equal(t, int(v)*4+17, v.Size())
	}
	assert.Equal(t, 21, Version(1).Size())
	assert.Equal(t, 177, Version(40).Size())
}

func TestSizeClass(t *testing.T) {
	assert.Equal(t, 0, Version(1).SizeClass())
	assert.Equal(t, 0, Version(9).SizeClass())
	assert.Equal(t, 1, Version(10).SizeClass())
	assert.Equal(t, 1, Version(26).SizeClass())
	assert.Equal(t, 2, Version(27).SizeClass())
	assert.Equal(t, 2, Version(40).SizeClass())
}

func TestDataBytes(t *testing.T) {
	for _, tc := range []struct {
		v    Version
		l    Level
		want int
	}{
		{1, L, 19},
		{1, M, 16},
		{1, Q, 13},
		{1, H, 9},
		{5, Q, 62},
		{40, L, 2956},
		{40, H, 1276},
	} {
		assert.Equal(t, tc.want, tc.v.DataBytes(tc.l),
			"%v-%v", tc.v, tc.l)
	}
}

func TestPickVersion(t *testing.T) {
	v, err := PickVersion(Alphanumeric, Q, len("HELLO WORLD"))
	assert.NoError(t, err)
	assert.Equal(t, Version(1), v)

	// 7089 digits is the numeric capacity of version 40-L exactly
	v, err = PickVersion(Numeric, L, 7089)
	assert.NoError(t, err)
	assert.Equal(t, Version(40), v)

	_, err = PickVersion(Numeric, L, 7090)
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestTableConsistency(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		vt := &vtab[v]
		for l := L; l <= H; l++ {
			lev := vt.level[l]
			nd := v.DataBytes(l)
			assert.Positive(t, nd, "%v-%v", v, l)
			assert.Zero(t, (vt.words-nd)%lev.nblock,
				"%v-%v check bytes", v, l)
		}
		for _, c := range vt.align {
			assert.Less(t, c, v.Size()-6)
		}
	}
}
