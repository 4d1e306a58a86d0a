// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseMatrix builds a matrix from strings of '#' (dark) and '.'.
func parseMatrix(rows ...string) *Matrix {
	siz := len(rows)
	m := &Matrix{Size: siz, m: make([]byte, siz*siz)}
	for y, r := range rows {
		for x := 0; x < siz; x++ {
			if r[x] == '#' {
				m.m[y*siz+x] = dark
			}
		}
	}
	return m
}

func TestMaskFormulas(t *testing.T) {
	// reference values of each formula at a few modules
	type at struct{ x, y int }
	for _, tc := range []struct {
		mask  int
		dark  []at
		light []at
	}{
		{0, []at{{0, 0}, {1, 1}, {2, 0}}, []at{{1, 0}, {0, 1}}},
		{1, []at{{0, 0}, {5, 0}, {0, 2}}, []at{{0, 1}, {3, 3}}},
		{2, []at{{0, 0}, {3, 1}, {6, 5}}, []at{{1, 0}, {2, 4}}},
		{3, []at{{0, 0}, {2, 1}, {1, 2}}, []at{{1, 0}, {2, 2}}},
		{4, []at{{0, 0}, {2, 1}, {0, 1}}, []at{{3, 0}, {0, 2}}},
		{5, []at{{0, 0}, {0, 3}, {6, 2}}, []at{{1, 1}, {5, 2}}},
		{6, []at{{0, 0}, {1, 1}, {2, 1}}, []at{{4, 1}, {1, 4}}},
		{7, []at{{0, 0}, {2, 0}, {3, 1}}, []at{{1, 0}, {2, 1}}},
	} {
		f := maskFormula[tc.mask]
		for _, p := range tc.dark {
			assert.True(t, f(p.x, p.y),
				"mask %d at %d,%d", tc.mask, p.x, p.y)
		}
		for _, p := range tc.light {
			assert.False(t, f(p.x, p.y),
				"mask %d at %d,%d", tc.mask, p.x, p.y)
		}
	}
}

func TestApplyMask(t *testing.T) {
	m := parseMatrix(
		"....",
		"....",
		"....",
		"....",
	)
	m.m[5] |= reserved // (1, 1) stays light
	m.applyMask(0)
	assert.True(t, m.Dark(0, 0))
	assert.False(t, m.Dark(1, 0))
	assert.True(t, m.Dark(2, 0))
	assert.False(t, m.Dark(1, 1), "reserved module is never masked")
	assert.True(t, m.Dark(2, 2))
}

func TestPenaltyRuns(t *testing.T) {
	m := parseMatrix(
		"######",
		".#.#.#",
		"#.#.#.",
		".#.#.#",
		"#.#.#.",
		".#.#.#",
	)
	// one horizontal run of 6; column runs are at most 2
	assert.Equal(t, 4, m.penaltyRuns())

	// runs of light modules count too
	m = parseMatrix(
		".....#",
		"#.#.##",
		".#.#..",
		"#.#.##",
		".#.#..",
		"#.#.##",
	)
	assert.Equal(t, 3, m.penaltyRuns())
}

func TestPenaltyBoxes(t *testing.T) {
	m := parseMatrix(
		"##..",
		"##.#",
		"...#",
		"..##",
	)
	// one dark 2x2 and one light 2x2
	assert.Equal(t, 6, m.penaltyBoxes())
}

func TestPenaltyFinders(t *testing.T) {
	// the pattern with its margin in the quiet zone scores on the
	// row; the columns are too short for it
	m := parseMatrix(
		"#.###.#",
		".......",
		"#######",
		".......",
		"#..#..#",
		".......",
		"#######",
	)
	// row 0 matches at offset 0 with its left margin in the quiet
	// zone; no column contains the pattern
	assert.Equal(t, 40, m.penaltyFinders())
}

func TestPenaltyFindersMargin(t *testing.T) {
	blank := func(row string) *Matrix {
		rows := []string{row}
		for len(rows) < len(row) {
			rows = append(rows, ".............")
		}
		return parseMatrix(rows...)
	}

	// dark modules on both flanks suppress the penalty
	m := blank("####.###.####")
	assert.Zero(t, m.penaltyFinders())

	// light margin on either side scores once
	m = blank("....#.###.#..")
	assert.Equal(t, 40, m.penaltyFinders())
}

func TestPenaltyBalance(t *testing.T) {
	all := parseMatrix("##", "##")
	assert.Equal(t, 100, all.penaltyBalance())
	none := parseMatrix("..", "..")
	assert.Equal(t, 100, none.penaltyBalance())
	half := parseMatrix("#.", ".#")
	assert.Equal(t, 0, half.penaltyBalance())
	// 56% dark: |56-50|/5 = 1
	m := &Matrix{Size: 5, m: make([]byte, 25)}
	for i := 0; i < 14; i++ {
		m.m[i] = dark
	}
	assert.Equal(t, 10, m.penaltyBalance())
}
