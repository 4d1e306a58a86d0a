// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// maskFormula reports whether mask pattern i inverts the data module
// at column x, row y.
var maskFormula = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// applyMask XORs the mask formula into every data module.
func (m *Matrix) applyMask(mask int) {
	f := maskFormula[mask]
	for y := 0; y < m.Size; y++ {
		row := m.m[y*m.Size : (y+1)*m.Size]
		for x, v := range row {
			if v&reserved == 0 && f(x, y) {
				row[x] = v ^ dark
			}
		}
	}
}

// Penalty returns the penalty score of the matrix, the sum of the
// four mask evaluation rules.
func (m *Matrix) Penalty() int {
	return m.penaltyRuns() + m.penaltyBoxes() +
		m.penaltyFinders() + m.penaltyBalance()
}

// penaltyRuns scores rows and columns of five or more adjacent
// modules of the same colour, a run of n scoring n-2.
func (m *Matrix) penaltyRuns() int {
	p, siz := 0, m.Size
	for i := 0; i < siz; i++ {
		hrun, vrun := 1, 1
		for j := 1; j < siz; j++ {
			if m.Dark(j, i) == m.Dark(j-1, i) {
				hrun++
			} else {
				if hrun >= 5 {
					p += hrun - 2
				}
				hrun = 1
			}
			if m.Dark(i, j) == m.Dark(i, j-1) {
				vrun++
			} else {
				if vrun >= 5 {
					p += vrun - 2
				}
				vrun = 1
			}
		}
		if hrun >= 5 {
			p += hrun - 2
		}
		if vrun >= 5 {
			p += vrun - 2
		}
	}
	return p
}

// penaltyBoxes scores 2x2 blocks of uniform colour, 3 points each.
func (m *Matrix) penaltyBoxes() int {
	p, siz := 0, m.Size
	for y := 1; y < siz; y++ {
		for x := 1; x < siz; x++ {
			c := m.Dark(x, y)
			if c == m.Dark(x-1, y) && c == m.Dark(x, y-1) &&
				c == m.Dark(x-1, y-1) {
				p += 3
			}
		}
	}
	return p
}

// penaltyFinders scores finder-like dark-light-dark-dark-dark-light-
// dark sequences in rows and columns, 40 points each. The sequence
// must have four light modules on at least one side; the quiet zone
// counts as light.
func (m *Matrix) penaltyFinders() int {
	p, siz := 0, m.Size
	for i := 0; i < siz; i++ {
		for j := 0; j+7 <= siz; j++ {
			if m.finderLike(j, i, false) {
				p += 40
			}
			if m.finderLike(j, i, true) {
				p += 40
			}
		}
	}
	return p
}

// finderLike reports a penalised finder-like sequence starting at
// offset j of row i (or of column i if vert is set).
func (m *Matrix) finderLike(j, i int, vert bool) bool {
	at := func(k int) bool {
		if vert {
			return m.Dark(i, j+k)
		}
		return m.Dark(j+k, i)
	}
	const pat = 0x5d // 1011101
	for k := 0; k < 7; k++ {
		if at(k) != (pat>>uint(6-k)&1 != 0) {
			return false
		}
	}
	margin := func(from int) bool {
		for k := from; k < from+4; k++ {
			if at(k) {
				return false
			}
		}
		return true
	}
	return margin(-4) || margin(7)
}

// penaltyBalance scores the deviation of the proportion of dark
// modules from one half, 10 points per full five percent.
func (m *Matrix) penaltyBalance() int {
	n := 0
	for _, v := range m.m {
		n += int(v & dark)
	}
	d := n*100/len(m.m) - 50
	if d < 0 {
		d = -d
	}
	return d / 5 * 10
}

// chooseMask applies each of the eight mask patterns, with its
// format information, to a copy of the matrix and returns the index
// and matrix of the pattern with the lowest penalty score. Ties go
// to the lowest index. Candidates are scored concurrently.
func chooseMask(base *Matrix, l Level) (int, *Matrix) {
	var (
		cand [8]*Matrix
		pen  [8]int
		wg   sync.WaitGroup
	)
	for mask := 0; mask < 8; mask++ {
		wg.Add(1)
		go func(mask int) {
			defer wg.Done()
			c := base.Clone()
			c.writeFormat(l, mask)
			c.applyMask(mask)
			cand[mask], pen[mask] = c, c.Penalty()
		}(mask)
	}
	wg.Wait()
	best := 0
	for mask := 1; mask < 8; mask++ {
		if pen[mask] < pen[best] {
			best = mask
		}
	}
	return best, cand[best]
}
