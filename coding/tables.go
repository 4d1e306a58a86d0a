// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2026 The qrgen Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// level describes the error correction blocks of one version at one
// error correction level.
type level struct {
	nblock int // number of blocks
	check  int // check bytes per block
}

// version describes the geometry and capacity of one QR version.
type version struct {
	words int     // total codewords
	rem   int     // remainder bits after the last codeword
	align []int   // alignment pattern center coordinates
	level [4]level
}

// vtab is the version table, indexed by Version.
// Levels are ordered L, M, Q, H.
var vtab = [MaxVersion + 1]version{
	1: {26, 0, []int{}, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	2: {44, 7, []int{6, 18}, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	3: {70, 7, []int{6, 22}, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	4: {100, 7, []int{6, 26}, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	5: {134, 7, []int{6, 30}, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},
	6: {172, 7, []int{6, 34}, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	7: {196, 0, []int{6, 22, 38}, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	8: {242, 0, []int{6, 24, 42}, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	9: {292, 0, []int{6, 26, 46}, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	10: {346, 0, []int{6, 28, 50}, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},
	11: {404, 0, []int{6, 30, 54}, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	12: {466, 0, []int{6, 32, 58}, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	13: {532, 0, []int{6, 34, 62}, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	14: {581, 3, []int{6, 26, 46, 66}, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	15: {655, 3, []int{6, 26, 48, 70}, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},
	16: {733, 3, []int{6, 26, 50, 74}, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	17: {815, 3, []int{6, 30, 54, 78}, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	18: {901, 3, []int{6, 30, 56, 82}, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	19: {991, 3, []int{6, 30, 58, 86}, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	20: {1085, 3, []int{6, 34, 62, 90}, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},
	21: {1156, 4, []int{6, 28, 50, 72, 94}, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	22: {1258, 4, []int{6, 26, 50, 74, 98}, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	23: {1364, 4, []int{6, 30, 54, 78, 102}, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	24: {1474, 4, []int{6, 28, 54, 80, 106}, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	25: {1588, 4, []int{6, 32, 58, 84, 110}, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}},
	26: {1706, 4, []int{6, 30, 58, 86, 114}, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	27: {1828, 4, []int{6, 34, 62, 90, 118}, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	28: {1921, 3, []int{6, 26, 50, 74, 98, 122}, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	29: {2051, 3, []int{6, 30, 54, 78, 102, 126}, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	30: {2185, 3, []int{6, 26, 52, 78, 104, 130}, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}},
	31: {2323, 3, []int{6, 30, 56, 82, 108, 134}, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	32: {2465, 3, []int{6, 34, 60, 86, 112, 138}, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	33: {2611, 3, []int{6, 30, 58, 86, 114, 142}, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	34: {2761, 3, []int{6, 34, 62, 90, 118, 146}, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	35: {2876, 0, []int{6, 30, 54, 78, 102, 126, 150}, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}},
	36: {3034, 0, []int{6, 24, 50, 76, 102, 128, 154}, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	37: {3196, 0, []int{6, 28, 54, 80, 106, 132, 158}, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	38: {3362, 0, []int{6, 32, 58, 84, 110, 136, 162}, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	39: {3532, 0, []int{6, 26, 54, 82, 110, 138, 166}, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	40: {3706, 0, []int{6, 30, 58, 86, 114, 142, 170}, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}},
}

// countLen is the character count indicator width in bits, indexed
// by mode and version size class.
var countLen = [3][3]byte{
	Numeric:      {10, 12, 14},
	Alphanumeric: {9, 11, 13},
	Byte:         {8, 16, 16},
}
