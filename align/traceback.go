// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "fmt"

// GapSymbol marks a position where one sequence has no symbol opposite the
// other.
const GapSymbol = '-'

// step is one move of the backward walk through the matrix.
//
//   ___|___
//    1 | 3
//    2 | 4
//
// From cell 4: diagonal moves to 1, up moves to 3, left moves to 2.
type step uint8

const (
	diagonal step = iota
	up
	left
)

// Traceback reconstructs one optimal alignment of s1 and s2 from m, which
// must have been computed by NewMatrix for the same sequences. mismatch is
// the Mismatch score m was built with; it is used to recognize diagonal
// moves between different symbols.
//
// The walk starts at (N, M) and ends at (0, 0). At each interior cell it
// moves diagonally if the two symbols are equal or if the diagonal
// predecessor plus mismatch equals the current cell. Otherwise it moves to
// the larger of the cell above and the cell to the left, preferring the
// cell above on a tie. On the first row it can only move left and on the
// first column only up.
//
// Traceback panics if the shape of m does not match the sequences.
func Traceback(m *Matrix, s1, s2 []byte, mismatch int32) Alignment {
	if m.nRow != len(s1)+1 || m.nCol != len(s2)+1 {
		panic(fmt.Sprintf("align: %dx%d matrix does not match sequence lengths %d, %d",
			m.nRow, m.nCol, len(s1), len(s2)))
	}
	n := len(s1) + len(s2)
	a := make([]byte, 0, n)
	b := make([]byte, 0, n)

	i, j := len(s1), len(s2)
	for i > 0 || j > 0 {
		switch m.next(i, j, s1, s2, int64(mismatch)) {
		case diagonal:
			i--
			j--
			a = append(a, s1[i])
			b = append(b, s2[j])
		case up:
			i--
			a = append(a, s1[i])
			b = append(b, GapSymbol)
		case left:
			j--
			a = append(a, GapSymbol)
			b = append(b, s2[j])
		}
	}
	// Symbols were collected end-first.
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
		b[l], b[r] = b[r], b[l]
	}
	return Alignment{A: a, B: b, Score: m.Score()}
}

// next picks the move out of cell (i, j), which must not be (0, 0).
func (m *Matrix) next(i, j int, s1, s2 []byte, mismatch int64) step {
	if i == 0 {
		return left
	}
	if j == 0 {
		return up
	}
	cur := i*m.nCol + j
	diag := cur - m.nCol - 1
	if s1[i-1] == s2[j-1] || m.data[diag]+mismatch == m.data[cur] {
		return diagonal
	}
	if m.data[cur-m.nCol] >= m.data[cur-1] {
		return up
	}
	return left
}
