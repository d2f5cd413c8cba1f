// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Matrix is the optimal-score matrix of a global alignment. Cell (i, j)
// holds the best score of aligning the first i symbols of the first sequence
// against the first j symbols of the second.
//
// Cells are int64. Their magnitude is bounded by
// (N+M) * max(|match|, |mismatch|, |gap|) <= (N+M) * 2^31, so they cannot
// overflow for any pair of sequences whose matrix fits in memory; NewMatrix
// rejects the pathological lengths for which the bound does not hold.
type Matrix struct {
	nRow, nCol int
	data       []int64 // row-major nRow*nCol array; cell (i, j) is data[i*nCol+j].
}

// NewMatrix computes the score matrix for s1 (rows) and s2 (columns) under
// sc. Neither sequence is modified. Either may be empty.
//
// NewMatrix returns an error of kind errors.Unavailable if the number of
// cells or the score bound does not fit in the machine integer types. It
// never returns a partially filled matrix.
func NewMatrix(s1, s2 []byte, sc Scoring) (*Matrix, error) {
	nRow, nCol := len(s1)+1, len(s2)+1
	if nRow > math.MaxInt/nCol {
		return nil, errors.E(errors.Unavailable, fmt.Sprintf("score matrix %dx%d overflows the cell count", nRow, nCol))
	}
	if m := sc.maxAbs(); m > 0 && int64(len(s1))+int64(len(s2)) > math.MaxInt64/m {
		return nil, errors.E(errors.Unavailable, fmt.Sprintf("scores for lengths %d and %d overflow int64 under %v", len(s1), len(s2), sc))
	}
	m := &Matrix{
		nRow: nRow,
		nCol: nCol,
		data: make([]int64, nRow*nCol),
	}
	m.fill(s1, s2, sc)
	return m, nil
}

// fill evaluates the recurrence row by row. Each cell only reads the cell
// above, the cell to the left and the diagonal predecessor, all of which are
// already final.
func (m *Matrix) fill(s1, s2 []byte, sc Scoring) {
	gap := int64(sc.Gap)
	for j := 1; j < m.nCol; j++ {
		m.data[j] = m.data[j-1] + gap
	}
	for i := 1; i < m.nRow; i++ {
		row := m.data[i*m.nCol : (i+1)*m.nCol]
		prev := m.data[(i-1)*m.nCol : i*m.nCol]
		row[0] = prev[0] + gap
		a := s1[i-1]
		for j := 1; j < m.nCol; j++ {
			best := prev[j-1] + sc.Pair(a, s2[j-1])
			if fromUp := prev[j] + gap; fromUp > best {
				best = fromUp
			}
			if fromLeft := row[j-1] + gap; fromLeft > best {
				best = fromLeft
			}
			row[j] = best
		}
	}
}

// Rows returns N+1, where N is the length of the first sequence.
func (m *Matrix) Rows() int { return m.nRow }

// Cols returns M+1, where M is the length of the second sequence.
func (m *Matrix) Cols() int { return m.nCol }

// At returns cell (i, j). It panics if the cell is out of range.
func (m *Matrix) At(i, j int) int64 {
	if i < 0 || i >= m.nRow || j < 0 || j >= m.nCol {
		panic("align: matrix cell (" + strconv.Itoa(i) + ", " + strconv.Itoa(j) + ") out of range")
	}
	return m.data[i*m.nCol+j]
}

// Score returns the optimal global alignment score, i.e. cell (N, M).
func (m *Matrix) Score() int64 {
	return m.data[len(m.data)-1]
}

// String returns the matrix as right-aligned, '|'-separated rows. It is
// meant for debugging small matrices.
func (m *Matrix) String() string {
	width := 0
	for _, d := range m.data {
		if l := len(strconv.FormatInt(d, 10)); l > width {
			width = l
		}
	}
	lines := make([]string, 0, m.nRow)
	for i := 0; i < m.nRow; i++ {
		parts := make([]string, m.nCol)
		for j := 0; j < m.nCol; j++ {
			s := strconv.FormatInt(m.data[i*m.nCol+j], 10)
			parts[j] = strings.Repeat(" ", width-len(s)) + s
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}
