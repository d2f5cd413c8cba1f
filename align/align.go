// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "strings"

// Alignment is a global alignment of two sequences. A and B have equal
// length; removing GapSymbol from A yields the first sequence and removing it
// from B yields the second.
type Alignment struct {
	A, B  []byte
	Score int64
}

// Global aligns s1 against s2 under sc and returns one optimal alignment.
// See NewMatrix for the errors it may return.
func Global(s1, s2 []byte, sc Scoring) (Alignment, error) {
	m, err := NewMatrix(s1, s2, sc)
	if err != nil {
		return Alignment{}, err
	}
	return Traceback(m, s1, s2, sc.Mismatch), nil
}

// Len returns the number of alignment columns.
func (a Alignment) Len() int { return len(a.A) }

// Stats counts the column types of an alignment.
type Stats struct {
	Matches, Mismatches, Gaps int
}

// Stats classifies every column of the alignment.
func (a Alignment) Stats() (s Stats) {
	for k := range a.A {
		switch {
		case a.A[k] == GapSymbol || a.B[k] == GapSymbol:
			s.Gaps++
		case a.A[k] == a.B[k]:
			s.Matches++
		default:
			s.Mismatches++
		}
	}
	return s
}

// Rescore sums sc over the columns of the alignment. For an alignment
// returned by Global with the same scoring the result equals a.Score whenever
// Match >= Mismatch and Match >= 2*Gap. Outside that range the equal-symbol
// shortcut of Traceback may leave the optimal path.
func (a Alignment) Rescore(sc Scoring) int64 {
	var total int64
	for k := range a.A {
		if a.A[k] == GapSymbol || a.B[k] == GapSymbol {
			total += int64(sc.Gap)
			continue
		}
		total += sc.Pair(a.A[k], a.B[k])
	}
	return total
}

// MidLine returns a line that marks matching columns with '|' and all other
// columns with ' '.
func (a Alignment) MidLine() string {
	var b strings.Builder
	b.Grow(len(a.A))
	for k := range a.A {
		if a.A[k] != GapSymbol && a.A[k] == a.B[k] {
			b.WriteByte('|')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// String renders the alignment on three lines: A, the match line and B.
func (a Alignment) String() string {
	return string(a.A) + "\n" + a.MidLine() + "\n" + string(a.B)
}
