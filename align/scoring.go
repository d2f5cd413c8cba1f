// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align

import "fmt"

// Scoring holds the per-column scores of an alignment. Any combination of
// values is accepted; nonsensical ones (e.g. Match < Mismatch) still yield a
// well-defined alignment.
type Scoring struct {
	// Match is added when two equal symbols are aligned.
	Match int32
	// Mismatch is added when two different symbols are aligned.
	Mismatch int32
	// Gap is added for every symbol aligned against a gap.
	Gap int32
}

// DefaultScoring is the scoring used by bio-align when no flags are given.
var DefaultScoring = Scoring{Match: 2, Mismatch: -1, Gap: -2}

// Pair returns the score of aligning symbols a and b against each other.
func (s Scoring) Pair(a, b byte) int64 {
	if a == b {
		return int64(s.Match)
	}
	return int64(s.Mismatch)
}

// maxAbs returns the largest absolute value among the three scores.
func (s Scoring) maxAbs() int64 {
	m := int64(0)
	for _, v := range [...]int32{s.Match, s.Mismatch, s.Gap} {
		a := int64(v)
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}

func (s Scoring) String() string {
	return fmt.Sprintf("match=%d,mismatch=%d,gap=%d", s.Match, s.Mismatch, s.Gap)
}
