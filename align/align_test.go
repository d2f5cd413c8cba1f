// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package align_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/antzucaro/matchr"
	"github.com/grailbio/bioalign/align"
	"github.com/grailbio/testutil/assert"
	"github.com/grailbio/testutil/expect"
)

func TestGlobal(t *testing.T) {
	tests := []struct {
		s1, s2 string
		sc     align.Scoring
		a, b   string
		score  int64
	}{
		// Scores 2, not 3: AC matches (+4), then two mismatches (-2), and no
		// layout does better. AC-TG/ACGT- also scores 2, but the diagonal is
		// preferred.
		{"ACTG", "ACGT", align.DefaultScoring, "ACTG", "ACGT", 2},
		{"ACGTA", "", align.DefaultScoring, "ACGTA", "-----", -10},
		{"", "ACG", align.DefaultScoring, "---", "ACG", -6},
		{"", "", align.DefaultScoring, "", "", 0},
		{"GATTACA", "GATTACA", align.DefaultScoring, "GATTACA", "GATTACA", 14},
		// Up and left tie at (1, 1); up wins.
		{"A", "C", align.Scoring{Match: 2, Mismatch: -5, Gap: -1}, "-A", "C-", -2},
		{"AC", "A", align.DefaultScoring, "AC", "A-", 0},
		{"A", "AC", align.DefaultScoring, "A-", "AC", 0},
		{"GCATGCT", "GATTACA", align.Scoring{Match: 1, Mismatch: -1, Gap: -1}, "GCA-TGCT", "G-ATTACA", 0},
	}
	for _, test := range tests {
		got, err := align.Global([]byte(test.s1), []byte(test.s2), test.sc)
		assert.NoError(t, err)
		expect.EQ(t, string(got.A), test.a, "s1=%s s2=%s", test.s1, test.s2)
		expect.EQ(t, string(got.B), test.b, "s1=%s s2=%s", test.s1, test.s2)
		expect.EQ(t, got.Score, test.score, "s1=%s s2=%s", test.s1, test.s2)
	}
}

func TestGlobalDoesNotModifyInput(t *testing.T) {
	s1, s2 := []byte("ACGTTGCA"), []byte("ACGGCA")
	_, err := align.Global(s1, s2, align.DefaultScoring)
	assert.NoError(t, err)
	expect.EQ(t, string(s1), "ACGTTGCA")
	expect.EQ(t, string(s2), "ACGGCA")
}

// A degenerate scoring is accepted and still yields a consistent alignment.
func TestGlobalDegenerateScoring(t *testing.T) {
	sc := align.Scoring{Match: -3, Mismatch: 4, Gap: 7}
	s1, s2 := []byte("ACGTAC"), []byte("TTGA")
	got, err := align.Global(s1, s2, sc)
	assert.NoError(t, err)
	expect.EQ(t, len(got.A), len(got.B))
	expect.EQ(t, string(strip(got.A)), string(s1))
	expect.EQ(t, string(strip(got.B)), string(s2))
}

func TestStatsAndMidLine(t *testing.T) {
	a := align.Alignment{A: []byte("AC-TG"), B: []byte("ACGAG"), Score: 1}
	expect.EQ(t, a.Len(), 5)
	expect.EQ(t, a.Stats(), align.Stats{Matches: 3, Mismatches: 1, Gaps: 1})
	expect.EQ(t, a.MidLine(), "||  |")
	expect.EQ(t, a.String(), "AC-TG\n||  |\nACGAG")
	expect.EQ(t, a.Rescore(align.DefaultScoring), int64(3*2-1-2))
}

func strip(s []byte) []byte {
	return bytes.Replace(s, []byte{align.GapSymbol}, nil, -1)
}

func randomSeq(r *rand.Rand, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = "ACGT"[r.Intn(4)]
	}
	return s
}

func TestGlobalProperties(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 500; iter++ {
		s1 := randomSeq(r, r.Intn(30))
		s2 := randomSeq(r, r.Intn(30))
		match := int32(r.Intn(4))
		sc := align.Scoring{
			Match:    match,
			Mismatch: match - int32(r.Intn(5)),
			Gap:      -int32(r.Intn(4)),
		}
		m, err := align.NewMatrix(s1, s2, sc)
		assert.NoError(t, err)
		got := align.Traceback(m, s1, s2, sc.Mismatch)

		n, l := len(s1), len(s2)
		longest := n
		if l > longest {
			longest = l
		}
		assert.EQ(t, len(got.A), len(got.B), "s1=%s s2=%s %v", s1, s2, sc)
		expect.True(t, got.Len() >= longest && got.Len() <= n+l, "s1=%s s2=%s %v", s1, s2, sc)
		expect.EQ(t, string(strip(got.A)), string(s1))
		expect.EQ(t, string(strip(got.B)), string(s2))
		expect.EQ(t, got.Score, m.At(n, l))
		expect.EQ(t, got.Rescore(sc), got.Score, "s1=%s s2=%s %v\n%s", s1, s2, sc, got)
		for k := range got.A {
			expect.False(t, got.A[k] == align.GapSymbol && got.B[k] == align.GapSymbol)
		}
	}
}

// With match=0, mismatch=-1, gap=-1 the optimal score is minus the edit
// distance.
func TestGlobalMatchesLevenshtein(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	sc := align.Scoring{Match: 0, Mismatch: -1, Gap: -1}
	for iter := 0; iter < 200; iter++ {
		s1 := randomSeq(r, r.Intn(25))
		s2 := randomSeq(r, r.Intn(25))
		got, err := align.Global(s1, s2, sc)
		assert.NoError(t, err)
		expect.EQ(t, got.Score, -int64(matchr.Levenshtein(string(s1), string(s2))), "s1=%s s2=%s", s1, s2)
	}
}

// With match=1 and no penalties the optimal score is the length of the
// longest common subsequence.
func TestGlobalMatchesLCS(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	sc := align.Scoring{Match: 1, Mismatch: 0, Gap: 0}
	for iter := 0; iter < 200; iter++ {
		s1 := randomSeq(r, 1+r.Intn(25))
		s2 := randomSeq(r, 1+r.Intn(25))
		got, err := align.Global(s1, s2, sc)
		assert.NoError(t, err)
		expect.EQ(t, got.Score, int64(matchr.LongestCommonSubsequence(string(s1), string(s2))), "s1=%s s2=%s", s1, s2)
		expect.EQ(t, got.Stats().Matches, int(got.Score))
	}
}

func BenchmarkGlobal(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	s1, s2 := randomSeq(r, 1000), randomSeq(r, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Global(s1, s2, align.DefaultScoring); err != nil {
			b.Fatal(err)
		}
	}
}
