// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package biosimd_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/grailbio/base/simd"
	"github.com/grailbio/bioalign/biosimd"
)

func capitalizeACGTSlow(ascii8 []byte) {
	for pos, ascii8Byte := range ascii8 {
		switch ascii8Byte {
		case 'a', 'c', 'g', 't':
			ascii8[pos] = ascii8Byte - 'a' + 'A'
		}
	}
}

func firstNonACGTSlow(ascii8 []byte) int {
	for pos, ascii8Byte := range ascii8 {
		switch ascii8Byte {
		case 'A', 'C', 'G', 'T':
		default:
			return pos
		}
	}
	return -1
}

func countGCSlow(ascii8 []byte) int {
	cnt := 0
	for _, ascii8Byte := range ascii8 {
		switch ascii8Byte {
		case 'C', 'G', 'c', 'g':
			cnt++
		}
	}
	return cnt
}

// randomASCIISeq fills ascii8 mostly with ACGTacgt, with an occasional
// arbitrary byte so that both outcomes of the ACGT checks are exercised.
func randomASCIISeq(ascii8 []byte, r *rand.Rand) {
	const bases = "ACGTACGTACGTacgt"
	nonACGTRate := r.Intn(4)
	for ii := range ascii8 {
		if r.Intn(len(ascii8)+1) < nonACGTRate {
			ascii8[ii] = byte(r.Intn(256))
		} else {
			ascii8[ii] = bases[r.Intn(len(bases))]
		}
	}
}

func TestCapitalizeACGT(t *testing.T) {
	maxSize := 500
	nIter := 200
	r := rand.New(rand.NewSource(1))
	main1Arr := simd.MakeUnsafe(maxSize)
	main2Arr := simd.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := r.Intn(maxSize)
		sliceEnd := sliceStart + r.Intn(maxSize-sliceStart)
		main1Slice := main1Arr[sliceStart:sliceEnd]
		main2Slice := main2Arr[sliceStart:sliceEnd]
		for ii := range main1Slice {
			main1Slice[ii] = byte(r.Intn(256))
		}
		copy(main2Slice, main1Slice)
		sentinel := byte(r.Intn(256))
		main2Arr[sliceEnd] = sentinel
		biosimd.CapitalizeACGTInplace(main2Slice)
		capitalizeACGTSlow(main1Slice)
		if !bytes.Equal(main1Slice, main2Slice) {
			t.Fatal("Mismatched CapitalizeACGTInplace result.")
		}
		if main2Arr[sliceEnd] != sentinel {
			t.Fatal("CapitalizeACGTInplace clobbered an extra byte.")
		}
	}
}

func TestIsNonACGTPresent(t *testing.T) {
	maxSize := 500
	nIter := 500
	r := rand.New(rand.NewSource(2))
	mainArr := simd.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := r.Intn(maxSize)
		sliceEnd := sliceStart + r.Intn(maxSize-sliceStart)
		mainSlice := mainArr[sliceStart:sliceEnd]
		randomASCIISeq(mainSlice, r)
		want := firstNonACGTSlow(mainSlice)
		if got := biosimd.FirstNonACGT(mainSlice); got != want {
			t.Fatalf("Mismatched FirstNonACGT result: got %d, want %d.", got, want)
		}
		if got := biosimd.IsNonACGTPresent(mainSlice); got != (want >= 0) {
			t.Fatalf("Mismatched IsNonACGTPresent result for %q.", mainSlice)
		}
	}
}

func TestIsNonACGTPresentSmall(t *testing.T) {
	tests := []struct {
		seq   string
		first int
	}{
		{"", -1},
		{"GATTACA", -1},
		{"ACGN", 3},
		{"acgt", 0},
		{"AC-GT", 2},
		{"ACG\x00", 3},
		{"ACG\xff", 3},
	}
	for _, test := range tests {
		if got := biosimd.FirstNonACGT([]byte(test.seq)); got != test.first {
			t.Errorf("FirstNonACGT(%q): got %d, want %d", test.seq, got, test.first)
		}
		if got := biosimd.IsNonACGTPresent([]byte(test.seq)); got != (test.first >= 0) {
			t.Errorf("IsNonACGTPresent(%q): got %v", test.seq, got)
		}
	}
}

func TestCountGC(t *testing.T) {
	maxSize := 500
	nIter := 200
	r := rand.New(rand.NewSource(3))
	mainArr := simd.MakeUnsafe(maxSize)
	for iter := 0; iter < nIter; iter++ {
		sliceStart := r.Intn(maxSize)
		sliceEnd := sliceStart + r.Intn(maxSize-sliceStart)
		mainSlice := mainArr[sliceStart:sliceEnd]
		randomASCIISeq(mainSlice, r)
		if got, want := biosimd.CountGC(mainSlice), countGCSlow(mainSlice); got != want {
			t.Fatalf("Mismatched CountGC result: got %d, want %d.", got, want)
		}
	}
}

func BenchmarkIsNonACGTPresent(b *testing.B) {
	seq := bytes.Repeat([]byte("GATTACA"), 1<<14)
	b.SetBytes(int64(len(seq)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if biosimd.IsNonACGTPresent(seq) {
			b.Fatal("unexpected non-ACGT byte")
		}
	}
}
