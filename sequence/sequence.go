// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sequence checks and normalizes raw nucleotide sequences before they
// are handed to package align, which does not validate its input.
package sequence

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bioalign/biosimd"
)

// Alphabet lists the symbols accepted by Validate.
const Alphabet = "ACGT"

// Validate returns an error of kind errors.Invalid if seq contains a byte
// outside Alphabet. The error names the sequence and the 0-based position of
// the first offending byte. An empty sequence is valid.
func Validate(name string, seq []byte) error {
	if !biosimd.IsNonACGTPresent(seq) {
		return nil
	}
	pos := biosimd.FirstNonACGT(seq)
	return errors.E(errors.Invalid, fmt.Sprintf("sequence %s: invalid symbol %s at position %d, must be one of %s",
		name, strconv.QuoteRune(rune(seq[pos])), pos, Alphabet))
}

// Normalize capitalizes 'a'/'c'/'g'/'t' in place. Other bytes are left
// unchanged, so Validate still rejects them afterwards.
func Normalize(seq []byte) {
	biosimd.CapitalizeACGTInplace(seq)
}

// GCFraction returns the fraction of 'C'/'G' bytes (either case) in seq, or 0
// for an empty sequence.
func GCFraction(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(biosimd.CountGC(seq)) / float64(len(seq))
}
