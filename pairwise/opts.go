// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairwise

import (
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/bioalign/align"
)

// Output formats.
const (
	// FormatText writes each alignment as a header line, the two aligned rows
	// with a match line between them, and a score line.
	FormatText = "text"
	// FormatTSV writes one tab-separated row per alignment.
	FormatTSV = "tsv"
)

// Opts configures Run.
type Opts struct {
	// Pair, if it has two elements, is a literal pair of sequences to align.
	// It is mutually exclusive with Query and Target.
	Pair []string
	// Query is a FASTA or FASTQ file, optionally compressed. Every query
	// record is aligned against every Target record.
	Query string
	// Target is a FASTA file, optionally compressed.
	Target string
	// Output is the result path. Stdout is used if empty. A ".gz" suffix
	// gzip-compresses the output.
	Output string
	// Format is FormatText or FormatTSV.
	Format string
	// Scoring is passed to align.Global unchanged.
	Scoring align.Scoring
	// MaxCells bounds the score matrix size, (N+1)*(M+1), of any single pair.
	// Pairs above the bound fail with errors.Unavailable before anything is
	// allocated. A value <= 0 disables the check.
	MaxCells int64
	// IgnoreCase upper-cases a/c/g/t before validation.
	IgnoreCase bool
}

// DefaultOpts is the default configuration of bio-align. The MaxCells
// default caps a single score matrix at 2GiB.
var DefaultOpts = Opts{
	Format:   FormatText,
	Scoring:  align.DefaultScoring,
	MaxCells: 1 << 28,
}

func (o *Opts) validate() error {
	literal := len(o.Pair) > 0
	files := o.Query != "" || o.Target != ""
	switch {
	case literal && files:
		return errors.E(errors.Invalid, "a literal sequence pair cannot be combined with query/target files")
	case literal && len(o.Pair) != 2:
		return errors.E(errors.Invalid, fmt.Sprintf("exactly two sequences are required, got %d", len(o.Pair)))
	case !literal && (o.Query == "" || o.Target == ""):
		return errors.E(errors.Invalid, "both a query and a target file are required")
	}
	if o.Format != FormatText && o.Format != FormatTSV {
		return errors.E(errors.Invalid, fmt.Sprintf("unknown output format %q, must be %q or %q", o.Format, FormatText, FormatTSV))
	}
	return nil
}
