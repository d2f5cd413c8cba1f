// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pairwise drives package align over sequences given on the command
// line or read from FASTA/FASTQ files, and writes the alignments as text or
// TSV. Pairs are aligned one after another, each with its own score matrix.
package pairwise

import (
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bioalign/align"
	"github.com/grailbio/bioalign/sequence"
)

// Summary describes a completed Run.
type Summary struct {
	// Pairs is the number of alignments written.
	Pairs int
	// Cells is the total number of score matrix cells computed.
	Cells int64
}

// Run aligns the pairs described by opts and writes the results to
// opts.Output. All inputs are read and validated before the first alignment
// is computed, so an invalid symbol anywhere produces no output rows.
func Run(ctx context.Context, opts Opts) (summary Summary, err error) {
	if err = opts.validate(); err != nil {
		return
	}
	queries, targets, err := loadInputs(ctx, opts)
	if err != nil {
		return
	}
	if err = prepare(queries, opts.IgnoreCase); err != nil {
		return
	}
	if err = prepare(targets, opts.IgnoreCase); err != nil {
		return
	}

	w, closeOutput, err := createOutput(ctx, opts.Output)
	if err != nil {
		return
	}
	defer func() {
		if e := closeOutput(); e != nil && err == nil {
			err = e
		}
	}()
	rw, err := newResultWriter(opts.Format, w)
	if err != nil {
		return
	}
	for _, q := range queries {
		for _, t := range targets {
			var aln align.Alignment
			if aln, err = alignPair(q, t, opts); err != nil {
				return
			}
			if err = rw.write(result{query: q, target: t, aln: aln}); err != nil {
				return
			}
			summary.Pairs++
			summary.Cells += cells(q, t)
		}
	}
	if err = rw.flush(); err != nil {
		return
	}
	log.Printf("pairwise: aligned %d pairs, %d matrix cells, scoring %v", summary.Pairs, summary.Cells, opts.Scoring)
	return
}

func loadInputs(ctx context.Context, opts Opts) (queries, targets []record, err error) {
	if len(opts.Pair) == 2 {
		queries = []record{{name: "seq1", seq: []byte(opts.Pair[0])}}
		targets = []record{{name: "seq2", seq: []byte(opts.Pair[1])}}
		return
	}
	if queries, err = readRecords(ctx, opts.Query); err != nil {
		return
	}
	if targets, err = readRecords(ctx, opts.Target); err != nil {
		return
	}
	if len(queries) == 0 {
		err = errors.E(errors.Invalid, "no sequences in", opts.Query)
	} else if len(targets) == 0 {
		err = errors.E(errors.Invalid, "no sequences in", opts.Target)
	}
	log.Debug.Printf("pairwise: read %d queries from %s, %d targets from %s",
		len(queries), opts.Query, len(targets), opts.Target)
	return
}

// cells returns the score matrix size for aligning q against t.
func cells(q, t record) int64 {
	return int64(len(q.seq)+1) * int64(len(t.seq)+1)
}

func alignPair(q, t record, opts Opts) (align.Alignment, error) {
	if n := cells(q, t); opts.MaxCells > 0 && n > opts.MaxCells {
		return align.Alignment{}, errors.E(errors.Unavailable,
			fmt.Sprintf("aligning %s (%d bp) against %s (%d bp) needs %d matrix cells, limit is %d",
				q.name, len(q.seq), t.name, len(t.seq), n, opts.MaxCells))
	}
	log.Debug.Printf("pairwise: %s (%d bp, GC %.3f) vs %s (%d bp, GC %.3f)",
		q.name, len(q.seq), sequence.GCFraction(q.seq), t.name, len(t.seq), sequence.GCFraction(t.seq))
	aln, err := align.Global(q.seq, t.seq, opts.Scoring)
	if err != nil {
		return align.Alignment{}, errors.E(err, fmt.Sprintf("align %s against %s", q.name, t.name))
	}
	return aln, nil
}
