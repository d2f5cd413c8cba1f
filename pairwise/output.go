// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairwise

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/bioalign/align"
	"github.com/klauspost/compress/gzip"
)

// result is the alignment of one query against one target.
type result struct {
	query, target record
	aln           align.Alignment
}

type resultWriter interface {
	write(r result) error
	flush() error
}

// tsvHeader names the columns written by tsvWriter.
const tsvHeader = "#QUERY\tTARGET\tQLEN\tTLEN\tSCORE\tMATCHES\tMISMATCHES\tGAPS\tALIGN_QUERY\tALIGN_TARGET"

type tsvWriter struct {
	w *tsv.Writer
}

func newTSVWriter(w io.Writer) (*tsvWriter, error) {
	tw := tsv.NewWriter(w)
	tw.WriteString(tsvHeader)
	if err := tw.EndLine(); err != nil {
		return nil, err
	}
	return &tsvWriter{w: tw}, nil
}

func (t *tsvWriter) write(r result) error {
	stats := r.aln.Stats()
	t.w.WriteString(r.query.name)
	t.w.WriteString(r.target.name)
	t.w.WriteInt64(int64(len(r.query.seq)))
	t.w.WriteInt64(int64(len(r.target.seq)))
	t.w.WriteInt64(r.aln.Score)
	t.w.WriteInt64(int64(stats.Matches))
	t.w.WriteInt64(int64(stats.Mismatches))
	t.w.WriteInt64(int64(stats.Gaps))
	t.w.WriteString(string(r.aln.A))
	t.w.WriteString(string(r.aln.B))
	return t.w.EndLine()
}

func (t *tsvWriter) flush() error {
	return t.w.Flush()
}

type textWriter struct {
	w *bufio.Writer
	n int
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: bufio.NewWriter(w)}
}

func (t *textWriter) write(r result) error {
	if t.n > 0 {
		if err := t.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	t.n++
	stats := r.aln.Stats()
	_, err := fmt.Fprintf(t.w, "# %s vs %s\n%s\n%s\n%s\nscore=%d matches=%d mismatches=%d gaps=%d\n",
		r.query.name, r.target.name,
		r.aln.A, r.aln.MidLine(), r.aln.B,
		r.aln.Score, stats.Matches, stats.Mismatches, stats.Gaps)
	return err
}

func (t *textWriter) flush() error {
	return t.w.Flush()
}

func newResultWriter(format string, w io.Writer) (resultWriter, error) {
	if format == FormatTSV {
		return newTSVWriter(w)
	}
	return newTextWriter(w), nil
}

// createOutput opens path for writing, or returns stdout if path is empty.
// Output to a path ending in ".gz" is gzip-compressed. The returned close
// function must be called exactly once.
func createOutput(ctx context.Context, path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	out, err := file.Create(ctx, path)
	if err != nil {
		return nil, nil, errors.E(err, "create", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		return out.Writer(ctx), func() error { return out.Close(ctx) }, nil
	}
	gz := gzip.NewWriter(out.Writer(ctx))
	return gz, func() error {
		once := errors.Once{}
		once.Set(gz.Close())
		once.Set(out.Close(ctx))
		return once.Err()
	}, nil
}
