// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pairwise

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/bioalign/encoding/fasta"
	"github.com/grailbio/bioalign/encoding/fastq"
	"github.com/grailbio/bioalign/sequence"
)

// record is one named input sequence.
type record struct {
	name string
	seq  []byte
}

var fastqSuffixes = []string{".fq", ".fastq"}

// isFASTQPath reports whether path names a FASTQ file, ignoring any
// compression suffix.
func isFASTQPath(path string) bool {
	for _, ext := range []string{".gz", ".bz2", ".zst"} {
		path = strings.TrimSuffix(path, ext)
	}
	for _, ext := range fastqSuffixes {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// readRecords reads every record of a FASTA or FASTQ file. The format is
// chosen by file extension, falling back to sniffing the first byte ('@' for
// FASTQ). Compressed files are decompressed transparently.
func readRecords(ctx context.Context, path string) (recs []record, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var r io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(r, in.Name()); u != nil {
		defer func() {
			if e := u.Close(); e != nil && err == nil {
				err = e
			}
		}()
		r = u
	}
	br := bufio.NewReader(r)
	if isFASTQPath(path) {
		return readFASTQ(br, path)
	}
	head, err := br.Peek(1)
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.E(err, "read", path)
	}
	if head[0] == '@' {
		return readFASTQ(br, path)
	}
	return readFASTA(br, path)
}

func readFASTA(r io.Reader, path string) ([]record, error) {
	fa, err := fasta.New(r)
	if err != nil {
		return nil, errors.E(err, path)
	}
	recs := make([]record, 0, len(fa.SeqNames()))
	for _, name := range fa.SeqNames() {
		seq, err := fa.Seq(name)
		if err != nil {
			return nil, errors.E(err, path)
		}
		// Copied so that normalization never touches the reader's data.
		recs = append(recs, record{name: name, seq: append([]byte(nil), seq...)})
	}
	return recs, nil
}

func readFASTQ(r io.Reader, path string) ([]record, error) {
	sc := fastq.NewScanner(r)
	var (
		recs []record
		read fastq.Read
	)
	for sc.Scan(&read) {
		recs = append(recs, record{name: read.Name, seq: []byte(read.Seq)})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.E(err, fmt.Sprintf("%s:%d", path, sc.Line()))
	}
	return recs, nil
}

// prepare optionally normalizes and then validates every record. It stops at
// the first invalid record.
func prepare(recs []record, ignoreCase bool) error {
	for _, rec := range recs {
		if ignoreCase {
			sequence.Normalize(rec.seq)
		}
		if err := sequence.Validate(rec.name, rec.seq); err != nil {
			return err
		}
	}
	return nil
}
