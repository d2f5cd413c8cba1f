// Package fasta reads FASTA-formatted sequence data.  FASTA files consist of
// a number of named sequences that may be interrupted by newlines.  For
// example:
//
// >query1 a short read
// ACGTAC
// GAGGAC
// >query2
// ACGT
//
// Sequence names are the stretch of characters immediately after '>' up to
// the first space; the rest of the header line is ignored.  Blank lines and
// trailing '\r' are ignored.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Fasta holds a set of named sequences.
type Fasta interface {
	// Get returns a substring of the given sequence name at the given
	// coordinates, which are treated as a 0-based half-open interval
	// [start, end).
	Get(seqName string, start, end uint64) (string, error)

	// Len returns the length of the given sequence.
	Len(seqName string) (uint64, error)

	// Seq returns the full sequence. The caller must not modify the result.
	Seq(seqName string) ([]byte, error)

	// SeqNames returns the names of all sequences, in the order of appearance
	// in the FASTA data.
	SeqNames() []string
}

type fasta struct {
	seqs     map[string][]byte
	seqNames []string
}

// New reads all the FASTA data from the given reader into memory.  Empty
// input yields a Fasta without sequences.  New fails if sequence data
// appears before the first header or if two sequences share a name.
func New(r io.Reader) (Fasta, error) {
	f := &fasta{seqs: make(map[string][]byte)}
	br := bufio.NewReader(r)
	var (
		seqName string
		seq     []byte
		inSeq   bool
		lineNum int
	)
	flush := func() error {
		if !inSeq {
			return nil
		}
		if _, ok := f.seqs[seqName]; ok {
			return errors.Errorf("malformed FASTA data: duplicate sequence name %q", seqName)
		}
		f.seqs[seqName] = seq
		f.seqNames = append(f.seqNames, seqName)
		return nil
	}
	for {
		line, err := br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "couldn't read FASTA data")
		}
		lineNum++
		line = bytes.TrimRight(line, "\r\n")
		switch {
		case len(line) == 0:
		case line[0] == '>': // Start a new sequence.
			if e := flush(); e != nil {
				return nil, e
			}
			seqName = string(bytes.SplitN(line[1:], []byte(" "), 2)[0])
			seq = nil
			inSeq = true
		case !inSeq:
			return nil, errors.Errorf("malformed FASTA data: line %d: sequence data before the first header", lineNum)
		default:
			seq = append(seq, line...)
		}
		if err == io.EOF {
			break
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *fasta) lookup(seqName string) ([]byte, error) {
	s, ok := f.seqs[seqName]
	if !ok {
		return nil, errors.Errorf("sequence not found: %s", seqName)
	}
	return s, nil
}

// Get implements Fasta.Get().
func (f *fasta) Get(seqName string, start, end uint64) (string, error) {
	s, err := f.lookup(seqName)
	if err != nil {
		return "", err
	}
	if end <= start {
		return "", errors.Errorf("start must be less than end")
	}
	if end > uint64(len(s)) {
		return "", errors.Errorf("invalid query range %d - %d for sequence %s with length %d",
			start, end, seqName, len(s))
	}
	return string(s[start:end]), nil
}

// Len implements Fasta.Len().
func (f *fasta) Len(seqName string) (uint64, error) {
	s, err := f.lookup(seqName)
	if err != nil {
		return 0, err
	}
	return uint64(len(s)), nil
}

// Seq implements Fasta.Seq().
func (f *fasta) Seq(seqName string) ([]byte, error) {
	return f.lookup(seqName)
}

// SeqNames implements Fasta.SeqNames().
func (f *fasta) SeqNames() []string {
	return f.seqNames
}
