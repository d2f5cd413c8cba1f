// Package fastq reads FASTQ-formatted reads.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var (
	// ErrShort is returned when a truncated FASTQ file is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ file is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
)

// maxLineSize bounds the length of a single FASTQ line.
const maxLineSize = 64 << 20

// A Read is a FASTQ read. Name is the ID line without the leading '@' and
// without anything after the first space.
type Read struct {
	Name, Seq, Qual string
}

var errEOF = errors.New("eof")

// Scanner reads FASTQ records one at a time. Scanners are not threadsafe.
//
// Scanner requires ID lines to begin with "@", line 3 to begin with "+" and
// the sequence and quality lines to have equal length. It does not check
// the symbols of either line.
type Scanner struct {
	b    *bufio.Scanner
	line int
	err  error
}

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineSize)
	return &Scanner{b: b}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	// Blank lines between records are tolerated.
	for {
		if !f.b.Scan() {
			if f.err = f.b.Err(); f.err == nil {
				f.err = errEOF
			}
			return false
		}
		f.line++
		if len(bytes.TrimRight(f.b.Bytes(), "\r")) != 0 {
			break
		}
	}
	id := bytes.TrimRight(f.b.Bytes(), "\r")
	if id[0] != '@' {
		f.err = ErrInvalid
		return false
	}
	read.Name = string(bytes.SplitN(id[1:], []byte(" "), 2)[0])
	if !f.scan() {
		return false
	}
	read.Seq = string(bytes.TrimRight(f.b.Bytes(), "\r"))
	if !f.scan() {
		return false
	}
	if unk := f.b.Bytes(); len(unk) == 0 || unk[0] != '+' {
		f.err = ErrInvalid
		return false
	}
	if !f.scan() {
		return false
	}
	read.Qual = string(bytes.TrimRight(f.b.Bytes(), "\r"))
	if len(read.Qual) != len(read.Seq) {
		f.err = ErrInvalid
		return false
	}
	return true
}

func (f *Scanner) scan() bool {
	ok := f.b.Scan()
	if !ok {
		if f.err = f.b.Err(); f.err == nil {
			f.err = ErrShort
		}
		return false
	}
	f.line++
	return true
}

// Line returns the number of lines consumed so far. After a failed Scan it
// points at the offending line.
func (f *Scanner) Line() int {
	return f.line
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
