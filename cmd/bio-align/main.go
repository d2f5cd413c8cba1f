package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bioalign/pairwise"
)

var (
	query      = flag.String("query", "", "FASTA or FASTQ file of query sequences, optionally compressed")
	target     = flag.String("target", "", "FASTA file of target sequences, optionally compressed")
	output     = flag.String("output", "", "Output path. Stdout if empty; a .gz suffix compresses the output")
	format     = flag.String("format", pairwise.DefaultOpts.Format, "Output format, 'text' or 'tsv'")
	match      = flag.Int("match", int(pairwise.DefaultOpts.Scoring.Match), "Score for aligning two equal bases")
	mismatch   = flag.Int("mismatch", int(pairwise.DefaultOpts.Scoring.Mismatch), "Score for aligning two different bases")
	gap        = flag.Int("gap", int(pairwise.DefaultOpts.Scoring.Gap), "Score for aligning a base against a gap")
	maxCells   = flag.Int64("max-cells", pairwise.DefaultOpts.MaxCells, "Maximum score matrix cells, (N+1)*(M+1), per alignment. <= 0 disables the limit")
	ignoreCase = flag.Bool("ignore-case", false, "Accept lower-case a, c, g, t")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bio-align [flags] <seq1> <seq2>
  bio-align [flags] -query <fasta|fastq> -target <fasta>

Flags:
`)
	flag.PrintDefaults()
}

// newOpts builds pairwise options from the parsed flags and the positional
// arguments.
func newOpts(args []string) (pairwise.Opts, error) {
	opts := pairwise.DefaultOpts
	for _, v := range []struct {
		name string
		val  int
	}{{"match", *match}, {"mismatch", *mismatch}, {"gap", *gap}} {
		if int(int32(v.val)) != v.val {
			return opts, errors.E(errors.Invalid, fmt.Sprintf("-%s=%d does not fit in 32 bits", v.name, v.val))
		}
	}
	opts.Pair = args
	opts.Query = *query
	opts.Target = *target
	opts.Output = *output
	opts.Format = *format
	opts.Scoring.Match = int32(*match)
	opts.Scoring.Mismatch = int32(*mismatch)
	opts.Scoring.Gap = int32(*gap)
	opts.MaxCells = *maxCells
	opts.IgnoreCase = *ignoreCase
	return opts, nil
}

func main() {
	flag.Usage = usage
	shutdown := grail.Init()
	defer shutdown()

	opts, err := newOpts(flag.Args())
	if err != nil {
		log.Fatalf("%v", err)
	}
	ctx := vcontext.Background()
	summary, err := pairwise.Run(ctx, opts)
	if err != nil {
		log.Fatalf("bio-align: %v", err)
	}
	log.Debug.Printf("bio-align: %d pairs, exiting", summary.Pairs)
}
