/*
bio-align computes an optimal global alignment (Needleman-Wunsch, linear gap
penalty) of nucleotide sequences.

Align two literal sequences:

    bio-align ACTG ACGT

Align every read of a FASTQ (or FASTA) file against every sequence of a
reference FASTA file, writing a gzipped TSV:

    bio-align -query reads.fq.gz -target ref.fa -format tsv -output out.tsv.gz

Scores are set with -match, -mismatch and -gap (defaults 2, -1, -2).
Sequences must consist of A, C, G and T; -ignore-case also accepts lower
case. -max-cells bounds the memory used by a single alignment.
*/
package main
