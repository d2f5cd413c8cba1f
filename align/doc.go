// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package align implements global pairwise alignment of two nucleotide
// sequences (Needleman-Wunsch) with a linear gap penalty.
//
// An alignment is computed in two steps. NewMatrix fills the (N+1)x(M+1)
// optimal-score matrix for sequences of length N and M, and Traceback walks
// the matrix backward from the bottom-right cell to produce one optimal
// alignment. Global runs both steps.
//
// The traceback does not store per-cell directions. It recomputes them from
// the scores and resolves ties deterministically: a diagonal step is
// preferred, then a step that consumes the first sequence ("up"), then a step
// that consumes the second ("left"). For example, with DefaultScoring
//
//   ACTG
//   ||
//   ACGT   score 2
//
// The package performs no validation of its inputs. Callers are expected to
// check sequences against the ACGT alphabet (see package sequence) before
// aligning; symbols outside the alphabet are compared bytewise and produce an
// unspecified alignment.
package align
