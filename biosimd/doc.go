// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides table-driven implementations of the ASCII
// nucleotide operations that run over every input sequence before it is
// aligned: ACGT validation, capitalization and G/C counting.
//
// See base/simd/doc.go for comments on the overall design.
package biosimd
