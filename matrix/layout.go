// SPDX-License-Identifier: MIT

// Package matrix - Layout Adapter.
//
// The BLAS-style multiply contract in blasx mandates column-major operands
// while the text format (and human intuition) is row-major, so every
// pipeline converts each operand on the way in and each result on the way
// out. The conversion is a pure index transposition — values are copied
// verbatim, preserving floating-point bit patterns exactly, which is what
// makes the two adapters mutually inverse bit-for-bit.

package matrix

import "fmt"

// ToColMajor converts a row-major matrix to a freshly allocated
// column-major one: cm[j*rows+i] = rm[i*cols+j] for every (i, j).
// Stage 1 (Validate): non-nil input with RowMajor tag.
// Stage 2 (Execute): index-transpose into a new buffer.
// Returns ErrNilMatrix or ErrLayoutMismatch on contract violations.
// Complexity: O(r*c) time and memory; output never aliases input.
func ToColMajor(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToColMajor: %w", ErrNilMatrix)
	}
	if m.layout != RowMajor {
		return nil, fmt.Errorf("ToColMajor: input is %s: %w", m.layout, ErrLayoutMismatch)
	}

	rows, cols := m.r, m.c
	cm := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cm[j*rows+i] = m.data[i*cols+j]
		}
	}

	return &Dense{r: rows, c: cols, layout: ColMajor, data: cm}, nil
}

// ToRowMajor converts a column-major matrix to a freshly allocated
// row-major one: rm[i*cols+j] = cm[j*rows+i] for every (i, j).
// It is the exact inverse of ToColMajor.
// Complexity: O(r*c) time and memory; output never aliases input.
func ToRowMajor(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ToRowMajor: %w", ErrNilMatrix)
	}
	if m.layout != ColMajor {
		return nil, fmt.Errorf("ToRowMajor: input is %s: %w", m.layout, ErrLayoutMismatch)
	}

	rows, cols := m.r, m.c
	rm := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rm[i*cols+j] = m.data[j*rows+i]
		}
	}

	return &Dense{r: rows, c: cols, layout: RowMajor, data: rm}, nil
}
