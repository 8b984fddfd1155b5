// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that declared matrix dimensions are
	// non-positive or missing where positive integers were expected.
	// Constructors and readers must validate before any allocation or read.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows, or a backing slice whose
	// length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrLayoutMismatch indicates that a matrix with the wrong physical
	// layout was passed to a primitive that mandates a specific one
	// (e.g. ToColMajor on an already column-major matrix).
	ErrLayoutMismatch = errors.New("matrix: layout mismatch")

	// ErrMalformedInput indicates that an input stream was exhausted or
	// contained a non-numeric token where a matrix entry was expected.
	// Wrappers attach the matrix name and the failing (row, col) position.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrNilMatrix indicates that a nil *Dense was used as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
