// SPDX-License-Identifier: MIT
// Package fit: sentinel error set. Matched via errors.Is.

package fit

import "errors"

var (
	// ErrBadDegree indicates a polynomial degree < 1.
	ErrBadDegree = errors.New("fit: degree must be >= 1")

	// ErrSampleMismatch indicates len(xs) != len(ys).
	ErrSampleMismatch = errors.New("fit: xs and ys differ in length")

	// ErrTooFewSamples indicates fewer samples than coefficients: the
	// system would be underdetermined.
	ErrTooFewSamples = errors.New("fit: not enough sample points for degree")

	// ErrUnknownMethod indicates a Method value outside the defined set.
	ErrUnknownMethod = errors.New("fit: unknown solution method")

	// ErrBadCurve indicates invalid curve-sampling parameters
	// (fewer than two steps, or an empty interval).
	ErrBadCurve = errors.New("fit: invalid curve sampling parameters")
)
