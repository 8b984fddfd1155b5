// SPDX-License-Identifier: MIT
// Package blasx: sentinel error set. Matched via errors.Is; wrapped with
// fmt.Errorf context at detection sites, never returned pre-wrapped.

package blasx

import "errors"

var (
	// ErrInvalidArgument corresponds to the negative-status class of the
	// classical drivers: the routine rejected an argument. Because blasx
	// validates dimensions and layouts up front, seeing this error means a
	// bug in the wrapper itself, not bad user data. Fatal, never retried.
	ErrInvalidArgument = errors.New("blasx: invalid argument passed to backend routine")

	// ErrNumericFailure corresponds to the positive-status class: the
	// routine ran but the data defeated it — a singular matrix in a solve,
	// rank deficiency in a least-squares factorization, or an SVD that did
	// not converge. Fatal for the run, never retried.
	ErrNumericFailure = errors.New("blasx: numeric failure in backend routine")
)
