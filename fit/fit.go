// Package fit - the fitting pipeline: design matrix, solve, diagnostics.

package fit

import (
	"fmt"

	"github.com/katalvlaran/numlab/blasx"
	"github.com/katalvlaran/numlab/matrix"
)

// Result holds the fitted model and its quality diagnostics.
type Result struct {
	Degree    int       // polynomial degree d
	Coeffs    []float64 // d+1 coefficients, highest power first
	Predicted []float64 // ŷᵢ for every input xᵢ
	Residuals []float64 // ŷᵢ − yᵢ
	SSE       float64   // sum of squared residuals
	MSE       float64   // SSE / number of samples
}

// Predict evaluates the fitted polynomial at x (Horner's scheme).
// Complexity: O(degree).
func (r *Result) Predict(x float64) float64 {
	acc := 0.0
	for _, c := range r.Coeffs {
		acc = acc*x + c
	}

	return acc
}

// Fit estimates a degree-d polynomial through the samples (xs, ys) by
// least squares and computes prediction diagnostics.
//
// Stage 1 (Validate): degree >= 1, matching sample slices, at least
// degree+1 samples.
// Stage 2 (Prepare): build the Vandermonde design matrix with descending
// powers [xᵈ … x 1], in the physical layout the chosen solver mandates.
// Stage 3 (Execute): solve via QR (default) or the normal equations.
// Stage 4 (Finalize): predictions, residuals, SSE, MSE.
//
// A singular or rank-deficient system surfaces as blasx.ErrNumericFailure.
// Complexity: O(m·d²) for QR, O(m·d² + d³) for the normal equations.
func Fit(xs, ys []float64, degree int, opts ...Option) (*Result, error) {
	// Stage 1: validate
	if degree < 1 {
		return nil, fmt.Errorf("Fit: degree %d: %w", degree, ErrBadDegree)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("Fit: %d xs vs %d ys: %w", len(xs), len(ys), ErrSampleMismatch)
	}
	m := len(xs)
	n := degree + 1
	if m < n {
		return nil, fmt.Errorf("Fit: %d samples for degree %d: %w", m, degree, ErrTooFewSamples)
	}
	cfg := gatherOptions(opts)

	// Stages 2-3: build the design matrix and solve
	var (
		theta []float64
		err   error
	)
	switch cfg.method {
	case MethodQR:
		theta, err = solveQR(xs, ys, m, n)
	case MethodNormal:
		theta, err = solveNormal(xs, ys, m, n)
	default:
		return nil, fmt.Errorf("Fit: method %d: %w", cfg.method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	// Stage 4: diagnostics
	res := &Result{
		Degree:    degree,
		Coeffs:    theta,
		Predicted: make([]float64, m),
		Residuals: make([]float64, m),
	}
	for i := 0; i < m; i++ {
		yhat := res.Predict(xs[i])
		e := yhat - ys[i]
		res.Predicted[i] = yhat
		res.Residuals[i] = e
		res.SSE += e * e
	}
	res.MSE = res.SSE / float64(m)

	return res, nil
}

// design fills one row-major or column-major Vandermonde buffer.
// Powers descend along columns: column j holds x^(n-1-j).
func design(xs []float64, m, n int, layout matrix.Layout) (*matrix.Dense, error) {
	a, err := matrix.NewDense(m, n, layout)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		p := 1.0
		for j := n - 1; j >= 0; j-- { // constant column first, then climb
			if err := a.Set(i, j, p); err != nil {
				return nil, err
			}
			p *= xs[i]
		}
	}

	return a, nil
}

// solveQR solves min‖A·θ − y‖₂ directly (the dgels path).
func solveQR(xs, ys []float64, m, n int) ([]float64, error) {
	a, err := design(xs, m, n, matrix.RowMajor)
	if err != nil {
		return nil, err
	}

	return blasx.LeastSquares(a, ys)
}

// solveNormal forms and solves the normal equations (the dgesv path):
// (AᵀA)·θ = Aᵀy with A column-major for the classical GEMM contract.
func solveNormal(xs, ys []float64, m, n int) ([]float64, error) {
	a, err := design(xs, m, n, matrix.ColMajor)
	if err != nil {
		return nil, err
	}
	ata, err := blasx.Gram(a)
	if err != nil {
		return nil, err
	}
	aty, err := blasx.MulTransVec(a, ys)
	if err != nil {
		return nil, err
	}

	return blasx.SolveLU(ata, aty)
}
