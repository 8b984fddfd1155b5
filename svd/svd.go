// Package svd - decomposition, Σ assembly and reconstruction check.

package svd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/numlab/blasx"
	"github.com/katalvlaran/numlab/matrix"
)

// Decomposition holds the full factors of A = U·Σ·Vᵀ.
type Decomposition struct {
	U  *matrix.Dense // m×m row-major, orthogonal
	S  []float64     // min(m,n) singular values, descending
	VT *matrix.Dense // n×n row-major, orthogonal (Vᵀ)

	m, n int // original shape of A
}

// Decompose factors a row-major matrix. The input is never mutated.
func Decompose(a *matrix.Dense) (*Decomposition, error) {
	if a == nil {
		return nil, fmt.Errorf("Decompose: %w", matrix.ErrNilMatrix)
	}

	u, s, vt, err := blasx.SVD(a)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	return &Decomposition{U: u, S: s, VT: vt, m: a.Rows(), n: a.Cols()}, nil
}

// Sigma materializes Σ as an m×n row-major matrix with the singular
// values on the main diagonal.
func (d *Decomposition) Sigma() (*matrix.Dense, error) {
	sigma, err := matrix.NewDense(d.m, d.n, matrix.RowMajor)
	if err != nil {
		return nil, fmt.Errorf("Sigma: %w", err)
	}
	for i, v := range d.S {
		if err := sigma.Set(i, i, v); err != nil {
			return nil, fmt.Errorf("Sigma: %w", err)
		}
	}

	return sigma, nil
}

// Reconstruct rebuilds A as U·Σ·Vᵀ through the column-major multiply
// contract, returning a fresh row-major matrix. With exact factors the
// result matches the original up to floating-point rounding; the gap is
// measured by MaxAbsDiff.
// Complexity: two GEMMs, O(m²n + m·n²).
func (d *Decomposition) Reconstruct() (*matrix.Dense, error) {
	sigma, err := d.Sigma()
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: %w", err)
	}

	// Adapt every factor into the GEMM layout.
	ucm, err := matrix.ToColMajor(d.U)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: U: %w", err)
	}
	scm, err := matrix.ToColMajor(sigma)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: Sigma: %w", err)
	}
	vtcm, err := matrix.ToColMajor(d.VT)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: VT: %w", err)
	}

	us, err := blasx.Gemm(ucm, scm)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: U·Σ: %w", err)
	}
	rec, err := blasx.Gemm(us, vtcm)
	if err != nil {
		return nil, fmt.Errorf("Reconstruct: (U·Σ)·Vᵀ: %w", err)
	}

	return matrix.ToRowMajor(rec)
}

// MaxAbsDiff returns the maximum absolute elementwise difference between
// two matrices of identical shape and layout — the reconstruction-error
// diagnostic.
func MaxAbsDiff(a, b *matrix.Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("MaxAbsDiff: %w", matrix.ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, fmt.Errorf("MaxAbsDiff: %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}
	if a.Layout() != b.Layout() {
		return 0, fmt.Errorf("MaxAbsDiff: %s vs %s: %w", a.Layout(), b.Layout(), matrix.ErrLayoutMismatch)
	}

	maxDiff := 0.0
	ra, rb := a.Raw(), b.Raw()
	for i := range ra {
		if d := math.Abs(ra[i] - rb[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
