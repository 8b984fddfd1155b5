// Package blasx - linear-system and least-squares solvers.
//
// Both drivers here overwrite their inputs in place at the LAPACK level
// (LU factors land in the coefficient matrix, the solution lands in the
// right-hand side). The wrappers take immutable inputs and return fresh
// outputs, performing the defensive copies internally — callers never see
// a silently clobbered buffer.

package blasx

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/numlab/matrix"
)

// SolveLU solves the square system A·x = b by LU factorization with
// partial pivoting (the classical dgesv pairing of Getrf + Getrs).
// A must be n×n column-major, b of length n; neither is mutated.
//
// Stage 1 (Validate): shape, layout, b length.
// Stage 2 (Prepare): defensive copies of A and b.
// Stage 3 (Execute): factor, then solve against the factored transpose
// view (the row-major buffer of a column-major A holds Aᵀ, so the solve
// uses the transpose flag to recover A·x = b).
// Returns ErrNumericFailure when a zero pivot makes A singular.
// Complexity: O(n³).
func SolveLU(a *matrix.Dense, b []float64) (x []float64, err error) {
	// Stage 1: validate
	if err = checkColMajor("SolveLU", "A", a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, fmt.Errorf("SolveLU: A is %dx%d, want square: %w", n, a.Cols(), matrix.ErrDimensionMismatch)
	}
	if len(b) != n {
		return nil, fmt.Errorf("SolveLU: A is %dx%d, b has %d elements: %w", n, n, len(b), matrix.ErrDimensionMismatch)
	}

	// Stage 2: defensive copies — Getrf/Getrs overwrite both buffers
	lu := append([]float64(nil), a.Raw()...)
	x = append([]float64(nil), b...)

	// Stage 3: factor and solve
	defer catch("SolveLU", &err)
	luView := blas64.General{Rows: n, Cols: n, Stride: n, Data: lu}
	ipiv := make([]int, n)
	if ok := lapack64.Getrf(luView, ipiv); !ok {
		return nil, fmt.Errorf("SolveLU: singular matrix: %w", ErrNumericFailure)
	}
	rhs := blas64.General{Rows: n, Cols: 1, Stride: 1, Data: x}
	lapack64.Getrs(blas.Trans, luView, rhs, ipiv)

	return x, nil
}

// LeastSquares solves the overdetermined system min‖A·x − y‖₂ by QR
// factorization (dgels). A must be m×n row-major with m ≥ n, y of length
// m; neither is mutated. The returned slice holds the n coefficients.
//
// Rank deficiency is reported only through ErrNumericFailure, exactly as
// the underlying driver reports it — no separate conditioning check.
// Complexity: O(m*n²).
func LeastSquares(a *matrix.Dense, y []float64) (coef []float64, err error) {
	// Validate: dgels wants the overdetermined, row-major shape here
	if a == nil {
		return nil, fmt.Errorf("LeastSquares: A: %w", matrix.ErrNilMatrix)
	}
	if a.Layout() != matrix.RowMajor {
		return nil, fmt.Errorf("LeastSquares: A is %s: %w", a.Layout(), matrix.ErrLayoutMismatch)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, fmt.Errorf("LeastSquares: A is %dx%d, need rows >= cols: %w", m, n, matrix.ErrDimensionMismatch)
	}
	if len(y) != m {
		return nil, fmt.Errorf("LeastSquares: A has %d rows, y has %d elements: %w", m, len(y), matrix.ErrDimensionMismatch)
	}

	// Defensive copies — Gels overwrites A with its factorization and the
	// right-hand side with the solution (first n entries) and residual data.
	qr := append([]float64(nil), a.Raw()...)
	rhs := append([]float64(nil), y...)

	defer catch("LeastSquares", &err)
	av := blas64.General{Rows: m, Cols: n, Stride: n, Data: qr}
	bv := blas64.General{Rows: m, Cols: 1, Stride: 1, Data: rhs}

	// Workspace query, then the real call.
	work := make([]float64, 1)
	lapack64.Gels(blas.NoTrans, av, bv, work, -1)
	lwork := int(work[0])
	work = make([]float64, lwork)
	if ok := lapack64.Gels(blas.NoTrans, av, bv, work, lwork); !ok {
		return nil, fmt.Errorf("LeastSquares: rank-deficient design matrix: %w", ErrNumericFailure)
	}

	coef = append([]float64(nil), rhs[:n]...)

	return coef, nil
}
