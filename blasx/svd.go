// Package blasx - singular value decomposition.

package blasx

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/numlab/matrix"
)

// SVD computes the full singular value decomposition A = U·Σ·Vᵀ of a
// row-major m×n matrix via the dgesvd driver.
//
// Results are freshly allocated: U is m×m row-major, s holds the min(m,n)
// singular values in descending order, and vt is Vᵀ, n×n row-major. The
// input is copied first because the driver destroys its A argument.
//
// Returns ErrNumericFailure if the bidiagonal reduction fails to converge.
// Complexity: O(min(m,n)·m·n) plus the backend workspace.
func SVD(a *matrix.Dense) (u *matrix.Dense, s []float64, vt *matrix.Dense, err error) {
	// Validate
	if a == nil {
		return nil, nil, nil, fmt.Errorf("SVD: A: %w", matrix.ErrNilMatrix)
	}
	if a.Layout() != matrix.RowMajor {
		return nil, nil, nil, fmt.Errorf("SVD: A is %s: %w", a.Layout(), matrix.ErrLayoutMismatch)
	}

	m, n := a.Rows(), a.Cols()
	minmn := m
	if n < m {
		minmn = n
	}

	// Defensive copy — Gesvd overwrites A.
	acopy := append([]float64(nil), a.Raw()...)
	av := blas64.General{Rows: m, Cols: n, Stride: n, Data: acopy}

	udata := make([]float64, m*m)
	vtdata := make([]float64, n*n)
	s = make([]float64, minmn)

	uv := blas64.General{Rows: m, Cols: m, Stride: m, Data: udata}
	vtv := blas64.General{Rows: n, Cols: n, Stride: n, Data: vtdata}

	defer catch("SVD", &err)

	// Workspace query, then the real call.
	work := make([]float64, 1)
	lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, av, uv, vtv, s, work, -1)
	lwork := int(work[0])
	work = make([]float64, lwork)
	if ok := lapack64.Gesvd(lapack.SVDAll, lapack.SVDAll, av, uv, vtv, s, work, lwork); !ok {
		return nil, nil, nil, fmt.Errorf("SVD: did not converge: %w", ErrNumericFailure)
	}

	if u, err = matrix.NewDenseFrom(m, m, matrix.RowMajor, udata); err != nil {
		return nil, nil, nil, fmt.Errorf("SVD: %w", err)
	}
	if vt, err = matrix.NewDenseFrom(n, n, matrix.RowMajor, vtdata); err != nil {
		return nil, nil, nil, fmt.Errorf("SVD: %w", err)
	}

	return u, s, vt, nil
}
