// Package blasx - dense products: GEMM, Gram matrix, transposed
// matrix-vector product.

package blasx

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/numlab/matrix"
)

// catch converts a backend panic into ErrInvalidArgument. blasx validates
// everything before calling down, so this firing means a wrapper bug.
func catch(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: backend panic: %v: %w", op, r, ErrInvalidArgument)
	}
}

// transposedView reinterprets a column-major r×c matrix buffer as the
// row-major General holding its transpose (c×r, stride r). No copy.
func transposedView(m *matrix.Dense) blas64.General {
	return blas64.General{
		Rows:   m.Cols(),
		Cols:   m.Rows(),
		Stride: m.Rows(),
		Data:   m.Raw(),
	}
}

// checkColMajor validates the common operand contract of this file.
func checkColMajor(op, name string, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("%s: %s: %w", op, name, matrix.ErrNilMatrix)
	}
	if m.Layout() != matrix.ColMajor {
		return fmt.Errorf("%s: %s is %s: %w", op, name, m.Layout(), matrix.ErrLayoutMismatch)
	}

	return nil
}

// Gemm computes C = A·B for column-major operands: A is m×n, B is n×l and
// the result is a fresh m×l column-major matrix. The scaling coefficients
// are fixed at "overwrite with fresh product" (alpha=1, beta=0) and no
// transpose variants are used — both operands are taken as-is.
//
// Stage 1 (Validate): layouts and the shared dimension a.Cols == b.Rows;
// ErrDimensionMismatch aborts before any backend call.
// Stage 2 (Execute): bridge to the row-major kernel via Cᵀ = Bᵀ·Aᵀ.
// Stage 3 (Finalize): wrap the output buffer, ownership transfers to C.
//
// Complexity: O(m*n*l) in the backend; O(m*l) allocation here.
func Gemm(a, b *matrix.Dense) (c *matrix.Dense, err error) {
	// Stage 1: validate operands
	if err = checkColMajor("Gemm", "A", a); err != nil {
		return nil, err
	}
	if err = checkColMajor("Gemm", "B", b); err != nil {
		return nil, err
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Gemm: A is %dx%d, B is %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}

	m, l := a.Rows(), b.Cols()
	cdata := make([]float64, m*l)

	// Stage 2: Cᵀ = Bᵀ·Aᵀ on the row-major views; the row-major l×m result
	// buffer is exactly the column-major m×l product.
	defer catch("Gemm", &err)
	ct := blas64.General{Rows: l, Cols: m, Stride: m, Data: cdata}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, transposedView(b), transposedView(a), 0, ct)

	// Stage 3: hand the buffer to a fresh matrix
	return matrix.NewDenseFrom(m, l, matrix.ColMajor, cdata)
}

// Gram computes AᵀA for a column-major m×n matrix A, returning a fresh
// n×n column-major matrix. Used by the normal-equation fitting path.
// Complexity: O(m*n²) in the backend.
func Gram(a *matrix.Dense) (g *matrix.Dense, err error) {
	if err = checkColMajor("Gram", "A", a); err != nil {
		return nil, err
	}

	n := a.Cols()
	gdata := make([]float64, n*n)

	// With V the row-major view of Aᵀ, AᵀA = V·Vᵀ. The result is symmetric,
	// so its row-major and column-major buffers coincide and the ColMajor
	// tag below is exact, not a convention.
	defer catch("Gram", &err)
	v := transposedView(a)
	gv := blas64.General{Rows: n, Cols: n, Stride: n, Data: gdata}
	blas64.Gemm(blas.NoTrans, blas.Trans, 1, v, v, 0, gv)

	return matrix.NewDenseFrom(n, n, matrix.ColMajor, gdata)
}

// MulTransVec computes Aᵀy for a column-major m×n matrix A and a vector y
// of length m, returning a fresh vector of length n.
// Complexity: O(m*n) in the backend.
func MulTransVec(a *matrix.Dense, y []float64) (out []float64, err error) {
	if err = checkColMajor("MulTransVec", "A", a); err != nil {
		return nil, err
	}
	if len(y) != a.Rows() {
		return nil, fmt.Errorf("MulTransVec: A has %d rows, y has %d elements: %w",
			a.Rows(), len(y), matrix.ErrDimensionMismatch)
	}

	out = make([]float64, a.Cols())

	// The row-major view of Aᵀ multiplied by y without transposition IS Aᵀy.
	defer catch("MulTransVec", &err)
	xv := blas64.Vector{N: len(y), Data: y, Inc: 1}
	yv := blas64.Vector{N: len(out), Data: out, Inc: 1}
	blas64.Gemv(blas.NoTrans, 1, transposedView(a), xv, 0, yv)

	return out, nil
}
