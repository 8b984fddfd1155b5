package blasx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/blasx"
	"github.com/katalvlaran/numlab/matrix"
)

func TestSVD_DiagonalMatrix(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, matrix.RowMajor, []float64{3, 0, 0, 2})
	require.NoError(t, err)

	u, s, vt, err := blasx.SVD(a)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 2}, s, 1e-12)
	require.Equal(t, 2, u.Rows())
	require.Equal(t, 2, vt.Rows())

	// The input is copied before the backend destroys its argument.
	require.Equal(t, []float64{3, 0, 0, 2}, a.Raw())
}

func TestSVD_FactorsAreOrthogonal(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, matrix.RowMajor, []float64{1, -0.8, 0, 1})
	require.NoError(t, err)

	u, s, vt, err := blasx.SVD(a)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.GreaterOrEqual(t, s[0], s[1], "singular values must descend")
	require.Greater(t, s[1], 0.0)

	// UᵀU == I within rounding.
	ucm := colMajor(t, u)
	utu, err := blasx.Gram(ucm)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			v, aerr := utu.At(i, j)
			require.NoError(t, aerr)
			require.InDelta(t, want, v, 1e-12)
		}
	}

	// Same for Vᵀ.
	vcm := colMajor(t, vt)
	vtv, err := blasx.Gram(vcm)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		v, aerr := vtv.At(i, i)
		require.NoError(t, aerr)
		require.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestSVD_RectangularShape(t *testing.T) {
	a, err := matrix.NewDenseFrom(3, 2, matrix.RowMajor, []float64{1, 0, 0, 1, 1, 1})
	require.NoError(t, err)

	u, s, vt, err := blasx.SVD(a)
	require.NoError(t, err)
	require.Equal(t, 3, u.Rows())
	require.Equal(t, 3, u.Cols())
	require.Equal(t, 2, vt.Rows())
	require.Equal(t, 2, vt.Cols())
	require.Len(t, s, 2)

	// Hand-rolled reconstruction: A[i][j] = Σ_k U[i][k]·s[k]·Vᵀ[k][j].
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			sum := 0.0
			for k := 0; k < 2; k++ {
				uv, uerr := u.At(i, k)
				require.NoError(t, uerr)
				vv, verr := vt.At(k, j)
				require.NoError(t, verr)
				sum += uv * s[k] * vv
			}
			want, aerr := a.At(i, j)
			require.NoError(t, aerr)
			require.InDelta(t, want, sum, 1e-12)
		}
	}
}

func TestSVD_Validation(t *testing.T) {
	cm, err := matrix.NewDense(2, 2, matrix.ColMajor)
	require.NoError(t, err)

	_, _, _, err = blasx.SVD(cm)
	require.ErrorIs(t, err, matrix.ErrLayoutMismatch)
	_, _, _, err = blasx.SVD(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
