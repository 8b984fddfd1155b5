package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
)

func TestToColMajor_IndexFormula(t *testing.T) {
	// rm = [[1,2,3],[4,5,6]] — column-major storage interleaves columns.
	rm, err := matrix.NewDenseFrom(2, 3, matrix.RowMajor, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	cm, err := matrix.ToColMajor(rm)
	require.NoError(t, err)
	require.Equal(t, matrix.ColMajor, cm.Layout())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, cm.Raw())

	// Logical view is unchanged.
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want, aerr := rm.At(i, j)
			require.NoError(t, aerr)
			got, aerr := cm.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, want, got)
		}
	}
}

func TestLayoutRoundTrip_BitExact(t *testing.T) {
	// No arithmetic is performed, so the round trip must preserve values
	// exactly across many magnitudes.
	rng := rand.New(rand.NewSource(1))
	for _, shape := range [][2]int{{1, 1}, {3, 3}, {2, 7}, {9, 4}} {
		rows, cols := shape[0], shape[1]
		data := make([]float64, rows*cols)
		for i := range data {
			data[i] = rng.NormFloat64() * math.Pow(10, float64(rng.Intn(30)-15))
		}
		data[0] = math.Copysign(0, -1) // negative zero survives too

		rm, err := matrix.NewDenseFrom(rows, cols, matrix.RowMajor, append([]float64(nil), data...))
		require.NoError(t, err)

		cm, err := matrix.ToColMajor(rm)
		require.NoError(t, err)
		back, err := matrix.ToRowMajor(cm)
		require.NoError(t, err)

		require.Equal(t, data, back.Raw(), "shape %dx%d", rows, cols)
		require.NotSame(t, &rm.Raw()[0], &back.Raw()[0], "round trip must allocate fresh storage")
	}
}

func TestLayoutAdapters_RejectWrongLayout(t *testing.T) {
	rm, err := matrix.NewDense(2, 2, matrix.RowMajor)
	require.NoError(t, err)
	cm, err := matrix.NewDense(2, 2, matrix.ColMajor)
	require.NoError(t, err)

	_, err = matrix.ToColMajor(cm)
	require.ErrorIs(t, err, matrix.ErrLayoutMismatch)
	_, err = matrix.ToRowMajor(rm)
	require.ErrorIs(t, err, matrix.ErrLayoutMismatch)

	_, err = matrix.ToColMajor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ToRowMajor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
