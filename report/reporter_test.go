package report_test

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/report"
)

func TestText_Matrix(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, matrix.RowMajor, []float64{1, -2.5, 3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	rep := report.NewText(&buf, report.WithPrecision(2), report.WithWidth(6))
	require.NoError(t, rep.Matrix("C", m))

	want := "C (2x2):\n" +
		"  1.00  -2.50\n" +
		"  3.00   4.00\n"
	require.Equal(t, want, buf.String())
}

func TestText_MatrixRejectsColMajor(t *testing.T) {
	cm, err := matrix.NewDense(2, 2, matrix.ColMajor)
	require.NoError(t, err)

	rep := report.NewText(&bytes.Buffer{})
	require.ErrorIs(t, rep.Matrix("C", cm), matrix.ErrLayoutMismatch)
	require.ErrorIs(t, rep.Matrix("C", nil), matrix.ErrNilMatrix)
}

func TestText_Scalar(t *testing.T) {
	var buf bytes.Buffer
	rep := report.NewText(&buf, report.WithPrecision(3))
	require.NoError(t, rep.Scalar("SSE", 0.7))
	require.Equal(t, "SSE = 0.700\n", buf.String())
}

func TestText_TableRowWidthChecked(t *testing.T) {
	rep := report.NewText(&bytes.Buffer{})
	err := rep.Table([]string{"x", "y"}, [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCSV_TableWithEmptyCells(t *testing.T) {
	var buf bytes.Buffer
	rep := report.NewCSV(csv.NewWriter(&buf))

	rows := [][]float64{
		{1, 2, 0, 1},
		{math.NaN(), math.NaN(), 0.5, 1.5},
	}
	require.NoError(t, rep.Table([]string{"x_pts", "y_pts", "x_fit", "y_fit"}, rows))
	require.NoError(t, rep.Flush())

	want := "x_pts,y_pts,x_fit,y_fit\n1,2,0,1\n,,0.5,1.5\n"
	require.Equal(t, want, buf.String())
}

func TestCSV_Matrix(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, matrix.RowMajor, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	rep := report.NewCSV(csv.NewWriter(&buf))
	require.NoError(t, rep.Matrix("ignored", m))
	require.NoError(t, rep.Flush())
	require.Equal(t, "1,2\n3,4\n", buf.String())
}

func TestOptions_PanicOnProgrammerError(t *testing.T) {
	require.Panics(t, func() { report.WithPrecision(0) })
	require.Panics(t, func() { report.WithWidth(-1) })
}
