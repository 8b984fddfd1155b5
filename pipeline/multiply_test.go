package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/matrix"
	"github.com/katalvlaran/numlab/pipeline"
)

func writeInput(t *testing.T, content string) (inPath, outPath string) {
	t.Helper()
	dir := t.TempDir()
	inPath = filepath.Join(dir, "input.txt")
	outPath = filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(inPath, []byte(content), 0o644))

	return inPath, outPath
}

func TestRun_Scenario2x3by3x2(t *testing.T) {
	inPath, outPath := writeInput(t, "2 3 2\n1 2 3\n1 1 1\n2 3\n3 4\n5 6\n")

	m, l, err := pipeline.Run(inPath, outPath)
	require.NoError(t, err)
	require.Equal(t, 2, m)
	require.Equal(t, 2, l)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	rd := matrix.NewReader(strings.NewReader(string(raw)))
	rows, cols, err := rd.Dims()
	require.NoError(t, err)
	c, err := rd.Matrix(rows, cols, "C")
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{23, 29, 10, 13}, c.Raw(), 1e-12)
}

func TestRun_MalformedInputLeavesNoOutput(t *testing.T) {
	// Declares 2x3 and 3x2 but provides fewer than 12 entries.
	inPath, outPath := writeInput(t, "2 3 2\n1 2 3\n4 5\n")

	_, _, err := pipeline.Run(inPath, outPath)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)
	require.NoFileExists(t, outPath)
	require.NoFileExists(t, outPath+".tmp")
}

func TestRun_NonPositiveDimension(t *testing.T) {
	inPath, outPath := writeInput(t, "0 3 2\n1 2 3\n")

	_, _, err := pipeline.Run(inPath, outPath)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.NoFileExists(t, outPath)
}

func TestRun_MissingInputFile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := pipeline.Run(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "open input")
}

func TestMultiply_DimensionMismatchBeforeBackend(t *testing.T) {
	a, err := matrix.NewDense(2, 3, matrix.RowMajor)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 2, matrix.RowMajor)
	require.NoError(t, err)

	_, err = pipeline.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = pipeline.Multiply(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMultiply_ResultIsRowMajorAndFresh(t *testing.T) {
	a, err := matrix.NewDenseFrom(1, 2, matrix.RowMajor, []float64{2, 3})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(2, 1, matrix.RowMajor, []float64{4, 5})
	require.NoError(t, err)

	c, err := pipeline.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, c.Layout())
	require.InDeltaSlice(t, []float64{23}, c.Raw(), 1e-12)
}
