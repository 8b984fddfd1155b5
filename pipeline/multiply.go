// Package pipeline - the multiply pipeline stages.

package pipeline

import (
	"fmt"
	"os"

	"github.com/katalvlaran/numlab/blasx"
	"github.com/katalvlaran/numlab/matrix"
)

// Multiply computes C = A·B for row-major inputs, returning a fresh
// row-major result. The shared dimension a.Cols == b.Rows is the sole
// structural invariant; on mismatch the pipeline fails with
// ErrDimensionMismatch before any backend call.
//
// Stage 1 (Validate): delegated to the adapters and the invoker.
// Stage 2 (Adapt): convert both operands to the column-major GEMM layout.
// Stage 3 (Invoke): C = A·B, overwrite semantics, no transpose variants.
// Stage 4 (Adapt back): return the product in the natural row-major form.
//
// Complexity: O(m*n*l) multiply plus O(m*n + n*l + m*l) adaptation copies.
func Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	// Check the shared dimension up front so no conversion work happens
	// for a doomed pair.
	if a == nil || b == nil {
		return nil, fmt.Errorf("Multiply: %w", matrix.ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("Multiply: A is %dx%d, B is %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}

	acm, err := matrix.ToColMajor(a)
	if err != nil {
		return nil, fmt.Errorf("Multiply: A: %w", err)
	}
	bcm, err := matrix.ToColMajor(b)
	if err != nil {
		return nil, fmt.Errorf("Multiply: B: %w", err)
	}

	ccm, err := blasx.Gemm(acm, bcm)
	if err != nil {
		return nil, fmt.Errorf("Multiply: %w", err)
	}

	c, err := matrix.ToRowMajor(ccm)
	if err != nil {
		return nil, fmt.Errorf("Multiply: C: %w", err)
	}

	return c, nil
}

// Run executes the file-based pipeline: parse inPath, multiply, write the
// product to outPath. On success it returns the result dimensions for the
// driver's summary line. On any failure no output file exists at outPath.
func Run(inPath, outPath string) (m, l int, err error) {
	fin, err := os.Open(inPath)
	if err != nil {
		return 0, 0, fmt.Errorf("open input: %w", err)
	}
	defer fin.Close()

	rd := matrix.NewReader(fin)
	m, n, l, err := rd.Header()
	if err != nil {
		return 0, 0, err
	}
	a, err := rd.Matrix(m, n, "A")
	if err != nil {
		return 0, 0, err
	}
	b, err := rd.Matrix(n, l, "B")
	if err != nil {
		return 0, 0, err
	}

	c, err := Multiply(a, b)
	if err != nil {
		return 0, 0, err
	}

	if err := writeAtomic(outPath, c); err != nil {
		return 0, 0, err
	}

	return m, l, nil
}

// writeAtomic writes m to path via a sibling temp file and a rename, so a
// write-time failure cannot leave a partial output file behind.
func writeAtomic(path string, m *matrix.Dense) error {
	tmp := path + ".tmp"
	fout, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if err := matrix.Write(fout, m); err != nil {
		fout.Close()
		os.Remove(tmp)

		return fmt.Errorf("write output: %w", err)
	}
	if err := fout.Close(); err != nil {
		os.Remove(tmp)

		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)

		return fmt.Errorf("finalize output: %w", err)
	}

	return nil
}
