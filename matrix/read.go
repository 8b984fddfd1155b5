// Package matrix - Input Reader.
//
// The text formats are whitespace-separated: an optional dimension header
// (`m n l` for the multiply pipeline, `rows cols` for single-matrix tasks)
// followed by matrix entries in row-major order, or bare (x, y) sample
// pairs for the fitting tasks. The reader's only side effect is advancing
// the stream cursor; every parse failure is reported with the offending
// matrix name and (row, col) coordinate.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Reader tokenizes an input stream into whitespace-separated words and
// parses them into dimensions, matrices, or sample points.
type Reader struct {
	sc *bufio.Scanner // word-level scanner over the underlying stream
}

// NewReader wraps r in a whitespace tokenizer.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// next returns the next token, or ok=false on stream end.
func (r *Reader) next() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}

	return r.sc.Text(), true
}

// dim parses one positive integer dimension named what.
// Missing, unparsable and non-positive tokens are all ErrInvalidDimensions:
// the run must abort before any matrix entry is consumed.
func (r *Reader) dim(what string) (int, error) {
	tok, ok := r.next()
	if !ok {
		return 0, fmt.Errorf("reading %s: stream ended: %w", what, ErrInvalidDimensions)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("reading %s: token %q: %w", what, tok, ErrInvalidDimensions)
	}
	if v <= 0 {
		return 0, fmt.Errorf("reading %s: got %d: %w", what, v, ErrInvalidDimensions)
	}

	return v, nil
}

// Header reads the general-multiply header: three positive integers m n l.
// Returns ErrInvalidDimensions if any is missing or non-positive; nothing
// else is consumed from the stream in that case.
func (r *Reader) Header() (m, n, l int, err error) {
	if m, err = r.dim("m"); err != nil {
		return 0, 0, 0, err
	}
	if n, err = r.dim("n"); err != nil {
		return 0, 0, 0, err
	}
	if l, err = r.dim("l"); err != nil {
		return 0, 0, 0, err
	}

	return m, n, l, nil
}

// Dims reads a two-integer header: rows cols.
func (r *Reader) Dims() (rows, cols int, err error) {
	if rows, err = r.dim("rows"); err != nil {
		return 0, 0, err
	}
	if cols, err = r.dim("cols"); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// Matrix reads rows*cols float tokens in row-major order into a fresh
// RowMajor Dense. name identifies the matrix in error messages.
// Stage 1 (Validate): dimensions > 0.
// Stage 2 (Execute): parse tokens left-to-right, top-to-bottom.
// Fails with ErrMalformedInput carrying (row, col) if a token is missing
// or not a floating-point number.
// Complexity: O(rows*cols).
func (r *Reader) Matrix(rows, cols int, name string) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix %s: %dx%d: %w", name, rows, cols, ErrInvalidDimensions)
	}

	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			tok, ok := r.next()
			if !ok {
				return nil, fmt.Errorf("matrix %s at (%d,%d): stream ended: %w", name, i, j, ErrMalformedInput)
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("matrix %s at (%d,%d): token %q: %w", name, i, j, tok, ErrMalformedInput)
			}
			data[i*cols+j] = v
		}
	}

	return &Dense{r: rows, c: cols, layout: RowMajor, data: data}, nil
}

// Points reads (x, y) sample pairs until the stream ends.
// A well-formed stream holds an even, positive number of float tokens.
// Returns ErrMalformedInput on a bad token, a dangling x without its y,
// or an empty stream.
// Complexity: O(#tokens).
func (r *Reader) Points() (xs, ys []float64, err error) {
	for i := 0; ; i++ {
		tok, ok := r.next()
		if !ok {
			break
		}
		x, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("point %d: x token %q: %w", i, tok, ErrMalformedInput)
		}
		tok, ok = r.next()
		if !ok {
			return nil, nil, fmt.Errorf("point %d: missing y value: %w", i, ErrMalformedInput)
		}
		y, perr := strconv.ParseFloat(tok, 64)
		if perr != nil {
			return nil, nil, fmt.Errorf("point %d: y token %q: %w", i, tok, ErrMalformedInput)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if len(xs) == 0 {
		return nil, nil, fmt.Errorf("no sample points: %w", ErrMalformedInput)
	}

	return xs, ys, nil
}
