// Package matrix - Dense storage & safe accessors.
//
// Dense is a flat float64 buffer with explicit dimensions and an explicit
// physical Layout tag. The tag travels with the value: every primitive that
// touches raw memory checks it and fails fast on mismatch instead of
// silently misreading the buffer.

package matrix

import (
	"fmt"
	"strings"
)

// Layout identifies the physical ordering of a Dense backing buffer.
type Layout uint8

const (
	// RowMajor stores element (i, j) at offset i*cols + j.
	RowMajor Layout = iota
	// ColMajor stores element (i, j) at offset j*rows + i.
	ColMajor
)

// String implements fmt.Stringer for diagnostics.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "column-major"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// denseErrorf wraps a sentinel error with Dense method context and the
// callsite indices, preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a dense matrix of float64 values.
// r is rows, c is columns, layout tags the physical ordering of data,
// and data holds exactly r*c elements.
type Dense struct {
	r, c   int       // row and column counts, both > 0
	layout Layout    // physical ordering of data
	data   []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix of the given layout, initialized to
// zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, layout Layout) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Allocate zeroed flat slice
	data := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, layout: layout, data: data}, nil
}

// NewDenseFrom creates an r×c Dense matrix over the given backing slice.
// Ownership of data transfers to the matrix: the caller must not retain or
// mutate the slice afterwards. The length must be exactly rows*cols.
// Complexity: O(1) — no copy is made.
func NewDenseFrom(rows, cols int, layout Layout, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): backing slice has %d elements, want %d: %w",
			rows, cols, len(data), rows*cols, ErrDimensionMismatch)
	}

	return &Dense{r: rows, c: cols, layout: layout, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Layout returns the physical layout tag. Complexity: O(1).
func (m *Dense) Layout() Layout { return m.layout }

// Raw exposes the backing slice for the linear-algebra invoker.
// The slice is the live storage, not a copy; treat it as read-only unless
// the matrix was allocated locally.
func (m *Dense) Raw() []float64 { return m.data }

// offset computes the flat index for (row, col) under the current layout,
// or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) offset(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Layout-aware linear offset
	if m.layout == ColMajor {
		return col*m.r + row, nil
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col), independent of physical layout.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), independent of physical layout.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix: same shape, same layout, freshly
// allocated storage. Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, layout: m.layout, data: cp}
}

// String implements fmt.Stringer for easy debugging; rows are printed in
// logical order regardless of physical layout.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			v, _ := m.At(i, j)
			sb.WriteString(fmt.Sprintf("%g", v))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
