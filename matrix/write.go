// Package matrix - text Writer.

package matrix

import (
	"fmt"
	"io"
	"strconv"
)

// Write emits m in the exchange text format: a `rows cols` header line,
// then rows lines of cols space-separated values. Values are written with
// 17 significant digits so a float64 round-trips exactly through
// Write → Reader.Matrix.
// The matrix must be RowMajor — convert results with ToRowMajor first.
// Complexity: O(r*c).
func Write(w io.Writer, m *Dense) error {
	if m == nil {
		return fmt.Errorf("Write: %w", ErrNilMatrix)
	}
	if m.layout != RowMajor {
		return fmt.Errorf("Write: input is %s: %w", m.layout, ErrLayoutMismatch)
	}

	if _, err := fmt.Fprintf(w, "%d %d\n", m.r, m.c); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return fmt.Errorf("Write: row %d: %w", i, err)
				}
			}
			s := strconv.FormatFloat(m.data[i*m.c+j], 'g', 17, 64)
			if _, err := io.WriteString(w, s); err != nil {
				return fmt.Errorf("Write: row %d: %w", i, err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("Write: row %d: %w", i, err)
		}
	}

	return nil
}
