// Package report - console/report-style text destination.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/numlab/matrix"
)

// Text writes human-readable, fixed-precision output to an io.Writer.
type Text struct {
	w   io.Writer
	cfg textConfig
}

var _ Reporter = (*Text)(nil)

// NewText returns a Text reporter over w with the given options.
func NewText(w io.Writer, opts ...Option) *Text {
	return &Text{w: w, cfg: gatherOptions(opts)}
}

// Matrix prints the label on its own line, then the matrix rows with
// width-aligned fixed-precision cells.
func (t *Text) Matrix(label string, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("Text.Matrix(%s): %w", label, matrix.ErrNilMatrix)
	}
	if m.Layout() != matrix.RowMajor {
		return fmt.Errorf("Text.Matrix(%s): input is %s: %w", label, m.Layout(), matrix.ErrLayoutMismatch)
	}

	if _, err := fmt.Fprintf(t.w, "%s (%dx%d):\n", label, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("Text.Matrix(%s): %w", label, err)
	}
	for i := 0; i < m.Rows(); i++ {
		var sb strings.Builder
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			sb.WriteString(fmt.Sprintf("%*.*f ", t.cfg.width, t.cfg.prec, v))
		}
		if _, err := fmt.Fprintln(t.w, strings.TrimRight(sb.String(), " ")); err != nil {
			return fmt.Errorf("Text.Matrix(%s): row %d: %w", label, i, err)
		}
	}

	return nil
}

// Scalar prints `label = value` at the configured precision.
func (t *Text) Scalar(label string, v float64) error {
	if _, err := fmt.Fprintf(t.w, "%s = %.*f\n", label, t.cfg.prec, v); err != nil {
		return fmt.Errorf("Text.Scalar(%s): %w", label, err)
	}

	return nil
}

// Table prints a header line and one aligned line per row.
func (t *Text) Table(header []string, rows [][]float64) error {
	for i, h := range header {
		if i > 0 {
			if _, err := io.WriteString(t.w, "  "); err != nil {
				return fmt.Errorf("Text.Table: header: %w", err)
			}
		}
		if _, err := fmt.Fprintf(t.w, "%*s", t.cfg.width, h); err != nil {
			return fmt.Errorf("Text.Table: header: %w", err)
		}
	}
	if _, err := io.WriteString(t.w, "\n"); err != nil {
		return fmt.Errorf("Text.Table: header: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("Text.Table: row %d has %d cells, header has %d: %w",
				i, len(row), len(header), matrix.ErrDimensionMismatch)
		}
		for j, v := range row {
			if j > 0 {
				if _, err := io.WriteString(t.w, "  "); err != nil {
					return fmt.Errorf("Text.Table: row %d: %w", i, err)
				}
			}
			if _, err := fmt.Fprintf(t.w, "%*.*f", t.cfg.width, t.cfg.prec, v); err != nil {
				return fmt.Errorf("Text.Table: row %d: %w", i, err)
			}
		}
		if _, err := io.WriteString(t.w, "\n"); err != nil {
			return fmt.Errorf("Text.Table: row %d: %w", i, err)
		}
	}

	return nil
}
