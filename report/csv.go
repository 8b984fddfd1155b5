// Package report - CSV table destination for plotting.
//
// Values are written with 17 significant digits so a plotted curve can be
// re-read without loss. NaN marks an intentionally empty cell: the fitted
// curve is usually sampled on a finer grid than the observed points, so
// the exported table is rectangular with empty point fields past the data.

package report

import (
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/numlab/matrix"
)

// CSV writes tables through an encoding/csv writer.
type CSV struct {
	w *csv.Writer
}

var _ Reporter = (*CSV)(nil)

// NewCSV returns a CSV reporter over w. Call Flush when done.
func NewCSV(w *csv.Writer) *CSV {
	return &CSV{w: w}
}

// Flush flushes the underlying csv.Writer and reports any write error.
func (c *CSV) Flush() error {
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		return fmt.Errorf("CSV.Flush: %w", err)
	}

	return nil
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}

	return strconv.FormatFloat(v, 'g', 17, 64)
}

// Matrix emits one record per matrix row; the label is not part of the
// CSV payload and is ignored.
func (c *CSV) Matrix(_ string, m *matrix.Dense) error {
	if m == nil {
		return fmt.Errorf("CSV.Matrix: %w", matrix.ErrNilMatrix)
	}
	if m.Layout() != matrix.RowMajor {
		return fmt.Errorf("CSV.Matrix: input is %s: %w", m.Layout(), matrix.ErrLayoutMismatch)
	}

	record := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			record[j] = formatCell(v)
		}
		if err := c.w.Write(record); err != nil {
			return fmt.Errorf("CSV.Matrix: row %d: %w", i, err)
		}
	}

	return nil
}

// Scalar emits a two-field record: label, value.
func (c *CSV) Scalar(label string, v float64) error {
	if err := c.w.Write([]string{label, formatCell(v)}); err != nil {
		return fmt.Errorf("CSV.Scalar(%s): %w", label, err)
	}

	return nil
}

// Table emits the header record followed by one record per row.
func (c *CSV) Table(header []string, rows [][]float64) error {
	if err := c.w.Write(header); err != nil {
		return fmt.Errorf("CSV.Table: header: %w", err)
	}
	record := make([]string, len(header))
	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("CSV.Table: row %d has %d cells, header has %d: %w",
				i, len(row), len(header), matrix.ErrDimensionMismatch)
		}
		for j, v := range row {
			record[j] = formatCell(v)
		}
		if err := c.w.Write(record); err != nil {
			return fmt.Errorf("CSV.Table: row %d: %w", i, err)
		}
	}

	return nil
}
