// Package report - Reporter interface and functional options.

package report

import "github.com/katalvlaran/numlab/matrix"

// Reporter is the capability set every result destination implements.
type Reporter interface {
	// Matrix emits a labeled matrix block. The matrix must be row-major;
	// pipelines convert results before reporting.
	Matrix(label string, m *matrix.Dense) error
	// Scalar emits one labeled numeric value.
	Scalar(label string, v float64) error
	// Table emits a rectangular table with a header row.
	Table(header []string, rows [][]float64) error
}

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultPrecision is the fixed number of fractional digits used by
	// the Text reporter, matching the classical console drivers.
	DefaultPrecision = 8

	// DefaultWidth is the minimum column width used by Text matrix blocks.
	DefaultWidth = 14
)

// Option configures a Text reporter.
type Option func(*textConfig)

type textConfig struct {
	prec  int // fractional digits
	width int // minimum column width
}

// WithPrecision sets the number of fractional digits. Panics on a
// non-positive value: that is a programmer error, not user input.
func WithPrecision(p int) Option {
	if p <= 0 {
		panic("report: WithPrecision requires a positive precision")
	}

	return func(c *textConfig) { c.prec = p }
}

// WithWidth sets the minimum column width. Panics on a non-positive value.
func WithWidth(w int) Option {
	if w <= 0 {
		panic("report: WithWidth requires a positive width")
	}

	return func(c *textConfig) { c.width = w }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts []Option) textConfig {
	cfg := textConfig{prec: DefaultPrecision, width: DefaultWidth}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
