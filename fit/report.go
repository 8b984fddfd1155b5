// Package fit - reporting and plot export for fitted models.

package fit

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/numlab/report"
)

// coeffName labels coefficients a, b, c, … the way the classical drivers
// print them; past 'z' it falls back to positional names.
func coeffName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}

	return fmt.Sprintf("c%d", i)
}

// Curve samples the fitted polynomial on a uniform steps-point grid over
// [xmin, xmax], for plotting. steps must be >= 2 and xmax > xmin.
func Curve(r *Result, xmin, xmax float64, steps int) (xs, ys []float64, err error) {
	if steps < 2 || !(xmax > xmin) {
		return nil, nil, fmt.Errorf("Curve: steps=%d over [%g,%g]: %w", steps, xmin, xmax, ErrBadCurve)
	}

	xs = make([]float64, steps)
	ys = make([]float64, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		x := xmin + t*(xmax-xmin)
		xs[i] = x
		ys[i] = r.Predict(x)
	}

	return xs, ys, nil
}

// WriteReport emits the model coefficients, a per-point prediction table
// and the SSE/MSE summary through any Reporter.
func WriteReport(rep report.Reporter, xs, ys []float64, r *Result) error {
	if len(xs) != len(ys) || len(xs) != len(r.Predicted) {
		return fmt.Errorf("WriteReport: %d xs, %d ys, %d predictions: %w",
			len(xs), len(ys), len(r.Predicted), ErrSampleMismatch)
	}

	for i, c := range r.Coeffs {
		if err := rep.Scalar(coeffName(i), c); err != nil {
			return err
		}
	}

	rows := make([][]float64, len(xs))
	for i := range xs {
		rows[i] = []float64{xs[i], ys[i], r.Predicted[i], r.Residuals[i]}
	}
	if err := rep.Table([]string{"x", "y", "y_hat", "err"}, rows); err != nil {
		return err
	}

	if err := rep.Scalar("SSE", r.SSE); err != nil {
		return err
	}

	return rep.Scalar("MSE", r.MSE)
}

// WritePlotCSV exports the observed points and the fitted curve in the
// plotting layout the classical quadratic driver produced:
//
//	x_pts,y_pts,x_fit,y_fit
//
// The curve is sampled on a steps-point grid over [min(xs), max(xs)];
// point columns are empty past len(xs) rows.
func WritePlotCSV(w io.Writer, xs, ys []float64, r *Result, steps int) error {
	if len(xs) == 0 || len(xs) != len(ys) {
		return fmt.Errorf("WritePlotCSV: %d xs vs %d ys: %w", len(xs), len(ys), ErrSampleMismatch)
	}

	xmin, xmax := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
	}
	cx, cy, err := Curve(r, xmin, xmax, steps)
	if err != nil {
		return fmt.Errorf("WritePlotCSV: %w", err)
	}

	nrows := steps
	if len(xs) > nrows {
		nrows = len(xs)
	}
	rows := make([][]float64, nrows)
	for i := 0; i < nrows; i++ {
		row := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
		if i < len(xs) {
			row[0], row[1] = xs[i], ys[i]
		}
		if i < steps {
			row[2], row[3] = cx[i], cy[i]
		}
		rows[i] = row
	}

	cw := csv.NewWriter(w)
	rep := report.NewCSV(cw)
	if err := rep.Table([]string{"x_pts", "y_pts", "x_fit", "y_fit"}, rows); err != nil {
		return fmt.Errorf("WritePlotCSV: %w", err)
	}

	return rep.Flush()
}
