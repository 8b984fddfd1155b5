package fit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/blasx"
	"github.com/katalvlaran/numlab/fit"
)

// The classical four-point dataset: best line is y = 1.1x + 0.5 with
// SSE = 0.7 and MSE = 0.175.
var (
	lineXs = []float64{1, 2, 3, 4}
	lineYs = []float64{2, 2, 4, 5}
)

func TestFit_LinearBothMethods(t *testing.T) {
	for _, method := range []fit.Method{fit.MethodQR, fit.MethodNormal} {
		res, err := fit.Fit(lineXs, lineYs, 1, fit.WithMethod(method))
		require.NoError(t, err, method.String())

		require.Equal(t, 1, res.Degree)
		require.Len(t, res.Coeffs, 2)
		require.InDelta(t, 1.1, res.Coeffs[0], 1e-9, method.String())
		require.InDelta(t, 0.5, res.Coeffs[1], 1e-9, method.String())
		require.InDeltaSlice(t, []float64{1.6, 2.7, 3.8, 4.9}, res.Predicted, 1e-9)
		require.InDelta(t, 0.7, res.SSE, 1e-9)
		require.InDelta(t, 0.175, res.MSE, 1e-9)
	}
}

func TestFit_QuadraticRecoversExactParabola(t *testing.T) {
	// y = 2x² − 3x + 1 sampled without noise.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2*x*x - 3*x + 1
	}

	for _, method := range []fit.Method{fit.MethodQR, fit.MethodNormal} {
		res, err := fit.Fit(xs, ys, 2, fit.WithMethod(method))
		require.NoError(t, err, method.String())
		require.InDeltaSlice(t, []float64{2, -3, 1}, res.Coeffs, 1e-8, method.String())
		require.InDelta(t, 0.0, res.SSE, 1e-12)
	}
}

func TestFit_QuadraticClassicDataset(t *testing.T) {
	// The six points the classical quadratic driver ships with.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1.2, 2.0, 2.9, 4.1, 5.8, 8.2}

	qr, err := fit.Fit(xs, ys, 2, fit.WithMethod(fit.MethodQR))
	require.NoError(t, err)
	normal, err := fit.Fit(xs, ys, 2, fit.WithMethod(fit.MethodNormal))
	require.NoError(t, err)

	// Both solution paths must agree on a well-conditioned design.
	require.InDeltaSlice(t, qr.Coeffs, normal.Coeffs, 1e-8)
	require.InDelta(t, qr.SSE, normal.SSE, 1e-8)

	// The curve bends upward: positive leading coefficient.
	require.Greater(t, qr.Coeffs[0], 0.0)
}

func TestFit_Validation(t *testing.T) {
	_, err := fit.Fit(lineXs, lineYs, 0)
	require.ErrorIs(t, err, fit.ErrBadDegree)

	_, err = fit.Fit([]float64{1, 2}, []float64{1}, 1)
	require.ErrorIs(t, err, fit.ErrSampleMismatch)

	_, err = fit.Fit([]float64{1, 2}, []float64{1, 2}, 2)
	require.ErrorIs(t, err, fit.ErrTooFewSamples)
}

func TestFit_SingularNormalEquations(t *testing.T) {
	// All xs identical → the design columns are linearly dependent and
	// AᵀA is exactly singular. The failure surfaces as the backend's
	// numeric status, not as a separate rank check.
	xs := []float64{2, 2, 2}
	ys := []float64{1, 2, 3}

	_, err := fit.Fit(xs, ys, 1, fit.WithMethod(fit.MethodNormal))
	require.ErrorIs(t, err, blasx.ErrNumericFailure)
}

func TestWithMethod_PanicsOnUndefinedValue(t *testing.T) {
	require.Panics(t, func() { fit.WithMethod(fit.Method(42)) })
}

func TestResult_Predict(t *testing.T) {
	res := &fit.Result{Degree: 2, Coeffs: []float64{2, -3, 1}}
	require.InDelta(t, 1.0, res.Predict(0), 1e-15)
	require.InDelta(t, 0.0, res.Predict(1), 1e-15)
	require.InDelta(t, 3.0, res.Predict(2), 1e-15)
}
