// Package fit performs least-squares polynomial curve fitting: given
// sample points (xᵢ, yᵢ) and a degree d, it estimates the coefficients of
// y ≈ c_d·xᵈ + … + c₁·x + c₀ and reports how well the model explains the
// data (per-point residuals, SSE, MSE).
//
// Two solution paths are available, mirroring the two classical drivers:
//
//   - MethodQR (default): solve min‖A·θ − y‖₂ directly by QR
//     factorization (dgels). More stable — AᵀA is never formed.
//   - MethodNormal: form the normal equations (AᵀA)·θ = Aᵀy and solve by
//     LU with partial pivoting (dgesv). The textbook construction.
//
// In both paths A is the Vandermonde design matrix with descending powers
// [xᵈ … x 1]. Rank-deficient or ill-conditioned designs are reported only
// through the backend's numeric-failure status; no separate conditioning
// check is performed.
package fit
