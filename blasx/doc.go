// Package blasx is the Linear-Algebra Invoker of numlab: a thin, safe layer
// over gonum's blas64 and lapack64 drivers.
//
// Contract highlights:
//
//   - Every entry point validates nil-ness, layout tags and dimensional
//     compatibility BEFORE touching the backend, so a backend panic can
//     only indicate a wrapper bug; a deferred recover converts such panics
//     into ErrInvalidArgument (the invalid-argument status class).
//   - A backend driver reporting failure (a singular pivot in Getrf, rank
//     deficiency in Gels, non-convergence in Gesvd) surfaces as
//     ErrNumericFailure — a conditioning problem of the data, distinct
//     from a caller bug. Neither class is retried.
//   - Drivers that overwrite their arguments in place (Getrf, Gels, Gesvd)
//     are always called on defensive copies: package inputs are immutable
//     from the caller's point of view and results are freshly allocated.
//   - Gemm takes column-major operands, matching the classical Fortran
//     GEMM contract the text pipelines convert into. gonum's kernels are
//     row-major, so the wrappers bridge via the transpose identity
//     (a column-major X occupies the same memory as a row-major Xᵀ, and
//     C = A·B ⇔ Cᵀ = Bᵀ·Aᵀ) — a pure reinterpretation, no element moves.
//
// The backend may parallelize internally; from here every call is a
// synchronous black box that either wrote valid output or failed.
package blasx
