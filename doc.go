// Package numlab is a small playground for classical dense linear-algebra
// tasks — general matrix multiplication, least-squares curve fitting and
// singular value decomposition — built as thin, well-tested pipelines over
// a BLAS/LAPACK backend (gonum).
//
// 🚀 What is numlab?
//
//	A compact, educational module that brings together:
//		• matrix:   layout-tagged dense matrices, text I/O, row↔column-major adapters
//		• blasx:    safe invokers for GEMM, LU solve, QR least squares and SVD
//		• report:   console and CSV result reporters
//		• pipeline: the read → adapt → multiply → adapt-back → write task
//		• fit:      polynomial least squares (normal equations or QR) with SSE/MSE
//		• svd:      full SVD with U·Σ·Vᵀ reconstruction checks
//
// ✨ Why numlab?
//
//   - Beginner-friendly – each task is one linear pipeline, no hidden state
//   - Rock-solid guarantees – explicit layout tags, sentinel errors, no panics
//     on user input
//   - Small dense double-precision matrices from plain text files; sparse
//     storage, GPU backends and arbitrary precision are out of scope
//
// Every pipeline run is stateless and single-pass: matrices are read,
// converted to the layout the backend requires, handed to exactly one or two
// numerical routines, converted back and emitted. Failures abort the run —
// there are no retries and no partial results.
//
// The cmd/numlab binary exposes one subcommand per task: mul, fit, svd.
package numlab
