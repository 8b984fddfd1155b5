// Package pipeline implements the general dense matrix-multiply task:
// read → layout-adapt → multiply → layout-adapt back → write.
//
// The input text format is
//
//	m n l
//	<m lines, each n space-separated doubles>   -- matrix A
//	<n lines, each l space-separated doubles>   -- matrix B
//
// and the output format is
//
//	m l
//	<m lines, each l space-separated doubles>   -- matrix C = A·B
//
// A run is stateless and single-pass: no loops, retries or branching
// beyond the terminal success/failure check after each stage. Every error
// aborts the run, and a failed run leaves no output file behind — the
// result is written to a temporary file in the destination directory and
// renamed into place only after a successful flush.
package pipeline
