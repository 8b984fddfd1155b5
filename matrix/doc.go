// Package matrix provides the dense, layout-tagged matrix type shared by
// every numlab task pipeline, together with the text Input Reader, the
// row↔column-major Layout Adapter, and the round-trippable text Writer.
//
// The matrix package provides:
//
//   - Dense: a flat float64 matrix carrying an explicit Layout tag
//     (RowMajor or ColMajor), so physical layout is a checked property of
//     the value rather than caller discipline.
//   - Reader: a whitespace tokenizer over an io.Reader that parses
//     dimension headers, row-major matrix bodies and (x, y) sample pairs,
//     reporting the exact (row, col) coordinate of any malformed token.
//   - ToColMajor / ToRowMajor: mutually inverse, bit-exact layout
//     conversions that always allocate fresh backing storage.
//   - Write: the `rows cols` + 17-significant-digit text format used to
//     exchange matrices between runs.
//
// Matrices here are small and dense; a read matrix is treated as immutable
// by the pipelines, and every transformation produces a new value.
package matrix
