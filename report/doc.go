// Package report is the Result Reporter of numlab: one small polymorphic
// surface for emitting matrices, labeled scalars and tables to different
// destinations, so the task drivers don't duplicate formatting logic.
//
// Two implementations cover the capability set:
//
//   - Text — human-readable console or report output with fixed precision
//     (8 digits by default, width-aligned columns, like the classical
//     console drivers).
//   - CSV — machine-readable tables for plotting, written with full
//     round-trip precision; NaN cells become empty fields so ragged
//     point/curve exports stay rectangular.
package report
