// Package svd computes the full singular value decomposition
// A = U·Σ·Vᵀ of a dense row-major matrix and offers the classical
// self-check: rebuild A from its factors and measure the maximum
// elementwise deviation from the original.
package svd
