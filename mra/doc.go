// Package mra provides multi-resolution analysis helpers over transformed
// wavelet buffers.
//
// A fully transformed buffer uses the split-half layout: index 0 holds the
// coarsest approximation coefficient and the band [2^(l-1), 2^l) holds the
// detail coefficients of level l, finest level last. This package slices
// that layout into bands and measures per-band energy, and offers a Fourier
// magnitude spectrum for side-by-side comparison of the two decompositions.
package mra
