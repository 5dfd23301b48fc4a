// Package dwt implements the forward discrete wavelet transform using the
// pyramidal algorithm with periodized boundary handling.
//
// The transform runs in place: after Forward32 the first half of each
// processed prefix holds approximation coefficients and the second half
// detail coefficients, recursively down to a single coarsest approximation
// sample. Buffer lengths must be powers of two no shorter than the filter
// support; callers provide a scratch buffer at least as long as the data,
// borrowed only for the duration of one call.
//
// Two realizations of the per-level filtering step are provided: a scalar
// reference (Forward32/Forward64) and a lane-chunked variant
// (ForwardVector32/ForwardVector64) that processes several output pairs per
// loop iteration with a scalar tail, producing the same coefficients up to
// floating-point rounding. The lane width for the float32 path is chosen
// once from detected CPU features.
package dwt
