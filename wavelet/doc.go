// Package wavelet provides orthogonal wavelet filter descriptors.
//
// A descriptor bundles the low-pass (scaling) and high-pass (wavelet)
// filter pair of a wavelet family together with the filter length and the
// centering offset used to align the filter support. Descriptors are
// immutable once constructed; the dwt package consumes them to drive the
// pyramid decomposition.
//
// Only the Haar family is currently provided. The Family enum is a closed
// set: adding a family means adding a case here, not registering callbacks.
package wavelet
