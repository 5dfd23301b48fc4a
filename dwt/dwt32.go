package dwt

import "github.com/cwbudde/algo-wavelet/wavelet"

// Forward32 applies the forward pyramidal wavelet transform to data in place
// using the scalar step kernel.
//
// len(data) must be a power of two and at least w.Len(); scratch must be at
// least as long as data. The scratch contents are fully overwritten and
// carry no state between calls.
func Forward32(w *wavelet.Wavelet, data, scratch []float32) error {
	if err := validate(w, len(data), len(scratch)); err != nil {
		return err
	}
	for active := len(data); active >= w.Len(); active >>= 1 {
		step32(w, data, scratch, active)
	}
	return nil
}

// step32 computes one pyramid level over data[:n], writing approximation
// coefficients to scratch[:n/2] and detail coefficients to scratch[n/2:n],
// then copies the result back. Indices wrap modulo n (periodized boundary);
// n must be an even power of two so the wrap reduces to a mask.
func step32(w *wavelet.Wavelet, data, scratch []float32, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H32()
	g := w.G32()
	// Shift keeps the centered index nonnegative before masking.
	base := w.Len()*n - w.Offset()

	for i := 0; i < half; i++ {
		var a, d float32
		ni := 2*i + base
		for k := range h {
			x := data[(ni+k)&mask]
			a += h[k] * x
			d += g[k] * x
		}
		scratch[i] = a
		scratch[half+i] = d
	}

	copy(data[:n], scratch[:n])
}
