package dwt

import "github.com/cwbudde/algo-wavelet/wavelet"

// Forward64 applies the forward pyramidal wavelet transform to data in place
// using the scalar step kernel. See Forward32 for the buffer contract.
func Forward64(w *wavelet.Wavelet, data, scratch []float64) error {
	if err := validate(w, len(data), len(scratch)); err != nil {
		return err
	}
	for active := len(data); active >= w.Len(); active >>= 1 {
		step64(w, data, scratch, active)
	}
	return nil
}

// step64 is the float64 twin of step32.
func step64(w *wavelet.Wavelet, data, scratch []float64, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H()
	g := w.G()
	base := w.Len()*n - w.Offset()

	for i := 0; i < half; i++ {
		var a, d float64
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
