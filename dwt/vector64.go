package dwt

import (
	"sync"

	"github.com/cwbudde/algo-wavelet/internal/cpu"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

var (
	step64VecImpl func(w *wavelet.Wavelet, data, scratch []float64, n int)
	step64VecOnce sync.Once
)

// initStep64Vector binds the float64 step kernel: 256-bit registers fit
// four float64 lanes, 128-bit two.
func initStep64Vector() {
	features := cpu.DetectFeatures()
	switch {
	case features.ForceGeneric:
		step64VecImpl = step64Lanes2
	case features.HasAVX2 || features.HasAVX512:
		step64VecImpl = step64Lanes4
	default:
		step64VecImpl = step64Lanes2
	}
}

// ForwardVector64 applies the forward pyramidal wavelet transform to data in
// place using the lane-chunked step kernel. See ForwardVector32.
func ForwardVector64(w *wavelet.Wavelet, data, scratch []float64) error {
	if err := validate(w, len(data), len(scratch)); err != nil {
		return err
	}
	step64VecOnce.Do(initStep64Vector)
	for active := len(data); active >= w.Len(); active >>= 1 {
		step64VecImpl(w, data, scratch, active)
	}
	return nil
}

func step64Lanes2(w *wavelet.Wavelet, data, scratch []float64, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H()
	g := w.G()
	base := w.Len()*n - w.Offset()

	i := 0
	for ; i+2 <= half; i += 2 {
		var a0, a1, d0, d1 float64
		ni := 2*i + base
		for k := range h {
			hk := h[k]
			gk := g[k]
			x0 := data[(ni+k)&mask]
			x1 := data[(ni+2+k)&mask]
			a0 += hk * x0
			a1 += hk * x1
			d0 += gk * x0
			d1 += gk * x1
		}
		scratch[i] = a0
		scratch[i+1] = a1
		scratch[half+i] = d0
		scratch[half+i+1] = d1
	}
	step64Tail(h, g, data, scratch, base, mask, half, i)

	copy(data[:n], scratch[:n])
}

func step64Lanes4(w *wavelet.Wavelet, data, scratch []float64, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H()
	g := w.G()
	base := w.Len()*n - w.Offset()

	i := 0
	for ; i+4 <= half; i += 4 {
		var a0, a1, a2, a3 float64
		var d0, d1, d2, d3 float64
		ni := 2*i + base
		for k := range h {
			hk := h[k]
			gk := g[k]
			x0 := data[(ni+k)&mask]
			x1 := data[(ni+2+k)&mask]
			x2 := data[(ni+4+k)&mask]
			x3 := data[(ni+6+k)&mask]
			a0 += hk * x0
			a1 += hk * x1
			a2 += hk * x2
			a3 += hk * x3
			d0 += gk * x0
			d1 += gk * x1
			d2 += gk * x2
			d3 += gk * x3
		}
		scratch[i] = a0
		scratch[i+1] = a1
		scratch[i+2] = a2
		scratch[i+3] = a3
		scratch[half+i] = d0
		scratch[half+i+1] = d1
		scratch[half+i+2] = d2
		scratch[half+i+3] = d3
	}
	step64Tail(h, g, data, scratch, base, mask, half, i)

	copy(data[:n], scratch[:n])
}

func step64Tail(h, g, data, scratch []float64, base, mask, half, i int) {
	for ; i < half; i++ {
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
}
