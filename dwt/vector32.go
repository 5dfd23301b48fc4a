package dwt

import (
	"sync"

	"github.com/cwbudde/algo-wavelet/internal/cpu"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

var (
	step32VecImpl func(w *wavelet.Wavelet, data, scratch []float32, n int)
	step32VecOnce sync.Once
)

// initStep32Vector binds the widest profitable float32 step kernel for the
// detected CPU. 256-bit registers fit eight float32 lanes, 128-bit four.
func initStep32Vector() {
	features := cpu.DetectFeatures()
	switch {
	case features.ForceGeneric:
		step32VecImpl = step32Lanes4
	case features.HasAVX2 || features.HasAVX512:
		step32VecImpl = step32Lanes8
	default:
		step32VecImpl = step32Lanes4
	}
}

// ForwardVector32 applies the forward pyramidal wavelet transform to data in
// place using the lane-chunked step kernel. It accepts exactly the inputs
// Forward32 accepts and produces the same coefficients up to floating-point
// rounding.
func ForwardVector32(w *wavelet.Wavelet, data, scratch []float32) error {
	if err := validate(w, len(data), len(scratch)); err != nil {
		return err
	}
	step32VecOnce.Do(initStep32Vector)
	for active := len(data); active >= w.Len(); active >>= 1 {
		step32VecImpl(w, data, scratch, active)
	}
	return nil
}

// step32Lanes4 computes one pyramid level four output pairs at a time,
// with a scalar tail for the remainder. Main loop and tail share the same
// masked periodic index, so each index in [0, n/2) is produced exactly once
// for any n.
func step32Lanes4(w *wavelet.Wavelet, data, scratch []float32, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H32()
	g := w.G32()
	base := w.Len()*n - w.Offset()

	i := 0
	for ; i+4 <= half; i += 4 {
		var a0, a1, a2, a3 float32
		var d0, d1, d2, d3 float32
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
	step32Tail(h, g, data, scratch, base, mask, half, i)

	copy(data[:n], scratch[:n])
}

// step32Lanes8 is the eight-lane unroll used when 256-bit registers are
// available.
func step32Lanes8(w *wavelet.Wavelet, data, scratch []float32, n int) {
	half := n >> 1
	mask := n - 1
	h := w.H32()
	g := w.G32()
	base := w.Len()*n - w.Offset()

	i := 0
	for ; i+8 <= half; i += 8 {
		var a0, a1, a2, a3, a4, a5, a6, a7 float32
		var d0, d1, d2, d3, d4, d5, d6, d7 float32
		ni := 2*i + base
		for k := range h {
			hk := h[k]
			gk := g[k]
			x0 := data[(ni+k)&mask]
			x1 := data[(ni+2+k)&mask]
			x2 := data[(ni+4+k)&mask]
			x3 := data[(ni+6+k)&mask]
			x4 := data[(ni+8+k)&mask]
			x5 := data[(ni+10+k)&mask]
			x6 := data[(ni+12+k)&mask]
			x7 := data[(ni+14+k)&mask]
			a0 += hk * x0
			a1 += hk * x1
			a2 += hk * x2
			a3 += hk * x3
			a4 += hk * x4
			a5 += hk * x5
			a6 += hk * x6
			a7 += hk * x7
			d0 += gk * x0
			d1 += gk * x1
			d2 += gk * x2
			d3 += gk * x3
			d4 += gk * x4
			d5 += gk * x5
			d6 += gk * x6
			d7 += gk * x7
		}
		scratch[i] = a0
		scratch[i+1] = a1
		scratch[i+2] = a2
		scratch[i+3] = a3
		scratch[i+4] = a4
		scratch[i+5] = a5
		scratch[i+6] = a6
		scratch[i+7] = a7
		scratch[half+i] = d0
		scratch[half+i+1] = d1
		scratch[half+i+2] = d2
		scratch[half+i+3] = d3
		scratch[half+i+4] = d4
		scratch[half+i+5] = d5
		scratch[half+i+6] = d6
		scratch[half+i+7] = d7
	}
	step32Tail(h, g, data, scratch, base, mask, half, i)

	copy(data[:n], scratch[:n])
}

// step32Tail finishes output pairs [i, half) one at a time.
func step32Tail(h, g, data, scratch []float32, base, mask, half, i int) {
	for ; i < half; i++ {
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
}
