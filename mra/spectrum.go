package mra

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// MagnitudeSpectrum returns |X[k]| for k in [0, n/2] of a real signal of
// power-of-two length n. The spectrum is unnormalized (plain forward DFT
// magnitudes), which is sufficient for band-shape comparison against
// wavelet level energies.
func MagnitudeSpectrum(signal []float64) ([]float64, error) {
	n := len(signal)
	if err := validateLength(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("mra: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("mra: fft forward: %w", err)
	}

	half := n/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for k := 0; k < half; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mags := make([]float64, half)
	vecmath.Magnitude(mags, re, im)
	return mags, nil
}

// MagnitudeSpectrum32 converts a float32 signal and returns its magnitude
// spectrum via MagnitudeSpectrum.
func MagnitudeSpectrum32(signal []float32) ([]float64, error) {
	buf := make([]float64, len(signal))
	for i, v := range signal {
		buf[i] = float64(v)
	}
	return MagnitudeSpectrum(buf)
}
