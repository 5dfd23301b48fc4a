package mra

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestMagnitudeSpectrumImpulseIsFlat(t *testing.T) {
	signal := make([]float64, 64)
	signal[0] = 1

	mags, err := MagnitudeSpectrum(signal)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}
	if len(mags) != 33 {
		t.Fatalf("bin count=%d, want 33", len(mags))
	}

	// The DFT of a unit impulse at t=0 has unit magnitude in every bin.
	for k, m := range mags {
		if math.Abs(m-1) > 1e-9 {
			t.Fatalf("bin %d: magnitude=%v, want 1", k, m)
		}
	}
}

func TestMagnitudeSpectrumSinePeaksAtItsBin(t *testing.T) {
	const n = 128
	const bin = 5
	signal := testutil.DeterministicSine(bin, n, 1, n) // bin cycles over n samples

	mags, err := MagnitudeSpectrum(signal)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}

	peak := 0
	for k := 1; k < len(mags); k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}
	if peak != bin {
		t.Fatalf("spectrum peaks at bin %d, want %d", peak, bin)
	}
}

func TestMagnitudeSpectrumRejectsInvalidLengths(t *testing.T) {
	if _, err := MagnitudeSpectrum(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("nil: err=%v, want ErrEmptyInput", err)
	}
	if _, err := MagnitudeSpectrum(make([]float64, 20)); !errors.Is(err, ErrLengthNotPowerOfTwo) {
		t.Fatalf("20: err=%v, want ErrLengthNotPowerOfTwo", err)
	}
}

func TestMagnitudeSpectrum32MatchesFloat64(t *testing.T) {
	signal32 := testutil.DeterministicSine32(4, 64, 1, 64)
	signal64 := make([]float64, len(signal32))
	for i, v := range signal32 {
		signal64[i] = float64(v)
	}

	a, err := MagnitudeSpectrum32(signal32)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum32: %v", err)
	}
	b, err := MagnitudeSpectrum(signal64)
	if err != nil {
		t.Fatalf("MagnitudeSpectrum: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}
