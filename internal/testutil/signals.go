package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicSine32 generates a deterministic float32 sine wave.
// The phase accumulates in float64 before rounding so long buffers do not
// drift.
func DeterministicSine32(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicNoise32 generates float32 white noise with a fixed seed.
func DeterministicNoise32(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse32 generates a float32 unit impulse at the given position.
func Impulse32(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Ones32 returns a float32 slice of length n filled with 1.0.
func Ones32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Ramp32 returns a float32 slice with values 0, 1, ..., n-1.
// Useful for index-sensitive kernel tests.
func Ramp32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}
