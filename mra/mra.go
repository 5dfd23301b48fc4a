package mra

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by analysis functions.
var (
	ErrEmptyInput          = errors.New("mra: empty input")
	ErrLengthNotPowerOfTwo = errors.New("mra: length must be a power of two")
)

func validateLength(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if n&(n-1) != 0 {
		return fmt.Errorf("%w: %d", ErrLengthNotPowerOfTwo, n)
	}
	return nil
}

// Bands splits a fully transformed buffer into its coefficient bands without
// copying: element 0 is the coarsest approximation (one sample), element l
// holds the level-l detail coefficients, finest level last. The returned
// slices alias data.
func Bands(data []float64) ([][]float64, error) {
	if err := validateLength(len(data)); err != nil {
		return nil, err
	}

	bands := [][]float64{data[:1]}
	for lo := 1; lo < len(data); lo *= 2 {
		bands = append(bands, data[lo:2*lo])
	}
	return bands, nil
}

// LevelEnergies returns the energy (sum of squares) of each band of a fully
// transformed buffer, coarsest first. For an orthogonal wavelet the entries
// sum to the energy of the original signal.
func LevelEnergies(data []float64) ([]float64, error) {
	if err := validateLength(len(data)); err != nil {
		return nil, err
	}

	sq := make([]float64, len(data))
	vecmath.MulBlock(sq, data, data)

	energies := []float64{sq[0]}
	for lo := 1; lo < len(data); lo *= 2 {
		e := 0.0
		for _, v := range sq[lo : 2*lo] {
			e += v
		}
		energies = append(energies, e)
	}
	return energies, nil
}

// LevelEnergies32 is the float32 variant of LevelEnergies.
// Energies accumulate in float64.
func LevelEnergies32(data []float32) ([]float64, error) {
	if err := validateLength(len(data)); err != nil {
		return nil, err
	}

	bandEnergy := func(band []float32) float64 {
		e := 0.0
		for _, v := range band {
			e += float64(v) * float64(v)
		}
		return e
	}

	energies := []float64{bandEnergy(data[:1])}
	for lo := 1; lo < len(data); lo *= 2 {
		energies = append(energies, bandEnergy(data[lo:2*lo]))
	}
	return energies, nil
}

// TotalEnergy returns the sum of squares of data.
func TotalEnergy(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sq := make([]float64, len(data))
	vecmath.MulBlock(sq, data, data)
	e := 0.0
	for _, v := range sq {
		e += v
	}
	return e
}

// TotalEnergy32 returns the sum of squares of data, accumulated in float64.
func TotalEnergy32(data []float32) float64 {
	e := 0.0
	for _, v := range data {
		e += float64(v) * float64(v)
	}
	return e
}
