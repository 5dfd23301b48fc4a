package mra_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dwt"
	"github.com/cwbudde/algo-wavelet/mra"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

func ExampleBands() {
	data := make([]float64, 16)
	bands, err := mra.Bands(data)
	if err != nil {
		panic(err)
	}

	for _, band := range bands {
		fmt.Print(len(band), " ")
	}
	fmt.Println()
	// Output:
	// 1 1 2 4 8
}

func ExampleLevelEnergies() {
	w, err := wavelet.New(wavelet.FamilyHaar)
	if err != nil {
		panic(err)
	}

	data := []float64{1, 1, 1, 1, 1, 1, 1, 1}
	if err := dwt.Forward64(w, data, make([]float64, len(data))); err != nil {
		panic(err)
	}

	energies, err := mra.LevelEnergies(data)
	if err != nil {
		panic(err)
	}
	for _, e := range energies {
		fmt.Printf("%.0f ", e)
	}
	fmt.Println()
	// Output:
	// 8 0 0 0
}
