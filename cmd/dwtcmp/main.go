// Command dwtcmp runs the scalar and lane-chunked forward wavelet transforms
// over the same generated signal and reports timing and per-index agreement.
//
// Usage:
//
//	dwtcmp [flags]
//
// Examples:
//
//	dwtcmp -n 4096
//	dwtcmp -n 1024 -signal noise -seed 7
//	dwtcmp -n 256 -signal sine -levels -spectrum
//	dwtcmp -bits 64 -threshold 1e-12
//
// The command exits with status 1 when any coefficient pair differs by more
// than the threshold.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-wavelet/dwt"
	"github.com/cwbudde/algo-wavelet/mra"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

const maxReportedMismatches = 10

func main() {
	var (
		n         = flag.Int("n", 1024, "number of samples (power of two)")
		signal    = flag.String("signal", "sine", "test signal: sine, noise, impulse, dc")
		family    = flag.String("family", "haar", "wavelet family name")
		seed      = flag.Int64("seed", 1, "seed for the noise signal")
		freq      = flag.Float64("freq", 440, "sine frequency in Hz")
		rate      = flag.Float64("rate", 48000, "sample rate in Hz for the sine signal")
		amp       = flag.Float64("amp", 1, "signal amplitude")
		threshold = flag.Float64("threshold", 0.01, "absolute per-index agreement bound")
		bits      = flag.Int("bits", 32, "sample precision: 32 or 64")
		levels    = flag.Bool("levels", false, "print per-level band energies")
		spectrum  = flag.Bool("spectrum", false, "print Fourier spectrum summary of the input")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dwtcmp [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Compares scalar and vector forward DWT kernels on a generated signal.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	w, err := wavelet.Parse(*family)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Computing forward DWT (%s) with %d samples, %d-bit\n\n", w.Name(), *n, *bits)

	in, err := generate(*signal, *n, *seed, *freq, *rate, *amp)
	if err != nil {
		fatalf("%v", err)
	}

	var mismatches int
	switch *bits {
	case 32:
		mismatches = run32(w, in, *threshold, *levels)
	case 64:
		mismatches = run64(w, in, *threshold, *levels)
	default:
		fatalf("invalid -bits %d: must be 32 or 64", *bits)
	}

	if *spectrum {
		printSpectrum(in)
	}

	if mismatches > 0 {
		fmt.Printf("\nFAIL: %d of %d coefficients exceed threshold %g\n", mismatches, *n, *threshold)
		os.Exit(1)
	}
	fmt.Printf("\nPASS: all %d coefficients within threshold %g\n", *n, *threshold)
}

func generate(kind string, n int, seed int64, freq, rate, amp float64) ([]float64, error) {
	switch kind {
	case "sine":
		out := make([]float64, n)
		step := 2 * math.Pi * freq / rate
		for i := range out {
			out[i] = amp * math.Sin(step*float64(i))
		}
		return out, nil
	case "noise":
		out := make([]float64, n)
		rng := rand.New(rand.NewSource(seed))
		for i := range out {
			out[i] = (rng.Float64()*2 - 1) * amp
		}
		return out, nil
	case "impulse":
		out := make([]float64, n)
		if n > 0 {
			out[n/2] = amp
		}
		return out, nil
	case "dc":
		out := make([]float64, n)
		for i := range out {
			out[i] = amp
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown signal %q (want sine, noise, impulse, dc)", kind)
	}
}

func run32(w *wavelet.Wavelet, in []float64, threshold float64, levels bool) int {
	n := len(in)
	dataS := make([]float32, n)
	dataV := make([]float32, n)
	for i, v := range in {
		dataS[i] = float32(v)
		dataV[i] = float32(v)
	}
	scratch := make([]float32, n)

	start := time.Now()
	if err := dwt.Forward32(w, dataS, scratch); err != nil {
		fatalf("scalar transform: %v", err)
	}
	scalarTime := time.Since(start)

	start = time.Now()
	if err := dwt.ForwardVector32(w, dataV, scratch); err != nil {
		fatalf("vector transform: %v", err)
	}
	vectorTime := time.Since(start)

	printTimings(scalarTime, vectorTime)

	mismatches := 0
	maxDiff := 0.0
	for i := range dataS {
		diff := math.Abs(float64(dataS[i]) - float64(dataV[i]))
		if diff > maxDiff {
			maxDiff = diff
		}
		if diff > threshold {
			if mismatches < maxReportedMismatches {
				fmt.Printf("Mismatch at index %d: %v != %v\n", i, dataV[i], dataS[i])
			}
			mismatches++
		}
	}
	fmt.Printf("Max |scalar - vector| = %g\n", maxDiff)

	if levels {
		energies, err := mra.LevelEnergies32(dataS)
		if err != nil {
			fatalf("level energies: %v", err)
		}
		printLevels(energies, mra.TotalEnergy(in))
	}

	return mismatches
}

func run64(w *wavelet.Wavelet, in []float64, threshold float64, levels bool) int {
	n := len(in)
	dataS := make([]float64, n)
	dataV := make([]float64, n)
	copy(dataS, in)
	copy(dataV, in)
	scratch := make([]float64, n)

	start := time.Now()
	if err := dwt.Forward64(w, dataS, scratch); err != nil {
		fatalf("scalar transform: %v", err)
	}
	scalarTime := time.Since(start)

	start = time.Now()
	if err := dwt.ForwardVector64(w, dataV, scratch); err != nil {
		fatalf("vector transform: %v", err)
	}
	vectorTime := time.Since(start)

	printTimings(scalarTime, vectorTime)

	mismatches := 0
	maxDiff := 0.0
	for i := range dataS {
		diff := math.Abs(dataS[i] - dataV[i])
		if diff > maxDiff {
			maxDiff = diff
		}
		if diff > threshold {
			if mismatches < maxReportedMismatches {
				fmt.Printf("Mismatch at index %d: %v != %v\n", i, dataV[i], dataS[i])
			}
			mismatches++
		}
	}
	fmt.Printf("Max |scalar - vector| = %g\n", maxDiff)

	if levels {
		energies, err := mra.LevelEnergies(dataS)
		if err != nil {
			fatalf("level energies: %v", err)
		}
		printLevels(energies, mra.TotalEnergy(in))
	}

	return mismatches
}

func printTimings(scalarTime, vectorTime time.Duration) {
	fmt.Printf("Scalar DWT took %v\n", scalarTime)
	fmt.Printf("Vector DWT took %v\n", vectorTime)
	if vectorTime > 0 {
		fmt.Printf("Speedup: %.2fx\n", float64(scalarTime)/float64(vectorTime))
	}
	fmt.Println()
}

func printLevels(energies []float64, total float64) {
	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "band\tsamples\tenergy\tshare")
	for i, e := range energies {
		name := "approx"
		samples := 1
		if i > 0 {
			name = fmt.Sprintf("detail %d", i)
			samples = 1 << (i - 1)
		}
		share := 0.0
		if total > 0 {
			share = e / total
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6g\t%.2f%%\n", name, samples, e, 100*share)
	}
	tw.Flush()
}

func printSpectrum(in []float64) {
	mags, err := mra.MagnitudeSpectrum(in)
	if err != nil {
		fatalf("spectrum: %v", err)
	}

	peak := 0
	for k := 1; k < len(mags); k++ {
		if mags[k] > mags[peak] {
			peak = k
		}
	}
	fmt.Printf("\nFourier reference: %d bins, peak at bin %d (|X| = %.6g)\n", len(mags), peak, mags[peak])
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "dwtcmp: "+format+"\n", args...)
	os.Exit(1)
}
