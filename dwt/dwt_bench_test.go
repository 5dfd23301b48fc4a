package dwt

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
	"github.com/cwbudde/algo-wavelet/wavelet"
)

func BenchmarkForward32(b *testing.B) {
	w, err := wavelet.New(wavelet.FamilyHaar)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}

	sizes := []int{256, 1024, 4096, 16384}
	for _, n := range sizes {
		src := testutil.DeterministicNoise32(1, 1, n)
		data := make([]float32, n)
		scratch := make([]float32, n)

		// The transform mutates data in place, so each iteration restores
		// the pristine input with the timer stopped.
		b.Run("scalar/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(data, src)
				b.StartTimer()
				if err := Forward32(w, data, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("vector/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(data, src)
				b.StartTimer()
				if err := ForwardVector32(w, data, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkForward64(b *testing.B) {
	w, err := wavelet.New(wavelet.FamilyHaar)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}

	sizes := []int{1024, 16384}
	for _, n := range sizes {
		src := testutil.DeterministicNoise(1, 1, n)
		data := make([]float64, n)
		scratch := make([]float64, n)

		b.Run("scalar/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(data, src)
				b.StartTimer()
				if err := Forward64(w, data, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("vector/"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(data, src)
				b.StartTimer()
				if err := ForwardVector64(w, data, scratch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStepKernels32(b *testing.B) {
	w, err := wavelet.New(wavelet.FamilyHaar)
	if err != nil {
		b.Fatalf("wavelet.New: %v", err)
	}

	const n = 4096
	src := testutil.DeterministicNoise32(2, 1, n)
	data := make([]float32, n)
	scratch := make([]float32, n)

	b.Run("scalar", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(data, src)
			b.StartTimer()
			step32(w, data, scratch, n)
		}
	})
	b.Run("lanes4", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(data, src)
			b.StartTimer()
			step32Lanes4(w, data, scratch, n)
		}
	})
	b.Run("lanes8", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(data, src)
			b.StartTimer()
			step32Lanes8(w, data, scratch, n)
		}
	})
}
