package wavelet

import (
	"errors"
	"fmt"
)

// ErrUnknownFamily is returned when a family name or value is not recognized.
var ErrUnknownFamily = errors.New("wavelet: unknown family")

// Family identifies a wavelet family.
type Family int

const (
	// FamilyHaar is the 2-tap orthogonal Haar pair with coefficients ±1/√2.
	FamilyHaar Family = iota
)

// String returns the canonical lookup name of the family.
func (f Family) String() string {
	switch f {
	case FamilyHaar:
		return "haar"
	default:
		return "unknown"
	}
}

// Wavelet is an immutable descriptor of one orthogonal filter pair.
//
// The high-pass filter is derived from the low-pass filter through the
// quadrature-mirror relation g[i] = (-1)^i * h[nc-1-i], so every descriptor
// is orthogonal by construction.
type Wavelet struct {
	family Family
	offset int

	h, g     []float64
	h32, g32 []float32
}

// invSqrt2 is 1/sqrt(2) at full float64 precision.
const invSqrt2 = 0.70710678118654752440

// New returns the descriptor for the given family.
func New(family Family) (*Wavelet, error) {
	switch family {
	case FamilyHaar:
		return newWavelet(family, []float64{invSqrt2, invSqrt2}, 0), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, int(family))
	}
}

// Parse returns the descriptor for a family name as used by String,
// e.g. "haar".
func Parse(name string) (*Wavelet, error) {
	switch name {
	case "haar":
		return New(FamilyHaar)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
}

func newWavelet(family Family, h []float64, offset int) *Wavelet {
	nc := len(h)
	w := &Wavelet{
		family: family,
		offset: offset,
		h:      h,
		g:      make([]float64, nc),
		h32:    make([]float32, nc),
		g32:    make([]float32, nc),
	}

	sign := 1.0
	for i := 0; i < nc; i++ {
		w.g[i] = sign * h[nc-1-i]
		sign = -sign
	}
	for i := 0; i < nc; i++ {
		w.h32[i] = float32(w.h[i])
		w.g32[i] = float32(w.g[i])
	}

	return w
}

// Family returns the wavelet family.
func (w *Wavelet) Family() Family {
	return w.family
}

// Name returns the canonical family name.
func (w *Wavelet) Name() string {
	return w.family.String()
}

// Len returns the filter length nc.
func (w *Wavelet) Len() int {
	return len(w.h)
}

// Offset returns the centering offset of the filter support.
func (w *Wavelet) Offset() int {
	return w.offset
}

// H returns the low-pass (scaling) coefficients.
// The returned slice is shared and must not be modified.
func (w *Wavelet) H() []float64 {
	return w.h
}

// G returns the high-pass (wavelet) coefficients.
// The returned slice is shared and must not be modified.
func (w *Wavelet) G() []float64 {
	return w.g
}

// H32 returns the low-pass coefficients in float32.
// The returned slice is shared and must not be modified.
func (w *Wavelet) H32() []float32 {
	return w.h32
}

// G32 returns the high-pass coefficients in float32.
// The returned slice is shared and must not be modified.
func (w *Wavelet) G32() []float32 {
	return w.g32
}
