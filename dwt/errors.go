package dwt

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Errors returned by the transform entry points.
var (
	ErrNilWavelet             = errors.New("dwt: nil wavelet descriptor")
	ErrLengthNotPowerOfTwo    = errors.New("dwt: data length must be a power of two")
	ErrLengthBelowSupport     = errors.New("dwt: data length shorter than filter support")
	ErrScratchShorterThanData = errors.New("dwt: scratch buffer shorter than data")
)

// validate checks the shared preconditions of all transform variants.
// Passing an invalid length to the step kernels would silently wrap the
// masked periodic index, so the length contract is enforced here instead.
func validate(w *wavelet.Wavelet, dataLen, scratchLen int) error {
	if w == nil {
		return ErrNilWavelet
	}
	if dataLen < w.Len() {
		return fmt.Errorf("%w: %d < %d", ErrLengthBelowSupport, dataLen, w.Len())
	}
	if dataLen&(dataLen-1) != 0 {
		return fmt.Errorf("%w: %d", ErrLengthNotPowerOfTwo, dataLen)
	}
	if scratchLen < dataLen {
		return fmt.Errorf("%w: %d < %d", ErrScratchShorterThanData, scratchLen, dataLen)
	}
	return nil
}
