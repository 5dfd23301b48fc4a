//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl is the fallback for other architectures: no SIMD flags,
// so callers fall back to the narrowest kernels.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
