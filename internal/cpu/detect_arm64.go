//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
// NEON (Advanced SIMD) is mandatory on ARMv8, so HasNEON is normally true.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
