//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on amd64 systems.
//
// SSE2 is reported unconditionally true by golang.org/x/sys/cpu since it is
// part of the x86-64 baseline.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		Architecture: runtime.GOARCH,
	}
}
