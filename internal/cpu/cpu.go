// Package cpu provides CPU feature detection for wavelet kernel selection.
//
// The transform kernels come in several unroll widths; this package detects
// which SIMD extensions (SSE2, AVX2, NEON) the processor offers so the dwt
// package can bind the widest profitable kernel once at first use.
//
// Detection runs lazily on the first DetectFeatures call and is cached; the
// result can be overridden from tests via SetForcedFeatures.
package cpu

import "sync"

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // baseline for amd64
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool // Advanced SIMD, mandatory on ARMv8

	// ForceGeneric disables all SIMD-width selection (for testing).
	ForceGeneric bool

	// Architecture is runtime.GOARCH (e.g. "amd64", "arm64").
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once and cached. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides hardware detection with f.
// Intended for tests only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// Intended for tests only.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
