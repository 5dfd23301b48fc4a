package dwt

import (
	"sync"

	"github.com/cwbudde/algo-wavelet/wavelet"
)

// Workspace32 owns the scratch buffer one float32 transform call borrows.
// It is not safe for concurrent use; give each goroutine its own workspace
// or use a Pool32.
type Workspace32 struct {
	scratch []float32
}

// NewWorkspace32 returns a workspace sized for transforms of up to n samples.
// The workspace grows on demand if a longer buffer is transformed.
func NewWorkspace32(n int) *Workspace32 {
	if n < 0 {
		n = 0
	}
	return &Workspace32{scratch: make([]float32, n)}
}

// Len returns the current scratch capacity in samples.
func (ws *Workspace32) Len() int {
	return len(ws.scratch)
}

func (ws *Workspace32) grow(n int) []float32 {
	if cap(ws.scratch) < n {
		ws.scratch = make([]float32, n)
	}
	ws.scratch = ws.scratch[:cap(ws.scratch)]
	return ws.scratch
}

// Forward runs the scalar transform using the workspace scratch.
func (ws *Workspace32) Forward(w *wavelet.Wavelet, data []float32) error {
	return Forward32(w, data, ws.grow(len(data)))
}

// ForwardVector runs the lane-chunked transform using the workspace scratch.
func (ws *Workspace32) ForwardVector(w *wavelet.Wavelet, data []float32) error {
	return ForwardVector32(w, data, ws.grow(len(data)))
}

// Workspace64 is the float64 twin of Workspace32.
type Workspace64 struct {
	scratch []float64
}

// NewWorkspace64 returns a workspace sized for transforms of up to n samples.
func NewWorkspace64(n int) *Workspace64 {
	if n < 0 {
		n = 0
	}
	return &Workspace64{scratch: make([]float64, n)}
}

// Len returns the current scratch capacity in samples.
func (ws *Workspace64) Len() int {
	return len(ws.scratch)
}

func (ws *Workspace64) grow(n int) []float64 {
	if cap(ws.scratch) < n {
		ws.scratch = make([]float64, n)
	}
	ws.scratch = ws.scratch[:cap(ws.scratch)]
	return ws.scratch
}

// Forward runs the scalar transform using the workspace scratch.
func (ws *Workspace64) Forward(w *wavelet.Wavelet, data []float64) error {
	return Forward64(w, data, ws.grow(len(data)))
}

// ForwardVector runs the lane-chunked transform using the workspace scratch.
func (ws *Workspace64) ForwardVector(w *wavelet.Wavelet, data []float64) error {
	return ForwardVector64(w, data, ws.grow(len(data)))
}

// Pool32 provides sync.Pool-based Workspace32 reuse to reduce GC pressure
// when transforms run in tight loops.
type Pool32 struct {
	pool sync.Pool
}

// NewPool32 returns a Pool32 ready for use.
func NewPool32() *Pool32 {
	return &Pool32{
		pool: sync.Pool{
			New: func() any {
				return &Workspace32{}
			},
		},
	}
}

// Get returns a workspace with scratch capacity for at least n samples.
// Callers must return it via Put when done.
func (p *Pool32) Get(n int) *Workspace32 {
	ws := p.pool.Get().(*Workspace32)
	ws.grow(n)
	return ws
}

// Put returns a workspace to the pool for reuse.
// The caller must not use the workspace after calling Put.
func (p *Pool32) Put(ws *Workspace32) {
	if ws == nil {
		return
	}
	p.pool.Put(ws)
}

// Pool64 provides sync.Pool-based Workspace64 reuse.
type Pool64 struct {
	pool sync.Pool
}

// NewPool64 returns a Pool64 ready for use.
func NewPool64() *Pool64 {
	return &Pool64{
		pool: sync.Pool{
			New: func() any {
				return &Workspace64{}
			},
		},
	}
}

// Get returns a workspace with scratch capacity for at least n samples.
// Callers must return it via Put when done.
func (p *Pool64) Get(n int) *Workspace64 {
	ws := p.pool.Get().(*Workspace64)
	ws.grow(n)
	return ws
}

// Put returns a workspace to the pool for reuse.
// The caller must not use the workspace after calling Put.
func (p *Pool64) Put(ws *Workspace64) {
	if ws == nil {
		return
	}
	p.pool.Put(ws)
}
