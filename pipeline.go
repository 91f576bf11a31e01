package mandel

import (
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrZeroHeight rejects a render whose aspect ratio would be undefined.
	ErrZeroHeight = errors.New("render height must be positive")
	// ErrInvalidParams rejects non-positive widths and scales.
	ErrInvalidParams = errors.New("invalid render parameters")
	// ErrTooLarge rejects views with a side longer than MaxSide.
	ErrTooLarge = errors.New("render too large")
)

// MaxSide bounds both image dimensions of a render.
const MaxSide = 4096

// Renderer starts a render of p and returns a channel that yields the
// finished image once and is then closed. Render must not block on the
// computation.
type Renderer interface {
	Render(p Params) (<-chan *Image, error)
}

// Params is an owned snapshot of the view taken when a render is requested.
type Params struct {
	Height, Width int
	Scale         float64
	Center        complex128
	Seq           uint64
}

// Viewport derives the sampling viewport. p must be valid.
func (p Params) Viewport() Viewport {
	return NewViewport(p.Height, p.Width, p.Center, p.Scale)
}

// Validate reports why p cannot be rendered.
func (p Params) Validate() error {
	if p.Height <= 0 {
		return fmt.Errorf("%w: height=%d", ErrZeroHeight, p.Height)
	}
	if p.Width <= 0 {
		return fmt.Errorf("%w: width=%d", ErrInvalidParams, p.Width)
	}
	if p.Height > MaxSide || p.Width > MaxSide {
		return fmt.Errorf("%w: %dx%d exceeds %d per side", ErrTooLarge, p.Width, p.Height, MaxSide)
	}
	if !(p.Scale > 0) {
		return fmt.Errorf("%w: scale=%g", ErrInvalidParams, p.Scale)
	}
	return nil
}

// Pipeline renders views on background goroutines. Renders are
// independent: nothing is queued, coalesced or cancelled.
type Pipeline struct {
	kernel  Kernel
	workers int
	verbose bool
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPipelineWorkers sets the per-render fan-out. 0 means GOMAXPROCS.
func WithPipelineWorkers(n int) PipelineOption {
	return func(p *Pipeline) { p.workers = n }
}

// WithLogging logs render timings and progress.
func WithLogging() PipelineOption {
	return func(p *Pipeline) { p.verbose = true }
}

func NewPipeline(k Kernel, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{kernel: k}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Pipeline) Kernel() Kernel { return p.kernel }

// Render implements Renderer. Invalid params are rejected before any
// goroutine starts. The returned channel has room for the result, so the
// worker never waits for a receiver and an abandoned image is simply dropped.
func (p *Pipeline) Render(params Params) (<-chan *Image, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	out := make(chan *Image, 1)
	go func() {
		defer close(out)
		out <- p.render(params)
	}()
	return out, nil
}

func (p *Pipeline) render(params Params) *Image {
	start := time.Now()
	vp := params.Viewport()

	opts := []AssembleOption{WithWorkers(p.workers)}
	if p.verbose {
		lastPct := 0
		opts = append(opts, WithProgress(func(done, total int) {
			if pct := 100 * done / total; pct/25 != lastPct/25 {
				lastPct = pct
				log.Printf("render #%d: finished: %d%%", params.Seq, pct)
			}
		}))
	}

	img := Assemble(vp.Grid(), p.kernel, opts...)
	img.Seq = params.Seq

	if p.verbose {
		log.Printf("render #%d: %s (%s) took %s", params.Seq, vp, p.kernel, time.Since(start))
	}
	return img
}
