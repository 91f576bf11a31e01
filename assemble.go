package mandel

import (
	"image"
	"runtime"
	"sync"
)

// bandHeight is the number of rows handed to a worker at a time.
const bandHeight = 8

type assembleConfig struct {
	workers  int
	progress func(done, total int)
}

// AssembleOption configures Assemble.
type AssembleOption func(*assembleConfig)

// WithWorkers sets the number of goroutines evaluating bands. Values below 1
// fall back to GOMAXPROCS.
func WithWorkers(n int) AssembleOption {
	return func(c *assembleConfig) { c.workers = n }
}

// WithProgress registers a callback run after every finished band with the
// number of finished and total pixels. It may be called from several
// goroutines, one at a time.
func WithProgress(fn func(done, total int)) AssembleOption {
	return func(c *assembleConfig) { c.progress = fn }
}

// Assemble evaluates k over every sample of g and encodes the result.
// Bands of rows are independent and evaluated in parallel.
func Assemble(g Grid, k Kernel, opts ...AssembleOption) *Image {
	cfg := assembleConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}

	img := NewImage(g.Cols(), g.Rows())
	img.Kernel = k
	if len(img.Pix) == 0 {
		return img
	}

	sched := newBandScheduler(image.Rect(0, 0, img.Width, img.Height), cfg.progress)
	workers := min(cfg.workers, sched.total())

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				band, found := sched.popBand()
				if !found {
					return
				}
				renderBand(img, g, k, band)
				sched.bandFinished(band)
			}
		}()
	}
	wg.Wait()

	return img
}

func renderBand(img *Image, g Grid, k Kernel, band image.Rectangle) {
	for y := band.Min.Y; y < band.Max.Y; y++ {
		row := img.Pix[y*img.Stride() : (y+1)*img.Stride()]
		for x := band.Min.X; x < band.Max.X; x++ {
			k.Encode(k.Eval(g.At(y, x)), row[4*x:4*x+4])
		}
	}
}

// bandScheduler hands out disjoint bands of the image to workers.
type bandScheduler struct {
	m sync.Mutex

	unstarted []image.Rectangle

	totalPixels    int
	finishedPixels int
	progress       func(done, total int)
}

func newBandScheduler(bounds image.Rectangle, progress func(done, total int)) *bandScheduler {
	return &bandScheduler{
		unstarted:   splitRectNoClip(bounds, bounds.Dx(), bandHeight),
		totalPixels: bounds.Dx() * bounds.Dy(),
		progress:    progress,
	}
}

func (s *bandScheduler) total() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.unstarted)
}

func (s *bandScheduler) popBand() (band image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	band = s.unstarted[0]
	s.unstarted = s.unstarted[1:]
	return band, true
}

func (s *bandScheduler) bandFinished(band image.Rectangle) {
	s.m.Lock()
	defer s.m.Unlock()

	s.finishedPixels += band.Dx() * band.Dy()
	if s.progress != nil {
		s.progress(s.finishedPixels, s.totalPixels)
	}
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
