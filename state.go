package mandel

import "sync"

const (
	ZoomIn  = 0.8
	ZoomOut = 1.2

	// PanStep is the fraction of the view height moved by one pan.
	PanStep = 0.1
)

// Button identifies a pointer button. 1 is the primary button.
type Button uint8

const ButtonPrimary Button = 1

// State is the view shared between input handlers and render dispatch.
//
// Every method holds the lock only long enough to update fields and copy
// them into the returned Params; renders run on those copies after the lock
// is released. Two renders requested back to back therefore run
// concurrently, and whichever finishes last is shown last.
type State struct {
	mu     sync.Mutex
	height int
	width  int
	scale  float64
	center complex128
}

func NewState(scale float64, center complex128) *State {
	return &State{scale: scale, center: center}
}

// NewStateAt starts the view on a landmark.
func NewStateAt(r Region) *State {
	return NewState(r.Scale(), r.Center())
}

// Snapshot copies the current view.
func (s *State) Snapshot() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paramsLocked()
}

func (s *State) paramsLocked() Params {
	return Params{Height: s.height, Width: s.width, Scale: s.scale, Center: s.center}
}

// Resize records new pixel dimensions. It returns false, leaving the state
// untouched, when the dimensions did not change.
func (s *State) Resize(height, width int) (Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.height == height && s.width == width {
		return Params{}, false
	}
	s.height, s.width = height, width
	return s.paramsLocked(), true
}

// PointerPress zooms in around the pressed pixel for the primary button and
// zooms out for any other. Presses before the first resize are ignored.
func (s *State) PointerPress(x, y float64, b Button) (Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.height <= 0 || s.width <= 0 {
		return Params{}, false
	}
	if b != ButtonPrimary {
		s.scale *= ZoomOut
		return s.paramsLocked(), true
	}

	// Keep the plane point under the pointer fixed.
	pivot := NewViewport(s.height, s.width, s.center, s.scale).PixelToPlane(x, y)
	s.center = pivot + (s.center-pivot)*complex(ZoomIn, 0)
	s.scale *= ZoomIn
	return s.paramsLocked(), true
}

// Pan moves the center by dx, dy steps of PanStep view heights. Positive dy
// moves toward larger imaginary parts.
func (s *State) Pan(dx, dy float64) (Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.height <= 0 || s.width <= 0 {
		return Params{}, false
	}
	step := PanStep * BaseSpan * s.scale
	s.center += complex(dx*step, dy*step)
	return s.paramsLocked(), true
}

// Reset moves the view onto r, keeping the pixel dimensions.
func (s *State) Reset(r Region) (Params, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.center, s.scale = r.Center(), r.Scale()
	if s.height <= 0 || s.width <= 0 {
		return Params{}, false
	}
	return s.paramsLocked(), true
}
