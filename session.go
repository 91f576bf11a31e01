package mandel

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// EventKind tells which fields of an Event are meaningful.
type EventKind uint8

const (
	EventResize EventKind = iota + 1
	EventPointer
	EventKey
)

// Key is a keyboard command understood by sessions.
type Key uint8

const (
	KeyReset Key = iota + 1
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyZoomIn
	KeyZoomOut
)

// Event is one input from the presentation layer.
type Event struct {
	Kind EventKind

	// EventResize
	Height, Width int

	// EventPointer
	X, Y   float64
	Button Button

	// EventKey
	Key Key
}

func ResizeEvent(height, width int) Event {
	return Event{Kind: EventResize, Height: height, Width: width}
}

func PointerEvent(x, y float64, b Button) Event {
	return Event{Kind: EventPointer, X: x, Y: y, Button: b}
}

func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// Presenter shows a finished image. Sessions call it from their event loop.
type Presenter func(img *Image) error

// Session owns a State and turns input events into renders. Its methods
// are meant to be called from a single event loop goroutine; completed
// images arrive on Frames in completion order.
type Session struct {
	renderer Renderer
	state    *State
	home     Region

	seq    uint64
	frames chan *Image

	closeOnce sync.Once
	done      chan struct{}
}

// NewSession creates a session rendering with r. home is the view restored
// by KeyReset.
func NewSession(r Renderer, home Region) *Session {
	return &Session{
		renderer: r,
		state:    NewStateAt(home),
		home:     home,
		frames:   make(chan *Image),
		done:     make(chan struct{}),
	}
}

// State exposes the session's view.
func (s *Session) State() *State { return s.state }

// Frames delivers completed images. Hosts that poll should use a
// non-blocking receive.
func (s *Session) Frames() <-chan *Image { return s.frames }

// Dispatched is the sequence number of the latest render the renderer
// accepted.
func (s *Session) Dispatched() uint64 { return s.seq }

// Handle applies ev to the state and dispatches a render if the view
// changed. It reports whether a render was dispatched.
func (s *Session) Handle(ev Event) (bool, error) {
	if ev.Kind == EventResize && (ev.Height > MaxSide || ev.Width > MaxSide) {
		// refused before it reaches the state, so later events still render
		return false, fmt.Errorf("resize: %w: %dx%d exceeds %d per side", ErrTooLarge, ev.Width, ev.Height, MaxSide)
	}
	p, changed := s.apply(ev)
	if !changed {
		return false, nil
	}
	return true, s.dispatch(p)
}

func (s *Session) apply(ev Event) (Params, bool) {
	switch ev.Kind {
	case EventResize:
		return s.state.Resize(ev.Height, ev.Width)
	case EventPointer:
		return s.state.PointerPress(ev.X, ev.Y, ev.Button)
	case EventKey:
		switch ev.Key {
		case KeyReset:
			return s.state.Reset(s.home)
		case KeyLeft:
			return s.state.Pan(-1, 0)
		case KeyRight:
			return s.state.Pan(1, 0)
		// row 0 is the smallest imaginary part, so up on screen is -dy
		case KeyUp:
			return s.state.Pan(0, -1)
		case KeyDown:
			return s.state.Pan(0, 1)
		case KeyZoomIn, KeyZoomOut:
			p := s.state.Snapshot()
			b := ButtonPrimary
			if ev.Key == KeyZoomOut {
				b++
			}
			return s.state.PointerPress(float64(p.Width-1)/2, float64(p.Height-1)/2, b)
		}
	}
	return Params{}, false
}

// dispatch numbers p and starts its render. Rejected renders do not use up
// a sequence number.
func (s *Session) dispatch(p Params) error {
	p.Seq = s.seq + 1

	ch, err := s.renderer.Render(p)
	if err != nil {
		return fmt.Errorf("render #%d: %w", p.Seq, err)
	}
	s.seq = p.Seq

	go func() {
		img, ok := <-ch
		if !ok {
			return
		}
		select {
		case s.frames <- img:
		case <-s.done:
			// presenter is gone; drop the image
		}
	}()
	return nil
}

// Close stops frame delivery. Renders still in flight finish and their
// images are discarded.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Run is the event loop for hosts that push events. It returns when ctx is
// done or events is closed, closing the session. A nil events channel
// leaves input to Handle calls made elsewhere; those must not run
// concurrently with each other.
func (s *Session) Run(ctx context.Context, events <-chan Event, present Presenter) error {
	defer s.Close()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, err := s.Handle(ev); err != nil {
				log.Printf("session: dropping event %v: %v", ev.Kind, err)
			}
		case img := <-s.frames:
			if err := present(img); err != nil {
				return fmt.Errorf("present #%d: %w", img.Seq, err)
			}
		}
	}
}

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventPointer:
		return "pointer"
	case EventKey:
		return "key"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}
