package main

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
)

// sessionServer runs one mandel.Session per connected irpc endpoint.
type sessionServer struct {
	renderer mandel.Renderer
	kernel   mandel.Kernel
	home     mandel.Region

	m       sync.Mutex
	clients int
}

func (s *sessionServer) incClients() {
	s.m.Lock()
	s.clients++
	c := s.clients
	s.m.Unlock()

	log.Printf("clients: %d", c)
}

func (s *sessionServer) decClients() {
	s.m.Lock()
	s.clients--
	c := s.clients
	s.m.Unlock()

	log.Printf("clients: %d", c)
}

// onConnect is the irpc.WithOnConnect hook. irpc calls it on the
// connection's own goroutine, so it runs the session until the endpoint closes.
func (s *sessionServer) onConnect(ep *irpc.Endpoint) {
	defer ep.Close()

	log.Printf("got connection from: %s", ep.RemoteAddr())
	s.incClients()
	defer s.decClients()

	session := mandel.NewSession(s.renderer, s.home)
	svc := &sessionService{session: session}
	ep.RegisterService(mandel.NewSessionServiceIrpcService(svc))

	presenter, err := mandel.NewFramePresenterIrpcClient(ep)
	if err != nil {
		log.Printf("err: new FramePresenter client: %v", err)
		return
	}
	// the client starts sending input only after Attach, when our service is registered
	info := mandel.SessionInfo{Kernel: s.kernel, Home: s.home, MaxSide: mandel.MaxSide}
	if err := presenter.Attach(info); err != nil {
		log.Printf("err: attach %s: %v", ep.RemoteAddr(), err)
		return
	}

	// input arrives through the session service, so Run only pumps frames
	ctx := ep.Context()
	err = session.Run(ctx, nil, func(img *mandel.Image) error {
		return presenter.PresentFrame(ctx, mandel.EncodeFrame(img))
	})
	if err != nil && !isHangup(err) {
		log.Printf("session %s: %v", ep.RemoteAddr(), err)
		return
	}
	log.Printf("session %s closed after %d renders", ep.RemoteAddr(), svc.dispatched())
}

func isHangup(err error) bool {
	return errors.Is(err, irpc.ErrEndpointClosedByCounterpart) ||
		errors.Is(err, irpc.ErrEndpointClosed) ||
		errors.Is(err, context.Canceled)
}

// sessionService serves mandel.SessionService for one connection. irpc runs
// calls on several workers, so Handle is serialized here.
type sessionService struct {
	mu      sync.Mutex
	session *mandel.Session
}

func (s *sessionService) Resize(height, width int) error {
	return s.handle(mandel.ResizeEvent(height, width))
}

func (s *sessionService) PointerPress(x, y float64, b mandel.Button) error {
	return s.handle(mandel.PointerEvent(x, y, b))
}

func (s *sessionService) Key(k mandel.Key) error {
	return s.handle(mandel.KeyEvent(k))
}

func (s *sessionService) dispatched() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Dispatched()
}

func (s *sessionService) handle(ev mandel.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.session.Handle(ev); err != nil {
		log.Printf("session: rejected %v event: %v", ev.Kind, err)
		return err
	}
	return nil
}
