package main

import (
	"context"
	"errors"
	"image"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
)

func TestClickScript(t *testing.T) {
	events := clickScript(options{height: 90, width: 160, zoom: 3, x: 10, y: 20})
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if events[0] != mandel.ResizeEvent(90, 160) {
		t.Errorf("first event = %+v, want resize", events[0])
	}
	for _, ev := range events[1:] {
		if ev != mandel.PointerEvent(10, 20, mandel.ButtonPrimary) {
			t.Errorf("click = %+v", ev)
		}
	}
}

func TestMirrorFollowsServerState(t *testing.T) {
	view := mandel.NewStateAt(mandel.FullSet)
	for _, ev := range clickScript(options{height: 9, width: 16, zoom: 2, x: 4, y: 4}) {
		mirror(view, ev)
	}
	p := view.Snapshot()
	if p.Height != 9 || p.Width != 16 {
		t.Errorf("size %dx%d, want 16x9", p.Width, p.Height)
	}
	want := mandel.FullSet.Scale() * mandel.ZoomIn * mandel.ZoomIn
	if d := p.Scale - want; d > 1e-12 || d < -1e-12 {
		t.Errorf("scale = %g, want %g", p.Scale, want)
	}
}

func TestCollectNewest(t *testing.T) {
	frames := make(chan mandel.Frame, 3)
	for _, seq := range []uint64{2, 3, 1} {
		img := mandel.NewImage(2, 1)
		img.Seq = seq
		img.Pix[0] = byte(seq)
		frames <- mandel.EncodeFrame(img)
	}

	newest, err := collectNewest(context.Background(), frames, 3)
	if err != nil {
		t.Fatalf("collectNewest: %v", err)
	}
	if newest.Seq != 3 || newest.Pix[0] != 3 {
		t.Errorf("newest = #%d (pix %d), want #3", newest.Seq, newest.Pix[0])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := collectNewest(ctx, frames, 1); !errors.Is(err, context.Canceled) {
		t.Errorf("collectNewest after hangup = %v, want context.Canceled", err)
	}

	frames <- mandel.Frame{Width: 2, Height: 2, Seq: 9}
	if _, err := collectNewest(context.Background(), frames, 1); err == nil {
		t.Error("collectNewest accepted a frame without pixels")
	}
}

func TestPresenterAttachOnce(t *testing.T) {
	p := newPresenter(1)
	if err := p.Attach(mandel.SessionInfo{Home: mandel.FullSet}); err != nil {
		t.Fatal(err)
	}
	if err := p.Attach(mandel.SessionInfo{}); err == nil {
		t.Error("second Attach succeeded")
	}
}

// lockedSession serves mandel.SessionService for the fake server below.
type lockedSession struct {
	mu sync.Mutex
	s  *mandel.Session
}

func (l *lockedSession) handle(ev mandel.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.s.Handle(ev)
	return err
}

func (l *lockedSession) Resize(h, w int) error { return l.handle(mandel.ResizeEvent(h, w)) }
func (l *lockedSession) PointerPress(x, y float64, b mandel.Button) error {
	return l.handle(mandel.PointerEvent(x, y, b))
}
func (l *lockedSession) Key(k mandel.Key) error { return l.handle(mandel.KeyEvent(k)) }

// serveOne accepts a single connection and runs a session on it the way
// the server does.
func serveOne(t *testing.T, l net.Listener, home mandel.Region) {
	conn, err := l.Accept()
	if err != nil {
		t.Errorf("Accept: %v", err)
		return
	}
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	session := mandel.NewSession(mandel.NewPipeline(mandel.EscapeTime), home)
	ep.RegisterService(mandel.NewSessionServiceIrpcService(&lockedSession{s: session}))
	presenter, err := mandel.NewFramePresenterIrpcClient(ep)
	if err != nil {
		t.Error(err)
		return
	}
	if err := presenter.Attach(mandel.SessionInfo{Kernel: mandel.EscapeTime, Home: home, MaxSide: mandel.MaxSide}); err != nil {
		t.Errorf("Attach: %v", err)
		return
	}
	ctx := ep.Context()
	session.Run(ctx, nil, func(img *mandel.Image) error {
		return presenter.PresentFrame(ctx, mandel.EncodeFrame(img))
	})
}

func TestRunAgainstServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	go serveOne(t, l, mandel.SeahorseValley)

	out := filepath.Join(t.TempDir(), "out.png")
	o := options{addr: l.Addr().String(), height: 12, width: 16, zoom: 2, x: -1, y: -1, out: out, caption: true}
	if err := run(o); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 12 {
		t.Errorf("saved %dx%d image, want 16x12", b.Dx(), b.Dy())
	}
}

func TestDrawCaption(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 40))
	drawCaption(img, "#1 escape")

	var marked int
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			marked++
		}
	}
	if marked == 0 {
		t.Fatal("caption left the image untouched")
	}
	if img.RGBAAt(199, 0).A != 0 {
		t.Error("caption strip reached the top right corner")
	}
}

func TestRunRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		want          error
	}{
		{name: "zero height", height: 0, width: 10, want: mandel.ErrZeroHeight},
		{name: "too wide", height: 10, width: mandel.MaxSide + 1, want: mandel.ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// rejected before dialing, so no server is needed
			err := run(options{addr: "127.0.0.1:1", height: tt.height, width: tt.width})
			if !errors.Is(err, tt.want) {
				t.Errorf("run error = %v, want %v", err, tt.want)
			}
		})
	}
}
