// cliclient is a CLI client for the Mandelbrot server.
// It connects to the server, replays a resize and a number of zoom clicks, waits for the frames and saves the newest one as a PNG file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"net"
	"os"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type options struct {
	addr          string
	height, width int
	zoom          int
	x, y          float64
	out           string
	caption       bool
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	var o options
	flag.StringVar(&o.addr, "addr", ":8081", "server tcp address")
	flag.IntVar(&o.height, "height", 1080, "image height in pixels")
	flag.IntVar(&o.width, "width", 1920, "image width in pixels")
	flag.IntVar(&o.zoom, "zoom", 0, "number of zoom-in clicks")
	flag.Float64Var(&o.x, "x", -1, "click x in pixels, -1 for the image center")
	flag.Float64Var(&o.y, "y", -1, "click y in pixels, -1 for the image center")
	flag.StringVar(&o.out, "out", "mandel.png", "output file")
	flag.BoolVar(&o.caption, "caption", false, "stamp the viewport description onto the image")
	flag.Parse()

	log.Printf("Starting CLI client...")
	if err := run(o); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, requests the renders, and saves the newest frame as a PNG file.
// Returns an error if any step fails.
func run(o options) error {
	if err := (mandel.Params{Height: o.height, Width: o.width, Scale: 1}).Validate(); err != nil {
		return fmt.Errorf("image size: %w", err)
	}
	if o.x < 0 {
		o.x = float64(o.width-1) / 2
	}
	if o.y < 0 {
		o.y = float64(o.height-1) / 2
	}
	events := clickScript(o)

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", o.addr)
	conn, err := net.Dial("tcp", o.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}

	// Step 2: Serve our FramePresenter, so the server can push frames to us
	p := newPresenter(len(events))
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewFramePresenterIrpcService(p)))
	defer ep.Close()
	ctx := ep.Context()

	// Step 3: The server attaches once our session is ready to take input
	var info mandel.SessionInfo
	select {
	case info = <-p.attached:
	case <-ctx.Done():
		return fmt.Errorf("waiting for attach: %w", context.Cause(ctx))
	}
	log.Printf("Attached to %s session, home %s", info.Kernel, info.Home)
	session, err := mandel.NewSessionServiceIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create SessionService client: %w", err)
	}

	// Step 4: Send the events. The local State mirrors the server's so we can caption the final view.
	view := mandel.NewStateAt(info.Home)
	for _, ev := range events {
		if err := send(session, ev); err != nil {
			return fmt.Errorf("send %v: %w", ev.Kind, err)
		}
		mirror(view, ev)
	}

	// Step 5: Every event triggers one render; frames arrive in completion order, keep the newest request
	log.Printf("Waiting for %d frames...", len(events))
	newest, err := collectNewest(ctx, p.frames, len(events))
	if err != nil {
		return err
	}
	log.Printf("Got frame #%d (%dx%d, %s kernel)", newest.Seq, newest.Width, newest.Height, newest.Kernel)

	img := newest.RGBA()
	if o.caption {
		drawCaption(img, fmt.Sprintf("#%d %s %s", newest.Seq, newest.Kernel, view.Snapshot().Viewport()))
	}

	// Step 6: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", o.out)
	f, err := os.Create(o.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("Rendered image saved to %q", o.out)
	return nil
}

// presenter implements mandel.FramePresenter. frames has room for every
// frame the click script causes, so the server never waits on us.
type presenter struct {
	attached chan mandel.SessionInfo
	frames   chan mandel.Frame
}

func newPresenter(n int) *presenter {
	return &presenter{
		attached: make(chan mandel.SessionInfo, 1),
		frames:   make(chan mandel.Frame, n),
	}
}

func (p *presenter) Attach(info mandel.SessionInfo) error {
	select {
	case p.attached <- info:
		return nil
	default:
		return errors.New("already attached")
	}
}

func (p *presenter) PresentFrame(ctx context.Context, f mandel.Frame) error {
	select {
	case p.frames <- f:
		return nil
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// clickScript is the resize followed by o.zoom primary clicks at (o.x, o.y).
func clickScript(o options) []mandel.Event {
	events := []mandel.Event{mandel.ResizeEvent(o.height, o.width)}
	for range o.zoom {
		events = append(events, mandel.PointerEvent(o.x, o.y, mandel.ButtonPrimary))
	}
	return events
}

func mirror(s *mandel.State, ev mandel.Event) {
	switch ev.Kind {
	case mandel.EventResize:
		s.Resize(ev.Height, ev.Width)
	case mandel.EventPointer:
		s.PointerPress(ev.X, ev.Y, ev.Button)
	}
}

// send turns a scripted event into the matching SessionService call.
func send(s mandel.SessionService, ev mandel.Event) error {
	switch ev.Kind {
	case mandel.EventResize:
		return s.Resize(ev.Height, ev.Width)
	case mandel.EventPointer:
		return s.PointerPress(ev.X, ev.Y, ev.Button)
	case mandel.EventKey:
		return s.Key(ev.Key)
	}
	return fmt.Errorf("unknown event kind %v", ev.Kind)
}

// collectNewest receives n frames and returns the one with the highest sequence number.
func collectNewest(ctx context.Context, frames <-chan mandel.Frame, n int) (*mandel.Image, error) {
	var newest *mandel.Image
	for i := range n {
		var f mandel.Frame
		select {
		case f = <-frames:
		case <-ctx.Done():
			return nil, fmt.Errorf("read frame %d/%d: %w", i+1, n, context.Cause(ctx))
		}
		img, err := f.Image()
		if err != nil {
			return nil, fmt.Errorf("read frame %d/%d: %w", i+1, n, err)
		}
		log.Printf("Frame #%d arrived", img.Seq)
		if newest == nil || img.Seq > newest.Seq {
			newest = img
		}
	}
	return newest, nil
}

// drawCaption writes text in the bottom left corner on a dark strip.
func drawCaption(dst *image.RGBA, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil() + 8
	h := face.Metrics().Height.Ceil() + 6

	b := dst.Bounds()
	strip := image.Rect(b.Min.X, b.Max.Y-h, b.Min.X+w, b.Max.Y).Intersect(b)
	draw.Draw(dst, strip, image.NewUniform(color.RGBA{A: 0xc0}), image.Point{}, draw.Over)

	d.Dst = dst
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(b.Min.X+4, b.Max.Y-4-face.Metrics().Descent.Ceil())
	d.DrawString(text)
}
