//go:build js && wasm

// webclient is a WASM browser client for the Mandelbrot server.
// It forwards canvas resizes, clicks and key presses to the server over a websocket and draws every frame it gets back.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"syscall/js"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelzoom"
)

var keyBindings = map[string]mandel.Key{
	"r":          mandel.KeyReset,
	"ArrowLeft":  mandel.KeyLeft,
	"ArrowRight": mandel.KeyRight,
	"ArrowUp":    mandel.KeyUp,
	"ArrowDown":  mandel.KeyDown,
	"+":          mandel.KeyZoomIn,
	"-":          mandel.KeyZoomOut,
}

func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + loc.Get("host").String() + "/ws"

	// Step 2: Connect to server via WebSocket and serve our FramePresenter on it
	logScreenf("Connecting to Mandelbrot server at %s...", websocketUrl)
	conn := dialWS(websocketUrl)
	p := &canvasPresenter{attached: make(chan mandel.SessionInfo, 1)}
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewFramePresenterIrpcService(p)))
	defer ep.Close()

	// Step 3: Wait until the server has our session ready
	var info mandel.SessionInfo
	select {
	case info = <-p.attached:
	case <-ep.Context().Done():
		logFatalf("attach: %v", context.Cause(ep.Context()))
	}
	logScreenf("Attached to %s session at %s", info.Kernel, info.Home)
	session, err := mandel.NewSessionServiceIrpcClient(ep)
	if err != nil {
		logFatalf("NewSessionServiceIrpcClient: %v", err)
	}

	// Step 4: Hook browser events. Callbacks only queue events; the writer goroutine makes the calls.
	events := make(chan mandel.Event, 64)
	go sendEvents(session, events)
	bindInput(events, info.MaxSide)

	// Step 5: Frames are drawn by the presenter as they arrive
	<-ep.Context().Done()
	logScreenf("Server closed the connection: %v", context.Cause(ep.Context()))
	select {}
}

// canvasPresenter implements mandel.FramePresenter by drawing every frame
// straight onto the canvas.
type canvasPresenter struct {
	attached chan mandel.SessionInfo
}

func (p *canvasPresenter) Attach(info mandel.SessionInfo) error {
	select {
	case p.attached <- info:
		return nil
	default:
		return errors.New("already attached")
	}
}

func (p *canvasPresenter) PresentFrame(_ context.Context, f mandel.Frame) error {
	img, err := f.Image()
	if err != nil {
		logScreenf("frame #%d: %v", f.Seq, err)
		return err
	}
	displayImage(img)
	return nil
}

// bindInput registers DOM listeners that turn resizes, clicks and keys into session events.
// Canvas sizes are clamped to maxSide, which the server would refuse.
func bindInput(events chan<- mandel.Event, maxSide int) {
	send := func(ev mandel.Event) {
		select {
		case events <- ev:
		default:
			logScreenf("dropping %v event, connection is backed up", ev.Kind)
		}
	}

	win := js.Global().Get("window")
	resize := func() {
		w, h := min(win.Get("innerWidth").Int(), maxSide), min(win.Get("innerHeight").Int(), maxSide)
		initCanvas(w, h, "#3a3a6e")
		hudSet("viewSize", fmt.Sprintf("%dx%d", w, h))
		send(mandel.ResizeEvent(h, w))
	}
	win.Call("addEventListener", "resize", js.FuncOf(func(js.Value, []js.Value) any {
		resize()
		return nil
	}))

	c := canvas()
	c.Call("addEventListener", "mousedown", js.FuncOf(func(_ js.Value, args []js.Value) any {
		ev := args[0]
		ev.Call("preventDefault")
		b := mandel.Button(3)
		if ev.Get("button").Int() == 0 {
			b = mandel.ButtonPrimary
		}
		send(mandel.PointerEvent(ev.Get("offsetX").Float(), ev.Get("offsetY").Float(), b))
		return nil
	}))
	c.Call("addEventListener", "contextmenu", js.FuncOf(func(_ js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		return nil
	}))

	js.Global().Get("document").Call("addEventListener", "keydown", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if k, ok := keyBindings[args[0].Get("key").String()]; ok {
			args[0].Call("preventDefault")
			send(mandel.KeyEvent(k))
		}
		return nil
	}))

	resize()
}

// sendEvents calls the session service for each event in order. A
// rejected event is logged; the session stays usable.
func sendEvents(s mandel.SessionService, events <-chan mandel.Event) {
	for ev := range events {
		var err error
		switch ev.Kind {
		case mandel.EventResize:
			err = s.Resize(ev.Height, ev.Width)
		case mandel.EventPointer:
			err = s.PointerPress(ev.X, ev.Y, ev.Button)
		case mandel.EventKey:
			err = s.Key(ev.Key)
		}
		if err != nil {
			logScreenf("%v: %v", ev.Kind, err)
		}
	}
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	logElem := js.Global().Get("document").Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

func hudSet(id string, v any) {
	if el := js.Global().Get("document").Call("getElementById", id); !el.IsNull() {
		el.Set("textContent", v)
	}
}
