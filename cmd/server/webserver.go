package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/mandelzoom"
)

// webServer creates server serving files in the static folder and one-shot png renders.
// It initializes websocket endpoint and returns net.Listener accepting websocket connections
func webServer(ctx context.Context, port int, static string, r mandel.Renderer) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("/render.png", renderHandler(r))
	mux.Handle("/", http.FileServer(http.Dir(static)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, srv
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict to the configured host once the server takes a -origin flag
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// renderHandler renders a single view described by the query string and responds with a png.
// GET /render.png?h=480&w=640&x=-0.75&y=0&scale=1
func renderHandler(rnd mandel.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := paramsFromQuery(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ch, err := rnd.Render(p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var img *mandel.Image
		select {
		case img = <-ch:
		case <-r.Context().Done():
			// client went away; the render finishes on its own and is dropped
			return
		}

		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img.RGBA()); err != nil {
			log.Printf("render.png: encode: %v", err)
		}
	}
}

func paramsFromQuery(r *http.Request) (mandel.Params, error) {
	q := r.URL.Query()
	p := mandel.Params{Height: 480, Width: 640, Scale: mandel.FullSet.Scale(), Center: mandel.FullSet.Center()}

	ints := map[string]*int{"h": &p.Height, "w": &p.Width}
	for k, dst := range ints {
		if v := q.Get(k); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return p, fmt.Errorf("%s: %w", k, err)
			}
			*dst = n
		}
	}

	re, im := real(p.Center), imag(p.Center)
	floats := map[string]*float64{"x": &re, "y": &im, "scale": &p.Scale}
	for k, dst := range floats {
		if v := q.Get(k); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return p, fmt.Errorf("%s: %w", k, err)
			}
			*dst = f
		}
	}
	p.Center = complex(re, im)

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddrs implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
