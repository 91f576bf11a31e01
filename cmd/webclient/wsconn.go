//go:build js && wasm

package main

import (
	"io"
	"sync"
	"syscall/js"
)

// wsConn is an io.ReadWriteCloser over a browser WebSocket.
// Binary messages are concatenated into one byte stream, so irpc's framing
// is independent of how the browser splits messages.
type wsConn struct {
	ws js.Value

	mu     sync.Mutex // js callbacks run concurrently with Read and Write
	closed bool
	err    error
	queue  [][]byte
	notify chan struct{} // cap 1, signalled whenever queue or closed changes

	openCh chan struct{} // closed once connected or failed
	buf    []byte        // unread rest of the current message
}

func dialWS(url string) *wsConn {
	c := &wsConn{
		ws:     js.Global().Get("WebSocket").New(url),
		notify: make(chan struct{}, 1),
		openCh: make(chan struct{}),
	}
	c.ws.Set("binaryType", "arraybuffer")

	c.on("onopen", func(js.Value) {
		c.opened(nil)
	})
	c.on("onerror", func(js.Value) {
		c.opened(io.ErrUnexpectedEOF)
	})
	c.on("onmessage", func(ev js.Value) {
		// callbacks must not block, so the message is queued rather than sent on a channel
		c.push(bytesFromJS(ev.Get("data")))
	})
	c.on("onclose", func(ev js.Value) {
		logScreenf("websocket closed: code %d %s", ev.Get("code").Int(), ev.Get("reason").String())
		c.opened(io.ErrClosedPipe)
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		c.signal()
	})
	return c
}

func (c *wsConn) on(event string, fn func(ev js.Value)) {
	// never released: onclose may still fire after Close
	c.ws.Set(event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	}))
}

func (c *wsConn) opened(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.openCh:
	default:
		c.err = err
		close(c.openCh)
	}
}

func (c *wsConn) push(b []byte) {
	if len(b) == 0 {
		return
	}
	c.mu.Lock()
	c.queue = append(c.queue, b)
	c.mu.Unlock()
	c.signal()
}

func (c *wsConn) signal() {
	select {
	case c.notify <- struct{}{}:
	default:
	}
}

func (c *wsConn) Read(p []byte) (int, error) {
	for len(c.buf) == 0 {
		c.mu.Lock()
		switch {
		case len(c.queue) > 0:
			c.buf = c.queue[0]
			c.queue = c.queue[1:]
		case c.closed:
			c.mu.Unlock()
			return 0, io.EOF
		}
		c.mu.Unlock()
		if len(c.buf) == 0 {
			<-c.notify
		}
	}

	n := copy(p, c.buf)
	c.buf = c.buf[n:]
	return n, nil
}

func (c *wsConn) Write(p []byte) (int, error) {
	<-c.openCh

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	if c.closed {
		return 0, io.ErrClosedPipe
	}

	u8 := js.Global().Get("Uint8Array").New(len(p))
	js.CopyBytesToJS(u8, p)
	c.ws.Call("send", u8)
	return len(p), nil
}

func (c *wsConn) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.opened(io.ErrClosedPipe)
	c.signal()
	c.ws.Call("close")
	return nil
}

// bytesFromJS copies an ArrayBuffer or typed array into Go memory.
func bytesFromJS(data js.Value) []byte {
	if data.InstanceOf(js.Global().Get("ArrayBuffer")) {
		data = js.Global().Get("Uint8Array").New(data)
	}
	if !data.InstanceOf(js.Global().Get("Uint8Array")) && !data.InstanceOf(js.Global().Get("Uint8ClampedArray")) {
		logScreenf("websocket: ignoring non binary message")
		return nil
	}
	b := make([]byte, data.Get("byteLength").Int())
	js.CopyBytesToGo(b, data)
	return b
}
