//go:build js && wasm

package main

import (
	"syscall/js"
	"time"

	mandel "github.com/marben/mandelzoom"
)

func canvas() js.Value {
	return js.Global().Get("document").Call("getElementById", "myCanvas")
}

// initCanvas sizes the canvas and fills it with a placeholder color until the first frame arrives.
func initCanvas(width, height int, color string) {
	c := canvas()
	c.Set("width", width)
	c.Set("height", height)

	ctx := c.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// displayImage draws a frame onto the canvas, resizing the canvas to the frame.
func displayImage(img *mandel.Image) {
	if img.Width == 0 || img.Height == 0 {
		return
	}
	start := time.Now()

	c := canvas()
	if c.Get("width").Int() != img.Width || c.Get("height").Int() != img.Height {
		c.Set("width", img.Width)
		c.Set("height", img.Height)
	}

	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)
	imageData := js.Global().Get("ImageData").New(jsData, img.Width, img.Height)
	c.Call("getContext", "2d").Call("putImageData", imageData, 0, 0)

	hudSet("frameSeq", img.Seq)
	hudSet("drawTime", time.Since(start).String())
}
