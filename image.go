package mandel

import "image"

// Image is a finished render: tightly packed RGBA rows, top to bottom.
type Image struct {
	Pix           []byte
	Width, Height int

	// Seq is the sequence number of the request that produced the image.
	Seq    uint64
	Kernel Kernel
}

func NewImage(width, height int) *Image {
	return &Image{
		Pix:    make([]byte, 4*width*height),
		Width:  width,
		Height: height,
	}
}

// Stride is the number of bytes per row.
func (m *Image) Stride() int { return 4 * m.Width }

// RGBA wraps the pixel buffer without copying it.
func (m *Image) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    m.Pix,
		Stride: m.Stride(),
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}
