package mandel

import (
	"errors"
	"math"
	"testing"
	"time"
)

func receive(t *testing.T, ch <-chan *Image) *Image {
	t.Helper()
	select {
	case img, ok := <-ch:
		if !ok {
			t.Fatal("result channel closed without an image")
		}
		return img
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for render")
	}
	return nil
}

func pixelAt(img *Image, x, y int) [4]byte {
	off := y*img.Stride() + 4*x
	return [4]byte(img.Pix[off : off+4])
}

func TestRenderCorners(t *testing.T) {
	p := NewPipeline(EscapeTime)
	ch, err := p.Render(Params{Height: 2, Width: 2, Scale: 1, Center: 0, Seq: 7})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := receive(t, ch)

	if img.Width != 2 || img.Height != 2 || len(img.Pix) != 16 {
		t.Fatalf("got %dx%d image with %d bytes", img.Width, img.Height, len(img.Pix))
	}
	if img.Seq != 7 {
		t.Errorf("Seq = %d, want 7", img.Seq)
	}
	// every corner of the [-1.5, 1.5]^2 square escapes on the third step
	for y := range 2 {
		for x := range 2 {
			if got := pixelAt(img, x, y); got != [4]byte{127, 0, 0, 255} {
				t.Errorf("pixel (%d, %d) = %v, want [127 0 0 255]", x, y, got)
			}
		}
	}

	if _, ok := <-ch; ok {
		t.Error("channel delivered a second image")
	}
}

func TestRenderInteriorCenter(t *testing.T) {
	ch, err := NewPipeline(EscapeTime).Render(Params{Height: 3, Width: 3, Scale: 1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := receive(t, ch)

	if got := pixelAt(img, 0, 0); got[0] == 0 || got[3] != 255 {
		t.Errorf("corner (-1.5, -1.5) = %v, want opaque red", got)
	}
	if got := pixelAt(img, 1, 1); got != [4]byte{} {
		t.Errorf("origin = %v, want transparent black", got)
	}
}

func TestRenderDistance(t *testing.T) {
	ch, err := NewPipeline(DistanceEstimate).Render(Params{Height: 3, Width: 3, Scale: 1})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := receive(t, ch)
	if got := pixelAt(img, 1, 1); got != [4]byte{0, 0, 0, 255} {
		t.Errorf("origin = %v, want opaque black", got)
	}
	if img.Kernel != DistanceEstimate {
		t.Errorf("Kernel = %v", img.Kernel)
	}
}

func TestRenderRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{name: "zero height", params: Params{Height: 0, Width: 10, Scale: 1}, want: ErrZeroHeight},
		{name: "negative height", params: Params{Height: -1, Width: 10, Scale: 1}, want: ErrZeroHeight},
		{name: "zero width", params: Params{Height: 10, Width: 0, Scale: 1}, want: ErrInvalidParams},
		{name: "zero scale", params: Params{Height: 10, Width: 10, Scale: 0}, want: ErrInvalidParams},
		{name: "too tall", params: Params{Height: MaxSide + 1, Width: 10, Scale: 1}, want: ErrTooLarge},
		{name: "too wide", params: Params{Height: 10, Width: MaxSide + 1, Scale: 1}, want: ErrTooLarge},
		// the pixel count wraps around to 1
		{name: "product overflows", params: Params{Height: math.MaxInt, Width: math.MaxInt, Scale: 1}, want: ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := NewPipeline(EscapeTime).Render(tt.params)
			if !errors.Is(err, tt.want) {
				t.Errorf("Render error = %v, want %v", err, tt.want)
			}
			if ch != nil {
				t.Error("Render returned a channel for rejected params")
			}
		})
	}
}

func TestRenderDoesNotBlockWithoutReceiver(t *testing.T) {
	p := NewPipeline(EscapeTime, WithPipelineWorkers(2))
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 4 {
			if _, err := p.Render(Params{Height: 32, Width: 32, Scale: 1}); err != nil {
				t.Errorf("Render: %v", err)
			}
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Render blocked the caller")
	}
}

func TestRenderOverlapping(t *testing.T) {
	p := NewPipeline(EscapeTime)
	big, err := p.Render(Params{Height: 120, Width: 160, Scale: 1, Seq: 1})
	if err != nil {
		t.Fatal(err)
	}
	small, err := p.Render(Params{Height: 4, Width: 4, Scale: 1, Seq: 2})
	if err != nil {
		t.Fatal(err)
	}
	// both complete independently, whatever the order
	if img := receive(t, small); img.Seq != 2 || img.Width != 4 {
		t.Errorf("small render = #%d %dx%d", img.Seq, img.Width, img.Height)
	}
	if img := receive(t, big); img.Seq != 1 || img.Width != 160 {
		t.Errorf("big render = #%d %dx%d", img.Seq, img.Width, img.Height)
	}
}
