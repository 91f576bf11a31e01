package mandel

import (
	"bytes"
	"errors"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	ch, err := NewPipeline(DistanceEstimate).Render(Params{Height: 48, Width: 64, Scale: 1, Center: complex(-0.75, 0), Seq: 42})
	if err != nil {
		t.Fatal(err)
	}
	img := receive(t, ch)

	f := EncodeFrame(img)
	if len(f.Pix) >= len(img.Pix) {
		t.Errorf("encoded frame is %d bytes for %d pixel bytes", len(f.Pix), len(img.Pix))
	}

	got, err := f.Image()
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got.Width != img.Width || got.Height != img.Height || got.Seq != 42 || got.Kernel != DistanceEstimate {
		t.Errorf("header = %dx%d #%d %v", got.Width, got.Height, got.Seq, got.Kernel)
	}
	if !bytes.Equal(got.Pix, img.Pix) {
		t.Error("pixels differ after decoding")
	}
}

func TestFrameEmpty(t *testing.T) {
	f := EncodeFrame(NewImage(0, 0))
	img, err := f.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img.Pix == nil || len(img.Pix) != 0 {
		t.Errorf("empty frame decoded to %v", img.Pix)
	}
}

func TestFrameErrors(t *testing.T) {
	small := EncodeFrame(NewImage(2, 2))
	tests := []struct {
		name  string
		frame Frame
	}{
		{name: "too wide", frame: Frame{Width: MaxSide + 1, Height: 1}},
		{name: "negative height", frame: Frame{Width: 1, Height: -1}},
		{name: "wrong pixel count", frame: Frame{Width: 3, Height: 3, Pix: small.Pix}},
		{name: "missing pixels", frame: Frame{Width: 3, Height: 3}},
		{name: "not zstd", frame: Frame{Width: 1, Height: 1, Pix: []byte{1, 2, 3, 4}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if img, err := tt.frame.Image(); err == nil {
				t.Errorf("Image() = %dx%d, want error", img.Width, img.Height)
			}
		})
	}

	if _, err := (Frame{Width: 3, Height: 3, Pix: small.Pix}).Image(); !errors.Is(err, ErrBadFrame) {
		t.Errorf("short pixels: err = %v, want ErrBadFrame", err)
	}
}
