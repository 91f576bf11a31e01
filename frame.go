package mandel

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxPixBytes is the raw pixel size of the largest render.
const maxPixBytes = 4 * MaxSide * MaxSide

// ErrBadFrame is returned for frames that do not decode to a valid image.
var ErrBadFrame = errors.New("bad frame")

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPixBytes))
		return dec
	},
}

func compress(dst, src []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)
	return enc.EncodeAll(src, dst)
}

func decompress(src []byte, sizeHint int) ([]byte, error) {
	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)
	return dec.DecodeAll(src, make([]byte, 0, sizeHint))
}

// EncodeFrame compresses img for sending to a FramePresenter.
func EncodeFrame(img *Image) Frame {
	f := Frame{Width: img.Width, Height: img.Height, Seq: img.Seq, Kernel: img.Kernel}
	if len(img.Pix) > 0 {
		f.Pix = compress(make([]byte, 0, len(img.Pix)/4), img.Pix)
	}
	return f
}

// Image decompresses f. Dimensions are checked against MaxSide before any
// pixel memory is allocated.
func (f Frame) Image() (*Image, error) {
	if f.Width < 0 || f.Height < 0 || f.Width > MaxSide || f.Height > MaxSide {
		return nil, fmt.Errorf("frame #%d %dx%d: %w", f.Seq, f.Width, f.Height, ErrBadFrame)
	}
	img := &Image{Width: f.Width, Height: f.Height, Seq: f.Seq, Kernel: f.Kernel}
	want := 4 * f.Width * f.Height
	if want == 0 {
		img.Pix = []byte{}
		return img, nil
	}
	pix, err := decompress(f.Pix, want)
	if err != nil {
		return nil, fmt.Errorf("frame #%d: zstd decode: %w", f.Seq, err)
	}
	if len(pix) != want {
		return nil, fmt.Errorf("frame #%d %dx%d: got %d pixel bytes, want %d: %w", f.Seq, f.Width, f.Height, len(pix), want, ErrBadFrame)
	}
	img.Pix = pix
	return img, nil
}
