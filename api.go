package mandel

import "context"

//go:generate go run github.com/marben/irpc/cmd/irpc

// SessionService drives the view of one connected client. The server
// registers it on the client's endpoint before calling
// FramePresenter.Attach, so clients must wait for Attach before the first
// call. Rejected input is reported back as the call's error.
type SessionService interface {
	Resize(height, width int) error
	PointerPress(x, y float64, button Button) error
	Key(k Key) error
}

// FramePresenter is served by clients. Frames are pushed in completion
// order, which is not necessarily Seq order.
type FramePresenter interface {
	Attach(info SessionInfo) error
	PresentFrame(ctx context.Context, f Frame) error
}

// SessionInfo describes the session a client was attached to.
type SessionInfo struct {
	Kernel  Kernel
	Home    Region
	MaxSide int
}

// Frame is an Image in transit, its pixels zstd compressed.
type Frame struct {
	Width  int
	Height int
	Seq    uint64
	Kernel Kernel
	Pix    []byte
}
