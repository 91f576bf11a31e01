// viewer is a desktop Mandelbrot explorer.
// Left click zooms in around the pointer, right click zooms out, arrows pan, R resets and I/O zoom on the center.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	mandel "github.com/marben/mandelzoom"
)

var keyBindings = map[ebiten.Key]mandel.Key{
	ebiten.KeyR:          mandel.KeyReset,
	ebiten.KeyArrowLeft:  mandel.KeyLeft,
	ebiten.KeyArrowRight: mandel.KeyRight,
	ebiten.KeyArrowUp:    mandel.KeyUp,
	ebiten.KeyArrowDown:  mandel.KeyDown,
	ebiten.KeyI:          mandel.KeyZoomIn,
	ebiten.KeyO:          mandel.KeyZoomOut,
}

// viewer is the ebiten game. Update runs on ebiten's main loop and is the only
// place the session is driven from.
type viewer struct {
	session *mandel.Session

	frame  *ebiten.Image
	status string
}

func newViewer(r mandel.Renderer, home mandel.Region) *viewer {
	return &viewer{session: mandel.NewSession(r, home)}
}

func (v *viewer) handle(ev mandel.Event) {
	if _, err := v.session.Handle(ev); err != nil {
		log.Printf("viewer: %v", err)
	}
}

func (v *viewer) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.handle(mandel.PointerEvent(float64(x), float64(y), mandel.ButtonPrimary))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		v.handle(mandel.PointerEvent(float64(x), float64(y), 3))
	}
	for k, cmd := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			v.handle(mandel.KeyEvent(cmd))
		}
	}

	// never wait for a render; take whatever has finished
	for {
		select {
		case img := <-v.session.Frames():
			v.show(img)
		default:
			return nil
		}
	}
}

// show replaces the displayed frame. Frames are shown in completion order,
// so a slow stale render can replace a newer one.
func (v *viewer) show(img *mandel.Image) {
	if img.Width == 0 || img.Height == 0 {
		return
	}
	if v.frame == nil || v.frame.Bounds().Dx() != img.Width || v.frame.Bounds().Dy() != img.Height {
		if v.frame != nil {
			v.frame.Deallocate()
		}
		v.frame = ebiten.NewImage(img.Width, img.Height)
	}
	v.frame.WritePixels(img.Pix)

	p := v.session.State().Snapshot()
	v.status = fmt.Sprintf("#%d/%d %s\n%s", img.Seq, v.session.Dispatched(), img.Kernel, p.Viewport())
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.frame != nil {
		op := &ebiten.DrawImageOptions{}
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		fw, fh := v.frame.Bounds().Dx(), v.frame.Bounds().Dy()
		op.GeoM.Scale(float64(sw)/float64(fw), float64(sh)/float64(fh))
		screen.DrawImage(v.frame, op)
	}
	ebitenutil.DebugPrint(screen, v.status)
}

// Layout reports window size changes to the session. Ebiten calls it every
// tick, so identical sizes must not re-render.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.handle(mandel.ResizeEvent(outsideHeight, outsideWidth))
	return outsideWidth, outsideHeight
}

func main() {
	var (
		kernelName = flag.String("kernel", "escape", "iteration kernel: escape or distance")
		regionName = flag.String("region", "full", fmt.Sprintf("start region, one of %v", mandel.RegionNames()))
		width      = flag.Int("width", 960, "initial window width")
		height     = flag.Int("height", 640, "initial window height")
		verbose    = flag.Bool("v", false, "log render timings")
	)
	flag.Parse()

	if err := run(*kernelName, *regionName, *width, *height, *verbose); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(kernelName, regionName string, width, height int, verbose bool) error {
	kernel, err := mandel.ParseKernel(kernelName)
	if err != nil {
		return err
	}
	region, err := mandel.LookupRegion(regionName)
	if err != nil {
		return err
	}

	var opts []mandel.PipelineOption
	if verbose {
		opts = append(opts, mandel.WithLogging())
	}
	v := newViewer(mandel.NewPipeline(kernel, opts...), region)
	defer v.session.Close()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Mandelbrot - click: zoom | arrows: pan | R: reset")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
