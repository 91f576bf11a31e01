package mandel

import "fmt"

// BaseSpan is the height of the complex plane covered at scale 1.
const BaseSpan = 3.0

// Viewport is an immutable description of the pixel grid laid over the
// complex plane for one render.
type Viewport struct {
	ResolutionY int
	WidthRatio  float64
	Center      complex128
	Scale       float64
}

// NewViewport builds the viewport for a height x width pixel area.
func NewViewport(height, width int, center complex128, scale float64) Viewport {
	return Viewport{
		ResolutionY: height,
		WidthRatio:  float64(width) / float64(height),
		Center:      center,
		Scale:       scale,
	}
}

// ResolutionX is ResolutionY*WidthRatio truncated toward zero.
func (v Viewport) ResolutionX() int {
	return int(float64(v.ResolutionY) * v.WidthRatio)
}

func (v Viewport) halfExtents() (hx, hy float64) {
	hy = BaseSpan / 2 * v.Scale
	return hy * v.WidthRatio, hy
}

// Region is the rectangle of the plane spanned by the outermost samples.
func (v Viewport) Region() Region {
	hx, hy := v.halfExtents()
	return Region{
		Xmin: real(v.Center) - hx,
		Xmax: real(v.Center) + hx,
		Ymin: imag(v.Center) - hy,
		Ymax: imag(v.Center) + hy,
	}
}

// Grid samples the viewport.
func (v Viewport) Grid() Grid {
	return Map(v.ResolutionY, v.WidthRatio, v.Center, v.Scale)
}

// PixelToPlane maps a (possibly fractional) pixel position to the plane using
// the same interpolation as Grid, so integer positions land on samples.
func (v Viewport) PixelToPlane(x, y float64) complex128 {
	r := v.Region()
	return complex(
		lerp(r.Xmin, r.Xmax, v.ResolutionX(), x),
		lerp(r.Ymin, r.Ymax, v.ResolutionY, y),
	)
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d center=(%g, %g) scale=%g",
		v.ResolutionX(), v.ResolutionY, real(v.Center), imag(v.Center), v.Scale)
}

// Grid is the 2-D lattice of samples: every row shares an imaginary part
// and every column shares a real part.
type Grid struct {
	Re []float64 // one per column
	Im []float64 // one per row
}

// Map lays a resolutionY x int(resolutionY*widthRatio) grid over
// [center-half, center+half] on both axes.
func Map(resolutionY int, widthRatio float64, center complex128, scale float64) Grid {
	v := Viewport{ResolutionY: resolutionY, WidthRatio: widthRatio, Center: center, Scale: scale}
	r := v.Region()
	return Grid{
		Re: linspace(r.Xmin, r.Xmax, v.ResolutionX()),
		Im: linspace(r.Ymin, r.Ymax, resolutionY),
	}
}

func (g Grid) Rows() int { return len(g.Im) }
func (g Grid) Cols() int { return len(g.Re) }

// At returns the sample for the given pixel.
func (g Grid) At(row, col int) complex128 {
	return complex(g.Re[col], g.Im[row])
}

// linspace returns n evenly spaced values from start to end inclusive.
// A single point collapses to start.
func linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = lerp(start, end, n, float64(i))
	}
	return out
}

// lerp is the i-th of n evenly spaced points between start and end.
func lerp(start, end float64, n int, i float64) float64 {
	if n <= 1 {
		return start
	}
	return start + (end-start)*i/float64(n-1)
}
