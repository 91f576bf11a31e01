package mandel

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// Kernel selects the iteration variant and its matching color policy.
type Kernel uint8

const (
	// EscapeTime colors escaping points red, brighter for faster escape.
	EscapeTime Kernel = iota
	// DistanceEstimate draws an opaque line along the set boundary.
	DistanceEstimate
)

const (
	EscapeBailout = 100.0
	EscapeMaxIter = 100

	DistanceBailout = 1.0e7
	DistanceMaxIter = 200
	// DistanceThreshold is compared against the estimate in plane units,
	// not pixels, so the boundary line thins as the view zooms out.
	DistanceThreshold = 0.25

	distanceNear     = 100.0
	distanceInterior = 255.0
)

// ParseKernel accepts "escape" or "distance".
func ParseKernel(s string) (Kernel, error) {
	switch strings.ToLower(s) {
	case "escape", "escape-time":
		return EscapeTime, nil
	case "distance", "de", "distance-estimate":
		return DistanceEstimate, nil
	}
	return 0, fmt.Errorf("unknown kernel %q", s)
}

func (k Kernel) String() string {
	switch k {
	case EscapeTime:
		return "escape"
	case DistanceEstimate:
		return "distance"
	}
	return fmt.Sprintf("Kernel(%d)", uint8(k))
}

// Interior is the value the kernel reports for points it considers inside
// the set. Non-finite results collapse to it.
func (k Kernel) Interior() float64 {
	if k == DistanceEstimate {
		return distanceInterior
	}
	return 0
}

// Eval runs the kernel with its default bailout radius and iteration budget.
func (k Kernel) Eval(c complex128) float64 {
	var v float64
	switch k {
	case DistanceEstimate:
		v = Distance(c, DistanceMaxIter, DistanceBailout)
	default:
		v = Escape(c, EscapeMaxIter, EscapeBailout)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return k.Interior()
	}
	return v
}

// Encode writes the RGBA bytes for value v into px, which must hold 4 bytes.
func (k Kernel) Encode(v float64, px []byte) {
	_ = px[3]
	switch k {
	case DistanceEstimate:
		px[0], px[1], px[2] = 0, 0, 0
		px[3] = clampByte(v)
	default:
		r := clampByte(v * 255)
		px[0], px[1], px[2], px[3] = r, 0, 0, 0
		if r != 0 {
			px[3] = 255
		}
	}
}

// Escape iterates z = z^2 + c from z = c with a budget k counting down from
// maxIter. When |z| exceeds bailout it returns 1/(maxIter-k); an escape on
// the very first step, where that would divide by zero, scores 1.0.
// Returning to the value seen two steps earlier, or exhausting the budget,
// scores 0.
func Escape(c complex128, maxIter int, bailout float64) float64 {
	if maxIter < 0 {
		return 0
	}
	z, zPrevPrev := c, c
	for k := maxIter; ; k-- {
		next := z*z + c
		if cmplx.Abs(next) > bailout {
			if k == maxIter {
				return 1
			}
			return 1 / float64(maxIter-k)
		}
		if next == zPrevPrev || k == 0 {
			return 0
		}
		zPrevPrev, z = z, next
	}
}

// Distance iterates z alongside its derivative dz with respect to c and,
// once |z| passes bailout, estimates the distance to the set boundary.
// Points within DistanceThreshold score 100, other escaping points 0;
// cycles and exhausted budgets score 255.
func Distance(c complex128, maxIter int, bailout float64) float64 {
	z, zPrevPrev := c, c
	dz := complex(1, 0)
	for k := maxIter; ; k-- {
		if az := cmplx.Abs(z); az > bailout {
			dist := 2 * az * math.Log(az) / cmplx.Abs(dz)
			if dist < DistanceThreshold {
				return distanceNear
			}
			return 0
		}
		next := z*z + c
		if next == zPrevPrev || k <= 0 {
			return distanceInterior
		}
		dz = 2*z*dz + 1
		zPrevPrev, z = z, next
	}
}

func clampByte(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
