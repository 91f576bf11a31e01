package mandel

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestEscapeOutsideRadiusTwo(t *testing.T) {
	for _, r := range []float64{2.1, 2.5, 3, 10, 1000} {
		for i := range 16 {
			c := cmplx.Rect(r, float64(i)*math.Pi/8)
			v := Escape(c, EscapeMaxIter, EscapeBailout)
			if !(v > 0 && v <= 1) {
				t.Errorf("Escape(%v) = %g, want value in (0, 1]", c, v)
			}
		}
	}
}

func TestEscapeInterior(t *testing.T) {
	for _, r := range []float64{0, 0.05, 0.1, 0.2, 0.24} {
		for i := range 16 {
			c := cmplx.Rect(r, float64(i)*math.Pi/8)
			if v := Escape(c, EscapeMaxIter, EscapeBailout); v != 0 {
				t.Errorf("Escape(%v) = %g, want 0", c, v)
			}
		}
	}
}

func TestEscapeValues(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want float64
	}{
		{name: "first step escape", c: 100, want: 1},
		{name: "second step escape", c: 3, want: 1},
		{name: "corner", c: complex(-1.5, -1.5), want: 0.5},
		{name: "imaginary axis", c: complex(0, 1.5), want: 1.0 / 3},
		{name: "real axis past cusp", c: 0.5, want: 0.2},
		{name: "origin cycles", c: 0, want: 0},
		{name: "period two", c: -1, want: 0},
		{name: "left tip", c: -1.5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.c, EscapeMaxIter, EscapeBailout); got != tt.want {
				t.Errorf("Escape(%v) = %g, want %g", tt.c, got, tt.want)
			}
		})
	}
}

func TestEscapeZeroBudget(t *testing.T) {
	if got := Escape(0.3, 0, EscapeBailout); got != 0 {
		t.Errorf("Escape with no budget = %g, want 0", got)
	}
}

func TestDistanceValueSet(t *testing.T) {
	seen := map[float64]int{}
	g := Map(60, 80.0/60.0, complex(-0.75, 0), 1)
	for row := range g.Rows() {
		for col := range g.Cols() {
			v := Distance(g.At(row, col), DistanceMaxIter, DistanceBailout)
			switch v {
			case 0, 100, 255:
				seen[v]++
			default:
				t.Fatalf("Distance(%v) = %g, want one of 0, 100, 255", g.At(row, col), v)
			}
		}
	}
	for _, v := range []float64{0, 100, 255} {
		if seen[v] == 0 {
			t.Errorf("no sample produced %g over the full view", v)
		}
	}
}

func TestDistanceValues(t *testing.T) {
	tests := []struct {
		name string
		c    complex128
		want float64
	}{
		{name: "origin", c: 0, want: 255},
		{name: "inside main cardioid", c: -0.1, want: 255},
		{name: "near cusp", c: 0.3, want: 100},
		{name: "seahorse filament", c: complex(-0.75, 0.1), want: 100},
		{name: "far outside", c: 2, want: 0},
		{name: "very far outside", c: 10, want: 0},
		{name: "beyond bailout", c: 1e8, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.c, DistanceMaxIter, DistanceBailout); got != tt.want {
				t.Errorf("Distance(%v) = %g, want %g", tt.c, got, tt.want)
			}
		})
	}
}

func TestEvalNonFinite(t *testing.T) {
	nan := complex(math.NaN(), 0)
	if got := EscapeTime.Eval(nan); got != 0 {
		t.Errorf("EscapeTime.Eval(NaN) = %g, want 0", got)
	}
	if got := DistanceEstimate.Eval(nan); got != 255 {
		t.Errorf("DistanceEstimate.Eval(NaN) = %g, want 255", got)
	}
	inf := cmplx.Inf()
	if got := DistanceEstimate.Eval(inf); math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("DistanceEstimate.Eval(Inf) = %g, want finite", got)
	}
}

func TestKernelDeterministic(t *testing.T) {
	g := Map(16, 1.5, complex(-0.7435, 0.1314), 0.01)
	for _, k := range []Kernel{EscapeTime, DistanceEstimate} {
		for row := range g.Rows() {
			for col := range g.Cols() {
				c := g.At(row, col)
				a, b := k.Eval(c), k.Eval(c)
				if math.Float64bits(a) != math.Float64bits(b) {
					t.Fatalf("%s.Eval(%v) not deterministic: %g vs %g", k, c, a, b)
				}
			}
		}
	}
}

func TestKernelEncode(t *testing.T) {
	tests := []struct {
		name string
		k    Kernel
		v    float64
		want [4]byte
	}{
		{name: "escape fastest", k: EscapeTime, v: 1, want: [4]byte{255, 0, 0, 255}},
		{name: "escape half", k: EscapeTime, v: 0.5, want: [4]byte{127, 0, 0, 255}},
		{name: "escape third", k: EscapeTime, v: 1.0 / 3, want: [4]byte{85, 0, 0, 255}},
		{name: "escape interior", k: EscapeTime, v: 0, want: [4]byte{0, 0, 0, 0}},
		{name: "escape rounds to zero", k: EscapeTime, v: 0.001, want: [4]byte{0, 0, 0, 0}},
		{name: "escape clamps", k: EscapeTime, v: 7, want: [4]byte{255, 0, 0, 255}},
		{name: "escape nan", k: EscapeTime, v: math.NaN(), want: [4]byte{0, 0, 0, 0}},
		{name: "distance near", k: DistanceEstimate, v: 100, want: [4]byte{0, 0, 0, 100}},
		{name: "distance interior", k: DistanceEstimate, v: 255, want: [4]byte{0, 0, 0, 255}},
		{name: "distance far", k: DistanceEstimate, v: 0, want: [4]byte{0, 0, 0, 0}},
		{name: "distance clamps high", k: DistanceEstimate, v: 1000, want: [4]byte{0, 0, 0, 255}},
		{name: "distance clamps low", k: DistanceEstimate, v: -3, want: [4]byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px := []byte{9, 9, 9, 9}
			tt.k.Encode(tt.v, px)
			if [4]byte(px) != tt.want {
				t.Errorf("Encode(%g) = %v, want %v", tt.v, px, tt.want)
			}
		})
	}
}

func TestParseKernel(t *testing.T) {
	for _, k := range []Kernel{EscapeTime, DistanceEstimate} {
		got, err := ParseKernel(k.String())
		if err != nil {
			t.Fatalf("ParseKernel(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKernel(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKernel("julia"); err == nil {
		t.Error("ParseKernel(julia) succeeded, want error")
	}
}
