package mandel

import "testing"

func TestLookupRegion(t *testing.T) {
	for _, name := range RegionNames() {
		r, err := LookupRegion(name)
		if err != nil {
			t.Fatalf("LookupRegion(%q): %v", name, err)
		}
		if r.Xmin >= r.Xmax || r.Ymin >= r.Ymax {
			t.Errorf("%s: degenerate region %v", name, r)
		}
	}
	if r, err := LookupRegion("Seahorse"); err != nil || r != SeahorseValley {
		t.Errorf("LookupRegion(Seahorse) = %v, %v", r, err)
	}
	if _, err := LookupRegion("atlantis"); err == nil {
		t.Error("LookupRegion(atlantis) succeeded")
	}
}

func TestRegionViewportRoundTrip(t *testing.T) {
	r := SpiralMinibrot
	vp := NewViewport(100, 100, r.Center(), r.Scale())
	got := vp.Region()
	const eps = 1e-12
	if d := got.Ymax - got.Ymin - (r.Ymax - r.Ymin); d > eps || d < -eps {
		t.Errorf("viewport height %g, want %g", got.Ymax-got.Ymin, r.Ymax-r.Ymin)
	}
	if !almostEqual(vp.Center, r.Center()) {
		t.Errorf("center = %v, want %v", vp.Center, r.Center())
	}
}
