package pixelcam

import "testing"

func TestFixedResolve(t *testing.T) {
	for _, z := range []int{1, 2, 4, 7, 100} {
		if got := Fixed(z).Resolve(800, 600); got != z {
			t.Errorf("Fixed(%d).Resolve(800, 600) = %d, want %d", z, got, z)
		}
		// Window size never clamps a fixed factor, even when the content
		// would overflow the window.
		if got := Fixed(z).Resolve(8, 6); got != z {
			t.Errorf("Fixed(%d).Resolve(8, 6) = %d, want %d", z, got, z)
		}
	}
}

func TestFixedResolveClampsToOne(t *testing.T) {
	if got := Fixed(0).Resolve(800, 600); got != 1 {
		t.Errorf("Fixed(0) resolved to %d, want 1", got)
	}
	if got := Fixed(-3).Resolve(800, 600); got != 1 {
		t.Errorf("Fixed(-3) resolved to %d, want 1", got)
	}
}

func TestFitSizeResolve(t *testing.T) {
	tests := []struct {
		name             string
		target           FitSize
		windowW, windowH int
		want             int
	}{
		{"exact multiple", FitSize{320, 240}, 1024, 768, 3},
		{"with remainder", FitSize{320, 240}, 1000, 760, 3},
		{"width limits", FitSize{320, 180}, 700, 720, 2},
		{"height limits", FitSize{320, 180}, 1280, 200, 1},
		{"window smaller than target", FitSize{320, 240}, 100, 100, 1},
		{"1080p at 320x180", FitSize{320, 180}, 1920, 1080, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Resolve(tt.windowW, tt.windowH); got != tt.want {
				t.Errorf("FitSize%v.Resolve(%d, %d) = %d, want %d",
					tt.target, tt.windowW, tt.windowH, got, tt.want)
			}
		})
	}
}

// TestFitSizeMaximality sweeps window sizes around common resolutions and
// verifies the chosen factor is the largest one that still fits: the target
// fits at factor, and factor+1 would overflow at least one axis.
func TestFitSizeMaximality(t *testing.T) {
	targets := []FitSize{
		{64, 64},
		{320, 180},
		{320, 240},
		{427, 240},
	}
	ranges := []struct{ w0, w1, h0, h1 int }{
		{230, 250, 230, 250},
		{1275, 1285, 715, 725},
		{1915, 1925, 1075, 1085},
	}
	for _, target := range targets {
		for _, r := range ranges {
			for w := r.w0; w <= r.w1; w++ {
				for h := r.h0; h <= r.h1; h++ {
					factor := target.Resolve(w, h)
					if factor < 1 {
						t.Fatalf("FitSize%v.Resolve(%d, %d) = %d, want >= 1", target, w, h, factor)
					}
					fits := factor*target.Width <= w && factor*target.Height <= h
					if !fits && factor > 1 {
						t.Errorf("FitSize%v at (%d, %d): factor %d overflows", target, w, h, factor)
					}
					if (factor+1)*target.Width <= w && (factor+1)*target.Height <= h {
						t.Errorf("FitSize%v at (%d, %d): factor %d is not maximal", target, w, h, factor)
					}
				}
			}
		}
	}
}

func TestFitWidthResolve(t *testing.T) {
	if got := FitWidth(160).Resolve(1000, 500); got != 6 {
		t.Errorf("FitWidth(160).Resolve(1000, 500) = %d, want 6", got)
	}
	// Height never participates.
	if got := FitWidth(160).Resolve(1000, 1); got != 6 {
		t.Errorf("FitWidth(160).Resolve(1000, 1) = %d, want 6", got)
	}
}

func TestFitHeightResolve(t *testing.T) {
	if got := FitHeight(180).Resolve(100, 1080); got != 6 {
		t.Errorf("FitHeight(180).Resolve(100, 1080) = %d, want 6", got)
	}
	if got := FitHeight(600).Resolve(1920, 400); got != 1 {
		t.Errorf("FitHeight(600).Resolve(1920, 400) = %d, want 1", got)
	}
}

func TestFitSmallerDimResolve(t *testing.T) {
	// Landscape: height is the smaller dimension.
	if got := FitSmallerDim(160).Resolve(1920, 1080); got != 6 {
		t.Errorf("FitSmallerDim(160).Resolve(1920, 1080) = %d, want 6", got)
	}
	// Portrait: width is the smaller dimension.
	if got := FitSmallerDim(160).Resolve(1080, 1920); got != 6 {
		t.Errorf("FitSmallerDim(160).Resolve(1080, 1920) = %d, want 6", got)
	}
}

func TestResolveZeroWindow(t *testing.T) {
	zooms := []Zoom{
		FitSize{320, 240},
		FitWidth(320),
		FitHeight(240),
		FitSmallerDim(160),
	}
	for _, z := range zooms {
		if got := z.Resolve(0, 0); got != 1 {
			t.Errorf("%T.Resolve(0, 0) = %d, want 1", z, got)
		}
	}
}

func TestResolveDeterministic(t *testing.T) {
	z := FitSize{320, 240}
	first := z.Resolve(1024, 768)
	for i := 0; i < 10; i++ {
		if got := z.Resolve(1024, 768); got != first {
			t.Fatalf("Resolve not deterministic: got %d then %d", first, got)
		}
	}
}

// Degenerate target dimensions are a configuration error caught upstream, but
// Resolve must still not divide by zero.
func TestResolveZeroTarget(t *testing.T) {
	if got := (FitSize{0, 0}).Resolve(1024, 768); got < 1 {
		t.Errorf("FitSize{0, 0}.Resolve = %d, want >= 1", got)
	}
	if got := FitWidth(0).Resolve(1024, 768); got < 1 {
		t.Errorf("FitWidth(0).Resolve = %d, want >= 1", got)
	}
}
