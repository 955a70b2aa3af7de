package pixelcam

import "testing"

func TestInvertAffineRoundtrip(t *testing.T) {
	m := [6]float64{3, 0, 0, 3, 42, -17}
	inv := invertAffine(m)

	x, y := transformPoint(m, 12, 34)
	rx, ry := transformPoint(inv, x, y)
	if !approxEqual(rx, 12, 1e-9) || !approxEqual(ry, 34, 1e-9) {
		t.Errorf("roundtrip = (%v, %v), want (12, 34)", rx, ry)
	}
}

func TestInvertAffineDegenerate(t *testing.T) {
	if got := invertAffine([6]float64{0, 0, 0, 0, 5, 5}); got != identityTransform {
		t.Errorf("degenerate inverse = %v, want identity", got)
	}
}
