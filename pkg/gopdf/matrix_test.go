package gopdf

import "testing"

const tolerance = 1e-9

func matricesEqual(a, b CTM) bool {
	return abs(a.A-b.A) < tolerance && abs(a.B-b.B) < tolerance &&
		abs(a.C-b.C) < tolerance && abs(a.D-b.D) < tolerance &&
		abs(a.E-b.E) < tolerance && abs(a.F-b.F) < tolerance
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestConcatIdentity(t *testing.T) {
	m := CTM{A: 2, B: 0.5, C: -1, D: 3, E: 10, F: -5}
	id := IdentityCTM()

	if got := Concat(id, m); !matricesEqual(got, m) {
		t.Errorf("Concat(Identity, M) = %v, want %v", got, m)
	}
	if got := Concat(m, id); !matricesEqual(got, m) {
		t.Errorf("Concat(M, Identity) = %v, want %v", got, m)
	}
}

func TestConcatAssociative(t *testing.T) {
	a := CTM{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	b := CTM{A: 2, B: 0, C: 1, D: 1, E: -3, F: 2}
	c := CTM{A: 0.5, B: 1.5, C: -2, D: 1, E: 4, F: -1}

	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))

	if !matricesEqual(left, right) {
		t.Errorf("concat not associative: %v != %v", left, right)
	}
}

func TestTransformIdempotence(t *testing.T) {
	scale := DeviceScale{Height: 100, Scale: 1}
	x, y := scale.Transform(30, 40, IdentityCTM())
	if x != 30 || y != 60 {
		t.Errorf("transform(p, Identity, {H=100,scale=1}) = (%v,%v), want (30,60)", x, y)
	}
}

func TestCTMScaleTranslate(t *testing.T) {
	// cm 2 0 0 2 10 10: scale by 2 then translate by (10,10)
	m := CTM{A: 2, D: 2, E: 10, F: 10}
	x, y := m.Transform(5, 5)
	if x != 20 || y != 20 {
		t.Errorf("Transform(5,5) = (%v,%v), want (20,20)", x, y)
	}
}
