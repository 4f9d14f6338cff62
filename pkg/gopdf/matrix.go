package gopdf

import "fmt"

// CTM is the current transformation matrix: the 2x3 affine
// [a b 0; c d 0; e f 1] applied to PDF user-space coordinates. A CTM value
// is immutable by convention: every operation returns a new CTM rather than
// mutating the receiver.
type CTM struct {
	A, B, C, D, E, F float64
}

// IdentityCTM returns the identity transform.
func IdentityCTM() CTM {
	return CTM{A: 1, D: 1}
}

// Concat composes m1 and m2 as PDF's "cm" operator does: the result is the
// transform that applies m2 first, then m1. This is the literal formula
// from the content-stream interpreter's matrix composition rule; it is not
// the same composition order as a generic row-vector matrix multiply.
func Concat(m1, m2 CTM) CTM {
	return CTM{
		A: m1.A*m2.A + m1.C*m2.B,
		B: m1.B*m2.A + m1.D*m2.B,
		C: m1.A*m2.C + m1.C*m2.D,
		D: m1.B*m2.C + m1.D*m2.D,
		E: m1.A*m2.E + m1.C*m2.F + m1.E,
		F: m1.B*m2.E + m1.D*m2.F + m1.F,
	}
}

// Transform maps a point through m only, without device scaling or the Y
// flip (those live in DeviceScale.Transform).
func (m CTM) Transform(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

func (m CTM) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

// DeviceScale converts PDF user-space points to output device pixels:
// uniform scale, plus a vertical flip since PDF's origin is bottom-left and
// the pixel buffer's is top-left.
type DeviceScale struct {
	Height uint32
	Scale  float32
}

// Transform maps (x, y) expressed in the coordinate frame of ctm into
// device pixel coordinates.
func (s DeviceScale) Transform(x, y float64, ctm CTM) (float64, float64) {
	dx, dy := ctm.Transform(x, y)
	deviceX := float64(s.Scale) * dx
	deviceY := float64(s.Height) - float64(s.Scale)*dy
	return deviceX, deviceY
}

// Coord is a point in device pixels.
type Coord struct {
	X, Y float64
}
