package gopdf

// Color is a device-RGB color with alpha, components in [0,1]. PDF color
// spaces beyond device RGB are out of scope.
type Color struct {
	R, G, B, A float64
}

// Black is the default stroke and non-stroke color of a fresh graphics
// state.
var Black = Color{R: 0, G: 0, B: 0, A: 1}

// WithAlpha returns a copy of c with its alpha replaced, leaving RGB
// untouched. Used by the gs operator's ca/CA handling.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// FillRule selects the winding rule a fill or clip path is painted with.
type FillRule int

const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

// StrokeSpec carries the parameters a Scene needs to stroke a path. The
// core only ever varies Width; cap/join/miter/dash are Non-goals.
type StrokeSpec struct {
	Width float64
}
