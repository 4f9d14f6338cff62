package gopdf

// TextState holds the parts of the graphics state active only between a
// BT/ET pair. A GraphicsState's TextState field is nil outside BT/ET,
// enforcing the "inside BT/ET, Some; outside, None" invariant by
// construction rather than by a separate boolean flag.
type TextState struct {
	Position float64 // pen advance accumulated within a TJ array, 1/1000 em
	Size     float64 // font size set by Tf
	Matrix   CTM      // CTM_page ∘ Tm_operand, composed once at Tm time
	Font     *Font    // nil until Tf finds one
}

// defaultTextState is what BT installs and what Tm resets to before
// recomputing Matrix.
func defaultTextState() *TextState {
	return &TextState{Matrix: IdentityCTM()}
}
