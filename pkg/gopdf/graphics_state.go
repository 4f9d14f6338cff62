package gopdf

// GraphicsState is the complete, mutable-in-place drawing state active for
// one point in the content stream: the CTM, the in-construction path, both
// paint colors, line width, and (inside BT/ET) the text state. Dash
// pattern, line cap/join, blend modes, soft masks and color spaces beyond
// device RGB are Non-goals and are not modeled here.
type GraphicsState struct {
	CTM             CTM
	StrokeColor     Color
	NonStrokeColor  Color
	Path            *Path
	TextState       *TextState
	LineWidth       float64
	CurrentPoint    Coord
}

// NewGraphicsState returns the default state a page render starts from:
// identity CTM, black fill and stroke, line width 1, empty path, no text
// object.
func NewGraphicsState() *GraphicsState {
	return &GraphicsState{
		CTM:            IdentityCTM(),
		StrokeColor:    Black,
		NonStrokeColor: Black,
		Path:           NewPath(),
		LineWidth:      1.0,
	}
}

// Clone makes a deep copy suitable for pushing onto the q/Q stack: the
// path is copied (PDF leaves any in-flight path unaffected by a later Q
// restoring it), but a referenced Font is a shared handle, never copied —
// fonts are immutable once loaded, so aliasing them across stack frames is
// safe.
func (gs *GraphicsState) Clone() *GraphicsState {
	clone := &GraphicsState{
		CTM:            gs.CTM,
		StrokeColor:    gs.StrokeColor,
		NonStrokeColor: gs.NonStrokeColor,
		Path:           clonePath(gs.Path),
		LineWidth:      gs.LineWidth,
		CurrentPoint:   gs.CurrentPoint,
	}
	if gs.TextState != nil {
		ts := *gs.TextState
		clone.TextState = &ts
	}
	return clone
}

func clonePath(p *Path) *Path {
	np := NewPath()
	np.segments = append(np.segments, p.segments...)
	return np
}

// State is one active GraphicsState plus the q/Q save stack. It is never
// constructed with a nil GS field in practice: NewState seeds it with the
// document default.
type State struct {
	GS    *GraphicsState
	stack []*GraphicsState
}

// NewState returns a State with one default graphics state and an empty
// save stack.
func NewState() *State {
	return &State{GS: NewGraphicsState()}
}

// Push implements q: a deep clone of GS is saved; GS itself keeps being
// mutated in place by subsequent operators.
func (s *State) Push() {
	s.stack = append(s.stack, s.GS.Clone())
}

// Pop implements Q: replace GS with the top of the stack. Returns
// ErrUnbalancedStack if the stack is empty, rather than silently
// clamping at the last-pushed frame.
func (s *State) Pop() error {
	if len(s.stack) == 0 {
		return ErrUnbalancedStack
	}
	n := len(s.stack) - 1
	s.GS = s.stack[n]
	s.stack = s.stack[:n]
	return nil
}

// Depth returns the number of saved frames (not counting the active GS).
func (s *State) Depth() int {
	return len(s.stack)
}
