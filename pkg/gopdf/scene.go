package gopdf

// Scene is the append-only sink the interpreter emits transformed,
// device-space drawing commands to. Affine is always IdentityCTM() by
// the time fill/stroke reach it — the interpreter has already baked
// the CTM and text matrix into the path's coordinates — but the
// parameter is kept so a Scene implementation can assert that
// invariant rather than assume it.
type Scene interface {
	Fill(rule FillRule, affine CTM, color Color, path *Path)
	Stroke(spec StrokeSpec, affine CTM, color Color, path *Path)
}

// FillCommand and StrokeCommand are the recorded form of a Scene call,
// used by RecordingScene and by tests asserting exact emission order.
type FillCommand struct {
	Rule   FillRule
	Affine CTM
	Color  Color
	Path   *Path
}

type StrokeCommand struct {
	Spec   StrokeSpec
	Affine CTM
	Color  Color
	Path   *Path
}

// RecordingScene collects every emission in order without drawing
// anything. It is the Scene used by interpreter tests, and mirrors
// what a real Scene's ordering guarantee (operator order is emission
// order) needs to hold.
type RecordingScene struct {
	Fills   []FillCommand
	Strokes []StrokeCommand
}

func NewRecordingScene() *RecordingScene {
	return &RecordingScene{}
}

func (s *RecordingScene) Fill(rule FillRule, affine CTM, color Color, path *Path) {
	s.Fills = append(s.Fills, FillCommand{Rule: rule, Affine: affine, Color: color, Path: path})
}

func (s *RecordingScene) Stroke(spec StrokeSpec, affine CTM, color Color, path *Path) {
	s.Strokes = append(s.Strokes, StrokeCommand{Spec: spec, Affine: affine, Color: color, Path: path})
}

// Ops returns the total number of fill and stroke emissions. Callers
// that need emission order should read Fills/Strokes directly; Ops
// exists for the "at most N emissions" style of assertion.
func (s *RecordingScene) Ops() int {
	return len(s.Fills) + len(s.Strokes)
}
