package gopdf

import "github.com/pkg/errors"

// Interpreter walks a decoded content stream, mutating a State and
// emitting to a Scene. One Interpreter renders exactly one page: it is
// not reused across pages.
type Interpreter struct {
	state     *State
	resources *Resources
	scale     DeviceScale
	scene     Scene
}

// NewInterpreter returns an Interpreter ready to run a page's operator
// sequence against scene, using resources for Tf/gs lookups and scale
// for device-space conversion.
func NewInterpreter(resources *Resources, scale DeviceScale, scene Scene) *Interpreter {
	return &Interpreter{
		state:     NewState(),
		resources: resources,
		scale:     scale,
		scene:     scene,
	}
}

// Run executes every operator in ops in order. It returns the first
// fatal error encountered (see isFatal); per-operator errors that are
// not fatal do not exist by design — every fatal error in this
// interpreter aborts the whole render, and every recognized operator
// either succeeds or is fatal. Unrecognized operators are no-ops.
func (in *Interpreter) Run(ops []Operator) error {
	for _, op := range ops {
		if err := in.dispatch(op); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) dispatch(op Operator) error {
	gs := in.state.GS
	args := op.Operands

	switch op.Name {
	case "q":
		in.state.Push()

	case "Q":
		if err := in.state.Pop(); err != nil {
			return errors.Wrap(err, "Q")
		}

	case "cm":
		m, err := matrixOperand(args)
		if err != nil {
			return errors.Wrap(err, "cm")
		}
		gs.CTM = Concat(gs.CTM, m)

	case "w":
		v, err := numberOperand(args, 0)
		if err != nil {
			return errors.Wrap(err, "w")
		}
		gs.LineWidth = v

	case "scn":
		c, err := rgbOperand(args, gs.NonStrokeColor.A)
		if err != nil {
			return errors.Wrap(err, "scn")
		}
		gs.NonStrokeColor = c

	case "SCN":
		c, err := rgbOperand(args, gs.StrokeColor.A)
		if err != nil {
			return errors.Wrap(err, "SCN")
		}
		gs.StrokeColor = c

	case "gs":
		if err := in.applyExtGState(args); err != nil {
			return errors.Wrap(err, "gs")
		}

	case "m":
		x, y, err := pointOperand(args)
		if err != nil {
			return errors.Wrap(err, "m")
		}
		dx, dy := in.scale.Transform(x, y, gs.CTM)
		gs.Path.MoveTo(dx, dy)
		gs.CurrentPoint = Coord{X: dx, Y: dy}

	case "l":
		x, y, err := pointOperand(args)
		if err != nil {
			return errors.Wrap(err, "l")
		}
		dx, dy := in.scale.Transform(x, y, gs.CTM)
		gs.Path.LineTo(dx, dy)
		gs.CurrentPoint = Coord{X: dx, Y: dy}

	case "c":
		if err := requireOperands(args, 6); err != nil {
			return errors.Wrap(err, "c")
		}
		x1, y1 := in.scale.Transform(args[0].Num, args[1].Num, gs.CTM)
		x2, y2 := in.scale.Transform(args[2].Num, args[3].Num, gs.CTM)
		x3, y3 := in.scale.Transform(args[4].Num, args[5].Num, gs.CTM)
		gs.Path.CurveTo(x1, y1, x2, y2, x3, y3)
		gs.CurrentPoint = Coord{X: x3, Y: y3}

	case "v":
		if err := requireOperands(args, 4); err != nil {
			return errors.Wrap(err, "v")
		}
		x2, y2 := in.scale.Transform(args[0].Num, args[1].Num, gs.CTM)
		x3, y3 := in.scale.Transform(args[2].Num, args[3].Num, gs.CTM)
		gs.Path.CurveTo(gs.CurrentPoint.X, gs.CurrentPoint.Y, x2, y2, x3, y3)
		gs.CurrentPoint = Coord{X: x3, Y: y3}

	case "re":
		if err := requireOperands(args, 4); err != nil {
			return errors.Wrap(err, "re")
		}
		x, y, w, h := args[0].Num, args[1].Num, args[2].Num, args[3].Num
		x0, y0 := in.scale.Transform(x, y, gs.CTM)
		x1, y1 := in.scale.Transform(x+w, y+h, gs.CTM)
		left, right := minmax(x0, x1)
		top, bottom := minmax(y0, y1)
		gs.Path.MoveTo(left, top)
		gs.Path.LineTo(right, top)
		gs.Path.LineTo(right, bottom)
		gs.Path.LineTo(left, bottom)
		gs.Path.ClosePath()
		gs.CurrentPoint = Coord{X: left, Y: top}

	case "h":
		gs.Path.ClosePath()

	case "f", "F":
		in.scene.Fill(FillRuleNonZero, IdentityCTM(), gs.NonStrokeColor, gs.Path)
		gs.Path = NewPath()

	case "f*":
		in.scene.Fill(FillRuleEvenOdd, IdentityCTM(), gs.NonStrokeColor, gs.Path)
		gs.Path = NewPath()

	case "S":
		in.scene.Stroke(StrokeSpec{Width: gs.LineWidth * float64(in.scale.Scale)}, IdentityCTM(), gs.StrokeColor, gs.Path)
		gs.Path = NewPath()

	case "B":
		in.scene.Fill(FillRuleNonZero, IdentityCTM(), gs.NonStrokeColor, gs.Path)
		in.scene.Stroke(StrokeSpec{Width: gs.LineWidth * float64(in.scale.Scale)}, IdentityCTM(), gs.StrokeColor, gs.Path)
		gs.Path = NewPath()

	case "BT":
		gs.TextState = defaultTextState()

	case "ET":
		gs.TextState = nil

	case "Tf":
		if err := requireOperands(args, 2); err != nil {
			return errors.Wrap(err, "Tf")
		}
		if args[0].Kind != ValueName || args[1].Kind != ValueNumber {
			return errors.Wrap(ErrBadOperand, "Tf")
		}
		if gs.TextState == nil {
			break
		}
		if font := in.resources.Font(args[0].Name); font != nil {
			gs.TextState.Font = font
			gs.TextState.Size = args[1].Num
		}

	case "Tm":
		m, err := matrixOperand(args)
		if err != nil {
			return errors.Wrap(err, "Tm")
		}
		gs.TextState = defaultTextState()
		gs.TextState.Matrix = Concat(gs.CTM, m)

	case "TJ":
		if err := requireOperands(args, 1); err != nil {
			return errors.Wrap(err, "TJ")
		}
		if args[0].Kind != ValueArray {
			return errors.Wrap(ErrBadOperand, "TJ")
		}
		if gs.TextState == nil {
			return errors.Wrap(ErrMissingTextState, "TJ")
		}
		in.showText(args[0].Array)

	default:
		// Unknown/unsupported operator: ignored by design.
	}
	return nil
}

// showText implements §4.6: walk a TJ array, emitting one fill per
// glyph with a non-empty outline and advancing text_state.position by
// each glyph's width after its fill is emitted.
func (in *Interpreter) showText(elements []Value) {
	ts := in.state.GS.TextState
	for _, el := range elements {
		switch el.Kind {
		case ValueNumber:
			ts.Position -= el.Num
		case ValueString:
			in.showGlyphString(el.Str)
		}
	}
}

func (in *Interpreter) showGlyphString(str []byte) {
	ts := in.state.GS.TextState
	if ts.Font == nil {
		return
	}

	n := len(str) / 2
	for i := 0; i < n; i++ {
		gid := uint16(str[2*i])<<8 | uint16(str[2*i+1])
		w := ts.Font.Width(gid)

		outline, err := ts.Font.GlyphPath(gid)
		if err == nil && !outline.IsEmpty() {
			in.emitGlyph(outline, ts)
		}

		ts.Position += w
	}
}

// emitGlyph maps a glyph outline (already in em-normalized units, see
// Font.GlyphPath) through the text-space offset, the text matrix and
// the device scale, and fills it.
func (in *Interpreter) emitGlyph(outline *Path, ts *TextState) {
	path := NewPath()
	for _, seg := range outline.Segments() {
		switch seg.Op {
		case SegMoveTo:
			x, y := in.glyphPoint(seg.X, seg.Y, ts)
			path.MoveTo(x, y)
		case SegLineTo:
			x, y := in.glyphPoint(seg.X, seg.Y, ts)
			path.LineTo(x, y)
		case SegCurveTo:
			x1, y1 := in.glyphPoint(seg.X1, seg.Y1, ts)
			x2, y2 := in.glyphPoint(seg.X2, seg.Y2, ts)
			x3, y3 := in.glyphPoint(seg.X, seg.Y, ts)
			path.CurveTo(x1, y1, x2, y2, x3, y3)
		case SegClose:
			path.ClosePath()
		}
	}
	if path.IsEmpty() {
		return
	}
	in.scene.Fill(FillRuleEvenOdd, IdentityCTM(), in.state.GS.NonStrokeColor, path)
}

// glyphPoint implements the per-point formula of §4.6: (xg, yg) are
// already xg/units_per_em, yg/units_per_em (Font.GlyphPath's units),
// so they only need multiplying by size and offsetting by the
// accumulated pen position before going through the text matrix.
func (in *Interpreter) glyphPoint(xg, yg float64, ts *TextState) (float64, float64) {
	xLocal := xg*ts.Size + ts.Position/1000*ts.Size
	yLocal := yg * ts.Size
	return in.scale.Transform(xLocal, yLocal, ts.Matrix)
}

func (in *Interpreter) applyExtGState(args []Value) error {
	if err := requireOperands(args, 1); err != nil {
		return err
	}
	if args[0].Kind != ValueName {
		return ErrBadOperand
	}
	entry, ok := in.resources.ExtGState(args[0].Name)
	if !ok {
		return nil
	}
	gs := in.state.GS
	if entry.NonStrokeAlphaIsSet {
		gs.NonStrokeColor = gs.NonStrokeColor.WithAlpha(entry.NonStrokeAlpha)
	}
	if entry.StrokeAlphaIsSet {
		gs.StrokeColor = gs.StrokeColor.WithAlpha(entry.StrokeAlpha)
	}
	return nil
}

func requireOperands(args []Value, n int) error {
	if len(args) < n {
		return ErrBadOperand
	}
	return nil
}

func numberOperand(args []Value, i int) (float64, error) {
	if i >= len(args) || args[i].Kind != ValueNumber {
		return 0, ErrBadOperand
	}
	return args[i].Num, nil
}

func pointOperand(args []Value) (float64, float64, error) {
	if err := requireOperands(args, 2); err != nil {
		return 0, 0, err
	}
	if args[0].Kind != ValueNumber || args[1].Kind != ValueNumber {
		return 0, 0, ErrBadOperand
	}
	return args[0].Num, args[1].Num, nil
}

func matrixOperand(args []Value) (CTM, error) {
	if err := requireOperands(args, 6); err != nil {
		return CTM{}, err
	}
	for i := 0; i < 6; i++ {
		if args[i].Kind != ValueNumber {
			return CTM{}, ErrBadOperand
		}
	}
	return CTM{
		A: args[0].Num, B: args[1].Num, C: args[2].Num,
		D: args[3].Num, E: args[4].Num, F: args[5].Num,
	}, nil
}

func rgbOperand(args []Value, alpha float64) (Color, error) {
	if err := requireOperands(args, 3); err != nil {
		return Color{}, err
	}
	for i := 0; i < 3; i++ {
		if args[i].Kind != ValueNumber {
			return Color{}, ErrBadOperand
		}
	}
	return Color{R: args[0].Num, G: args[1].Num, B: args[2].Num, A: alpha}, nil
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
