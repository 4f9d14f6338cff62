package gopdf

import "testing"

func newTestInterpreter(scale DeviceScale) (*Interpreter, *RecordingScene, *Resources) {
	resources := NewResources()
	scene := NewRecordingScene()
	return NewInterpreter(resources, scale, scene), scene, resources
}

// Scenario: one stroked line on a 100x100 page at scale 1.
func TestStrokedLine(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})

	ops, _ := ParseContentStream([]byte("1 w 10 10 m 90 90 l S"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(scene.Strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(scene.Strokes))
	}
	stroke := scene.Strokes[0]
	if stroke.Spec.Width != 1 {
		t.Errorf("stroke width = %v, want 1", stroke.Spec.Width)
	}

	segs := stroke.Path.Segments()
	if len(segs) != 2 {
		t.Fatalf("got %d path segments, want 2", len(segs))
	}
	if segs[0].Op != SegMoveTo || segs[0].X != 10 || segs[0].Y != 90 {
		t.Errorf("first segment = %+v, want MoveTo(10,90)", segs[0])
	}
	if segs[1].Op != SegLineTo || segs[1].X != 90 || segs[1].Y != 10 {
		t.Errorf("second segment = %+v, want LineTo(90,10)", segs[1])
	}
}

// Scenario: rect fill on a 100x100 page at scale 1.
func TestRectFill(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})

	ops, _ := ParseContentStream([]byte("0.5 0.5 0.5 scn 0 0 50 50 re f"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(scene.Fills) != 1 {
		t.Fatalf("got %d fills, want 1", len(scene.Fills))
	}
	fill := scene.Fills[0]
	if fill.Rule != FillRuleNonZero {
		t.Errorf("fill rule = %v, want NonZero", fill.Rule)
	}
	if fill.Color != (Color{R: 0.5, G: 0.5, B: 0.5, A: 1}) {
		t.Errorf("fill color = %+v, want (0.5,0.5,0.5,1)", fill.Color)
	}

	segs := fill.Path.Segments()
	if len(segs) == 0 || segs[0].X != 0 || segs[0].Y != 50 {
		t.Errorf("rect path starts at %+v, want device (0,50)", segs[0])
	}
}

// Scenario: q/Q isolation — the second stroke must see identity CTM.
func TestQQIsolation(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})

	ops, _ := ParseContentStream([]byte("q 2 0 0 2 0 0 cm 10 10 m 20 20 l S Q 30 30 m 40 40 l S"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(scene.Strokes) != 2 {
		t.Fatalf("got %d strokes, want 2", len(scene.Strokes))
	}

	first := scene.Strokes[0].Path.Segments()
	if first[0].X != 20 || first[0].Y != 80 {
		t.Errorf("first stroke start = %+v, want device (20,80) under scale-2 CTM", first[0])
	}

	second := scene.Strokes[1].Path.Segments()
	if second[0].X != 30 || second[0].Y != 70 {
		t.Errorf("second stroke start = %+v, want device (30,70) under identity CTM", second[0])
	}
}

// Scenario: Q with no matching q is fatal.
func TestUnbalancedQIsFatal(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})

	ops, _ := ParseContentStream([]byte("Q"))
	err := interp.Run(ops)
	if err == nil {
		t.Fatal("Run: want ErrUnbalancedStack, got nil")
	}
	if scene.Ops() != 0 {
		t.Errorf("scene touched on fatal error: %d ops", scene.Ops())
	}
}

// Testable property (§8): TJ pen advance sums glyph widths in 1/1000 em.
func TestTJAdvancesPenByWidthSum(t *testing.T) {
	interp, _, resources := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})
	resources.Fonts["F0"] = &Font{
		Name:   "F0",
		Widths: map[uint16]float64{0: 500, 1: 500},
	}

	// No ET: TextState must still be observable to check the accumulated
	// pen position the two glyphs' widths were summed into.
	ops, _ := ParseContentStream([]byte("BT 10 0 0 10 0 0 Tm /F0 10 Tf [<0000><0001>] TJ"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}

	ts := interp.state.GS.TextState
	if ts == nil {
		t.Fatal("text state missing after TJ")
	}
	if ts.Position != 1000 {
		t.Errorf("Position after two 500-unit glyphs = %v, want 1000", ts.Position)
	}
}

// Unknown operators must not fail the page.
func TestUnknownOperatorsIgnored(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 100, Scale: 1})

	ops, _ := ParseContentStream([]byte("/GS0 gs (hello) Tj 1 0 0 RG 10 10 Td"))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: want no error on unknown operators, got %v", err)
	}
	if scene.Ops() != 0 {
		t.Errorf("unexpected scene ops from unknown operators: %d", scene.Ops())
	}
}

// Empty content stream produces zero Scene ops.
func TestEmptyContentStream(t *testing.T) {
	interp, scene, _ := newTestInterpreter(DeviceScale{Height: 200, Scale: 2})
	ops, _ := ParseContentStream([]byte(""))
	if err := interp.Run(ops); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if scene.Ops() != 0 {
		t.Errorf("got %d ops for empty content stream, want 0", scene.Ops())
	}
}
