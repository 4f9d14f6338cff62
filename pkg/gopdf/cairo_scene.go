package gopdf

import (
	"github.com/novvoo/go-cairo/pkg/cairo"
)

// CairoScene is the concrete Scene the save/compare CLIs render
// through: every Fill/Stroke call is replayed directly onto a Cairo
// context backing an ARGB32 image surface. The core never touches
// Cairo outside this file — everywhere else a Scene is just the
// interface declared in scene.go.
type CairoScene struct {
	ctx cairo.Context
}

func NewCairoScene(ctx cairo.Context) *CairoScene {
	return &CairoScene{ctx: ctx}
}

// ApplyRenderSettings configures ctx per settings before any drawing, so
// the CLI binaries don't each have to know how RenderSettings maps onto
// a Cairo context.
func ApplyRenderSettings(ctx cairo.Context, settings RenderSettings) {
	if settings.AntiAlias {
		ctx.SetAntialias(cairo.AntialiasDefault)
	} else {
		ctx.SetAntialias(cairo.AntialiasNone)
	}
}

func (s *CairoScene) buildPath(path *Path) {
	s.ctx.NewPath()
	for _, seg := range path.Segments() {
		switch seg.Op {
		case SegMoveTo:
			s.ctx.MoveTo(seg.X, seg.Y)
		case SegLineTo:
			s.ctx.LineTo(seg.X, seg.Y)
		case SegCurveTo:
			s.ctx.CurveTo(seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y)
		case SegClose:
			s.ctx.ClosePath()
		}
	}
}

func (s *CairoScene) Fill(rule FillRule, affine CTM, color Color, path *Path) {
	if path.IsEmpty() {
		return
	}
	s.ctx.Save()
	defer s.ctx.Restore()

	if rule == FillRuleEvenOdd {
		s.ctx.SetFillRule(cairo.FillRuleEvenOdd)
	} else {
		s.ctx.SetFillRule(cairo.FillRuleWinding)
	}
	s.ctx.SetSourceRGBA(color.R, color.G, color.B, color.A)
	s.buildPath(path)
	s.ctx.Fill()
}

func (s *CairoScene) Stroke(spec StrokeSpec, affine CTM, color Color, path *Path) {
	if path.IsEmpty() {
		return
	}
	s.ctx.Save()
	defer s.ctx.Restore()

	s.ctx.SetSourceRGBA(color.R, color.G, color.B, color.A)
	s.ctx.SetLineWidth(spec.Width)
	s.buildPath(path)
	s.ctx.Stroke()
}
