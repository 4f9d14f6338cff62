package gopdf

// PathSegment is one drawing command of a Path, always in device-space
// coordinates by the time it is attached to a GraphicsState's path — the
// content-stream interpreter transforms operands before ever calling
// MoveTo/LineTo/CurveTo.
type PathSegment struct {
	Op             SegmentOp
	X, Y           float64 // MoveTo, LineTo endpoint; CurveTo's final point
	X1, Y1, X2, Y2 float64 // CurveTo control points
}

// SegmentOp identifies which fields of a PathSegment are meaningful.
type SegmentOp int

const (
	SegMoveTo SegmentOp = iota
	SegLineTo
	SegCurveTo
	SegClose
)

// Path is an ordered sequence of subpaths, following kurbo's BezPath model:
// a flat list of segments where MoveTo starts a new subpath implicitly.
type Path struct {
	segments []PathSegment
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) {
	p.segments = append(p.segments, PathSegment{Op: SegMoveTo, X: x, Y: y})
}

func (p *Path) LineTo(x, y float64) {
	p.segments = append(p.segments, PathSegment{Op: SegLineTo, X: x, Y: y})
}

func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	p.segments = append(p.segments, PathSegment{Op: SegCurveTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x3, Y: y3})
}

// QuadTo appends a quadratic Bezier, elevated to the cubic form Path
// natively stores. This is the exact degree-raise (control points at 1/3
// and 2/3 along the lines from the endpoints to the quadratic control
// point), not the duplicated-control-point approximation some Cairo glue
// code uses.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	var x0, y0 float64
	if n := len(p.segments); n > 0 {
		x0, y0 = p.segments[n-1].X, p.segments[n-1].Y
	}
	x1 := x0 + 2.0/3.0*(cx-x0)
	y1 := y0 + 2.0/3.0*(cy-y0)
	x2 := x + 2.0/3.0*(cx-x)
	y2 := y + 2.0/3.0*(cy-y)
	p.CurveTo(x1, y1, x2, y2, x, y)
}

func (p *Path) ClosePath() {
	p.segments = append(p.segments, PathSegment{Op: SegClose})
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool {
	return len(p.segments) == 0
}

// Segments returns the path's segments in order.
func (p *Path) Segments() []PathSegment {
	return p.segments
}
