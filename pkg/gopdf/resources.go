package gopdf

// ExtGStateEntry is the subset of an ExtGState dictionary the interpreter
// understands: the stroke and non-stroke alpha overrides. Any other key
// (blend mode, soft mask, overprint, ...) is out of scope and silently
// dropped when the dictionary is loaded.
type ExtGStateEntry struct {
	NonStrokeAlpha      float64
	NonStrokeAlphaIsSet bool
	StrokeAlpha         float64
	StrokeAlphaIsSet    bool
}

// Resources is the page's font map and ExtGState map, built once by the
// Page Driver from the page's /Resources dictionary. Patterns, shadings,
// color spaces and XObjects are Non-goals and have no place here.
type Resources struct {
	Fonts      map[string]*Font
	ExtGStates map[string]ExtGStateEntry
}

// NewResources returns an empty Resources.
func NewResources() *Resources {
	return &Resources{
		Fonts:      make(map[string]*Font),
		ExtGStates: make(map[string]ExtGStateEntry),
	}
}

// Font looks up a font resource by its content-stream name (without the
// leading "/").
func (r *Resources) Font(name string) *Font {
	return r.Fonts[name]
}

// ExtGState looks up an ExtGState resource by name.
func (r *Resources) ExtGState(name string) (ExtGStateEntry, bool) {
	e, ok := r.ExtGStates[name]
	return e, ok
}
