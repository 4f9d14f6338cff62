package gopdf

import (
	"bytes"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/opentype/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Font is a single Type0 composite font as Tf/TJ see it: a name for
// lookup, the CID->glyph-outline source parsed from its embedded
// TrueType program, and the CID->width table from the font dictionary's
// /W array. Simple (non-Type0) fonts, non-embedded fonts and CFF
// (FontFile3) programs are Non-goals.
type Font struct {
	Name   string
	Face   font.Face
	Widths map[uint16]float64 // CID -> width, in 1/1000 em; missing CID reads as 0
}

// Width returns the advance width for a CID, in 1/1000 em. A CID with no
// entry in Widths advances the pen by 0.
func (f *Font) Width(cid uint16) float64 {
	if w, ok := f.Widths[cid]; ok {
		return w
	}
	return 0
}

// loadFont builds a Font from a /Font resource entry. It follows the
// Type0 -> DescendantFonts[0] -> FontDescriptor -> FontFile2 chain;
// anything else (a simple font, a missing descendant, a CFF program)
// is ErrBadFont, which the caller drops without aborting the page.
func (d *pdfcpuDocument) loadFont(fontObj types.Object) (*Font, error) {
	fontObj, err := d.resolve(fontObj)
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}
	fontDict, ok := fontObj.(types.Dict)
	if !ok {
		return nil, errors.Wrap(ErrBadFont, "font entry is not a dictionary")
	}

	subtype, _ := fontDict.Find("Subtype")
	if name, ok := subtype.(types.Name); !ok || name.String() != "Type0" {
		return nil, errors.Wrap(ErrBadFont, "only Type0 composite fonts are supported")
	}

	descendantsObj, found := fontDict.Find("DescendantFonts")
	if !found {
		return nil, errors.Wrap(ErrBadFont, "missing DescendantFonts")
	}
	descendantsObj, err = d.resolve(descendantsObj)
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}
	descendants, ok := descendantsObj.(types.Array)
	if !ok || len(descendants) != 1 {
		return nil, errors.Wrap(ErrBadFont, "expected exactly one DescendantFont")
	}

	descendantObj, err := d.resolve(descendants[0])
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}
	descendantDict, ok := descendantObj.(types.Dict)
	if !ok {
		return nil, errors.Wrap(ErrBadFont, "DescendantFont is not a dictionary")
	}

	descriptorObj, found := descendantDict.Find("FontDescriptor")
	if !found {
		return nil, errors.Wrap(ErrBadFont, "missing FontDescriptor")
	}
	descriptorObj, err = d.resolve(descriptorObj)
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}
	descriptorDict, ok := descriptorObj.(types.Dict)
	if !ok {
		return nil, errors.Wrap(ErrBadFont, "FontDescriptor is not a dictionary")
	}

	fontFileObj, found := descriptorDict.Find("FontFile2")
	if !found {
		return nil, errors.Wrap(ErrBadFont, "not a TrueType (FontFile2) program")
	}
	data, err := d.streamBytes(fontFileObj)
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(ErrBadFont, err.Error())
	}

	widths, err := parseWidths(descendantDict)
	if err != nil {
		return nil, err
	}

	name := ""
	if fontName, found := descriptorDict.Find("FontName"); found {
		if n, ok := fontName.(types.Name); ok {
			name = norm.NFC.String(n.String())
		}
	}

	return &Font{Name: name, Face: face, Widths: widths}, nil
}

// parseWidths accepts only the single-range /W form [0 [w0 w1 ...]] —
// the form every CID font this interpreter has seen actually uses.
// Any other shape, including a range starting at a CID other than 0
// and the "c_first c_last w" range form, is ErrUnsupportedWidths.
func parseWidths(descendantDict types.Dict) (map[uint16]float64, error) {
	wObj, found := descendantDict.Find("W")
	if !found {
		return map[uint16]float64{}, nil
	}
	arr, ok := wObj.(types.Array)
	if !ok || len(arr) != 2 {
		return nil, errors.Wrap(ErrUnsupportedWidths, "W is not a two-element array")
	}

	startObj, ok := arr[0].(types.Integer)
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedWidths, "W[0] is not an integer")
	}
	if startObj != 0 {
		return nil, errors.Wrap(ErrUnsupportedWidths, "W does not start at CID 0")
	}
	widthsArr, ok := arr[1].(types.Array)
	if !ok {
		return nil, errors.Wrap(ErrUnsupportedWidths, "W[1] is not an array")
	}

	widths := make(map[uint16]float64, len(widthsArr))
	cid := uint16(startObj)
	for _, elem := range widthsArr {
		v, ok := numberValue(elem)
		if !ok {
			return nil, errors.Wrap(ErrUnsupportedWidths, "width entry is not numeric")
		}
		widths[cid] = v
		cid++
	}
	return widths, nil
}

// GlyphPath returns the outline of glyph id gid (a CID doubles as a
// glyph id for Identity-H encoded TrueType CID fonts, which is the
// only encoding this interpreter resolves) as a Path in font design
// units scaled to a 1-em box, i.e. divided by the font's units-per-em
// and left otherwise unscaled — the caller applies text size and the
// text matrix on top.
func (f *Font) GlyphPath(gid uint16) (*Path, error) {
	if f.Face == nil {
		return NewPath(), nil
	}
	glyphData := f.Face.GlyphData(api.GID(gid))
	outline, ok := glyphData.(api.GlyphOutline)
	if !ok {
		return NewPath(), nil
	}

	upem := float64(f.Face.Upem())
	if upem == 0 {
		upem = 1000
	}
	scale := func(v fixed.Int26_6) float64 {
		return float64(v) / 64.0 / upem
	}

	path := NewPath()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case api.SegmentOpMoveTo:
			path.MoveTo(scale(seg.Args[0].X), scale(seg.Args[0].Y))
		case api.SegmentOpLineTo:
			path.LineTo(scale(seg.Args[0].X), scale(seg.Args[0].Y))
		case api.SegmentOpQuadTo:
			path.QuadTo(
				scale(seg.Args[0].X), scale(seg.Args[0].Y),
				scale(seg.Args[1].X), scale(seg.Args[1].Y),
			)
		case api.SegmentOpCubeTo:
			path.CurveTo(
				scale(seg.Args[0].X), scale(seg.Args[0].Y),
				scale(seg.Args[1].X), scale(seg.Args[1].Y),
				scale(seg.Args[2].X), scale(seg.Args[2].Y),
			)
		}
	}
	return path, nil
}
