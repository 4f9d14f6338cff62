package gopdf

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"
)

// Document is the oracle the Page Driver reads a single page through: page
// geometry, the page's content stream bytes (already concatenated and
// decompressed), and its /Resources dictionary. Everything else a real PDF
// can contain — outlines, forms, attachments, other pages — is out of
// scope; a Document only ever answers questions about the one page it was
// asked to render.
type Document interface {
	// PageSize returns the page's MediaBox width and height in PDF units.
	// Returns ErrBadMediaBox if the page has no usable MediaBox.
	PageSize(pageNum int) (width, height float64, err error)

	// ContentStream returns the page's content stream bytes, with any
	// array of multiple streams concatenated in order and each one
	// decompressed.
	ContentStream(pageNum int) ([]byte, error)

	// Resources returns the page's font and ExtGState map. A page with no
	// /Resources entry returns an empty Resources, not an error.
	Resources(pageNum int) (*Resources, error)
}

// pdfcpuDocument is a Document backed by pdfcpu's in-memory model.Context.
// It is built once per render by OpenDocument and reused for every page
// query against that file.
type pdfcpuDocument struct {
	ctx *model.Context
}

// OpenDocument reads the PDF at path into pdfcpu's object model. The
// returned Document does not keep the file open; all of a PDF's objects
// are resolved into ctx up front by pdfcpu.
func OpenDocument(path string) (Document, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading PDF context")
	}
	return &pdfcpuDocument{ctx: ctx}, nil
}

func (d *pdfcpuDocument) pageDict(pageNum int) (types.Dict, error) {
	pageDict, _, _, err := d.ctx.PageDict(pageNum, false)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingPage, "page %d: %v", pageNum, err)
	}
	if pageDict == nil {
		return nil, errors.Wrapf(ErrMissingPage, "page %d", pageNum)
	}
	return pageDict, nil
}

func (d *pdfcpuDocument) resolve(obj types.Object) (types.Object, error) {
	if indRef, ok := obj.(types.IndirectRef); ok {
		derefObj, err := d.ctx.Dereference(indRef)
		if err != nil {
			return nil, err
		}
		return derefObj, nil
	}
	return obj, nil
}

func numberValue(obj types.Object) (float64, bool) {
	switch v := obj.(type) {
	case types.Float:
		return float64(v), true
	case types.Integer:
		return float64(v), true
	}
	return 0, false
}

// PageSize reads MediaBox as the four-element array [x0 y0 w h] and
// returns its last two elements as the width and height; x0 and y0 are
// not used. Anything else — missing entry, wrong
// length, non-numeric bounds — is ErrBadMediaBox, a fatal error: a page
// with no usable geometry has nowhere to rasterize to.
func (d *pdfcpuDocument) PageSize(pageNum int) (float64, float64, error) {
	pageDict, err := d.pageDict(pageNum)
	if err != nil {
		return 0, 0, err
	}

	mediaBoxObj, found := pageDict.Find("MediaBox")
	if !found {
		return 0, 0, errors.Wrapf(ErrBadMediaBox, "page %d has no MediaBox", pageNum)
	}
	mediaBoxObj, err = d.resolve(mediaBoxObj)
	if err != nil {
		return 0, 0, errors.Wrap(err, "dereferencing MediaBox")
	}

	arr, ok := mediaBoxObj.(types.Array)
	if !ok || len(arr) != 4 {
		return 0, 0, errors.Wrapf(ErrBadMediaBox, "page %d MediaBox is not a 4-element array", pageNum)
	}

	bounds := make([]float64, 4)
	for i, elem := range arr {
		resolved, err := d.resolve(elem)
		if err != nil {
			return 0, 0, errors.Wrap(err, "dereferencing MediaBox element")
		}
		v, ok := numberValue(resolved)
		if !ok {
			return 0, 0, errors.Wrapf(ErrBadMediaBox, "page %d MediaBox element %d is not numeric", pageNum, i)
		}
		bounds[i] = v
	}

	width := bounds[2]
	height := bounds[3]
	if width <= 0 || height <= 0 {
		return 0, 0, errors.Wrapf(ErrBadMediaBox, "page %d MediaBox has non-positive dimensions", pageNum)
	}
	return width, height, nil
}

// ContentStream resolves the page's /Contents entry, which may be a
// single stream, an indirect reference to one, or an array mixing both,
// and concatenates the decoded bytes of each stream in array order,
// separated by a newline — matching how PDF viewers treat a
// content-stream array as if it were one stream with token boundaries
// preserved.
func (d *pdfcpuDocument) ContentStream(pageNum int) ([]byte, error) {
	pageDict, err := d.pageDict(pageNum)
	if err != nil {
		return nil, err
	}

	contents, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}

	streams, err := d.extractContentStreams(contents)
	if err != nil {
		return nil, errors.Wrap(err, "extracting content streams")
	}

	var all []byte
	for _, s := range streams {
		all = append(all, s...)
		all = append(all, '\n')
	}
	return all, nil
}

func (d *pdfcpuDocument) extractContentStreams(contents types.Object) ([][]byte, error) {
	switch obj := contents.(type) {
	case types.IndirectRef:
		derefObj, err := d.ctx.Dereference(obj)
		if err != nil {
			return nil, err
		}
		return d.extractContentStreams(derefObj)

	case types.StreamDict:
		if len(obj.Content) == 0 && len(obj.Raw) > 0 {
			if err := obj.Decode(); err != nil {
				return nil, errors.Wrap(err, "decoding content stream")
			}
		}
		if len(obj.Content) == 0 {
			return nil, nil
		}
		return [][]byte{obj.Content}, nil

	case types.Array:
		var streams [][]byte
		for _, item := range obj {
			itemStreams, err := d.extractContentStreams(item)
			if err != nil {
				return nil, err
			}
			streams = append(streams, itemStreams...)
		}
		return streams, nil

	default:
		return nil, nil
	}
}

// Resources builds the page's font and ExtGState map. Fonts that fail to
// load (bad FontDescriptor, unsupported Widths shape, unparseable
// TrueType data) are dropped with a Warn log instead of an error — per-font
// failures are not fatal to the page render, per ErrBadFont and
// ErrUnsupportedWidths being non-fatal in isFatal.
func (d *pdfcpuDocument) Resources(pageNum int) (*Resources, error) {
	resources := NewResources()

	pageDict, err := d.pageDict(pageNum)
	if err != nil {
		return nil, err
	}

	resourcesObj, found := pageDict.Find("Resources")
	if !found {
		return resources, nil
	}
	resourcesObj, err = d.resolve(resourcesObj)
	if err != nil {
		return nil, errors.Wrap(err, "dereferencing Resources")
	}
	resourcesDict, ok := resourcesObj.(types.Dict)
	if !ok {
		return resources, nil
	}

	if fontsObj, found := resourcesDict.Find("Font"); found {
		fontsObj, err = d.resolve(fontsObj)
		if err == nil {
			if fontsDict, ok := fontsObj.(types.Dict); ok {
				for fontName, fontObj := range fontsDict {
					font, err := d.loadFont(fontObj)
					if err != nil {
						if isFatal(err) {
							return nil, errors.Wrapf(err, "font %s", fontName)
						}
						Warn("dropping font %s: %v", fontName, err)
						continue
					}
					resources.Fonts[fontName] = font
				}
			}
		}
	}

	if extGStateObj, found := resourcesDict.Find("ExtGState"); found {
		extGStateObj, err = d.resolve(extGStateObj)
		if err == nil {
			if extGStateDict, ok := extGStateObj.(types.Dict); ok {
				for gsName, gsObj := range extGStateDict {
					entry, err := d.loadExtGState(gsObj)
					if err != nil {
						continue
					}
					resources.ExtGStates[gsName] = entry
				}
			}
		}
	}

	return resources, nil
}

func (d *pdfcpuDocument) loadExtGState(gsObj types.Object) (ExtGStateEntry, error) {
	gsObj, err := d.resolve(gsObj)
	if err != nil {
		return ExtGStateEntry{}, err
	}
	gsDict, ok := gsObj.(types.Dict)
	if !ok {
		return ExtGStateEntry{}, errors.New("ExtGState is not a dictionary")
	}

	var entry ExtGStateEntry
	if ca, found := gsDict.Find("ca"); found {
		if v, ok := numberValue(ca); ok {
			entry.NonStrokeAlpha, entry.NonStrokeAlphaIsSet = v, true
		}
	}
	if ca, found := gsDict.Find("CA"); found {
		if v, ok := numberValue(ca); ok {
			entry.StrokeAlpha, entry.StrokeAlphaIsSet = v, true
		}
	}
	return entry, nil
}

func (d *pdfcpuDocument) streamBytes(obj types.Object) ([]byte, error) {
	obj, err := d.resolve(obj)
	if err != nil {
		return nil, err
	}
	streamDict, ok := obj.(types.StreamDict)
	if !ok {
		return nil, errors.New("not a stream dictionary")
	}
	if len(streamDict.Content) == 0 && len(streamDict.Raw) > 0 {
		if err := streamDict.Decode(); err != nil {
			return nil, errors.Wrap(err, "decoding stream")
		}
	}
	if len(streamDict.Content) == 0 {
		return nil, errors.New("stream is empty")
	}
	return streamDict.Content, nil
}
