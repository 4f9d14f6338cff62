package gopdf

import "github.com/pkg/errors"

// RenderPage is the Page Driver: it resolves page geometry, builds the
// font and ExtGState maps, decodes the content stream, and drives the
// interpreter against scene. Page 1 is the only render target this
// package is specified for, but RenderPage accepts any page number a
// Document can answer.
func RenderPage(doc Document, pageNum int, targetWidth, targetHeight int, scene Scene) error {
	pageWidth, _, err := doc.PageSize(pageNum)
	if err != nil {
		return errors.Wrap(err, "page size")
	}

	scale := DeviceScale{
		Height: uint32(targetHeight),
		Scale:  float32(float64(targetWidth) / pageWidth),
	}

	resources, err := doc.Resources(pageNum)
	if err != nil {
		return errors.Wrap(err, "page resources")
	}

	content, err := doc.ContentStream(pageNum)
	if err != nil {
		return errors.Wrap(err, "content stream")
	}

	ops, err := ParseContentStream(content)
	if err != nil {
		return errors.Wrap(err, "parsing content stream")
	}

	interp := NewInterpreter(resources, scale, scene)
	if err := interp.Run(ops); err != nil {
		return errors.Wrap(err, "running content stream")
	}
	return nil
}
