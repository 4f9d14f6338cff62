// Command compare renders a PDF with this module's engine and diffs
// it against a reference render.
//
// The original tool generates its reference render with pdfium; no
// Go pdfium binding is available in this module's dependency set, so
// compare expects expected.png to already exist in the working
// directory (produced by whatever reference renderer the caller has
// on hand) rather than producing it itself.
package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/novvoo/go-cairo/pkg/cairo"
	"github.com/novvoo/pdf-rasterizer/pkg/gopdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: compare <input.pdf>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "compare: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath string) error {
	cfg, err := gopdf.LoadCLIConfig("gopdf.yaml")
	if err != nil {
		return fmt.Errorf("reading gopdf.yaml: %w", err)
	}

	doc, err := gopdf.OpenDocument(inputPath)
	if err != nil {
		return err
	}

	pageWidth, pageHeight, err := doc.PageSize(1)
	if err != nil {
		return err
	}

	const scale = 2.0
	width := int(pageWidth * scale)
	height := int(pageHeight * scale)

	surface := cairo.NewImageSurface(cairo.FormatARGB32, width, height)
	defer surface.Destroy()
	ctx := cairo.NewContext(surface)
	defer ctx.Destroy()
	gopdf.ApplyRenderSettings(ctx, cfg.RenderSettings)
	ctx.SetSourceRGB(1, 1, 1)
	ctx.Paint()

	scene := gopdf.NewCairoScene(ctx)
	if err := gopdf.RenderPage(doc, 1, width, height, scene); err != nil {
		return err
	}

	imgSurf, ok := surface.(cairo.ImageSurface)
	if !ok {
		return fmt.Errorf("surface is not an image surface")
	}
	if status := imgSurf.WriteToPNG("actual.png"); status != cairo.StatusSuccess {
		return fmt.Errorf("writing actual.png: %v", status)
	}

	expectedFile, err := os.Open("expected.png")
	if err != nil {
		return fmt.Errorf("opening expected.png (reference render, not produced by this tool): %w", err)
	}
	defer expectedFile.Close()
	expected, err := png.Decode(expectedFile)
	if err != nil {
		return err
	}

	actualFile, err := os.Open("actual.png")
	if err != nil {
		return err
	}
	defer actualFile.Close()
	actual, err := png.Decode(actualFile)
	if err != nil {
		return err
	}

	diff, stats, err := gopdf.DiffImages(actual, expected, 3)
	if err != nil {
		return err
	}
	fmt.Println(stats)

	diffFile, err := os.Create("difference.png")
	if err != nil {
		return err
	}
	defer diffFile.Close()
	return png.Encode(diffFile, diff)
}
