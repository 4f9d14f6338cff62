// Command save renders page 1 of a PDF to a PNG file.
package main

import (
	"fmt"
	"os"

	"github.com/novvoo/go-cairo/pkg/cairo"
	"github.com/novvoo/pdf-rasterizer/pkg/gopdf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: save <input.pdf> [output.png]")
		os.Exit(1)
	}
	inputPath := os.Args[1]

	cfg, err := gopdf.LoadCLIConfig("gopdf.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "save: reading gopdf.yaml: %v\n", err)
		os.Exit(1)
	}

	outputPath := cfg.OutputPath
	if len(os.Args) >= 3 {
		outputPath = os.Args[2]
	}

	if err := run(inputPath, outputPath, cfg.Scale, cfg.RenderSettings); err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, scale float64, settings gopdf.RenderSettings) error {
	doc, err := gopdf.OpenDocument(inputPath)
	if err != nil {
		return err
	}

	pageWidth, pageHeight, err := doc.PageSize(1)
	if err != nil {
		return err
	}

	width := int(pageWidth * scale)
	height := int(pageHeight * scale)

	surface := cairo.NewImageSurface(cairo.FormatARGB32, width, height)
	defer surface.Destroy()
	ctx := cairo.NewContext(surface)
	defer ctx.Destroy()
	gopdf.ApplyRenderSettings(ctx, settings)

	ctx.SetSourceRGB(1, 1, 1)
	ctx.Paint()

	scene := gopdf.NewCairoScene(ctx)
	if err := gopdf.RenderPage(doc, 1, width, height, scene); err != nil {
		return err
	}

	imgSurf, ok := surface.(cairo.ImageSurface)
	if !ok {
		return fmt.Errorf("save: surface is not an image surface")
	}
	if status := imgSurf.WriteToPNG(outputPath); status != cairo.StatusSuccess {
		return fmt.Errorf("save: writing PNG: %v", status)
	}
	return nil
}
