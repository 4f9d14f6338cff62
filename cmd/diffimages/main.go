// Command diffimages visualizes the per-pixel difference between two
// PNGs and prints summary statistics.
package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/novvoo/pdf-rasterizer/pkg/gopdf"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: diffimages <a.png> <b.png> [diff.png]")
		os.Exit(1)
	}

	diffPath := "diff.png"
	if len(os.Args) >= 4 {
		diffPath = os.Args[3]
	}

	if err := run(os.Args[1], os.Args[2], diffPath); err != nil {
		fmt.Fprintf(os.Stderr, "diffimages: %v\n", err)
		os.Exit(1)
	}
}

func run(aPath, bPath, diffPath string) error {
	a, err := loadPNG(aPath)
	if err != nil {
		return err
	}
	b, err := loadPNG(bPath)
	if err != nil {
		return err
	}

	diff, stats, err := gopdf.DiffImages(a, b, 5)
	if err != nil {
		return err
	}

	fmt.Println(stats)

	f, err := os.Create(diffPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, diff)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}
