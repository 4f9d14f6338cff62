package gopdf

import (
	"fmt"
	"image"
	"image/color"
)

// DiffStats summarizes a per-pixel comparison of two equally-sized
// images: how many pixels differ and by how much.
type DiffStats struct {
	Width, Height   int
	TotalPixels     int
	DifferingPixels int
	AverageDiff     float64 // mean over pixels of the per-pixel max-channel diff
	MaxPerChan      int
}

func (s DiffStats) String() string {
	pct := 0.0
	if s.TotalPixels > 0 {
		pct = 100 * float64(s.DifferingPixels) / float64(s.TotalPixels)
	}
	return fmt.Sprintf(
		"%dx%d, %d pixels, %d differing (%.2f%%), average per-pixel difference %.2f, maximum per-pixel difference %d",
		s.Width, s.Height, s.TotalPixels, s.DifferingPixels, pct, s.AverageDiff, s.MaxPerChan,
	)
}

// DiffImages computes a per-pixel max-channel absolute difference
// visualization between a and b, scaled by multiplier and clamped to
// 255, plus DiffStats over the comparison. a and b must have identical
// bounds.
func DiffImages(a, b image.Image, multiplier int) (*image.RGBA, DiffStats, error) {
	bounds := a.Bounds()
	if bounds != b.Bounds() {
		return nil, DiffStats{}, fmt.Errorf("diff: image sizes differ: %v vs %v", bounds, b.Bounds())
	}

	width, height := bounds.Dx(), bounds.Dy()
	out := image.NewRGBA(bounds)

	var sumDiff, maxDiff, differing int

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, _ := a.At(x, y).RGBA()
			br, bg, bb, _ := b.At(x, y).RGBA()

			dr := absDiff8(ar, br)
			dg := absDiff8(ag, bg)
			db := absDiff8(ab, bb)

			maxChan := dr
			if dg > maxChan {
				maxChan = dg
			}
			if db > maxChan {
				maxChan = db
			}

			sumDiff += maxChan
			if maxChan > maxDiff {
				maxDiff = maxChan
			}
			if maxChan > 0 {
				differing++
			}

			v := clamp255(maxChan * multiplier)
			out.Set(x, y, color.RGBA{R: uint8(v), G: uint8(v), B: uint8(v), A: 255})
		}
	}

	totalPixels := width * height
	stats := DiffStats{
		Width:           width,
		Height:          height,
		TotalPixels:     totalPixels,
		DifferingPixels: differing,
		MaxPerChan:      maxDiff,
	}
	if totalPixels > 0 {
		stats.AverageDiff = float64(sumDiff) / float64(totalPixels)
	}
	return out, stats, nil
}

func absDiff8(a, b uint32) int {
	av, bv := int(a>>8), int(b>>8)
	if av > bv {
		return av - bv
	}
	return bv - av
}

func clamp255(v int) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return v
}
