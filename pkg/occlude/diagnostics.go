package occlude

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// DepthToColor renders the depth buffer's current w-buffer state into an
// RGBA image for visual inspection: brighter pixels are closer to the
// camera, and background pixels (no occluder written, 0) are black.
func (r *Renderer) DepthToColor() *image.RGBA {
	return depthToImage(r.depth)
}

func depthToImage(d *DepthBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, d.Width(), d.Height()))

	lo, hi := 0.0, 0.0
	seen := false
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			v := d.At(x, y)
			if v == 0 {
				continue
			}
			if !seen || v < lo {
				lo = v
			}
			if !seen || v > hi {
				hi = v
			}
			seen = true
		}
	}
	span := hi - lo

	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			v := d.At(x, y)
			if v == 0 {
				img.SetRGBA(x, y, color.RGBA{A: 255})
				continue
			}
			t := 1.0
			if span > 0 {
				t = (v - lo) / span
			}
			g := uint8(t * 255)
			img.SetRGBA(x, y, color.RGBA{R: g, G: g, B: g, A: 255})
		}
	}
	return img
}

// Diff compares r's depth buffer against an externally-rendered ground
// truth: external is the reference image, clear is the color that image
// uses for untouched background. A pixel is highlighted where r found
// occluder coverage but external shows only the clear color there — a
// disagreement worth a human's attention.
func (r *Renderer) Diff(external, clear image.Image) *image.RGBA {
	w, h := r.width, r.height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	extBounds := external.Bounds()
	clearBounds := clear.Bounds()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.depth.At(x, y) == 0 {
				continue
			}
			ex := external.At(extBounds.Min.X+x, extBounds.Min.Y+y)
			cl := clear.At(clearBounds.Min.X+x, clearBounds.Min.Y+y)
			if colorsEqual(ex, cl) {
				img.SetRGBA(x, y, color.RGBA{R: 220, A: 255})
			}
		}
	}
	return img
}

func colorsEqual(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
