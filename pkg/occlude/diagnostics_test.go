package occlude

import (
	"image"
	"image/color"
	"testing"
)

func TestDiffHighlightsCoverageMissingFromExternal(t *testing.T) {
	cam := newTestCamera(t, 0.1, 100)
	r := mustRenderer(t, cam, 16, 16)

	wall := wallOccluder(t, 5, 10)
	if err := r.Render([]Occluder{wall}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	clear := image.NewUniform(color.RGBA{A: 255})
	diff := r.Diff(clear, clear)

	if diff.RGBAAt(8, 8) == (color.RGBA{}) {
		t.Fatalf("Diff() left a covered pixel unhighlighted when external has only clear color")
	}
}

func TestDiffLeavesPixelUnhighlightedWhenExternalMatchesCoverage(t *testing.T) {
	cam := newTestCamera(t, 0.1, 100)
	r := mustRenderer(t, cam, 16, 16)

	wall := wallOccluder(t, 5, 10)
	if err := r.Render([]Occluder{wall}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	clear := image.NewUniform(color.RGBA{A: 255})
	painted := image.NewUniform(color.RGBA{R: 10, G: 20, B: 30, A: 255})
	diff := r.Diff(painted, clear)

	if c := diff.RGBAAt(8, 8); c != (color.RGBA{}) {
		t.Fatalf("Diff() highlighted (8,8) = %v, want untouched: external disagrees with clear there", c)
	}
}

func TestDiffLeavesBackgroundPixelUnhighlighted(t *testing.T) {
	cam := newTestCamera(t, 0.1, 100)
	r := mustRenderer(t, cam, 16, 16)
	_ = r.Render(nil)

	clear := image.NewUniform(color.RGBA{A: 255})
	diff := r.Diff(clear, clear)

	if c := diff.RGBAAt(0, 0); c != (color.RGBA{}) {
		t.Fatalf("Diff() highlighted an untouched depth pixel: %v", c)
	}
}
