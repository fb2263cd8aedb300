package occlude

import (
	"testing"
)

func TestRasterizerDrawTriangleWritesPositiveDepthInsideCoverage(t *testing.T) {
	depth, err := NewDepthBuffer(10, 10)
	if err != nil {
		t.Fatalf("NewDepthBuffer: %v", err)
	}
	r := NewRasterizer(depth)

	v0 := screenVertex{X: 1, Y: 1, InvW: 1}
	v1 := screenVertex{X: 8, Y: 1, InvW: 1}
	v2 := screenVertex{X: 1, Y: 8, InvW: 1}
	r.DrawTriangle(v0, v1, v2)

	if v := depth.At(3, 3); v == 0 {
		t.Fatalf("interior pixel (3,3) was not written")
	}
}

func TestRasterizerDrawTriangleLeavesOutsidePixelsUntouched(t *testing.T) {
	depth, _ := NewDepthBuffer(10, 10)
	r := NewRasterizer(depth)

	v0 := screenVertex{X: 1, Y: 1, InvW: 1}
	v1 := screenVertex{X: 4, Y: 1, InvW: 1}
	v2 := screenVertex{X: 1, Y: 4, InvW: 1}
	r.DrawTriangle(v0, v1, v2)

	if v := depth.At(9, 9); v != 0 {
		t.Fatalf("pixel (9,9) outside the triangle was written: %v", v)
	}
}

func TestRasterizerDrawTriangleMergesMaxAcrossOverlappingOccluders(t *testing.T) {
	depth, _ := NewDepthBuffer(10, 10)
	r := NewRasterizer(depth)

	// Far triangle (small InvW), then near triangle (large InvW)
	// covering the same area: stored depth must end up as the larger.
	far := [3]screenVertex{
		{X: 1, Y: 1, InvW: 0.1},
		{X: 8, Y: 1, InvW: 0.1},
		{X: 1, Y: 8, InvW: 0.1},
	}
	near := [3]screenVertex{
		{X: 1, Y: 1, InvW: 0.9},
		{X: 8, Y: 1, InvW: 0.9},
		{X: 1, Y: 8, InvW: 0.9},
	}
	r.DrawTriangle(far[0], far[1], far[2])
	r.DrawTriangle(near[0], near[1], near[2])

	if v := depth.At(3, 3); v < 0.5 {
		t.Fatalf("depth.At(3,3) = %v, want the closer (larger InvW) value to win", v)
	}

	// Drawing the far triangle again afterwards must not overwrite
	// the closer value: merge is max, not last-write-wins.
	r.DrawTriangle(far[0], far[1], far[2])
	if v := depth.At(3, 3); v < 0.5 {
		t.Fatalf("depth.At(3,3) = %v after redrawing the far triangle, want the closer value to still win", v)
	}
}

func TestConservativeMaxIsGreaterThanOrEqualToCenter(t *testing.T) {
	center, dx, dy := 1.0, 0.1, -0.2
	m := conservativeMax(center, dx, dy)
	if m < center {
		t.Fatalf("conservativeMax(%v, %v, %v) = %v, want >= center", center, dx, dy, m)
	}
}

func TestConservativeMaxZeroGradientEqualsCenter(t *testing.T) {
	m := conservativeMax(1.5, 0, 0)
	if m != 1.5 {
		t.Fatalf("conservativeMax with zero gradient = %v, want 1.5", m)
	}
}
