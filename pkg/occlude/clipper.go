package occlude

import "github.com/taigrr/occlude/pkg/math3d"

// camTriangle is a triangle's three vertices in camera space (after the
// view transform, before projection).
type camTriangle [3]math3d.Vec3

// clipToNear clips a camera-space triangle against the near plane
// z = -near (the OpenGL-style convention this package's Camera
// implementations use: camera space looks down -Z, so points in front
// of the camera have negative Z and the near plane sits at z = -near).
// It returns 0, 1, or 2 triangles depending on how many vertices lie in
// front of the plane, preserving the original winding.
func clipToNear(t camTriangle, near float64) []camTriangle {
	plane := -near

	behind := [3]bool{t[0].Z > plane, t[1].Z > plane, t[2].Z > plane}
	behindCount := 0
	for _, b := range behind {
		if b {
			behindCount++
		}
	}

	switch behindCount {
	case 0:
		return []camTriangle{t}
	case 3:
		return nil
	case 1:
		return clipOneBehind(t, behind, plane)
	default:
		return clipTwoBehind(t, behind, plane)
	}
}

// clipOneBehind handles the case where exactly one vertex is behind the
// near plane. The remaining quad (two original vertices plus two new
// intersection points) is triangulated as [isect1, front1, front2] and
// [isect1, front2, isect2], which preserves the original triangle's
// winding order.
func clipOneBehind(t camTriangle, behind [3]bool, plane float64) []camTriangle {
	idx0 := 0
	for i, b := range behind {
		if b {
			idx0 = i
			break
		}
	}
	idx1 := (idx0 + 1) % 3
	idx2 := (idx0 + 2) % 3

	vBehind, vFront1, vFront2 := t[idx0], t[idx1], t[idx2]

	isect1 := intersectNear(vBehind, vFront1, plane)
	isect2 := intersectNear(vBehind, vFront2, plane)

	return []camTriangle{
		{isect1, vFront1, vFront2},
		{isect1, vFront2, isect2},
	}
}

// clipTwoBehind handles the case where exactly two vertices are behind
// the near plane, producing the single remaining triangle.
func clipTwoBehind(t camTriangle, behind [3]bool, plane float64) []camTriangle {
	idx0 := 0
	for i, b := range behind {
		if !b {
			idx0 = i
			break
		}
	}
	idx1 := (idx0 + 1) % 3
	idx2 := (idx0 + 2) % 3

	vFront, vBehind1, vBehind2 := t[idx0], t[idx1], t[idx2]

	isect1 := intersectNear(vFront, vBehind1, plane)
	isect2 := intersectNear(vFront, vBehind2, plane)

	return []camTriangle{{vFront, isect1, isect2}}
}

// intersectNear finds where the edge from a to b crosses the near
// plane z = plane, clamping the interpolation factor to [0, 1] in case
// of numerical error at the boundary.
func intersectNear(a, b math3d.Vec3, plane float64) math3d.Vec3 {
	t := (plane - a.Z) / (b.Z - a.Z)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Lerp(b, t)
}
