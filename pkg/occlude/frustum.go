package occlude

import "github.com/taigrr/occlude/pkg/math3d"

// plane is a 3D plane Ax + By + Cz + D = 0, with Normal = (A, B, C).
type plane struct {
	normal math3d.Vec3
	d      float64
}

func (p *plane) normalize() {
	l := p.normal.Len()
	if l == 0 {
		return
	}
	p.normal = p.normal.Scale(1 / l)
	p.d /= l
}

func (p plane) distance(pt math3d.Vec3) float64 {
	return p.normal.Dot(pt) + p.d
}

// frustum is the view frustum's six planes, extracted from a combined
// view-projection matrix using the Gribb/Hartmann method. It exists
// purely as a cheap pre-pass ahead of the occlusion probe: a candidate
// entirely outside the frustum has no depth-buffer footprint at all, so
// it must never be reported "occluded" by the w-buffer alone.
type frustum struct {
	planes [6]plane
}

func extractFrustum(m math3d.Mat4) frustum {
	var f frustum
	f.planes[0] = plane{math3d.V3(m[3]+m[0], m[7]+m[4], m[11]+m[8]), m[15] + m[12]} // left
	f.planes[1] = plane{math3d.V3(m[3]-m[0], m[7]-m[4], m[11]-m[8]), m[15] - m[12]} // right
	f.planes[2] = plane{math3d.V3(m[3]+m[1], m[7]+m[5], m[11]+m[9]), m[15] + m[13]} // bottom
	f.planes[3] = plane{math3d.V3(m[3]-m[1], m[7]-m[5], m[11]-m[9]), m[15] - m[13]} // top
	f.planes[4] = plane{math3d.V3(m[3]+m[2], m[7]+m[6], m[11]+m[10]), m[15] + m[14]} // near
	f.planes[5] = plane{math3d.V3(m[3]-m[2], m[7]-m[6], m[11]-m[10]), m[15] - m[14]} // far
	for i := range f.planes {
		f.planes[i].normalize()
	}
	return f
}

// intersectsAABB returns true if any part of the world-space AABB
// [min, max] lies inside the frustum.
func (f frustum) intersectsAABB(min, max math3d.Vec3) bool {
	for _, pl := range f.planes {
		positive := math3d.V3(
			selectGE(pl.normal.X, max.X, min.X),
			selectGE(pl.normal.Y, max.Y, min.Y),
			selectGE(pl.normal.Z, max.Z, min.Z),
		)
		if pl.distance(positive) < 0 {
			return false
		}
	}
	return true
}

// intersectsSphere returns true if the world-space sphere intersects
// the frustum.
func (f frustum) intersectsSphere(center math3d.Vec3, radius float64) bool {
	for _, pl := range f.planes {
		if pl.distance(center) < -radius {
			return false
		}
	}
	return true
}

func selectGE(n, a, b float64) float64 {
	if n >= 0 {
		return a
	}
	return b
}
