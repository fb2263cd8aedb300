package occlude

import (
	"math"

	"github.com/taigrr/occlude/pkg/math3d"
)

// boxFaces indexes an 8-corner AABB into 12 triangles wound clockwise
// as seen from outside the box, the winding Projector keeps for a face
// turned toward the camera.
var boxFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3}, // -Z
	{5, 4, 7}, {5, 7, 6}, // +Z
	{4, 0, 3}, {4, 3, 7}, // -X
	{1, 5, 6}, {1, 6, 2}, // +X
	{3, 2, 6}, {3, 6, 7}, // +Y
	{4, 5, 1}, {4, 1, 0}, // -Y
}

func boxCorners(min, max math3d.Vec3) [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: min.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z},
		{X: min.X, Y: max.Y, Z: max.Z},
	}
}

// BoundingVolumeProjection produces the occludee triangles for a
// Candidate's bounding volume, ready to hand to a Projector (box) or
// directly to the probe (sphere, already in screen space).
type BoundingVolumeProjection struct{}

// BoxTriangles returns the 12 world-space triangles of an AABB's
// surface after transforming its 8 corners by m.
func (BoundingVolumeProjection) BoxTriangles(min, max math3d.Vec3, m math3d.Mat4) [][3]math3d.Vec3 {
	corners := boxCorners(min, max)
	for i := range corners {
		corners[i] = m.MulVec3(corners[i])
	}
	tris := make([][3]math3d.Vec3, len(boxFaces))
	for i, f := range boxFaces {
		tris[i] = [3]math3d.Vec3{corners[f[0]], corners[f[1]], corners[f[2]]}
	}
	return tris
}

// SphereTriangles approximates a bounding sphere's screen silhouette as
// an N-sided polygon fan in screen space, using the sphere's near-point
// depth (the point on the sphere closest to the camera) for every
// vertex so the footprint is conservatively biased toward "visible"
// rather than "occluded". ok is false when the sphere intersects the
// near plane; per the safe-side rule such a candidate must be treated
// as visible without further testing.
func (BoundingVolumeProjection) SphereTriangles(center math3d.Vec3, radius float64, m math3d.Mat4, camera Camera, width, height, sides int) ([][3]screenVertex, bool) {
	worldCenter := m.MulVec3(center)
	camCenter := camera.ViewMatrix().MulVec3(worldCenter)

	dist := -camCenter.Z
	if dist-radius <= camera.Near() {
		return nil, false
	}

	proj := camera.ProjectionMatrix()
	centerClip := proj.MulVec4(math3d.V4FromV3(camCenter, 1))
	if centerClip.W == 0 {
		return nil, false
	}
	clipX := float64(width - 1)
	clipY := float64(height - 1)
	cx := (centerClip.X/centerClip.W + 1) * 0.5 * clipX
	cy := (1 - centerClip.Y/centerClip.W) * 0.5 * clipY

	edgeCam := math3d.V3(camCenter.X+radius, camCenter.Y, camCenter.Z)
	edgeClip := proj.MulVec4(math3d.V4FromV3(edgeCam, 1))
	var screenRadius float64
	if edgeClip.W != 0 {
		ex := (edgeClip.X/edgeClip.W + 1) * 0.5 * clipX
		screenRadius = math.Abs(ex - cx)
	}

	nearInvW := 1.0 / (dist - radius)

	if sides < 3 {
		sides = 3
	}
	rim := make([]screenVertex, sides)
	for i := range rim {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		rim[i] = screenVertex{
			X:    cx + screenRadius*math.Cos(theta),
			Y:    cy + screenRadius*math.Sin(theta),
			InvW: nearInvW,
		}
	}
	hub := screenVertex{X: cx, Y: cy, InvW: nearInvW}

	tris := make([][3]screenVertex, sides)
	for i := range tris {
		tris[i] = [3]screenVertex{hub, rim[i], rim[(i+1)%sides]}
	}
	return tris, true
}
