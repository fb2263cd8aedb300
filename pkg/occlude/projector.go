package occlude

import "github.com/taigrr/occlude/pkg/math3d"

// Projector turns a world-space triangle into zero or more screen-space
// triangles ready for scanning: it transforms to camera space,
// back-face culls, clips against the near plane, and projects the
// survivors to screen coordinates carrying 1/w depth.
type Projector struct {
	camera        Camera
	width, height int
}

// NewProjector creates a Projector targeting a width x height screen.
func NewProjector(camera Camera, width, height int) (*Projector, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Field: "dimensions", Value: [2]int{width, height}, Reason: "width and height must be positive"}
	}
	return &Projector{camera: camera, width: width, height: height}, nil
}

// BuildTriangles projects one world-space triangle into the screen
// triangles it decomposes into after culling and clipping. It returns
// nil if the triangle is entirely back-facing or entirely behind the
// near plane.
func (p *Projector) BuildTriangles(w0, w1, w2 math3d.Vec3) [][3]screenVertex {
	return p.BuildTrianglesInto(nil, w0, w1, w2)
}

// BuildTrianglesInto is BuildTriangles but appends to (and returns) dst,
// letting callers reuse a pooled buffer across many triangles instead
// of allocating one per call.
func (p *Projector) BuildTrianglesInto(dst [][3]screenVertex, w0, w1, w2 math3d.Vec3) [][3]screenVertex {
	view := p.camera.ViewMatrix()
	c0 := view.MulVec3(w0)
	c1 := view.MulVec3(w1)
	c2 := view.MulVec3(w2)

	if p.backFacing(c0, c1, c2) {
		return dst
	}

	clipped := clipToNear(camTriangle{c0, c1, c2}, p.camera.Near())
	if len(clipped) == 0 {
		return dst
	}

	proj := p.camera.ProjectionMatrix()
	for _, tri := range clipped {
		sv, ok := p.project(tri, proj)
		if ok {
			dst = append(dst, sv)
		}
	}
	return dst
}

// backFacing performs the camera-space back-face test before clipping:
// the camera sits at the origin in camera space, so a vertex's own
// position doubles as the view ray to it.
func (p *Projector) backFacing(c0, c1, c2 math3d.Vec3) bool {
	e1 := c1.Sub(c0)
	e2 := c2.Sub(c0)
	facing := e2.Cross(e1).Dot(c0)
	return facing >= 0
}

// project maps one clipped camera-space triangle through the
// projection matrix into screen space, carrying 1/w as the w-buffer
// depth.
func (p *Projector) project(tri camTriangle, proj math3d.Mat4) ([3]screenVertex, bool) {
	clipX := float64(p.width - 1)
	clipY := float64(p.height - 1)
	var sv [3]screenVertex
	for i, v := range tri {
		clip := proj.MulVec4(math3d.V4FromV3(v, 1))
		if clip.W == 0 {
			return sv, false
		}
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W
		sv[i] = screenVertex{
			X:    (ndcX + 1) * 0.5 * clipX,
			Y:    (1 - ndcY) * 0.5 * clipY,
			InvW: 1 / clip.W,
		}
	}
	return sv, true
}
