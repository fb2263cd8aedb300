package occlude

import (
	"fmt"
	"log/slog"

	"github.com/taigrr/occlude/pkg/math3d"
)

// Stats accumulates per-call counters for diagnostics and benchmarking.
// It is reset at the start of every Render call.
type Stats struct {
	OccludersTested        int
	OccluderTrianglesDrawn int
	CandidatesTested       int
	CandidatesCulled       int
	CandidatesVisible      int
	NumericWarnings        int
}

// Renderer is the package facade: it orchestrates Render (rasterize
// occluders into a w-buffer) and Cull (probe candidates against that
// buffer) over the Clipper, Projector, Rasterizer, OcclusionProbe and
// BoundingVolumeProjection components. It is a pure function of
// (camera, occluders, candidates) into (depth buffer state, visibility
// list): no goroutines, no suspension points, no shared mutable state
// beyond the depth buffer itself.
type Renderer struct {
	camera        Camera
	depth         *DepthBuffer
	rasterizer    *Rasterizer
	probe         *OcclusionProbe
	projector     *Projector
	bounds        BoundingVolumeProjection
	width, height int
	sphereSides   int
	logger        *slog.Logger

	Stats Stats
}

// NewRenderer creates a Renderer targeting a width x height depth
// buffer for camera. logger may be nil, in which case slog.Default is
// used for NumericWarning reporting.
func NewRenderer(camera Camera, width, height int, logger *slog.Logger) (*Renderer, error) {
	if camera == nil {
		return nil, &ConfigError{Field: "camera", Value: nil, Reason: "camera must not be nil"}
	}
	depth, err := NewDepthBuffer(width, height)
	if err != nil {
		return nil, err
	}
	projector, err := NewProjector(camera, width, height)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		camera:      camera,
		depth:       depth,
		rasterizer:  NewRasterizer(depth),
		probe:       NewOcclusionProbe(depth),
		projector:   projector,
		width:       width,
		height:      height,
		sphereSides: 12,
		logger:      logger,
	}, nil
}

// Width returns the depth buffer's width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the depth buffer's height in pixels.
func (r *Renderer) Height() int { return r.height }

// At returns the w-buffer value stored at (x, y) after the most recent
// Render call.
func (r *Renderer) At(x, y int) float64 { return r.depth.At(x, y) }

// Depth returns the full row-major (y*width+x) depth buffer contents
// after the most recent Render call. The returned slice aliases the
// renderer's internal storage and must not be retained across the next
// Render call.
func (r *Renderer) Depth() []float64 { return r.depth.Raw() }

// Render clears the depth buffer and rasterizes every occluder's
// triangles into it. An empty occluder list is a silent no-op. A
// malformed occluder (a face index out of range) halts processing and
// returns a *ShapeError; occluders already rasterized remain in the
// buffer.
func (r *Renderer) Render(occluders []Occluder) error {
	r.depth.Clear()
	r.Stats = Stats{}

	if len(occluders) == 0 {
		return nil
	}

	buf := getTriangleBuf()
	defer putTriangleBuf(buf)

	for oi, occ := range occluders {
		r.Stats.OccludersTested++
		transform := occ.Transform()

		for i := 0; i < occ.TriangleCount(); i++ {
			face := occ.Face(i)
			for _, idx := range face {
				if idx < 0 || idx >= occ.VertexCount() {
					return &ShapeError{Index: oi, Reason: "face index out of range"}
				}
			}

			w0 := transform.MulVec3(occ.Vertex(face[0]))
			w1 := transform.MulVec3(occ.Vertex(face[1]))
			w2 := transform.MulVec3(occ.Vertex(face[2]))

			*buf = r.projector.BuildTrianglesInto((*buf)[:0], w0, w1, w2)
			for _, tri := range *buf {
				if degenerateScreen(tri) {
					r.Stats.NumericWarnings++
					w := NumericWarning{Op: "render", Reason: fmt.Sprintf("degenerate triangle: occluder %d face %d", oi, i)}
					r.logger.Warn(w.String())
					continue
				}
				r.rasterizer.DrawTriangle(tri[0], tri[1], tri[2])
				r.Stats.OccluderTrianglesDrawn++
			}
		}
	}
	return nil
}

// Cull probes each candidate against the depth buffer built by the most
// recent Render call and returns, in input order, whether each one is
// visible. An empty candidate list returns (nil, nil).
func (r *Renderer) Cull(candidates []Candidate) ([]bool, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	vp := r.camera.ProjectionMatrix().Mul(r.camera.ViewMatrix())
	fr := extractFrustum(vp)

	visible := make([]bool, len(candidates))
	for i, c := range candidates {
		r.Stats.CandidatesTested++
		visible[i] = r.cullOne(c, fr)
		if visible[i] {
			r.Stats.CandidatesVisible++
		} else {
			r.Stats.CandidatesCulled++
		}
	}
	return visible, nil
}

func (r *Renderer) cullOne(c Candidate, fr frustum) bool {
	if c.NeverCull {
		return true
	}

	switch c.Kind {
	case BoundSphere:
		worldCenter := c.Transform.MulVec3(c.Center)
		if !fr.intersectsSphere(worldCenter, c.Radius) {
			return true
		}
		tris, ok := r.bounds.SphereTriangles(c.Center, c.Radius, c.Transform, r.camera, r.width, r.height, r.sphereSides)
		if !ok {
			return true // near-plane intersection: safe side
		}
		return r.anyVisibleScreen(tris)

	default: // BoundBox
		worldMin, worldMax := transformAABB(c.Min, c.Max, c.Transform)
		if !fr.intersectsAABB(worldMin, worldMax) {
			return true
		}
		if r.boxIntersectsNear(c.Min, c.Max, c.Transform) {
			return true // safe side
		}
		worldTris := r.bounds.BoxTriangles(c.Min, c.Max, c.Transform)
		return r.anyVisibleWorld(worldTris)
	}
}

// anyVisibleScreen reports whether at least one already-screen-space
// triangle is not fully occluded; a candidate is culled only if every
// emitted triangle is fully occluded.
func (r *Renderer) anyVisibleScreen(tris [][3]screenVertex) bool {
	for _, t := range tris {
		if !r.probe.TestTriangle(t[0], t[1], t[2]) {
			return true
		}
	}
	return false
}

func (r *Renderer) anyVisibleWorld(tris [][3]math3d.Vec3) bool {
	buf := getTriangleBuf()
	defer putTriangleBuf(buf)

	for _, t := range tris {
		*buf = r.projector.BuildTrianglesInto((*buf)[:0], t[0], t[1], t[2])
		for _, sv := range *buf {
			if degenerateScreen(sv) {
				r.Stats.NumericWarnings++
				w := NumericWarning{Op: "cull", Reason: "degenerate probe triangle"}
				r.logger.Warn(w.String())
				continue
			}
			if !r.probe.TestTriangle(sv[0], sv[1], sv[2]) {
				return true
			}
		}
	}
	return false
}

func (r *Renderer) boxIntersectsNear(min, max math3d.Vec3, transform math3d.Mat4) bool {
	view := r.camera.ViewMatrix()
	near := r.camera.Near()
	for _, c := range boxCorners(min, max) {
		camZ := view.MulVec3(transform.MulVec3(c)).Z
		if camZ > -near {
			return true
		}
	}
	return false
}

func transformAABB(min, max math3d.Vec3, m math3d.Mat4) (math3d.Vec3, math3d.Vec3) {
	corners := boxCorners(min, max)
	wmin := m.MulVec3(corners[0])
	wmax := wmin
	for _, c := range corners[1:] {
		w := m.MulVec3(c)
		wmin = wmin.Min(w)
		wmax = wmax.Max(w)
	}
	return wmin, wmax
}

func degenerateScreen(tri [3]screenVertex) bool {
	area := (tri[1].X-tri[0].X)*(tri[2].Y-tri[0].Y) - (tri[2].X-tri[0].X)*(tri[1].Y-tri[0].Y)
	return area == 0
}
