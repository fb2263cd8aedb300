package occlude

// Rasterizer writes occluder triangles into a DepthBuffer using
// conservative, shrinking rounding: a written pixel's stored depth is
// never smaller than the triangle's true maximum depth across that
// pixel's footprint, so an occluder never hides something it
// shouldn't.
type Rasterizer struct {
	depth *DepthBuffer
}

// NewRasterizer creates a Rasterizer that writes into depth.
func NewRasterizer(depth *DepthBuffer) *Rasterizer {
	return &Rasterizer{depth: depth}
}

// DrawTriangle rasterizes one screen-space occluder triangle.
func (r *Rasterizer) DrawTriangle(v0, v1, v2 screenVertex) {
	dx, dy, hasGradient := planeGradient(v0, v1, v2)

	scanTriangle(v0, v1, v2, RoundShrink, func(s span) {
		invW := s.invWAtX0
		for x := s.x0; x < s.x1; x++ {
			depth := invW
			if hasGradient {
				depth = conservativeMax(invW, dx, dy)
			}
			r.depth.MergeMax(x, s.y, depth)
			invW += s.invWStep
		}
	})
}

// conservativeMax extrapolates the four corners of a pixel whose
// center holds value center, given the triangle's constant (dx, dy)
// depth gradient, and returns the maximum of the four: the safe upper
// bound an occluder is allowed to claim.
func conservativeMax(center, dx, dy float64) float64 {
	hx, hy := dx*0.5, dy*0.5
	m := center - hx - hy
	if v := center + hx - hy; v > m {
		m = v
	}
	if v := center - hx + hy; v > m {
		m = v
	}
	if v := center + hx + hy; v > m {
		m = v
	}
	return m
}
