package occlude

// OcclusionProbe tests whether a screen-space occludee triangle is
// fully hidden behind a DepthBuffer, using conservative, growing
// rounding: the tested footprint is never smaller than the triangle's
// true coverage, and each pixel's tested depth is the triangle's
// minimum across that pixel's footprint, so the probe never reports
// "occluded" when it might not be.
type OcclusionProbe struct {
	depth *DepthBuffer
}

// NewOcclusionProbe creates a probe reading from depth.
func NewOcclusionProbe(depth *DepthBuffer) *OcclusionProbe {
	return &OcclusionProbe{depth: depth}
}

// TestTriangle returns true if every pixel covered by the triangle is
// at or behind the stored depth, i.e. the triangle is fully occluded.
func (p *OcclusionProbe) TestTriangle(v0, v1, v2 screenVertex) bool {
	dx, dy, hasGradient := planeGradient(v0, v1, v2)
	occluded := true

	scanTriangle(v0, v1, v2, RoundGrow, func(s span) {
		if !occluded {
			return
		}
		invW := s.invWAtX0
		for x := s.x0; x < s.x1; x++ {
			depth := invW
			if hasGradient {
				depth = conservativeMin(invW, dx, dy)
			}
			if depth > p.depth.At(x, s.y) {
				occluded = false
				return
			}
			invW += s.invWStep
		}
	})

	return occluded
}

// conservativeMin extrapolates the four corners of a pixel whose
// center holds value center, given the triangle's constant (dx, dy)
// depth gradient, and returns the minimum of the four: the safe lower
// bound a probe must test against. Extrapolation across the enlarged
// RoundGrow footprint can push a corner below 0, which the w-buffer
// domain never produces; such values are clamped to 0.
func conservativeMin(center, dx, dy float64) float64 {
	hx, hy := dx*0.5, dy*0.5
	m := center - hx - hy
	if v := center + hx - hy; v < m {
		m = v
	}
	if v := center - hx + hy; v < m {
		m = v
	}
	if v := center + hx + hy; v < m {
		m = v
	}
	if m < 0 {
		m = 0
	}
	return m
}
