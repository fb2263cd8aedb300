package occlude

// EdgeData holds the per-scanline interpolation state for a triangle
// scan: the long edge (spanning the full Y range) and, for whichever
// scanline is being visited, the short edge covering either the top or
// bottom half. It tracks which side the long edge sits on so left/right
// span bounds can be resolved once per triangle instead of per row.
type EdgeData struct {
	long        Edge
	top, mid, bot screenVertex
	longIsRight bool
}

// NewEdgeData sorts the triangle's vertices by Y and builds the long
// edge and orientation needed to scan it. ok is false for a zero-height
// (degenerate) triangle.
func NewEdgeData(v0, v1, v2 screenVertex) (EdgeData, bool) {
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}
	if v1.Y > v2.Y {
		v1, v2 = v2, v1
	}
	if v0.Y > v1.Y {
		v0, v1 = v1, v0
	}

	if v0.Y == v2.Y {
		return EdgeData{}, false
	}

	long := NewEdge(v0, v2)
	longXAtMid, _ := long.At(v1.Y)
	// longIsRight: the middle vertex sits to the left of the long edge,
	// which means the long edge is the right boundary of the triangle.
	longIsRight := v1.X < longXAtMid

	return EdgeData{long: long, top: v0, mid: v1, bot: v2, longIsRight: longIsRight}, true
}

// span describes one horizontal run of covered pixels on a scanline,
// already rounded to integer columns, along with the 1/w depth and its
// per-column step so the caller can interpolate without recomputing.
type span struct {
	y          int
	x0, x1     int // inclusive start, exclusive end
	invWAtX0   float64
	invWStep   float64
}

// spanFunc is invoked once per covered scanline span during a triangle
// scan.
type spanFunc func(s span)

// scanTriangle decomposes a screen-space triangle into long/short-edge
// scanline spans and invokes fn for each one. round selects whether the
// rasterized footprint shrinks (occluder path, RoundShrink) or grows
// (occludee path, RoundGrow); see Rounding.
func scanTriangle(v0, v1, v2 screenVertex, round Rounding, fn spanFunc) {
	ed, ok := NewEdgeData(v0, v1, v2)
	if !ok {
		return
	}

	scanHalf := func(top, bottom screenVertex) {
		if top.Y == bottom.Y {
			return
		}
		short := NewEdge(top, bottom)
		yStart := round.Left(top.Y)
		yEnd := round.Right(bottom.Y)

		for y := yStart; y < yEnd; y++ {
			fy := float64(y) + 0.5
			if fy < ed.long.Y0 || fy > ed.long.Y1 {
				continue
			}
			lx, lw := ed.long.At(fy)
			sx, sw := short.At(fy)

			leftX, leftW, rightX, rightW := lx, lw, sx, sw
			if ed.longIsRight {
				leftX, leftW, rightX, rightW = sx, sw, lx, lw
			}

			x0 := round.Left(leftX)
			x1 := round.Right(rightX)
			if x1 <= x0 {
				continue
			}

			width := rightX - leftX
			var step float64
			if width != 0 {
				step = (rightW - leftW) / width
			}
			invWAtX0 := leftW + (float64(x0)+0.5-leftX)*step

			fn(span{y: y, x0: x0, x1: x1, invWAtX0: invWAtX0, invWStep: step})
		}
	}

	scanHalf(ed.top, ed.mid)
	scanHalf(ed.mid, ed.bot)
}

// planeGradient solves for the constant (dInvW/dx, dInvW/dy) of the
// plane interpolating 1/w linearly across the triangle's three screen
// vertices. It is used to extrapolate depth to the four corners of a
// pixel for conservative coverage testing, rather than trusting only
// the pixel-center sample. ok is false for a degenerate (zero-area)
// triangle, in which case the caller should skip extrapolation.
func planeGradient(v0, v1, v2 screenVertex) (dx, dy float64, ok bool) {
	e1x, e1y := v1.X-v0.X, v1.Y-v0.Y
	e2x, e2y := v2.X-v0.X, v2.Y-v0.Y
	d1 := v1.InvW - v0.InvW
	d2 := v2.InvW - v0.InvW

	denom := e1x*e2y - e2x*e1y
	if denom == 0 {
		return 0, 0, false
	}

	dx = (d1*e2y - d2*e1y) / denom
	dy = (d2*e1x - d1*e2x) / denom
	return dx, dy, true
}
