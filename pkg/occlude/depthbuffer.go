package occlude

// DepthBuffer is a single-channel w-buffer: it stores 1/w (the
// reciprocal of clip-space w) per pixel rather than a normalized device
// depth, so precision is distributed evenly with distance instead of
// crowding near the near plane the way a z-buffer does. Larger stored
// values mean closer to the camera.
type DepthBuffer struct {
	width, height int
	depth         []float64
}

// NewDepthBuffer creates a cleared depth buffer of the given
// dimensions.
func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigError{Field: "dimensions", Value: [2]int{width, height}, Reason: "width and height must be positive"}
	}
	d := &DepthBuffer{width: width, height: height, depth: make([]float64, width*height)}
	d.Clear()
	return d, nil
}

// Width returns the buffer's width in pixels.
func (d *DepthBuffer) Width() int { return d.width }

// Height returns the buffer's height in pixels.
func (d *DepthBuffer) Height() int { return d.height }

// Clear resets every pixel to 0, the "nothing occludes this pixel yet"
// value. Every valid 1/w an occluder can write is strictly positive, so
// 0 can never be mistaken for a real occluder depth.
func (d *DepthBuffer) Clear() {
	for i := range d.depth {
		d.depth[i] = 0
	}
}

// At returns the stored depth at (x, y). Out-of-bounds reads return 0,
// the same as an untouched pixel.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0
	}
	return d.depth[y*d.width+x]
}

// Raw returns the buffer's underlying row-major (y*width+x) storage.
// Callers must not retain or mutate it across a Render call.
func (d *DepthBuffer) Raw() []float64 { return d.depth }

// MergeMax writes invW at (x, y) if it is larger than what is currently
// stored, keeping the depth of whichever occluder is closest to the
// camera. Used exclusively by the occluder rasterization path.
func (d *DepthBuffer) MergeMax(x, y int, invW float64) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	i := y*d.width + x
	if invW > d.depth[i] {
		d.depth[i] = invW
	}
}
