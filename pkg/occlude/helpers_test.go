package occlude

import (
	"testing"

	"github.com/taigrr/occlude/pkg/math3d"
)

// newTestCamera builds a camera at the world origin looking down -Z,
// the convention clipToNear and Projector assume throughout this
// package's tests.
func newTestCamera(t *testing.T, near, far float64) *PerspectiveCamera {
	t.Helper()
	cam, err := NewPerspectiveCamera(1.2, 1.0, near, far)
	if err != nil {
		t.Fatalf("newTestCamera: %v", err)
	}
	return cam
}

// frontFacing returns a CCW-as-seen-from--Z triangle straddling the
// camera's forward axis at the given depth, sized so it's comfortably
// inside the view frustum of newTestCamera's default FOV.
func frontFacingTriangle(depth, size float64) (math3d.Vec3, math3d.Vec3, math3d.Vec3) {
	return math3d.V3(-size, -size, -depth),
		math3d.V3(0, size, -depth),
		math3d.V3(size, -size, -depth)
}
