package occlude

import (
	"testing"

	"github.com/taigrr/occlude/pkg/math3d"
)

func testFrustum(t *testing.T) frustum {
	t.Helper()
	cam := newTestCamera(t, 1.0, 100)
	vp := cam.ProjectionMatrix().Mul(cam.ViewMatrix())
	return extractFrustum(vp)
}

func TestIntersectsAABBInsideFrustum(t *testing.T) {
	fr := testFrustum(t)
	min := math3d.V3(-0.5, -0.5, -10.5)
	max := math3d.V3(0.5, 0.5, -9.5)
	if !fr.intersectsAABB(min, max) {
		t.Fatalf("intersectsAABB() = false for a box directly ahead of the camera")
	}
}

func TestIntersectsAABBBehindCamera(t *testing.T) {
	fr := testFrustum(t)
	min := math3d.V3(-0.5, -0.5, 9.5)
	max := math3d.V3(0.5, 0.5, 10.5)
	if fr.intersectsAABB(min, max) {
		t.Fatalf("intersectsAABB() = true for a box entirely behind the camera")
	}
}

func TestIntersectsAABBFarOffToTheSide(t *testing.T) {
	fr := testFrustum(t)
	min := math3d.V3(1000, 1000, -10.5)
	max := math3d.V3(1001, 1001, -9.5)
	if fr.intersectsAABB(min, max) {
		t.Fatalf("intersectsAABB() = true for a box far outside the frustum's side planes")
	}
}

func TestIntersectsSphereInsideFrustum(t *testing.T) {
	fr := testFrustum(t)
	if !fr.intersectsSphere(math3d.V3(0, 0, -10), 1) {
		t.Fatalf("intersectsSphere() = false for a sphere directly ahead of the camera")
	}
}

func TestIntersectsSphereBehindCamera(t *testing.T) {
	fr := testFrustum(t)
	if fr.intersectsSphere(math3d.V3(0, 0, 10), 1) {
		t.Fatalf("intersectsSphere() = true for a sphere entirely behind the camera")
	}
}
