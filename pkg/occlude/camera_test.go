package occlude

import (
	"math"
	"testing"

	"github.com/taigrr/occlude/pkg/math3d"
)

func TestPerspectiveCameraViewMatrixCachesUntilDirty(t *testing.T) {
	cam, err := NewPerspectiveCamera(1.0, 1.0, 0.1, 100)
	if err != nil {
		t.Fatalf("NewPerspectiveCamera: %v", err)
	}
	m1 := cam.ViewMatrix()
	m2 := cam.ViewMatrix()
	if m1 != m2 {
		t.Fatalf("ViewMatrix changed without a mutation")
	}
	cam.SetPosition(math3d.V3(1, 2, 3))
	m3 := cam.ViewMatrix()
	if m3 == m1 {
		t.Fatalf("ViewMatrix did not change after SetPosition")
	}
}

func TestPerspectiveCameraProjectionMatrixCachesUntilDirty(t *testing.T) {
	cam, _ := NewPerspectiveCamera(1.0, 1.0, 0.1, 100)
	p1 := cam.ProjectionMatrix()
	cam.SetAspectRatio(2.0)
	p2 := cam.ProjectionMatrix()
	if p1 == p2 {
		t.Fatalf("ProjectionMatrix did not change after SetAspectRatio")
	}
}

func TestPerspectiveCameraNear(t *testing.T) {
	cam, _ := NewPerspectiveCamera(1.0, 1.0, 0.5, 100)
	if cam.Near() != 0.5 {
		t.Fatalf("Near() = %v, want 0.5", cam.Near())
	}
}

func TestPerspectiveCameraLookAtFacesTarget(t *testing.T) {
	cam, _ := NewPerspectiveCamera(1.0, 1.0, 0.1, 100)
	cam.SetPosition(math3d.V3(0, 0, 5))
	cam.LookAt(math3d.Zero3())

	fwd := cam.Forward()
	want := math3d.V3(0, 0, -1)
	const eps = 1e-6
	if math.Abs(fwd.X-want.X) > eps || math.Abs(fwd.Y-want.Y) > eps || math.Abs(fwd.Z-want.Z) > eps {
		t.Fatalf("Forward() = %v, want %v", fwd, want)
	}
}
