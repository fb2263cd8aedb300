package occlude

import (
	"testing"

	"github.com/taigrr/occlude/pkg/math3d"
)

func TestNewOccluderValidFaces(t *testing.T) {
	verts := []math3d.Vec3{
		math3d.V3(0, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 1, 0),
	}
	occ, err := NewOccluder(verts, [][3]int{{0, 1, 2}}, math3d.Identity())
	if err != nil {
		t.Fatalf("NewOccluder: %v", err)
	}
	if occ.VertexCount() != 3 {
		t.Fatalf("VertexCount() = %d, want 3", occ.VertexCount())
	}
	if occ.TriangleCount() != 1 {
		t.Fatalf("TriangleCount() = %d, want 1", occ.TriangleCount())
	}
	if occ.Face(0) != [3]int{0, 1, 2} {
		t.Fatalf("Face(0) = %v, want {0,1,2}", occ.Face(0))
	}
	if occ.Vertex(1) != verts[1] {
		t.Fatalf("Vertex(1) = %v, want %v", occ.Vertex(1), verts[1])
	}
}

func TestNewOccluderRejectsNegativeIndex(t *testing.T) {
	verts := []math3d.Vec3{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0)}
	_, err := NewOccluder(verts, [][3]int{{-1, 0, 1}}, math3d.Identity())
	if err == nil {
		t.Fatalf("expected error for negative index")
	}
}
