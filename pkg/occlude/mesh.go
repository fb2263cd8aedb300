package occlude

import "github.com/taigrr/occlude/pkg/math3d"

// Occluder is a mesh that writes into the depth buffer. Vertex positions
// are local-space; Transform maps local space to world space. The
// camera-space backface test in Projector keeps a face whose vertices
// run clockwise as seen from the camera (counter-clockwise as seen from
// behind the face) and drops the opposite winding, so faces meant to be
// drawn must be wound that way.
type Occluder interface {
	VertexCount() int
	TriangleCount() int
	Vertex(i int) math3d.Vec3
	Face(i int) [3]int
	Transform() math3d.Mat4
}

// BoundKind selects which bounding-volume projection a Candidate uses.
type BoundKind int

const (
	// BoundBox projects the candidate's axis-aligned bounding box.
	BoundBox BoundKind = iota
	// BoundSphere projects the candidate's bounding sphere.
	BoundSphere
)

// Candidate is a bounding-volume occlusion query target. It carries no
// mesh geometry of its own — only the volume the probe tests against
// the depth buffer built by the occluders.
type Candidate struct {
	Kind      BoundKind
	Transform math3d.Mat4

	// Box bounds, in local space, used when Kind == BoundBox.
	Min, Max math3d.Vec3

	// Sphere bounds, in local space, used when Kind == BoundSphere.
	Center math3d.Vec3
	Radius float64

	// NeverCull forces the candidate to always be reported visible,
	// bypassing the probe entirely (e.g. the camera's own held item).
	NeverCull bool
}

// simpleOccluder is a slice-backed Occluder, useful for tests and for
// adapting any positions/faces pair without defining a type.
type simpleOccluder struct {
	verts     []math3d.Vec3
	faces     [][3]int
	transform math3d.Mat4
}

// NewOccluder builds an Occluder from flat vertex positions and
// triangle index triples. transform maps local space to world space.
func NewOccluder(verts []math3d.Vec3, faces [][3]int, transform math3d.Mat4) (Occluder, error) {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(verts) {
				return nil, &ShapeError{Index: i, Reason: "face index out of range"}
			}
		}
	}
	return &simpleOccluder{verts: verts, faces: faces, transform: transform}, nil
}

func (o *simpleOccluder) VertexCount() int         { return len(o.verts) }
func (o *simpleOccluder) TriangleCount() int        { return len(o.faces) }
func (o *simpleOccluder) Vertex(i int) math3d.Vec3  { return o.verts[i] }
func (o *simpleOccluder) Face(i int) [3]int         { return o.faces[i] }
func (o *simpleOccluder) Transform() math3d.Mat4    { return o.transform }
