package main

import (
	"github.com/taigrr/occlude/pkg/math3d"
	"github.com/taigrr/occlude/pkg/models"
	"github.com/taigrr/occlude/pkg/occlude"
)

// meshOccluder adapts a models.Mesh into an occlude.Occluder. GLTFLoader
// reverses glTF's native CCW winding, so a face turned toward the camera
// winds clockwise as seen from the camera; that is the winding
// occlude.Projector's camera-space back-face test keeps, so Face passes
// the loader's indices through unchanged.
type meshOccluder struct {
	mesh      *models.Mesh
	transform math3d.Mat4
}

func newMeshOccluder(mesh *models.Mesh) *meshOccluder {
	return &meshOccluder{mesh: mesh, transform: math3d.Identity()}
}

func (o *meshOccluder) VertexCount() int   { return o.mesh.VertexCount() }
func (o *meshOccluder) TriangleCount() int { return o.mesh.TriangleCount() }

func (o *meshOccluder) Vertex(i int) math3d.Vec3 {
	return o.mesh.Vertices[i].Position
}

func (o *meshOccluder) Face(i int) [3]int {
	return o.mesh.Faces[i].V
}

func (o *meshOccluder) Transform() math3d.Mat4 { return o.transform }

func (o *meshOccluder) SetTransform(m math3d.Mat4) { o.transform = m }

var _ occlude.Occluder = (*meshOccluder)(nil)
