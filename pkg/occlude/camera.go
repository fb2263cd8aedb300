package occlude

import (
	"math"

	"github.com/taigrr/occlude/pkg/math3d"
)

// Camera is the minimal contract this package needs from a camera: the
// view transform (world -> camera space), the projection transform
// (camera -> clip space), and the near clip distance used by the
// clipper. Camera math beyond this — position, orientation, field of
// view, lens parameters — belongs to the caller, not to this package.
type Camera interface {
	ViewMatrix() math3d.Mat4
	ProjectionMatrix() math3d.Mat4
	Near() float64
}

// PerspectiveCamera is a ready-to-use Camera implementation with cached
// view/projection matrices, adapted from the rasterizer demo this
// package grew out of. Callers may supply their own Camera instead; the
// renderer only depends on the interface.
type PerspectiveCamera struct {
	Position math3d.Vec3
	Pitch    float64
	Yaw      float64
	Roll     float64

	FOV         float64
	AspectRatio float64
	NearPlane   float64
	FarPlane    float64

	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewPerspectiveCamera creates a camera with the given projection
// parameters. fov is the vertical field of view in radians.
func NewPerspectiveCamera(fov, aspect, near, far float64) (*PerspectiveCamera, error) {
	if near <= 0 || far <= near {
		return nil, &ConfigError{Field: "near/far", Value: [2]float64{near, far}, Reason: "near must be positive and less than far"}
	}
	if fov <= 0 || fov >= math.Pi {
		return nil, &ConfigError{Field: "fov", Value: fov, Reason: "field of view must be in (0, pi) radians"}
	}
	return &PerspectiveCamera{
		FOV:         fov,
		AspectRatio: aspect,
		NearPlane:   near,
		FarPlane:    far,
		viewDirty:   true,
		projDirty:   true,
	}, nil
}

// SetPosition sets the camera's world-space position.
func (c *PerspectiveCamera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera's orientation (pitch, yaw, roll, radians).
func (c *PerspectiveCamera) SetRotation(pitch, yaw, roll float64) {
	c.Pitch, c.Yaw, c.Roll = pitch, yaw, roll
	c.viewDirty = true
}

// SetAspectRatio updates the aspect ratio, invalidating the cached
// projection matrix.
func (c *PerspectiveCamera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// Near returns the near clip distance.
func (c *PerspectiveCamera) Near() float64 { return c.NearPlane }

// ViewMatrix returns the cached world-to-camera transform.
func (c *PerspectiveCamera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		rot := math3d.RotateZ(-c.Roll).Mul(math3d.RotateX(-c.Pitch)).Mul(math3d.RotateY(-c.Yaw))
		trans := math3d.Translate(c.Position.Negate())
		c.viewMatrix = rot.Mul(trans)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the cached camera-to-clip transform.
func (c *PerspectiveCamera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
		c.projDirty = false
	}
	return c.projMatrix
}

// Forward returns the camera's forward direction in world space.
func (c *PerspectiveCamera) Forward() math3d.Vec3 {
	return math3d.V3(
		-math.Sin(c.Yaw)*math.Cos(c.Pitch),
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw)*math.Cos(c.Pitch),
	)
}

// LookAt points the camera at target from its current position.
func (c *PerspectiveCamera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()
	c.Pitch = math.Asin(dir.Y)
	c.Yaw = math.Atan2(-dir.X, -dir.Z)
	c.Roll = 0
	c.viewDirty = true
}
