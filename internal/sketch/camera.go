package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"spatialsketch/internal/space"
)

// Camera orbits the world origin. Yaw and pitch are in radians; yaw 0,
// pitch 0 puts the eye on +Z looking at the origin.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64 // current eye distance, world units
	target     float64 // zoom target distance

	Up   mgl32.Vec3
	near float64
}

// NewCamera places the eye where the whole window height spans the view at
// the origin plane, the usual sketch default.
func NewCamera(fbH int) Camera {
	d := float64(fbH) / 2 / math.Tan(CameraFovY/2)
	return Camera{
		Distance: d,
		target:   d,
		Up:       mgl32.Vec3{0, 1, 0},
		near:     d / 10,
	}
}

// Orbit rotates the eye by a mouse drag of (dx, dy) pixels.
func (c *Camera) Orbit(dx, dy float64) {
	c.Yaw -= dx * OrbitSensitivity
	c.Pitch = clampF(c.Pitch+dy*OrbitSensitivity, -CameraMaxPitch, CameraMaxPitch)
}

// Zoom scales the target distance by a scroll amount.
func (c *Camera) Zoom(scroll float64) {
	c.target *= math.Exp(-scroll * ZoomSensitivity * 0.5)
	if c.target < CameraMinDistance {
		c.target = CameraMinDistance
	}
}

// Update eases the eye distance toward the zoom target.
func (c *Camera) Update(dt float64) {
	rate := math.Max(math.Abs(c.target-c.Distance)*8, 1)
	c.Distance = approach(c.Distance, c.target, rate*dt)
}

func (c *Camera) Eye() mgl32.Vec3 {
	cp := math.Cos(c.Pitch)
	return mgl32.Vec3{
		float32(c.Distance * cp * math.Sin(c.Yaw)),
		float32(c.Distance * math.Sin(c.Pitch)),
		float32(c.Distance * cp * math.Cos(c.Yaw)),
	}
}

// EyeCoordinate and UpCoordinate expose the camera to the controller in world space.
func (c *Camera) EyeCoordinate() space.Coordinate {
	e := c.Eye()
	return space.Coordinate{X: float64(e[0]), Y: float64(e[1]), Z: float64(e[2])}
}

func (c *Camera) UpCoordinate() space.Coordinate {
	return space.Coordinate{X: float64(c.Up[0]), Y: float64(c.Up[1]), Z: float64(c.Up[2])}
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), mgl32.Vec3{}, c.Up)
}

// Projection keeps the far plane beyond the bounding sphere at any zoom.
func (c *Camera) Projection(fbW, fbH int, world float64) mgl32.Mat4 {
	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	far := c.Distance + world*OuterRadiusMul*1.5
	return mgl32.Perspective(float32(CameraFovY), aspect, float32(c.near), float32(far))
}
