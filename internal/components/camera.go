package components

import (
	"math"

	"github.com/mironco/blockbuilder/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Camera is a first-person view placed at its GameObject's position. Yaw 0
// looks down +X and yaw 90 looks down +Z.
type Camera struct {
	engine.BaseComponent
	FOV        float32
	Yaw        float32 // degrees
	Pitch      float32 // degrees, clamped to ±MaxPitch
	LookSpeed  float32 // degrees per pixel of mouse motion
	Projection rl.CameraProjection
}

const MaxPitch = 89.0

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Yaw:        -90.0,
		LookSpeed:  0.1,
		Projection: rl.CameraPerspective,
	}
}

// Rotate applies a mouse delta in pixels.
func (c *Camera) Rotate(dx, dy float32) {
	c.Yaw += dx * c.LookSpeed
	c.Pitch -= dy * c.LookSpeed
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

func (c *Camera) Position() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.WorldPosition()
}

// Direction is the unit look vector.
func (c *Camera) Direction() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
}

// Left is the unit vector to the camera's left in the horizontal plane,
// up × forward.
func (c *Camera) Left() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	return rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
}

// LookAt points the camera along dir. A zero dir is ignored.
func (c *Camera) LookAt(dir rl.Vector3) {
	if rl.Vector3Length(dir) == 0 {
		return
	}
	dir = rl.Vector3Normalize(dir)
	c.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X)) * 180 / math.Pi)
	c.Pitch = float32(math.Asin(float64(dir.Y)) * 180 / math.Pi)
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	pos := c.Position()
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, c.Direction()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
