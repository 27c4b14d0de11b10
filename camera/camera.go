package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
)

const (
	DefaultYaw             float32 = -90
	DefaultPitch           float32 = 0
	DefaultMovementSpeed   float32 = 2.5
	DefaultLookSensitivity float32 = 0.1
	DefaultFieldOfView     float32 = 45

	MinFieldOfView float32 = 1
	MaxFieldOfView float32 = 45
	MaxPitch       float32 = 89

	NearPlane float32 = 0.1
	FarPlane  float32 = 100
)

// Camera is a fly camera driven by Euler angles. Yaw is measured from the
// x axis in the x/z plane and pitch from that plane towards y, both in degrees.
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	MovementSpeed   float32
	LookSensitivity float32
	FieldOfView     float32

	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3
}

func New(position mgl32.Vec3) *Camera {
	return NewWithOrientation(position, mgl32.Vec3{0, 1, 0}, DefaultYaw, DefaultPitch)
}

func NewWithOrientation(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		Position:        position,
		WorldUp:         worldUp,
		Yaw:             yaw,
		Pitch:           pitch,
		MovementSpeed:   DefaultMovementSpeed,
		LookSensitivity: DefaultLookSensitivity,
		FieldOfView:     DefaultFieldOfView,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Up() mgl32.Vec3    { return c.up }
func (c *Camera) Right() mgl32.Vec3 { return c.right }

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// Projection is the perspective projection for the current field of view.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FieldOfView), aspect, NearPlane, FarPlane)
}

func (c *Camera) ProcessMovement(movement Movement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch movement {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

func (c *Camera) ProcessLook(xOffset, yOffset float32) {
	c.Yaw += xOffset * c.LookSensitivity
	c.Pitch += yOffset * c.LookSensitivity

	// Past 90 degrees the view flips and LookAt degenerates.
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)

	c.updateVectors()
}

func (c *Camera) ProcessFieldOfView(offset float32) {
	c.FieldOfView = mgl32.Clamp(c.FieldOfView-offset, MinFieldOfView, MaxFieldOfView)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	direction := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = direction.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
