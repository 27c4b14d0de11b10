package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func assertVec3(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], tolerance, "component %d of %v", i, actual)
	}
}

func TestNewCameraLooksDownNegativeZ(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	assertVec3(t, mgl32.Vec3{0, 0, -1}, c.Front())
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.Equal(t, DefaultFieldOfView, c.FieldOfView)
	assert.Equal(t, DefaultMovementSpeed, c.MovementSpeed)
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})
	expected := mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})
	// Compared per element: the front vector's x is -4.37e-8 rather than 0,
	// which a relative comparison rejects.
	view := c.ViewMatrix()
	for i := range expected {
		assert.InDelta(t, expected[i], view[i], tolerance, "element %d", i)
	}

	// The origin sits three units in front of the camera.
	origin := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -3, origin.Z(), tolerance)
}

func TestProcessMovement(t *testing.T) {
	c := New(mgl32.Vec3{0, 0, 3})

	c.ProcessMovement(Forward, 1)
	assertVec3(t, mgl32.Vec3{0, 0, 0.5}, c.Position)

	c.ProcessMovement(Backward, 0.2)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Position)

	c.ProcessMovement(Right, 2)
	assertVec3(t, mgl32.Vec3{5, 0, 1}, c.Position)

	c.ProcessMovement(Left, 2)
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Position)
}

func TestProcessLookTurnsRight(t *testing.T) {
	c := New(mgl32.Vec3{})
	// 900 units at 0.1 sensitivity is a quarter turn to +x.
	c.ProcessLook(900, 0)

	assert.InDelta(t, 0, c.Yaw, tolerance)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Front())
	assertVec3(t, mgl32.Vec3{0, 0, 1}, c.Right())
}

func TestProcessLookClampsPitch(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.ProcessLook(0, 5000)
	assert.Equal(t, MaxPitch, c.Pitch)
	assert.Greater(t, c.Front().Y(), float32(0.99))
	assertVec3(t, mgl32.Vec3{1, 0, 0}, c.Right())

	c.ProcessLook(0, -10000)
	assert.Equal(t, -MaxPitch, c.Pitch)
	assert.Less(t, c.Front().Y(), float32(-0.99))
}

func TestBasisStaysOrthonormal(t *testing.T) {
	c := New(mgl32.Vec3{})
	c.ProcessLook(123, -77)

	assert.InDelta(t, 1, c.Front().Len(), tolerance)
	assert.InDelta(t, 1, c.Right().Len(), tolerance)
	assert.InDelta(t, 1, c.Up().Len(), tolerance)
	assert.InDelta(t, 0, c.Front().Dot(c.Right()), tolerance)
	assert.InDelta(t, 0, c.Front().Dot(c.Up()), tolerance)
	assert.InDelta(t, 0, c.Right().Dot(c.Up()), tolerance)
}

func TestProcessFieldOfViewClamps(t *testing.T) {
	c := New(mgl32.Vec3{})

	c.ProcessFieldOfView(10)
	assert.Equal(t, float32(35), c.FieldOfView)

	c.ProcessFieldOfView(100)
	assert.Equal(t, MinFieldOfView, c.FieldOfView)

	c.ProcessFieldOfView(-100)
	assert.Equal(t, MaxFieldOfView, c.FieldOfView)
}

func TestProjectionUsesFieldOfView(t *testing.T) {
	c := New(mgl32.Vec3{})
	expected := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, NearPlane, FarPlane)
	require.True(t, expected.ApproxEqualThreshold(c.Projection(800.0/600.0), tolerance))

	c.ProcessFieldOfView(25)
	expected = mgl32.Perspective(mgl32.DegToRad(20), 1, NearPlane, FarPlane)
	assert.True(t, expected.ApproxEqualThreshold(c.Projection(1), tolerance))
}

func TestLookTracker(t *testing.T) {
	var tracker LookTracker

	x, y := tracker.Offsets(400, 300)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = tracker.Offsets(410, 290)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(10), y)

	x, y = tracker.Offsets(405, 310)
	assert.Equal(t, float32(-5), x)
	assert.Equal(t, float32(-20), y)

	tracker.Reset()
	x, y = tracker.Offsets(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)
}
