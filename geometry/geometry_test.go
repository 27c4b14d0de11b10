package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStrideAndOffsets(t *testing.T) {
	assert.Equal(t, int32(32), PositionNormalUVLayout.Stride())
	assert.Equal(t, []int{0, 12, 24}, PositionNormalUVLayout.Offsets())

	assert.Equal(t, int32(16), ScreenLayout.Stride())
	assert.Equal(t, []int{0, 8}, ScreenLayout.Offsets())

	assert.Equal(t, int32(12), PositionLayout.Stride())
	assert.Equal(t, []int{0}, PositionLayout.Offsets())

	assert.Equal(t, int32(0), Layout{}.Stride())
}

func TestLiteralDataMatchesLayouts(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		layout   Layout
		count    int
	}{
		{"triangle", TriangleVertices, PositionLayout, 3},
		{"colored triangle", ColoredTriangleVertices, PositionColorLayout, 3},
		{"textured quad", TexturedQuadVertices, TexturedQuadLayout, 4},
		{"cube", CubeVertices, PositionNormalUVLayout, 36},
		{"shadow cube", ShadowCubeVertices, PositionNormalUVLayout, 36},
		{"stencil floor", StencilFloorVertices, PositionUVLayout, 6},
		{"gamma floor", GammaFloorVertices, PositionNormalUVLayout, 6},
		{"shadow floor", ShadowFloorVertices, PositionNormalUVLayout, 6},
		{"screen quad", ScreenQuadVertices, ScreenLayout, 6},
		{"debug quad", DebugQuadVertices, PositionUVLayout, 4},
		{"instance quad", InstanceQuadVertices, Point2DColorLayout, 6},
		{"house points", HousePoints, Point2DColorLayout, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := tt.layout.Components()
			require.Zero(t, len(tt.vertices)%components)
			assert.Equal(t, tt.count, len(tt.vertices)/components)
		})
	}
}

func TestTexturedQuadIndicesInRange(t *testing.T) {
	for _, index := range TexturedQuadIndices {
		assert.Less(t, index, uint32(4))
	}
}

func vertexAt(vertices []float32, stride, i int) []float32 {
	return vertices[i*stride : (i+1)*stride]
}

func triangleNormal(vertices []float32, stride, first int) mgl32.Vec3 {
	var p [3]mgl32.Vec3
	for i := range p {
		v := vertexAt(vertices, stride, first+i)
		p[i] = mgl32.Vec3{v[0], v[1], v[2]}
	}
	return p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
}

func TestShadowCubeWindingAgreesWithNormals(t *testing.T) {
	for tri := 0; tri < 12; tri++ {
		v := vertexAt(ShadowCubeVertices, CubeStride, tri*3)
		normal := mgl32.Vec3{v[3], v[4], v[5]}
		assert.Greater(t, triangleNormal(ShadowCubeVertices, CubeStride, tri*3).Dot(normal), float32(0), "triangle %d", tri)
	}
}

func TestPlaneNormalsPointUp(t *testing.T) {
	for _, plane := range [][]float32{GammaFloorVertices, ShadowFloorVertices} {
		for i := 0; i < 6; i++ {
			v := vertexAt(plane, CubeStride, i)
			assert.Equal(t, []float32{0, 1, 0}, v[3:6])
		}
	}
}

func TestPlaneTextureRepeat(t *testing.T) {
	plane := Plane(25, -0.5, 25)
	last := vertexAt(plane, CubeStride, 5)
	assert.Equal(t, []float32{25, -0.5, -25, 0, 1, 0, 25, 25}, last)
}

func TestCubeNormalsAreUnitAxes(t *testing.T) {
	for i := 0; i < 36; i++ {
		v := vertexAt(CubeVertices, CubeStride, i)
		normal := mgl32.Vec3{v[3], v[4], v[5]}
		assert.InDelta(t, 1, normal.Len(), 1e-6)
		for axis := 0; axis < 3; axis++ {
			if normal[axis] != 0 {
				assert.InDelta(t, normal[axis]*0.5, v[axis], 1e-6, "vertex %d lies on its face", i)
			}
		}
	}
}

func TestSelect(t *testing.T) {
	positions := Select(CubeVertices, CubeStride, [2]int{0, 3})
	assert.Len(t, positions, 36*3)
	assert.Equal(t, []float32{-0.5, -0.5, -0.5, 0.5, -0.5, -0.5}, positions[:6])

	textured := Select(CubeVertices, CubeStride, [2]int{0, 3}, [2]int{6, 8})
	assert.Len(t, textured, 36*5)
	// Third vertex of the back face.
	assert.Equal(t, []float32{0.5, 0.5, -0.5, 1, 1}, textured[10:15])
}

func TestStencilFloor(t *testing.T) {
	assert.Equal(t, []float32{
		5, -0.5, 5, 2, 0,
		-5, -0.5, 5, 0, 0,
		-5, -0.5, -5, 0, 2,
		5, -0.5, 5, 2, 0,
		-5, -0.5, -5, 0, 2,
		5, -0.5, -5, 2, 2,
	}, StencilFloorVertices)
}

func TestGridOffsets(t *testing.T) {
	offsets := GridOffsets(2, 0.1)
	require.Len(t, offsets, 100)

	assert.InDelta(t, -0.9, offsets[0].X(), 1e-6)
	assert.InDelta(t, -0.9, offsets[0].Y(), 1e-6)
	assert.InDelta(t, -0.7, offsets[1].X(), 1e-6)
	assert.InDelta(t, -0.9, offsets[1].Y(), 1e-6)
	assert.InDelta(t, 0.9, offsets[99].X(), 1e-6)
	assert.InDelta(t, 0.9, offsets[99].Y(), 1e-6)
}

func TestGridOffsetsRejectsNonPositiveStep(t *testing.T) {
	assert.Empty(t, GridOffsets(0, 0.1))
	assert.Empty(t, GridOffsets(-2, 0.1))
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, []float32{1, 2, 3, 4}, Flatten([]mgl32.Vec2{{1, 2}, {3, 4}}))
}

func TestCubePositions(t *testing.T) {
	assert.Len(t, CubePositions, 10)
	assert.Equal(t, mgl32.Vec3{-1.3, 1.0, -1.5}, CubePositions[9])
}
