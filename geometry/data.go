package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Common layouts for the literal data below.
var (
	PositionLayout      = Layout{{Location: 0, Size: 3}}
	PositionColorLayout = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}}
	PositionUVLayout    = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 2}}
	// PositionNormalUVLayout matches CubeVertices and the lit floor planes.
	PositionNormalUVLayout = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}}
	// ScreenLayout is a 2D position followed by a texture coordinate.
	ScreenLayout = Layout{{Location: 0, Size: 2}, {Location: 1, Size: 2}}
	// Point2DColorLayout is a 2D position followed by an RGB colour.
	Point2DColorLayout = Layout{{Location: 0, Size: 2}, {Location: 1, Size: 3}}
)

// TriangleVertices is a single triangle in normalized device coordinates.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// ColoredTriangleVertices has a red, a green and a blue corner.
var ColoredTriangleVertices = []float32{
	0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
	0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
}

// TexturedQuadVertices is position, colour and texture coordinate for the
// four corners of a quad drawn with TexturedQuadIndices.
var TexturedQuadVertices = []float32{
	0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0,
}

var TexturedQuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

var TexturedQuadLayout = Layout{{Location: 0, Size: 3}, {Location: 1, Size: 3}, {Location: 2, Size: 2}}

// CubeVertices is a unit cube centred on the origin, 36 vertices of
// position, normal and texture coordinate.
var CubeVertices = []float32{
	// back
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0, -1.0, 0.0, 0.0,
	// front
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0, 1.0, 0.0, 0.0,
	// left
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 1.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, -0.5, -1.0, 0.0, 0.0, 0.0, 1.0,
	-0.5, -0.5, 0.5, -1.0, 0.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 1.0, 0.0,
	// right
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 1.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 0.0, 0.0, 0.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0, 0.0, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 1.0, 0.0,
	// bottom
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 1.0, 1.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, -1.0, 0.0, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, -1.0, 0.0, 0.0, 1.0,
	// top
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
	0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 1.0, 1.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 1.0,
}

const CubeStride = 8

// ShadowCubeVertices spans -1..1 with counter-clockwise front faces, so it
// survives face culling.
var ShadowCubeVertices = []float32{
	// back
	-1.0, -1.0, -1.0, 0.0, 0.0, -1.0, 0.0, 0.0,
	1.0, 1.0, -1.0, 0.0, 0.0, -1.0, 1.0, 1.0,
	1.0, -1.0, -1.0, 0.0, 0.0, -1.0, 1.0, 0.0,
	1.0, 1.0, -1.0, 0.0, 0.0, -1.0, 1.0, 1.0,
	-1.0, -1.0, -1.0, 0.0, 0.0, -1.0, 0.0, 0.0,
	-1.0, 1.0, -1.0, 0.0, 0.0, -1.0, 0.0, 1.0,
	// front
	-1.0, -1.0, 1.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 1.0, 1.0,
	-1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 0.0, 1.0,
	-1.0, -1.0, 1.0, 0.0, 0.0, 1.0, 0.0, 0.0,
	// left
	-1.0, 1.0, 1.0, -1.0, 0.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, -1.0, -1.0, 0.0, 0.0, 1.0, 1.0,
	-1.0, -1.0, -1.0, -1.0, 0.0, 0.0, 0.0, 1.0,
	-1.0, -1.0, -1.0, -1.0, 0.0, 0.0, 0.0, 1.0,
	-1.0, -1.0, 1.0, -1.0, 0.0, 0.0, 0.0, 0.0,
	-1.0, 1.0, 1.0, -1.0, 0.0, 0.0, 1.0, 0.0,
	// right
	1.0, 1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	1.0, -1.0, -1.0, 1.0, 0.0, 0.0, 0.0, 1.0,
	1.0, 1.0, -1.0, 1.0, 0.0, 0.0, 1.0, 1.0,
	1.0, -1.0, -1.0, 1.0, 0.0, 0.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 1.0, 0.0, 0.0, 1.0, 0.0,
	1.0, -1.0, 1.0, 1.0, 0.0, 0.0, 0.0, 0.0,
	// bottom
	-1.0, -1.0, -1.0, 0.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, -1.0, 0.0, -1.0, 0.0, 1.0, 1.0,
	1.0, -1.0, 1.0, 0.0, -1.0, 0.0, 1.0, 0.0,
	1.0, -1.0, 1.0, 0.0, -1.0, 0.0, 1.0, 0.0,
	-1.0, -1.0, 1.0, 0.0, -1.0, 0.0, 0.0, 0.0,
	-1.0, -1.0, -1.0, 0.0, -1.0, 0.0, 0.0, 1.0,
	// top
	-1.0, 1.0, -1.0, 0.0, 1.0, 0.0, 0.0, 1.0,
	1.0, 1.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	1.0, 1.0, -1.0, 0.0, 1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 1.0, 0.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, -1.0, 0.0, 1.0, 0.0, 0.0, 1.0,
	-1.0, 1.0, 1.0, 0.0, 1.0, 0.0, 0.0, 0.0,
}

// Plane returns a horizontal square floor at height y of half-size extent,
// two triangles of position, normal and texture coordinate, with texture
// coordinates running to repeat at the far corner.
func Plane(extent, y, repeat float32) []float32 {
	return []float32{
		extent, y, extent, 0.0, 1.0, 0.0, repeat, 0.0,
		-extent, y, extent, 0.0, 1.0, 0.0, 0.0, 0.0,
		-extent, y, -extent, 0.0, 1.0, 0.0, 0.0, repeat,

		extent, y, extent, 0.0, 1.0, 0.0, repeat, 0.0,
		-extent, y, -extent, 0.0, 1.0, 0.0, 0.0, repeat,
		extent, y, -extent, 0.0, 1.0, 0.0, repeat, repeat,
	}
}

var (
	// StencilFloorVertices is a 10x10 floor of position and texture coordinate.
	StencilFloorVertices = Select(Plane(5, -0.5, 2), CubeStride, [2]int{0, 3}, [2]int{6, 8})
	GammaFloorVertices   = Plane(10, -0.5, 10)
	ShadowFloorVertices  = Plane(25, -0.5, 25)
)

// ScreenQuadVertices covers the viewport with two triangles.
var ScreenQuadVertices = []float32{
	-1.0, 1.0, 0.0, 1.0,
	-1.0, -1.0, 0.0, 0.0,
	1.0, -1.0, 1.0, 0.0,

	-1.0, 1.0, 0.0, 1.0,
	1.0, -1.0, 1.0, 0.0,
	1.0, 1.0, 1.0, 1.0,
}

// DebugQuadVertices covers the viewport as a triangle strip of position and
// texture coordinate.
var DebugQuadVertices = []float32{
	-1.0, 1.0, 0.0, 0.0, 1.0,
	-1.0, -1.0, 0.0, 0.0, 0.0,
	1.0, 1.0, 0.0, 1.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 0.0,
}

// InstanceQuadVertices is a small quad of 2D position and colour.
var InstanceQuadVertices = []float32{
	-0.05, 0.05, 1.0, 0.0, 0.0,
	0.05, -0.05, 0.0, 1.0, 0.0,
	-0.05, -0.05, 0.0, 0.0, 1.0,

	-0.05, 0.05, 1.0, 0.0, 0.0,
	0.05, -0.05, 0.0, 1.0, 0.0,
	0.05, 0.05, 0.0, 1.0, 1.0,
}

// HousePoints are the four coloured points the geometry shader expands.
var HousePoints = []float32{
	-0.5, 0.5, 1.0, 0.0, 0.0,
	0.5, 0.5, 0.0, 1.0, 0.0,
	0.5, -0.5, 0.0, 0.0, 1.0,
	-0.5, -0.5, 1.0, 1.0, 0.0,
}

// CubePositions scatter the containers of the light caster scene.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// Select copies the component ranges [from, to) of each vertex out of
// interleaved data with stride floats per vertex.
func Select(vertices []float32, stride int, ranges ...[2]int) []float32 {
	var width int
	for _, r := range ranges {
		width += r[1] - r[0]
	}

	count := len(vertices) / stride
	out := make([]float32, 0, count*width)
	for v := 0; v < count; v++ {
		vertex := vertices[v*stride : (v+1)*stride]
		for _, r := range ranges {
			out = append(out, vertex[r[0]:r[1]]...)
		}
	}
	return out
}

// GridOffsets lays out a 10x10 grid of translations in normalized device
// coordinates, stepping by step/10 and shifted by offset. A step below 1
// yields no offsets.
func GridOffsets(step int, offset float32) []mgl32.Vec2 {
	if step < 1 {
		return nil
	}

	var offsets []mgl32.Vec2
	for y := -10; y < 10; y += step {
		for x := -10; x < 10; x += step {
			offsets = append(offsets, mgl32.Vec2{
				float32(x)/10 + offset,
				float32(y)/10 + offset,
			})
		}
	}
	return offsets
}

// Flatten lays vectors out as consecutive floats for buffer upload.
func Flatten(vectors []mgl32.Vec2) []float32 {
	out := make([]float32, 0, len(vectors)*2)
	for _, v := range vectors {
		out = append(out, v[0], v[1])
	}
	return out
}
