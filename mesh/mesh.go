package mesh

import (
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/learngl/examples/geometry"
	"github.com/learngl/examples/shader"
)

type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	TexCoords mgl32.Vec2
}

// VertexLayout matches Vertex: position at 0, normal at 1, texture
// coordinates at 2.
var VertexLayout = geometry.PositionNormalUVLayout

// TextureKind is the sampler name prefix a texture is bound under.
type TextureKind string

const (
	Diffuse  TextureKind = "texture_diffuse"
	Specular TextureKind = "texture_specular"
)

type Texture struct {
	ID   uint32
	Kind TextureKind
	Path string
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Textures []Texture

	vertexArray *geometry.VertexArray
}

func New(vertices []Vertex, indices []uint32, textures []Texture) *Mesh {
	return &Mesh{Vertices: vertices, Indices: indices, Textures: textures}
}

// Upload copies the mesh into GPU buffers. It must run on the thread that
// owns the GL context.
func (m *Mesh) Upload() {
	m.vertexArray = geometry.NewVertexArray(interleave(m.Vertices), VertexLayout).WithIndices(m.Indices)
}

func interleave(vertices []Vertex) []float32 {
	data := make([]float32, 0, len(vertices)*VertexLayout.Components())
	for _, v := range vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.TexCoords[:]...)
	}
	return data
}

// SamplerNames returns the uniform each texture is bound to, numbering each
// kind from 1 in order: texture_diffuse1, texture_diffuse2, texture_specular1...
func SamplerNames(textures []Texture) []string {
	counts := make(map[TextureKind]int)
	names := make([]string, len(textures))
	for i, tex := range textures {
		counts[tex.Kind]++
		names[i] = string(tex.Kind) + strconv.Itoa(counts[tex.Kind])
	}
	return names
}

// Draw binds texture i to unit i, points its sampler at that unit and draws
// the indexed triangles.
func (m *Mesh) Draw(program *shader.Program) {
	for i, name := range SamplerNames(m.Textures) {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		program.SetInt(name, int32(i))
		gl.BindTexture(gl.TEXTURE_2D, m.Textures[i].ID)
	}

	m.vertexArray.DrawElements(gl.TRIANGLES)

	gl.ActiveTexture(gl.TEXTURE0)
}

// Delete frees the GPU buffers. Textures may be shared between meshes and
// are owned by the model.
func (m *Mesh) Delete() {
	if m.vertexArray != nil {
		m.vertexArray.Delete()
		m.vertexArray = nil
	}
}
