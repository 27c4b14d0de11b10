package geometry

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Attribute describes one float vector attribute of an interleaved buffer.
type Attribute struct {
	Location uint32
	Size     int32
	// Divisor advances the attribute once per Divisor instances instead
	// of once per vertex. Zero means per vertex.
	Divisor uint32
}

// Layout is the ordered list of attributes that make up one vertex.
type Layout []Attribute

// Components is the number of floats in one vertex.
func (l Layout) Components() int {
	var n int
	for _, attr := range l {
		n += int(attr.Size)
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

// Offsets are the byte offsets of each attribute within a vertex.
func (l Layout) Offsets() []int {
	offsets := make([]int, len(l))
	var offset int
	for i, attr := range l {
		offsets[i] = offset
		offset += int(attr.Size) * floatSize
	}
	return offsets
}

func (l Layout) apply() {
	stride := l.Stride()
	for i, offset := range l.Offsets() {
		attr := l[i]
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Size, gl.FLOAT, false, stride, uintptr(offset))
		if attr.Divisor > 0 {
			gl.VertexAttribDivisor(attr.Location, attr.Divisor)
		}
	}
}

// VertexArray owns a VAO together with its vertex, index and instance
// buffers.
type VertexArray struct {
	VAO uint32
	VBO uint32
	EBO uint32

	Vertices int32
	Indices  int32

	instanceBuffers []uint32
}

// NewVertexArray uploads vertices as a static buffer and describes them with
// layout.
func NewVertexArray(vertices []float32, layout Layout) *VertexArray {
	va := &VertexArray{Vertices: int32(len(vertices) / layout.Components())}

	gl.GenVertexArrays(1, &va.VAO)
	gl.BindVertexArray(va.VAO)

	gl.GenBuffers(1, &va.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, va.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)
	layout.apply()

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return va
}

// WithIndices attaches an element buffer to the vertex array.
func (va *VertexArray) WithIndices(indices []uint32) *VertexArray {
	va.Indices = int32(len(indices))

	gl.BindVertexArray(va.VAO)
	gl.GenBuffers(1, &va.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, va.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// The element buffer binding is VAO state, so the VAO is unbound first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return va
}

// AddInstanceBuffer uploads per-instance data described by layout. Attributes
// without a divisor default to advancing once per instance.
func (va *VertexArray) AddInstanceBuffer(data []float32, layout Layout) *VertexArray {
	instanced := make(Layout, len(layout))
	for i, attr := range layout {
		if attr.Divisor == 0 {
			attr.Divisor = 1
		}
		instanced[i] = attr
	}

	var vbo uint32
	gl.BindVertexArray(va.VAO)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	instanced.apply()

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	va.instanceBuffers = append(va.instanceBuffers, vbo)
	return va
}

// Draw issues a non-indexed draw of every vertex in the buffer.
func (va *VertexArray) Draw(mode uint32) {
	va.DrawRange(mode, 0, va.Vertices)
}

func (va *VertexArray) DrawRange(mode uint32, first, count int32) {
	gl.BindVertexArray(va.VAO)
	gl.DrawArrays(mode, first, count)
	gl.BindVertexArray(0)
}

func (va *VertexArray) DrawElements(mode uint32) {
	gl.BindVertexArray(va.VAO)
	gl.DrawElementsWithOffset(mode, va.Indices, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

func (va *VertexArray) DrawInstanced(mode uint32, instances int32) {
	gl.BindVertexArray(va.VAO)
	gl.DrawArraysInstanced(mode, 0, va.Vertices, instances)
	gl.BindVertexArray(0)
}

func (va *VertexArray) Delete() {
	gl.DeleteVertexArrays(1, &va.VAO)
	gl.DeleteBuffers(1, &va.VBO)
	if va.EBO != 0 {
		gl.DeleteBuffers(1, &va.EBO)
	}
	if len(va.instanceBuffers) > 0 {
		gl.DeleteBuffers(int32(len(va.instanceBuffers)), &va.instanceBuffers[0])
	}
	*va = VertexArray{}
}
