package geometry

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/toxichemicals/GO/holy-scene/glcheck"
)

// Vertex layout shared by every mesh: one tightly packed vec3 position
// attribute at location 0.
const (
	positionLocation    = 0
	componentsPerVertex = 3
	strideBytes         = componentsPerVertex * 4
)

// Mesh is geometry uploaded into GPU buffers, ready to draw. Buffers are
// written once at creation and never updated.
type Mesh struct {
	vao  uint32
	vbo  uint32
	ibo  uint32 // 0 when the mesh is not indexed
	mode uint32

	vertexCount int32
	indexCount  int32
}

// NewMesh uploads positions (and indices, when non-empty) into fresh GPU
// buffers and records the draw mode used for the data, e.g. gl.TRIANGLES or
// gl.LINES. The caller must hold a current GL context.
func NewMesh(positions []float32, indices []uint32, mode uint32) (*Mesh, error) {
	if len(positions) == 0 || len(positions)%componentsPerVertex != 0 {
		return nil, fmt.Errorf("mesh positions length %d is not a positive multiple of %d", len(positions), componentsPerVertex)
	}

	m := &Mesh{
		mode:        mode,
		vertexCount: int32(len(positions) / componentsPerVertex),
		indexCount:  int32(len(indices)),
	}

	glcheck.Flush()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(positionLocation)
	gl.VertexAttribPointer(positionLocation, componentsPerVertex, gl.FLOAT, false, strideBytes, gl.Ptr(nil))

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	if err := glcheck.Err("mesh upload"); err != nil {
		m.Delete()
		return nil, err
	}
	return m, nil
}

// Bind makes the mesh's vertex array current.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// Unbind clears the vertex array binding.
func (m *Mesh) Unbind() {
	gl.BindVertexArray(0)
}

// Draw issues a single draw call covering the whole mesh, indexed when the
// mesh carries indices.
func (m *Mesh) Draw() {
	if m.indexCount > 0 {
		gl.DrawElements(m.mode, m.indexCount, gl.UNSIGNED_INT, unsafe.Pointer(uintptr(0)))
		return
	}
	gl.DrawArrays(m.mode, 0, m.vertexCount)
}

// DrawRange issues a non-indexed draw call over the vertex run
// [first, first+count). The axes use it to draw one colored segment at a
// time.
func (m *Mesh) DrawRange(first, count int32) {
	gl.DrawArrays(m.mode, first, count)
}

// Delete releases the mesh's GL objects.
func (m *Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	if m.ibo != 0 {
		gl.DeleteBuffers(1, &m.ibo)
	}
}
