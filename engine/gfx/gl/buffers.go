package glbackend

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/marley/engine/core"
)

func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func glType(t core.AttribType) uint32 {
	switch t {
	case core.AttribUint32:
		return gl.UNSIGNED_INT
	case core.AttribUint8:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

// VertexBuffer owns an ARRAY_BUFFER.
type VertexBuffer struct {
	id    uint32
	size  int
	usage uint32
}

// NewVertexBuffer uploads data once.
func NewVertexBuffer(data []float32) *VertexBuffer {
	vb := &VertexBuffer{usage: gl.STATIC_DRAW, size: len(data) * 4}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, vb.size, ptrOrNil(data), vb.usage)
	checkError("VertexBuffer.New")
	return vb
}

// NewDynamicVertexBuffer reserves size bytes for per-frame SetData calls.
func NewDynamicVertexBuffer(size int) *VertexBuffer {
	vb := &VertexBuffer{usage: gl.DYNAMIC_DRAW, size: size}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, vb.usage)
	checkError("VertexBuffer.NewDynamic")
	return vb
}

func (vb *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }
func (vb *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

// SetData replaces the buffer contents, growing the store when needed.
func (vb *VertexBuffer) SetData(data []float32) {
	n := len(data) * 4
	vb.Bind()
	if n > vb.size {
		vb.size = n
		gl.BufferData(gl.ARRAY_BUFFER, n, ptrOrNil(data), vb.usage)
	} else if n > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(data))
	}
	checkError("VertexBuffer.SetData")
}

func (vb *VertexBuffer) Delete() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

// IndexBuffer owns an ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id       uint32
	count    int32
	capacity int
}

func NewIndexBuffer(indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{}
	gl.GenBuffers(1, &ib.id)
	ib.SetData(indices)
	return ib
}

func (ib *IndexBuffer) Bind()   { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) }
func (ib *IndexBuffer) Unbind() { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }

// Count is the number of indices a draw call submits.
func (ib *IndexBuffer) Count() int32 { return ib.count }

// SetData replaces the indices and the draw count.
func (ib *IndexBuffer) SetData(indices []uint32) {
	ib.Bind()
	n := len(indices) * 4
	if n > ib.capacity {
		ib.capacity = n
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, n, ptrOrNil(indices), gl.DYNAMIC_DRAW)
	} else if n > 0 {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, n, gl.Ptr(indices))
	}
	ib.count = int32(len(indices))
	checkError("IndexBuffer.SetData")
}

func (ib *IndexBuffer) Delete() {
	if ib.id != 0 {
		gl.DeleteBuffers(1, &ib.id)
		ib.id = 0
	}
}

// VertexArray records attribute layouts. It references its vertex buffers
// without owning them.
type VertexArray struct {
	id      uint32
	buffers []*VertexBuffer
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.id) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

// AddBuffer binds vb and describes every element of layout: location i,
// component count, scalar type, normalisation, stride and byte offset.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *core.VertexBufferLayout) {
	va.Bind()
	vb.Bind()
	stride := int32(layout.Stride())
	for _, a := range layout.Attributes() {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointer(a.Location, int32(a.Size), glType(a.Type), a.Normalized, stride, glOffset(a.Offset))
	}
	va.buffers = append(va.buffers, vb)
	checkError("VertexArray.AddBuffer")
}

func (va *VertexArray) Delete() {
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
	va.buffers = nil
}

func ptrOrNil[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return gl.Ptr(s)
}
