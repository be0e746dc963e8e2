package core

// AttribType is the scalar type of a vertex attribute component.
type AttribType int

const (
	AttribFloat32 AttribType = iota
	AttribUint32
	AttribUint8
)

// SizeOfType returns the byte size of one component.
func SizeOfType(t AttribType) int {
	switch t {
	case AttribFloat32, AttribUint32:
		return 4
	case AttribUint8:
		return 1
	}
	return 0
}

// VertexBufferElement describes one attribute in an interleaved vertex.
type VertexBufferElement struct {
	Count      int
	Type       AttribType
	Normalized bool
}

// VertexAttrib is an element resolved to its slot and byte offset.
type VertexAttrib struct {
	Location   uint32
	Size       int
	Type       AttribType
	Normalized bool
	Offset     int
}

// VertexBufferLayout is the ordered list of attributes of one vertex buffer.
// Element i maps to attribute location i.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   int
}

func (l *VertexBufferLayout) Push(count int, t AttribType, normalized bool) *VertexBufferLayout {
	l.elements = append(l.elements, VertexBufferElement{Count: count, Type: t, Normalized: normalized})
	l.stride += count * SizeOfType(t)
	return l
}

func (l *VertexBufferLayout) PushFloat(count int) *VertexBufferLayout {
	return l.Push(count, AttribFloat32, false)
}

func (l *VertexBufferLayout) Elements() []VertexBufferElement { return l.elements }

// Stride is the size in bytes of one vertex.
func (l *VertexBufferLayout) Stride() int { return l.stride }

// Attributes resolves every element to its location and byte offset. Offsets
// accumulate count*SizeOfType in element order, starting at 0.
func (l *VertexBufferLayout) Attributes() []VertexAttrib {
	out := make([]VertexAttrib, len(l.elements))
	offset := 0
	for i, e := range l.elements {
		out[i] = VertexAttrib{
			Location:   uint32(i),
			Size:       e.Count,
			Type:       e.Type,
			Normalized: e.Normalized,
			Offset:     offset,
		}
		offset += e.Count * SizeOfType(e.Type)
	}
	return out
}

// Shader is the uniform-setting contract every backend program implements.
type Shader interface {
	Bind()
	Unbind()
	SetInt(name string, v int32)
	SetIntArray(name string, v []int32)
	SetFloat(name string, v float32)
	SetFloat4(name string, v [4]float32)
	SetMat4(name string, m [16]float32)
}
