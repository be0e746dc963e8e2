package renderer2d

import (
	"math"

	"github.com/hubastard/marley/engine/colors"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const vStride = 9
const vertsPerQuad = 4
const indsPerQuad = 6

// Texture is anything that can be bound to a sampler slot.
type Texture interface {
	Bind(slot uint32)
}

// quadBatch accumulates quads on the CPU until flushed. It calls flush when
// it runs out of quads or texture slots.
type quadBatch struct {
	verts     []float32
	inds      []uint32
	quadCount int
	maxQuads  int

	white  Texture
	texArr [maxTexSlots]Texture
	texCnt int

	flush func()
}

func newQuadBatch(maxQuads int, white Texture, flush func()) *quadBatch {
	b := &quadBatch{
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		maxQuads: maxQuads,
		white:    white,
		flush:    flush,
	}
	b.reset()
	return b
}

func (b *quadBatch) reset() {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.quadCount = 0
	for i := range b.texArr {
		b.texArr[i] = nil
	}
	b.texArr[0] = b.white
	b.texCnt = 1
}

func (b *quadBatch) textures() []Texture { return b.texArr[:b.texCnt] }

// texSlot returns the sampler index for t, flushing when all slots are taken.
// A nil texture maps to the white texture in slot 0.
func (b *quadBatch) texSlot(t Texture) float32 {
	if t == nil {
		return 0
	}
	for i := 0; i < b.texCnt; i++ {
		if b.texArr[i] == t {
			return float32(i)
		}
	}
	if b.texCnt >= maxTexSlots {
		b.flush()
	}
	b.texArr[b.texCnt] = t
	b.texCnt++
	return float32(b.texCnt - 1)
}

func (b *quadBatch) ensureCapacity() {
	if b.quadCount >= b.maxQuads {
		b.flush()
	}
}

// add appends a quad centered at (x, y). Positive Y goes down.
func (b *quadBatch) add(x, y, w, h float32, color colors.Color, rotationRad float32, tex Texture, u0, v0, u1, v1 float32) {
	b.ensureCapacity()
	texIndex := b.texSlot(tex)

	halfW := w * 0.5
	halfH := h * 0.5

	// corners (TL, TR, BL, BR) with UVs.
	corners := [4][4]float32{
		{-halfW, -halfH, u0, v0},
		{halfW, -halfH, u1, v0},
		{-halfW, halfH, u0, v1},
		{halfW, halfH, u1, v1},
	}
	c, s := float32(1), float32(0)
	if rotationRad != 0 {
		c, s = float32(math.Cos(float64(rotationRad))), float32(math.Sin(float64(rotationRad)))
	}

	startVertex := uint32(len(b.verts) / vStride)

	for _, p := range corners {
		rx := p[0]*c - p[1]*s + x
		ry := p[0]*s + p[1]*c + y
		b.verts = append(b.verts,
			rx, ry,
			color[0], color[1], color[2], color[3],
			p[2], p[3],
			texIndex,
		)
	}
	b.inds = append(b.inds,
		startVertex+0, startVertex+2, startVertex+1,
		startVertex+1, startVertex+2, startVertex+3,
	)
	b.quadCount++
}
