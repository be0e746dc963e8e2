package renderer2d

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/marley/engine/assets"
	"github.com/hubastard/marley/engine/colors"
	"github.com/hubastard/marley/engine/core"
	glbackend "github.com/hubastard/marley/engine/gfx/gl"
	"github.com/hubastard/marley/engine/profiler"
)

//go:embed shaders/quad.vert
var defaultVertexSource string

//go:embed shaders/quad.frag
var defaultFragmentSource string

// DefaultShaders returns the built-in quad program sources, NUL-terminated.
func DefaultShaders() (vert, frag string) {
	return defaultVertexSource + "\x00", defaultFragmentSource + "\x00"
}

func quadVertexLayout() *core.VertexBufferLayout {
	var l core.VertexBufferLayout
	l.PushFloat(2) // pos
	l.PushFloat(4) // color
	l.PushFloat(2) // uv
	l.PushFloat(1) // texIndex
	return &l
}

var whitePixel = assets.Image{Width: 1, Height: 1, Channels: 4, Pix: []byte{255, 255, 255, 255}}

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int
}

// TotalVertexCount reports vertices submitted this frame.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this frame.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

// Renderer2D batches quads and submits them through the GL renderer with a
// single shader, vertex array and index buffer.
type Renderer2D struct {
	r      *glbackend.RendererGL
	shader *glbackend.Shader
	va     *glbackend.VertexArray
	vb     *glbackend.VertexBuffer
	ib     *glbackend.IndexBuffer
	white  *glbackend.Texture

	batch    *quadBatch
	samplers [maxTexSlots]int32

	vp            [16]float32
	stats         Statistics
	extraUniforms map[string]any
}

// New compiles the shader pipeline. Empty sources select the built-in ones.
func New(r *glbackend.RendererGL, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	if vertSrc == "" || fragSrc == "" {
		vertSrc, fragSrc = DefaultShaders()
	}
	shader, err := glbackend.NewShader(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("renderer2d shader: %w", err)
	}

	// 1x1 white texture (slot 0) for solid quads.
	white := glbackend.NewTexture(&whitePixel, glbackend.TextureOptions{
		MinFilter: glbackend.FilterNearest, MagFilter: glbackend.FilterNearest,
	})

	rd := &Renderer2D{
		r:      r,
		shader: shader,
		white:  white,
		va:     glbackend.NewVertexArray(),
		vb:     glbackend.NewDynamicVertexBuffer(maxQuads * vertsPerQuad * vStride * 4),
		ib:     glbackend.NewIndexBuffer(make([]uint32, maxQuads*indsPerQuad)),
	}
	rd.va.AddBuffer(rd.vb, quadVertexLayout())
	rd.va.Unbind()
	for i := range rd.samplers {
		rd.samplers[i] = int32(i)
	}
	rd.batch = newQuadBatch(maxQuads, white, rd.flush)
	return rd, nil
}

func (rd *Renderer2D) Shutdown() {
	rd.va.Delete()
	rd.vb.Delete()
	rd.ib.Delete()
	rd.white.Delete()
	rd.shader.Delete()
}

func (rd *Renderer2D) BeginScene(vp mgl32.Mat4) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.batch.reset()
}

func (rd *Renderer2D) EndScene() { rd.flush() }

// Stats returns the current frame statistics snapshot.
func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetUniform queues an additional uniform to be sent on every draw call.
// Supported values: int32, float32, [4]float32, mgl32.Mat4. Call with nil to remove.
func (rd *Renderer2D) SetUniform(name string, value any) {
	if rd.extraUniforms == nil {
		rd.extraUniforms = make(map[string]any)
	}
	if value == nil {
		delete(rd.extraUniforms, name)
		return
	}
	rd.extraUniforms[name] = value
}

// Draw solid color quad (uses white texture in slot 0)
func (rd *Renderer2D) DrawQuad(x, y, w, h float32, color colors.Color, rotationRad float32) {
	rd.batch.add(x, y, w, h, color, rotationRad, nil, 0, 0, 1, 1)
	rd.stats.QuadCount++
}

// Draw textured quad (tint color)
func (rd *Renderer2D) DrawTexturedQuad(x, y, w, h float32, tex Texture, tint colors.Color, rotationRad float32) {
	rd.DrawTexturedQuadUV(x, y, w, h, tex, tint, rotationRad, 0, 0, 1, 1)
}

// Draw textured sub-rect (UV rect: u0,v0 -> u1,v1)
func (rd *Renderer2D) DrawTexturedQuadUV(x, y, w, h float32, tex Texture, tint colors.Color, rotationRad float32, u0, v0, u1, v1 float32) {
	rd.batch.add(x, y, w, h, tint, rotationRad, tex, u0, v0, u1, v1)
	rd.stats.QuadCount++
	if rd.batch.texCnt > rd.stats.TextureCount {
		rd.stats.TextureCount = rd.batch.texCnt
	}
}

// DrawSubTexQuad draws a quad using a SubTexture2D (tint + rotation optional).
func (rd *Renderer2D) DrawSubTexQuad(x, y, w, h float32, sub SubTexture2D, tint colors.Color, rotationRad float32) {
	rd.DrawTexturedQuadUV(x, y, w, h, sub.Texture, tint, rotationRad, sub.U0, sub.V0, sub.U1, sub.V1)
}

func (rd *Renderer2D) flush() {
	b := rd.batch
	if b.quadCount == 0 {
		return
	}
	end := profiler.Start("renderer2d.flush")
	defer end()

	rd.vb.SetData(b.verts)
	rd.ib.SetData(b.inds)

	rd.shader.Bind()
	rd.shader.SetMat4("uVP", rd.vp)
	rd.shader.SetIntArray("uTex", rd.samplers[:])
	for name, v := range rd.extraUniforms {
		switch val := v.(type) {
		case int32:
			rd.shader.SetInt(name, val)
		case float32:
			rd.shader.SetFloat(name, val)
		case [4]float32:
			rd.shader.SetFloat4(name, val)
		case mgl32.Mat4:
			rd.shader.SetMat4(name, val)
		}
	}
	for i, t := range b.textures() {
		t.Bind(uint32(i))
	}

	rd.r.Draw(rd.va, rd.ib, rd.shader)
	rd.stats.DrawCalls++

	b.reset()
}
