package glbackend

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/marley/engine/core"
)

// RendererGL issues draw calls against the current GL context. All state it
// touches is global to the context: every Draw binds what it needs and
// assumes nothing about previous bindings.
type RendererGL struct {
	win   core.Window
	pacer *core.FramePacer

	vendor, renderer, version string
}

var _ core.Renderer = (*RendererGL)(nil)

// NewRendererGL expects win to own a current GL context.
func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:   win,
		pacer: core.NewFramePacer(cfg.TargetFPS, cfg.Pacing),
	}
	r.vendor = gl.GoStr(gl.GetString(gl.VENDOR))
	r.renderer = gl.GoStr(gl.GetString(gl.RENDERER))
	r.version = gl.GoStr(gl.GetString(gl.VERSION))
	core.Logger().Info("gl renderer", "vendor", r.vendor, "renderer", r.renderer, "version", r.version)

	gl.Disable(gl.DEPTH_TEST)
	checkError("Renderer.Init")
	return r, nil
}

func (r *RendererGL) Shutdown() {}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	checkError("Renderer.Resize")
}

func (r *RendererGL) SetClearColor(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
}

// Clear resets the color buffer.
func (r *RendererGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw binds the program, vertex array and index buffer, then draws the
// buffer's full index count as triangles with uint32 indices.
func (r *RendererGL) Draw(va *VertexArray, ib *IndexBuffer, sh core.Shader) {
	sh.Bind()
	va.Bind()
	ib.Bind()
	gl.DrawElements(gl.TRIANGLES, ib.Count(), gl.UNSIGNED_INT, nil)
	checkError("Renderer.Draw")
}

// SwapBuffers waits for the frame pacer, then presents.
func (r *RendererGL) SwapBuffers() {
	r.pacer.Wait()
	r.win.SwapBuffers()
}

// EnableBlending turns on straight alpha blending for UI compositing.
func (r *RendererGL) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	checkError("Renderer.EnableBlending")
}

func (r *RendererGL) DisableBlending() {
	gl.Disable(gl.BLEND)
}

func (r *RendererGL) GPUVendor() string   { return r.vendor }
func (r *RendererGL) GPURenderer() string { return r.renderer }
func (r *RendererGL) GPUVersion() string  { return r.version }
