package scene

import "github.com/go-gl/mathgl/mgl32"

// OrthographicCamera keeps projection, view and view-projection in sync.
// Every mutator recomputes the matrices immediately, so getters never see
// stale state.
type OrthographicCamera struct {
	projection     mgl32.Mat4
	view           mgl32.Mat4
	viewProjection mgl32.Mat4

	position    mgl32.Vec3
	rotationRad float32

	width, height float32
}

// NewOrthographicCamera builds a camera with the given projection bounds.
func NewOrthographicCamera(left, right, bottom, top, near, far float32) *OrthographicCamera {
	c := &OrthographicCamera{view: mgl32.Ident4()}
	c.SetProjection(left, right, bottom, top, near, far)
	return c
}

// NewScreenCamera returns a pixel-space camera with the origin at the top
// left and Y growing downwards, the convention the UI uses.
func NewScreenCamera(width, height int) *OrthographicCamera {
	c := &OrthographicCamera{view: mgl32.Ident4()}
	c.SetViewportPixels(width, height)
	return c
}

func (c *OrthographicCamera) SetProjection(left, right, bottom, top, near, far float32) {
	c.projection = mgl32.Ortho(left, right, bottom, top, near, far)
	c.width = abs(right - left)
	c.height = abs(top - bottom)
	c.recalculate()
}

// SetViewportPixels maps (0,0) to the top-left pixel and (w,h) to the bottom right.
func (c *OrthographicCamera) SetViewportPixels(w, h int) {
	c.SetProjection(0, float32(w), float32(h), 0, -1, 1)
}

func (c *OrthographicCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.recalculate()
}

// SetRotation sets the rotation around the Z axis, in radians.
func (c *OrthographicCamera) SetRotation(rad float32) {
	c.rotationRad = rad
	c.recalculate()
}

func (c *OrthographicCamera) Move(dx, dy float32) {
	c.SetPosition(c.position.Add(mgl32.Vec3{dx, dy, 0}))
}

func (c *OrthographicCamera) Position() mgl32.Vec3 { return c.position }
func (c *OrthographicCamera) Rotation() float32    { return c.rotationRad }
func (c *OrthographicCamera) Width() float32       { return c.width }
func (c *OrthographicCamera) Height() float32      { return c.height }

func (c *OrthographicCamera) Projection() mgl32.Mat4     { return c.projection }
func (c *OrthographicCamera) View() mgl32.Mat4           { return c.view }
func (c *OrthographicCamera) ViewProjection() mgl32.Mat4 { return c.viewProjection }

// recalculate: view = inverse(T(position) * Rz(rotation)), vp = projection * view.
func (c *OrthographicCamera) recalculate() {
	transform := mgl32.Translate3D(c.position[0], c.position[1], c.position[2]).
		Mul4(mgl32.HomogRotate3DZ(c.rotationRad))
	c.view = transform.Inv()
	c.viewProjection = c.projection.Mul4(c.view)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
