package scene

import "github.com/go-gl/mathgl/mgl32"

// OrthoCamera2D maps pixel coordinates (origin bottom-left, Y up) to clip
// space, with an optional pan and zoom.
type OrthoCamera2D struct {
	Width, Height float32
	Near, Far     float32
	X, Y          float32
	Zoom          float32 // 1 = no zoom
	vp            mgl32.Mat4
	dirty         bool
}

func NewOrtho2D(width, height int) *OrthoCamera2D {
	c := &OrthoCamera2D{
		Width: float32(width), Height: float32(height),
		Near: -1, Far: 1,
		Zoom: 1,
	}
	c.Recalculate()
	return c
}

func (c *OrthoCamera2D) SetViewportPixels(w, h int) {
	c.Width, c.Height = float32(w), float32(h)
	c.dirty = true
}

func (c *OrthoCamera2D) Move(dx, dy float32) { c.X += dx; c.Y += dy; c.dirty = true }
func (c *OrthoCamera2D) SetZoom(z float32) {
	if z < 0.05 {
		z = 0.05
	}
	c.Zoom = z
	c.dirty = true
}

func (c *OrthoCamera2D) VP() mgl32.Mat4 {
	if c.dirty {
		c.Recalculate()
	}
	return c.vp
}

// ScreenToWorld converts a pixel position (Y up) to world coordinates.
func (c *OrthoCamera2D) ScreenToWorld(px, py float32) mgl32.Vec2 {
	return mgl32.Vec2{px/c.Zoom + c.X, py/c.Zoom + c.Y}
}

func (c *OrthoCamera2D) Recalculate() {
	z := c.Zoom
	proj := mgl32.Ortho(0, c.Width/z, 0, c.Height/z, c.Near, c.Far)
	view := mgl32.Translate3D(-c.X, -c.Y, 0)
	c.vp = proj.Mul4(view)
	c.dirty = false
}
