package view

import (
	"math"

	"github.com/phanxgames/softbody"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Rect is a screen-space rectangle with its origin at the top-left and Y
// increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps the y-up simulation world onto a y-down screen viewport.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the number of screen pixels per world unit.
	Zoom float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	scrollTween *scrollAnim
}

// NewCamera creates a camera centered on the world origin with zoom 1.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Zoom: 1, Viewport: viewport}
}

// Fit sets the zoom so the whole world rectangle of cfg is visible and
// centers the camera on the origin.
func (c *Camera) Fit(cfg softbody.Config) {
	c.X, c.Y = 0, 0
	c.Zoom = math.Min(c.Viewport.Width/cfg.Width, c.Viewport.Height/cfg.Height)
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// update advances any scroll animation by dt seconds.
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// center returns the screen position of the viewport's center, where the
// camera's X and Y land.
func (c *Camera) center() (float64, float64) {
	return c.Viewport.X + c.Viewport.Width/2, c.Viewport.Y + c.Viewport.Height/2
}

// WorldToScreen converts world coordinates to screen coordinates. World Y
// points up and screen Y points down, so Y is mirrored about the camera.
func (c *Camera) WorldToScreen(p softbody.Vec2) (sx, sy float64) {
	cx, cy := c.center()
	return cx + (p.X-c.X)*c.Zoom, cy - (p.Y-c.Y)*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates. A camera
// with zero zoom maps every screen point to the position it centers on.
func (c *Camera) ScreenToWorld(sx, sy float64) softbody.Vec2 {
	if c.Zoom == 0 {
		return softbody.Vec2{X: c.X, Y: c.Y}
	}
	cx, cy := c.center()
	return softbody.Vec2{
		X: c.X + (sx-cx)/c.Zoom,
		Y: c.Y - (sy-cy)/c.Zoom,
	}
}
