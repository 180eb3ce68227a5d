package view

import (
	"math"
	"testing"

	"github.com/phanxgames/softbody"
	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestWorldOriginAtViewportCenter(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	sx, sy := cam.WorldToScreen(softbody.Vec2{})
	if !approxEqual(sx, 400, epsilon) || !approxEqual(sy, 300, epsilon) {
		t.Errorf("origin -> (%v, %v), want (400, 300)", sx, sy)
	}
}

func TestWorldToScreenFlipsY(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	_, syUp := cam.WorldToScreen(softbody.Vec2{Y: 10})
	_, syDown := cam.WorldToScreen(softbody.Vec2{Y: -10})
	if !(syUp < 300 && syDown > 300) {
		t.Errorf("world +Y should map above center: up=%v down=%v", syUp, syDown)
	}
}

func TestCameraZoomAndPan(t *testing.T) {
	cam := NewCamera(Rect{X: 10, Y: 20, Width: 800, Height: 600})
	cam.X, cam.Y = 100, 50
	cam.Zoom = 2

	sx, sy := cam.WorldToScreen(softbody.Vec2{X: 100, Y: 50})
	if !approxEqual(sx, 410, epsilon) || !approxEqual(sy, 320, epsilon) {
		t.Errorf("camera target -> (%v, %v), want viewport center (410, 320)", sx, sy)
	}
	sx2, sy2 := cam.WorldToScreen(softbody.Vec2{X: 101, Y: 51})
	if !approxEqual(sx2-sx, 2, epsilon) || !approxEqual(sy2-sy, -2, epsilon) {
		t.Errorf("unit step -> (%v, %v), want (2, -2)", sx2-sx, sy2-sy)
	}
}

func TestScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 1280, Height: 720})
	cam.Fit(softbody.DefaultConfig())
	cam.X = 37

	tests := []softbody.Vec2{{}, {X: 100, Y: -200}, {X: -640, Y: 340}}
	for _, p := range tests {
		sx, sy := cam.WorldToScreen(p)
		got := cam.ScreenToWorld(sx, sy)
		if !approxEqual(got.X, p.X, 1e-6) || !approxEqual(got.Y, p.Y, 1e-6) {
			t.Errorf("round trip %v -> %v", p, got)
		}
	}
}

func TestCameraFit(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 680})
	cam.Fit(softbody.DefaultConfig())
	if !approxEqual(cam.Zoom, 0.5, epsilon) {
		t.Errorf("Zoom = %v, want 0.5", cam.Zoom)
	}
	// The world's left wall lands on the viewport's left edge.
	sx, _ := cam.WorldToScreen(softbody.Vec2{X: -640})
	if !approxEqual(sx, 0, epsilon) {
		t.Errorf("left wall at sx=%v, want 0", sx)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ScrollTo(100, -50, 1, ease.Linear)

	cam.update(0.5)
	if !approxEqual(cam.X, 50, 1e-3) || !approxEqual(cam.Y, -25, 1e-3) {
		t.Errorf("halfway = (%v, %v), want (50, -25)", cam.X, cam.Y)
	}
	cam.update(0.6)
	if !approxEqual(cam.X, 100, 1e-3) || !approxEqual(cam.Y, -50, 1e-3) {
		t.Errorf("end = (%v, %v), want (100, -50)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("finished scroll should be cleared")
	}
	sx, sy := cam.WorldToScreen(softbody.Vec2{X: 100, Y: -50})
	if !approxEqual(sx, 400, 1e-3) || !approxEqual(sy, 300, 1e-3) {
		t.Errorf("scroll target -> (%v, %v), want center", sx, sy)
	}
}

func TestScreenToWorldZeroZoom(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y = 12, -7
	cam.Zoom = 0
	got := cam.ScreenToWorld(0, 0)
	if got != (softbody.Vec2{X: 12, Y: -7}) {
		t.Errorf("ScreenToWorld = %v, want camera position", got)
	}
}
