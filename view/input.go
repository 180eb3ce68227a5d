package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/softbody"
)

// --- Input processing ---

// pollPointer reads the mouse, or the first active touch when no mouse
// button is held, and converts it to a world-space pointer signal. Only the
// left mouse button grabs.
func (g *Game) pollPointer() softbody.Pointer {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return softbody.Pointer{
			Active: true,
			Pos:    g.cam.ScreenToWorld(float64(mx), float64(my)),
		}
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(g.touchIDs[0])
		return softbody.Pointer{
			Active: true,
			Pos:    g.cam.ScreenToWorld(float64(tx), float64(ty)),
		}
	}
	return softbody.Pointer{}
}

// processKeys handles the keyboard shortcuts:
//
//	Space  spawn a square at the top of the world
//	B      spawn a braced box
//	P      spawn a hexagon
//	C      scroll the camera back to the origin
//	Tab    pause or resume the simulation
//	F3     toggle the FPS overlay
//	F12    save a screenshot
func (g *Game) processKeys() {
	cfg := g.world.Config()
	top := softbody.Vec2{Y: cfg.Height/2 - cfg.DefaultRestingLength}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.Spawn(softbody.Square(cfg.DefaultRestingLength), top)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		side := cfg.DefaultRestingLength * 1.5
		g.world.Spawn(softbody.Box(side, side, 2, 2), top)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.world.Spawn(softbody.RegularPolygon(6, cfg.DefaultRestingLength*0.75), top)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.cam.ScrollTo(0, 0, 0.5, easeOutCubic)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.cfg.ShowFPS = !g.cfg.ShowFPS
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
}
