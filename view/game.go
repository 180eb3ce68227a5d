package view

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/softbody"
	"github.com/tanema/gween/ease"
)

const (
	flashDuration = 0.35 // seconds a contact highlight takes to fade
	discSides     = 12   // polygon sides used to draw a node
	edgeWidth     = 2.0  // perimeter line width in pixels
	braceWidth    = 1.0  // internal connection line width in pixels
)

var easeOutCubic = ease.OutCubic

// Default palette. Bodies cycle through fillColors by insertion order.
var (
	clearColor = Color{R: 0.06, G: 0.06, B: 0.09, A: 1}
	edgeColor  = Color{R: 0.8, G: 0.2, B: 0.2, A: 1}
	braceColor = Color{R: 0.8, G: 0.2, B: 0.2, A: 0.35}
	nodeColor  = Color{R: 1, G: 1, B: 1, A: 1}
	flashColor = Color{R: 1, G: 0.95, B: 0.6, A: 1}
	floorColor = Color{R: 0.3, G: 0.3, B: 0.36, A: 1}
	fillColors = []Color{
		{R: 0.25, G: 0.65, B: 0.95, A: 0.25},
		{R: 0.35, G: 0.88, B: 0.40, A: 0.25},
		{R: 0.95, G: 0.75, B: 0.15, A: 0.25},
		{R: 0.75, G: 0.35, B: 0.90, A: 0.25},
		{R: 0.20, G: 0.85, B: 0.80, A: 0.25},
	}
)

// RunConfig holds window and presentation options for Run and NewGame.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug enables the world's per-tick stats on stderr.
	Debug bool
	// ScreenshotDir receives F12 captures. Defaults to "screenshots".
	ScreenshotDir string
}

// Game adapts a softbody.World to ebiten.Game. Each Update polls the pointer
// and keyboard and advances the world one tick of 1/TPS seconds; each Draw
// renders every body's fill, connections and nodes.
type Game struct {
	world  *softbody.World
	cfg    RunConfig
	cam    *Camera
	runner *softbody.ScenarioRunner

	batch    batch
	flashes  flashes
	touchIDs []ebiten.TouchID
	paused   bool
	shots    []string

	// scratch buffers for outlines, reused across frames
	xs, ys []float64
}

// NewGame creates a game for world. The camera is fitted to the world
// rectangle and the game registers itself as the world's contact sink; wrap
// it in softbody.ContactSinks to keep another sink as well.
func NewGame(world *softbody.World, cfg RunConfig) *Game {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		wc := world.Config()
		cfg.Width, cfg.Height = int(wc.Width), int(wc.Height)
	}
	g := &Game{
		world:   world,
		cfg:     cfg,
		cam:     NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		flashes: newFlashes(flashDuration, ease.OutQuad),
	}
	g.cam.Fit(world.Config())
	world.SetContactSink(g)
	world.SetDebugMode(cfg.Debug)
	return g
}

// Camera returns the game's camera.
func (g *Game) Camera() *Camera {
	return g.cam
}

// SetScenario attaches a scenario runner. While it is not done, the runner
// supplies the pointer signal instead of the mouse.
func (g *Game) SetScenario(r *softbody.ScenarioRunner) {
	g.runner = r
}

// EmitContact highlights both bodies of a resolved contact.
func (g *Game) EmitContact(c softbody.Contact) {
	g.flashes.hit(c.Intruder)
	g.flashes.hit(c.Target)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	g.processKeys()
	g.cam.update(float32(dt))

	var ptr softbody.Pointer
	if g.runner != nil && !g.runner.Done() {
		ptr = g.runner.Step(g.world)
	} else {
		ptr = g.pollPointer()
	}

	if !g.paused {
		g.world.Tick(dt, ptr)
	}
	g.flashes.update(float32(dt))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor.rgba())
	g.batch.reset()

	g.drawFloor(screen)
	for i, b := range g.world.Bodies() {
		g.drawBody(screen, b, fillColors[i%len(fillColors)])
	}
	g.batch.flush(screen)

	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBodies: %d\nContacts: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), len(g.world.Bodies()), len(g.world.Contacts())))
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// drawFloor draws the world's floor and side walls.
func (g *Game) drawFloor(screen *ebiten.Image) {
	half := g.world.Config().HalfExtents()
	bl := softbody.Vec2{X: -half.X, Y: -half.Y}
	br := softbody.Vec2{X: half.X, Y: -half.Y}
	tl := softbody.Vec2{X: -half.X, Y: half.Y}
	tr := softbody.Vec2{X: half.X, Y: half.Y}

	g.batch.reserve(screen, 12)
	g.segment(tl, bl, edgeWidth, floorColor)
	g.segment(bl, br, edgeWidth, floorColor)
	g.segment(br, tr, edgeWidth, floorColor)
}

// drawBody draws the filled outline, the connections and the nodes of b.
func (g *Game) drawBody(screen *ebiten.Image, b *softbody.Body, fill Color) {
	level := g.flashes.level(b.ID)
	fill = fill.lerp(flashColor, level*0.6)
	edge := edgeColor.lerp(flashColor, level)

	outline := b.Outline()
	g.xs, g.ys = g.xs[:0], g.ys[:0]
	for _, p := range outline {
		x, y := g.cam.WorldToScreen(p)
		g.xs = append(g.xs, x)
		g.ys = append(g.ys, y)
	}
	g.batch.reserve(screen, len(outline))
	g.batch.appendPolygon(g.xs, g.ys, fill)

	for _, s := range b.Segments() {
		g.batch.reserve(screen, 4)
		if s.IsEdge {
			g.segment(s.A, s.B, edgeWidth, edge)
		} else {
			g.segment(s.A, s.B, braceWidth, braceColor)
		}
	}

	r := g.world.Config().NodeRadius * g.cam.Zoom
	for _, p := range b.Positions() {
		g.batch.reserve(screen, discSides+1)
		x, y := g.cam.WorldToScreen(p)
		g.batch.appendDisc(x, y, r, discSides, nodeColor)
	}
}

// segment draws a world-space line of the given screen width.
func (g *Game) segment(a, b softbody.Vec2, width float64, c Color) {
	x0, y0 := g.cam.WorldToScreen(a)
	x1, y1 := g.cam.WorldToScreen(b)
	g.batch.appendSegment(x0, y0, x1, y1, width, c)
}

// Run opens a window and runs world until the window is closed.
func Run(world *softbody.World, cfg RunConfig) error {
	return RunGame(NewGame(world, cfg))
}

// RunGame opens a window for an already configured game.
func RunGame(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	return ebiten.RunGame(g)
}
