// jellyterm runs the soft-body world in a terminal. Drag nodes with the
// mouse, press space to drop another square and q or Esc to quit. Contacts
// play a short tone when audio is available.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/softbody"
	"github.com/phanxgames/softbody/internal/config"
)

const (
	tickInterval = 16 * time.Millisecond // ~60 TPS
	hitCooldown  = 120 * time.Millisecond
	hitTone      = 440
	sampleRate   = beep.SampleRate(44100)
)

var (
	edgeStyle  = tcell.StyleDefault.Foreground(tcell.ColorIndianRed)
	braceStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	nodeStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hitStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	floorStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

type term struct {
	screen tcell.Screen
	world  *softbody.World
	cfg    softbody.Config

	cols, rows int
	ptr        softbody.Pointer

	// contacts since the last draw, counted by EmitContact
	hits    int
	lastHit time.Time
	audio   bool

	// audioErr is reported once the screen is released.
	audioErr error
}

func newTerm(world *softbody.World) (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &term{screen: screen, world: world, cfg: world.Config()}
	t.cols, t.rows = screen.Size()
	world.SetContactSink(t)

	// Non-fatal, the demo runs silently.
	t.audioErr = t.initAudio()
	return t, nil
}

func (t *term) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		t.audio = true
	}
	return err
}

// EmitContact implements softbody.ContactSink.
func (t *term) EmitContact(softbody.Contact) {
	t.hits++
}

func (t *term) playHit() {
	if !t.audio || time.Since(t.lastHit) < hitCooldown {
		return
	}
	t.lastHit = time.Now()
	sine, err := generators.SineTone(sampleRate, hitTone)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

// toCell maps a world position to a terminal cell. The world's y axis points
// up, rows grow downward.
func (t *term) toCell(p softbody.Vec2) (int, int) {
	half := t.cfg.HalfExtents()
	x := (p.X + half.X) / t.cfg.Width * float64(t.cols)
	y := (half.Y - p.Y) / t.cfg.Height * float64(t.rows)
	return int(math.Floor(x)), int(math.Floor(y))
}

// toWorld maps the center of cell (x, y) back to world space.
func (t *term) toWorld(x, y int) softbody.Vec2 {
	half := t.cfg.HalfExtents()
	return softbody.Vec2{
		X: (float64(x)+0.5)/float64(t.cols)*t.cfg.Width - half.X,
		Y: half.Y - (float64(y)+0.5)/float64(t.rows)*t.cfg.Height,
	}
}

func (t *term) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= t.cols || y >= t.rows {
		return
	}
	t.screen.SetContent(x, y, r, nil, style)
}

// line plots the cells between two world points.
func (t *term) line(a, b softbody.Vec2, r rune, style tcell.Style) {
	x0, y0 := t.toCell(a)
	x1, y1 := t.toCell(b)
	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		t.set(x0, y0, r, style)
		return
	}
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(x1-x0)*f))
		y := y0 + int(math.Round(float64(y1-y0)*f))
		t.set(x, y, r, style)
	}
}

func (t *term) draw() {
	t.screen.Clear()

	half := t.cfg.HalfExtents()
	t.line(softbody.Vec2{X: -half.X, Y: -half.Y}, softbody.Vec2{X: half.X, Y: -half.Y}, '=', floorStyle)

	node := nodeStyle
	if t.hits > 0 {
		node = hitStyle
	}
	for _, b := range t.world.Bodies() {
		for _, s := range b.Segments() {
			if s.IsEdge {
				t.line(s.A, s.B, '#', edgeStyle)
			} else {
				t.line(s.A, s.B, '.', braceStyle)
			}
		}
		for _, p := range b.Positions() {
			x, y := t.toCell(p)
			t.set(x, y, 'o', node)
		}
	}

	status := fmt.Sprintf(" tick %d | bodies %d | contacts %d ", t.world.Ticks(), len(t.world.Bodies()), len(t.world.Contacts()))
	if !t.audio {
		status += "| muted "
	}
	for i, r := range status {
		t.set(i, 0, r, textStyle)
	}
	t.screen.Show()
}

func (t *term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			top := softbody.Vec2{Y: t.cfg.Height/2 - t.cfg.DefaultRestingLength}
			t.world.Spawn(softbody.Square(t.cfg.DefaultRestingLength), top)
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.ptr = softbody.Pointer{
			Active: ev.Buttons()&tcell.Button1 != 0,
			Pos:    t.toWorld(x, y),
		}

	case *tcell.EventResize:
		t.cols, t.rows = t.screen.Size()
		t.screen.Sync()
	}
	return true
}

func (t *term) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	dt := tickInterval.Seconds()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case <-ticker.C:
			t.world.Tick(dt, t.ptr)
			if t.hits > 0 {
				t.playHit()
			}
			t.draw()
			t.hits = 0
		}
	}
}

func (t *term) cleanup() {
	if t.audio {
		speaker.Close()
	}
	t.screen.Fini()
	if t.audioErr != nil {
		fmt.Fprintf(os.Stderr, "audio initialization failed: %v\n", t.audioErr)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func main() {
	env, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	cfg := env.World()
	world := softbody.NewWorld(cfg)
	square := softbody.Square(cfg.DefaultRestingLength)
	world.Spawn(square, softbody.Vec2{X: -cfg.DefaultRestingLength})
	world.Spawn(square, softbody.Vec2{X: cfg.DefaultRestingLength * 0.5, Y: cfg.DefaultRestingLength * 1.5})

	t, err := newTerm(world)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.cleanup()

	t.run()
}
