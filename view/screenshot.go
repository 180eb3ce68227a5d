package view

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next drawn frame. Frames are
// written as PNG files to RunConfig.ScreenshotDir.
func (g *Game) Screenshot(label string) {
	g.shots = append(g.shots, label)
}

// flushScreenshots writes every queued capture of screen. Failures are
// logged and never stop the game.
func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	defer func() { g.shots = g.shots[:0] }()

	dir := g.cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[softbody] screenshot: mkdir %s: %v\n", dir, err)
		return
	}

	frame := capture(screen)
	for i, label := range g.shots {
		name := shotName(g.world.Ticks(), i, label)
		if err := saveFrame(filepath.Join(dir, name), frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[softbody] screenshot: %v\n", err)
		}
	}
}

// capture copies the drawn frame. Ebitengine hands out premultiplied RGBA,
// which is what image.RGBA holds, so the PNG encoder converts the alpha.
func capture(screen *ebiten.Image) *image.RGBA {
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)
	return frame
}

// shotName names a capture after the simulation tick it shows. Label runes
// outside [A-Za-z0-9.-] become '_'; an empty label becomes "frame".
func shotName(tick uint64, seq int, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "frame"
	}
	label = strings.Map(func(r rune) rune {
		if r == '-' || r == '.' || r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return r
		}
		return '_'
	}, label)
	return fmt.Sprintf("tick%06d_%d_%s.png", tick, seq, label)
}

func saveFrame(path string, frame image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := png.Encode(f, frame); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
