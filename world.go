package softbody

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Config holds the fixed world parameters consumed by the simulation. It is
// passed by value to NewWorld and never changes afterwards.
type Config struct {
	// Width and Height are the world rectangle's full extents. The rectangle
	// is centered on the origin.
	Width, Height float64
	// NodeRadius pads body bounds and is the drawn node size.
	NodeRadius float64
	// DefaultRestingLength is the spring length used by the shape helpers.
	DefaultRestingLength float64
	// Gravity is subtracted from every node velocity each step.
	Gravity Vec2
	// Stiffness and Damping parameterize every spring connection.
	Stiffness float64
	Damping   float64
	// SkeletonStiffness scales the pull toward the skeleton targets.
	SkeletonStiffness float64
	// ForceLimit clamps every spring and skeleton force to [-ForceLimit, ForceLimit].
	ForceLimit float64
	// SubIterations is the number of integration and collision passes per
	// tick. Forces and motion are scaled by 1/SubIterations.
	SubIterations int
}

// DefaultConfig returns the stock world: a 1280x680 screen-sized rectangle,
// 5 unit nodes, 100 unit springs and gravity of 98 units/s² downward, with one
// sub-iteration per tick.
func DefaultConfig() Config {
	return Config{
		Width:                1280,
		Height:               680,
		NodeRadius:           5,
		DefaultRestingLength: 100,
		Gravity:              Vec2{0, 98},
		Stiffness:            25,
		Damping:              5,
		SkeletonStiffness:    15,
		ForceLimit:           1000,
		SubIterations:        1,
	}
}

// Validate reports the first parameter that cannot drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("world size %vx%v must be positive", c.Width, c.Height)
	case c.NodeRadius < 0:
		return fmt.Errorf("node radius %v must not be negative", c.NodeRadius)
	case c.SubIterations < 1:
		return fmt.Errorf("sub-iterations %d must be at least 1", c.SubIterations)
	case c.ForceLimit <= 0:
		return fmt.Errorf("force limit %v must be positive", c.ForceLimit)
	}
	return nil
}

// HalfExtents returns half the world's width and height.
func (c Config) HalfExtents() Vec2 {
	return Vec2{c.Width / 2, c.Height / 2}
}

// iterationScale spreads one tick's forces across its sub-iterations.
func (c Config) iterationScale() float64 {
	return 1 / float64(c.SubIterations)
}

// ContactSink receives every contact resolved during a tick. Set one on a
// World to forward contacts to presentation or an ECS.
type ContactSink interface {
	EmitContact(c Contact)
}

// ContactSinks fans every contact out to each of its sinks in order.
type ContactSinks []ContactSink

// EmitContact implements ContactSink.
func (s ContactSinks) EmitContact(c Contact) {
	for _, sink := range s {
		sink.EmitContact(c)
	}
}

// World owns the bodies of a simulation and advances them one tick at a time.
// A World is not safe for concurrent use.
type World struct {
	cfg    Config
	bodies []*Body
	sink   ContactSink
	debug  bool

	ticks    uint64
	contacts []Contact
}

// NewWorld creates an empty world. It panics if cfg does not validate.
func NewWorld(cfg Config) *World {
	if err := cfg.Validate(); err != nil {
		panic("softbody: invalid config: " + err.Error())
	}
	return &World{cfg: cfg}
}

// Config returns the world's parameters.
func (w *World) Config() Config {
	return w.cfg
}

// Ticks returns the number of completed ticks.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// AddBody adds b to the world and pads its bounds by the node radius.
// Bodies are stepped and collided in the order they were added.
func (w *World) AddBody(b *Body) *Body {
	b.refreshBounds(w.cfg.NodeRadius)
	w.bodies = append(w.bodies, b)
	return b
}

// Spawn builds a body from shape, moved so that the shape's origin sits at
// at, and adds it to the world.
func (w *World) Spawn(shape Shape, at Vec2) *Body {
	s := shape.Translate(at)
	return w.AddBody(NewBody(s.Points, s.Connections))
}

// RemoveBody removes the body with the given ID. It reports whether a body
// was removed.
func (w *World) RemoveBody(id uuid.UUID) bool {
	for i, b := range w.bodies {
		if b.ID == id {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return true
		}
	}
	return false
}

// Body returns the body with the given ID, or nil.
func (w *World) Body(id uuid.UUID) *Body {
	for _, b := range w.bodies {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Bodies returns the world's bodies. The returned slice MUST NOT be mutated.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// SetContactSink sets the receiver of resolved contacts. Pass nil to stop
// forwarding.
func (w *World) SetContactSink(sink ContactSink) {
	w.sink = sink
}

// Contacts returns the contacts resolved during the last tick. The slice is
// reused by the next tick.
func (w *World) Contacts() []Contact {
	return w.contacts
}

// SetDebugMode enables or disables debug mode. When enabled, per-tick timing
// and contact stats are logged to stderr and oversized bodies are reported.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set World debug flag so that body
// construction, which has no World, can check it.
var globalDebug bool

// Tick advances the simulation by dt seconds. An active pointer first pulls
// the nearest node to the cursor. Each sub-iteration then steps every body
// before any pair is collided, so collision always sees post-integration
// positions. Pairs are visited in insertion order, each in both directions.
func (w *World) Tick(dt float64, ptr Pointer) {
	var stats tickStats
	var t0 time.Time

	if ptr.Active {
		w.Grab(ptr.Pos)
	}

	w.contacts = w.contacts[:0]
	for range w.cfg.SubIterations {
		if w.debug {
			t0 = time.Now()
		}
		for _, b := range w.bodies {
			b.Step(w.cfg, dt)
		}
		if w.debug {
			stats.stepTime += time.Since(t0)
			t0 = time.Now()
		}

		for i := 0; i < len(w.bodies); i++ {
			for j := i + 1; j < len(w.bodies); j++ {
				if w.debug && w.bodies[i].Bounds.Overlaps(w.bodies[j].Bounds) {
					stats.pairCount++
				}
				w.contacts = collide(w.bodies[i], w.bodies[j], w.contacts)
			}
		}
		if w.debug {
			stats.collideTime += time.Since(t0)
		}
	}
	w.ticks++

	if w.sink != nil {
		for _, c := range w.contacts {
			w.sink.EmitContact(c)
		}
	}

	if w.debug {
		stats.bodyCount = len(w.bodies)
		stats.contactCount = len(w.contacts)
		w.debugLog(stats)
	}
}
