package softbody

import (
	"encoding/json"
	"fmt"
)

// scenarioStep represents a single action in a scenario script.
type scenarioStep struct {
	Action string  `json:"action"`
	Shape  string  `json:"shape,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	VX     float64 `json:"vx,omitempty"`
	VY     float64 `json:"vy,omitempty"`
	Size   float64 `json:"size,omitempty"`
	Sides  int     `json:"sides,omitempty"`
	Cols   int     `json:"cols,omitempty"`
	Rows   int     `json:"rows,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON structure for a scenario.
type scenarioScript struct {
	Steps []scenarioStep `json:"steps"`
}

// ScenarioRunner sequences body spawns and pointer input across frames for
// headless regression runs and scripted demos. Call Step once per frame and
// pass the returned Pointer to World.Tick.
type ScenarioRunner struct {
	steps     []scenarioStep
	cursor    int
	waitCount int
	done      bool

	pointer Pointer
	queue   []Pointer
}

// LoadScenario parses a JSON scenario script and returns a runner for it.
func LoadScenario(jsonData []byte) (*ScenarioRunner, error) {
	var script scenarioScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "spawn":
			if _, err := st.shape(DefaultConfig().DefaultRestingLength); err != nil {
				return nil, fmt.Errorf("parse scenario: step %d: %w", i, err)
			}
		case "wait", "press", "move", "release", "drag":
		default:
			return nil, fmt.Errorf("parse scenario: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScenarioRunner{steps: script.Steps}, nil
}

// Done reports whether every step has executed and all queued pointer input
// has been consumed.
func (r *ScenarioRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame against w and returns the pointer
// signal for this frame's tick. Spawns take effect immediately; a wait holds
// the runner for the given number of frames.
func (r *ScenarioRunner) Step(w *World) Pointer {
	if len(r.queue) > 0 {
		r.pointer = r.queue[0]
		copy(r.queue, r.queue[1:])
		r.queue = r.queue[:len(r.queue)-1]
		r.checkDone()
		return r.pointer
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return r.pointer
	}

	// Spawns are instant, so run them back to back until a step consumes the
	// frame.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "spawn":
			r.spawn(w, st)
			continue
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
		case "press", "move":
			r.pointer = Pointer{Active: true, Pos: Vec2{st.X, st.Y}}
		case "release":
			r.pointer = Pointer{}
		case "drag":
			r.queueDrag(st)
			r.pointer = r.queue[0]
			r.queue = r.queue[1:]
		}
		break
	}

	r.checkDone()
	return r.pointer
}

func (r *ScenarioRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}

// queueDrag queues a full drag: press at the start, linearly interpolated
// moves over frames-2 frames, and release at the end. Minimum frames is 2.
func (r *ScenarioRunner) queueDrag(st scenarioStep) {
	frames := st.Frames
	if frames < 2 {
		frames = 2
	}
	from := Vec2{st.FromX, st.FromY}
	to := Vec2{st.ToX, st.ToY}

	r.queue = append(r.queue, Pointer{Active: true, Pos: from})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.queue = append(r.queue, Pointer{Active: true, Pos: from.Add(to.Sub(from).Scale(t))})
	}
	r.queue = append(r.queue, Pointer{Active: true, Pos: to})
	r.queue = append(r.queue, Pointer{})
}

func (r *ScenarioRunner) spawn(w *World, st scenarioStep) {
	shape, err := st.shape(w.cfg.DefaultRestingLength)
	if err != nil {
		// LoadScenario already rejected bad shapes.
		panic("softbody: " + err.Error())
	}
	b := w.Spawn(shape, Vec2{st.X, st.Y})
	v := Vec2{st.VX, st.VY}
	for i := range b.Nodes {
		b.Nodes[i].Vel = v
	}
}

// shape builds the Shape a spawn step names. size defaults to the resting
// length.
func (st scenarioStep) shape(restingLength float64) (Shape, error) {
	size := st.Size
	if size <= 0 {
		size = restingLength
	}
	switch st.Shape {
	case "", "square":
		return Square(size), nil
	case "box":
		return Box(size, size, st.Cols, st.Rows), nil
	case "polygon":
		if st.Sides < 3 {
			return Shape{}, fmt.Errorf("polygon needs at least 3 sides, got %d", st.Sides)
		}
		return RegularPolygon(st.Sides, size/2), nil
	default:
		return Shape{}, fmt.Errorf("unknown shape %q", st.Shape)
	}
}

// RunScenario drives w with r, ticking dt per frame, until the runner is done
// or maxFrames frames have run. It returns the number of frames run.
func RunScenario(w *World, r *ScenarioRunner, dt float64, maxFrames int) int {
	frames := 0
	for frames < maxFrames && !r.Done() {
		w.Tick(dt, r.Step(w))
		frames++
	}
	return frames
}
