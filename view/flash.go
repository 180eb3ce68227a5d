package view

import (
	"github.com/google/uuid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash is a decaying highlight on one body, driven by a tween from 1 to 0.
type flash struct {
	tween *gween.Tween
	level float64
}

// flashes tracks the contact highlight of every recently struck body. There
// is no global animation manager: the Game calls update once per frame.
type flashes struct {
	active   map[uuid.UUID]*flash
	duration float32
	easeFn   ease.TweenFunc
}

func newFlashes(duration float32, easeFn ease.TweenFunc) flashes {
	return flashes{
		active:   make(map[uuid.UUID]*flash),
		duration: duration,
		easeFn:   easeFn,
	}
}

// hit restarts the highlight of body id at full strength.
func (f *flashes) hit(id uuid.UUID) {
	f.active[id] = &flash{
		tween: gween.New(1, 0, f.duration, f.easeFn),
		level: 1,
	}
}

// update advances every highlight by dt seconds and forgets finished ones.
func (f *flashes) update(dt float32) {
	for id, fl := range f.active {
		val, finished := fl.tween.Update(dt)
		fl.level = float64(val)
		if finished {
			delete(f.active, id)
		}
	}
}

// level returns the current highlight of body id in [0, 1].
func (f *flashes) level(id uuid.UUID) float64 {
	if fl, ok := f.active[id]; ok {
		return fl.level
	}
	return 0
}
