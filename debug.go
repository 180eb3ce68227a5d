package softbody

import (
	"fmt"
	"os"
	"time"
)

// tickStats holds per-tick timing and contact metrics.
// Only populated when World.debug is true.
type tickStats struct {
	stepTime     time.Duration
	collideTime  time.Duration
	bodyCount    int
	pairCount    int
	contactCount int
}

// debugLog prints timing and contact stats to stderr.
func (w *World) debugLog(stats tickStats) {
	if !w.debug {
		return
	}
	total := stats.stepTime + stats.collideTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[softbody] tick %d | step: %v | collide: %v | total: %v\n",
		w.ticks, stats.stepTime, stats.collideTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[softbody] bodies: %d | overlapping pairs: %d | contacts: %d\n",
		stats.bodyCount, stats.pairCount, stats.contactCount)
}

// debugMaxNodeCount is the node count above which a body is reported; the
// narrow phase is quadratic in nodes per overlapping pair.
const debugMaxNodeCount = 256

// debugCheckNodeCount warns on stderr if a body has too many nodes.
func debugCheckNodeCount(b *Body) {
	if len(b.Nodes) > debugMaxNodeCount {
		_, _ = fmt.Fprintf(os.Stderr, "[softbody] warning: body %s has %d nodes (threshold %d)\n",
			b.ID, len(b.Nodes), debugMaxNodeCount)
	}
}
