package main

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dolthub/swiss"
)

// globalStats is the shared station map, mutated only under mu. Workers
// merge one whole chunk per lock acquisition, so contention is bounded by a
// chunk's distinct-station count, not its line count.
type globalStats struct {
	mu      sync.Mutex
	records map[string]*Records
	merging atomic.Int64
	sealed  bool
}

func newGlobalStats() *globalStats {
	return &globalStats{records: make(map[string]*Records)}
}

// mergeChunk folds one finished chunk-local map into the shared map.
// Station bytes are decoded lossily here and only here: invalid sequences
// become U+FFFD rather than failing the run, so two local keys may collapse
// into one global entry.
func (g *globalStats) mergeChunk(local *swiss.Map[string, *Records]) {
	g.merging.Add(1)
	defer g.merging.Add(-1)

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed {
		panic("station map merged after finalize")
	}
	local.Iter(func(station string, rec *Records) (stop bool) {
		name := strings.ToValidUTF8(station, "�")
		if cur, ok := g.records[name]; ok {
			cur.Merge(rec)
		} else {
			g.records[name] = rec
		}
		return false
	})
}

// finalize seals the map and hands it to the reporter. Every worker must
// have terminated first; a merge still in flight is a programming defect,
// not a recoverable condition, so it panics.
func (g *globalStats) finalize() map[string]*Records {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n := g.merging.Load(); n != 0 {
		panic(fmt.Sprintf("station map still referenced by %d workers after join", n))
	}
	g.sealed = true
	return g.records
}
