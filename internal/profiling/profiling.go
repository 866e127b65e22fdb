package profiling

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timers and counters for the frame pipeline.

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	counters    = make(map[string]int64)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("scene.Build")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		mu.Unlock()
	}
}

// Count adds n to the named counter.
func Count(name string, n int) {
	mu.Lock()
	counters[name] += int64(n)
	mu.Unlock()
}

// ResetFrame clears current per-frame totals and counters. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	clear(counters)
	mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(frameTotals)
}

// Counters returns a copy of current per-frame counters.
func Counters() map[string]int64 {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(counters)
}

// TopN formats top N durations from the current frame totals.
// Example: "scene.Build:4.2ms, scene.Emit:2.1ms"
func TopN(n int) string {
	ss := Snapshot()
	names := slices.Collect(maps.Keys(ss))
	slices.SortFunc(names, func(a, b string) int {
		if ss[a] != ss[b] {
			if ss[a] > ss[b] {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	n = min(n, len(names))
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		parts = append(parts, name+":"+formatMs(ss[name]))
	}
	return strings.Join(parts, ", ")
}

// CounterLine formats all counters sorted by name, e.g. "chunks.built=9 faces=120".
func CounterLine() string {
	cs := Counters()
	names := slices.Sorted(maps.Keys(cs))
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strconv.FormatInt(cs[name], 10))
	}
	return strings.Join(parts, " ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
