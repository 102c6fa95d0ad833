package hints

import (
	"sync"
	"time"
)

// monotonic is the single process-wide clock accumulator every Database
// shares, per spec.md's design notes: a global, not a per-database field.
// Each call advances it by the positive wall-clock delta since the
// previous call, clamping out backward jumps from system clock resets.
var monotonic struct {
	mu   sync.Mutex
	last time.Time
	secs float64
}

// Now returns the shared monotonic-seconds accumulator, advancing it by
// whatever positive wall-clock delta has elapsed since the last call.
// Concurrent callers may briefly observe a stale value; that's tolerated.
func Now() int64 {
	monotonic.mu.Lock()
	defer monotonic.mu.Unlock()

	now := time.Now()
	if !monotonic.last.IsZero() {
		if delta := now.Sub(monotonic.last).Seconds(); delta > 0 {
			monotonic.secs += delta
		}
	}
	monotonic.last = now
	return int64(monotonic.secs)
}

// AdvanceClockForTest fast-forwards the shared accumulator by d without
// waiting on wall-clock time, for tests exercising deadline-based
// recovery. Production code never calls this.
func AdvanceClockForTest(d time.Duration) {
	monotonic.mu.Lock()
	defer monotonic.mu.Unlock()
	monotonic.secs += d.Seconds()
}
