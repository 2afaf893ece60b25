package animations

import "time"

// repeatTimer fires every period. It fires at most once per tick; the
// remainder past the period carries into the next tick.
type repeatTimer struct {
	period  time.Duration
	elapsed time.Duration
}

func newRepeatTimer(period time.Duration) repeatTimer {
	return repeatTimer{period: period}
}

func (t *repeatTimer) tick(dt time.Duration) bool {
	if dt <= 0 || t.period <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.period {
		return false
	}
	t.elapsed %= t.period
	return true
}

// onceTimer counts down a single duration.
type onceTimer struct {
	duration time.Duration
	elapsed  time.Duration
}

func newOnceTimer(d time.Duration) onceTimer {
	return onceTimer{duration: d}
}

// tick reports true only on the tick the countdown reaches zero.
func (t *onceTimer) tick(dt time.Duration) bool {
	if t.finished() || dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		return true
	}
	return false
}

func (t *onceTimer) finished() bool { return t.elapsed >= t.duration }

func (t *onceTimer) remaining() time.Duration { return t.duration - t.elapsed }
