package animations

import (
	"fmt"
	"time"
)

// Animation is a named run of sprite-sheet indices shown for a fixed time each.
// The zero value is not usable; build one with NewAnimation.
type Animation struct {
	name          string
	frames        []int
	frameDuration time.Duration
}

func NewAnimation(name string, frames []int, frameDuration time.Duration) (Animation, error) {
	if name == "" {
		return Animation{}, ErrUnnamedAnimation
	}
	if len(frames) == 0 {
		return Animation{}, fmt.Errorf("animation %q: %w", name, ErrEmptyAnimation)
	}
	if frameDuration <= 0 {
		return Animation{}, fmt.Errorf("animation %q: frame duration %v: %w", name, frameDuration, ErrNonPositiveDuration)
	}
	for i, f := range frames {
		if f < 0 {
			return Animation{}, fmt.Errorf("animation %q: frame %d is %d: %w", name, i, f, ErrNegativeFrame)
		}
	}

	owned := make([]int, len(frames))
	copy(owned, frames)
	return Animation{
		name:          name,
		frames:        owned,
		frameDuration: frameDuration,
	}, nil
}

func (a Animation) Name() string { return a.name }

// Frames returns a copy of the playback order.
func (a Animation) Frames() []int {
	out := make([]int, len(a.frames))
	copy(out, a.frames)
	return out
}

func (a Animation) FrameCount() int { return len(a.frames) }

// Frame returns the sheet index at position i, wrapping i into range.
func (a Animation) Frame(i int) int {
	n := len(a.frames)
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return a.frames[i]
}

func (a Animation) FrameDuration() time.Duration { return a.frameDuration }

// TotalDuration is how long one full cycle takes.
func (a Animation) TotalDuration() time.Duration {
	return a.frameDuration * time.Duration(len(a.frames))
}

// FrameRange returns the sheet indices first..last inclusive. A reversed range
// counts down.
func FrameRange(first, last int) []int {
	if last < first {
		out := make([]int, 0, first-last+1)
		for i := first; i >= last; i-- {
			out = append(out, i)
		}
		return out
	}
	out := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		out = append(out, i)
	}
	return out
}

// Frames concatenates runs of sheet indices, e.g. two rows of the same sheet.
func Frames(runs ...[]int) []int {
	n := 0
	for _, r := range runs {
		n += len(r)
	}
	out := make([]int, 0, n)
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}

// Seconds converts a config value in seconds to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
