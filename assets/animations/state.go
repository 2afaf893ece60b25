package animations

import (
	"fmt"
	"strings"
	"time"
)

// State tracks one entity's playback: which animation, which frame, the
// frame timer and an optional scheduled switch back to another animation.
// A State must only be used by one goroutine at a time.
type State struct {
	current    string
	frame      int
	timer      repeatTimer
	pending    *transition
	sheetIndex int
}

type transition struct {
	target string
	timer  onceTimer
}

// NewState starts an entity in the named animation. The name is not checked
// against any library; an unresolvable name simply shows nothing new until
// a command switches to one that resolves.
func NewState(name string, frameDuration time.Duration) (*State, error) {
	if frameDuration <= 0 {
		return nil, fmt.Errorf("state %q: frame duration %v: %w", name, frameDuration, ErrNonPositiveDuration)
	}
	return &State{
		current: name,
		timer:   newRepeatTimer(frameDuration),
	}, nil
}

func (s *State) Animation() string { return s.current }

// Frame is the zero-based position within the current animation.
func (s *State) Frame() int { return s.frame }

// SheetIndex is the sprite-sheet index produced by the last successful Advance.
func (s *State) SheetIndex() int { return s.sheetIndex }

func (s *State) HasPending() bool { return s.pending != nil }

// Pending reports the scheduled return target and the time left before it fires.
func (s *State) Pending() (target string, remaining time.Duration, ok bool) {
	if s.pending == nil {
		return "", 0, false
	}
	return s.pending.target, s.pending.timer.remaining(), true
}

// PlayNow switches to name immediately from its first frame and drops any
// scheduled return. Unknown names are rejected and leave s untouched.
func (s *State) PlayNow(name string, lib *Library) error {
	a, ok := lib.Get(name)
	if !ok {
		return fmt.Errorf("play %q: %w", name, ErrUnknownAnimation)
	}
	s.switchTo(a)
	s.pending = nil
	return nil
}

// PlayThenReturn plays name now and switches to returnTo once hold has
// elapsed. A later PlayNow or PlayThenReturn replaces the scheduled return.
func (s *State) PlayThenReturn(name, returnTo string, hold time.Duration, lib *Library) error {
	a, ok := lib.Get(name)
	if !ok {
		return fmt.Errorf("play %q: %w", name, ErrUnknownAnimation)
	}
	if _, ok := lib.Get(returnTo); !ok {
		return fmt.Errorf("return to %q: %w", returnTo, ErrUnknownAnimation)
	}
	if hold <= 0 {
		return fmt.Errorf("hold %v: %w", hold, ErrNonPositiveDuration)
	}
	s.switchTo(a)
	s.pending = &transition{target: returnTo, timer: newOnceTimer(hold)}
	return nil
}

func (s *State) switchTo(a Animation) {
	s.current = a.name
	s.frame = 0
	s.timer = newRepeatTimer(a.frameDuration)
}

// Advance moves the state forward by dt and returns the sheet index to show.
// A scheduled return is resolved before frame timing so that it takes effect
// in the same tick. ok is false when the current animation is not in lib; the
// previous sheet index is returned unchanged in that case.
func (s *State) Advance(dt time.Duration, lib *Library) (sheetIndex int, ok bool) {
	if dt < 0 {
		dt = 0
	}

	switched := false
	if p := s.pending; p != nil && p.timer.tick(dt) {
		s.current = p.target
		s.frame = 0
		s.pending = nil
		if a, ok := lib.Get(s.current); ok {
			s.timer = newRepeatTimer(a.frameDuration)
		}
		switched = true
	}

	a, found := lib.Get(s.current)
	if !found {
		return s.sheetIndex, false
	}

	// Out of range only when the state was last advanced against another library.
	if s.frame >= len(a.frames) {
		s.frame = 0
	}
	// The tick that fired the return was spent holding the previous animation,
	// so the target starts on its first frame.
	if !switched && s.timer.tick(dt) {
		s.frame = (s.frame + 1) % len(a.frames)
	}

	s.sheetIndex = a.frames[s.frame]
	return s.sheetIndex, true
}

// PendingInfo describes a scheduled return.
type PendingInfo struct {
	Target    string
	Remaining time.Duration
}

// Info is a read-only snapshot for overlays.
type Info struct {
	Animation  string
	Frame      int // 1-based
	FrameCount int
	SheetIndex int
	Resolved   bool
	Pending    *PendingInfo
}

func (s *State) Info(lib *Library) Info {
	info := Info{
		Animation:  s.current,
		Frame:      s.frame + 1,
		SheetIndex: s.sheetIndex,
	}
	if a, ok := lib.Get(s.current); ok {
		info.Resolved = true
		info.FrameCount = len(a.frames)
	}
	if target, remaining, ok := s.Pending(); ok {
		info.Pending = &PendingInfo{Target: target, Remaining: remaining}
	}
	return info
}

func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current Animation: %s\n", i.Animation)
	fmt.Fprintf(&b, "Frame Index: %d\n", i.SheetIndex)
	if i.Resolved {
		fmt.Fprintf(&b, "Frame: %d/%d\n", i.Frame, i.FrameCount)
	} else {
		b.WriteString("Frame: Unknown\n")
	}
	if i.Pending != nil {
		fmt.Fprintf(&b, "Next: %s in %.1fs", i.Pending.Target, i.Pending.Remaining.Seconds())
	} else {
		b.WriteString("Next: None")
	}
	return b.String()
}
