package animations

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func mustAnimation(t *testing.T, name string, frames []int, d time.Duration) Animation {
	t.Helper()
	a, err := NewAnimation(name, frames, d)
	if err != nil {
		t.Fatalf("NewAnimation(%q): %v", name, err)
	}
	return a
}

// newTestLibrary mirrors the shipped cat catalog closely enough for the
// timing scenarios below.
func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := NewLibrary("idle",
		mustAnimation(t, "idle", FrameRange(0, 5), 500*time.Millisecond),
		mustAnimation(t, "walk", FrameRange(12, 14), 200*time.Millisecond),
		mustAnimation(t, "pancake", []int{24}, 500*time.Millisecond),
		mustAnimation(t, "cute", FrameRange(48, 56), 150*time.Millisecond),
		mustAnimation(t, "jump", FrameRange(72, 79), 100*time.Millisecond),
	)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func TestNewLibrary_Errors(t *testing.T) {
	idle := mustAnimation(t, "idle", []int{0}, time.Second)

	if _, err := NewLibrary("idle", idle, idle); !errors.Is(err, ErrDuplicateAnimation) {
		t.Errorf("Expected ErrDuplicateAnimation, got %v", err)
	}
	if _, err := NewLibrary("sleep", idle); !errors.Is(err, ErrUnknownAnimation) {
		t.Errorf("Expected ErrUnknownAnimation for missing baseline, got %v", err)
	}
	if _, err := NewLibrary("idle", idle, Animation{}); !errors.Is(err, ErrUnnamedAnimation) {
		t.Errorf("Expected ErrUnnamedAnimation for zero Animation, got %v", err)
	}
}

func TestLibrary_Get(t *testing.T) {
	lib := newTestLibrary(t)

	a, ok := lib.Get("walk")
	if !ok {
		t.Fatal("Expected walk to be found")
	}
	if a.Name() != "walk" || a.FrameCount() != 3 {
		t.Errorf("Expected walk with 3 frames, got %q with %d", a.Name(), a.FrameCount())
	}

	if _, ok := lib.Get("groom"); ok {
		t.Error("Expected unknown name to report not found")
	}

	var nilLib *Library
	if _, ok := nilLib.Get("idle"); ok {
		t.Error("Expected nil library lookup to report not found")
	}
}

func TestLibrary_Invariants(t *testing.T) {
	lib := newTestLibrary(t)

	if lib.Len() != 5 {
		t.Errorf("Expected 5 animations, got %d", lib.Len())
	}
	for _, name := range lib.Names() {
		a, ok := lib.Get(name)
		if !ok {
			t.Errorf("Expected listed name %q to resolve", name)
			continue
		}
		if a.FrameCount() == 0 {
			t.Errorf("Expected %q to have frames", name)
		}
		if a.FrameDuration() <= 0 {
			t.Errorf("Expected %q to have a positive frame duration", name)
		}
	}
}

func TestLibrary_NewStateUsesBaseline(t *testing.T) {
	lib := newTestLibrary(t)
	s := lib.NewState()

	if s.Animation() != "idle" {
		t.Errorf("Expected default animation = idle, got %q", s.Animation())
	}
	if s.Frame() != 0 {
		t.Errorf("Expected default frame = 0, got %d", s.Frame())
	}
	if s.timer.period != 500*time.Millisecond {
		t.Errorf("Expected timer period = 500ms, got %v", s.timer.period)
	}
}

func TestLibrary_ConcurrentReaders(t *testing.T) {
	lib := newTestLibrary(t)

	states := make([]*State, 16)
	for i := range states {
		states[i] = lib.NewState()
	}

	var wg sync.WaitGroup
	for _, s := range states {
		wg.Add(1)
		go func(s *State) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Advance(100*time.Millisecond, lib)
			}
		}(s)
	}
	wg.Wait()

	// 100 ticks of 100ms is 20 idle firings: 20 mod 6 = 2.
	for i, s := range states {
		if s.Frame() != 2 {
			t.Errorf("state %d: expected frame 2, got %d", i, s.Frame())
		}
	}
}
