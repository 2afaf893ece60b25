package animations

import (
	"errors"
	"testing"
	"time"
)

func TestNewAnimation_Validation(t *testing.T) {
	tests := []struct {
		name     string
		animName string
		frames   []int
		duration time.Duration
		wantErr  error
	}{
		{"valid", "idle", []int{0, 1, 2}, 500 * time.Millisecond, nil},
		{"single frame", "pancake", []int{24}, 500 * time.Millisecond, nil},
		{"duplicates allowed", "damage", []int{211, 211}, 200 * time.Millisecond, nil},
		{"no frames", "empty", nil, time.Second, ErrEmptyAnimation},
		{"zero duration", "idle", []int{0}, 0, ErrNonPositiveDuration},
		{"negative duration", "idle", []int{0}, -time.Second, ErrNonPositiveDuration},
		{"negative frame", "idle", []int{0, -1}, time.Second, ErrNegativeFrame},
		{"no name", "", []int{0}, time.Second, ErrUnnamedAnimation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimation(tt.animName, tt.frames, tt.duration)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewAnimation_CopiesFrames(t *testing.T) {
	frames := []int{1, 2, 3}
	a, err := NewAnimation("walk", frames, 200*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	frames[0] = 99
	if a.Frame(0) != 1 {
		t.Errorf("Expected Frame(0) = 1 after caller mutation, got %d", a.Frame(0))
	}

	out := a.Frames()
	out[1] = 99
	if a.Frame(1) != 2 {
		t.Errorf("Expected Frame(1) = 2 after mutating Frames() copy, got %d", a.Frame(1))
	}
}

func TestAnimation_FrameWraps(t *testing.T) {
	a, err := NewAnimation("walk", []int{12, 13, 14}, 200*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	cases := map[int]int{0: 12, 2: 14, 3: 12, 4: 13, -1: 14}
	for i, want := range cases {
		if got := a.Frame(i); got != want {
			t.Errorf("Expected Frame(%d) = %d, got %d", i, want, got)
		}
	}
	if a.TotalDuration() != 600*time.Millisecond {
		t.Errorf("Expected TotalDuration = 600ms, got %v", a.TotalDuration())
	}
}

func TestFrameRange(t *testing.T) {
	got := FrameRange(48, 56)
	if len(got) != 9 || got[0] != 48 || got[8] != 56 {
		t.Errorf("Expected 48..56 inclusive, got %v", got)
	}

	down := FrameRange(3, 1)
	if len(down) != 3 || down[0] != 3 || down[2] != 1 {
		t.Errorf("Expected 3,2,1, got %v", down)
	}

	joined := Frames(FrameRange(84, 85), FrameRange(108, 109))
	want := []int{84, 85, 108, 109}
	if len(joined) != len(want) {
		t.Fatalf("Expected %v, got %v", want, joined)
	}
	for i := range want {
		if joined[i] != want[i] {
			t.Errorf("Expected joined[%d] = %d, got %d", i, want[i], joined[i])
		}
	}
}

func TestSeconds(t *testing.T) {
	if Seconds(0.5) != 500*time.Millisecond {
		t.Errorf("Expected 500ms, got %v", Seconds(0.5))
	}
	if Seconds(2) != 2*time.Second {
		t.Errorf("Expected 2s, got %v", Seconds(2))
	}
}
