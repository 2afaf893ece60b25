package factory

import (
	"errors"
	"testing"

	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBuildLibrary_BuiltInCatalog(t *testing.T) {
	lib, err := BuildLibrary(cfg.Animations, cfg.BaselineAnimation)
	if err != nil {
		t.Fatalf("BuildLibrary: %v", err)
	}
	if lib.Len() != len(cfg.Animations) {
		t.Errorf("Expected %d animations, got %d", len(cfg.Animations), lib.Len())
	}

	tests := []struct {
		name       string
		frameCount int
		first      int
		last       int
	}{
		{"idle", 6, 0, 5},
		{"pancake", 1, 24, 24},
		{"cute", 9, 48, 56},
		{"box_play", 33, 84, 119},
		{"damage", 9, 204, 211},
	}
	for _, tt := range tests {
		a, ok := lib.Get(tt.name)
		if !ok {
			t.Errorf("Expected %s in library", tt.name)
			continue
		}
		if a.FrameCount() != tt.frameCount {
			t.Errorf("%s: expected %d frames, got %d", tt.name, tt.frameCount, a.FrameCount())
		}
		if a.Frame(0) != tt.first || a.Frame(a.FrameCount()-1) != tt.last {
			t.Errorf("%s: expected %d..%d, got %v", tt.name, tt.first, tt.last, a.Frames())
		}
	}

	cute, _ := lib.Get("cute")
	if cute.FrameDuration() != animations.Seconds(0.15) {
		t.Errorf("Expected cute at 150ms, got %v", cute.FrameDuration())
	}
}

func TestBuildLibrary_Errors(t *testing.T) {
	tests := []struct {
		name     string
		defs     map[string]cfg.AnimationDef
		baseline string
		wantErr  error
	}{
		{
			name:     "no runs",
			defs:     map[string]cfg.AnimationDef{"idle": {Duration: 0.5}},
			baseline: "idle",
			wantErr:  animations.ErrEmptyAnimation,
		},
		{
			name:     "zero duration",
			defs:     map[string]cfg.AnimationDef{"idle": {Runs: []cfg.FrameRun{{First: 0, Last: 1}}}},
			baseline: "idle",
			wantErr:  animations.ErrNonPositiveDuration,
		},
		{
			name:     "missing baseline",
			defs:     map[string]cfg.AnimationDef{"walk": {Runs: []cfg.FrameRun{{First: 0, Last: 1}}, Duration: 0.2}},
			baseline: "idle",
			wantErr:  animations.ErrUnknownAnimation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLibrary(tt.defs, tt.baseline)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateCat(t *testing.T) {
	lib, err := BuildLibrary(cfg.Animations, cfg.BaselineAnimation)
	if err != nil {
		t.Fatal(err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	CreateLibrary(e, lib)
	spaceEntry := CreateSpace(e, 640, 640, 16, 16)

	cat := CreateCat(e, lib, nil, 320, 320)

	anim := components.Animation.Get(cat)
	if anim.State.Animation() != cfg.BaselineAnimation || anim.State.Frame() != 0 {
		t.Errorf("Expected %s at frame 0, got %s at %d",
			cfg.BaselineAnimation, anim.State.Animation(), anim.State.Frame())
	}

	obj := components.Object.Get(cat)
	w := float64(cfg.Sheet.FrameWidth) * cfg.Cat.Scale
	if obj.X != 320-w/2 || obj.W != w {
		t.Errorf("Expected object centered on 320 with width %f, got x=%f w=%f", w, obj.X, obj.W)
	}
	if obj.Data != cat {
		t.Error("Expected resolv object to point back at its entry")
	}

	space := components.Space.Get(spaceEntry)
	found := false
	for _, o := range space.Objects() {
		if o == obj.Object {
			found = true
		}
	}
	if !found {
		t.Error("Expected cat object to be added to the space")
	}

	if components.Tween.Get(cat).Scale != 1 {
		t.Errorf("Expected tween scale 1, got %f", components.Tween.Get(cat).Scale)
	}

	libEntry, ok := components.Library.First(e.World)
	if !ok || components.Library.Get(libEntry).Library != lib {
		t.Error("Expected the library singleton to hold the built library")
	}
}
