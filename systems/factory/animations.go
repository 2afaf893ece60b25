package factory

import (
	"fmt"
	"sort"

	"github.com/automoto/spritecat/archetypes"
	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildLibrary turns catalog definitions into a frozen animation library.
func BuildLibrary(defs map[string]cfg.AnimationDef, baseline string) (*animations.Library, error) {
	// Sorted so that a bad catalog always reports the same entry.
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	anims := make([]animations.Animation, 0, len(defs))
	for _, name := range names {
		def := defs[name]
		runs := make([][]int, 0, len(def.Runs))
		for _, r := range def.Runs {
			runs = append(runs, animations.FrameRange(r.First, r.Last))
		}
		a, err := animations.NewAnimation(name, animations.Frames(runs...), animations.Seconds(def.Duration))
		if err != nil {
			return nil, fmt.Errorf("build library: %w", err)
		}
		anims = append(anims, a)
	}

	lib, err := animations.NewLibrary(baseline, anims...)
	if err != nil {
		return nil, fmt.Errorf("build library: %w", err)
	}
	return lib, nil
}

// CreateLibrary stores lib as the world's animation catalog.
func CreateLibrary(ecs *ecs.ECS, lib *animations.Library) *donburi.Entry {
	entry := archetypes.Library.Spawn(ecs)
	components.Library.SetValue(entry, components.LibraryData{Library: lib})
	return entry
}
