package systems

import (
	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClicks reacts to a click on a cat: count it, play the click
// animation with a timed return, and pop the sprite.
func UpdateClicks(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.JustPressed(cfg.ActionClick) {
		return
	}

	hits := CatsAt(ecs, float64(input.CursorX), float64(input.CursorY))
	if len(hits) == 0 {
		return
	}

	lib := GetLibrary(ecs.World)
	counter := getOrCreateClickCounter(ecs)
	for _, cat := range hits {
		counter.Count++
		PlayAnimationThenReturn(cat, lib,
			cfg.Cat.ClickAnimation, cfg.Cat.ReturnAnimation, animations.Seconds(cfg.Cat.ClickHold))
		StartPop(cat)
	}
}

// CatsAt returns the cats whose bounds contain the screen point (x, y).
func CatsAt(ecs *ecs.ECS, x, y float64) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvCat)
	if check == nil {
		return nil
	}

	var hits []*donburi.Entry
	for _, obj := range check.Objects {
		// Check only narrows down to shared cells; test the actual bounds.
		if x < obj.X || x > obj.X+obj.W || y < obj.Y || y > obj.Y+obj.H {
			continue
		}
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			hits = append(hits, e)
		}
	}
	return hits
}

func getOrCreateClickCounter(ecs *ecs.ECS) *components.ClickCounterData {
	entry, ok := components.ClickCounter.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ClickCounter))
	}
	return components.ClickCounter.Get(entry)
}

// GetClickCount returns the number of clicks that landed on a cat.
func GetClickCount(ecs *ecs.ECS) int {
	return getOrCreateClickCounter(ecs).Count
}
