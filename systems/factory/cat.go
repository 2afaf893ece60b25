package factory

import (
	"github.com/automoto/spritecat/archetypes"
	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCat spawns an animated cat centered on (x, y), playing the library's
// baseline animation. sheet may be nil when the sprite sheet failed to load.
func CreateCat(ecs *ecs.ECS, lib *animations.Library, sheet *ebiten.Image, x, y float64) *donburi.Entry {
	cat := archetypes.Cat.Spawn(ecs)

	w := float64(cfg.Sheet.FrameWidth) * cfg.Cat.Scale
	h := float64(cfg.Sheet.FrameHeight) * cfg.Cat.Scale
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvCat)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = cat
	components.Object.SetValue(cat, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	state := lib.NewState()
	components.Animation.SetValue(cat, components.AnimationData{
		State:      state,
		SheetIndex: state.SheetIndex(),
		Resolved:   true,
	})

	components.SpriteSheet.SetValue(cat, components.SpriteSheetData{
		Image:       sheet,
		FrameWidth:  cfg.Sheet.FrameWidth,
		FrameHeight: cfg.Sheet.FrameHeight,
		Columns:     cfg.Sheet.Columns,
		Scale:       cfg.Cat.Scale,
		Frames:      make(map[int]*ebiten.Image),
	})

	components.Tween.SetValue(cat, components.TweenData{Scale: 1})

	return cat
}

// CreateClickCounter creates the counter singleton, seeded from saved progress.
func CreateClickCounter(ecs *ecs.ECS, count int) *donburi.Entry {
	entry := archetypes.ClickCounter.Spawn(ecs)
	components.ClickCounter.SetValue(entry, components.ClickCounterData{Count: count})
	return entry
}
