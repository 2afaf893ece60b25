package systems

import (
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartPop scales e up and back down. A pop already in flight restarts.
func StartPop(e *donburi.Entry) {
	if !e.HasComponent(components.Tween) {
		return
	}
	half := cfg.Cat.PopDuration / 2
	seq := gween.NewSequence(
		gween.New(1, cfg.Cat.PopScale, half, ease.OutQuad),
		gween.New(cfg.Cat.PopScale, 1, half, ease.InQuad),
	)
	tw := components.Tween.Get(e)
	tw.Sequence = seq
	tw.Scale = 1
}

func UpdateTweens(ecs *ecs.ECS) {
	stepTweens(ecs.World, float32(1/float64(ebiten.TPS())))
}

func stepTweens(w donburi.World, dt float32) {
	components.Tween.Each(w, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Sequence == nil {
			return
		}
		v, _, done := tw.Sequence.Update(dt)
		tw.Scale = float64(v)
		if done {
			tw.Sequence = nil
			tw.Scale = 1
		}
	})
}
