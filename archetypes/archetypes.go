package archetypes

import (
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cat = newArchetype(
		tags.Cat,
		components.Object,
		components.Animation,
		components.SpriteSheet,
		components.Tween,
	)
	Library = newArchetype(
		components.Library,
	)
	Space = newArchetype(
		components.Space,
	)
	ClickCounter = newArchetype(
		components.ClickCounter,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
