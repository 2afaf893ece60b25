package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/systems"
	"github.com/automoto/spritecat/systems/factory"
	"github.com/automoto/spritecat/tags"
	"github.com/automoto/spritecat/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var background = color.RGBA{0xf5, 0xf0, 0xe6, 0xff}

// CatScene shows a single clickable animated cat.
type CatScene struct {
	ecs      *ecs.ECS
	hud      *ui.HUD
	lib      *animations.Library
	sheet    *ebiten.Image
	progress systems.SavedProgress
	once     sync.Once
}

// NewCatScene creates the scene. lib is shared read-only by every cat.
func NewCatScene(lib *animations.Library, sheet *ebiten.Image, progress systems.SavedProgress) *CatScene {
	return &CatScene{lib: lib, sheet: sheet, progress: progress}
}

func (cs *CatScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if cs.hud != nil {
		cs.hud.Refresh(systems.GetClickCount(cs.ecs), systems.GetOrCreateDebug(cs.ecs).Enabled, cs.catInfo())
		cs.hud.Update()
	}
}

func (cs *CatScene) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
	if cs.hud != nil {
		cs.hud.Draw(screen)
	}
}

// catInfo returns the first cat's playback snapshot for the debug panel.
func (cs *CatScene) catInfo() *animations.Info {
	entry, ok := tags.Cat.First(cs.ecs.World)
	if !ok {
		return nil
	}
	info := components.Animation.Get(entry).State.Info(cs.lib)
	return &info
}

func (cs *CatScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so every system sees this frame's state
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(systems.UpdateClicks)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	cs.ecs = ecs

	factory.CreateLibrary(cs.ecs, cs.lib)
	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, cfg.Space.CellWidth, cfg.Space.CellHeight)
	factory.CreateClickCounter(cs.ecs, cs.progress.Clicks)
	systems.GetOrCreateDebug(cs.ecs).Enabled = cs.progress.Debug || cfg.Debug.Enabled
	factory.CreateCat(cs.ecs, cs.lib, cs.sheet, cfg.Cat.X, cfg.Cat.Y)

	hud, err := ui.NewHUD()
	if err != nil {
		log.Printf("[hud] disabled: %v", err)
		return
	}
	cs.hud = hud
}
