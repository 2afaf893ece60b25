package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/spritecat/assets"
	"github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/fonts"
	"github.com/automoto/spritecat/scenes"
	"github.com/automoto/spritecat/systems"
	"github.com/automoto/spritecat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	debug := flag.Bool("debug", false, "start with the debug overlay enabled")
	sheetPath := flag.String("sheet", config.Sheet.Path, "sprite sheet PNG")
	catalogPath := flag.String("animations", "", "optional YAML file overriding the animation catalog")
	flag.Parse()

	config.Debug.Enabled = *debug

	defs, baseline := config.Animations, config.BaselineAnimation
	if *catalogPath != "" {
		cf, err := config.LoadCatalogFile(*catalogPath)
		if err != nil {
			log.Fatalf("[catalog] %v", err)
		}
		defs, baseline = cf.Merge(defs, baseline)
		log.Printf("[catalog] loaded %d animations from %s", len(cf.Animations), *catalogPath)
	}

	lib, err := factory.BuildLibrary(defs, baseline)
	if err != nil {
		log.Fatalf("[catalog] %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	sheet, err := assets.LoadSheet(*sheetPath)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	// Initialize persistence and load saved progress
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	progress := systems.LoadProgress()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("spritecat")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := &Game{scene: scenes.NewCatScene(lib, sheet, progress)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
