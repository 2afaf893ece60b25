package systems

import (
	"fmt"
	"log"

	"github.com/automoto/spritecat/components"
	cfg "github.com/automoto/spritecat/config"
	"github.com/automoto/spritecat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugSheetOp = &ebiten.DrawImageOptions{}

// UpdateDebug toggles debug mode and, while it is on, plays the animation
// bound to any shortcut key pressed this frame.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	debug := GetOrCreateDebug(ecs)

	if input.JustPressed(cfg.ActionToggleDebug) {
		debug.Enabled = !debug.Enabled
		log.Printf("[debug] debug mode: %v", debug.Enabled)
	}
	if !debug.Enabled || len(input.ShortcutKeys) == 0 {
		return
	}

	name, ok := shortcutAnimation(input.ShortcutKeys[0])
	if !ok {
		return
	}
	lib := GetLibrary(ecs.World)
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if PlayAnimation(e, lib, name) {
			log.Printf("[debug] playing %s animation", name)
		}
	})
}

func shortcutAnimation(key ebiten.Key) (string, bool) {
	for _, sc := range cfg.Input.Shortcuts {
		if sc.Key == key {
			return sc.Animation, true
		}
	}
	return "", false
}

// GetOrCreateDebug returns the debug singleton, seeded from config.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Enabled})
	}
	return components.Debug.Get(entry)
}

// DrawDebug shows the whole sprite sheet with a numbered grid and the cell
// each cat is currently displaying highlighted.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}

	components.SpriteSheet.Each(ecs.World, func(e *donburi.Entry) {
		sheet := components.SpriteSheet.Get(e)
		if sheet.Image == nil {
			return
		}
		current := -1
		if e.HasComponent(components.Animation) {
			current = components.Animation.Get(e).SheetIndex
		}
		drawSheetGrid(screen, sheet, current)
	})
}

func drawSheetGrid(screen *ebiten.Image, sheet *components.SpriteSheetData, current int) {
	scale := cfg.Debug.SheetScale
	ox, oy := cfg.Debug.SheetX, cfg.Debug.SheetY

	debugSheetOp.GeoM.Reset()
	debugSheetOp.ColorScale.Reset()
	debugSheetOp.GeoM.Scale(scale, scale)
	debugSheetOp.GeoM.Translate(ox, oy)
	debugSheetOp.ColorScale.ScaleAlpha(cfg.Debug.SheetAlpha)
	screen.DrawImage(sheet.Image, debugSheetOp)

	cols := sheet.Columns
	rows := sheet.Image.Bounds().Dy() / sheet.FrameHeight
	cellW := float32(float64(sheet.FrameWidth) * scale)
	cellH := float32(float64(sheet.FrameHeight) * scale)
	face := fonts.Small.Get()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			index := row*cols + col
			x := float32(ox) + float32(col)*cellW
			y := float32(oy) + float32(row)*cellH

			clr := cfg.Debug.GridColor
			width := float32(1)
			if index == current {
				clr = cfg.Debug.LabelColor
				width = 2
			}
			vector.StrokeRect(screen, x, y, cellW, cellH, width, clr, false)
			text.Draw(screen, fmt.Sprint(index), face, int(x)+2, int(y)+12, cfg.Debug.LabelColor)
		}
	}
}
