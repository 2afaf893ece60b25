package systems

import (
	"image/color"

	"github.com/automoto/spritecat/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawAnimated renders entities with an Animation component at their
// current sheet index, scaled about their center.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.SpriteSheet) || !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		anim := components.Animation.Get(e)
		sheet := components.SpriteSheet.Get(e)

		scale := sheet.Scale
		if e.HasComponent(components.Tween) {
			scale *= components.Tween.Get(e).Scale
		}
		cx := o.X + o.W/2
		cy := o.Y + o.H/2
		w := float64(sheet.FrameWidth) * scale
		h := float64(sheet.FrameHeight) * scale

		img := frameImage(sheet, anim.SheetIndex)
		if img == nil {
			// No sheet loaded: keep the hit area visible.
			vector.FillRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h),
				color.RGBA{200, 120, 60, 255}, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(cx-w/2, cy-h/2)
		screen.DrawImage(img, drawOp)
	})
}

// frameImage returns the cached sub-image for a sheet index, slicing it on
// first use.
func frameImage(sheet *components.SpriteSheetData, index int) *ebiten.Image {
	if sheet.Image == nil {
		return nil
	}
	if img, ok := sheet.Frames[index]; ok {
		return img
	}
	rect := sheet.FrameRect(index)
	if !rect.In(sheet.Image.Bounds()) {
		return nil
	}
	img := sheet.Image.SubImage(rect).(*ebiten.Image)
	if sheet.Frames == nil {
		sheet.Frames = make(map[int]*ebiten.Image)
	}
	sheet.Frames[index] = img
	return img
}
