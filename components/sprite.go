package components

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteSheetData is a grid sprite sheet and its cached sub-images.
type SpriteSheetData struct {
	Image       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	Columns     int
	Scale       float64
	Frames      map[int]*ebiten.Image // keyed by sheet index
}

// FrameRect returns the source rectangle of a sheet index.
func (s *SpriteSheetData) FrameRect(index int) image.Rectangle {
	cols := s.Columns
	if cols <= 0 {
		cols = 1
	}
	sx := (index % cols) * s.FrameWidth
	sy := (index / cols) * s.FrameHeight
	return image.Rect(sx, sy, sx+s.FrameWidth, sy+s.FrameHeight)
}

var SpriteSheet = donburi.NewComponentType[SpriteSheetData]()
