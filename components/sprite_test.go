package components

import (
	"image"
	"testing"
)

func TestSpriteSheetData_FrameRect(t *testing.T) {
	sheet := &SpriteSheetData{FrameWidth: 64, FrameHeight: 64, Columns: 12}

	tests := []struct {
		index int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 64, 64)},
		{5, image.Rect(320, 0, 384, 64)},
		{12, image.Rect(0, 64, 64, 128)},
		{211, image.Rect(7*64, 17*64, 8*64, 18*64)},
	}
	for _, tt := range tests {
		if got := sheet.FrameRect(tt.index); got != tt.want {
			t.Errorf("FrameRect(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}
