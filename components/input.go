package components

import (
	cfg "github.com/automoto/spritecat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	CursorX, CursorY int

	// Shortcut keys that went down this frame
	ShortcutKeys []ebiten.Key
}

func (i *InputData) JustPressed(id cfg.ActionID) bool {
	return i.Current[id] && !i.Previous[id]
}

var Input = donburi.NewComponentType[InputData]()
