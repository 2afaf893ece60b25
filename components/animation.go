package components

import (
	"github.com/automoto/spritecat/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData holds an entity's playback state and what the renderer
// should draw for it.
type AnimationData struct {
	State      *animations.State
	SheetIndex int  // last resolved sprite-sheet index
	Resolved   bool // false while the current animation is missing from the library
}

var Animation = donburi.NewComponentType[AnimationData]()

// LibraryData wraps the world's single animation catalog.
type LibraryData struct {
	*animations.Library
}

var Library = donburi.NewComponentType[LibraryData]()
