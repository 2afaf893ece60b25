package components

import "github.com/yohamta/donburi"

// DebugData toggles the animation overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
