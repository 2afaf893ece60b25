package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionClick
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and mouse buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
}

// Shortcut plays an animation immediately while debug mode is on
type Shortcut struct {
	Key       ebiten.Key
	Animation string
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings  map[ActionID]InputBinding
	Shortcuts []Shortcut
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionClick: {
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
		},
		Shortcuts: []Shortcut{
			{ebiten.Key1, "idle"},
			{ebiten.Key2, "walk"},
			{ebiten.Key3, "pancake"},
			{ebiten.Key4, "sleep"},
			{ebiten.Key5, "play"},
			{ebiten.Key6, "run"},
			{ebiten.Key7, "jump"},
			{ebiten.Key8, "box_play"},
			{ebiten.Key9, "dance"},
			{ebiten.Key0, "damage"},
		},
	}
}
