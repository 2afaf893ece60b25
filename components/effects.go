package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a scale multiplier from a gween sequence (click "pop").
type TweenData struct {
	Sequence *gween.Sequence
	Scale    float64 // current multiplier, 1 = normal size
}

var Tween = donburi.NewComponentType[TweenData]()
