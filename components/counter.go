package components

import "github.com/yohamta/donburi"

type ClickCounterData struct {
	Count int
}

var ClickCounter = donburi.NewComponentType[ClickCounterData]()
