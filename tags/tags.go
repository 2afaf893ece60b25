package tags

import "github.com/yohamta/donburi"

var (
	Cat = donburi.NewTag().SetName("Cat")
)

// Resolv tags for hit-testing
const (
	ResolvCat   = "cat"
	ResolvProbe = "probe"
)
