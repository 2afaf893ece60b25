package systems

import (
	"log"
	"time"

	"github.com/automoto/spritecat/assets/animations"
	"github.com/automoto/spritecat/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the simulated time covered by one ebiten update.
func tickDelta() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// UpdateAnimations advances every animated entity by one tick.
func UpdateAnimations(ecs *ecs.ECS) {
	AdvanceAnimations(ecs.World, GetLibrary(ecs.World), tickDelta())
}

// AdvanceAnimations advances every animated entity in w by dt against lib.
// Entities whose animation is missing from lib keep their last sheet index.
func AdvanceAnimations(w donburi.World, lib *animations.Library, dt time.Duration) {
	components.Animation.Each(w, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.State == nil {
			return
		}

		index, ok := anim.State.Advance(dt, lib)
		if !ok {
			if anim.Resolved {
				log.Printf("[animation] %q is not in the library, holding sheet index %d",
					anim.State.Animation(), anim.SheetIndex)
			}
			anim.Resolved = false
			return
		}
		anim.SheetIndex = index
		anim.Resolved = true
	})
}

// GetLibrary returns the world's animation catalog, or nil if none was created.
func GetLibrary(w donburi.World) *animations.Library {
	entry, ok := components.Library.First(w)
	if !ok {
		return nil
	}
	return components.Library.Get(entry).Library
}

// PlayAnimation switches e to name immediately. Unknown names are logged and ignored.
func PlayAnimation(e *donburi.Entry, lib *animations.Library, name string) bool {
	anim := components.Animation.Get(e)
	if err := anim.State.PlayNow(name, lib); err != nil {
		log.Printf("[animation] %v", err)
		return false
	}
	return true
}

// PlayAnimationThenReturn plays name on e and returns to returnTo after hold.
func PlayAnimationThenReturn(e *donburi.Entry, lib *animations.Library, name, returnTo string, hold time.Duration) bool {
	anim := components.Animation.Get(e)
	if err := anim.State.PlayThenReturn(name, returnTo, hold, lib); err != nil {
		log.Printf("[animation] %v", err)
		return false
	}
	return true
}
