package animations

import (
	"fmt"
	"sort"
)

// Library is the read-only catalog of animations shared by every animated
// entity. It is never modified after NewLibrary returns, so any number of
// goroutines may read it without locking.
type Library struct {
	animations map[string]Animation
	baseline   string
}

// NewLibrary builds a catalog from anims. baseline names the animation that
// defaulted states start in and must be one of anims.
func NewLibrary(baseline string, anims ...Animation) (*Library, error) {
	lib := &Library{
		animations: make(map[string]Animation, len(anims)),
		baseline:   baseline,
	}
	for _, a := range anims {
		if a.name == "" {
			return nil, ErrUnnamedAnimation
		}
		if _, dup := lib.animations[a.name]; dup {
			return nil, fmt.Errorf("library: %q: %w", a.name, ErrDuplicateAnimation)
		}
		lib.animations[a.name] = a
	}
	if _, ok := lib.animations[baseline]; !ok {
		return nil, fmt.Errorf("library: baseline %q: %w", baseline, ErrUnknownAnimation)
	}
	return lib, nil
}

// Get looks up an animation by name. Unknown names report false.
func (l *Library) Get(name string) (Animation, bool) {
	if l == nil {
		return Animation{}, false
	}
	a, ok := l.animations[name]
	return a, ok
}

// Names lists the registered animation names. Callers must not depend on
// the order.
func (l *Library) Names() []string {
	if l == nil {
		return nil
	}
	names := make([]string, 0, len(l.animations))
	for name := range l.animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.animations)
}

func (l *Library) Baseline() string { return l.baseline }

// NewState returns a state playing the baseline animation from its first frame.
func (l *Library) NewState() *State {
	a := l.animations[l.baseline]
	return &State{
		current:    a.name,
		timer:      newRepeatTimer(a.frameDuration),
		sheetIndex: a.frames[0],
	}
}
