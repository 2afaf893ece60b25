package config

// FrameRun is an inclusive run of sprite-sheet indices.
type FrameRun struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

// AnimationDef describes one catalog entry. Runs are played in order.
type AnimationDef struct {
	Runs     []FrameRun `yaml:"runs"`
	Duration float64    `yaml:"duration"` // seconds per frame
}

// BaselineAnimation is the animation new cats start in.
const BaselineAnimation = "idle"

// Animations is the built-in cat catalog, laid out on a 12-column sheet.
var Animations = map[string]AnimationDef{
	"idle":    {Runs: []FrameRun{{0, 5}}, Duration: 0.5},
	"walk":    {Runs: []FrameRun{{12, 14}}, Duration: 0.2},
	"pancake": {Runs: []FrameRun{{24, 24}}, Duration: 0.5},
	"sleep":   {Runs: []FrameRun{{36, 38}}, Duration: 0.5},
	"play":    {Runs: []FrameRun{{48, 56}}, Duration: 0.15},
	"cute":    {Runs: []FrameRun{{48, 56}}, Duration: 0.15}, // click reaction
	"run":     {Runs: []FrameRun{{60, 64}}, Duration: 0.05},
	"jump":    {Runs: []FrameRun{{72, 79}}, Duration: 0.1},
	// box cats span two rows
	"box_play": {Runs: []FrameRun{{84, 104}, {108, 119}}, Duration: 0.2},
	"dance":    {Runs: []FrameRun{{132, 135}}, Duration: 0.2},
	// last frame held for an extra beat
	"damage": {Runs: []FrameRun{{204, 211}, {211, 211}}, Duration: 0.2},
}
