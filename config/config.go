package config

import "image/color"

// Config contains the logical screen size.
type Config struct {
	Width  int
	Height int
}

// SheetConfig describes the cat sprite sheet layout.
type SheetConfig struct {
	Path        string
	FrameWidth  int
	FrameHeight int
	Columns     int
}

// CatConfig contains the animated cat's placement and click behavior.
type CatConfig struct {
	X, Y  float64 // center, in screen pixels
	Scale float64

	ClickAnimation  string
	ReturnAnimation string
	ClickHold       float64 // seconds the click animation plays before returning

	// Click "pop": scale multiplier tweened back to 1.
	PopScale    float32
	PopDuration float32 // seconds
}

// SpaceConfig sizes the resolv space used for click hit-testing.
type SpaceConfig struct {
	CellWidth  int
	CellHeight int
}

// DebugConfig contains the debug overlay settings.
type DebugConfig struct {
	Enabled bool // start with the overlay visible

	SheetX, SheetY float64 // top-left of the sprite sheet preview
	SheetScale     float64
	SheetAlpha     float32
	GridColor      color.RGBA
	LabelColor     color.RGBA
}

// HUDConfig contains HUD text and colors.
type HUDConfig struct {
	CounterFormat string
	TextColor     color.RGBA
	PanelColor    color.RGBA
	FontSize      float64
	SmallFontSize float64
}

var C *Config
var Sheet SheetConfig
var Cat CatConfig
var Space SpaceConfig
var Debug DebugConfig
var HUD HUDConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
	}

	Sheet = SheetConfig{
		Path:        "assets/images/cat_spritesheet.png",
		FrameWidth:  64,
		FrameHeight: 64,
		Columns:     12,
	}

	Cat = CatConfig{
		X:     320,
		Y:     320,
		Scale: 4,

		ClickAnimation:  "cute",
		ReturnAnimation: BaselineAnimation,
		ClickHold:       2.0,

		PopScale:    1.15,
		PopDuration: 0.25,
	}

	Space = SpaceConfig{
		CellWidth:  16,
		CellHeight: 16,
	}

	Debug = DebugConfig{
		Enabled:    false,
		SheetX:     600,
		SheetY:     140,
		SheetScale: 0.5,
		SheetAlpha: 0.7,
		GridColor:  color.RGBA{255, 0, 0, 128},
		LabelColor: color.RGBA{255, 255, 0, 255},
	}

	HUD = HUDConfig{
		CounterFormat: "Clicks: %d",
		TextColor:     color.RGBA{0, 0, 0, 255},
		PanelColor:    color.RGBA{0, 0, 0, 204},
		FontSize:      32,
		SmallFontSize: 14,
	}
}
