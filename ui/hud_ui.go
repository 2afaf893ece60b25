package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/spritecat/assets/animations"
	cfg "github.com/automoto/spritecat/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD holds the ebitenui click counter and the debug info panel.
type HUD struct {
	UI      *ebitenui.UI
	DebugUI *ebitenui.UI

	counterLabel *widget.Label
	debugLabel   *widget.Label

	normalFace text.Face
	smallFace  text.Face

	showDebug bool
}

// NewHUD creates the HUD with ebitenui
func NewHUD() (*HUD, error) {
	h := &HUD{}
	if err := h.loadFonts(); err != nil {
		return nil, err
	}
	h.buildCounter()
	h.buildDebugPanel()
	return h, nil
}

func (h *HUD) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("hud fonts: %w", err)
	}

	// Store as text.Face interface for ebitenui compatibility
	h.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.FontSize,
	}
	h.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.SmallFontSize,
	}
	return nil
}

func (h *HUD) buildCounter() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bottom := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	h.counterLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf(cfg.HUD.CounterFormat, 0), &h.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.TextColor,
		}),
	)
	bottom.AddChild(h.counterLabel)
	rootContainer.AddChild(bottom)

	h.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (h *HUD) buildDebugPanel() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	h.debugLabel = widget.NewLabel(
		widget.LabelOpts.Text("Debug Info", &h.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(h.debugLabel)
	rootContainer.AddChild(panel)

	h.DebugUI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Refresh copies world state into the widgets. info is nil when there is no cat.
func (h *HUD) Refresh(clicks int, debug bool, info *animations.Info) {
	h.counterLabel.Label = fmt.Sprintf(cfg.HUD.CounterFormat, clicks)
	h.showDebug = debug
	if debug {
		h.debugLabel.Label = DebugText(info)
	}
}

// DebugText renders the debug panel contents.
func DebugText(info *animations.Info) string {
	var b strings.Builder
	b.WriteString("Debug Mode (Press D to toggle)\n")
	if info != nil {
		b.WriteString(info.String())
		b.WriteString("\n")
	}
	b.WriteString("\nAnimation Shortcuts:\n")
	for i, sc := range cfg.Input.Shortcuts {
		fmt.Fprintf(&b, "%s: %s", shortcutLabel(sc.Key), sc.Animation)
		if i%4 == 3 || i == len(cfg.Input.Shortcuts)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\nClick on cat for ")
	b.WriteString(cfg.Cat.ClickAnimation)
	b.WriteString(" animation")
	return b.String()
}

func shortcutLabel(k ebiten.Key) string {
	return strings.TrimPrefix(k.String(), "Digit")
}

func (h *HUD) Update() {
	h.UI.Update()
	if h.showDebug {
		h.DebugUI.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.UI.Draw(screen)
	if h.showDebug {
		h.DebugUI.Draw(screen)
	}
}
