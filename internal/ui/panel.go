// internal/ui/panel.go
package ui

import (
	"image/color"

	"go-lane-battle/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelColor       = color.RGBA{R: 25, G: 35, B: 45, A: 200}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// TextPanel — полупрозрачная панель со строками текста.
type TextPanel struct {
	X, Y  int
	Width int
	Lines []string
}

func NewTextPanel(x, y, width int) *TextPanel {
	return &TextPanel{X: x, Y: y, Width: width}
}

// Height зависит от числа строк.
func (p *TextPanel) Height() int {
	return len(p.Lines)*config.HUDLineHeight + config.HUDPadding
}

func (p *TextPanel) Draw(screen *ebiten.Image) {
	if len(p.Lines) == 0 {
		return
	}
	x, y := float32(p.X), float32(p.Y)
	vector.DrawFilledRect(screen, x, y, float32(p.Width), float32(p.Height()), panelColor, true)
	vector.StrokeRect(screen, x, y, float32(p.Width), float32(p.Height()), 1, panelBorderColor, true)
	for i, line := range p.Lines {
		text.Draw(screen, line, Face, p.X+config.HUDPadding/2, p.Y+config.HUDLineHeight*(i+1), config.TextLightColor)
	}
}

// Overlay затемняет весь экран и пишет заголовок по центру.
func Overlay(screen *ebiten.Image, title string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	if title == "" {
		return
	}
	DrawOutlined(screen, title, config.ScreenWidth/2, config.ScreenHeight/2-20, 1, config.TextLightColor, config.TextDarkColor)
}
