// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button — прямоугольная кнопка с подписью.
type Button struct {
	Rect     image.Rectangle
	Text     string
	BgColor  color.Color
	Disabled bool
	Selected bool
}

var (
	buttonColor         = color.RGBA{R: 40, G: 55, B: 70, A: 255}
	buttonSelectedColor = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	buttonDisabledColor = color.RGBA{R: 50, G: 50, B: 50, A: 200}
	buttonBorderColor   = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label, BgColor: buttonColor}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked — попадание по активной кнопке.
func (b *Button) Clicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = buttonDisabledColor
	case b.Selected:
		bg = buttonSelectedColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, buttonBorderColor, true)
	DrawCentered(screen, b.Text, b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+(b.Rect.Dy()-13)/2, color.White)
}

// ButtonColumn раскладывает кнопки столбиком от (x, y).
func ButtonColumn(labels []string, x, y, width, height, gap int) []*Button {
	buttons := make([]*Button, len(labels))
	for i, label := range labels {
		top := y + i*(height+gap)
		buttons[i] = NewButton(image.Rect(x, top, x+width, top+height), label)
	}
	return buttons
}
