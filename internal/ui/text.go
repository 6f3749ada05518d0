// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — шрифт HUD. Растровый, чтобы не зависеть от файлов шрифтов.
var Face font.Face = basicfont.Face7x13

// DrawCentered рисует строку с центром по x; y — верхний край.
func DrawCentered(screen *ebiten.Image, s string, x, y int, c color.Color) {
	bounds := text.BoundString(Face, s)
	text.Draw(screen, s, Face, x-bounds.Dx()/2, y-bounds.Min.Y, c)
}

// DrawOutlined рисует текст с обводкой толщиной thickness.
func DrawOutlined(screen *ebiten.Image, s string, x, y, thickness int, fill, outline color.Color) {
	bounds := text.BoundString(Face, s)
	x -= bounds.Dx() / 2
	y -= bounds.Min.Y
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, Face, x+dx, y+dy, outline)
		}
	}
	text.Draw(screen, s, Face, x, y, fill)
}
