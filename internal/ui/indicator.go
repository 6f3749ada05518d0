// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ModeIndicator — кружок с цветом текущего приказа. Клик переключает режим.
type ModeIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewModeIndicator(x, y, radius float32) *ModeIndicator {
	return &ModeIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор с подписью под ним.
func (i *ModeIndicator) Draw(screen *ebiten.Image, modeColor color.Color, label string) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	r := i.Radius * float32(1.0+0.3*math.Exp(-elapsed*8))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, modeColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
	DrawCentered(screen, label, int(i.X), int(i.Y+i.Radius)+6, color.White)
}

// IsClicked проверяет, был ли клик внутри индикатора.
func (i *ModeIndicator) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *ModeIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}
