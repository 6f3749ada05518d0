// internal/ui/stage_indicator.go
package ui

import (
	"image/color"

	"go-lane-battle/internal/config"
	"go-lane-battle/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// StageIndicator отображает номер этапа римскими цифрами.
type StageIndicator struct {
	X, Y             int
	Color            color.Color
	FinalColor       color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewStageIndicator(x, y int) *StageIndicator {
	return &StageIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		FinalColor:       config.UIColorRed,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// Label — подпись этапа; пусто для неположительных номеров.
func (i *StageIndicator) Label(stage int) string {
	return utils.ToRoman(stage)
}

// Draw рисует номер; последний этап выделяется цветом.
func (i *StageIndicator) Draw(screen *ebiten.Image, stage int, final bool) {
	label := i.Label(stage)
	if label == "" {
		return
	}
	c := i.Color
	if final {
		c = i.FinalColor
	}
	DrawOutlined(screen, label, i.X, i.Y, i.OutlineThickness, c, i.OutlineColor)
}
