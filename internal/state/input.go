// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input — источник ввода. Состояния читают клавиатуру и мышь только через него.
type Input interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
	// Click возвращает позицию курсора, если левая кнопка только что нажата.
	Click() (x, y int, ok bool)
}

// EbitenInput читает ввод ebiten.
type EbitenInput struct{}

func (EbitenInput) Pressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenInput) Click() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

func anyPressed(in Input, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.Pressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(in Input, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if in.JustPressed(k) {
			return true
		}
	}
	return false
}
