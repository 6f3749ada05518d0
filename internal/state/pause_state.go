// internal/state/pause_state.go
package state

import (
	"go-lane-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState останавливает симуляцию; эффекты продолжают затухать.
type PauseState struct {
	sm     *StateMachine
	battle *BattleState
}

func NewPauseState(sm *StateMachine, battle *BattleState) *PauseState {
	return &PauseState{sm: sm, battle: battle}
}

func (s *PauseState) Enter() {
	s.battle.game.SetPaused(true)
	s.battle.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	in := s.battle.input
	unpause := anyJustPressed(in, ebiten.KeyP, ebiten.KeyEscape, ebiten.KeyF9)
	if x, y, ok := in.Click(); ok && s.battle.pauseButton.IsClicked(x, y) {
		unpause = true
	}
	if unpause {
		s.battle.pauseButton.Toggle()
		s.sm.SetState(s.battle)
		return
	}
	s.battle.game.Frame(deltaTime)
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	ui.Overlay(screen, "PAUSED")
}

func (s *PauseState) Exit() {}
