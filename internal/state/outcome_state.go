// internal/state/outcome_state.go
package state

import (
	"fmt"

	"go-lane-battle/internal/config"
	"go-lane-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const outcomeDuration = 3.0

// OutcomeState показывает итог кампании. Игра к этому моменту уже
// перезапущена с первого этапа, бой продолжится по клавише или через паузу.
type OutcomeState struct {
	sm      *StateMachine
	battle  *BattleState
	title   string
	stage   int
	elapsed float64
}

func NewOutcomeState(sm *StateMachine, battle *BattleState, title string, stage int) *OutcomeState {
	return &OutcomeState{sm: sm, battle: battle, title: title, stage: stage}
}

func (s *OutcomeState) Enter() {}

func (s *OutcomeState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	in := s.battle.input
	_, _, clicked := in.Click()
	if clicked || anyJustPressed(in, ebiten.KeyEnter, ebiten.KeySpace) || s.elapsed >= outcomeDuration {
		s.sm.SetState(s.battle)
	}
}

func (s *OutcomeState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	ui.Overlay(screen, s.title)
	ui.DrawCentered(screen, fmt.Sprintf("reached stage %d", s.stage), config.ScreenWidth/2, config.ScreenHeight/2+10, config.TextLightColor)
}

func (s *OutcomeState) Exit() {}
