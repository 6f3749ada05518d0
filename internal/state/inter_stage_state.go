// internal/state/inter_stage_state.go
package state

import (
	"fmt"
	"image"

	"go-lane-battle/internal/config"
	"go-lane-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	buttonWidth  = 300
	buttonHeight = 32
	buttonGap    = 8
	columnTop    = 160
)

// InterStageState — между этапами: пассивные навыки за очки и выбор ростера.
type InterStageState struct {
	sm     *StateMachine
	battle *BattleState

	passives []*ui.Button
	roster   []*ui.Button
	cont     *ui.Button
}

func NewInterStageState(sm *StateMachine, battle *BattleState) *InterStageState {
	s := &InterStageState{sm: sm, battle: battle}
	left := config.ScreenWidth/2 - buttonWidth - 20
	right := config.ScreenWidth/2 + 20

	var labels []string
	for _, p := range battle.game.Catalog.Passives {
		labels = append(labels, fmt.Sprintf("%s (%d)", p.Name, p.Cost))
	}
	s.passives = ui.ButtonColumn(labels, left, columnTop, buttonWidth, buttonHeight, buttonGap)

	labels = nil
	for _, id := range battle.game.AvailableUnits() {
		def, _ := battle.game.Catalog.Unit(id)
		labels = append(labels, def.Name)
	}
	s.roster = ui.ButtonColumn(labels, right, columnTop, buttonWidth, buttonHeight, buttonGap)

	top := config.ScreenHeight - 80
	s.cont = ui.NewButton(image.Rect(config.ScreenWidth/2-100, top, config.ScreenWidth/2+100, top+40), "Continue")
	s.refresh()
	return s
}

func (s *InterStageState) Enter() {}

func (s *InterStageState) Update(deltaTime float64) {
	g := s.battle.game
	in := s.battle.input
	if x, y, ok := in.Click(); ok {
		for i, b := range s.passives {
			if b.Clicked(x, y) {
				g.PurchasePassive(g.Catalog.Passives[i].ID)
			}
		}
		units := g.AvailableUnits()
		for i, b := range s.roster {
			if b.Clicked(x, y) && i < len(units) {
				g.ToggleRosterUnit(units[i])
			}
		}
		if s.cont.Clicked(x, y) {
			s.proceed()
			return
		}
	}
	if in.JustPressed(ebiten.KeyEnter) {
		s.proceed()
		return
	}
	s.refresh()
	g.Frame(deltaTime)
}

func (s *InterStageState) proceed() {
	if s.battle.game.ContinueToNextStage() {
		s.sm.SetState(s.battle)
	}
}

// refresh синхронизирует кнопки с прогрессом.
func (s *InterStageState) refresh() {
	g := s.battle.game
	for i, b := range s.passives {
		p := g.Catalog.Passives[i]
		owned := g.PassiveOwned(p.ID)
		b.Selected = owned
		b.Disabled = !owned && g.Progress.SkillPoints < p.Cost
	}
	selected := make(map[string]bool)
	for _, id := range g.Roster() {
		selected[id] = true
	}
	for i, id := range g.AvailableUnits() {
		if i < len(s.roster) {
			s.roster[i].Selected = selected[id]
		}
	}
}

func (s *InterStageState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	ui.Overlay(screen, "")
	ui.DrawOutlined(screen, fmt.Sprintf("STAGE %d CLEARED", s.battle.game.StageIndex()), config.ScreenWidth/2, 60, 1, config.TextLightColor, config.TextDarkColor)
	ui.DrawCentered(screen, fmt.Sprintf("Skill points: %d", s.battle.game.Progress.SkillPoints), config.ScreenWidth/2, columnTop-40, config.TextLightColor)
	for _, b := range s.passives {
		b.Draw(screen)
	}
	for _, b := range s.roster {
		b.Draw(screen)
	}
	s.cont.Draw(screen)
}

func (s *InterStageState) Exit() {}
