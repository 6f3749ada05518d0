// internal/state/battle_state.go
package state

import (
	"fmt"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"
	"go-lane-battle/internal/render"
	"go-lane-battle/internal/system"
	"go-lane-battle/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	spawnKeys   = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	upgradeKeys = []ebiten.Key{ebiten.KeyF1, ebiten.KeyF2, ebiten.KeyF3, ebiten.KeyF4, ebiten.KeyF5, ebiten.KeyF6, ebiten.KeyF7, ebiten.KeyF8}
)

// BattleState — бой: ввод игрока, тик симуляции, отрисовка поля и HUD.
type BattleState struct {
	sm    *StateMachine
	game  *app.Game
	input Input

	renderer       *render.Renderer
	stageIndicator *ui.StageIndicator
	pauseButton    *ui.PauseButton
	modeIndicator  *ui.ModeIndicator
	hud            *ui.TextPanel
	shop           *ui.TextPanel

	// next — переход, запрошенный событием во время тика.
	next State
}

// NewBattleState подписывается на исходы этапа у диспетчера игры.
func NewBattleState(sm *StateMachine, game *app.Game, input Input) *BattleState {
	s := &BattleState{
		sm:             sm,
		game:           game,
		input:          input,
		renderer:       render.NewRenderer(),
		stageIndicator: ui.NewStageIndicator(config.StageIndicatorX, config.StageIndicatorY),
		pauseButton:    ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.UIColorBlue, config.HomeColor),
		modeIndicator:  ui.NewModeIndicator(config.PauseButtonX-50, config.PauseButtonY, 10),
		hud:            ui.NewTextPanel(config.HUDPadding, config.HUDPadding, 260),
		shop:           ui.NewTextPanel(config.ScreenWidth-300, 60, 290),
	}
	game.EventDispatcher.Subscribe(event.StageCleared, s, event.Defeat, event.CampaignComplete)
	return s
}

// OnEvent переводит исход этапа в смену состояния после кадра.
func (s *BattleState) OnEvent(e event.Event) {
	info, _ := e.Data.(event.StageInfo)
	switch e.Type {
	case event.StageCleared:
		s.next = NewInterStageState(s.sm, s)
	case event.Defeat:
		s.next = NewOutcomeState(s.sm, s, "DEFEAT", info.Stage)
	case event.CampaignComplete:
		s.next = NewOutcomeState(s.sm, s, "VICTORY", info.Stage)
	}
}

func (s *BattleState) Game() *app.Game {
	return s.game
}

func (s *BattleState) Enter() {
	s.game.SetPaused(false)
	s.pauseButton.SetPaused(false)
}

func (s *BattleState) Exit() {
	s.game.SetManualInput(system.ManualInput{})
	s.game.SetCameraScroll(0)
}

func (s *BattleState) Update(deltaTime float64) {
	if s.handleInput() {
		return
	}
	s.game.Frame(deltaTime)
	if s.next != nil {
		next := s.next
		s.next = nil
		s.sm.SetState(next)
	}
}

// handleInput применяет ввод; true — состояние сменилось.
func (s *BattleState) handleInput() bool {
	in := s.input
	if anyJustPressed(in, ebiten.KeyP, ebiten.KeyF9) {
		s.openPause()
		return true
	}
	if x, y, ok := in.Click(); ok {
		switch {
		case s.pauseButton.IsClicked(x, y):
			s.openPause()
			return true
		case s.modeIndicator.IsClicked(x, y):
			s.modeIndicator.HandleClick()
			s.toggleMode()
		default:
			s.game.ControlUnitAt(float64(x)+s.game.World().CameraX, float64(y))
		}
	}
	if in.JustPressed(ebiten.KeyEscape) {
		s.game.SetManualControl(0)
	}
	if in.JustPressed(ebiten.KeyF) {
		s.toggleMode()
	}
	if in.JustPressed(ebiten.KeyK) {
		s.game.SkipStage()
	}

	roster := s.game.ActiveRoster()
	for i, key := range spawnKeys {
		if i < len(roster) && in.JustPressed(key) {
			s.game.SpawnUnit(roster[i], component.Home)
		}
	}
	offers := s.game.Offers()
	for i, key := range upgradeKeys {
		if i < len(offers) && in.JustPressed(key) {
			s.game.PurchaseUpgrade(offers[i].ID)
			break
		}
	}

	var move system.ManualInput
	if anyPressed(in, ebiten.KeyA, ebiten.KeyArrowLeft) {
		move.MoveX--
	}
	if anyPressed(in, ebiten.KeyD, ebiten.KeyArrowRight) {
		move.MoveX++
	}
	if anyPressed(in, ebiten.KeyW, ebiten.KeyArrowUp) {
		move.MoveY--
	}
	if anyPressed(in, ebiten.KeyS, ebiten.KeyArrowDown) {
		move.MoveY++
	}
	move.Attack = in.Pressed(ebiten.KeySpace)
	s.game.SetManualInput(move)

	scroll := 0
	if in.Pressed(ebiten.KeyQ) {
		scroll--
	}
	if in.Pressed(ebiten.KeyE) {
		scroll++
	}
	if !s.game.ManualControlActive() {
		// Без ручного контроля стрелки двигают камеру.
		scroll += int(move.MoveX)
	}
	s.game.SetCameraScroll(scroll)
	return false
}

func (s *BattleState) toggleMode() {
	if s.game.CommandMode() == component.Defend {
		s.game.SetCommandMode(component.Attack)
		return
	}
	s.game.SetCommandMode(component.Defend)
}

func (s *BattleState) openPause() {
	s.pauseButton.Toggle()
	s.sm.SetState(NewPauseState(s.sm, s))
}

func (s *BattleState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game.World())
	s.drawHUD(screen)
}

func (s *BattleState) drawHUD(screen *ebiten.Image) {
	g := s.game
	final := g.StageIndex() >= g.Catalog.FinalStage()
	s.stageIndicator.Draw(screen, g.StageIndex(), final)
	s.pauseButton.Draw(screen)

	modeColor := config.UIColorRed
	if g.CommandMode() == component.Defend {
		modeColor = config.UIColorBlue
	}
	s.modeIndicator.Draw(screen, modeColor, g.CommandMode().String())

	s.hud.Lines = HUDLines(g)
	s.hud.Draw(screen)
	s.shop.Lines = ShopLines(g)
	s.shop.Draw(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  t=%.1fs", ebiten.ActualTPS(), g.World().GameTime), config.HUDPadding, config.ScreenHeight-20)
}

// HUDLines — сводка по ресурсам, базам и ростеру.
func HUDLines(g *app.Game) []string {
	mana, capacity := g.Resources(component.Home)
	hp, maxHP := g.BaseHealth(component.Home)
	ehp, emaxHP := g.BaseHealth(component.Opponent)
	lines := []string{
		fmt.Sprintf("Mana %d/%d", mana, capacity),
		fmt.Sprintf("Base %.0f/%.0f  Enemy %.0f/%.0f", hp, maxHP, ehp, emaxHP),
	}
	for i, id := range g.ActiveRoster() {
		def, _ := g.Catalog.Unit(id)
		lines = append(lines, fmt.Sprintf("[%d] %s (%d)", i+1, def.Name, def.Cost))
	}
	if g.ManualControlActive() {
		lines = append(lines, "WASD move, SPACE attack, ESC release")
	}
	return lines
}

// ShopLines — предложения магазина с клавишами F1..F8.
func ShopLines(g *app.Game) []string {
	var lines []string
	for i, up := range g.Offers() {
		if i >= len(upgradeKeys) {
			break
		}
		lines = append(lines, fmt.Sprintf("[F%d] %s (%d)", i+1, up.Name, up.Cost))
	}
	return lines
}
