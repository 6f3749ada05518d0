package state

import (
	"strings"
	"testing"

	"go-lane-battle/internal/app"
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
)

const tick = 1.0 / 60

type fakeInput struct {
	held  map[ebiten.Key]bool
	just  map[ebiten.Key]bool
	click *[2]int
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeInput) Pressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeInput) JustPressed(k ebiten.Key) bool { return f.just[k] }

func (f *fakeInput) Click() (int, int, bool) {
	if f.click == nil {
		return 0, 0, false
	}
	return f.click[0], f.click[1], true
}

// tap нажимает клавишу на один кадр.
func (f *fakeInput) tap(sm *StateMachine, k ebiten.Key) {
	f.just[k] = true
	sm.Update(tick)
	delete(f.just, k)
}

func (f *fakeInput) clickAt(sm *StateMachine, x, y int) {
	f.click = &[2]int{x, y}
	sm.Update(tick)
	f.click = nil
}

func newTestMachine(t *testing.T) (*StateMachine, *BattleState, *fakeInput) {
	t.Helper()
	in := newFakeInput()
	sm := NewStateMachine()
	battle := NewBattleState(sm, app.NewGame(defs.Default(), 3), in)
	sm.SetState(battle)
	return sm, battle, in
}

func TestBattleState_SpawnKeys(t *testing.T) {
	sm, battle, in := newTestMachine(t)
	g := battle.Game()

	in.tap(sm, ebiten.Key1)

	if mana, _ := g.Resources(component.Home); mana != 20 {
		t.Fatalf("swordsman should cost 40 of 60 mana, left %d", mana)
	}
	units := g.World().Units[component.Home]
	if len(units) != 1 || units[0].DefID != "swordsman" {
		t.Fatalf("expected one swordsman, got %d units", len(units))
	}
	in.tap(sm, ebiten.Key5)
	if len(g.World().Units[component.Home]) != 1 {
		t.Fatal("key outside the roster must do nothing")
	}
}

func TestBattleState_ModeAndShop(t *testing.T) {
	sm, battle, in := newTestMachine(t)
	g := battle.Game()

	in.tap(sm, ebiten.KeyF)
	if g.CommandMode() != component.Defend {
		t.Fatal("F should switch to defend")
	}
	in.tap(sm, ebiten.KeyF)
	if g.CommandMode() != component.Attack {
		t.Fatal("F again should switch back to attack")
	}

	g.World().Pool(component.Home).Set(200)
	first := g.Offers()[0]
	in.tap(sm, ebiten.KeyF1)
	if mana, _ := g.Resources(component.Home); mana != 200-first.Cost {
		t.Fatalf("F1 should buy %s, mana %d", first.ID, mana)
	}
	if !strings.Contains(strings.Join(ShopLines(g), "\n"), "[F1]") {
		t.Fatal("shop lines should list hotkeys")
	}
}

func TestBattleState_PauseFreezesSimulation(t *testing.T) {
	sm, battle, in := newTestMachine(t)
	g := battle.Game()
	sm.Update(tick)

	in.tap(sm, ebiten.KeyP)
	if _, ok := sm.Current().(*PauseState); !ok || !g.IsPaused() {
		t.Fatal("P should open the pause state")
	}
	before := g.World().GameTime
	for i := 0; i < 30; i++ {
		sm.Update(tick)
	}
	if g.World().GameTime != before {
		t.Fatal("paused game must not advance")
	}

	in.tap(sm, ebiten.KeyEscape)
	if sm.Current() != battle || g.IsPaused() {
		t.Fatal("Esc should resume the battle")
	}
}

func TestBattleState_ClickSelectsUnit(t *testing.T) {
	sm, battle, in := newTestMachine(t)
	g := battle.Game()
	in.tap(sm, ebiten.Key1)
	u := g.World().Units[component.Home][0]

	in.clickAt(sm, int(u.X-g.World().CameraX), int(u.Y))
	if !g.ManualControlActive() || !u.Controlled {
		t.Fatal("click on a unit should take control")
	}

	in.held[ebiten.KeyD] = true
	sm.Update(tick)
	delete(in.held, ebiten.KeyD)
	if g.World().CameraX != 0 {
		t.Fatal("movement keys steer the unit, not the camera, while controlling")
	}

	in.tap(sm, ebiten.KeyEscape)
	if g.ManualControlActive() {
		t.Fatal("Esc should release control")
	}
}

func TestBattleState_StageClearedOpensInterStage(t *testing.T) {
	sm, battle, in := newTestMachine(t)
	g := battle.Game()

	in.tap(sm, ebiten.KeyK)
	inter, ok := sm.Current().(*InterStageState)
	if !ok {
		t.Fatalf("expected inter-stage state, got %T", sm.Current())
	}
	if g.Progress.SkillPoints != 2 {
		t.Fatalf("expected 2 skill points, got %d", g.Progress.SkillPoints)
	}

	b := inter.passives[0].Rect
	in.clickAt(sm, b.Min.X+5, b.Min.Y+5)
	if !g.PassiveOwned(g.Catalog.Passives[0].ID) {
		t.Fatal("clicking a passive should buy it")
	}

	in.tap(sm, ebiten.KeyEnter)
	if sm.Current() != battle || g.StageIndex() != 2 {
		t.Fatalf("Enter should start stage 2, got stage %d in %T", g.StageIndex(), sm.Current())
	}
}

func TestBattleState_DefeatShowsOutcome(t *testing.T) {
	sm, battle, _ := newTestMachine(t)
	g := battle.Game()

	g.World().Base(component.Home).HP = 0
	sm.Update(tick)
	if _, ok := sm.Current().(*OutcomeState); !ok {
		t.Fatalf("expected outcome state, got %T", sm.Current())
	}
	for i := 0; i < int(outcomeDuration/tick)+1; i++ {
		sm.Update(tick)
	}
	if sm.Current() != battle || g.StageIndex() != 1 {
		t.Fatal("outcome should return to a fresh first stage")
	}
}

func TestHUDLines(t *testing.T) {
	g := app.NewGame(defs.Default(), 1)
	lines := HUDLines(g)
	if lines[0] != "Mana 60/200" {
		t.Fatalf("unexpected mana line %q", lines[0])
	}
	if len(lines) != 2+len(g.ActiveRoster()) || !strings.HasPrefix(lines[2], "[1] Swordsman") {
		t.Fatalf("unexpected roster lines %v", lines)
	}
}
