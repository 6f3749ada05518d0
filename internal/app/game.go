// internal/app/game.go
package app

import (
	"math"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/entity"
	"go-lane-battle/internal/event"
	"go-lane-battle/internal/system"
	"go-lane-battle/internal/utils"

	"github.com/google/uuid"
)

// Phase — фаза кампании.
type Phase int

const (
	BattlePhase Phase = iota
	InterStagePhase
)

func (p Phase) String() string {
	if p == InterStagePhase {
		return "inter-stage"
	}
	return "battle"
}

// Progress — то, что переживает смену этапа: очки навыков и купленные навыки.
type Progress struct {
	SkillPoints  int
	Passives     map[string]bool
	PerTripBonus int
	BaseHPBonus  float64
}

// Game holds the campaign state and drives the per-tick schedule.
type Game struct {
	Ctx             *system.Context
	Catalog         *defs.Catalog
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SessionID       uuid.UUID

	Spawner            *system.Spawner
	EconomySystem      *system.EconomySystem
	DefenseSystem      *system.DefenseSystem
	OpponentSystem     *system.OpponentSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	HazardSystem       *system.HazardSystem
	CameraSystem       *system.CameraSystem
	VisualEffectSystem *system.VisualEffectSystem

	Progress Progress

	// Game state
	phase     Phase
	isPaused  bool
	stage     int
	nextStage int
	bought    map[defs.UpgradeID]bool
	selected  []string
	active    []string
	homePool  *component.ResourcePool
}

// NewGame builds a campaign over catalog and loads the first stage.
// seed 0 picks a time-based seed.
func NewGame(catalog *defs.Catalog, seed int64) *Game {
	if catalog == nil {
		panic("catalog cannot be nil")
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	ctx := system.NewContext(catalog, dispatcher, rng)
	g := &Game{
		Ctx:             ctx,
		Catalog:         catalog,
		EventDispatcher: dispatcher,
		Rng:             rng,
		Progress:        Progress{Passives: make(map[string]bool)},
		bought:          make(map[defs.UpgradeID]bool),
		homePool:        component.NewResourcePool(0, catalog.Economy.HomeCap, catalog.Economy.PerTrip),
	}
	g.Spawner = system.NewSpawner(ctx)
	g.EconomySystem = system.NewEconomySystem(ctx)
	g.DefenseSystem = system.NewDefenseSystem(ctx)
	g.OpponentSystem = system.NewOpponentSystem(ctx, g.Spawner)
	g.CombatSystem = system.NewCombatSystem(ctx)
	g.ProjectileSystem = system.NewProjectileSystem(ctx)
	g.HazardSystem = system.NewHazardSystem(ctx)
	g.CameraSystem = system.NewCameraSystem(ctx, config.ScreenWidth)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ctx)

	if first, ok := catalog.Stage(1); ok {
		g.selected = append([]string(nil), first.HomeRoster...)
	}
	g.LoadStage(1)
	return g
}

// Frame — один кадр: эффекты идут всегда, симуляция только без паузы.
func (g *Game) Frame(deltaTime float64) {
	dt := math.Min(deltaTime, config.MaxDeltaTime)
	g.VisualEffectSystem.Update(dt)
	if g.isPaused {
		return
	}
	g.Tick(dt)
}

// Tick advances the battle by one fixed step. Outside the battle phase it does nothing.
func (g *Game) Tick(deltaTime float64) {
	if g.phase != BattlePhase {
		return
	}
	w := g.Ctx.World
	w.GameTime += deltaTime

	g.EconomySystem.Update(deltaTime)
	g.DefenseSystem.Update(deltaTime)
	g.OpponentSystem.Update(deltaTime)
	g.CombatSystem.UpdateSide(component.Home, deltaTime)
	g.CombatSystem.UpdateSide(component.Opponent, deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.HazardSystem.Update(deltaTime)
	g.CameraSystem.Update(deltaTime)
	w.Compact()

	g.EventDispatcher.Emit(event.TickCompleted, w.GameTime)
	g.checkOutcome()
}

// checkOutcome — не больше одного исхода за тик, база противника проверяется первой.
func (g *Game) checkOutcome() {
	w := g.Ctx.World
	info := event.StageInfo{Stage: g.stage, SkillPoints: g.Progress.SkillPoints}

	if w.Base(component.Opponent).Destroyed() {
		if g.stage >= g.Catalog.FinalStage() {
			g.EventDispatcher.Emit(event.CampaignComplete, info)
			g.LoadStage(1)
			return
		}
		g.Progress.SkillPoints += g.Ctx.Stage.SkillPointReward
		info.SkillPoints = g.Progress.SkillPoints
		g.nextStage = g.stage + 1
		g.phase = InterStagePhase
		g.releaseControl()
		g.EventDispatcher.Emit(event.StageCleared, info)
		return
	}
	if w.Base(component.Home).Destroyed() {
		g.EventDispatcher.Emit(event.Defeat, info)
		g.LoadStage(1)
	}
}

// --- Public Accessors & Mutators ---

// SpawnUnit покупает юнита. Игрок ограничен ростером этапа.
func (g *Game) SpawnUnit(unitID string, side component.Side) bool {
	if g.phase != BattlePhase {
		return false
	}
	if side == component.Home && !contains(g.active, unitID) {
		return false
	}
	return g.Spawner.Spawn(unitID, side) != nil
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

func (g *Game) SetPaused(paused bool) {
	g.isPaused = paused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) World() *entity.World {
	return g.Ctx.World
}

// Resources — запас и лимит маны стороны.
func (g *Game) Resources(side component.Side) (amount, capacity int) {
	p := g.Ctx.World.Pool(side)
	return p.Amount, p.Cap
}

// BaseHealth — HP и максимум базы стороны.
func (g *Game) BaseHealth(side component.Side) (hp, maxHP float64) {
	b := g.Ctx.World.Base(side)
	return b.HP, b.MaxHP
}

func (g *Game) StageIndex() int {
	return g.stage
}

// NextStage — этап, который загрузится после экрана навыков; 0 вне него.
func (g *Game) NextStage() int {
	return g.nextStage
}

func (g *Game) ManualControlActive() bool {
	return g.Ctx.ControlledUnit() != nil
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
