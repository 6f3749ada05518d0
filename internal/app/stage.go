// internal/app/stage.go
package app

import (
	"log"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/entity"
	"go-lane-battle/internal/event"

	"github.com/google/uuid"
)

// LoadStage строит новый мир этапа. Мана игрока переносится, у противника обнуляется.
func (g *Game) LoadStage(index int) bool {
	stage, ok := g.Catalog.Stage(index)
	if !ok {
		log.Printf("LoadStage: stage definition not found for index %d", index)
		return false
	}
	g.releaseControl()
	g.stage = index
	g.nextStage = 0
	g.phase = BattlePhase
	g.SessionID = uuid.New()
	g.Ctx.Stage = stage
	g.Ctx.Mode = component.Attack
	g.Ctx.Scroll = 0

	eco := g.Catalog.Economy
	if stage.ResetShop {
		g.bought = make(map[defs.UpgradeID]bool)
		g.homePool.Cap = eco.HomeCap
		g.homePool.PerTrip = eco.PerTrip + g.Progress.PerTripBonus
		g.homePool.Set(g.homePool.Amount)
	}
	if g.homePool.Amount < stage.HomeManaFloor {
		g.homePool.Set(stage.HomeManaFloor)
	}

	width := config.ScreenWidth * stage.WorldWidthFactor
	w := entity.NewWorld(width, config.ScreenHeight)
	baseY := config.ScreenHeight*(config.GroundStart+(1-config.GroundStart)*0.5) - config.BaseHeight
	w.Bases[component.Home] = &component.Base{
		Side: component.Home, X: config.BaseMargin, Y: baseY,
		W: config.BaseWidth, H: config.BaseHeight,
		HP: stage.HomeBaseHP + g.Progress.BaseHPBonus, MaxHP: stage.HomeBaseHP + g.Progress.BaseHPBonus,
	}
	opp := &component.Base{
		Side: component.Opponent, X: width - config.BaseWidth - config.BaseMargin, Y: baseY,
		W: config.BaseWidth, H: config.BaseHeight,
		HP: stage.OpponentBaseHP, MaxHP: stage.OpponentBaseHP,
	}
	for _, kind := range stage.OpponentTurrets {
		opp.AddTurret(kind)
	}
	w.Bases[component.Opponent] = opp
	w.Pools[component.Home] = g.homePool
	w.Pools[component.Opponent] = component.NewResourcePool(0, eco.OpponentCap, eco.PerTrip)
	g.Ctx.World = w

	for _, side := range component.Sides {
		g.addNode(side, false)
	}
	for i := 0; i < stage.HomeHarvesters; i++ {
		g.addHarvester(component.Home)
	}
	for i := 0; i < stage.OpponentHarvesters; i++ {
		g.addHarvester(component.Opponent)
	}
	w.NextStarTime = g.HazardSystem.NextDelay()

	if len(stage.HomeRoster) > 0 {
		g.active = append([]string(nil), stage.HomeRoster...)
	} else {
		g.active = append([]string(nil), g.selected...)
	}

	g.EventDispatcher.Emit(event.StageLoaded, event.StageInfo{Stage: index, SkillPoints: g.Progress.SkillPoints})
	return true
}

// ContinueToNextStage закрывает экран навыков и грузит следующий этап.
func (g *Game) ContinueToNextStage() bool {
	if g.phase != InterStagePhase || g.nextStage == 0 {
		return false
	}
	return g.LoadStage(g.nextStage)
}

// SkipStage роняет базу противника; исход обработается на следующем тике.
func (g *Game) SkipStage() {
	if g.phase != BattlePhase {
		return
	}
	g.Ctx.World.Base(component.Opponent).HP = 0
}

// addNode сажает росток позади базы, каждый следующий дальше предыдущего.
func (g *Game) addNode(side component.Side, jitter bool) *component.ResourceNode {
	w := g.Ctx.World
	b := w.Base(side)
	offset := config.NodeOffset + float64(len(w.Nodes[side]))*config.NodeSpacing
	x := b.X - offset
	if side == component.Opponent {
		x = b.X + b.W + offset
	}
	y := b.Y + b.H*config.NodeHeightFactor
	if jitter {
		y += g.Rng.Spread(2 * config.NodeJitter)
	}
	n := &component.ResourceNode{ID: w.NewEntity(), Side: side, X: x, Y: y}
	w.Nodes[side] = append(w.Nodes[side], n)
	return n
}

// addHarvester нанимает сборщика у задней грани базы.
func (g *Game) addHarvester(side component.Side) *component.Harvester {
	w := g.Ctx.World
	b := w.Base(side)
	x := b.X - config.HarvesterSpawnOffset
	if side == component.Opponent {
		x = b.X + b.W + config.HarvesterSpawnOffset
	}
	h := &component.Harvester{
		ID:   w.NewEntity(),
		Side: side,
		Base: b,
		X:    x,
		Y:    b.Y + b.H*config.HarvesterHeightFactor,
	}
	w.Harvesters[side] = append(w.Harvesters[side], h)
	return h
}
