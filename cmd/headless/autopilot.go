// cmd/headless/autopilot.go
package main

import (
	"go-lane-battle/internal/app"
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
)

// upgradePriority — порядок покупок автопилота.
var upgradePriority = []defs.UpgradeID{"econ", "addMage", "hp", "manaCap", "turretBullet", "addPlant", "turretMage"}

const (
	decisionInterval = 30 // тиков между решениями
	spawnReserve     = 40 // мана, которую автопилот держит на юнитов
)

// Autopilot играет за игрока: тратит ману, покупает навыки и идёт дальше.
type Autopilot struct {
	game    *app.Game
	counter int
	next    int
}

func NewAutopilot(g *app.Game) *Autopilot {
	return &Autopilot{game: g}
}

// Step вызывается раз в тик, до Tick.
func (a *Autopilot) Step() {
	g := a.game
	if g.Phase() == app.InterStagePhase {
		a.betweenStages()
		return
	}
	a.counter++
	if a.counter < decisionInterval {
		return
	}
	a.counter = 0
	if a.buyUpgrade() {
		return
	}
	a.spawn()
}

func (a *Autopilot) betweenStages() {
	g := a.game
	for _, p := range g.Catalog.Passives {
		g.PurchasePassive(p.ID)
	}
	for _, id := range g.AvailableUnits() {
		if len(g.Roster()) >= config.MaxRosterSize {
			break
		}
		if !contains(g.Roster(), id) {
			g.ToggleRosterUnit(id)
		}
	}
	g.ContinueToNextStage()
}

func (a *Autopilot) buyUpgrade() bool {
	g := a.game
	mana, _ := g.Resources(component.Home)
	offers := make(map[defs.UpgradeID]int)
	for _, up := range g.Offers() {
		offers[up.ID] = up.Cost
	}
	for _, id := range upgradePriority {
		cost, ok := offers[id]
		if ok && mana >= cost+spawnReserve {
			return g.PurchaseUpgrade(id)
		}
	}
	return false
}

// spawn выпускает юнитов ростера по кругу.
func (a *Autopilot) spawn() {
	g := a.game
	roster := g.ActiveRoster()
	if len(roster) == 0 {
		return
	}
	for i := 0; i < len(roster); i++ {
		id := roster[(a.next+i)%len(roster)]
		if g.SpawnUnit(id, component.Home) {
			a.next = (a.next + i + 1) % len(roster)
			return
		}
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
