// internal/app/upgrades.go
package app

import (
	"log"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/event"
)

// PurchaseUpgrade покупает позицию магазина за ману игрока.
// Неизвестная, уже купленная или неоплатная позиция — ничего не меняется.
func (g *Game) PurchaseUpgrade(id defs.UpgradeID) bool {
	if g.phase != BattlePhase {
		return false
	}
	up, ok := g.Catalog.Upgrade(id)
	if !ok {
		return false
	}
	if !up.Repeatable && g.bought[id] {
		return false
	}
	if !g.homePool.Spend(up.Cost) {
		return false
	}

	g.applyUpgrade(up)
	if !up.Repeatable {
		g.bought[id] = true
	}
	g.EventDispatcher.Emit(event.UpgradePurchased, event.PurchaseInfo{ID: string(id), Cost: up.Cost})
	return true
}

// applyUpgrade интерпретирует запись магазина.
func (g *Game) applyUpgrade(up defs.UpgradeDefinition) {
	home := g.Ctx.World.Base(component.Home)
	switch up.Kind {
	case defs.UpgradeBaseHP:
		home.Grow(up.Amount)
	case defs.UpgradeTurret:
		home.AddTurret(up.Turret)
	case defs.UpgradeManaCap:
		g.homePool.Raise(int(up.Amount))
	case defs.UpgradePerTrip:
		g.homePool.PerTrip += int(up.Amount)
	case defs.UpgradeAddNode:
		g.addNode(component.Home, true)
	case defs.UpgradeAddHarvester:
		g.addHarvester(component.Home)
	default:
		log.Printf("applyUpgrade: unknown upgrade kind %q for %s", up.Kind, up.ID)
	}
}

// Offers — позиции магазина, доступные сейчас: повторяемые всегда,
// разовые пока не куплены.
func (g *Game) Offers() []defs.UpgradeDefinition {
	var out []defs.UpgradeDefinition
	for _, up := range g.Catalog.Upgrades {
		if up.Repeatable || !g.bought[up.ID] {
			out = append(out, up)
		}
	}
	return out
}

// PurchasePassive покупает навык за очки. Каждый навык — один раз.
func (g *Game) PurchasePassive(id string) bool {
	p, ok := g.Catalog.Passive(id)
	if !ok || g.Progress.Passives[id] || g.Progress.SkillPoints < p.Cost {
		return false
	}
	g.Progress.SkillPoints -= p.Cost
	g.Progress.Passives[id] = true

	switch p.Kind {
	case defs.PassivePerTrip:
		g.Progress.PerTripBonus += int(p.Amount)
		g.homePool.PerTrip += int(p.Amount)
	case defs.PassiveBaseHP:
		g.Progress.BaseHPBonus += p.Amount
		g.Ctx.World.Base(component.Home).Grow(p.Amount)
	case defs.PassiveDamage:
		g.Ctx.Boosts.Damage *= p.Amount
	case defs.PassiveSpeed:
		g.Ctx.Boosts.Speed *= p.Amount
	default:
		log.Printf("PurchasePassive: unknown passive kind %q for %s", p.Kind, id)
	}
	g.EventDispatcher.Emit(event.UpgradePurchased, event.PurchaseInfo{ID: id, Passive: true, Cost: p.Cost})
	return true
}

func (g *Game) PassiveOwned(id string) bool {
	return g.Progress.Passives[id]
}

// --- Roster ---

// ActiveRoster — юниты, которых игрок может вызвать на текущем этапе.
func (g *Game) ActiveRoster() []string {
	return append([]string(nil), g.active...)
}

// Roster — выбор игрока для следующих этапов.
func (g *Game) Roster() []string {
	return append([]string(nil), g.selected...)
}

// AvailableUnits — открытые юниты для экрана выбора. Между этапами
// учитывается этап, который загрузится следующим.
func (g *Game) AvailableUnits() []string {
	stage := g.stage
	if g.nextStage > stage {
		stage = g.nextStage
	}
	return g.Catalog.HomeUnits(stage)
}

// ToggleRosterUnit добавляет или убирает юнита из выбора.
// Последнего юнита убрать нельзя, больше MaxRosterSize не добавить.
func (g *Game) ToggleRosterUnit(id string) bool {
	for i, v := range g.selected {
		if v == id {
			if len(g.selected) == 1 {
				return false
			}
			g.selected = append(g.selected[:i], g.selected[i+1:]...)
			return true
		}
	}
	if len(g.selected) >= config.MaxRosterSize || !contains(g.AvailableUnits(), id) {
		return false
	}
	g.selected = append(g.selected, id)
	return true
}

// SelectRoster заменяет выбор целиком, если он допустим.
func (g *Game) SelectRoster(ids []string) bool {
	if len(ids) == 0 || len(ids) > config.MaxRosterSize {
		return false
	}
	available := g.AvailableUnits()
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || !contains(available, id) {
			return false
		}
		seen[id] = true
	}
	g.selected = append([]string(nil), ids...)
	return true
}
