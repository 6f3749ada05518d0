package app

import (
	"math"
	"reflect"
	"testing"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/event"
)

func offered(g *Game, id defs.UpgradeID) bool {
	for _, up := range g.Offers() {
		if up.ID == id {
			return true
		}
	}
	return false
}

func TestPurchaseUpgrade_Effects(t *testing.T) {
	tests := []struct {
		id    defs.UpgradeID
		check func(t *testing.T, g *Game)
	}{
		{"hp", func(t *testing.T, g *Game) {
			if hp, maxHP := g.BaseHealth(component.Home); hp != 1000 || maxHP != 1000 {
				t.Fatalf("expected base 1000/1000, got %.0f/%.0f", hp, maxHP)
			}
		}},
		{"turretMage", func(t *testing.T, g *Game) {
			turrets := g.World().Base(component.Home).Turrets
			if len(turrets) != 1 || turrets[0].Kind != defs.TurretBurstCaster {
				t.Fatalf("expected one burst-caster turret, got %+v", turrets)
			}
		}},
		{"manaCap", func(t *testing.T, g *Game) {
			if _, capacity := g.Resources(component.Home); capacity != 400 {
				t.Fatalf("expected cap 400, got %d", capacity)
			}
		}},
		{"econ", func(t *testing.T, g *Game) {
			if g.World().Pool(component.Home).PerTrip != 35 {
				t.Fatalf("expected 35 per trip, got %d", g.World().Pool(component.Home).PerTrip)
			}
		}},
		{"addPlant", func(t *testing.T, g *Game) {
			nodes := g.World().Nodes[component.Home]
			base := g.World().Base(component.Home)
			if len(nodes) != 2 {
				t.Fatalf("expected 2 nodes, got %d", len(nodes))
			}
			n := nodes[1]
			if n.X != base.X-config.NodeOffset-config.NodeSpacing {
				t.Fatalf("second node should sit further back, x=%.1f", n.X)
			}
			if dy := n.Y - (base.Y + base.H*config.NodeHeightFactor); math.Abs(dy) > config.NodeJitter {
				t.Fatalf("node jitter %.1f too large", dy)
			}
		}},
		{"addMage", func(t *testing.T, g *Game) {
			if n := len(g.World().Harvesters[component.Home]); n != 2 {
				t.Fatalf("expected 2 harvesters, got %d", n)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			g := newTestGame(t)
			pool := g.World().Pool(component.Home)
			pool.Set(200)
			up, _ := g.Catalog.Upgrade(tt.id)

			if !g.PurchaseUpgrade(tt.id) {
				t.Fatalf("purchase of %s failed", tt.id)
			}
			if pool.Amount != 200-up.Cost {
				t.Fatalf("expected %d mana left, got %d", 200-up.Cost, pool.Amount)
			}
			tt.check(t, g)
		})
	}
}

func TestPurchaseUpgrade_OnceOnlyAndNoOps(t *testing.T) {
	g := newTestGame(t)
	counts := recordEvents(g, event.UpgradePurchased)
	pool := g.World().Pool(component.Home)
	pool.Set(200)

	if !g.PurchaseUpgrade("hp") {
		t.Fatal("first hp upgrade should succeed")
	}
	if g.PurchaseUpgrade("hp") || pool.Amount != 100 {
		t.Fatal("non-repeatable upgrade bought twice")
	}
	if offered(g, "hp") {
		t.Fatal("bought upgrade should leave the offer list")
	}
	if g.PurchaseUpgrade("noSuchUpgrade") {
		t.Fatal("unknown upgrade must be a no-op")
	}
	if g.PurchaseUpgrade("turretCloud") || pool.Amount != 100 {
		t.Fatal("unaffordable upgrade must not spend mana")
	}
	if counts[event.UpgradePurchased] != 1 {
		t.Fatalf("expected one purchase event, got %d", counts[event.UpgradePurchased])
	}
}

func TestPurchaseUpgrade_RepeatableTurrets(t *testing.T) {
	g := newTestGame(t)
	pool := g.World().Pool(component.Home)
	pool.Raise(1000)
	pool.Set(1000)

	for i := 0; i < 3; i++ {
		if !g.PurchaseUpgrade("turretBullet") {
			t.Fatalf("turret purchase %d failed", i+1)
		}
	}
	if n := len(g.World().Base(component.Home).Turrets); n != 3 {
		t.Fatalf("expected 3 turrets, got %d", n)
	}
	if !offered(g, "turretBullet") {
		t.Fatal("repeatable upgrade should stay on offer")
	}
}

func TestShopResetsOnFirstStage(t *testing.T) {
	g := newTestGame(t)
	g.World().Pool(component.Home).Set(200)
	g.PurchaseUpgrade("manaCap")
	g.PurchaseUpgrade("econ")

	g.World().Base(component.Home).HP = 0
	g.Tick(tick)

	if !offered(g, "manaCap") || !offered(g, "econ") {
		t.Fatal("shop should reset when the campaign restarts")
	}
	pool := g.World().Pool(component.Home)
	if pool.Cap != 200 || pool.PerTrip != 25 {
		t.Fatalf("shop-bought economy should reset, got cap %d per trip %d", pool.Cap, pool.PerTrip)
	}
}

func TestPurchasePassive(t *testing.T) {
	g := newTestGame(t)
	if g.PurchasePassive("manaBoost") {
		t.Fatal("passive without skill points should fail")
	}
	g.Progress.SkillPoints = 4

	for _, id := range []string{"manaBoost", "hpBoost", "damageBoost", "speedBoost"} {
		if !g.PurchasePassive(id) {
			t.Fatalf("passive %s should be bought", id)
		}
	}
	if g.PurchasePassive("manaBoost") {
		t.Fatal("passives are bought once")
	}
	if g.Progress.SkillPoints != 0 {
		t.Fatalf("expected 0 points left, got %d", g.Progress.SkillPoints)
	}
	if g.World().Pool(component.Home).PerTrip != 35 {
		t.Fatal("mana flow should add 10 per trip")
	}
	if _, maxHP := g.BaseHealth(component.Home); maxHP != 1000 {
		t.Fatalf("sturdy walls should grow the current base, got %.0f", maxHP)
	}

	g.World().Pool(component.Home).Set(100)
	g.SpawnUnit("swordsman", component.Home)
	u := g.World().Units[component.Home][0]
	if math.Abs(u.Damage-24) > 1e-9 || math.Abs(u.Speed-72) > 1e-9 {
		t.Fatalf("boosts should apply to new units: dmg %.2f speed %.2f", u.Damage, u.Speed)
	}

	// Passives survive a campaign restart.
	g.World().Base(component.Home).HP = 0
	g.Tick(tick)
	if _, maxHP := g.BaseHealth(component.Home); maxHP != 1000 {
		t.Fatalf("sturdy walls should persist onto new bases, got %.0f", maxHP)
	}
	if g.World().Pool(component.Home).PerTrip != 35 {
		t.Fatal("mana flow should survive the shop reset")
	}
}

func TestRosterSelection(t *testing.T) {
	g := newTestGame(t)
	if g.ToggleRosterUnit("rogue") {
		t.Fatal("rogue is locked on stage 1")
	}

	g.SkipStage()
	g.Tick(tick)
	if !reflect.DeepEqual(g.AvailableUnits(), []string{"swordsman", "witch", "golem", "rogue"}) {
		t.Fatalf("stage 2 should unlock the rogue, got %v", g.AvailableUnits())
	}
	if !g.ToggleRosterUnit("rogue") {
		t.Fatal("rogue should be selectable before stage 2")
	}
	if g.ToggleRosterUnit("drake") {
		t.Fatal("drake unlocks on stage 3")
	}
	if g.SelectRoster([]string{"witch", "witch"}) || g.SelectRoster(nil) {
		t.Fatal("duplicate or empty rosters are rejected")
	}
	if !g.ToggleRosterUnit("golem") {
		t.Fatal("removing a unit should succeed")
	}

	g.ContinueToNextStage()
	want := []string{"swordsman", "witch", "rogue"}
	if !reflect.DeepEqual(g.ActiveRoster(), want) {
		t.Fatalf("stage 2 roster should follow the selection, got %v", g.ActiveRoster())
	}
	g.World().Pool(component.Home).Set(200)
	if g.SpawnUnit("golem", component.Home) {
		t.Fatal("deselected unit must not spawn")
	}
	if !g.SpawnUnit("rogue", component.Home) {
		t.Fatal("selected rogue should spawn")
	}
}

func TestRosterSizeLimit(t *testing.T) {
	g := newTestGame(t)
	g.selected = []string{"swordsman"}
	g.nextStage = 4 // pretend a fourth stage is next so every unit is open
	for _, id := range []string{"witch", "golem", "rogue", "drake"} {
		if !g.ToggleRosterUnit(id) {
			t.Fatalf("adding %s should succeed", id)
		}
	}
	if g.ToggleRosterUnit("guardian") {
		t.Fatalf("roster is capped at %d", config.MaxRosterSize)
	}
	if len(g.Roster()) != config.MaxRosterSize {
		t.Fatalf("expected %d units, got %d", config.MaxRosterSize, len(g.Roster()))
	}
}
