package system

import (
	"testing"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/event"
)

func launchAt(ctx *Context, x, y, vx float64, dmg float64, splash bool) *component.Projectile {
	p := &component.Projectile{X: x, Y: y, VX: vx, Damage: dmg, Origin: component.Home, Radius: 4, Splash: splash, Alive: true}
	ctx.World.Projectiles = append(ctx.World.Projectiles, p)
	return p
}

func TestProjectile_SplashHitsEachTargetOnce(t *testing.T) {
	ctx := newTestContext(t)
	var impacts []event.ImpactInfo
	ctx.Events.Subscribe(event.ProjectileImpact, event.ListenerFunc(func(e event.Event) {
		impacts = append(impacts, e.Data.(event.ImpactInfo))
	}))

	var pack []*component.Unit
	for i := 0; i < 3; i++ {
		pack = append(pack, placeUnit(t, ctx, "bloodHound", component.Opponent, 1000, 500))
	}
	bystander := placeUnit(t, ctx, "bloodHound", component.Opponent, 1200, 500)
	p := launchAt(ctx, 990, 500, 400, 35, true)

	ps := NewProjectileSystem(ctx)
	ps.Update(dt)
	ps.Update(dt)

	for i, u := range pack {
		if u.HP != 45 {
			t.Fatalf("unit %d: expected hp 45 after one 35 dmg hit, got %.1f", i, u.HP)
		}
	}
	if bystander.HP != bystander.MaxHP {
		t.Fatal("unit outside the splash radius was hit")
	}
	if p.Alive {
		t.Fatal("projectile should be spent after impact")
	}
	if len(impacts) != 1 || impacts[0].Hits != 3 || !impacts[0].Splash {
		t.Fatalf("expected one splash impact hitting 3 units, got %+v", impacts)
	}
	if len(ctx.World.Particles) == 0 {
		t.Fatal("splash impact should leave an explosion")
	}
}

func TestProjectile_SingleTargetHit(t *testing.T) {
	ctx := newTestContext(t)
	first := placeUnit(t, ctx, "bloodHound", component.Opponent, 1000, 500)
	second := placeUnit(t, ctx, "bloodHound", component.Opponent, 1000, 500)
	launchAt(ctx, 990, 500, 400, 35, false)

	NewProjectileSystem(ctx).Update(dt)

	if first.HP != 45 || second.HP != second.MaxHP {
		t.Fatalf("only the first unit in storage order should be hit: %.1f / %.1f", first.HP, second.HP)
	}
}

func TestProjectile_IgnoresOwnSideAndDead(t *testing.T) {
	ctx := newTestContext(t)
	friend := placeUnit(t, ctx, "swordsman", component.Home, 1000, 500)
	corpse := placeUnit(t, ctx, "bloodHound", component.Opponent, 1000, 500)
	corpse.TakeDamage(corpse.MaxHP)
	p := launchAt(ctx, 990, 500, 400, 35, false)

	NewProjectileSystem(ctx).Update(dt)

	if friend.HP != friend.MaxHP {
		t.Fatal("projectile hit a unit of its own side")
	}
	if !p.Alive {
		t.Fatal("projectile should keep flying past a dead unit")
	}
}

func TestProjectile_LeavesWorld(t *testing.T) {
	ctx := newTestContext(t)
	p := launchAt(ctx, testWidth+49, 100, 400, 10, false)

	NewProjectileSystem(ctx).Update(dt)
	if p.Alive {
		t.Fatal("projectile beyond the world margin should be discarded")
	}
	ctx.World.Compact()
	if len(ctx.World.Projectiles) != 0 {
		t.Fatalf("expected compaction to drop the projectile, %d left", len(ctx.World.Projectiles))
	}
}

func TestProjectile_KillEmitsEvent(t *testing.T) {
	ctx := newTestContext(t)
	kills := countEvents(ctx, event.UnitKilled)
	u := placeUnit(t, ctx, "bloodHound", component.Opponent, 1000, 500)
	u.HP = 5
	launchAt(ctx, 990, 500, 400, 35, false)

	NewProjectileSystem(ctx).Update(dt)

	if u.Alive || u.HP != 0 {
		t.Fatalf("unit should be dead with hp 0, got alive=%v hp=%.1f", u.Alive, u.HP)
	}
	if kills.counts[event.UnitKilled] != 1 {
		t.Fatalf("expected one UnitKilled event, got %d", kills.counts[event.UnitKilled])
	}
}
