package system

import (
	"math"
	"testing"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"
)

const dt = 1.0 / 60

// --- Base contact ---

func TestCombat_UnitAtBaseEdgeDamagesBaseAndHolds(t *testing.T) {
	ctx := newTestContext(t)
	events := countEvents(ctx, event.BaseDamaged)
	enemyBase := ctx.World.Base(component.Opponent)
	enemyBase.HP = 30

	u := placeUnit(t, ctx, "swordsman", component.Home, enemyBase.FrontX(), 500)
	u.Damage = 40

	NewCombatSystem(ctx).UpdateSide(component.Home, dt)

	if enemyBase.HP != 0 {
		t.Fatalf("expected opponent base hp 0, got %.1f", enemyBase.HP)
	}
	if u.X != enemyBase.FrontX()-1 {
		t.Fatalf("unit should be held 1px outside the base, got x=%.2f", u.X)
	}
	if events.counts[event.BaseDamaged] != 1 {
		t.Fatalf("expected one BaseDamaged event, got %d", events.counts[event.BaseDamaged])
	}
	if u.Cooldown != u.CooldownMax {
		t.Fatalf("cooldown should reset after hitting the base, got %.2f", u.Cooldown)
	}
}

func TestCombat_BaseHitWaitsForCooldown(t *testing.T) {
	ctx := newTestContext(t)
	homeBase := ctx.World.Base(component.Home)
	u := placeUnit(t, ctx, "bloodHound", component.Opponent, homeBase.FrontX(), 500)
	u.Cooldown = 0.5

	NewCombatSystem(ctx).UpdateSide(component.Opponent, dt)

	if homeBase.HP != homeBase.MaxHP {
		t.Fatalf("base should not be hit while on cooldown, hp %.1f", homeBase.HP)
	}
	if u.X != homeBase.FrontX()+1 {
		t.Fatalf("opponent unit should be held at front+1, got %.2f", u.X)
	}
}

// --- Blocking ---

func TestCombat_NonPassingUnitNeverPassesLivingEnemy(t *testing.T) {
	ctx := newTestContext(t)
	home := placeUnit(t, ctx, "swordsman", component.Home, 600, 500)
	enemy := placeUnit(t, ctx, "golem", component.Opponent, 660, 500)
	home.Damage, enemy.Damage = 0, 0

	cs := NewCombatSystem(ctx)
	for tick := 0; tick < 1200; tick++ {
		cs.Update(dt)
		if home.Alive && enemy.Alive && home.X >= enemy.X {
			t.Fatalf("tick %d: home unit passed the enemy (%.2f >= %.2f)", tick, home.X, enemy.X)
		}
	}
}

func TestCombat_EnemyBlockStopsShortOfAttackRange(t *testing.T) {
	ctx := newTestContext(t)
	walker := placeUnit(t, ctx, "swordsman", component.Home, 600, 500)
	wall := placeUnit(t, ctx, "boneGiant", component.Opponent, 700, 500)
	walker.Range, walker.Damage = 0, 0
	wall.Speed, wall.Damage, wall.Range = 0, 0, 0

	cs := NewCombatSystem(ctx)
	for tick := 0; tick < 600; tick++ {
		cs.Update(dt)
	}

	contact := walker.HitRadius + wall.HitRadius
	dist := wall.X - walker.X
	if dist <= contact {
		t.Fatalf("blocked unit should stop before contact %.2f, got distance %.2f", contact, dist)
	}
	if dist >= contact+config.EngageBuffer {
		t.Fatalf("unit should have walked up to the engage buffer, distance %.2f", dist)
	}
}

func TestCombat_PassMeleeUnitClosesToContact(t *testing.T) {
	ctx := newTestContext(t)
	rogue := placeUnit(t, ctx, "rogue", component.Home, 600, 500)
	wall := placeUnit(t, ctx, "boneGiant", component.Opponent, 700, 500)
	rogue.Range, rogue.Damage = 0, 0
	wall.Speed, wall.Damage, wall.Range = 0, 0, 0

	cs := NewCombatSystem(ctx)
	for tick := 0; tick < 600; tick++ {
		cs.Update(dt)
	}

	contact := rogue.HitRadius + wall.HitRadius
	if dist := wall.X - rogue.X; dist > contact {
		t.Fatalf("pass-melee unit should close to contact %.2f, distance %.2f", contact, dist)
	}
	if rogue.X >= wall.X {
		t.Fatal("rogue still must not walk through a living enemy it is fighting")
	}
}

func TestCombat_FriendlyBlocking(t *testing.T) {
	ctx := newTestContext(t)
	front := placeUnit(t, ctx, "swordsman", component.Home, 600, 500)
	rear := placeUnit(t, ctx, "swordsman", component.Home, 550, 500)
	front.Speed = 0

	cs := NewCombatSystem(ctx)
	for tick := 0; tick < 300; tick++ {
		cs.Update(dt)
	}

	gap := front.X - rear.X
	if gap < rear.HitRadius*config.FriendlyGapFactor-1 {
		t.Fatalf("rear unit crowded the front unit: gap %.2f", gap)
	}
	if rear.X < 565 {
		t.Fatalf("rear unit should have advanced, x=%.2f", rear.X)
	}
}

// --- Attacks ---

func TestCombat_RangedUnitFiresProjectile(t *testing.T) {
	ctx := newTestContext(t)
	witch := placeUnit(t, ctx, "witch", component.Home, 600, 500)
	placeUnit(t, ctx, "bloodHound", component.Opponent, 700, 500)

	NewCombatSystem(ctx).UpdateSide(component.Home, dt)

	if len(ctx.World.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(ctx.World.Projectiles))
	}
	p := ctx.World.Projectiles[0]
	if math.Abs(p.VX-config.UnitProjectileSpeed) > 1e-6 || math.Abs(p.VY) > 1e-6 {
		t.Fatalf("projectile should fly straight at 400 px/s, got (%.2f,%.2f)", p.VX, p.VY)
	}
	if !p.Splash || p.Origin != component.Home || p.Damage != witch.Damage {
		t.Fatalf("projectile should inherit splash, side and damage: %+v", p)
	}
	if witch.Cooldown != witch.CooldownMax {
		t.Fatalf("cooldown should reset, got %.2f", witch.Cooldown)
	}
	if witch.X != 600 {
		t.Fatal("an engaged unit must not move")
	}
}

func TestCombat_MeleeKnockback(t *testing.T) {
	ctx := newTestContext(t)
	golem := placeUnit(t, ctx, "golem", component.Home, 600, 500)
	hound := placeUnit(t, ctx, "bloodHound", component.Opponent, 640, 500)

	NewCombatSystem(ctx).UpdateSide(component.Home, dt)

	if hound.HP != 50 {
		t.Fatalf("expected hound hp 50 after a 30 dmg hit, got %.1f", hound.HP)
	}
	if hound.X != 650 {
		t.Fatalf("expected knockback to x=650, got %.1f", hound.X)
	}
	if golem.AttackAnim != golem.CooldownMax {
		t.Fatalf("attack animation should run for cooldownMax, got %.2f", golem.AttackAnim)
	}
}

func TestCombat_GroundMeleeIgnoresFlyers(t *testing.T) {
	ctx := newTestContext(t)
	sword := placeUnit(t, ctx, "swordsman", component.Home, 600, 500)
	djinn := placeUnit(t, ctx, "flameDjinn", component.Opponent, 620, 480)
	djinn.Damage = 0

	NewCombatSystem(ctx).UpdateSide(component.Home, dt)

	if sword.X <= 600 {
		t.Fatal("swordsman should walk on when only a flyer is near")
	}
	if djinn.HP != djinn.MaxHP {
		t.Fatal("swordsman must not hit a flyer")
	}
}

func TestCombat_DeadUnitsAreSkipped(t *testing.T) {
	ctx := newTestContext(t)
	sword := placeUnit(t, ctx, "swordsman", component.Home, 600, 500)
	hound := placeUnit(t, ctx, "bloodHound", component.Opponent, 620, 500)
	hound.HP = 10

	NewCombatSystem(ctx).Update(dt)

	if hound.Alive {
		t.Fatal("hound should die from the swordsman's hit")
	}
	if sword.HP != sword.MaxHP {
		t.Fatalf("a unit killed earlier in the tick must not strike back, sword hp %.1f", sword.HP)
	}
}

// --- Targeting ---

func TestNearestTarget_TieGoesToStorageOrder(t *testing.T) {
	ctx := newTestContext(t)
	u := placeUnit(t, ctx, "witch", component.Home, 600, 500)
	first := placeUnit(t, ctx, "bloodHound", component.Opponent, 700, 450)
	placeUnit(t, ctx, "bloodHound", component.Opponent, 700, 550)

	got, _ := NearestTarget(u, ctx.World.Units[component.Opponent])
	if got != first {
		t.Fatal("equal distances should resolve to the first unit in storage order")
	}
}

func TestNearestTarget_DefenseRangeBehind(t *testing.T) {
	ctx := newTestContext(t)
	u := placeUnit(t, ctx, "witch", component.Home, 1000, 500)
	far := placeUnit(t, ctx, "bloodHound", component.Opponent, 1000-config.DefenseRange-10, 500)
	enemies := []*component.Unit{far}
	if got, _ := NearestTarget(u, enemies); got != nil {
		t.Fatal("enemy far behind should be ignored")
	}
	far.X = 1000 - config.DefenseRange + 10
	if got, _ := NearestTarget(u, enemies); got != far {
		t.Fatal("enemy behind within the defense radius should be considered")
	}
}

// --- Command mode ---

func TestCombat_DefendModeHoldsLine(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Mode = component.Defend
	home := ctx.World.Base(component.Home)
	defendX := home.X + home.W + config.DefendLineOffset

	behind := placeUnit(t, ctx, "swordsman", component.Home, defendX-80, 470)
	ahead := placeUnit(t, ctx, "swordsman", component.Home, defendX+200, 540)

	cs := NewCombatSystem(ctx)
	for tick := 0; tick < 600; tick++ {
		cs.Update(dt)
	}
	for _, u := range []*component.Unit{behind, ahead} {
		if math.Abs(u.X-defendX) > 2 {
			t.Fatalf("unit should settle within 2px of the defend line %.1f, got %.2f", defendX, u.X)
		}
	}
}

// --- Manual control ---

func TestCombat_ManualMovementClampsToBand(t *testing.T) {
	ctx := newTestContext(t)
	u := placeUnit(t, ctx, "swordsman", component.Home, 600, 462.3)
	u.HasBand, u.MinY, u.MaxY = true, 462, 549
	u.Controlled = true
	ctx.Controlled = u.ID
	ctx.Input = ManualInput{MoveX: 1, MoveY: -1}

	NewCombatSystem(ctx).UpdateSide(component.Home, dt)

	wantX := 600 + u.Speed*dt/math.Sqrt2
	if math.Abs(u.X-wantX) > 1e-9 {
		t.Fatalf("expected x %.4f, got %.4f", wantX, u.X)
	}
	if u.Y != 462 {
		t.Fatalf("expected y clamped to 462, got %.2f", u.Y)
	}
}

func TestCombat_ManualAttackAndNoBaseDamage(t *testing.T) {
	ctx := newTestContext(t)
	enemyBase := ctx.World.Base(component.Opponent)
	u := placeUnit(t, ctx, "swordsman", component.Home, enemyBase.FrontX()+5, 500)
	u.Controlled = true
	hound := placeUnit(t, ctx, "bloodHound", component.Opponent, enemyBase.FrontX()+25, 500)

	cs := NewCombatSystem(ctx)
	cs.UpdateSide(component.Home, dt)
	if hound.HP != hound.MaxHP {
		t.Fatal("manual unit should not attack without the attack input")
	}
	if enemyBase.HP != enemyBase.MaxHP {
		t.Fatal("manual units never strike the base")
	}

	ctx.Input.Attack = true
	cs.UpdateSide(component.Home, dt)
	if hound.HP != hound.MaxHP-u.Damage {
		t.Fatalf("expected hound hp %.1f, got %.1f", hound.MaxHP-u.Damage, hound.HP)
	}
}

// --- Invariant ---

func TestCombat_HPBoundsHoldDuringBattle(t *testing.T) {
	ctx := newTestContext(t)
	ctx.World.Pools[component.Home] = component.NewResourcePool(100000, 100000, 25)
	ctx.World.Pools[component.Opponent] = component.NewResourcePool(100000, 100000, 25)
	ctx.World.Base(component.Home).AddTurret("area-rain")
	ctx.World.Base(component.Opponent).AddTurret("direct-fire")

	spawner := NewSpawner(ctx)
	combat := NewCombatSystem(ctx)
	projectiles := NewProjectileSystem(ctx)
	defense := NewDefenseSystem(ctx)
	homeIDs := []string{"swordsman", "witch", "golem", "rogue", "drake"}
	oppIDs := []string{"bloodHound", "necromancer", "boneGiant", "flameDjinn", "shadowWraith"}

	for tick := 0; tick < 4000; tick++ {
		if tick%90 == 0 {
			spawner.Spawn(homeIDs[(tick/90)%len(homeIDs)], component.Home)
			spawner.Spawn(oppIDs[(tick/90)%len(oppIDs)], component.Opponent)
		}
		defense.Update(dt)
		combat.Update(dt)
		projectiles.Update(dt)
		ctx.World.Compact()
		assertHPBounds(t, ctx, tick)
	}
}
