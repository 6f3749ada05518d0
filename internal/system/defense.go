// internal/system/defense.go
package system

import (
	"log"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/utils"
)

// DefenseSystem управляет установками на базах.
type DefenseSystem struct {
	ctx *Context
}

func NewDefenseSystem(ctx *Context) *DefenseSystem {
	return &DefenseSystem{ctx: ctx}
}

func (s *DefenseSystem) Update(deltaTime float64) {
	for _, side := range component.Sides {
		base := s.ctx.World.Base(side)
		if base == nil {
			continue
		}
		enemies := s.ctx.World.Enemies(side)
		for i := range base.Turrets {
			s.updateTurret(base, &base.Turrets[i], enemies, deltaTime)
		}
	}
}

func (s *DefenseSystem) updateTurret(base *component.Base, t *component.Turret, enemies []*component.Unit, deltaTime float64) {
	t.Cooldown -= deltaTime
	if t.Cooldown > 0 {
		return
	}
	def, ok := s.ctx.Catalog.Turret(t.Kind)
	if !ok {
		log.Printf("DefenseSystem: turret definition not found for kind %s", t.Kind)
		return
	}

	// Облако стреляет по расписанию, цель ему не нужна
	if !def.Aimed() {
		x := base.X - config.RainOffsetX
		if base.Side == component.Home {
			x = base.X + base.W + config.RainOffsetX
		}
		s.launch(base.Side, def, x, base.Y+base.H*config.RainHeightFactor, 0, config.RainFallSpeed, true)
		t.Cooldown = def.Reload
		return
	}

	target := NearestInRange(base.FrontX(), base.Y+base.H/2, def.Range, enemies)
	if target == nil {
		return
	}
	sx, sy := base.FrontX(), base.Y+base.H/3
	vx, vy := utils.Heading(sx, sy, target.X, target.Y, config.TurretProjectileSpeed)
	s.launch(base.Side, def, sx, sy, vx, vy, def.Splash)
	t.Cooldown = def.Reload
}

func (s *DefenseSystem) launch(side component.Side, def defs.TurretDefinition, x, y, vx, vy float64, splash bool) {
	s.ctx.World.Projectiles = append(s.ctx.World.Projectiles, &component.Projectile{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Damage: def.Damage,
		Origin: side,
		Radius: def.ProjectileRadius,
		Splash: splash,
		Alive:  true,
	})
}
