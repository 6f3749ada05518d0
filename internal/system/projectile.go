// internal/system/projectile.go
package system

import (
	"math"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"
)

// ProjectileSystem двигает снаряды и разрешает попадания.
type ProjectileSystem struct {
	ctx *Context
}

func NewProjectileSystem(ctx *Context) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	w := s.ctx.World
	for _, p := range w.Projectiles {
		if !p.Alive {
			continue
		}
		p.Step(deltaTime)
		if p.OutOfBounds(w.Width, w.Height, config.ProjectileBoundsMargin) {
			p.Alive = false
			continue
		}

		targets := w.Units[p.Origin.Opposite()]
		for _, u := range targets {
			if !u.Alive {
				continue
			}
			if math.Hypot(u.X-p.X, u.Y-p.Y) < p.Radius+u.HitRadius {
				s.hitTarget(p, u, targets)
				break
			}
		}
	}
}

// hitTarget гасит снаряд. Сплэш бьёт всех живых в радиусе полным уроном,
// каждого ровно один раз.
func (s *ProjectileSystem) hitTarget(p *component.Projectile, hit *component.Unit, targets []*component.Unit) {
	hits := 0
	if p.Splash {
		for _, u := range targets {
			if !u.Alive {
				continue
			}
			if math.Hypot(u.X-p.X, u.Y-p.Y) < config.SplashRadius+u.HitRadius {
				DamageUnit(s.ctx, u, p.Damage)
				hits++
			}
		}
		SpawnExplosion(s.ctx, p.X, p.Y, p.Origin)
	} else {
		DamageUnit(s.ctx, hit, p.Damage)
		hits = 1
	}
	p.Alive = false
	s.ctx.Events.Emit(event.ProjectileImpact, event.ImpactInfo{Origin: p.Origin, X: p.X, Y: p.Y, Splash: p.Splash, Hits: hits})
}
