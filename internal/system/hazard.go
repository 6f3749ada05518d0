// internal/system/hazard.go
package system

import (
	"math"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
)

// HazardSystem роняет звёзды на поле. Звезда взрывается у земли или
// при касании базы и бьёт всех юнитов в радиусе, своих и чужих.
type HazardSystem struct {
	ctx *Context
}

func NewHazardSystem(ctx *Context) *HazardSystem {
	return &HazardSystem{ctx: ctx}
}

func (s *HazardSystem) Update(deltaTime float64) {
	hz := s.ctx.Stage.Hazard
	w := s.ctx.World
	if hz.Interval > 0 {
		w.StarTimer += deltaTime
		if w.StarTimer >= w.NextStarTime {
			s.drop()
			w.StarTimer = 0
			w.NextStarTime = s.NextDelay()
		}
	}

	for _, star := range w.Stars {
		if !star.Alive {
			continue
		}
		star.Y += star.VY * deltaTime
		if star.Y >= w.Height-config.StarGroundLift || s.touchesBase(star) {
			s.explode(star)
		}
	}
}

// NextDelay — пауза до следующей звезды.
func (s *HazardSystem) NextDelay() float64 {
	hz := s.ctx.Stage.Hazard
	return hz.Interval + s.ctx.Rng.Float64()*hz.Jitter
}

func (s *HazardSystem) drop() {
	w := s.ctx.World
	margin := w.Width * config.StarEdgeFactor
	w.Stars = append(w.Stars, &component.Star{
		X:      margin + s.ctx.Rng.Float64()*(w.Width-2*margin),
		Y:      config.StarStartY,
		VY:     config.StarBaseSpeed + s.ctx.Rng.Float64()*config.StarSpeedJitter,
		Radius: config.StarRadius,
		Alive:  true,
	})
}

func (s *HazardSystem) touchesBase(star *component.Star) bool {
	for _, b := range s.ctx.World.Bases {
		if b != nil && star.X >= b.X && star.X <= b.X+b.W && star.Y >= b.Y && star.Y <= b.Y+b.H {
			return true
		}
	}
	return false
}

func (s *HazardSystem) explode(star *component.Star) {
	w := s.ctx.World
	for _, side := range component.Sides {
		for _, u := range w.Units[side] {
			if u.Alive && math.Hypot(u.X-star.X, u.Y-star.Y) < config.StarBlastRadius+u.HitRadius {
				DamageUnit(s.ctx, u, config.StarDamage)
			}
		}
		if b := w.Bases[side]; b != nil && math.Abs(star.X-(b.X+b.W/2)) < b.W/2 {
			DamageBase(s.ctx, b, config.StarDamage)
		}
	}
	SpawnExplosion(s.ctx, star.X, star.Y, component.Home)
	star.Alive = false
}
