// internal/system/visual_effect.go
package system

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
)

// VisualEffectSystem гасит частицы взрывов. Работает и на паузе.
type VisualEffectSystem struct {
	ctx *Context
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ctx *Context) *VisualEffectSystem {
	return &VisualEffectSystem{ctx: ctx}
}

// Update уменьшает прозрачность частиц и удаляет погасшие.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	w := s.ctx.World
	if w == nil {
		return
	}
	live := w.Particles[:0]
	for _, p := range w.Particles {
		p.Alpha -= p.Decay * deltaTime
		if p.Alpha > 0 {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(w.Particles); i++ {
		w.Particles[i] = nil
	}
	w.Particles = live
}

// SpawnExplosion добавляет облачко частиц в точке (x, y).
func SpawnExplosion(ctx *Context, x, y float64, side component.Side) {
	w := ctx.World
	for i := 0; i < config.ExplosionParticles; i++ {
		w.Particles = append(w.Particles, &component.Particle{
			X:      x + ctx.Rng.Spread(config.ExplosionSpread),
			Y:      y + ctx.Rng.Spread(config.ExplosionSpread),
			Radius: 6 + ctx.Rng.Float64()*6,
			Alpha:  1,
			Decay:  1 + ctx.Rng.Float64(),
			Side:   side,
		})
	}
}
