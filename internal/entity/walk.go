// internal/entity/walk.go
package entity

import "go-lane-battle/internal/component"

// Visitor получает каждую сущность ровно один раз за кадр.
// Реализация обязана только читать переданные значения.
type Visitor interface {
	VisitBase(b *component.Base)
	VisitNode(n *component.ResourceNode)
	VisitHarvester(h *component.Harvester)
	VisitUnit(u *component.Unit)
	VisitProjectile(p *component.Projectile)
	VisitParticle(p *component.Particle)
	VisitStar(s *component.Star)
}

// Walk обходит мир в порядке отрисовки: ростки, базы, сборщики, юниты,
// снаряды, звёзды, частицы. Мёртвые юниты и снаряды пропускаются.
func (w *World) Walk(v Visitor) {
	for _, side := range component.Sides {
		for _, n := range w.Nodes[side] {
			v.VisitNode(n)
		}
	}
	for _, side := range component.Sides {
		if b := w.Bases[side]; b != nil {
			v.VisitBase(b)
		}
	}
	for _, side := range component.Sides {
		for _, h := range w.Harvesters[side] {
			v.VisitHarvester(h)
		}
	}
	for _, side := range component.Sides {
		for _, u := range w.Units[side] {
			if u.Alive {
				v.VisitUnit(u)
			}
		}
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			v.VisitProjectile(p)
		}
	}
	for _, s := range w.Stars {
		if s.Alive {
			v.VisitStar(s)
		}
	}
	for _, p := range w.Particles {
		v.VisitParticle(p)
	}
}
