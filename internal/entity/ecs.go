// internal/entity/ecs.go
package entity

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/types"
)

// World — все коллекции одного этапа. Коллекции плотные: мёртвые сущности
// помечаются во время тика и вычищаются разом в Compact.
type World struct {
	GameTime   float64
	NextID     types.EntityID
	Width      float64
	Height     float64
	CameraX    float64
	Bases      [2]*component.Base
	Pools      [2]*component.ResourcePool
	Units      [2][]*component.Unit
	Harvesters [2][]*component.Harvester
	Nodes      [2][]*component.ResourceNode

	Projectiles []*component.Projectile
	Particles   []*component.Particle
	Stars       []*component.Star

	SpawnTimer   float64
	StarTimer    float64
	NextStarTime float64
}

// NewWorld создаёт пустой мир заданной ширины.
func NewWorld(width, height float64) *World {
	return &World{
		NextID: 1,
		Width:  width,
		Height: height,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) Base(side component.Side) *component.Base {
	return w.Bases[side]
}

func (w *World) Pool(side component.Side) *component.ResourcePool {
	return w.Pools[side]
}

// Enemies — юниты противоположной стороны.
func (w *World) Enemies(side component.Side) []*component.Unit {
	return w.Units[side.Opposite()]
}

// AddUnit кладёт юнита в коллекцию его стороны.
func (w *World) AddUnit(u *component.Unit) {
	w.Units[u.Side] = append(w.Units[u.Side], u)
}

// FindUnit ищет живого юнита по идентификатору.
func (w *World) FindUnit(id types.EntityID) *component.Unit {
	if id == 0 {
		return nil
	}
	for _, side := range component.Sides {
		for _, u := range w.Units[side] {
			if u.ID == id && u.Alive {
				return u
			}
		}
	}
	return nil
}

// UnitAt возвращает первого живого юнита стороны, в круг которого попала точка.
func (w *World) UnitAt(side component.Side, x, y, slack float64) *component.Unit {
	for _, u := range w.Units[side] {
		if !u.Alive {
			continue
		}
		dx, dy := u.X-x, u.Y-y
		r := u.HitRadius + slack
		if dx*dx+dy*dy < r*r {
			return u
		}
	}
	return nil
}

// Compact удаляет мёртвых юнитов и погасшие снаряды/звёзды.
// Порядок оставшихся сохраняется.
func (w *World) Compact() {
	for _, side := range component.Sides {
		w.Units[side] = compact(w.Units[side], func(u *component.Unit) bool { return u.Alive })
	}
	w.Projectiles = compact(w.Projectiles, func(p *component.Projectile) bool { return p.Alive })
	w.Stars = compact(w.Stars, func(s *component.Star) bool { return s.Alive })
}

// compact фильтрует срез на месте и обнуляет хвост, чтобы не держать мёртвые указатели.
func compact[T any](items []*T, alive func(*T) bool) []*T {
	live := items[:0]
	for _, it := range items {
		if alive(it) {
			live = append(live, it)
		}
	}
	for i := len(live); i < len(items); i++ {
		items[i] = nil
	}
	return live
}
