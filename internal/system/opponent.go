// internal/system/opponent.go
package system

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/defs"
)

// OpponentSystem — ИИ противника: раз в интервал этапа выбирает
// случайного юнита из ростера среди тех, на кого хватает маны.
type OpponentSystem struct {
	ctx     *Context
	spawner *Spawner
}

func NewOpponentSystem(ctx *Context, spawner *Spawner) *OpponentSystem {
	return &OpponentSystem{ctx: ctx, spawner: spawner}
}

func (s *OpponentSystem) Update(deltaTime float64) {
	w := s.ctx.World
	interval := s.ctx.Stage.SpawnInterval
	if interval <= 0 {
		return
	}
	w.SpawnTimer += deltaTime
	if w.SpawnTimer < interval {
		return
	}
	w.SpawnTimer = 0

	affordable := s.Affordable()
	if len(affordable) == 0 {
		return
	}
	s.spawner.Spawn(s.ctx.Rng.ChooseWeighted(affordable), component.Opponent)
}

// Affordable — записи ростера, которые противник может оплатить прямо сейчас.
func (s *OpponentSystem) Affordable() []defs.SpawnEntry {
	pool := s.ctx.World.Pool(component.Opponent)
	if pool == nil {
		return nil
	}
	var out []defs.SpawnEntry
	for _, e := range s.ctx.Stage.OpponentRoster {
		def, ok := s.ctx.Catalog.Unit(e.UnitID)
		if ok && pool.CanAfford(def.Cost) {
			out = append(out, e)
		}
	}
	return out
}
