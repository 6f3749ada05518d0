// internal/system/spawn.go
package system

import (
	"log"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"
)

// Spawner создаёт юнитов у базы за ману стороны.
type Spawner struct {
	ctx *Context
}

func NewSpawner(ctx *Context) *Spawner {
	return &Spawner{ctx: ctx}
}

// Spawn списывает стоимость и ставит юнита перед базой.
// При нехватке маны или отсутствии базы ничего не меняет и возвращает nil.
func (s *Spawner) Spawn(unitID string, side component.Side) *component.Unit {
	w := s.ctx.World
	def, ok := s.ctx.Catalog.Unit(unitID)
	if !ok {
		log.Printf("Spawner: unit definition not found for ID: %s", unitID)
		return nil
	}
	base, pool := w.Base(side), w.Pool(side)
	if base == nil || pool == nil {
		return nil
	}
	if !pool.Spend(def.Cost) {
		return nil
	}

	x := base.X - config.SpawnOffsetX
	if side == component.Home {
		x = base.X + base.W + config.SpawnOffsetX
	}
	y := base.Y + base.H - config.SpawnLiftY - s.ctx.Rng.Float64()*config.SpawnJitterY

	u := component.NewUnit(w.NewEntity(), def, side, x, y, def.HitRadius*config.Scale)
	if side == component.Home {
		u.Damage *= orOne(s.ctx.Boosts.Damage)
		u.Speed *= orOne(s.ctx.Boosts.Speed)
	}
	if !u.Flying() {
		u.HasBand = true
		u.MinY = w.Height*config.GroundStart + config.BandTopPadding
		u.MaxY = base.Y + base.H - config.BandFloorMargin
	}

	w.AddUnit(u)
	s.ctx.Events.Emit(event.UnitSpawned, event.UnitInfo{ID: u.ID, DefID: u.DefID, Side: side, X: u.X, Y: u.Y})
	return u
}

func orOne(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
