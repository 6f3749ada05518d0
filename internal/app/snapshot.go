// internal/app/snapshot.go
package app

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/types"
)

// SideSnapshot — сводка по одной стороне.
type SideSnapshot struct {
	Mana       int     `json:"mana" yaml:"mana"`
	ManaCap    int     `json:"mana_cap" yaml:"mana_cap"`
	PerTrip    int     `json:"per_trip" yaml:"per_trip"`
	BaseHP     float64 `json:"base_hp" yaml:"base_hp"`
	BaseMaxHP  float64 `json:"base_max_hp" yaml:"base_max_hp"`
	Turrets    int     `json:"turrets" yaml:"turrets"`
	Units      int     `json:"units" yaml:"units"`
	Harvesters int     `json:"harvesters" yaml:"harvesters"`
	Nodes      int     `json:"nodes" yaml:"nodes"`
}

// UnitSnapshot — положение и здоровье одного юнита.
type UnitSnapshot struct {
	ID    types.EntityID `json:"id" yaml:"id"`
	DefID string         `json:"def" yaml:"def"`
	Side  string         `json:"side" yaml:"side"`
	X     float64        `json:"x" yaml:"x"`
	Y     float64        `json:"y" yaml:"y"`
	HP    float64        `json:"hp" yaml:"hp"`
	MaxHP float64        `json:"max_hp" yaml:"max_hp"`
}

// Snapshot — неизменяемый срез состояния для зрителей и отчётов.
type Snapshot struct {
	Session     string         `json:"session" yaml:"session"`
	Stage       int            `json:"stage" yaml:"stage"`
	Phase       string         `json:"phase" yaml:"phase"`
	Paused      bool           `json:"paused" yaml:"paused"`
	Time        float64        `json:"time" yaml:"time"`
	WorldWidth  float64        `json:"world_width" yaml:"world_width"`
	CameraX     float64        `json:"camera_x" yaml:"camera_x"`
	Mode        string         `json:"mode" yaml:"mode"`
	Controlled  types.EntityID `json:"controlled,omitempty" yaml:"controlled,omitempty"`
	SkillPoints int            `json:"skill_points" yaml:"skill_points"`
	Home        SideSnapshot   `json:"home" yaml:"home"`
	Opponent    SideSnapshot   `json:"opponent" yaml:"opponent"`
	Units       []UnitSnapshot `json:"units" yaml:"units"`
	Projectiles int            `json:"projectiles" yaml:"projectiles"`
	Stars       int            `json:"stars" yaml:"stars"`
}

// Snapshot копирует текущее состояние; результат не ссылается на мир.
func (g *Game) Snapshot() Snapshot {
	w := g.Ctx.World
	s := Snapshot{
		Session:     g.SessionID.String(),
		Stage:       g.stage,
		Phase:       g.phase.String(),
		Paused:      g.isPaused,
		Time:        w.GameTime,
		WorldWidth:  w.Width,
		CameraX:     w.CameraX,
		Mode:        g.Ctx.Mode.String(),
		SkillPoints: g.Progress.SkillPoints,
		Home:        g.sideSnapshot(component.Home),
		Opponent:    g.sideSnapshot(component.Opponent),
	}
	if u := g.Ctx.ControlledUnit(); u != nil {
		s.Controlled = u.ID
	}
	for _, side := range component.Sides {
		for _, u := range w.Units[side] {
			if !u.Alive {
				continue
			}
			s.Units = append(s.Units, UnitSnapshot{
				ID: u.ID, DefID: u.DefID, Side: side.String(),
				X: u.X, Y: u.Y, HP: u.HP, MaxHP: u.MaxHP,
			})
		}
	}
	for _, p := range w.Projectiles {
		if p.Alive {
			s.Projectiles++
		}
	}
	for _, st := range w.Stars {
		if st.Alive {
			s.Stars++
		}
	}
	return s
}

func (g *Game) sideSnapshot(side component.Side) SideSnapshot {
	w := g.Ctx.World
	pool, base := w.Pool(side), w.Base(side)
	alive := 0
	for _, u := range w.Units[side] {
		if u.Alive {
			alive++
		}
	}
	return SideSnapshot{
		Mana:       pool.Amount,
		ManaCap:    pool.Cap,
		PerTrip:    pool.PerTrip,
		BaseHP:     base.HP,
		BaseMaxHP:  base.MaxHP,
		Turrets:    len(base.Turrets),
		Units:      alive,
		Harvesters: len(w.Harvesters[side]),
		Nodes:      len(w.Nodes[side]),
	}
}
