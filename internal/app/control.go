// internal/app/control.go
package app

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/system"
	"go-lane-battle/internal/types"
)

// SetManualControl берёт под контроль юнита игрока; 0 снимает контроль.
// Одновременно управляется не больше одного юнита.
func (g *Game) SetManualControl(id types.EntityID) bool {
	g.releaseControl()
	if id == 0 {
		return true
	}
	u := g.Ctx.World.FindUnit(id)
	if u == nil || u.Side != component.Home {
		return false
	}
	u.Controlled = true
	u.ApplyBuff(config.ControlBuff)
	g.Ctx.Controlled = id
	return true
}

// ControlUnitAt берёт под контроль юнита игрока в точке мира.
func (g *Game) ControlUnitAt(x, y float64) bool {
	u := g.Ctx.World.UnitAt(component.Home, x, y, 6)
	if u == nil {
		return false
	}
	return g.SetManualControl(u.ID)
}

func (g *Game) releaseControl() {
	if u := g.Ctx.ControlledUnit(); u != nil {
		u.Controlled = false
		u.RemoveBuff(config.ControlBuff)
	}
	g.Ctx.Controlled = 0
	g.Ctx.Input = system.ManualInput{}
}

func (g *Game) SetManualInput(in system.ManualInput) {
	g.Ctx.Input = in
}

func (g *Game) SetCommandMode(mode component.CommandMode) {
	g.Ctx.Mode = mode
}

func (g *Game) CommandMode() component.CommandMode {
	return g.Ctx.Mode
}

// SetCameraScroll: -1 влево, 1 вправо, 0 стоп.
func (g *Game) SetCameraScroll(direction int) {
	switch {
	case direction < 0:
		g.Ctx.Scroll = -1
	case direction > 0:
		g.Ctx.Scroll = 1
	default:
		g.Ctx.Scroll = 0
	}
}
