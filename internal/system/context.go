// internal/system/context.go
package system

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/entity"
	"go-lane-battle/internal/event"
	"go-lane-battle/internal/types"
	"go-lane-battle/internal/utils"
)

// ManualInput — состояние управления для юнита под ручным контролем.
type ManualInput struct {
	MoveX, MoveY float64
	Attack       bool
}

// Boosts — постоянные множители для юнитов игрока.
type Boosts struct {
	Damage float64
	Speed  float64
}

// Context — всё, что нужно системам на один тик. Глобального состояния нет:
// несколько симуляций могут жить рядом, каждая со своим контекстом.
type Context struct {
	World      *entity.World
	Catalog    *defs.Catalog
	Stage      defs.StageDefinition
	Events     *event.Dispatcher
	Rng        *utils.PRNGService
	Mode       component.CommandMode
	Controlled types.EntityID
	Input      ManualInput
	Scroll     int
	Boosts     Boosts
}

// NewContext создаёт контекст с единичными множителями.
func NewContext(catalog *defs.Catalog, events *event.Dispatcher, rng *utils.PRNGService) *Context {
	return &Context{
		Catalog: catalog,
		Events:  events,
		Rng:     rng,
		Boosts:  Boosts{Damage: 1, Speed: 1},
	}
}

// ControlledUnit — живой юнит под ручным контролем или nil.
func (c *Context) ControlledUnit() *component.Unit {
	if c.World == nil {
		return nil
	}
	return c.World.FindUnit(c.Controlled)
}
