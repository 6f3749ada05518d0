package system

import (
	"testing"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/entity"
	"go-lane-battle/internal/event"
	"go-lane-battle/internal/utils"
)

const (
	testWidth  = 1920.0
	testHeight = float64(config.ScreenHeight)
)

// newTestContext builds a stage-like world with both bases and pools,
// no units and no harvesters.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	cat := defs.Default()
	ctx := NewContext(cat, event.NewDispatcher(), utils.NewPRNGService(1))
	stage, _ := cat.Stage(1)
	ctx.Stage = stage

	w := entity.NewWorld(testWidth, testHeight)
	baseY := testHeight*(config.GroundStart+(1-config.GroundStart)*0.5) - config.BaseHeight
	w.Bases[component.Home] = &component.Base{
		Side: component.Home, X: config.BaseMargin, Y: baseY,
		W: config.BaseWidth, H: config.BaseHeight, HP: 800, MaxHP: 800,
	}
	w.Bases[component.Opponent] = &component.Base{
		Side: component.Opponent, X: testWidth - config.BaseWidth - config.BaseMargin, Y: baseY,
		W: config.BaseWidth, H: config.BaseHeight, HP: 800, MaxHP: 800,
	}
	w.Pools[component.Home] = component.NewResourcePool(0, 200, 25)
	w.Pools[component.Opponent] = component.NewResourcePool(0, 1000, 25)
	ctx.World = w
	return ctx
}

// placeUnit drops a catalog unit at (x, y) without charging mana.
func placeUnit(t *testing.T, ctx *Context, id string, side component.Side, x, y float64) *component.Unit {
	t.Helper()
	def, ok := ctx.Catalog.Unit(id)
	if !ok {
		t.Fatalf("unknown unit %s", id)
	}
	u := component.NewUnit(ctx.World.NewEntity(), def, side, x, y, def.HitRadius*config.Scale)
	ctx.World.AddUnit(u)
	return u
}

type eventCounter struct {
	counts map[event.EventType]int
}

func countEvents(ctx *Context, types ...event.EventType) *eventCounter {
	c := &eventCounter{counts: make(map[event.EventType]int)}
	for _, et := range types {
		ctx.Events.Subscribe(et, c)
	}
	return c
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
}

// assertHPBounds checks the hp invariant for every unit and both bases.
func assertHPBounds(t *testing.T, ctx *Context, tick int) {
	t.Helper()
	for _, side := range component.Sides {
		for _, u := range ctx.World.Units[side] {
			if u.HP < 0 || u.HP > u.MaxHP+1e-9 {
				t.Fatalf("tick %d: unit %d hp %.2f outside [0, %.2f]", tick, u.ID, u.HP, u.MaxHP)
			}
		}
		b := ctx.World.Bases[side]
		if b.HP < 0 || b.HP > b.MaxHP {
			t.Fatalf("tick %d: %s base hp %.2f outside [0, %.2f]", tick, side, b.HP, b.MaxHP)
		}
	}
}
