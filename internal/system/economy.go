// internal/system/economy.go
package system

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/event"
	"go-lane-battle/internal/utils"
)

// EconomySystem гоняет сборщиков по циклу
// Seeking -> Channeling -> Returning -> Seeking.
type EconomySystem struct {
	ctx *Context
}

func NewEconomySystem(ctx *Context) *EconomySystem {
	return &EconomySystem{ctx: ctx}
}

func (s *EconomySystem) Update(deltaTime float64) {
	w := s.ctx.World
	for _, side := range component.Sides {
		nodes, pool := w.Nodes[side], w.Pool(side)
		for _, h := range w.Harvesters[side] {
			s.Step(h, nodes, pool, deltaTime)
		}
	}
}

// Step продвигает одного сборщика на deltaTime.
func (s *EconomySystem) Step(h *component.Harvester, nodes []*component.ResourceNode, pool *component.ResourcePool, deltaTime float64) {
	switch h.State {
	case component.Seeking:
		if h.Target == nil {
			h.Target = pickNode(nodes)
		}
		if h.Target == nil {
			return // ростков нет, стоим
		}
		if utils.Distance(h.X, h.Y, h.Target.X, h.Target.Y) < config.ArrivalThreshold {
			// Занятый росток ждём рядом, не перехватывая
			if h.Target.Free() {
				h.Target.ClaimedBy = h
				h.State = component.Channeling
				h.ChannelTimer = config.ChannelDuration
			}
			return
		}
		h.X, h.Y, _ = utils.Approach(h.X, h.Y, h.Target.X, h.Target.Y, config.HarvesterSpeed*deltaTime)

	case component.Channeling:
		h.ChannelTimer -= deltaTime
		if h.ChannelTimer <= 0 {
			h.ChannelTimer = 0
			h.State = component.Returning
		}

	case component.Returning:
		tx, ty := DepositPoint(h.Base)
		if utils.Distance(h.X, h.Y, tx, ty) < config.DepositThreshold {
			s.deposit(h, pool)
			return
		}
		h.X, h.Y, _ = utils.Approach(h.X, h.Y, tx, ty, config.HarvesterSpeed*deltaTime)
	}
}

func (s *EconomySystem) deposit(h *component.Harvester, pool *component.ResourcePool) {
	gained := 0
	if pool != nil {
		gained = pool.Earn(pool.PerTrip)
	}
	if h.Target != nil && h.Target.ClaimedBy == h {
		h.Target.ClaimedBy = nil
	}
	h.Target = nil
	h.State = component.Seeking
	h.Trips++

	total := 0
	if pool != nil {
		total = pool.Amount
	}
	s.ctx.Events.Emit(event.ManaDeposited, event.DepositInfo{Side: h.Side, Amount: gained, Total: total})
}

// pickNode — первый свободный росток, иначе первый по списку.
func pickNode(nodes []*component.ResourceNode) *component.ResourceNode {
	for _, n := range nodes {
		if n.Free() {
			return n
		}
	}
	if len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

// DepositPoint — точка сдачи маны у подножия базы.
func DepositPoint(b *component.Base) (float64, float64) {
	return b.X + b.W/2, b.Y + b.H - config.DepositLift
}
