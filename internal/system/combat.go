// internal/system/combat.go
package system

import (
	"math"
	"sort"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
	"go-lane-battle/internal/utils"
)

// CombatSystem ведёт юнитов обеих сторон: движение, блокировку, атаки,
// штурм базы и ручное управление.
type CombatSystem struct {
	ctx *Context
}

func NewCombatSystem(ctx *Context) *CombatSystem {
	return &CombatSystem{ctx: ctx}
}

// Update обрабатывает сначала юнитов игрока, затем противника.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, side := range component.Sides {
		s.UpdateSide(side, deltaTime)
	}
}

// UpdateSide обрабатывает юнитов одной стороны. Юниты сортируются
// «передний первым», чтобы задние видели уже сдвинутых передних.
func (s *CombatSystem) UpdateSide(side component.Side, deltaTime float64) {
	w := s.ctx.World
	own := w.Units[side]
	dir := side.Dir()
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].X*dir > own[j].X*dir
	})
	enemies := w.Enemies(side)

	for _, u := range own {
		if !u.Alive {
			continue
		}
		u.Cooldown -= deltaTime
		if u.AttackAnim > 0 {
			u.AttackAnim = math.Max(0, u.AttackAnim-deltaTime)
		}
		if u.Controlled {
			s.manual(u, enemies, deltaTime)
			continue
		}
		s.think(u, own, enemies, deltaTime)
	}
}

func (s *CombatSystem) think(u *component.Unit, own, enemies []*component.Unit, deltaTime float64) {
	blocked := friendAhead(u, own)

	target, dist := NearestTarget(u, enemies)
	if target != nil && !u.PassMelee() && dist < u.HitRadius+target.HitRadius+config.EngageBuffer {
		blocked = true
	}

	engaged := false
	if target != nil && dist <= u.Range+u.HitRadius+target.HitRadius {
		if u.Cooldown <= 0 {
			s.attack(u, target)
			u.Cooldown = u.CooldownMax
		}
		engaged = true
	}

	if !engaged && !blocked {
		s.advance(u, target, deltaTime)
	}
	s.pressBase(u)
}

// advance двигает юнита по линии. В режиме обороны юниты игрока держат
// рубеж перед базой и выходят навстречу только близкому противнику.
func (s *CombatSystem) advance(u *component.Unit, target *component.Unit, deltaTime float64) {
	w := s.ctx.World
	step := u.Speed * deltaTime

	if u.Side == component.Home && s.ctx.Mode == component.Defend {
		home := w.Base(component.Home)
		defendX := home.X + home.W + config.DefendLineOffset
		switch {
		case target != nil && math.Abs(target.X-u.X) <= config.DefenseRange:
			if target.X > u.X {
				u.X += step
			} else {
				u.X -= step
			}
		case u.X < defendX-2:
			u.X = math.Min(u.X+step, defendX)
		case u.X > defendX+2:
			u.X = math.Max(u.X-step, defendX)
		}
	} else {
		u.X += u.Side.Dir() * step
	}
	u.X = utils.Clamp(u.X, 0, w.Width)
}

// pressBase — юнит у грани вражеской базы бьёт её по перезарядке
// и не заходит внутрь.
func (s *CombatSystem) pressBase(u *component.Unit) {
	base := s.ctx.World.Base(u.Side.Opposite())
	if base == nil {
		return
	}
	reachX := base.FrontX()
	if u.Side == component.Home && u.X < reachX {
		return
	}
	if u.Side == component.Opponent && u.X > reachX {
		return
	}

	if u.Cooldown <= 0 {
		DamageBase(s.ctx, base, u.Damage)
		u.Cooldown = u.CooldownMax
	}
	if u.Side == component.Home {
		u.X = math.Min(u.X, reachX-1)
	} else {
		u.X = math.Max(u.X, reachX+1)
	}
}

// manual — ручное управление: движение по вводу, атака по кнопке.
// Блокировка, выбор цели ИИ и штурм базы не применяются.
func (s *CombatSystem) manual(u *component.Unit, enemies []*component.Unit, deltaTime float64) {
	in := s.ctx.Input
	if length := math.Hypot(in.MoveX, in.MoveY); length > 0 {
		u.X += in.MoveX / length * u.Speed * deltaTime
		u.Y += in.MoveY / length * u.Speed * deltaTime
		u.X = utils.Clamp(u.X, 0, s.ctx.World.Width)
		u.ClampBand(s.ctx.World.Height - config.ManualFlyerFloor)
	}
	if in.Attack && u.Cooldown <= 0 {
		if target, _ := NearestTarget(u, enemies); target != nil {
			s.attack(u, target)
		}
		u.Cooldown = u.CooldownMax
	}
}

// attack — дальний бой выпускает снаряд в текущую позицию цели,
// ближний бьёт напрямую и отбрасывает.
func (s *CombatSystem) attack(u, target *component.Unit) {
	if u.Ranged() {
		vx, vy := utils.Heading(u.X, u.Y, target.X, target.Y, config.UnitProjectileSpeed)
		s.ctx.World.Projectiles = append(s.ctx.World.Projectiles, &component.Projectile{
			X:      u.X,
			Y:      u.Y,
			VX:     vx,
			VY:     vy,
			Damage: u.Damage,
			Origin: u.Side,
			Radius: config.UnitProjectileRad,
			Splash: u.Splash(),
			Alive:  true,
		})
		return
	}

	DamageUnit(s.ctx, target, u.Damage)
	if u.Knockback > 0 {
		target.X += u.Side.Dir() * u.Knockback
	}
	u.AttackAnim = u.CooldownMax
}
