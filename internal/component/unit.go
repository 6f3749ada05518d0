// internal/component/unit.go
package component

import (
	"go-lane-battle/internal/defs"
	"go-lane-battle/internal/types"
)

// Unit — боевой юнит. Все виды юнитов имеют одну форму,
// различия задаются набором Caps.
type Unit struct {
	ID          types.EntityID
	DefID       string
	Side        Side
	X, Y        float64
	HP, MaxHP   float64
	Speed       float64
	Range       float64
	Damage      float64
	Cooldown    float64
	CooldownMax float64
	HitRadius   float64
	Knockback   float64
	Caps        defs.Capability
	Alive       bool
	Controlled  bool
	Buffed      bool
	AttackAnim  float64

	// Вертикальная полоса для наземных юнитов; HasBand=false у летающих.
	HasBand    bool
	MinY, MaxY float64
}

// NewUnit создаёт юнита по определению без учёта множителей.
func NewUnit(id types.EntityID, def defs.UnitDefinition, side Side, x, y, radius float64) *Unit {
	return &Unit{
		ID:          id,
		DefID:       def.ID,
		Side:        side,
		X:           x,
		Y:           y,
		HP:          def.HP,
		MaxHP:       def.HP,
		Speed:       def.Speed,
		Range:       def.Range,
		Damage:      def.Damage,
		CooldownMax: def.Cooldown,
		HitRadius:   radius,
		Knockback:   def.Knockback,
		Caps:        def.Capabilities(),
		Alive:       true,
	}
}

// TakeDamage уменьшает здоровье, не опуская его ниже нуля.
// Возвращает true, если удар оказался смертельным.
func (u *Unit) TakeDamage(amount float64) bool {
	if !u.Alive || amount <= 0 {
		return false
	}
	u.HP -= amount
	if u.HP <= 0 {
		u.HP = 0
		u.Alive = false
		return true
	}
	return false
}

func (u *Unit) Flying() bool { return u.Caps.Has(defs.CapFlying) }
func (u *Unit) Ranged() bool { return u.Caps.Has(defs.CapRanged) }
func (u *Unit) AntiAir() bool { return u.Caps.Has(defs.CapAntiAir) }
func (u *Unit) Splash() bool { return u.Caps.Has(defs.CapSplash) }
func (u *Unit) PassMelee() bool { return u.Caps.Has(defs.CapPassMelee) }

// CanTarget — фильтр летающих целей.
func (u *Unit) CanTarget(other *Unit) bool {
	return other.Alive && (!other.Flying() || u.AntiAir())
}

// ApplyBuff умножает живучесть, урон и скорость. Повторный вызов ничего не делает.
func (u *Unit) ApplyBuff(factor float64) {
	if u.Buffed {
		return
	}
	u.MaxHP *= factor
	u.HP *= factor
	u.Damage *= factor
	u.Speed *= factor
	u.Buffed = true
}

// RemoveBuff снимает бафф, HP обрезается по новому максимуму.
func (u *Unit) RemoveBuff(factor float64) {
	if !u.Buffed {
		return
	}
	u.MaxHP /= factor
	if u.HP > u.MaxHP {
		u.HP = u.MaxHP
	}
	u.Damage /= factor
	u.Speed /= factor
	u.Buffed = false
}

// ClampBand удерживает наземного юнита в его полосе.
func (u *Unit) ClampBand(floor float64) {
	if u.HasBand {
		u.Y = clamp(u.Y, u.MinY, u.MaxY)
		return
	}
	u.Y = clamp(u.Y, 0, floor)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
