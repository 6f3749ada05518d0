// internal/component/base.go
package component

import "go-lane-battle/internal/defs"

// Turret — запись об установке на базе, отдельного жизненного цикла нет.
type Turret struct {
	Kind     defs.TurretKind
	Cooldown float64
}

// Base — база стороны.
type Base struct {
	Side      Side
	X, Y      float64
	W, H      float64
	HP, MaxHP float64
	Turrets   []Turret
}

// TakeDamage уменьшает HP с обрезкой по нулю.
// Возвращает true, если база пала именно этим ударом.
func (b *Base) TakeDamage(amount float64) bool {
	if b.HP <= 0 || amount <= 0 {
		return false
	}
	b.HP -= amount
	if b.HP < 0 {
		b.HP = 0
	}
	return b.HP == 0
}

// Grow увеличивает максимум и текущее HP.
func (b *Base) Grow(amount float64) {
	b.MaxHP += amount
	b.HP += amount
}

// Destroyed — база разрушена.
func (b *Base) Destroyed() bool {
	return b.HP <= 0
}

// FrontX — ближняя к противнику грань базы.
func (b *Base) FrontX() float64 {
	if b.Side == Home {
		return b.X + b.W
	}
	return b.X
}

// AddTurret ставит установку, готовую к выстрелу.
func (b *Base) AddTurret(kind defs.TurretKind) {
	b.Turrets = append(b.Turrets, Turret{Kind: kind})
}
