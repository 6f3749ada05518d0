// internal/system/utils.go
package system

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/event"
)

// DamageUnit наносит урон юниту и сообщает о гибели.
// Погибший юнит теряет ручной контроль.
func DamageUnit(ctx *Context, u *component.Unit, amount float64) {
	if !u.TakeDamage(amount) {
		return
	}
	if ctx.Controlled == u.ID {
		ctx.Controlled = 0
	}
	ctx.Events.Emit(event.UnitKilled, event.UnitInfo{ID: u.ID, DefID: u.DefID, Side: u.Side, X: u.X, Y: u.Y})
}

// DamageBase наносит урон базе.
func DamageBase(ctx *Context, b *component.Base, amount float64) {
	if b == nil || b.Destroyed() || amount <= 0 {
		return
	}
	b.TakeDamage(amount)
	ctx.Events.Emit(event.BaseDamaged, event.BaseInfo{Side: b.Side, Damage: amount, HP: b.HP})
}
