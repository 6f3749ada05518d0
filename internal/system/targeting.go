// internal/system/targeting.go
package system

import (
	"math"

	"go-lane-battle/internal/component"
	"go-lane-battle/internal/config"
)

// NearestTarget ищет ближайшего живого противника, которого u может атаковать.
// Противники позади дальше радиуса обороны игнорируются. При равных
// расстояниях побеждает первый в порядке хранения.
func NearestTarget(u *component.Unit, enemies []*component.Unit) (*component.Unit, float64) {
	var nearest *component.Unit
	minDistance := math.MaxFloat64
	for _, e := range enemies {
		if !u.CanTarget(e) {
			continue
		}
		dx := e.X - u.X
		// dx*dir < 0 — противник позади
		if dx*u.Side.Dir() < 0 && math.Abs(dx) > config.DefenseRange {
			continue
		}
		dist := math.Hypot(dx, e.Y-u.Y)
		if dist < minDistance {
			minDistance = dist
			nearest = e
		}
	}
	return nearest, minDistance
}

// NearestInRange — ближайший живой юнит не дальше rangeRadius от точки (px, py).
func NearestInRange(px, py, rangeRadius float64, units []*component.Unit) *component.Unit {
	var nearest *component.Unit
	minDistance := math.MaxFloat64
	for _, u := range units {
		if !u.Alive {
			continue
		}
		dist := math.Hypot(u.X-px, u.Y-py)
		if dist <= rangeRadius && dist < minDistance {
			minDistance = dist
			nearest = u
		}
	}
	return nearest
}

// friendAhead — впереди по ходу движения стоит живой союзник вплотную.
func friendAhead(u *component.Unit, own []*component.Unit) bool {
	dir := u.Side.Dir()
	for _, o := range own {
		if o == u || !o.Alive {
			continue
		}
		gap := (o.X - u.X) * dir
		if gap > 0 && math.Abs(o.Y-u.Y) < u.HitRadius*config.FriendlyLaneFactor && gap < u.HitRadius*config.FriendlyGapFactor {
			return true
		}
	}
	return false
}
