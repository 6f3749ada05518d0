// internal/defs/turrets.go
package defs

// TurretDefinition — таблица стрельбы для одного вида башни.
type TurretDefinition struct {
	Kind             TurretKind `json:"kind"`
	Name             string     `json:"name"`
	Range            float64    `json:"range"`
	Damage           float64    `json:"damage"`
	Reload           float64    `json:"reload"`
	ProjectileRadius float64    `json:"projectile_radius"`
	Splash           bool       `json:"splash,omitempty"`
}

// Aimed — башня стреляет по цели, а не по расписанию.
func (d TurretDefinition) Aimed() bool {
	return d.Kind != TurretAreaRain
}
