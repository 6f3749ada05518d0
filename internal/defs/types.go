// internal/defs/types.go
package defs

// Capability — набор боевых возможностей юнита, битовая маска.
type Capability uint8

const (
	CapRanged Capability = 1 << iota
	CapFlying
	CapAntiAir
	CapSplash
	CapPassMelee
)

// Has сообщает, содержит ли набор все биты flag.
func (c Capability) Has(flag Capability) bool {
	return c&flag == flag
}

// TurretKind — вид башенной установки на базе.
type TurretKind string

const (
	TurretDirectFire  TurretKind = "direct-fire"
	TurretBurstCaster TurretKind = "burst-caster"
	TurretAreaRain    TurretKind = "area-rain"
)
