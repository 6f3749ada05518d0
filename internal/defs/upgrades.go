// internal/defs/upgrades.go
package defs

// UpgradeKind — вид эффекта покупки в магазине. Эффект интерпретируется
// планировщиком этапа, сама запись остаётся чистыми данными.
type UpgradeKind string

const (
	UpgradeBaseHP       UpgradeKind = "base_hp"
	UpgradeTurret       UpgradeKind = "turret"
	UpgradeManaCap      UpgradeKind = "mana_cap"
	UpgradePerTrip      UpgradeKind = "per_trip"
	UpgradeAddNode      UpgradeKind = "add_node"
	UpgradeAddHarvester UpgradeKind = "add_harvester"
)

// UpgradeID — идентификатор позиции магазина.
type UpgradeID string

// UpgradeDefinition — позиция магазина, оплачиваемая маной.
type UpgradeDefinition struct {
	ID         UpgradeID   `yaml:"id"`
	Name       string      `yaml:"name"`
	Desc       string      `yaml:"desc"`
	Kind       UpgradeKind `yaml:"kind"`
	Amount     float64     `yaml:"amount,omitempty"`
	Turret     TurretKind  `yaml:"turret,omitempty"`
	Cost       int         `yaml:"cost"`
	Repeatable bool        `yaml:"repeatable"`
	Category   string      `yaml:"category"`
}

// PassiveKind — вид пассивного навыка, покупаемого за очки навыков.
type PassiveKind string

const (
	PassivePerTrip PassiveKind = "per_trip"
	PassiveBaseHP  PassiveKind = "base_hp"
	PassiveDamage  PassiveKind = "damage"
	PassiveSpeed   PassiveKind = "speed"
)

// PassiveDefinition — пассивный навык. Для damage и speed Amount — множитель,
// для остальных — прибавка.
type PassiveDefinition struct {
	ID     string      `yaml:"id"`
	Name   string      `yaml:"name"`
	Desc   string      `yaml:"desc"`
	Kind   PassiveKind `yaml:"kind"`
	Amount float64     `yaml:"amount"`
	Cost   int         `yaml:"cost"`
}
