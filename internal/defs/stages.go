// internal/defs/stages.go
package defs

// SpawnEntry — одна строка ростера противника. Weight задаёт относительный
// шанс выбора среди доступных по цене юнитов.
type SpawnEntry struct {
	UnitID string `yaml:"unit"`
	Weight int    `yaml:"weight"`
}

// HazardDefinition описывает падающие звёзды этапа. Нулевой Interval отключает их.
type HazardDefinition struct {
	Interval float64 `yaml:"interval"`
	Jitter   float64 `yaml:"jitter"`
}

// StageDefinition описывает параметры одного этапа кампании.
type StageDefinition struct {
	Index              int          `yaml:"index"`
	WorldWidthFactor   float64      `yaml:"world_width_factor"`
	HomeBaseHP         float64      `yaml:"home_base_hp"`
	OpponentBaseHP     float64      `yaml:"opponent_base_hp"`
	HomeHarvesters     int          `yaml:"home_harvesters"`
	OpponentHarvesters int          `yaml:"opponent_harvesters"`
	SpawnInterval      float64      `yaml:"spawn_interval"`
	OpponentTurrets    []TurretKind `yaml:"opponent_turrets"`
	OpponentRoster     []SpawnEntry `yaml:"opponent_roster"`
	// HomeRoster фиксирует доступных юнитов игрока; пустой список означает
	// выбранный между этапами состав.
	HomeRoster       []string         `yaml:"home_roster"`
	HomeManaFloor    int              `yaml:"home_mana_floor"`
	SkillPointReward int              `yaml:"skill_point_reward"`
	ResetShop        bool             `yaml:"reset_shop"`
	Hazard           HazardDefinition `yaml:"hazard"`
}

// EconomyDefinition — базовые параметры маны для обеих сторон.
type EconomyDefinition struct {
	PerTrip     int `yaml:"per_trip"`
	HomeCap     int `yaml:"home_cap"`
	OpponentCap int `yaml:"opponent_cap"`
}
