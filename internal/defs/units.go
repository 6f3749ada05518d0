// internal/defs/units.go
package defs

// Faction separates the player's army from the opponent's roster.
type Faction string

const (
	FactionHome     Faction = "home"
	FactionOpponent Faction = "opponent"
)

// UnitDefinition holds the static stats of one unit type.
// HitRadius is given in unscaled pixels; the spawner multiplies it by config.Scale.
type UnitDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Faction     Faction `json:"faction"`
	Cost        int     `json:"cost"`
	HP          float64 `json:"hp"`
	Speed       float64 `json:"speed"`
	Range       float64 `json:"range"`
	Damage      float64 `json:"damage"`
	Cooldown    float64 `json:"cooldown"`
	HitRadius   float64 `json:"hit_radius"`
	Knockback   float64 `json:"knockback,omitempty"`
	Ranged      bool    `json:"ranged,omitempty"`
	Flying      bool    `json:"flying,omitempty"`
	AntiAir     bool    `json:"anti_air,omitempty"`
	Splash      bool    `json:"splash,omitempty"`
	PassMelee   bool    `json:"pass_melee,omitempty"`
	UnlockStage int     `json:"unlock_stage,omitempty"`
}

// Capabilities folds the boolean flags into a Capability set.
func (d UnitDefinition) Capabilities() Capability {
	var c Capability
	if d.Ranged {
		c |= CapRanged
	}
	if d.Flying {
		c |= CapFlying
	}
	if d.AntiAir {
		c |= CapAntiAir
	}
	if d.Splash {
		c |= CapSplash
	}
	if d.PassMelee {
		c |= CapPassMelee
	}
	return c
}
