// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a catalog fails validation at load time.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the read-only set of definitions the simulation consumes.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	Units     map[string]UnitDefinition
	UnitOrder []string
	Turrets   map[TurretKind]TurretDefinition
	Stages    []StageDefinition
	Upgrades  []UpgradeDefinition
	Passives  []PassiveDefinition
	Economy   EconomyDefinition
}

// NewCatalog builds a catalog from loaded tables, keeping the unit order as given.
func NewCatalog(units []UnitDefinition, turrets []TurretDefinition, file StageFile) *Catalog {
	c := &Catalog{
		Units:    make(map[string]UnitDefinition, len(units)),
		Turrets:  make(map[TurretKind]TurretDefinition, len(turrets)),
		Stages:   file.Stages,
		Upgrades: file.Upgrades,
		Passives: file.Passives,
		Economy:  file.Economy,
	}
	for _, def := range units {
		c.Units[def.ID] = def
		c.UnitOrder = append(c.UnitOrder, def.ID)
	}
	for _, def := range turrets {
		c.Turrets[def.Kind] = def
	}
	return c
}

// Unit returns the definition for id.
func (c *Catalog) Unit(id string) (UnitDefinition, bool) {
	def, ok := c.Units[id]
	return def, ok
}

// Turret returns the firing table for kind.
func (c *Catalog) Turret(kind TurretKind) (TurretDefinition, bool) {
	def, ok := c.Turrets[kind]
	return def, ok
}

// Stage returns the stage with the given 1-based index.
func (c *Catalog) Stage(index int) (StageDefinition, bool) {
	for _, s := range c.Stages {
		if s.Index == index {
			return s, true
		}
	}
	return StageDefinition{}, false
}

// FinalStage is the highest stage index in the campaign.
func (c *Catalog) FinalStage() int {
	last := 0
	for _, s := range c.Stages {
		if s.Index > last {
			last = s.Index
		}
	}
	return last
}

// Upgrade looks up a shop entry.
func (c *Catalog) Upgrade(id UpgradeID) (UpgradeDefinition, bool) {
	for _, u := range c.Upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return UpgradeDefinition{}, false
}

// Passive looks up a skill by id.
func (c *Catalog) Passive(id string) (PassiveDefinition, bool) {
	for _, p := range c.Passives {
		if p.ID == id {
			return p, true
		}
	}
	return PassiveDefinition{}, false
}

// HomeUnits lists the player's unit types unlocked at the given stage, in catalog order.
func (c *Catalog) HomeUnits(stage int) []string {
	var ids []string
	for _, id := range c.UnitOrder {
		def := c.Units[id]
		if def.Faction == FactionHome && def.UnlockStage <= stage {
			ids = append(ids, id)
		}
	}
	return ids
}

// Validate checks cross references and value ranges.
func (c *Catalog) Validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("%w: no unit definitions", ErrInvalidCatalog)
	}
	for id, u := range c.Units {
		if id == "" || u.ID != id {
			return fmt.Errorf("%w: unit key %q does not match id %q", ErrInvalidCatalog, id, u.ID)
		}
		if u.HP <= 0 || u.Cooldown <= 0 || u.HitRadius <= 0 {
			return fmt.Errorf("%w: unit %q needs positive hp, cooldown and hit radius", ErrInvalidCatalog, id)
		}
		if u.Cost < 0 || u.Speed < 0 || u.Range < 0 || u.Damage < 0 {
			return fmt.Errorf("%w: unit %q has negative stats", ErrInvalidCatalog, id)
		}
		if u.Faction != FactionHome && u.Faction != FactionOpponent {
			return fmt.Errorf("%w: unit %q has unknown faction %q", ErrInvalidCatalog, id, u.Faction)
		}
	}
	for _, kind := range []TurretKind{TurretDirectFire, TurretBurstCaster, TurretAreaRain} {
		t, ok := c.Turrets[kind]
		if !ok {
			return fmt.Errorf("%w: missing turret %q", ErrInvalidCatalog, kind)
		}
		if t.Reload <= 0 {
			return fmt.Errorf("%w: turret %q needs a positive reload", ErrInvalidCatalog, kind)
		}
	}
	if len(c.Stages) == 0 {
		return fmt.Errorf("%w: no stages", ErrInvalidCatalog)
	}
	for i, s := range c.Stages {
		if s.Index != i+1 {
			return fmt.Errorf("%w: stage %d is out of order", ErrInvalidCatalog, s.Index)
		}
		if s.WorldWidthFactor < 1 || s.HomeBaseHP <= 0 || s.OpponentBaseHP <= 0 || s.SpawnInterval <= 0 {
			return fmt.Errorf("%w: stage %d has invalid dimensions", ErrInvalidCatalog, s.Index)
		}
		for _, kind := range s.OpponentTurrets {
			if _, ok := c.Turrets[kind]; !ok {
				return fmt.Errorf("%w: stage %d references unknown turret %q", ErrInvalidCatalog, s.Index, kind)
			}
		}
		for _, e := range s.OpponentRoster {
			if _, ok := c.Units[e.UnitID]; !ok {
				return fmt.Errorf("%w: stage %d references unknown unit %q", ErrInvalidCatalog, s.Index, e.UnitID)
			}
		}
		for _, id := range s.HomeRoster {
			if _, ok := c.Units[id]; !ok {
				return fmt.Errorf("%w: stage %d references unknown unit %q", ErrInvalidCatalog, s.Index, id)
			}
		}
	}
	seen := make(map[UpgradeID]bool)
	for _, u := range c.Upgrades {
		if seen[u.ID] {
			return fmt.Errorf("%w: duplicate upgrade %q", ErrInvalidCatalog, u.ID)
		}
		seen[u.ID] = true
		if u.Kind == UpgradeTurret {
			if _, ok := c.Turrets[u.Turret]; !ok {
				return fmt.Errorf("%w: upgrade %q references unknown turret %q", ErrInvalidCatalog, u.ID, u.Turret)
			}
		}
	}
	if c.Economy.PerTrip <= 0 || c.Economy.HomeCap <= 0 || c.Economy.OpponentCap <= 0 {
		return fmt.Errorf("%w: economy values must be positive", ErrInvalidCatalog)
	}
	return nil
}
