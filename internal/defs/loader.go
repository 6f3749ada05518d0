// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	UnitsFile   = "units.json"
	TurretsFile = "turrets.json"
	StagesFile  = "stages.yaml"
)

// StageFile is the YAML document holding the campaign tables.
type StageFile struct {
	Economy  EconomyDefinition   `yaml:"economy"`
	Stages   []StageDefinition   `yaml:"stages"`
	Upgrades []UpgradeDefinition `yaml:"upgrades"`
	Passives []PassiveDefinition `yaml:"passives"`
}

// LoadUnitDefinitions reads the unit configuration file.
func LoadUnitDefinitions(path string) ([]UnitDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	log.Printf("Loaded %d unit definitions", len(unitDefs))
	return unitDefs, nil
}

// LoadTurretDefinitions reads the turret configuration file.
func LoadTurretDefinitions(path string) ([]TurretDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read turret definitions file: %w", err)
	}

	var turretDefs []TurretDefinition
	if err := json.Unmarshal(file, &turretDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal turret definitions: %w", err)
	}

	log.Printf("Loaded %d turret definitions", len(turretDefs))
	return turretDefs, nil
}

// LoadStageFile reads the stage, shop and skill tables.
func LoadStageFile(path string) (StageFile, error) {
	var file StageFile
	raw, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("failed to read stage file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("failed to unmarshal stage file: %w", err)
	}

	log.Printf("Loaded %d stages, %d upgrades, %d passives", len(file.Stages), len(file.Upgrades), len(file.Passives))
	return file, nil
}

// LoadCatalog loads every definition file from dir and validates the result.
func LoadCatalog(dir string) (*Catalog, error) {
	units, err := LoadUnitDefinitions(filepath.Join(dir, UnitsFile))
	if err != nil {
		return nil, err
	}
	turrets, err := LoadTurretDefinitions(filepath.Join(dir, TurretsFile))
	if err != nil {
		return nil, err
	}
	stages, err := LoadStageFile(filepath.Join(dir, StagesFile))
	if err != nil {
		return nil, err
	}

	c := NewCatalog(units, turrets, stages)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog in %s: %w", dir, err)
	}
	return c, nil
}
