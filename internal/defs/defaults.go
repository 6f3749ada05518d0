// internal/defs/defaults.go
package defs

// Default returns the built-in catalog. It mirrors assets/data so the
// simulation and its tests can run without touching the disk.
func Default() *Catalog {
	units := []UnitDefinition{
		{ID: "swordsman", Name: "Swordsman", Faction: FactionHome, Cost: 40, HP: 120, Speed: 60, Range: 15, Damage: 20, Cooldown: 1.1, HitRadius: 14},
		{ID: "witch", Name: "Witch", Faction: FactionHome, Cost: 60, HP: 90, Speed: 50, Range: 140, Damage: 18, Cooldown: 2.0, HitRadius: 12, Ranged: true, AntiAir: true, Splash: true},
		{ID: "golem", Name: "Golem", Faction: FactionHome, Cost: 80, HP: 300, Speed: 40, Range: 15, Damage: 30, Cooldown: 2.0, HitRadius: 18, Knockback: 10},
		{ID: "rogue", Name: "Rogue", Faction: FactionHome, Cost: 70, HP: 80, Speed: 90, Range: 15, Damage: 28, Cooldown: 1.3, HitRadius: 10, AntiAir: true, PassMelee: true, UnlockStage: 2},
		{ID: "drake", Name: "Drake", Faction: FactionHome, Cost: 100, HP: 160, Speed: 80, Range: 25, Damage: 22, Cooldown: 1.5, HitRadius: 14, AntiAir: true, Flying: true, UnlockStage: 3},
		{ID: "guardian", Name: "Guardian", Faction: FactionHome, Cost: 120, HP: 450, Speed: 40, Range: 20, Damage: 40, Cooldown: 2.5, HitRadius: 20, Knockback: 12, UnlockStage: 4},
		{ID: "bloodHound", Name: "Blood Hound", Faction: FactionOpponent, Cost: 30, HP: 80, Speed: 90, Range: 15, Damage: 18, Cooldown: 0.9, HitRadius: 12},
		{ID: "necromancer", Name: "Necromancer", Faction: FactionOpponent, Cost: 50, HP: 100, Speed: 50, Range: 130, Damage: 16, Cooldown: 2.0, HitRadius: 12, Ranged: true, AntiAir: true},
		{ID: "boneGiant", Name: "Bone Giant", Faction: FactionOpponent, Cost: 90, HP: 280, Speed: 35, Range: 20, Damage: 26, Cooldown: 2.5, HitRadius: 18},
		{ID: "flameDjinn", Name: "Flame Djinn", Faction: FactionOpponent, Cost: 70, HP: 130, Speed: 70, Range: 120, Damage: 20, Cooldown: 1.8, HitRadius: 12, Ranged: true, AntiAir: true, Flying: true},
		{ID: "shadowWraith", Name: "Shadow Wraith", Faction: FactionOpponent, Cost: 90, HP: 200, Speed: 70, Range: 140, Damage: 24, Cooldown: 2.0, HitRadius: 14, Ranged: true, AntiAir: true, Flying: true},
	}

	turrets := []TurretDefinition{
		{Kind: TurretDirectFire, Name: "Arcane Turret", Range: 250, Damage: 20, Reload: 2.5, ProjectileRadius: 4},
		{Kind: TurretBurstCaster, Name: "Mage Turret", Range: 280, Damage: 25, Reload: 3.0, ProjectileRadius: 5},
		{Kind: TurretAreaRain, Name: "Storm Cloud", Range: 320, Damage: 35, Reload: 2.0, ProjectileRadius: 6, Splash: true},
	}

	stages := StageFile{
		Economy: EconomyDefinition{PerTrip: 25, HomeCap: 200, OpponentCap: 1000},
		Stages: []StageDefinition{
			{
				Index: 1, WorldWidthFactor: 1.6, HomeBaseHP: 800, OpponentBaseHP: 800,
				HomeHarvesters: 1, OpponentHarvesters: 1, SpawnInterval: 7,
				OpponentRoster: []SpawnEntry{
					{UnitID: "bloodHound", Weight: 1},
					{UnitID: "necromancer", Weight: 1},
				},
				HomeRoster:       []string{"swordsman", "witch", "golem"},
				HomeManaFloor:    60,
				SkillPointReward: 2,
				ResetShop:        true,
				Hazard:           HazardDefinition{Interval: 15, Jitter: 10},
			},
			{
				Index: 2, WorldWidthFactor: 1.8, HomeBaseHP: 1000, OpponentBaseHP: 1200,
				HomeHarvesters: 1, OpponentHarvesters: 1, SpawnInterval: 4,
				OpponentTurrets: []TurretKind{TurretDirectFire},
				OpponentRoster: []SpawnEntry{
					{UnitID: "bloodHound", Weight: 1},
					{UnitID: "necromancer", Weight: 1},
					{UnitID: "boneGiant", Weight: 1},
					{UnitID: "flameDjinn", Weight: 1},
				},
				SkillPointReward: 3,
				Hazard:           HazardDefinition{Interval: 10, Jitter: 6},
			},
			{
				Index: 3, WorldWidthFactor: 1.6, HomeBaseHP: 1200, OpponentBaseHP: 1400,
				HomeHarvesters: 1, OpponentHarvesters: 2, SpawnInterval: 3.5,
				OpponentTurrets: []TurretKind{TurretBurstCaster},
				OpponentRoster: []SpawnEntry{
					{UnitID: "bloodHound", Weight: 1},
					{UnitID: "necromancer", Weight: 1},
					{UnitID: "boneGiant", Weight: 1},
					{UnitID: "flameDjinn", Weight: 1},
					{UnitID: "shadowWraith", Weight: 1},
				},
				Hazard: HazardDefinition{Interval: 10, Jitter: 6},
			},
		},
		Upgrades: []UpgradeDefinition{
			{ID: "hp", Name: "Increase Base HP", Desc: "Increase maximum HP of your base by 200.", Kind: UpgradeBaseHP, Amount: 200, Cost: 100, Category: "base"},
			{ID: "turretBullet", Name: "Arcane Turret", Desc: "Add an arcane turret that fires bolts at enemies.", Kind: UpgradeTurret, Turret: TurretDirectFire, Cost: 120, Repeatable: true, Category: "turrets"},
			{ID: "turretMage", Name: "Mage Turret", Desc: "Add a mage that casts powerful spells at your foes.", Kind: UpgradeTurret, Turret: TurretBurstCaster, Cost: 160, Repeatable: true, Category: "turrets"},
			{ID: "turretCloud", Name: "Storm Cloud", Desc: "Summon a storm cloud that rains magical energy on enemies.", Kind: UpgradeTurret, Turret: TurretAreaRain, Cost: 180, Repeatable: true, Category: "turrets"},
			{ID: "manaCap", Name: "Increase Mana Cap", Desc: "Increase mana cap by 200.", Kind: UpgradeManaCap, Amount: 200, Cost: 80, Category: "mana"},
			{ID: "econ", Name: "Improve Mana Harvest", Desc: "Each harvest trip yields 10 more mana.", Kind: UpgradePerTrip, Amount: 10, Cost: 50, Category: "mana"},
			{ID: "addPlant", Name: "Grow Mana Plant", Desc: "Grow another mana plant behind your base.", Kind: UpgradeAddNode, Cost: 80, Repeatable: true, Category: "mana"},
			{ID: "addMage", Name: "Hire Mana Mage", Desc: "Hire an additional mana mage to harvest mana.", Kind: UpgradeAddHarvester, Cost: 60, Repeatable: true, Category: "mana"},
		},
		Passives: []PassiveDefinition{
			{ID: "manaBoost", Name: "Mana Flow", Desc: "+10 mana per trip", Kind: PassivePerTrip, Amount: 10, Cost: 1},
			{ID: "hpBoost", Name: "Sturdy Walls", Desc: "+200 base HP", Kind: PassiveBaseHP, Amount: 200, Cost: 1},
			{ID: "damageBoost", Name: "Arcane Weapons", Desc: "+20% unit damage", Kind: PassiveDamage, Amount: 1.2, Cost: 1},
			{ID: "speedBoost", Name: "Swift Boots", Desc: "+20% unit speed", Kind: PassiveSpeed, Amount: 1.2, Cost: 1},
		},
	}

	return NewCatalog(units, turrets, stages)
}
