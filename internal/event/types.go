// internal/event/types.go
package event

import (
	"go-lane-battle/internal/component"
	"go-lane-battle/internal/types"
)

const (
	UnitSpawned      EventType = "UnitSpawned"      // Юнит вышел из базы
	UnitKilled       EventType = "UnitKilled"       // Юнит погиб
	ProjectileImpact EventType = "ProjectileImpact" // Снаряд попал
	ManaDeposited    EventType = "ManaDeposited"    // Сборщик сдал ману
	UpgradePurchased EventType = "UpgradePurchased" // Покупка в магазине или навык
	BaseDamaged      EventType = "BaseDamaged"
	StageLoaded      EventType = "StageLoaded"
	StageCleared     EventType = "StageCleared" // База противника пала
	CampaignComplete EventType = "CampaignComplete"
	Defeat           EventType = "Defeat" // База игрока пала
	TickCompleted    EventType = "TickCompleted"
)

// UnitInfo — данные для UnitSpawned и UnitKilled.
type UnitInfo struct {
	ID    types.EntityID
	DefID string
	Side  component.Side
	X, Y  float64
}

// ImpactInfo — данные для ProjectileImpact.
type ImpactInfo struct {
	Origin component.Side
	X, Y   float64
	Splash bool
	Hits   int
}

// DepositInfo — данные для ManaDeposited.
type DepositInfo struct {
	Side   component.Side
	Amount int
	Total  int
}

// PurchaseInfo — данные для UpgradePurchased.
type PurchaseInfo struct {
	ID      string
	Passive bool
	Cost    int
}

// BaseInfo — данные для BaseDamaged.
type BaseInfo struct {
	Side   component.Side
	Damage float64
	HP     float64
}

// StageInfo — данные для событий этапа.
type StageInfo struct {
	Stage       int
	SkillPoints int
}
