// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 700
	MaxDeltaTime = 0.06

	// Scale — общий множитель размеров поля боя.
	Scale = 1.4
	// GroundStart — линия горизонта как доля высоты экрана.
	GroundStart = 0.65

	BaseWidth  = 80 * Scale
	BaseHeight = 120 * Scale
	BaseMargin = 140.0

	// Боевые константы
	DefenseRange        = 150 * Scale
	DefendLineOffset    = 80 * Scale
	UnitProjectileSpeed = 400.0
	UnitProjectileRad   = 4.0
	EngageBuffer        = 2.0
	FriendlyGapFactor   = 1.5
	FriendlyLaneFactor  = 2.0
	ControlBuff         = 1.1
	ManualFlyerFloor    = 40.0

	// Снаряды
	ProjectileBoundsMargin = 50.0
	SplashRadius           = 30.0
	TurretProjectileSpeed  = 300.0
	RainFallSpeed          = 250.0
	RainOffsetX            = 60 * Scale
	RainHeightFactor       = 0.15

	// Экономика
	HarvesterSpeed        = 60.0
	ChannelDuration       = 3.0
	ArrivalThreshold      = 5 * Scale
	DepositThreshold      = 20 * Scale
	DepositLift           = 10 * Scale
	HarvesterSpawnOffset  = 10 * Scale
	HarvesterHeightFactor = 0.85
	NodeOffset            = 50.0
	NodeSpacing           = 30.0
	NodeJitter            = 15.0
	NodeHeightFactor      = 0.8

	// Спавн юнитов
	SpawnOffsetX    = 10 * Scale
	SpawnLiftY      = 40 * Scale
	SpawnJitterY    = 60 * Scale
	BandTopPadding  = 5 * Scale
	BandFloorMargin = 20 * Scale

	// Падающие звёзды
	StarStartY      = -30.0
	StarBaseSpeed   = 200.0
	StarSpeedJitter = 100.0
	StarRadius      = 6 * Scale
	StarBlastRadius = 60 * Scale
	StarDamage      = 40
	StarGroundLift  = 50.0
	StarEdgeFactor  = 0.2

	// Взрывы
	ExplosionParticles = 6
	ExplosionSpread    = 20.0

	CameraSpeed = 300.0

	MaxRosterSize = 5

	SpectateInterval = 1.0 / 15

	PauseButtonX    = ScreenWidth - 40
	PauseButtonY    = 30
	PauseButtonSize = 14.0
	StageIndicatorX = ScreenWidth / 2
	StageIndicatorY = 20
	HUDPadding      = 12
	HUDLineHeight   = 16
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	SkyColor        = color.RGBA{28, 32, 58, 255}
	GroundColor     = color.RGBA{46, 70, 52, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	HomeColor       = color.RGBA{54, 240, 168, 255}
	OpponentColor   = color.RGBA{240, 54, 54, 255}
	HomeShotColor   = color.RGBA{170, 238, 255, 255}
	EnemyShotColor  = color.RGBA{255, 102, 136, 255}
	HomeBlastColor  = color.RGBA{255, 200, 255, 255}
	EnemyBlastColor = color.RGBA{255, 100, 100, 255}
	NodeColor       = color.RGBA{120, 200, 255, 255}
	HarvesterColor  = color.RGBA{255, 215, 0, 255}
	StarColor       = color.RGBA{255, 240, 160, 255}
	HealthBackColor = color.RGBA{0, 0, 0, 255}
	ControlRing     = color.RGBA{255, 255, 255, 255}
	UIColorBlue     = color.RGBA{70, 130, 180, 220}
	UIColorRed      = color.RGBA{220, 60, 60, 220}
	OverlayColor    = color.RGBA{0, 0, 0, 128}
	StrokeWidth     = float32(2.0)
)
