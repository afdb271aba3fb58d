// internal/config/config.go
package config

import "image/color"

// Симуляция
const (
	FixedTimeStep = 1.0 / 60 // шаг симуляции, секунды
	MaxDeltaTime  = 0.06     // ограничение кадра, чтобы не копить шаги после лагов
	TimerEpsilon  = 1e-9     // таймеры считаются истёкшими при <= TimerEpsilon
)

// Игрок и экономика
const (
	StartingGold   = 100
	StartingHealth = 20
	FusionCost     = 50
	LeakPenalty    = 1 // урон базе за врага, дошедшего до конца пути
)

// Волны
const (
	InitialWaveCountdown = 5.0  // секунд до первой волны
	AutoStartThreshold   = 30.0 // пауза между волнами
)

// Статусы
const (
	BurnDuration     = 3.0
	BurnTickInterval = 1.0
	ShockDuration    = 0.5

	IcePulseSlowDuration = 1.2 // дольше перезарядки Ice, эффект не спадает между импульсами
	DeepFreezeFactor     = 1.0
	DeepFreezeDuration   = 1.5 // IceIce
	ChainFreezeDuration  = 1.5 // добивание IceLightning

	ResistanceFactor = 0.5
)

// Атаки
const (
	SplashRadius      = 1.5 // FireFire и добивание FireLightning, от цели, не от башни
	SplashFactor      = 0.5
	ChainBounceRadius = 4.0 // больше дальности любой башни
	ChainHopCap       = 2
	ChainUnlimited    = -1
	OverloadFactor    = 2.5 // LightningLightning

	ProjectileSpeed     = 8.0  // world units per second
	ProjectileHitRadius = 0.15 // world units
)

// Визуальные эффекты
const (
	LaserDuration       = 0.15
	PulseDuration       = 0.3
	DamageFlashDuration = 0.2
)

// Экран
const (
	ScreenWidth  = 1100
	ScreenHeight = 720
	WorldScale   = 50.0 // pixels per world unit
	WorldOffsetX = 50.0
	WorldOffsetY = 90.0

	EnemyRadius      = 0.28 // world units
	TowerRadius      = 0.35
	NodeRadius       = 0.42
	ProjectileRadius = 0.08

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0
	SpeedButtonSize  = 12.0
	ClickCooldown    = 200 // мс между переключениями кнопок
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	EntryColor       = color.RGBA{0, 180, 80, 255}
	ExitColor        = color.RGBA{200, 40, 40, 255}
	NodeColor        = color.RGBA{60, 60, 75, 255}
	NodeSelectColor  = color.RGBA{255, 215, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	HealthBarColor   = color.RGBA{50, 205, 50, 255}
	HealthBackColor  = color.RGBA{120, 30, 30, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	UIColorBlue      = color.RGBA{70, 130, 180, 220}
	UIColorRed       = color.RGBA{220, 60, 60, 220}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
	SpeedMultipliers = []float64{1, 2, 4}
)
