// internal/event/types.go
package event

import (
	"elemental-td/internal/defs"
	"elemental-td/internal/types"
	"elemental-td/pkg/geom"
)

const (
	TowerFired       EventType = "TowerFired"
	EnemyHit         EventType = "EnemyHit"        // Урон нанесён (со стихией)
	EnemyKilled      EventType = "EnemyKilled"     // Враг уничтожен
	EnemyReachedEnd  EventType = "EnemyReachedEnd" // Враг дошёл до конца пути
	EnemySpawned     EventType = "EnemySpawned"
	WaveStarted      EventType = "WaveStarted"
	WaveCompleted    EventType = "WaveCompleted" // Волна закончилась
	Victory          EventType = "Victory"
	Defeat           EventType = "Defeat"
	GoldChanged      EventType = "GoldChanged"
	HealthChanged    EventType = "HealthChanged"
	TowerPlaced      EventType = "TowerPlaced" // Башня построена
	TowerRemoved     EventType = "TowerRemoved"
	TowerFused       EventType = "TowerFused"
	BuildDenied      EventType = "BuildDenied"
	ChainArc         EventType = "ChainArc"
	IcePulse         EventType = "IcePulse"
	CountdownChanged EventType = "CountdownChanged"
)

// DenyReason объясняет, почему запрос на постройку или слияние отклонён.
type DenyReason string

const (
	DenyNoSelection      DenyReason = "no blueprint selected"
	DenyInvalidNode      DenyReason = "invalid node"
	DenyOccupied         DenyReason = "node occupied"
	DenyEmptyNode        DenyReason = "node is empty"
	DenySameNode         DenyReason = "cannot fuse a tower with itself"
	DenyNoRecipe         DenyReason = "no fusion recipe"
	DenyMissingBlueprint DenyReason = "no tower for fusion result"
	DenyInsufficientGold DenyReason = "not enough gold"
	DenyGameOver         DenyReason = "game is over"
)

type TowerFiredData struct {
	TowerID  types.EntityID
	TargetID types.EntityID
	Element  defs.ElementType
	From     geom.Vec2
	To       geom.Vec2
}

type EnemyHitData struct {
	EnemyID  types.EntityID
	Damage   float64 // после учёта устойчивости
	Element  defs.ElementType
	Position geom.Vec2
}

type EnemyKilledData struct {
	EnemyID  types.EntityID
	Type     defs.EnemyType
	Reward   int
	Position geom.Vec2
}

type EnemyReachedEndData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	Penalty int
}

type EnemySpawnedData struct {
	EnemyID types.EntityID
	Type    defs.EnemyType
	Wave    int
}

// WaveData сопровождает WaveStarted и WaveCompleted. Index считается с нуля.
type WaveData struct {
	Index int
	Total int
}

type OutcomeData struct {
	WavesCleared int
}

type GoldChangedData struct {
	Gold  int
	Delta int
}

type HealthChangedData struct {
	Health int
	Delta  int
}

type TowerPlacedData struct {
	TowerID types.EntityID
	NodeID  types.EntityID
	DefID   string
	Element defs.ElementType
}

type TowerRemovedData struct {
	TowerID types.EntityID
	NodeID  types.EntityID
}

type TowerFusedData struct {
	TowerID types.EntityID
	NodeA   types.EntityID
	NodeB   types.EntityID
	Result  defs.ElementType
	Cost    int
}

type BuildDeniedData struct {
	NodeID types.EntityID
	Reason DenyReason
}

type ChainArcData struct {
	From    geom.Vec2
	To      geom.Vec2
	Element defs.ElementType
	Hop     int
}

type IcePulseData struct {
	Center  geom.Vec2
	Radius  float64
	Element defs.ElementType
}

type CountdownChangedData struct {
	Seconds  float64
	NextWave int
}
