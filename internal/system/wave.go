// internal/system/wave.go
package system

import (
	"log"
	"math"

	"elemental-td/internal/component"
	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/pkg/path"
	"elemental-td/pkg/utils"
)

// WavePhase — состояние планировщика волн.
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveExhausted
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveExhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

// WaveSystem — конечный автомат Idle → Spawning → Idle … → Exhausted.
// Пауза между врагами — таймер, а не блокировка: между спавнами управление
// возвращается в игровой цикл.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	level           *defs.Level
	path            *path.Path
	waves           []defs.WaveDefinition

	phase         WavePhase
	waveIndex     int
	countdown     float64
	activeEnemies int
	victoryFired  bool

	// Курсор спавна текущей волны.
	batchIndex     int
	spawnedInBatch int
	spawnTimer     float64

	shownSecond int
}

func NewWaveSystem(ecs *entity.ECS, level *defs.Level, enemyPath *path.Path, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		level:           level,
		path:            enemyPath,
		waves:           level.Waves,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyReachedEnd, ws)
	ws.Reset()
	return ws
}

func (s *WaveSystem) Phase() WavePhase   { return s.phase }
func (s *WaveSystem) WaveIndex() int     { return s.waveIndex }
func (s *WaveSystem) TotalWaves() int    { return len(s.waves) }
func (s *WaveSystem) Countdown() float64 { return s.countdown }
func (s *WaveSystem) ActiveEnemies() int { return s.activeEnemies }

// Reset отменяет текущую волну, убирает врагов и снаряды и сверяет счётчик
// активных врагов с реестром.
func (s *WaveSystem) Reset() {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		s.ecs.RemoveEntity(id)
	}
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		s.ecs.RemoveEntity(id)
	}
	s.phase = WaveIdle
	s.waveIndex = 0
	s.countdown = config.InitialWaveCountdown
	s.activeEnemies = len(s.ecs.LiveEnemies())
	s.victoryFired = false
	s.batchIndex = 0
	s.spawnedInBatch = 0
	s.spawnTimer = 0
	s.shownSecond = -1
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyReachedEnd:
		if s.activeEnemies > 0 {
			s.activeEnemies--
		}
		s.checkVictory()
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	switch s.phase {
	case WaveIdle:
		if s.waveIndex >= len(s.waves) {
			s.phase = WaveExhausted
			s.checkVictory()
			return
		}
		s.countdown = utils.Countdown(s.countdown, deltaTime)
		s.publishCountdown()
		if s.countdown <= config.TimerEpsilon {
			s.StartNextWave()
		}
	case WaveSpawning:
		s.spawnTimer = utils.Countdown(s.spawnTimer, deltaTime)
		if s.spawnTimer <= config.TimerEpsilon {
			s.advance()
		}
	}
}

// StartNextWave — ручной запуск. Во время спавна и после последней волны ничего не делает.
func (s *WaveSystem) StartNextWave() bool {
	if s.ecs.Outcome != component.Playing {
		return false
	}
	if s.phase != WaveIdle || s.waveIndex >= len(s.waves) {
		return false
	}
	s.phase = WaveSpawning
	s.batchIndex = 0
	s.spawnedInBatch = 0
	s.spawnTimer = 0
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: s.waveIndex, Total: len(s.waves)},
	})
	s.advance()
	return true
}

// advance выпускает следующего врага волны или завершает её, если все выпущены.
func (s *WaveSystem) advance() {
	wave := s.waves[s.waveIndex]
	for s.batchIndex < len(wave.Batches) {
		batch := wave.Batches[s.batchIndex]
		if s.spawnedInBatch >= batch.Count {
			s.batchIndex++
			s.spawnedInBatch = 0
			continue
		}
		if !s.spawnEnemy(batch) {
			// Пачка без описания врага пропускается целиком.
			s.batchIndex++
			s.spawnedInBatch = 0
			continue
		}
		s.spawnedInBatch++
		s.spawnTimer = wave.SpawnInterval()
		return
	}
	s.completeWave()
}

func (s *WaveSystem) completeWave() {
	completed := s.waveIndex
	s.waveIndex++
	s.countdown = config.AutoStartThreshold
	s.shownSecond = -1
	if s.waveIndex >= len(s.waves) {
		s.phase = WaveExhausted
	} else {
		s.phase = WaveIdle
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveData{Index: completed, Total: len(s.waves)},
	})
	s.checkVictory()
}

func (s *WaveSystem) spawnEnemy(batch defs.Batch) bool {
	def, ok := s.level.Enemy(batch.Enemy)
	if !ok {
		log.Printf("Error: Enemy definition not found for type: %s", batch.Enemy)
		return false
	}
	if s.path == nil {
		log.Println("WaveSystem: no path to spawn enemies on")
		return false
	}

	id := s.ecs.NewEntity()
	start := s.path.Start()
	s.ecs.Positions[id] = &start
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.PathFollower{Path: s.path}
	s.ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	s.ecs.Enemies[id] = &component.Enemy{
		Type:       def.Type,
		Resistance: batch.Resistance,
		Reward:     def.Reward,
	}
	s.ecs.StatusEffects[id] = &component.StatusEffects{}
	s.activeEnemies++

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{EnemyID: id, Type: def.Type, Wave: s.waveIndex},
	})
	return true
}

// checkVictory срабатывает один раз за уровень.
func (s *WaveSystem) checkVictory() {
	if s.victoryFired || s.phase == WaveSpawning || s.waveIndex < len(s.waves) || s.activeEnemies > 0 {
		return
	}
	if s.ecs.Outcome != component.Playing {
		return
	}
	s.victoryFired = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.Victory,
		Data: event.OutcomeData{WavesCleared: s.waveIndex},
	})
}

func (s *WaveSystem) publishCountdown() {
	second := int(math.Ceil(s.countdown))
	if second == s.shownSecond {
		return
	}
	s.shownSecond = second
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.CountdownChanged,
		Data: event.CountdownChangedData{Seconds: s.countdown, NextWave: s.waveIndex},
	})
}
