package defs

import "encoding/json"

// Batch is a homogeneous group of enemies inside a wave.
type Batch struct {
	Enemy      EnemyType `json:"enemy"`
	Count      int       `json:"count"`
	Resistance bool      `json:"resistance"`
}

// UnmarshalJSON defaults Resistance to true when the field is absent.
func (b *Batch) UnmarshalJSON(data []byte) error {
	type plain Batch
	p := plain{Resistance: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*b = Batch(p)
	return nil
}

// WaveDefinition описывает одну волну: пачки врагов и темп их появления.
type WaveDefinition struct {
	Batches   []Batch `json:"batches"`
	SpawnRate float64 `json:"spawn_rate"` // врагов в секунду
	Density   float64 `json:"density"`    // множитель темпа, количество не меняет
}

// SpawnInterval is the delay between two consecutive spawns of the wave.
func (w WaveDefinition) SpawnInterval() float64 {
	return 1 / (w.SpawnRate * w.Density)
}

// EnemyCount is the total number of enemies the wave emits.
func (w WaveDefinition) EnemyCount() int {
	n := 0
	for _, b := range w.Batches {
		n += b.Count
	}
	return n
}

func wave(rate, density float64, batches ...Batch) WaveDefinition {
	return WaveDefinition{Batches: batches, SpawnRate: rate, Density: density}
}

func batch(t EnemyType, count int) Batch { return Batch{Enemy: t, Count: count, Resistance: true} }

// DefaultWaves — стандартный план из 10 волн, используется если уровень не задаёт свой.
func DefaultWaves() []WaveDefinition {
	return []WaveDefinition{
		wave(2, 1, batch(Grunt, 5)),
		wave(2, 1, batch(Grunt, 4), Batch{Enemy: Runner, Count: 4, Resistance: false}),
		wave(2, 1, batch(Grunt, 6), batch(Tank, 6)),
		wave(2, 1, batch(Runner, 8), batch(Tank, 8)),
		wave(2, 1.2, batch(Grunt, 7), batch(Runner, 7), batch(Tank, 8)),
		wave(2, 2, batch(Runner, 28)),
		wave(2, 2, batch(Tank, 35)),
		wave(2, 1.5, batch(Runner, 23), batch(Tank, 20)),
		wave(2, 1.5, batch(Tank, 52)),
		wave(2, 3, batch(Grunt, 21), batch(Runner, 21), batch(Tank, 22), batch(Boss, 1)),
	}
}
