// internal/utils/prng.go
package utils

import (
	"math/rand"
	"sort"
	"time"

	"elemental-td/internal/defs"
)

// BuildPicker тянет чертежи из плана постройки с вероятностью,
// пропорциональной весу. Один и тот же сид даёт одну и ту же
// последовательность, на этом держатся повторяемые прогоны бота.
type BuildPicker struct {
	rng    *rand.Rand
	ids    []string
	bounds []int // накопленные веса, строго растут
}

// NewBuildPicker готовит выбор по плану. Записи с весом <= 0 не участвуют;
// если таких нет вовсе, всегда выбирается первая запись плана.
// Сид 0 берётся от текущего времени.
func NewBuildPicker(plan []defs.BuildPlanEntry, seed int64) *BuildPicker {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p := &BuildPicker{rng: rand.New(rand.NewSource(seed))}

	total := 0
	for _, entry := range plan {
		if entry.Weight <= 0 {
			continue
		}
		total += entry.Weight
		p.ids = append(p.ids, entry.TowerID)
		p.bounds = append(p.bounds, total)
	}
	if total == 0 && len(plan) > 0 {
		p.ids = []string{plan[0].TowerID}
		p.bounds = []int{1}
	}
	return p
}

// Pick возвращает ID следующего чертежа или "" для пустого плана.
func (p *BuildPicker) Pick() string {
	if len(p.ids) == 0 {
		return ""
	}
	if len(p.ids) == 1 {
		return p.ids[0]
	}
	r := p.rng.Intn(p.bounds[len(p.bounds)-1])
	// первая граница, строго большая r
	return p.ids[sort.SearchInts(p.bounds, r+1)]
}
