// internal/audio/cues.go
package audio

import (
	"fmt"
	"math"
	"time"

	"elemental-td/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Cue — короткий звуковой сигнал, привязанный к типу события.
type Cue int

const (
	CueShot Cue = iota
	CueZap
	CuePulse
	CueKill
	CueLeak
	CueWave
	CueBuild
	CueFuse
	CueDenied
	CueVictory
	CueDefeat
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueZap:
		return "zap"
	case CuePulse:
		return "pulse"
	case CueKill:
		return "kill"
	case CueLeak:
		return "leak"
	case CueWave:
		return "wave"
	case CueBuild:
		return "build"
	case CueFuse:
		return "fuse"
	case CueDenied:
		return "denied"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// note — одна нота мелодии; freq 0 означает паузу.
type note struct {
	freq float64
	dur  time.Duration
}

var melodies = map[Cue][]note{
	CueShot:    {{660, 40 * time.Millisecond}},
	CueZap:     {{1200, 25 * time.Millisecond}, {900, 25 * time.Millisecond}},
	CuePulse:   {{330, 80 * time.Millisecond}},
	CueKill:    {{880, 50 * time.Millisecond}, {1320, 60 * time.Millisecond}},
	CueLeak:    {{180, 150 * time.Millisecond}},
	CueWave:    {{440, 100 * time.Millisecond}, {0, 30 * time.Millisecond}, {440, 100 * time.Millisecond}},
	CueBuild:   {{520, 70 * time.Millisecond}},
	CueFuse:    {{523.25, 80 * time.Millisecond}, {659.25, 80 * time.Millisecond}, {783.99, 120 * time.Millisecond}},
	CueDenied:  {{140, 120 * time.Millisecond}},
	CueVictory: {{523.25, 150 * time.Millisecond}, {659.25, 150 * time.Millisecond}, {783.99, 150 * time.Millisecond}, {1046.5, 300 * time.Millisecond}},
	CueDefeat:  {{392, 200 * time.Millisecond}, {311.13, 200 * time.Millisecond}, {261.63, 400 * time.Millisecond}},
}

// cueVolume — относительная громкость, частые сигналы тише.
var cueVolume = map[Cue]float64{
	CueShot:  0.15,
	CueZap:   0.2,
	CuePulse: 0.2,
	CueKill:  0.35,
}

// CueFor переводит событие ядра в звуковой сигнал.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.TowerFired:
		return CueShot, true
	case event.ChainArc:
		return CueZap, true
	case event.IcePulse:
		return CuePulse, true
	case event.EnemyKilled:
		return CueKill, true
	case event.EnemyReachedEnd:
		return CueLeak, true
	case event.WaveStarted:
		return CueWave, true
	case event.TowerPlaced:
		return CueBuild, true
	case event.TowerFused:
		return CueFuse, true
	case event.BuildDenied:
		return CueDenied, true
	case event.Victory:
		return CueVictory, true
	case event.Defeat:
		return CueDefeat, true
	}
	return 0, false
}

// Duration — длина сигнала целиком.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range melodies[c] {
		d += n.dur
	}
	return d
}

// NewCueStreamer собирает сигнал из синусоид generators.SineTone.
func NewCueStreamer(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := melodies[c]
	if !ok {
		return nil, fmt.Errorf("audio: no melody for cue %v", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, generators.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("audio: cue %v: %w", c, err)
		}
		parts = append(parts, newFade(beep.Take(samples, tone), samples))
	}
	vol, ok := cueVolume[c]
	if !ok {
		vol = 0.5
	}
	return newVolume(beep.Seq(parts...), vol), nil
}

// fade гасит концы ноты, чтобы не было щелчков.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	edge     int
}

func newFade(s beep.Streamer, total int) beep.Streamer {
	edge := total / 8
	if edge < 1 {
		edge = 1
	}
	return &fade{streamer: s, total: total, edge: edge}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.pos < f.edge {
			vol = float64(f.pos) / float64(f.edge)
		} else if rest := f.total - f.pos; rest < f.edge {
			vol = float64(rest) / float64(f.edge)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// newVolume: math.Log2(0) is -Inf, so zero volume becomes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
