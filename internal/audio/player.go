// internal/audio/player.go
package audio

import (
	"log"
	"sync"
	"time"

	"elemental-td/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player проигрывает сигналы для выгруженных событий. Без Initialize он
// только считает, что было бы сыграно: так работают тесты и headless.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
	muted       bool
	played      map[Cue]int
}

func NewPlayer() *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		played: make(map[Cue]int),
	}
}

// Initialize открывает аудиоустройство.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops everything that is still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Notify играет каждый сигнал не больше одного раза на пачку событий:
// десяток попаданий за кадр звучит как один выстрел.
func (p *Player) Notify(events []event.Event) []Cue {
	seen := make(map[Cue]bool)
	var cues []Cue
	for _, e := range events {
		cue, ok := CueFor(e)
		if !ok || seen[cue] {
			continue
		}
		seen[cue] = true
		cues = append(cues, cue)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return nil
	}
	for _, cue := range cues {
		p.played[cue]++
		if !p.initialized {
			continue
		}
		s, err := NewCueStreamer(cue, p.rate)
		if err != nil {
			log.Printf("Audio: %v", err)
			continue
		}
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return cues
}

// Played — сколько раз сигнал был запрошен.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}
