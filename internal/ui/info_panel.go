// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight     = 60
	panelMargin     = 5
	animationSpeed  = 6.0
	messageLifetime = 2.5 // секунды
)

var (
	panelBgColor     = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	denyColor        = color.RGBA{R: 240, G: 110, B: 110, A: 255}
)

// InfoPanel — выезжающая снизу панель: последнее сообщение игры и
// подсказка о слиянии выбранной пары.
type InfoPanel struct {
	IsVisible    bool
	level        *defs.Level
	message      string
	messageColor color.Color
	messageTimer float64
	preview      string
	currentY     float64
	targetY      float64
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(level *defs.Level) *InfoPanel {
	return &InfoPanel{
		level:    level,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) Message() string { return p.message }

func (p *InfoPanel) Preview() string { return p.preview }

// SetPreview задаёт подсказку; пустая строка её убирает.
func (p *InfoPanel) SetPreview(text string) {
	p.preview = text
}

func (p *InfoPanel) show(msg string, clr color.Color) {
	p.message = msg
	p.messageColor = clr
	p.messageTimer = messageLifetime
}

// Notify разбирает выгруженные события и оставляет последнее значимое сообщение.
func (p *InfoPanel) Notify(events []event.Event) {
	for _, e := range events {
		switch data := e.Data.(type) {
		case event.BuildDeniedData:
			p.show("Denied: "+string(data.Reason), denyColor)
		case event.TowerFusedData:
			name := data.Result.String()
			if def, ok := p.level.TowerForElement(data.Result); ok {
				name = def.Name
			}
			p.show(fmt.Sprintf("Fused into %s (-%d gold)", name, data.Cost), config.NodeSelectColor)
		case event.WaveData:
			if e.Type == event.WaveStarted {
				p.show(p.waveStartLine(data), config.TextLightColor)
			} else {
				p.show(fmt.Sprintf("Wave %d cleared", data.Index+1), config.TextLightColor)
			}
		case event.OutcomeData:
			if e.Type == event.Victory {
				p.show("Victory!", config.HealthBarColor)
			} else {
				p.show("Defeat", denyColor)
			}
		}
	}
}

func (p *InfoPanel) waveStartLine(data event.WaveData) string {
	line := fmt.Sprintf("Wave %d of %d", data.Index+1, data.Total)
	if data.Index < len(p.level.Waves) {
		line += fmt.Sprintf(": %d enemies", p.level.Waves[data.Index].EnemyCount())
	}
	return line
}

func (p *InfoPanel) Update(deltaTime float64) {
	if p.messageTimer > 0 {
		p.messageTimer -= deltaTime
		if p.messageTimer <= 0 {
			p.messageTimer = 0
			p.message = ""
		}
	}

	p.IsVisible = p.message != "" || p.preview != ""
	if p.IsVisible {
		p.targetY = config.ScreenHeight - panelHeight
	} else {
		p.targetY = config.ScreenHeight
	}

	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}
	}
}

// Contains — клик по видимой части панели не уходит в игровое поле.
func (p *InfoPanel) Contains(y int) bool {
	return p.currentY < config.ScreenHeight && float64(y) >= p.currentY
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if p.currentY >= config.ScreenHeight {
		return
	}
	x := float32(panelMargin)
	y := float32(p.currentY) + panelMargin
	w := float32(config.ScreenWidth - panelMargin*2)
	h := float32(panelHeight - panelMargin*2)
	vector.FillRect(screen, x, y, w, h, panelBgColor, true)
	vector.StrokeRect(screen, x, y, w, h, 2, panelBorderColor, true)

	lineY := float64(y) + 8
	if p.message != "" {
		DrawText(screen, p.message, float64(x)+15, lineY, p.messageColor)
		lineY += LineHeight + 4
	}
	if p.preview != "" {
		DrawText(screen, p.preview, float64(x)+15, lineY, config.TextLightColor)
	}
}
