// internal/term/renderer.go
package term

import (
	"fmt"
	"image/color"
	"math"

	"elemental-td/internal/app"
	"elemental-td/internal/component"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/event"
	"elemental-td/pkg/geom"
	"elemental-td/pkg/path"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows     = 2
	logRows     = 3
	pathSamples = 400
)

var (
	baseStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	pathStyle   = baseStyle.Foreground(tcell.ColorDarkSlateGray)
	nodeStyle   = baseStyle.Foreground(tcell.ColorGray)
	hudStyle    = baseStyle.Foreground(tcell.ColorYellow)
	logStyle    = baseStyle.Foreground(tcell.ColorSilver)
	effectStyle = baseStyle.Foreground(tcell.ColorLightCyan)
)

// Renderer рисует мир в терминальной сетке: строка HUD сверху, поле, журнал событий снизу.
type Renderer struct {
	level      *defs.Level
	path       *path.Path
	pathPoints []geom.Vec2
	min, max   geom.Vec2
	lines      []string
}

func NewRenderer(level *defs.Level, enemyPath *path.Path) *Renderer {
	r := &Renderer{
		level:      level,
		path:       enemyPath,
		pathPoints: enemyPath.Sample(pathSamples),
		min:        geom.V(math.Inf(1), math.Inf(1)),
		max:        geom.V(math.Inf(-1), math.Inf(-1)),
	}
	extend := func(p geom.Vec2) {
		r.min = geom.V(math.Min(r.min.X, p.X), math.Min(r.min.Y, p.Y))
		r.max = geom.V(math.Max(r.max.X, p.X), math.Max(r.max.Y, p.Y))
	}
	for _, p := range r.pathPoints {
		extend(p)
	}
	for _, n := range level.Nodes {
		extend(n.Vec())
	}
	r.min = r.min.Sub(geom.V(1, 1))
	r.max = r.max.Add(geom.V(1, 1))
	return r
}

// Project переводит мировую точку в клетку поля; ok=false, если поле слишком мало.
func (r *Renderer) Project(p geom.Vec2, width, height int) (x, y int, ok bool) {
	fieldH := height - hudRows - logRows
	if width <= 0 || fieldH <= 0 {
		return 0, 0, false
	}
	span := r.max.Sub(r.min)
	fx := (p.X - r.min.X) / span.X
	fy := (p.Y - r.min.Y) / span.Y
	x = int(math.Round(fx * float64(width-1)))
	y = hudRows + int(math.Round(fy*float64(fieldH-1)))
	return x, y, x >= 0 && x < width && y >= hudRows && y < hudRows+fieldH
}

// Notify добавляет в журнал строки для значимых событий.
func (r *Renderer) Notify(events []event.Event) {
	for _, e := range events {
		if line, ok := r.describe(e); ok {
			r.lines = append(r.lines, line)
		}
	}
	if len(r.lines) > logRows {
		r.lines = r.lines[len(r.lines)-logRows:]
	}
}

// Lines — журнал, последние строки в конце.
func (r *Renderer) Lines() []string { return r.lines }

func (r *Renderer) towerName(e defs.ElementType) string {
	if def, ok := r.level.TowerForElement(e); ok {
		return def.Name
	}
	return e.String()
}

func (r *Renderer) describe(e event.Event) (string, bool) {
	switch data := e.Data.(type) {
	case event.WaveData:
		if e.Type == event.WaveStarted {
			return fmt.Sprintf("wave %d/%d started", data.Index+1, data.Total), true
		}
		return fmt.Sprintf("wave %d cleared", data.Index+1), true
	case event.EnemyReachedEndData:
		return fmt.Sprintf("%s leaked (-%d)", data.Type, data.Penalty), true
	case event.TowerPlacedData:
		return "built " + r.towerName(data.Element), true
	case event.TowerFusedData:
		return "fused into " + r.towerName(data.Result), true
	case event.BuildDeniedData:
		return "denied: " + string(data.Reason), true
	case event.OutcomeData:
		if e.Type == event.Victory {
			return fmt.Sprintf("VICTORY after %d waves", data.WavesCleared), true
		}
		return fmt.Sprintf("DEFEAT after %d waves", data.WavesCleared), true
	}
	return "", false
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// HUDLine — верхняя строка статуса.
func HUDLine(s app.Snapshot) string {
	line := fmt.Sprintf("Gold %d  Health %d  Wave %d/%d  %s", s.Gold, s.Health, s.Wave, s.TotalWaves, s.Phase)
	if s.Countdown > 0 {
		line += fmt.Sprintf("  next in %.0fs", math.Ceil(s.Countdown))
	}
	line += fmt.Sprintf("  enemies %d  towers %d", s.ActiveEnemies, s.Towers)
	if s.Outcome != component.Playing {
		line += "  [" + s.Outcome.String() + "]"
	}
	return line
}

func (r *Renderer) Draw(c Canvas, ecs *entity.ECS, snap app.Snapshot) {
	w, h := c.Size()
	clearRect(c, 0, 0, w, h, baseStyle)

	putText(c, 0, 0, fitLine(HUDLine(snap), w), hudStyle)

	for _, p := range r.pathPoints {
		if x, y, ok := r.Project(p, w, h); ok {
			c.SetContent(x, y, '·', nil, pathStyle)
		}
	}
	for _, id := range entity.SortedIDs(ecs.Nodes) {
		if x, y, ok := r.Project(*ecs.Positions[id], w, h); ok {
			c.SetContent(x, y, 'o', nil, nodeStyle)
		}
	}
	r.drawEffects(c, ecs, w, h)
	r.drawTowers(c, ecs, w, h)
	r.drawEnemies(c, ecs, w, h)

	for i, line := range r.lines {
		putText(c, 0, h-logRows+i, fitLine(line, w), logStyle)
	}
}

func (r *Renderer) drawTowers(c Canvas, ecs *entity.ECS, w, h int) {
	for _, id := range entity.SortedIDs(ecs.Towers) {
		tower := ecs.Towers[id]
		x, y, ok := r.Project(*ecs.Positions[id], w, h)
		if !ok {
			continue
		}
		glyph := "T"
		st := baseStyle.Bold(true)
		if def, found := r.level.Tower(tower.DefID); found {
			if def.Visuals.Glyph != "" {
				glyph = def.Visuals.Glyph
			}
			st = st.Foreground(rgb(def.Visuals.Color))
		}
		putGlyph(c, x, y, glyph, st)
	}
}

func (r *Renderer) drawEnemies(c Canvas, ecs *entity.ECS, w, h int) {
	for _, id := range ecs.LiveEnemies() {
		enemy := ecs.Enemies[id]
		x, y, ok := r.Project(*ecs.Positions[id], w, h)
		if !ok {
			continue
		}
		glyph := "e"
		st := baseStyle
		if def, found := r.level.Enemy(enemy.Type); found {
			if def.Visuals.Glyph != "" {
				glyph = def.Visuals.Glyph
			}
			st = st.Foreground(rgb(def.Visuals.Color))
		}
		if status, ok := ecs.StatusEffects[id]; ok {
			if status.Slowed() {
				st = st.Background(tcell.ColorNavy)
			}
			if status.Burning() {
				st = st.Bold(true).Underline(true)
			}
			if status.Shocked() {
				st = st.Reverse(true)
			}
		}
		putGlyph(c, x, y, glyph, st)
	}
}

func (r *Renderer) drawEffects(c Canvas, ecs *entity.ECS, w, h int) {
	for _, id := range entity.SortedIDs(ecs.Lasers) {
		laser := ecs.Lasers[id]
		steps := int(math.Ceil(laser.From.Dist(laser.To) * 2))
		for i := 1; i < steps; i++ {
			p := laser.From.Lerp(laser.To, float64(i)/float64(steps))
			if x, y, ok := r.Project(p, w, h); ok {
				c.SetContent(x, y, '~', nil, effectStyle)
			}
		}
	}
	for _, id := range entity.SortedIDs(ecs.Pulses) {
		pulse := ecs.Pulses[id]
		radius := pulse.MaxRadius * pulse.Progress()
		for a := 0; a < 16; a++ {
			angle := float64(a) * math.Pi / 8
			p := pulse.Center.Add(geom.V(math.Cos(angle), math.Sin(angle)).Scale(radius))
			if x, y, ok := r.Project(p, w, h); ok {
				c.SetContent(x, y, '*', nil, effectStyle)
			}
		}
	}
}
