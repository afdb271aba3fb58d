// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"elemental-td/internal/config"
	"elemental-td/internal/defs"
	"elemental-td/internal/entity"
	"elemental-td/internal/types"
	"elemental-td/internal/utils"
	"elemental-td/pkg/path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	pathSamples     = 200
	pathWidth       = 18
	healthBarWidth  = 24
	healthBarHeight = 4
)

// Highlight — что подсветить поверх мира: выбранные для слияния слоты и слот под курсором.
type Highlight struct {
	FusionA, FusionB types.EntityID
	Hover            types.EntityID
	HoverOK          bool // бросок на Hover пройдёт
	ShowHover        bool
}

// WorldRenderer рисует путь, слоты, башни, врагов, снаряды и эффекты.
type WorldRenderer struct {
	level       *defs.Level
	path        *path.Path
	mapImage    *ebiten.Image // предрендеренная подложка с путём
	enemyColors map[defs.EnemyType]color.RGBA
}

func NewWorldRenderer(level *defs.Level, enemyPath *path.Path) *WorldRenderer {
	r := &WorldRenderer{
		level:       level,
		path:        enemyPath,
		enemyColors: make(map[defs.EnemyType]color.RGBA),
	}
	for _, e := range level.Enemies {
		r.enemyColors[e.Type] = e.Visuals.Color
	}
	return r
}

// RenderMapImage рисует статичную подложку один раз.
func (r *WorldRenderer) RenderMapImage() {
	r.mapImage = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	r.mapImage.Fill(config.BackgroundColor)

	pts := r.path.Sample(pathSamples)
	for i := 1; i < len(pts); i++ {
		x0, y0 := utils.WorldToScreen(pts[i-1])
		x1, y1 := utils.WorldToScreen(pts[i])
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, pathWidth, config.PathColor, true)
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := utils.WorldToScreen(pts[i-1])
		x1, y1 := utils.WorldToScreen(pts[i])
		vector.StrokeLine(r.mapImage, x0, y0, x1, y1, 1, DarkenColor(config.PathColor), true)
	}
	sx, sy := utils.WorldToScreen(r.path.Start())
	ex, ey := utils.WorldToScreen(r.path.End())
	vector.FillCircle(r.mapImage, sx, sy, pathWidth*0.7, config.EntryColor, true)
	vector.FillCircle(r.mapImage, ex, ey, pathWidth*0.7, config.ExitColor, true)
}

func (r *WorldRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, hl Highlight) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, &ebiten.DrawImageOptions{})

	r.drawNodes(screen, ecs, hl)
	r.drawTowers(screen, ecs, hl)
	r.drawEnemies(screen, ecs)
	r.drawProjectiles(screen, ecs)
	r.drawEffects(screen, ecs)
}

func (r *WorldRenderer) drawNodes(screen *ebiten.Image, ecs *entity.ECS, hl Highlight) {
	radius := float32(config.NodeRadius * config.WorldScale)
	for _, id := range entity.SortedIDs(ecs.Nodes) {
		x, y := utils.WorldToScreen(*ecs.Positions[id])
		vector.FillCircle(screen, x, y, radius, config.NodeColor, true)

		stroke := DarkenColor(config.TowerStrokeColor)
		width := float32(1)
		switch {
		case id == hl.FusionA || id == hl.FusionB:
			stroke, width = config.NodeSelectColor, 3
		case hl.ShowHover && id == hl.Hover && hl.HoverOK:
			stroke, width = config.HealthBarColor, 2
		case hl.ShowHover && id == hl.Hover:
			stroke, width = config.UIColorRed, 2
		}
		vector.StrokeCircle(screen, x, y, radius, width, stroke, true)
	}
}

func (r *WorldRenderer) drawTowers(screen *ebiten.Image, ecs *entity.ECS, hl Highlight) {
	for _, id := range entity.SortedIDs(ecs.Towers) {
		tower := ecs.Towers[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(*pos)

		fill := ElementColor(tower.Element)
		scale := 1.0
		if def, found := r.level.Tower(tower.DefID); found {
			fill = def.Visuals.Color
			if def.Visuals.RadiusFactor > 0 {
				scale = def.Visuals.RadiusFactor
			}
		}
		radius := float32(config.TowerRadius * config.WorldScale * scale)
		vector.FillCircle(screen, x, y, radius, fill, true)
		vector.StrokeCircle(screen, x, y, radius, 1.5, config.TowerStrokeColor, true)

		// Производные стихии рисуются двухцветными: вторая половина внутри.
		if !tower.Element.IsBase() {
			_, second := tower.Element.Components()
			vector.FillCircle(screen, x, y, radius*0.45, ElementColor(second), true)
		}

		if hl.ShowHover && tower.NodeID == hl.Hover {
			rangePx := float32(tower.Stats.Range * config.WorldScale)
			vector.StrokeCircle(screen, x, y, rangePx, 1, WithAlpha(fill, 0.6), true)
		}
	}
}

func (r *WorldRenderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range ecs.LiveEnemies() {
		enemy := ecs.Enemies[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(*pos)
		radius := float32(config.EnemyRadius * config.WorldScale)
		if enemy.Type == defs.Boss {
			radius *= 1.5
		}

		fill, ok := r.enemyColors[enemy.Type]
		if !ok {
			fill = config.UIColorRed
		}
		if status, ok := ecs.StatusEffects[id]; ok && status.Slowed() {
			fill = Mix(fill, ElementColor(defs.Ice), 0.5)
		}
		if flash, ok := ecs.DamageFlashes[id]; ok {
			t := flash.Timer / config.DamageFlashDuration
			fill = Mix(fill, color.RGBA{255, 255, 255, 255}, t*0.8)
		}
		vector.FillCircle(screen, x, y, radius, fill, true)

		if status, ok := ecs.StatusEffects[id]; ok {
			if status.Burning() {
				vector.StrokeCircle(screen, x, y, radius+2, 2, ElementColor(defs.Fire), true)
			}
			if status.Shocked() {
				r.drawSpark(screen, x, y, radius+4, ecs.GameTime)
			}
		}
		if !enemy.Resistance {
			// пачка без устойчивости
			vector.StrokeCircle(screen, x, y, radius, 1, config.TowerStrokeColor, true)
		}

		if health, ok := ecs.Healths[id]; ok {
			bx := x - healthBarWidth/2
			by := y - radius - healthBarHeight - 3
			vector.FillRect(screen, bx, by, healthBarWidth, healthBarHeight, config.HealthBackColor, false)
			vector.FillRect(screen, bx, by, float32(health.Fraction())*healthBarWidth, healthBarHeight, config.HealthBarColor, false)
		}
	}
}

// drawSpark рисует три коротких зигзага вокруг врага под шоком.
func (r *WorldRenderer) drawSpark(screen *ebiten.Image, x, y, radius float32, t float64) {
	c := ElementColor(defs.Lightning)
	for i := 0; i < 3; i++ {
		a := t*12 + float64(i)*2*math.Pi/3
		x0 := x + radius*float32(math.Cos(a))
		y0 := y + radius*float32(math.Sin(a))
		x1 := x + (radius+5)*float32(math.Cos(a+0.3))
		y1 := y + (radius+5)*float32(math.Sin(a+0.3))
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, c, true)
	}
}

func (r *WorldRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	radius := float32(config.ProjectileRadius * config.WorldScale)
	for _, id := range entity.SortedIDs(ecs.Projectiles) {
		proj := ecs.Projectiles[id]
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := utils.WorldToScreen(*pos)
		c := ElementColor(proj.Element)
		if proj.Splash {
			vector.FillCircle(screen, x, y, radius*1.6, WithAlpha(c, 0.4), true)
		}
		vector.FillCircle(screen, x, y, radius, c, true)
	}
}

func (r *WorldRenderer) drawEffects(screen *ebiten.Image, ecs *entity.ECS) {
	for _, id := range entity.SortedIDs(ecs.Lasers) {
		laser := ecs.Lasers[id]
		x0, y0 := utils.WorldToScreen(laser.From)
		x1, y1 := utils.WorldToScreen(laser.To)
		alpha := laser.Timer / laser.Duration
		c := WithAlpha(ElementColor(laser.Element), alpha)
		vector.StrokeLine(screen, x0, y0, x1, y1, 3, c, true)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, WithAlpha(color.RGBA{255, 255, 255, 255}, alpha), true)
	}
	for _, id := range entity.SortedIDs(ecs.Pulses) {
		pulse := ecs.Pulses[id]
		p := pulse.Progress()
		x, y := utils.WorldToScreen(pulse.Center)
		radius := float32(pulse.MaxRadius * config.WorldScale * p)
		c := WithAlpha(ElementColor(pulse.Element), 1-p)
		vector.StrokeCircle(screen, x, y, radius, 3, c, true)
	}
}

// EnemyColor exposes the per-type color, mostly for the HUD legend.
func (r *WorldRenderer) EnemyColor(t defs.EnemyType) (color.RGBA, bool) {
	c, ok := r.enemyColors[t]
	return c, ok
}
