// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.RGBA
	HoverColor  color.RGBA
	ActiveColor color.RGBA
	Active      bool // подсвечена как выбранная
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   color.White,
		BgColor:     color.RGBA{40, 45, 60, 230},
		HoverColor:  color.RGBA{60, 70, 90, 240},
		ActiveColor: color.RGBA{70, 130, 180, 240},
	}
}

// Contains проверяет, попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mouseX, mouseY int) {
	bg := b.BgColor
	switch {
	case b.Active:
		bg = b.ActiveColor
	case b.Contains(mouseX, mouseY):
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.FillRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{90, 90, 110, 255}, false)

	DrawTextCentered(screen, b.Text, float64(x+w/2), float64(y+h/2), b.TextColor)
}
