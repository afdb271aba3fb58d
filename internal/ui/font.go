// internal/ui/font.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — растровый шрифт 7x13, встроенный в x/image. Внешние файлы шрифтов не нужны.
var DefaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// DrawText рисует строку, (x, y) — левый верхний угол.
func DrawText(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, DefaultFace, op)
}

// DrawTextCentered рисует строку с центром в (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	w, h := MeasureText(s)
	DrawText(dst, s, cx-w/2, cy-h/2, clr)
}

// LineHeight — шаг строк для DefaultFace.
const LineHeight = 16

func MeasureText(s string) (float64, float64) {
	return text.Measure(s, DefaultFace, LineHeight)
}
