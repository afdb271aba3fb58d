// internal/term/canvas.go
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas — то, что нужно рендереру от экрана. tcell.Screen подходит как есть.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (width, height int)
}

// putText пишет строку с (x, y), учитывая ширину символов, и останавливается у правого края.
func putText(c Canvas, x, y int, s string, st tcell.Style) int {
	sw, _ := c.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		c.SetContent(x, y, r, nil, st)
		if w == 2 {
			// вторая колонка широкого символа
			c.SetContent(x+1, y, ' ', nil, st)
		}
		x += w
	}
	return x
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at (x, y).
func putGlyph(c Canvas, x, y int, glyph string, st tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	c.SetContent(x, y, runes[0], combc, st)
	if runewidth.StringWidth(glyph) == 2 {
		c.SetContent(x+1, y, ' ', nil, st)
	}
}

// fitLine обрезает строку по ширине и дополняет пробелами, чтобы затереть прошлый кадр.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "…")
	return runewidth.FillRight(s, width)
}

func clearRect(c Canvas, x0, y0, w, h int, st tcell.Style) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			c.SetContent(x, y, ' ', nil, st)
		}
	}
}
