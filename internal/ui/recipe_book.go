// internal/ui/recipe_book.go
package ui

import (
	"fmt"
	"image/color"

	"elemental-td/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RecipeBook отображает окно с рецептами слияния.
type RecipeBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	level     *defs.Level
}

// NewRecipeBook создает новую книгу рецептов.
func NewRecipeBook(x, y, width, height float32, level *defs.Level) *RecipeBook {
	return &RecipeBook{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		level:  level,
	}
}

// Toggle переключает видимость книги рецептов.
func (rb *RecipeBook) Toggle() {
	rb.IsVisible = !rb.IsVisible
}

// recipeAvailable: на поле есть башни обеих стихий рецепта (для пары одинаковых — две).
func recipeAvailable(r defs.Recipe, owned map[defs.ElementType]int) bool {
	if r.A == r.B {
		return owned[r.A] >= 2
	}
	return owned[r.A] > 0 && owned[r.B] > 0
}

// RecipeLine — строка рецепта вида "Fire + Ice = Steam Vent".
func (rb *RecipeBook) RecipeLine(r defs.Recipe) string {
	result := r.Result.String()
	if def, ok := rb.level.TowerForElement(r.Result); ok {
		result = def.Name
	}
	return fmt.Sprintf("%s + %s = %s", r.A, r.B, result)
}

// Draw отрисовывает книгу рецептов, если она видима. owned — число башен по стихиям.
func (rb *RecipeBook) Draw(screen *ebiten.Image, owned map[defs.ElementType]int) {
	if !rb.IsVisible {
		return
	}

	whiteColor := color.RGBA{255, 255, 255, 255}
	grayColor := color.RGBA{100, 100, 100, 255}

	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 230}
	vector.FillRect(screen, rb.X, rb.Y, rb.Width, rb.Height, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.StrokeRect(screen, rb.X, rb.Y, rb.Width, rb.Height, 2, borderColor, false)

	title := fmt.Sprintf("Recipes (fusion %d gold)", rb.level.Fusion.Cost)
	DrawTextCentered(screen, title, float64(rb.X+rb.Width/2), float64(rb.Y+20), whiteColor)

	y := float64(rb.Y) + 20 + LineHeight*2
	for _, r := range rb.level.Fusion.Recipes {
		c := grayColor
		if recipeAvailable(r, owned) {
			c = whiteColor
		}
		DrawText(screen, rb.RecipeLine(r), float64(rb.X)+20, y, c)
		y += LineHeight * 1.5
	}
}
