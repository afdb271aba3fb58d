package defs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateRecipe     = errors.New("duplicate fusion recipe")
	ErrContradictoryRecipe = errors.New("contradictory fusion recipe")
)

// Recipe fuses an unordered pair of elements into a result element.
type Recipe struct {
	A      ElementType `json:"a"`
	B      ElementType `json:"b"`
	Result ElementType `json:"result"`
}

// Matches is symmetric: (A,B) matches a request for (B,A).
func (r Recipe) Matches(x, y ElementType) bool {
	return (r.A == x && r.B == y) || (r.A == y && r.B == x)
}

// RecipeBook is the static fusion table plus the price of a fusion.
type RecipeBook struct {
	Cost    int      `json:"cost"`
	Recipes []Recipe `json:"recipes"`
}

// Lookup returns the result for the pair. The first matching recipe in
// table order wins.
func (b RecipeBook) Lookup(x, y ElementType) (ElementType, bool) {
	for _, r := range b.Recipes {
		if r.Matches(x, y) {
			return r.Result, true
		}
	}
	return 0, false
}

// Validate reports every pair that appears more than once.
func (b RecipeBook) Validate() error {
	var errs []error
	if b.Cost < 0 {
		errs = append(errs, fmt.Errorf("fusion cost %d is negative", b.Cost))
	}
	for i, r := range b.Recipes {
		if !r.A.Valid() || !r.B.Valid() || !r.Result.Valid() {
			errs = append(errs, fmt.Errorf("recipe %d: invalid element", i))
			continue
		}
		for j := 0; j < i; j++ {
			prev := b.Recipes[j]
			if !prev.Matches(r.A, r.B) {
				continue
			}
			if prev.Result != r.Result {
				errs = append(errs, fmt.Errorf("%w: %s+%s gives %s (recipe %d) and %s (recipe %d)",
					ErrContradictoryRecipe, r.A, r.B, prev.Result, j, r.Result, i))
			} else {
				errs = append(errs, fmt.Errorf("%w: %s+%s (recipes %d and %d)", ErrDuplicateRecipe, r.A, r.B, j, i))
			}
			break
		}
	}
	return errors.Join(errs...)
}
