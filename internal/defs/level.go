package defs

import (
	"errors"
	"fmt"

	"elemental-td/pkg/geom"
	"elemental-td/pkg/path"
)

var (
	ErrUnknownEnemy       = errors.New("wave references an enemy type with no definition")
	ErrMissingResultTower = errors.New("fusion result has no tower definition")
	ErrDerivedBlueprint   = errors.New("buildable tower must use a base element")
	ErrBadStats           = errors.New("invalid stats")
)

// Point is a JSON-friendly position in world units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Vec() geom.Vec2 { return geom.V(p.X, p.Y) }

// PathDef describes the route enemies walk.
type PathDef struct {
	Mode      path.Mode `json:"mode"`
	Waypoints []Point   `json:"waypoints"`
}

// Build converts the definition into a walkable path.
func (d PathDef) Build() (*path.Path, error) {
	pts := make([]geom.Vec2, len(d.Waypoints))
	for i, p := range d.Waypoints {
		pts[i] = p.Vec()
	}
	return path.New(pts, d.Mode)
}

// Level is everything a play session is configured from.
type Level struct {
	Name           string            `json:"name"`
	StartingGold   int               `json:"starting_gold"`
	StartingHealth int               `json:"starting_health"`
	Towers         []TowerDefinition `json:"towers"`
	Enemies        []EnemyDefinition `json:"enemies"`
	Fusion         RecipeBook        `json:"fusion"`
	Waves          []WaveDefinition  `json:"waves"`
	Path           PathDef           `json:"path"`
	Nodes          []Point           `json:"nodes"`
	BuildPlan      []BuildPlanEntry  `json:"build_plan,omitempty"`
}

// Tower returns the definition with the given ID.
func (l *Level) Tower(id string) (TowerDefinition, bool) {
	for _, t := range l.Towers {
		if t.ID == id {
			return t, true
		}
	}
	return TowerDefinition{}, false
}

// TowerForElement returns the first tower definition of element e. Fusion
// uses it to know what to build for a recipe result.
func (l *Level) TowerForElement(e ElementType) (TowerDefinition, bool) {
	for _, t := range l.Towers {
		if t.Element == e {
			return t, true
		}
	}
	return TowerDefinition{}, false
}

// Blueprints lists the towers the player may build directly.
func (l *Level) Blueprints() []TowerDefinition {
	var out []TowerDefinition
	for _, t := range l.Towers {
		if t.Buildable {
			out = append(out, t)
		}
	}
	return out
}

// Enemy returns the definition for an enemy type.
func (l *Level) Enemy(t EnemyType) (EnemyDefinition, bool) {
	for _, e := range l.Enemies {
		if e.Type == t {
			return e, true
		}
	}
	return EnemyDefinition{}, false
}

// Validate collects every configuration problem of the level.
func (l *Level) Validate() error {
	var errs []error

	if _, err := l.Path.Build(); err != nil {
		errs = append(errs, fmt.Errorf("path: %w", err))
	}
	if l.StartingHealth <= 0 {
		errs = append(errs, fmt.Errorf("%w: starting health %d", ErrBadStats, l.StartingHealth))
	}
	if l.StartingGold < 0 {
		errs = append(errs, fmt.Errorf("%w: starting gold %d", ErrBadStats, l.StartingGold))
	}

	seen := make(map[string]bool)
	for i, t := range l.Towers {
		switch {
		case t.ID == "":
			errs = append(errs, fmt.Errorf("tower %d: empty id", i))
		case seen[t.ID]:
			errs = append(errs, fmt.Errorf("tower %q: duplicate id", t.ID))
		}
		seen[t.ID] = true
		c := t.Combat
		if c.Range <= 0 || c.FireRate <= 0 || c.Damage < 0 || t.Cost < 0 {
			errs = append(errs, fmt.Errorf("tower %q: %w", t.ID, ErrBadStats))
		}
		if c.SlowAmount < 0 || c.SlowAmount > 1 {
			errs = append(errs, fmt.Errorf("tower %q: %w: slow amount %v", t.ID, ErrBadStats, c.SlowAmount))
		}
		if t.Buildable && !t.Element.IsBase() {
			errs = append(errs, fmt.Errorf("tower %q (%s): %w", t.ID, t.Element, ErrDerivedBlueprint))
		}
	}

	enemySeen := make(map[EnemyType]bool)
	for _, e := range l.Enemies {
		if enemySeen[e.Type] {
			errs = append(errs, fmt.Errorf("enemy %s: duplicate definition", e.Type))
		}
		enemySeen[e.Type] = true
		if e.Health <= 0 || e.Speed <= 0 || e.Reward < 0 {
			errs = append(errs, fmt.Errorf("enemy %s: %w", e.Type, ErrBadStats))
		}
	}

	if err := l.Fusion.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("fusion: %w", err))
	}
	for _, r := range l.Fusion.Recipes {
		if _, ok := l.TowerForElement(r.Result); !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingResultTower, r.Result))
		}
	}

	for wi, w := range l.Waves {
		if w.SpawnRate <= 0 || w.Density <= 0 {
			errs = append(errs, fmt.Errorf("wave %d: %w: spawn rate %v, density %v", wi+1, ErrBadStats, w.SpawnRate, w.Density))
		}
		for bi, b := range w.Batches {
			if b.Count <= 0 {
				errs = append(errs, fmt.Errorf("wave %d batch %d: %w: count %d", wi+1, bi+1, ErrBadStats, b.Count))
			}
			if !enemySeen[b.Enemy] {
				errs = append(errs, fmt.Errorf("wave %d batch %d: %w: %s", wi+1, bi+1, ErrUnknownEnemy, b.Enemy))
			}
		}
	}

	return errors.Join(errs...)
}
