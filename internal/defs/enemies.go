package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type    EnemyType `json:"type"`
	Name    string    `json:"name"`
	Health  float64   `json:"health"`
	Speed   float64   `json:"speed"`  // world units per second
	Reward  int       `json:"reward"` // gold granted on kill
	Visuals Visuals   `json:"visuals"`
}
