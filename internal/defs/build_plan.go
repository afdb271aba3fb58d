package defs

// BuildPlanEntry is one weighted choice for automated build plans
// (headless runs). Weight is relative to the other entries.
type BuildPlanEntry struct {
	TowerID string `json:"tower_id"`
	Weight  int    `json:"weight"`
}
