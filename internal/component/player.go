// internal/component/player.go
package component

// PlayerStateComponent хранит золото и здоровье базы.
type PlayerStateComponent struct {
	Gold   int
	Health int
}
