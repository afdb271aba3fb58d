// component/movement.go
package component

import (
	"elemental-td/pkg/geom"
	"elemental-td/pkg/path"
)

// Position — компонент позиции в мировых единицах
type Position = geom.Vec2

// Velocity — базовая скорость, без учёта замедления
type Velocity struct {
	Speed float64
}

// PathFollower — сколько сущность прошла по общему пути
type PathFollower struct {
	Path     *path.Path
	Distance float64
}

// Remaining is the distance left to the end of the path.
func (f *PathFollower) Remaining() float64 {
	r := f.Path.Length() - f.Distance
	if r < 0 {
		return 0
	}
	return r
}
