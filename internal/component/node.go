package component

import "elemental-td/internal/types"

// Node — слот для постройки башни.
type Node struct {
	Index   int            // порядковый номер в уровне
	TowerID types.EntityID // 0 если слот пуст
}

func (n *Node) Occupied() bool { return n.TowerID != 0 }
