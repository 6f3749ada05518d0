// internal/component/harvester.go
package component

import "go-lane-battle/internal/types"

// HarvesterState — фаза цикла сборщика маны.
type HarvesterState int

const (
	Seeking HarvesterState = iota
	Channeling
	Returning
)

func (s HarvesterState) String() string {
	switch s {
	case Channeling:
		return "channeling"
	case Returning:
		return "returning"
	default:
		return "seeking"
	}
}

// Harvester ходит между ростком маны и своей базой.
// Base — ссылка на владельца, база сборщиком не владеет.
type Harvester struct {
	ID           types.EntityID
	Side         Side
	Base         *Base
	X, Y         float64
	State        HarvesterState
	Target       *ResourceNode
	ChannelTimer float64
	Trips        int
}

// ResourceNode — росток маны позади базы. ClaimedBy — слабая ссылка
// на сборщика, который сейчас его собирает.
type ResourceNode struct {
	ID        types.EntityID
	Side      Side
	X, Y      float64
	ClaimedBy *Harvester
}

// Free сообщает, свободен ли росток.
func (n *ResourceNode) Free() bool {
	return n.ClaimedBy == nil
}
