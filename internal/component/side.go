// internal/component/side.go
package component

// Side — одна из двух сторон этапа.
type Side int

const (
	Home Side = iota
	Opponent
)

// Sides перечисляет стороны в порядке обновления.
var Sides = [2]Side{Home, Opponent}

func (s Side) Opposite() Side {
	if s == Home {
		return Opponent
	}
	return Home
}

// Dir — направление движения к вражеской базе по оси X.
func (s Side) Dir() float64 {
	if s == Home {
		return 1
	}
	return -1
}

func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "opponent"
}

// CommandMode — приказ для юнитов игрока.
type CommandMode int

const (
	Attack CommandMode = iota
	Defend
)

func (m CommandMode) String() string {
	if m == Defend {
		return "defend"
	}
	return "attack"
}
