// internal/component/effect.go
package component

// Particle — частица взрыва, чисто визуальная.
type Particle struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	Decay  float64
	Side   Side
}

// Star — падающая звезда, бьёт по площади при касании земли или базы.
type Star struct {
	X, Y   float64
	VY     float64
	Radius float64
	Alive  bool
}
