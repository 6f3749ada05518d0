// internal/component/projectile.go
package component

// Projectile — снаряд юнита или башни. Живёт до первого попадания
// или до выхода за границы поля.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Damage float64
	Origin Side
	Radius float64
	Splash bool
	Alive  bool
}

// Step сдвигает снаряд на dt.
func (p *Projectile) Step(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// OutOfBounds проверяет выход за прямоугольник поля с запасом margin.
func (p *Projectile) OutOfBounds(width, height, margin float64) bool {
	return p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin
}
