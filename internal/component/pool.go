// internal/component/pool.go
package component

// ResourcePool — запас маны стороны, всегда в пределах [0, Cap].
type ResourcePool struct {
	Amount  int
	Cap     int
	PerTrip int
}

// NewResourcePool создаёт пул с обрезанным по лимиту запасом.
func NewResourcePool(amount, capacity, perTrip int) *ResourcePool {
	p := &ResourcePool{Cap: capacity, PerTrip: perTrip}
	p.Set(amount)
	return p
}

// CanAfford — хватает ли маны на cost.
func (p *ResourcePool) CanAfford(cost int) bool {
	return cost >= 0 && p.Amount >= cost
}

// Spend списывает cost. При нехватке ничего не меняет и возвращает false.
func (p *ResourcePool) Spend(cost int) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Amount -= cost
	return true
}

// Earn добавляет n с обрезкой по лимиту и возвращает фактическую прибавку.
func (p *ResourcePool) Earn(n int) int {
	before := p.Amount
	p.Set(p.Amount + n)
	return p.Amount - before
}

// Set выставляет запас с обрезкой.
func (p *ResourcePool) Set(n int) {
	if n < 0 {
		n = 0
	}
	if n > p.Cap {
		n = p.Cap
	}
	p.Amount = n
}

// Raise поднимает лимит; запас остаётся прежним.
func (p *ResourcePool) Raise(n int) {
	p.Cap += n
	if p.Cap < 0 {
		p.Cap = 0
	}
	p.Set(p.Amount)
}
