// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-lane-battle/internal/defs"
)

// PRNGService — обёртка над генератором случайных чисел, один экземпляр
// на симуляцию, чтобы тесты могли задавать сид.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source), // #nosec G404 -- игровой рандом
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Spread возвращает число в диапазоне [-width/2, width/2).
func (s *PRNGService) Spread(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// ChooseWeighted выполняет взвешенный случайный выбор из ростера.
// Суммирует веса, выбирает число в этом диапазоне и находит соответствующую запись.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry) string {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}

	if totalWeight <= 0 {
		// Все веса нулевые — выбираем равновероятно
		return entries[s.Intn(len(entries))].UnitID
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.UnitID
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].UnitID
}
