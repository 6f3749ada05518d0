// internal/utils/math.go
package utils

import (
	"math"
	"strings"
)

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance — евклидово расстояние между точками.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Heading возвращает вектор скорости длины speed из (fx,fy) в (tx,ty).
func Heading(fx, fy, tx, ty, speed float64) (vx, vy float64) {
	angle := math.Atan2(ty-fy, tx-fx)
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// Approach двигает точку к цели на step, не перескакивая её.
// Возвращает новое положение и оставшееся до цели расстояние.
func Approach(x, y, tx, ty, step float64) (float64, float64, float64) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty, 0
	}
	return x + dx/dist*step, y + dy/dist*step, dist - step
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
