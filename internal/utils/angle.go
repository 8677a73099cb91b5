// internal/utils/angle.go
package utils

import "math"

// AngleTo возвращает угол направления из (fromX, fromY) на (toX, toY) в диапазоне [-π, π].
func AngleTo(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toY-fromY, toX-fromX)
}
