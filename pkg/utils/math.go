// pkg/utils/math.go
package utils

// Clamp01 clamps x into [0, 1].
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ClampMin returns x, or min if x is below it.
func ClampMin(x, min float64) float64 {
	if x < min {
		return min
	}
	return x
}

// Countdown decrements a timer by dt and clamps it at zero.
func Countdown(timer, dt float64) float64 {
	return ClampMin(timer-dt, 0)
}
