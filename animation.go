package mrbinaer

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Eased maps a linear progress t in [0, 1] through a gween easing function.
// The result is not clamped: overshooting functions like ease.OutBack
// deliberately leave [0, 1].
func Eased(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

// JumpHeight returns the vertical lift of a jump at progress t, peaking at
// height halfway through. The rise decelerates and the fall accelerates.
func JumpHeight(t, height float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	if t < 0.5 {
		return height * Eased(ease.OutQuad, t*2)
	}
	return height * (1 - Eased(ease.InQuad, (t-0.5)*2))
}

// WaveShear returns the horizontal shear factor of a wave at progress t:
// two full swings that fade out toward the end.
func WaveShear(t, amount float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return amount * math.Sin(t*4*math.Pi) * (1 - Eased(ease.InQuad, t))
}

// Sway returns the idle vertical bob in screen pixels for a frame number.
func Sway(frame int, amplitude, speed float64) float64 {
	return amplitude * math.Sin(float64(frame)*speed)
}
