package anim

import "github.com/tanema/gween/ease"

// Ease is a gween easing function: elapsed t of duration d, starting at b and
// changing by c.
type Ease = ease.TweenFunc

// The curves the controller uses.
var (
	Linear       Ease = ease.Linear
	EaseIn       Ease = ease.InQuad
	EaseOut      Ease = ease.OutQuad
	EaseInOut    Ease = ease.InOutQuad
	EaseOutCubic Ease = ease.OutCubic
)

// At evaluates e at linear progress t, clamped to [0, 1]. A nil e is Linear.
func At(e Ease, t float64) float64 {
	if e == nil {
		e = Linear
	}
	switch t = clamp01(t); t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return float64(e(float32(t), 0, 1, 1))
}

// Lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
