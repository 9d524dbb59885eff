package drawer

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Damp attenuates an overshoot o with factor f in (0, 1), preserving its sign.
// For |o| >= 1 the result is never larger in magnitude than o.
func Damp[T constraints.Float](o, f T) T {
	switch {
	case o > 0:
		return T(math.Pow(float64(o), float64(f)))
	case o < 0:
		return -T(math.Pow(float64(-o), float64(f)))
	default:
		return 0
	}
}

// displace turns the raw displacement c, in closing coordinates, into the
// displacement to render. Motion toward the closed position is linear. Motion
// away from it is linear until it passes the fully open position, and damped
// beyond that.
//
// offsets are the snap point offsets and rest is the offset of the active
// snap point. Without snap points the panel rests at its fully open position.
func displace(c float32, offsets []float32, rest, f float32) float32 {
	if c >= 0 {
		return c
	}
	if len(offsets) == 0 {
		return Damp(c, f)
	}

	open := offsets[0]
	for _, off := range offsets[1:] {
		open = min(open, off)
	}
	target := rest + c
	if target >= open {
		return c
	}
	excess := open - target
	return open - Damp(excess, f) - rest
}
