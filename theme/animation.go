package theme

import (
	"math"
	"time"

	"honnef.co/go/stuff/math/mathutil"

	"gioui.org/layout"
	"gioui.org/op"
	"golang.org/x/exp/constraints"
)

type EasingFunction func(float64) float64
type LerpFunction[T any] func(start, end T, r float64) T

type Animation[T any] struct {
	StartValue T
	EndValue   T
	StartTime  time.Time
	Duration   time.Duration
	Ease       EasingFunction
	Lerp       LerpFunction[T]

	active bool
}

func (anim *Animation[T]) Start(gtx layout.Context, v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.StartValue = v1
	anim.EndValue = v2
	anim.StartTime = gtx.Now
	anim.Duration = d
	anim.Ease = ease
	anim.active = true
	gtx.Execute(op.InvalidateCmd{})
}

func StartSimpleAnimation[T constraints.Integer | constraints.Float](gtx layout.Context, anim *Animation[T], v1, v2 T, d time.Duration, ease EasingFunction) {
	anim.Start(gtx, v1, v2, d, ease)
	anim.Lerp = mathutil.Lerp
}

// Value returns the animated value at the current frame and schedules another
// frame while the animation is running.
func (anim *Animation[T]) Value(gtx layout.Context) T {
	if !anim.active {
		return anim.EndValue
	}

	d := gtx.Now.Sub(anim.StartTime)
	if d >= anim.Duration {
		anim.active = false
		return anim.EndValue
	}

	ratio := anim.Ease(float64(d) / float64(anim.Duration))
	gtx.Execute(op.InvalidateCmd{})
	return anim.Lerp(anim.StartValue, anim.EndValue, ratio)
}

func (anim *Animation[T]) Cancel() {
	anim.active = false
}

func (anim *Animation[T]) Done() bool {
	return !anim.active
}

func EaseOut(power int) EasingFunction {
	switch power {
	case 1:
		return func(r float64) float64 { return r }
	case 2:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r }
	case 3:
		return func(r float64) float64 { r = 1 - r; return 1 - r*r*r }
	default:
		return func(r float64) float64 { return 1 - math.Pow(1-r, float64(power)) }
	}
}

// settleDuration is how long the panel takes to travel dist pixels after being
// released at speed pixels per millisecond. Fast releases settle quickly, but
// never faster than a frame or two would allow the eye to follow.
func settleDuration(dist, speed float32) time.Duration {
	const (
		minDuration = 120 * time.Millisecond
		maxDuration = 400 * time.Millisecond
		// Speed assumed for slow or stationary releases.
		baseSpeed = 1
	)
	speed = max(speed, baseSpeed)
	d := time.Duration(float64(dist/speed) * float64(time.Millisecond))
	return min(max(d, minDuration), maxDuration)
}
