package drawer

import (
	"time"

	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"
)

// ReleaseDecision is the outcome of a drag.
type ReleaseDecision struct {
	ShouldClose bool
	// DismissDirection is the configured direction if ShouldClose is set.
	DismissDirection container.Option[swipe.Direction]
	// Velocity of the release in pixels per millisecond. Only the drag axis
	// is non-zero.
	VelocityX float32
	VelocityY float32
	// Cancelled reports that the user reversed the gesture before releasing.
	// Cancelled decisions never close or change the snap point.
	Cancelled bool
}

type ReleaseInput struct {
	Direction swipe.Direction
	// Displacement in closing coordinates.
	Displacement float32
	// Elapsed time since the press.
	Elapsed   time.Duration
	Cancelled bool
	// Offsets are the snap point offsets and Active the current index into
	// them.
	Offsets []float32
	Active  int
	// PanelSize is the size of the panel along the drag axis.
	PanelSize float32
	// CloseThreshold in pixels, see Config.ResolveCloseThreshold.
	CloseThreshold    float32
	VelocityThreshold float32
}

// Velocity returns the release speed in pixels per millisecond. A zero
// elapsed time yields zero.
func (in ReleaseInput) Velocity() float32 {
	if in.Elapsed <= 0 {
		return 0
	}
	ms := float32(in.Elapsed) / float32(time.Millisecond)
	return abs(in.Displacement) / ms
}

// Release decides what happens to the panel at the end of a drag. It returns
// the decision and the index of the snap point the panel should rest at.
func Release(in ReleaseInput) (ReleaseDecision, int) {
	active := snap.ClampIndex(in.Active, len(in.Offsets))
	v := in.Velocity()
	sv := v
	if in.Displacement < 0 {
		sv = -v
	}
	vel := swipe.Projection{Direction: in.Direction}.Point(sv)
	dec := ReleaseDecision{VelocityX: vel.X, VelocityY: vel.Y}
	if in.Cancelled {
		dec.Cancelled = true
		return dec, active
	}

	closing := in.Displacement > 0
	dist := abs(in.Displacement)
	shouldClose := false
	if len(in.Offsets) > 0 {
		closest := snap.Closest(in.Offsets, in.Displacement+in.Offsets[active])
		switch {
		case v > VelocityForForcedClose && dist < in.PanelSize*ForcedCloseThreshold:
			if closing {
				shouldClose = true
			} else {
				active = len(in.Offsets) - 1
			}
		case active == 0 && closing && (dist > in.CloseThreshold || v > in.VelocityThreshold):
			shouldClose = true
		default:
			active = closest
		}
	} else {
		// Velocity is unsigned: a fast flick closes whichever way it went.
		shouldClose = in.Displacement > in.CloseThreshold || v > in.VelocityThreshold
	}

	if shouldClose {
		dec.ShouldClose = true
		dec.DismissDirection = container.Some(in.Direction)
	}
	return dec, active
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
