package drawer

import (
	"time"

	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"

	"gioui.org/f32"
)

// Session is the state of a single drag, from press to release. Sessions are
// values; Move returns an updated copy and never modifies its receiver.
type Session struct {
	// Start is the pointer position that displacements are measured from.
	Start f32.Point
	// PanelStart is the origin of the panel at the time of the press.
	PanelStart f32.Point
	StartTime  time.Duration
	// FirstSample is set until the first move has been processed. Some input
	// backends report a press position that differs slightly from the first
	// motion sample, so a first move close to the press re-anchors Start.
	FirstSample bool

	// Tracking is set once a sample moved mostly along the drag axis. From
	// then on every sample produces an offset.
	Tracking bool
	// Intended is the configured direction, set at the first sample that
	// moves mostly along the drag axis towards the closed position. Opening
	// motion before that is tracked but never locks a direction.
	Intended container.Option[swipe.Direction]
	// MaxDisplacement is the furthest the gesture has travelled in the
	// intended direction.
	MaxDisplacement float32
	// CancelBaseline is where the pointer last turned around to move in the
	// intended direction again.
	CancelBaseline f32.Point
	// Cancelled is set when the gesture fell back far enough from
	// MaxDisplacement to count as a change of mind.
	Cancelled bool

	// Prev is the position of the previous sample.
	Prev f32.Point
	// prevStep is the signed movement of the previous sample along the drag
	// axis, in closing coordinates.
	prevStep float32

	// Offset is the most recent displacement, in closing coordinates, after
	// damping.
	Offset float32
}

// Env is everything besides the session itself that a move depends on. The
// engine builds a fresh Env for every sample, so layout changes apply to the
// next sample without touching the session.
type Env struct {
	Projection swipe.Projection
	// Offsets are the snap point offsets, see snap.Offsets.
	Offsets []float32
	// Active is the index of the snap point the panel rests at.
	Active int

	DampingFactor    float32
	SwipeThreshold   float32
	ReverseThreshold float32
}

func (env Env) rest() float32 {
	if len(env.Offsets) == 0 {
		return 0
	}
	return env.Offsets[snap.ClampIndex(env.Active, len(env.Offsets))]
}

// Sample is the result of processing one move.
type Sample struct {
	// Offset is the displacement to apply to the panel. Only the drag axis is
	// non-zero.
	Offset f32.Point
	// Locked reports whether the gesture moves along the drag axis. Samples
	// before that carry no offset and shouldn't be reported.
	Locked bool
}

// maxFirstSampleSkew is the largest distance, in pixels, between a press and
// the first move that is treated as input skew rather than motion.
const maxFirstSampleSkew = 4

func NewSession(pos, panelStart f32.Point, ts time.Duration) Session {
	return Session{
		Start:          pos,
		PanelStart:     panelStart,
		StartTime:      ts,
		FirstSample:    true,
		CancelBaseline: pos,
		Prev:           pos,
	}
}

// Move processes a pointer sample.
func (s Session) Move(env Env, pos f32.Point) (Session, Sample) {
	pr := env.Projection
	if s.FirstSample {
		s.FirstSample = false
		if d := pos.Sub(s.Start); abs(d.X) <= maxFirstSampleSkew && abs(d.Y) <= maxFirstSampleSkew {
			s.Start = pos
			s.CancelBaseline = pos
			s.Prev = pos
		}
	}

	// Track where the pointer turns around.
	if step := pr.Closing(pos.Sub(s.Prev)); step != 0 {
		if s.prevStep != 0 && (step > 0) != (s.prevStep > 0) {
			s.CancelBaseline = s.Prev
		}
		s.prevStep = step
	}
	s.Prev = pos

	delta := pos.Sub(s.Start)
	disp := pr.Closing(delta)
	if !s.Intended.Set() {
		dir, ok := pr.Dominant(delta)
		if ok {
			s.Tracking = true
		}
		if ok && dir == pr.Direction {
			s.Intended = container.Some(dir)
			s.MaxDisplacement = disp
		}
		if !s.Tracking {
			return s, Sample{}
		}
	} else {
		s.MaxDisplacement = max(s.MaxDisplacement, disp)
		if s.Cancelled && pr.Closing(pos.Sub(s.CancelBaseline)) > env.SwipeThreshold {
			s.Cancelled = false
			s.MaxDisplacement = disp
		} else if s.MaxDisplacement-disp > env.ReverseThreshold {
			s.Cancelled = true
		}
	}

	s.Offset = displace(disp, env.Offsets, env.rest(), env.DampingFactor)
	return s, Sample{Offset: pr.Point(s.Offset), Locked: true}
}
