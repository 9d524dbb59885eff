// Package gesture connects Gio pointer input to drawer engines.
package gesture

import (
	"time"

	"honnef.co/go/drawer/drawer"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// Swipe forwards the pointer events of a drag handle to a drawer engine. The
// handle must be registered in a coordinate space that doesn't move with the
// panel, or positions would shift under the pointer as the panel follows it.
type Swipe struct {
	Engine *drawer.Engine
	// HitTest returns the element under a press. May be nil, in which case
	// every press is on a plain surface.
	HitTest func(pos f32.Point) *drawer.Target
	// PanelOrigin is reported to the engine as the panel's position at press
	// time.
	PanelOrigin f32.Point

	// pressed tracks whether a session is in progress.
	pressed bool
	// pid is the pointer.ID of the session.
	pid pointer.ID

	// Event times use their own origin. We remember the last pair of event
	// time and frame time so that frame times can be translated.
	clockEvent time.Duration
	clockFrame time.Time
	clockSet   bool
}

// Add the handler to the operation list to receive pointer events.
func (s *Swipe) Add(ops *op.Ops) {
	event.Op(ops, s)
}

// Dragging reports whether the handle is being dragged.
func (s *Swipe) Dragging() bool { return s.pressed }

func (s *Swipe) sync(now time.Time, t time.Duration) {
	s.clockEvent = t
	s.clockFrame = now
	s.clockSet = true
}

// Update processes pending pointer events.
func (s *Swipe) Update(gtx layout.Context) {
	for {
		evt, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Move | pointer.Enter,
		})
		if !ok {
			break
		}
		e, ok := evt.(pointer.Event)
		if !ok {
			continue
		}
		s.sync(gtx.Now, e.Time)

		switch e.Kind {
		case pointer.Press:
			if s.pressed {
				continue
			}
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				continue
			}
			var target *drawer.Target
			if s.HitTest != nil {
				target = s.HitTest(e.Position)
			}
			if !s.Engine.Press(e.Position, target, s.PanelOrigin, e.Time) {
				continue
			}
			s.pressed = true
			s.pid = e.PointerID
			gtx.Execute(pointer.GrabCmd{Tag: s, ID: e.PointerID})
		case pointer.Drag:
			if !s.pressed || e.PointerID != s.pid {
				continue
			}
			s.Engine.Move(e.Position, e.Time)
		case pointer.Release:
			if !s.pressed || e.PointerID != s.pid {
				continue
			}
			s.pressed = false
			s.Engine.Release(e.Position, e.Time)
		case pointer.Cancel:
			if s.pressed {
				s.pressed = false
				s.Engine.Abort()
			}
		}
	}
}

// Scrolled tells the engine that content inside the drawer scrolled during
// the current frame.
func (s *Swipe) Scrolled(gtx layout.Context) {
	if !s.clockSet {
		// Without pointer events there can't be a press to lock out yet.
		return
	}
	s.Engine.Scrolled(s.clockEvent + gtx.Now.Sub(s.clockFrame))
}

// Abort ends a drag without a decision, for example when the drawer is
// removed from the UI.
func (s *Swipe) Abort() {
	if s.pressed {
		s.pressed = false
		s.Engine.Abort()
	}
}
