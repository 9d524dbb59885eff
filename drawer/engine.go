// Package drawer implements the drag gesture engine of a sliding drawer panel.
//
// An Engine is driven by three kinds of input, strictly ordered per gesture:
// one press, any number of moves, and one release. While dragging it reports
// the damped displacement of the panel, and on release it decides whether the
// panel closes, snaps to another snap point, or returns to where it was.
//
// Engines are not safe for concurrent use. They do no work of their own
// between calls.
package drawer

import (
	"fmt"
	"log/slog"
	"time"

	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/snap"
	"honnef.co/go/drawer/swipe"

	"gioui.org/f32"
)

// Callbacks are invoked synchronously from within Engine methods. Any of them
// may be nil.
type Callbacks struct {
	OnDragStart                  func()
	OnDragMove                   func(offset f32.Point)
	OnDragEnd                    func(dec ReleaseDecision)
	OnActiveSnapPointIndexChange func(index int)
}

// Target describes the element a press landed on.
type Target struct {
	// Interactive is set for controls such as buttons, links and inputs.
	Interactive bool
	// IgnoreSwipe marks elements that opted out of starting drags.
	IgnoreSwipe bool
	// Scrollable is set for elements that scroll along the drag axis.
	// ScrollOffset and ScrollMax describe their scroll position.
	Scrollable   bool
	ScrollOffset float32
	ScrollMax    float32
}

// atBoundary reports whether a scrollable target can't scroll any further in
// the direction that closes the drawer, so that dragging it can't be mistaken
// for scrolling.
func (t *Target) atBoundary(dir swipe.Direction) bool {
	switch dir {
	case swipe.Down, swipe.Right:
		return t.ScrollOffset <= 0
	case swipe.Up, swipe.Left:
		return t.ScrollOffset >= t.ScrollMax
	default:
		panic(fmt.Sprintf("unhandled direction %s", dir))
	}
}

type Engine struct {
	cfg Config
	cb  Callbacks
	// pending is configuration that arrived during a session.
	pending container.Option[Config]

	containerSize float32
	panelSize     float32
	active        int
	// offsets caches snap.Offsets for the current configuration and layout.
	offsets      []float32
	offsetsValid bool

	session container.Option[Session]

	// Scroll lock state. lockedAt is when scrolling last prevented a drag.
	lockedAt time.Duration
	locked   bool
}

func NewEngine(cfg Config, cb Callbacks) *Engine {
	e := &Engine{cb: cb}
	e.apply(cfg)
	e.active = cfg.ActiveSnapPointIndex
	e.clampActive()
	return e
}

func (e *Engine) apply(cfg Config) {
	e.cfg = cfg.WithDefaults()
	e.offsetsValid = false
}

func (e *Engine) log() *slog.Logger {
	if e.cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.cfg.Logger
}

// Config returns the configuration in effect, with defaults applied.
func (e *Engine) Config() Config { return e.cfg }

// Configure replaces the configuration. During a drag the new configuration
// takes effect once the drag has ended. The active snap point index is kept,
// clamped to the new snap points.
func (e *Engine) Configure(cfg Config) {
	if e.session.Set() {
		e.pending = container.Some(cfg)
		return
	}
	e.apply(cfg)
	e.clampActive()
}

// SetLayout updates the size of the container, against which percentage snap
// points are resolved, and of the panel, along the drag axis. Changes during
// a drag apply from the next sample on.
func (e *Engine) SetLayout(containerSize, panelSize float32) {
	if containerSize == e.containerSize && panelSize == e.panelSize {
		return
	}
	e.containerSize = containerSize
	e.panelSize = panelSize
	e.offsetsValid = false
}

// SnapOffsets returns the offsets of the snap points from the fully open
// position, in closing coordinates. The slice must not be modified.
func (e *Engine) SnapOffsets() []float32 {
	if !e.offsetsValid {
		e.offsets = snap.Offsets(e.cfg.SnapPoints, e.containerSize)
		e.offsetsValid = true
	}
	return e.offsets
}

func (e *Engine) ActiveSnapPointIndex() int { return e.active }

// SetActiveSnapPointIndex moves the rest position. Out of range indices are
// clamped.
func (e *Engine) SetActiveSnapPointIndex(i int) {
	e.active = snap.ClampIndex(i, len(e.cfg.SnapPoints))
}

func (e *Engine) clampActive() {
	e.active = snap.ClampIndex(e.active, len(e.cfg.SnapPoints))
}

// RestOffset returns the translation of the panel at the active snap point,
// relative to its fully open position.
func (e *Engine) RestOffset() f32.Point {
	offsets := e.SnapOffsets()
	if len(offsets) == 0 {
		return f32.Point{}
	}
	return e.projection().Point(offsets[e.active])
}

func (e *Engine) projection() swipe.Projection {
	return swipe.Projection{Direction: e.cfg.Direction}
}

// Dragging reports whether a session is in progress.
func (e *Engine) Dragging() bool { return e.session.Set() }

// Scrolled tells the engine that content inside the drawer scrolled. Presses
// shortly after scrolling don't start drags.
func (e *Engine) Scrolled(ts time.Duration) {
	e.lockedAt = ts
	e.locked = true
}

func (e *Engine) shouldDrag(target *Target, ts time.Duration) bool {
	if target != nil && (target.Interactive || target.IgnoreSwipe) {
		return false
	}
	// Sessions don't overlap, so the panel is always at rest here.
	if e.locked && ts-e.lockedAt < e.cfg.ScrollLockTimeout {
		e.lockedAt = ts
		return false
	}
	if target != nil && target.Scrollable && !target.atBoundary(e.cfg.Direction) {
		e.lockedAt = ts
		e.locked = true
		return false
	}
	return true
}

// Press starts a session. target may be nil. panelStart is the current origin
// of the panel. Press reports whether a session was started.
func (e *Engine) Press(pos f32.Point, target *Target, panelStart f32.Point, ts time.Duration) bool {
	if e.cfg.Disabled {
		return false
	}
	if e.session.Set() {
		e.log().Debug("ignoring press during drag", "pos", pos)
		return false
	}
	if !e.shouldDrag(target, ts) {
		e.log().Debug("press rejected", "pos", pos, "time", ts)
		return false
	}

	e.session = container.Some(NewSession(pos, panelStart, ts))
	e.log().Debug("drag started", "pos", pos, "time", ts, "direction", e.cfg.Direction)
	if e.cb.OnDragStart != nil {
		e.cb.OnDragStart()
	}
	return true
}

func (e *Engine) env() Env {
	return Env{
		Projection:       e.projection(),
		Offsets:          e.SnapOffsets(),
		Active:           e.active,
		DampingFactor:    e.cfg.DampingFactor,
		SwipeThreshold:   e.cfg.SwipeThreshold,
		ReverseThreshold: e.cfg.ReverseThreshold,
	}
}

// Move processes a pointer sample of the current session.
func (e *Engine) Move(pos f32.Point, ts time.Duration) {
	s, ok := e.session.Get()
	if !ok {
		if debug {
			panic("Move without a session")
		}
		return
	}
	s = e.move(s, pos)
	e.session = container.Some(s)
}

func (e *Engine) move(s Session, pos f32.Point) Session {
	wasCancelled := s.Cancelled
	s, sample := s.Move(e.env(), pos)
	if s.Cancelled != wasCancelled {
		e.log().Debug("drag cancellation changed", "cancelled", s.Cancelled, "pos", pos)
	}
	if sample.Locked && e.cb.OnDragMove != nil {
		e.cb.OnDragMove(sample.Offset)
	}
	return s
}

// Release ends the current session and reports the decision through
// OnDragEnd. A change of snap point is reported through
// OnActiveSnapPointIndexChange before that.
func (e *Engine) Release(pos f32.Point, ts time.Duration) {
	s, ok := e.session.Get()
	if !ok {
		if debug {
			panic("Release without a session")
		}
		return
	}
	if !s.FirstSample && pos != s.Prev {
		s = e.move(s, pos)
	}
	e.session = container.None[Session]()
	defer e.applyPending()

	dec, active := Release(ReleaseInput{
		Direction:         e.cfg.Direction,
		Displacement:      s.Offset,
		Elapsed:           ts - s.StartTime,
		Cancelled:         s.Cancelled,
		Offsets:           e.SnapOffsets(),
		Active:            e.active,
		PanelSize:         e.panelSize,
		CloseThreshold:    e.cfg.ResolveCloseThreshold(e.panelSize),
		VelocityThreshold: e.cfg.VelocityThreshold,
	})
	e.log().Debug("drag ended",
		"displacement", s.Offset,
		"close", dec.ShouldClose,
		"cancelled", dec.Cancelled,
		"snap", active)

	if active != e.active {
		e.active = active
		if e.cb.OnActiveSnapPointIndexChange != nil {
			e.cb.OnActiveSnapPointIndexChange(active)
		}
	}
	if e.cb.OnDragEnd != nil {
		e.cb.OnDragEnd(dec)
	}
}

// Abort discards the current session without a decision, for example when the
// pointer is cancelled or the drawer goes away.
func (e *Engine) Abort() {
	if !e.session.Set() {
		return
	}
	e.session = container.None[Session]()
	e.applyPending()
	e.log().Debug("drag aborted")
}

func (e *Engine) applyPending() {
	if cfg, ok := e.pending.Get(); ok {
		e.pending = container.None[Config]()
		e.apply(cfg)
		e.clampActive()
	}
}
