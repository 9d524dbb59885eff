// Package swipetest drives drawer engines with scripted pointer input and
// records what they report.
package swipetest

import (
	"fmt"
	"time"

	"honnef.co/go/drawer/drawer"

	"gioui.org/f32"
)

// Recorder collects engine callbacks.
type Recorder struct {
	Starts    int
	Moves     []f32.Point
	Decisions []drawer.ReleaseDecision
	Indices   []int
}

func (r *Recorder) Callbacks() drawer.Callbacks {
	return drawer.Callbacks{
		OnDragStart: func() { r.Starts++ },
		OnDragMove:  func(off f32.Point) { r.Moves = append(r.Moves, off) },
		OnDragEnd:   func(dec drawer.ReleaseDecision) { r.Decisions = append(r.Decisions, dec) },
		OnActiveSnapPointIndexChange: func(i int) {
			r.Indices = append(r.Indices, i)
		},
	}
}

// LastMove returns the most recently reported offset.
func (r *Recorder) LastMove() (f32.Point, bool) {
	if len(r.Moves) == 0 {
		return f32.Point{}, false
	}
	return r.Moves[len(r.Moves)-1], true
}

// Decision returns the only decision reported so far and fails if there
// isn't exactly one.
func (r *Recorder) Decision() (drawer.ReleaseDecision, error) {
	if len(r.Decisions) != 1 {
		return drawer.ReleaseDecision{}, fmt.Errorf("got %d decisions, want 1", len(r.Decisions))
	}
	return r.Decisions[0], nil
}

func (r *Recorder) Reset() { *r = Recorder{} }

type Kind uint8

const (
	KindPress Kind = iota
	KindMove
	KindRelease
	KindScroll
	KindAbort
)

func (k Kind) String() string {
	switch k {
	case KindPress:
		return "press"
	case KindMove:
		return "move"
	case KindRelease:
		return "release"
	case KindScroll:
		return "scroll"
	case KindAbort:
		return "abort"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Step is a single scripted input.
type Step struct {
	Kind     Kind
	Position f32.Point
	At       time.Duration
	// Target is the pressed element, for KindPress.
	Target *drawer.Target
}

func (s Step) String() string {
	return fmt.Sprintf("%s %v @%s", s.Kind, s.Position, s.At)
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

func Press(x, y float32, atMs int) Step {
	return Step{Kind: KindPress, Position: f32.Pt(x, y), At: ms(atMs)}
}

func PressOn(target drawer.Target, x, y float32, atMs int) Step {
	return Step{Kind: KindPress, Position: f32.Pt(x, y), At: ms(atMs), Target: &target}
}

func Move(x, y float32, atMs int) Step {
	return Step{Kind: KindMove, Position: f32.Pt(x, y), At: ms(atMs)}
}

func Release(x, y float32, atMs int) Step {
	return Step{Kind: KindRelease, Position: f32.Pt(x, y), At: ms(atMs)}
}

func Scroll(atMs int) Step { return Step{Kind: KindScroll, At: ms(atMs)} }

func Abort() Step { return Step{Kind: KindAbort} }

// Drag returns n evenly spaced move samples from one point to another, not
// including from itself.
func Drag(from, to f32.Point, startMs, durMs, n int) []Step {
	steps := make([]Step, 0, n)
	for i := 1; i <= n; i++ {
		r := float32(i) / float32(n)
		p := from.Add(to.Sub(from).Mul(r))
		at := startMs + durMs*i/n
		steps = append(steps, Step{Kind: KindMove, Position: p, At: ms(at)})
	}
	return steps
}

// Run feeds steps to e. It reports whether the last press started a session.
func Run(e *drawer.Engine, steps ...Step) bool {
	var accepted bool
	for _, s := range steps {
		switch s.Kind {
		case KindPress:
			accepted = e.Press(s.Position, s.Target, f32.Point{}, s.At)
		case KindMove:
			e.Move(s.Position, s.At)
		case KindRelease:
			e.Release(s.Position, s.At)
		case KindScroll:
			e.Scrolled(s.At)
		case KindAbort:
			e.Abort()
		default:
			panic(fmt.Sprintf("unhandled step kind %s", s.Kind))
		}
	}
	return accepted
}

// Seq concatenates steps and step slices.
func Seq(parts ...any) []Step {
	var out []Step
	for _, p := range parts {
		switch p := p.(type) {
		case Step:
			out = append(out, p)
		case []Step:
			out = append(out, p...)
		default:
			panic(fmt.Sprintf("unexpected %T", p))
		}
	}
	return out
}
