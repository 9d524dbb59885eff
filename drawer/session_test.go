package drawer

import (
	"testing"

	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/swipe"

	"gioui.org/f32"
)

func testEnv(dir swipe.Direction) Env {
	return Env{
		Projection:       swipe.Projection{Direction: dir},
		DampingFactor:    DefaultDampingFactor,
		SwipeThreshold:   DefaultSwipeThreshold,
		ReverseThreshold: DefaultReverseThreshold,
	}
}

func moveAll(s Session, env Env, pts ...f32.Point) (Session, Sample) {
	var sample Sample
	for _, p := range pts {
		s, sample = s.Move(env, p)
	}
	return s, sample
}

func TestSessionFirstSampleSkew(t *testing.T) {
	env := testEnv(swipe.Down)

	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)
	s, sample := s.Move(env, f32.Pt(1, 3))
	if s.Start != f32.Pt(1, 3) {
		t.Errorf("Start = %v, want re-anchored to (1, 3)", s.Start)
	}
	if sample.Locked {
		t.Errorf("first sample locked a direction: %+v", sample)
	}

	s = NewSession(f32.Pt(0, 0), f32.Point{}, 0)
	s, sample = s.Move(env, f32.Pt(0, 50))
	if s.Start != f32.Pt(0, 0) {
		t.Errorf("Start = %v, want (0, 0)", s.Start)
	}
	if !sample.Locked || sample.Offset != f32.Pt(0, 50) {
		t.Errorf("sample = %+v, want locked with offset (0, 50)", sample)
	}
}

func TestSessionDirectionLock(t *testing.T) {
	env := testEnv(swipe.Down)
	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)

	s, sample := moveAll(s, env, f32.Pt(20, 1), f32.Pt(40, 5))
	if sample.Locked || s.Intended.Set() {
		t.Fatalf("horizontal motion locked vertical drawer: %+v", s)
	}

	s, sample = s.Move(env, f32.Pt(40, 80))
	if !container.Is(s.Intended, swipe.Down) {
		t.Errorf("Intended = %v, want down", s.Intended)
	}
	if sample.Offset != f32.Pt(0, 80) {
		t.Errorf("Offset = %v, want (0, 80)", sample.Offset)
	}
	if s.MaxDisplacement != 80 {
		t.Errorf("MaxDisplacement = %v, want 80", s.MaxDisplacement)
	}

	// The lock is sticky.
	s, _ = s.Move(env, f32.Pt(40, -20))
	if !container.Is(s.Intended, swipe.Down) {
		t.Errorf("Intended changed to %v", s.Intended)
	}
}

func TestSessionCancellation(t *testing.T) {
	env := testEnv(swipe.Down)
	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)

	s, _ = moveAll(s, env, f32.Pt(0, 10), f32.Pt(0, 30), f32.Pt(0, 60))
	if s.Cancelled {
		t.Fatal("cancelled while moving forward")
	}
	s, _ = s.Move(env, f32.Pt(0, 55))
	if s.Cancelled {
		t.Fatal("cancelled by a reversal below the threshold")
	}
	s, _ = s.Move(env, f32.Pt(0, 45))
	if !s.Cancelled {
		t.Fatal("not cancelled after reversing by 15")
	}
	// Moving forward again, but not far enough.
	s, _ = s.Move(env, f32.Pt(0, 80))
	if !s.Cancelled {
		t.Fatal("cancellation lifted after advancing 35")
	}
	s, _ = s.Move(env, f32.Pt(0, 95))
	if s.Cancelled {
		t.Fatal("cancellation not lifted after advancing 50")
	}
	if s.CancelBaseline != f32.Pt(0, 45) {
		t.Errorf("CancelBaseline = %v, want (0, 45)", s.CancelBaseline)
	}
}

func TestSessionIsValue(t *testing.T) {
	env := testEnv(swipe.Right)
	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)
	before := s
	s2, _ := s.Move(env, f32.Pt(30, 0))
	if s != before {
		t.Error("Move modified its receiver")
	}
	if s2.Offset != 30 {
		t.Errorf("Offset = %v, want 30", s2.Offset)
	}
}

func TestSessionOpeningDamped(t *testing.T) {
	env := testEnv(swipe.Down)
	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)
	s, sample := moveAll(s, env, f32.Pt(0, -5), f32.Pt(0, -25), f32.Pt(0, -100))
	if s.Intended.Set() {
		t.Errorf("opening drag locked direction %v", s.Intended)
	}
	if !sample.Locked {
		t.Error("opening drag produced no offset")
	}
	if sample.Offset != f32.Pt(0, -10) {
		t.Errorf("Offset = %v, want (0, -10)", sample.Offset)
	}
}

func TestSessionOpeningWobbleThenClose(t *testing.T) {
	env := testEnv(swipe.Down)
	s := NewSession(f32.Pt(0, 0), f32.Point{}, 0)
	s, _ = moveAll(s, env, f32.Pt(0, -3), f32.Pt(0, -9))
	if s.Intended.Set() {
		t.Fatalf("opening wobble locked direction %v", s.Intended)
	}
	s, sample := s.Move(env, f32.Pt(0, 100))
	if !container.Is(s.Intended, swipe.Down) {
		t.Errorf("Intended = %v, want down", s.Intended)
	}
	if s.Cancelled {
		t.Error("closing drag after an opening wobble was cancelled")
	}
	if s.MaxDisplacement != 103 {
		t.Errorf("MaxDisplacement = %v, want 103", s.MaxDisplacement)
	}
	if sample.Offset != f32.Pt(0, 103) {
		t.Errorf("Offset = %v, want (0, 103)", sample.Offset)
	}
}
