package swipe

import (
	"testing"

	"gioui.org/f32"
)

func TestCloses(t *testing.T) {
	tests := []struct {
		dir   Direction
		delta float32
		want  bool
	}{
		{Down, 5, true},
		{Down, -5, false},
		{Right, 5, true},
		{Right, -5, false},
		{Up, -5, true},
		{Up, 5, false},
		{Left, -5, true},
		{Left, 5, false},
		{Down, 0, false},
	}
	for _, tt := range tests {
		if got := tt.dir.Closes(tt.delta); got != tt.want {
			t.Errorf("%s.Closes(%v) = %t, want %t", tt.dir, tt.delta, got, tt.want)
		}
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	for _, dir := range []Direction{Down, Up, Left, Right} {
		pr := Projection{dir}
		for _, v := range []float32{-12.5, 0, 3, 40} {
			p := pr.Point(v)
			if got := pr.Closing(p); got != v {
				t.Errorf("%s: Closing(Point(%v)) = %v", dir, v, got)
			}
			if got := pr.Cross(p); got != 0 {
				t.Errorf("%s: Point(%v) has cross component %v", dir, v, got)
			}
		}
	}
}

func TestProjectionClosing(t *testing.T) {
	delta := f32.Pt(3, 7)
	tests := []struct {
		dir  Direction
		want float32
	}{
		{Down, 7},
		{Up, -7},
		{Right, 3},
		{Left, -3},
	}
	for _, tt := range tests {
		if got := (Projection{tt.dir}).Closing(delta); got != tt.want {
			t.Errorf("%s: Closing(%v) = %v, want %v", tt.dir, delta, got, tt.want)
		}
	}
}

func TestDominant(t *testing.T) {
	tests := []struct {
		dir   Direction
		delta f32.Point
		want  Direction
		ok    bool
	}{
		{Down, f32.Pt(1, 10), Down, true},
		{Down, f32.Pt(1, -10), Up, true},
		{Down, f32.Pt(10, 1), 0, false},
		{Down, f32.Pt(5, 5), 0, false},
		{Down, f32.Pt(0, 0), 0, false},
		{Left, f32.Pt(-10, 2), Left, true},
		{Left, f32.Pt(10, 2), Right, true},
		{Up, f32.Pt(0, -1), Up, true},
	}
	for _, tt := range tests {
		got, ok := (Projection{tt.dir}).Dominant(tt.delta)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: Dominant(%v) = (%s, %t), want (%s, %t)", tt.dir, tt.delta, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"down", "Up", " left ", "RIGHT"} {
		if _, err := ParseDirection(s); err != nil {
			t.Errorf("ParseDirection(%q) failed: %s", s, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(\"sideways\") succeeded, want error")
	}
}
