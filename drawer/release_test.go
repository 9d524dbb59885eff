package drawer

import (
	"math"
	"testing"
	"time"

	"honnef.co/go/drawer/container"
	"honnef.co/go/drawer/swipe"
)

func TestReleaseBinary(t *testing.T) {
	tests := []struct {
		name  string
		dir   swipe.Direction
		disp  float32
		dt    time.Duration
		close bool
	}{
		{"past threshold", swipe.Down, 50, time.Second, true},
		{"short", swipe.Down, 10, 100 * time.Millisecond, false},
		{"fast", swipe.Down, 10, 10 * time.Millisecond, true},
		{"fast opening", swipe.Down, -30, 10 * time.Millisecond, true},
		{"slow opening", swipe.Down, -30, time.Second, false},
		{"barely fast opening", swipe.Down, -30, 55 * time.Millisecond, true},
		{"up past threshold", swipe.Up, 50, time.Second, true},
		{"left short", swipe.Left, 39, time.Second, false},
		{"zero elapsed", swipe.Right, 10, 0, false},
	}
	for _, tt := range tests {
		dec, _ := Release(ReleaseInput{
			Direction:         tt.dir,
			Displacement:      tt.disp,
			Elapsed:           tt.dt,
			CloseThreshold:    40,
			VelocityThreshold: 0.5,
		})
		if dec.ShouldClose != tt.close {
			t.Errorf("%s: ShouldClose = %t, want %t", tt.name, dec.ShouldClose, tt.close)
		}
		if dir, ok := dec.DismissDirection.Get(); ok != tt.close || (ok && dir != tt.dir) {
			t.Errorf("%s: DismissDirection = %v", tt.name, dec.DismissDirection)
		}
	}
}

func TestReleaseZeroElapsed(t *testing.T) {
	in := ReleaseInput{Direction: swipe.Down, Displacement: 25}
	if v := in.Velocity(); v != 0 {
		t.Errorf("Velocity() = %v, want 0", v)
	}
	dec, _ := Release(in)
	if dec.VelocityX != 0 || dec.VelocityY != 0 {
		t.Errorf("velocity = (%v, %v), want 0", dec.VelocityX, dec.VelocityY)
	}
}

func TestReleaseVelocityComponents(t *testing.T) {
	dec, _ := Release(ReleaseInput{Direction: swipe.Up, Displacement: 20, Elapsed: 10 * time.Millisecond})
	if dec.VelocityX != 0 || dec.VelocityY != -2 {
		t.Errorf("velocity = (%v, %v), want (0, -2)", dec.VelocityX, dec.VelocityY)
	}
	dec, _ = Release(ReleaseInput{Direction: swipe.Right, Displacement: -20, Elapsed: 10 * time.Millisecond})
	if dec.VelocityX != -2 || dec.VelocityY != 0 {
		t.Errorf("velocity = (%v, %v), want (-2, 0)", dec.VelocityX, dec.VelocityY)
	}
	if math.Signbit(float64(dec.VelocityY)) {
		t.Errorf("VelocityY = %v, want positive zero", dec.VelocityY)
	}
	dec, _ = Release(ReleaseInput{Direction: swipe.Up, Displacement: -20, Elapsed: 10 * time.Millisecond})
	if dec.VelocityX != 0 || dec.VelocityY != 2 {
		t.Errorf("velocity = (%v, %v), want (0, 2)", dec.VelocityX, dec.VelocityY)
	}
	if math.Signbit(float64(dec.VelocityX)) {
		t.Errorf("VelocityX = %v, want positive zero", dec.VelocityX)
	}
}

func TestReleaseCancelled(t *testing.T) {
	dec, active := Release(ReleaseInput{
		Direction:         swipe.Down,
		Displacement:      500,
		Elapsed:           10 * time.Millisecond,
		Cancelled:         true,
		Offsets:           []float32{100, 0},
		Active:            0,
		PanelSize:         200,
		CloseThreshold:    40,
		VelocityThreshold: 0.5,
	})
	if dec.ShouldClose || !dec.Cancelled || active != 0 {
		t.Errorf("got %+v, active %d; want cancelled decision at index 0", dec, active)
	}
}

func TestReleaseSnap(t *testing.T) {
	offsets := []float32{100, 0}
	tests := []struct {
		name       string
		disp       float32
		dt         time.Duration
		active     int
		close      bool
		wantActive int
	}{
		{"small drag stays", 30, 300 * time.Millisecond, 1, false, 1},
		{"drag to lower point", 80, time.Second, 1, false, 0},
		{"drag up to open point", -70, time.Second, 0, false, 1},
		{"below threshold at first point", 60, time.Second, 0, false, 0},
		{"past threshold at first point", 100, time.Second, 0, true, 0},
		{"fast at first point", 30, 50 * time.Millisecond, 0, true, 0},
		{"flick closed", 30, 10 * time.Millisecond, 1, true, 1},
		{"flick open", -30, 10 * time.Millisecond, 0, false, 1},
		{"forced close boundary", 80, 40 * time.Millisecond, 1, false, 0},
		{"out of range index", 0, time.Second, 7, false, 1},
	}
	for _, tt := range tests {
		dec, active := Release(ReleaseInput{
			Direction:         swipe.Down,
			Displacement:      tt.disp,
			Elapsed:           tt.dt,
			Offsets:           offsets,
			Active:            tt.active,
			PanelSize:         200,
			CloseThreshold:    80,
			VelocityThreshold: 0.5,
		})
		if dec.ShouldClose != tt.close {
			t.Errorf("%s: ShouldClose = %t, want %t", tt.name, dec.ShouldClose, tt.close)
		}
		if active != tt.wantActive {
			t.Errorf("%s: active = %d, want %d", tt.name, active, tt.wantActive)
		}
		if tt.close && !container.Is(dec.DismissDirection, swipe.Down) {
			t.Errorf("%s: DismissDirection = %v", tt.name, dec.DismissDirection)
		}
	}
}

func TestResolveCloseThreshold(t *testing.T) {
	tests := []struct {
		threshold, panel, want float32
	}{
		{0.4, 200, 80},
		{0.4, 0, 0},
		{40, 200, 40},
		{1, 200, 1},
		{0, 200, 0},
	}
	for _, tt := range tests {
		cfg := Config{CloseThreshold: tt.threshold}
		if got := cfg.ResolveCloseThreshold(tt.panel); got != tt.want {
			t.Errorf("ResolveCloseThreshold(%v, %v) = %v, want %v", tt.threshold, tt.panel, got, tt.want)
		}
	}
}
