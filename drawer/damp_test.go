package drawer

import (
	"math"
	"testing"
)

func TestDampSign(t *testing.T) {
	for _, f := range []float32{0.1, 0.5, 0.9} {
		for _, o := range []float32{-1000, -37.5, -1, 1, 2, 40, 1e6} {
			d := Damp(o, f)
			if (d > 0) != (o > 0) {
				t.Errorf("Damp(%v, %v) = %v, sign changed", o, f, d)
			}
			if abs(d) > abs(o) {
				t.Errorf("Damp(%v, %v) = %v, larger than overshoot", o, f, d)
			}
		}
	}
	if d := Damp[float32](0, 0.5); d != 0 {
		t.Errorf("Damp(0) = %v, want 0", d)
	}
	if d := Damp(-100.0, 0.5); d != -10 {
		t.Errorf("Damp(-100, 0.5) = %v, want -10", d)
	}
}

func TestDisplace(t *testing.T) {
	const f = 0.5
	tests := []struct {
		name    string
		c       float32
		offsets []float32
		rest    float32
		want    float32
	}{
		{"binary closing is linear", 30, nil, 0, 30},
		{"binary opening is damped", -100, nil, 0, -10},
		{"snap closing is linear", 250, []float32{100, 0}, 0, 250},
		{"snap opening within bounds", -60, []float32{100, 0}, 100, -60},
		{"snap opening at open point", -100, []float32{100, 0}, 0, -10},
		{"snap opening past bound", -150, []float32{100, 0}, 100, -100 - float32(math.Sqrt(50))},
	}
	for _, tt := range tests {
		got := displace(tt.c, tt.offsets, tt.rest, f)
		if math.Abs(float64(got-tt.want)) > 1e-3 {
			t.Errorf("%s: displace(%v) = %v, want %v", tt.name, tt.c, got, tt.want)
		}
	}
}
