package theme

import (
	"testing"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
)

func TestAnimation(t *testing.T) {
	now := time.Now()
	gtx := layout.Context{Ops: new(op.Ops), Now: now}
	var anim Animation[float32]
	if !anim.Done() {
		t.Fatal("zero animation is running")
	}
	StartSimpleAnimation(gtx, &anim, 100, 200, 100*time.Millisecond, EaseOut(1))

	gtx.Now = now.Add(50 * time.Millisecond)
	if got := anim.Value(gtx); got != 150 {
		t.Errorf("value halfway = %v, want 150", got)
	}
	if anim.Done() {
		t.Error("animation done halfway")
	}

	gtx.Now = now.Add(time.Second)
	if got := anim.Value(gtx); got != 200 {
		t.Errorf("final value = %v, want 200", got)
	}
	if !anim.Done() {
		t.Error("animation still running")
	}
}

func TestEaseOut(t *testing.T) {
	for _, power := range []int{1, 2, 3, 4} {
		ease := EaseOut(power)
		if ease(0) != 0 || ease(1) != 1 {
			t.Errorf("EaseOut(%d) doesn't map 0 to 0 and 1 to 1", power)
		}
		if power > 1 && ease(0.5) <= 0.5 {
			t.Errorf("EaseOut(%d)(0.5) = %v, want > 0.5", power, ease(0.5))
		}
	}
}
