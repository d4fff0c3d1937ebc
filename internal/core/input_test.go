package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) = false after Set")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Has(ActionFire) = true after Clear")
	}
	if !c.Has(ActionFire) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestHeldInputHoldsMovement(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		if f := h.Frame(); !f.Has(ActionLeft) {
			t.Fatalf("frame %d: ActionLeft should still be held", i)
		}
	}
	if f := h.Frame(); f.Has(ActionLeft) {
		t.Error("ActionLeft should expire after holdTicks frames")
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(ActionFire)
	h.Frame()
	h.Press(ActionFire)
	h.Frame()
	if f := h.Frame(); !f.Has(ActionFire) {
		t.Error("repeat press should refresh the hold")
	}
}

func TestHeldInputOneShot(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(ActionPause)
	h.Press(ActionNone)

	f := h.Frame()
	if !f.Has(ActionPause) {
		t.Error("ActionPause should appear in the next frame")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}
	if f := h.Frame(); f.Has(ActionPause) {
		t.Error("one-shot action should last a single frame")
	}
}

func TestHeldInputRelease(t *testing.T) {
	h := NewHeldInput(10)
	h.Press(ActionUp)
	h.Press(ActionRestart)
	h.Release()
	if f := h.Frame(); len(f.Actions) != 0 {
		t.Errorf("Frame() after Release has %d actions, expected 0", len(f.Actions))
	}
}

func TestActionHoldable(t *testing.T) {
	tests := []struct {
		a    Action
		want bool
	}{
		{ActionUp, true},
		{ActionFire, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionStart, false},
	}
	for _, tc := range tests {
		if got := tc.a.Holdable(); got != tc.want {
			t.Errorf("%s.Holdable() = %v, expected %v", tc.a, got, tc.want)
		}
	}
}
