package animations

import (
	"testing"
	"time"
)

func TestRepeatTimer_FiresOncePerTick(t *testing.T) {
	timer := newRepeatTimer(100 * time.Millisecond)

	if timer.tick(0) {
		t.Error("Expected zero delta not to fire")
	}
	if timer.tick(50 * time.Millisecond) {
		t.Error("Expected half a period not to fire")
	}
	if !timer.tick(50 * time.Millisecond) {
		t.Error("Expected a full period to fire")
	}
	if !timer.tick(time.Second) {
		t.Error("Expected ten periods to fire")
	}
	if timer.elapsed != 0 {
		t.Errorf("Expected elapsed = 0 after exact multiple, got %v", timer.elapsed)
	}
}

func TestRepeatTimer_CarriesRemainder(t *testing.T) {
	timer := newRepeatTimer(100 * time.Millisecond)

	if !timer.tick(130 * time.Millisecond) {
		t.Fatal("Expected first tick to fire")
	}
	if timer.elapsed != 30*time.Millisecond {
		t.Errorf("Expected elapsed = 30ms, got %v", timer.elapsed)
	}
	if !timer.tick(70 * time.Millisecond) {
		t.Error("Expected carried remainder to complete the next period")
	}
}

func TestOnceTimer(t *testing.T) {
	timer := newOnceTimer(2 * time.Second)

	if timer.tick(-time.Second) {
		t.Error("Expected negative delta not to fire")
	}
	if timer.tick(time.Second) {
		t.Error("Expected not finished after 1s")
	}
	if timer.remaining() != time.Second {
		t.Errorf("Expected remaining = 1s, got %v", timer.remaining())
	}
	if !timer.tick(5 * time.Second) {
		t.Error("Expected to fire when crossing the duration")
	}
	if timer.remaining() != 0 {
		t.Errorf("Expected remaining clamped to 0, got %v", timer.remaining())
	}
	if timer.tick(time.Second) {
		t.Error("Expected a finished timer never to fire again")
	}
}
