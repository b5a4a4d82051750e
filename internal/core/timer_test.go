package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacesTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(10, clock.now)

	if !fs.ShouldStep() {
		t.Fatal("expected the first call to grant a tick")
	}
	clock.advance(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("expected no tick after half a step")
	}
	clock.advance(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("expected a tick after a full step elapsed")
	}
}

func TestFixedStepDoesNotBurstAfterStall(t *testing.T) {
	clock := &fakeClock{t: time.Unix(100, 0)}
	fs := newFixedStepWithClock(10, clock.now)
	fs.ShouldStep()

	clock.advance(5 * time.Second)
	granted := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			granted++
		}
	}
	if granted > 2 {
		t.Fatalf("expected stall to be absorbed, got %d ticks granted", granted)
	}
}

func TestFixedStepTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if got := fs.TPS(); got != 60 {
		t.Fatalf("expected default tps 60, got %d", got)
	}
	fs.SetTPS(25)
	if got := fs.TPS(); got != 25 {
		t.Fatalf("expected tps 25, got %d", got)
	}
}
