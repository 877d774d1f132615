package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(4)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step")
	}
	clock = clock.Add(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("100ms is below the 250ms step")
	}
	clock = clock.Add(150 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("250ms elapsed, should step")
	}
}

func TestFixedStepResetDropsBacklog(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	fs.Reset()
	clock = clock.Add(5 * time.Second)
	if fs.ShouldStep() {
		t.Fatal("time spent paused must not count after Reset")
	}
}

func TestFixedStepTPSDefault(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != defaultTPS {
		t.Fatalf("TPS() = %d, want %d", fs.TPS(), defaultTPS)
	}
	fs.SetTPS(20)
	if fs.TPS() != 20 {
		t.Fatalf("TPS() = %d, want 20", fs.TPS())
	}
}
