package page

import "testing"

func TestCarouselStartActivatesFirstItem(t *testing.T) {
	t.Parallel()
	c := NewCarousel(4)

	gen, ok := c.Start()
	if !ok {
		t.Fatalf("Start on non-empty carousel must arm a timer")
	}
	if gen != c.Generation() {
		t.Errorf("Start returned gen %d, carousel reports %d", gen, c.Generation())
	}
	if c.Index() != 0 {
		t.Errorf("expected index 0 after start, got %d", c.Index())
	}
	for i := 0; i < c.Len(); i++ {
		if c.IsActive(i) != (i == 0) {
			t.Errorf("item %d active=%v, want %v", i, c.IsActive(i), i == 0)
		}
	}
}

func TestCarouselTickCycle(t *testing.T) {
	t.Parallel()
	const n = 5
	c := NewCarousel(n)
	gen, _ := c.Start()

	// Each tick moves forward by exactly one; n ticks return to start.
	for step := 1; step <= n; step++ {
		next, ok := c.Advance(gen)
		if !ok {
			t.Fatalf("tick %d with current generation must apply", step)
		}
		if want := step % n; c.Index() != want {
			t.Fatalf("after %d ticks index = %d, want %d", step, c.Index(), want)
		}
		gen = next
	}
	if c.Index() != 0 {
		t.Errorf("after %d ticks index = %d, want 0 (cycle property)", n, c.Index())
	}
}

func TestCarouselStaleTickDiscarded(t *testing.T) {
	t.Parallel()
	c := NewCarousel(3)
	staleGen, _ := c.Start()

	// A manual selection bumps the generation synchronously...
	if _, ok := c.Select(2); !ok {
		t.Fatalf("Select(2) must succeed")
	}
	// ...so the tick armed before the selection no longer applies.
	if _, ok := c.Advance(staleGen); ok {
		t.Fatalf("stale tick must be discarded after Select")
	}
	if c.Index() != 2 {
		t.Errorf("stale tick mutated state: index = %d, want 2", c.Index())
	}
}

func TestCarouselSelectOutOfRange(t *testing.T) {
	t.Parallel()
	c := NewCarousel(3)
	gen, _ := c.Start()

	for _, i := range []int{-1, 3, 99} {
		if _, ok := c.Select(i); ok {
			t.Errorf("Select(%d) must be rejected", i)
		}
	}
	if c.Index() != 0 {
		t.Errorf("rejected selections mutated index: got %d, want 0", c.Index())
	}
	if c.Generation() != gen {
		t.Errorf("rejected selections bumped generation: got %d, want %d", c.Generation(), gen)
	}
}

func TestCarouselSelectThenWrap(t *testing.T) {
	t.Parallel()
	c := NewCarousel(3)
	c.Start()

	gen, ok := c.Select(2)
	if !ok {
		t.Fatalf("Select(2) must succeed")
	}
	for i := 0; i < 3; i++ {
		if c.IsActive(i) != (i == 2) {
			t.Errorf("after Select(2): item %d active=%v, want %v", i, c.IsActive(i), i == 2)
		}
	}

	// The next full interval elapses: index wraps 2 -> 0.
	if _, ok := c.Advance(gen); !ok {
		t.Fatalf("fresh tick after Select must apply")
	}
	if c.Index() != 0 {
		t.Errorf("wrap-around failed: index = %d, want 0", c.Index())
	}
}

func TestCarouselInert(t *testing.T) {
	t.Parallel()
	for _, n := range []int{0, -2} {
		c := NewCarousel(n)
		if !c.Inert() {
			t.Fatalf("NewCarousel(%d) must be inert", n)
		}
		if _, ok := c.Start(); ok {
			t.Errorf("inert carousel must never start a timer")
		}
		if _, ok := c.Select(0); ok {
			t.Errorf("Select on inert carousel must be a no-op")
		}
		if _, ok := c.Advance(0); ok {
			t.Errorf("Advance on inert carousel must be a no-op")
		}
		if c.IsActive(0) {
			t.Errorf("inert carousel must never mark an item active")
		}
	}
}
