// Package page holds the interactive state machines behind the landing
// page: the testimonial carousel and the scroll-visibility observer.
// Both are pure state owners - the rendering surface feeds them events
// and reads flags back; they never touch the terminal themselves.
package page

import "time"

// RotateInterval is the fixed auto-advance period for the carousel.
const RotateInterval = 5 * time.Second

// Carousel rotates through an ordered list of testimonial items.
// Exactly one item is active at any time; with zero items the carousel
// is inert and every operation is a no-op.
//
// Timer cancellation uses generation fencing: every transition that
// (re)arms the rotation timer bumps the generation, and a tick armed
// under an older generation is discarded on arrival. This gives the
// "no stale tick after a manual selection" guarantee without the
// surface having to cancel anything.
type Carousel struct {
	n     int
	index int
	gen   int
}

// NewCarousel creates a carousel over n items with item 0 active.
// n <= 0 yields an inert carousel.
func NewCarousel(n int) *Carousel {
	if n < 0 {
		n = 0
	}
	return &Carousel{n: n}
}

// Inert reports whether the carousel has no items to rotate.
func (c *Carousel) Inert() bool { return c.n == 0 }

// Len returns the number of items.
func (c *Carousel) Len() int { return c.n }

// Index returns the active item index. Meaningless while inert.
func (c *Carousel) Index() int { return c.index }

// IsActive reports whether item i is the single active item.
func (c *Carousel) IsActive(i int) bool {
	return !c.Inert() && i == c.index
}

// Generation returns the current timer generation. Ticks must carry
// the generation they were armed with.
func (c *Carousel) Generation() int { return c.gen }

// Start forces item 0 active and arms the first rotation timer.
// It returns the generation the timer must carry. ok is false for an
// inert carousel, in which case no timer may be started.
func (c *Carousel) Start() (gen int, ok bool) {
	if c.Inert() {
		return 0, false
	}
	c.index = 0
	c.gen++
	return c.gen, true
}

// Advance applies a rotation tick armed under generation gen.
// A stale or inert tick is discarded and ok is false; otherwise the
// active index wraps forward by one and the returned generation arms
// the next tick.
func (c *Carousel) Advance(gen int) (next int, ok bool) {
	if c.Inert() || gen != c.gen {
		return 0, false
	}
	c.index = (c.index + 1) % c.n
	c.gen++
	return c.gen, true
}

// Select makes item i active and restarts the rotation timer from a
// full interval. Out-of-range i (or an inert carousel) leaves state
// unchanged and returns ok false. The generation bump happens here,
// synchronously, so any tick already in flight is stale by the time
// it is applied.
func (c *Carousel) Select(i int) (gen int, ok bool) {
	if c.Inert() || i < 0 || i >= c.n {
		return 0, false
	}
	c.index = i
	c.gen++
	return c.gen, true
}
