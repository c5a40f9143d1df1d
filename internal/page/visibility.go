package page

// Visibility thresholds and margins, in the observer's abstract units.
// The rendering surface decides how its own geometry maps onto units
// (the TUI uses UnitsPerRow).
const (
	// OneShotThreshold is the fraction of a one-shot element that must
	// enter the viewport before it becomes visible.
	OneShotThreshold = 0.2

	// BistableThreshold is the (lower) fraction used for the single
	// bistable element, so it reacts earlier in both directions.
	BistableThreshold = 0.1

	// BottomMargin shrinks the viewport's bottom edge, so elements are
	// evaluated as if the viewport ended this many units higher. The
	// effect is that entrances trigger shortly before an element would
	// actually reach the fold.
	BottomMargin = 100

	// UnitsPerRow is the conversion the terminal surface uses between
	// text rows and observer units. One row of terminal text occupies
	// roughly the height a line of rendered page text would.
	UnitsPerRow = 20
)

// Mode selects how an observed element's visible flag behaves.
type Mode int

const (
	// OneShot elements latch visible on first entry and are then
	// released from observation. The flag never reverts.
	OneShot Mode = iota

	// Bistable elements mirror their current intersection state
	// exactly, toggling in both directions.
	Bistable
)

// Bounds is a vertical extent in observer units.
type Bounds struct {
	Top    int
	Height int
}

// Change records one flag flip produced by an evaluation pass.
type Change struct {
	ID      string
	Visible bool
}

type element struct {
	mode     Mode
	bounds   Bounds
	visible  bool
	released bool
}

// Observer tracks which page elements have crossed into the viewport.
// It is single-owner state: all mutation goes through Observe,
// SetBounds, Evaluate and Apply, which the surface must call from one
// goroutine (the Bubble Tea update loop here).
//
// An observer constructed without intersection capability degrades to
// a permanent no-op: elements register fine but no flag ever becomes
// true. The page stays usable; visibility is purely cosmetic.
type Observer struct {
	elems   map[string]*element
	order   []string
	capable bool
}

// NewObserver creates an observer. capable=false produces the
// degraded observer described above.
func NewObserver(capable bool) *Observer {
	return &Observer{
		elems:   make(map[string]*element),
		capable: capable,
	}
}

// Observe registers an element under id. Re-registering an id that was
// already released (a one-shot that fired) is a no-op; re-registering
// a live id just updates its bounds and mode.
func (o *Observer) Observe(id string, mode Mode, b Bounds) {
	if e, ok := o.elems[id]; ok {
		if e.released {
			return
		}
		e.mode = mode
		e.bounds = b
		return
	}
	o.elems[id] = &element{mode: mode, bounds: b}
	o.order = append(o.order, id)
}

// SetBounds updates an element's geometry after a reflow. Unknown ids
// are ignored.
func (o *Observer) SetBounds(id string, b Bounds) {
	if e, ok := o.elems[id]; ok && !e.released {
		e.bounds = b
	}
}

// Visible reports the element's current flag. Unknown ids are false.
func (o *Observer) Visible(id string) bool {
	if e, ok := o.elems[id]; ok {
		return e.visible
	}
	return false
}

// Released reports whether a one-shot element has fired and been
// dropped from observation.
func (o *Observer) Released(id string) bool {
	if e, ok := o.elems[id]; ok {
		return e.released
	}
	return false
}

// Evaluate runs one intersection pass against the viewport
// [viewTop, viewTop+viewHeight) and applies the resulting
// intersection events. It returns the flag changes, in registration
// order, for the surface to log or react to.
func (o *Observer) Evaluate(viewTop, viewHeight int) []Change {
	if !o.capable {
		return nil
	}
	var changes []Change
	for _, id := range o.order {
		e := o.elems[id]
		if e.released {
			continue
		}
		if ch, ok := o.apply(id, e, intersects(e, viewTop, viewHeight)); ok {
			changes = append(changes, ch)
		}
	}
	return changes
}

// Apply feeds a single pre-computed intersection event for id. It is
// the same transition Evaluate uses internally and exists so tests and
// alternative surfaces can drive the observer without geometry.
func (o *Observer) Apply(id string, intersecting bool) (Change, bool) {
	if !o.capable {
		return Change{}, false
	}
	e, ok := o.elems[id]
	if !ok || e.released {
		return Change{}, false
	}
	return o.apply(id, e, intersecting)
}

func (o *Observer) apply(id string, e *element, intersecting bool) (Change, bool) {
	switch e.mode {
	case OneShot:
		if intersecting && !e.visible {
			e.visible = true
			e.released = true
			return Change{ID: id, Visible: true}, true
		}
	case Bistable:
		if e.visible != intersecting {
			e.visible = intersecting
			return Change{ID: id, Visible: intersecting}, true
		}
	}
	return Change{}, false
}

// intersects reports whether enough of the element sits inside the
// margin-adjusted viewport. Zero-height elements never intersect.
func intersects(e *element, viewTop, viewHeight int) bool {
	if e.bounds.Height <= 0 || viewHeight <= 0 {
		return false
	}
	threshold := OneShotThreshold
	if e.mode == Bistable {
		threshold = BistableThreshold
	}

	top := e.bounds.Top
	bottom := top + e.bounds.Height
	viewBottom := viewTop + viewHeight - BottomMargin
	if viewBottom <= viewTop {
		// Degenerate viewport after the margin; fall back to the real
		// bottom edge so tiny surfaces still work.
		viewBottom = viewTop + viewHeight
	}

	overlap := min(bottom, viewBottom) - max(top, viewTop)
	if overlap <= 0 {
		return false
	}
	return float64(overlap)/float64(e.bounds.Height) >= threshold
}
