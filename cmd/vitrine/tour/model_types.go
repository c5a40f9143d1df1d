package tour

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"vitrine/cmd/vitrine/ui"
	"vitrine/internal/content"
	"vitrine/internal/page"
)

const (
	// toastDuration is how long a toast stays on screen.
	toastDuration = 3 * time.Second

	// navScrollThreshold is the scroll depth, in observer units, past
	// which the nav bar switches to its "scrolled" treatment.
	navScrollThreshold = 50

	// scrollStepInterval paces the smooth-scroll animation.
	scrollStepInterval = 30 * time.Millisecond

	// chromeRows is the fixed vertical space around the viewport:
	// nav bar, divider and footer.
	chromeRows = 3
)

// focusZone determines where key input is routed.
type focusZone int

const (
	zonePage focusZone = iota // scrolling, carousel, CTAs
	zoneMenu                  // collapsible nav menu
	zoneForm                  // contact form inputs + submit
)

// Toast is a transient informational message. The ID fences expiry:
// a newer toast replaces an older one and the older expiry tick is
// ignored when it arrives.
type Toast struct {
	ID      uuid.UUID
	Message string
}

// sectionLayout records where a section landed in the rendered page,
// in viewport lines.
type sectionLayout struct {
	id    string
	start int
	lines int
}

// Model is the Bubble Tea model for the landing page.
type Model struct {
	doc    *content.Page
	styles ui.Styles
	keys   KeyMap

	viewport viewport.Model
	renderer *glamour.TermRenderer
	inputs   []textinput.Model // name, email, message

	carousel *page.Carousel
	observer *page.Observer
	layout   []sectionLayout

	// epoch fences carousel ticks across live reloads: a tick armed
	// for a previous page instance is discarded on arrival.
	epoch int

	width  int
	height int
	ready  bool

	focus     focusZone
	menuIndex int
	ctaIndex  int // focused hero CTA; -1 when none
	formIndex int // focused input; len(inputs) means the submit button

	scrolled     bool
	scrollTarget int // smooth-scroll destination line; -1 when idle

	toast *Toast

	reducedMotion bool
	capable       bool

	reloads    <-chan *content.Page
	reloadErrs <-chan error
}

// Options configures a new tour model.
type Options struct {
	Page          *content.Page
	Styles        ui.Styles
	ReducedMotion bool

	// Intersection reports whether the surface can observe element
	// visibility. When false the visibility system degrades to leaving
	// every section in its initial state.
	Intersection bool

	// Reloads/ReloadErrs deliver live-reloaded pages from the content
	// watcher. Nil disables live reload.
	Reloads    <-chan *content.Page
	ReloadErrs <-chan error
}

// Messages.

// rotateMsg is a carousel auto-advance tick, fenced by timer
// generation and page epoch.
type rotateMsg struct {
	epoch int
	gen   int
}

// toastExpiredMsg dismisses the toast with the matching ID.
type toastExpiredMsg struct{ id uuid.UUID }

// scrollStepMsg advances the smooth-scroll animation by one frame.
type scrollStepMsg struct{}

// reloadMsg carries a re-parsed page from the content watcher.
type reloadMsg struct{ page *content.Page }

// reloadErrMsg carries a transient reload failure.
type reloadErrMsg struct{ err error }
