// Package tour implements the interactive landing page: a scrollable
// viewport of content sections with entrance tracking, an auto-rotating
// testimonial carousel, a collapsible nav menu, toasts and a contact
// form. All state lives in the Model and mutates only inside Update.
package tour

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"vitrine/internal/content"
	"vitrine/internal/logging"
	"vitrine/internal/page"
)

// New creates the landing-page model. The page starts un-sized; the
// first WindowSizeMsg performs the initial layout.
func New(opts Options) Model {
	m := Model{
		doc:           opts.Page,
		styles:        opts.Styles,
		keys:          DefaultKeyMap(),
		viewport:      viewport.New(0, 0),
		ctaIndex:      -1,
		scrollTarget:  -1,
		reducedMotion: opts.ReducedMotion,
		capable:       opts.Intersection,
		reloads:       opts.Reloads,
		reloadErrs:    opts.ReloadErrs,
	}
	m.inputs = newFormInputs()
	m.carousel = page.NewCarousel(len(opts.Page.Testimonials))
	m.observer = page.NewObserver(opts.Intersection)
	return m
}

func newFormInputs() []textinput.Model {
	labels := []string{"Your name", "you@example.com", "How can we help?"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = label
		ti.CharLimit = 256
		ti.Width = 40
		inputs[i] = ti
	}
	return inputs
}

// Init arms the carousel timer and the live-reload listeners.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if gen, ok := m.carousel.Start(); ok {
		cmds = append(cmds, rotateCmd(m.epoch, gen))
	}
	if m.reloads != nil {
		cmds = append(cmds, m.waitForReload())
	}
	if m.reloadErrs != nil {
		cmds = append(cmds, m.waitForReloadErr())
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// COMMANDS
// =============================================================================

// rotateCmd arms one carousel tick carrying the epoch and generation
// it was armed under.
func rotateCmd(epoch, gen int) tea.Cmd {
	return tea.Tick(page.RotateInterval, func(time.Time) tea.Msg {
		return rotateMsg{epoch: epoch, gen: gen}
	})
}

// expireToastCmd arms the dismissal tick for a specific toast.
func expireToastCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// scrollStepCmd paces the smooth-scroll animation.
func scrollStepCmd() tea.Cmd {
	return tea.Tick(scrollStepInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{}
	})
}

// waitForReload listens for the next live-reloaded page.
func (m Model) waitForReload() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-m.reloads
		if !ok {
			return nil
		}
		return reloadMsg{page: p}
	}
}

// waitForReloadErr listens for the next reload failure.
func (m Model) waitForReloadErr() tea.Cmd {
	return func() tea.Msg {
		err, ok := <-m.reloadErrs
		if !ok {
			return nil
		}
		return reloadErrMsg{err: err}
	}
}

// =============================================================================
// STATE HELPERS
// =============================================================================

// showToast replaces the current toast and returns its expiry command.
func (m *Model) showToast(message string) tea.Cmd {
	t := &Toast{ID: uuid.New(), Message: message}
	m.toast = t
	return expireToastCmd(t.ID)
}

// resize applies new terminal dimensions and re-runs layout.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - chromeRows
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight

	m.renderer = nil
	if width > 4 {
		// Glamour re-wraps markdown to the new width.
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width-4),
		)
	}

	m.ready = width > 0 && height > 0
	m.refreshContent()
	m.syncScrollState()
}

// refreshContent rebuilds the rendered page, records section geometry
// and pushes the result into the viewport.
func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	body, layout := m.renderPage()
	m.layout = layout
	m.viewport.SetContent(body)

	for _, sec := range layout {
		mode := page.OneShot
		if m.sectionEntrance(sec.id) == content.EntranceBistable {
			mode = page.Bistable
		}
		bounds := page.Bounds{
			Top:    sec.start * page.UnitsPerRow,
			Height: sec.lines * page.UnitsPerRow,
		}
		m.observer.Observe(sec.id, mode, bounds)
		m.observer.SetBounds(sec.id, bounds)
	}
}

func (m *Model) sectionEntrance(id string) string {
	for _, s := range m.doc.Sections {
		if s.ID == id {
			return s.Entrance
		}
	}
	return content.EntranceOneShot
}

// syncScrollState recomputes everything derived from the scroll
// position: the nav bar treatment and section visibility.
func (m *Model) syncScrollState() {
	m.scrolled = m.viewport.YOffset*page.UnitsPerRow > navScrollThreshold

	changes := m.observer.Evaluate(
		m.viewport.YOffset*page.UnitsPerRow,
		m.viewport.Height*page.UnitsPerRow,
	)
	if len(changes) > 0 {
		log := logging.Get(logging.CategoryPage)
		for _, ch := range changes {
			log.Debugf("section %s visible=%v", ch.ID, ch.Visible)
		}
		// Entrance styling changed; re-render with the new flags.
		body, layout := m.renderPage()
		m.layout = layout
		m.viewport.SetContent(body)
	}
}

// currentSectionID returns the id of the section under the top of the
// viewport, for nav highlighting. Empty above the first section.
func (m *Model) currentSectionID() string {
	probe := m.viewport.YOffset + 2
	current := ""
	for _, sec := range m.layout {
		if sec.start <= probe {
			current = sec.id
		}
	}
	return current
}

// sectionStart returns the rendered line a section starts at.
func (m *Model) sectionStart(id string) (int, bool) {
	for _, sec := range m.layout {
		if sec.id == id {
			return sec.start, true
		}
	}
	return 0, false
}

// scrollTo starts (or, with reduced motion, skips) the smooth scroll
// towards a section. Missing targets are a guarded no-op.
func (m *Model) scrollTo(id string) tea.Cmd {
	start, ok := m.sectionStart(id)
	if !ok {
		return nil
	}
	if m.reducedMotion {
		m.viewport.SetYOffset(start)
		m.scrollTarget = -1
		m.syncScrollState()
		return nil
	}
	already := m.scrollTarget >= 0
	m.scrollTarget = start
	if already {
		// An animation frame is already in flight; retargeting is
		// enough.
		return nil
	}
	return scrollStepCmd()
}

// stepScroll advances the smooth scroll one frame. It returns the next
// frame's command, or nil once the target is reached.
func (m *Model) stepScroll() tea.Cmd {
	if m.scrollTarget < 0 {
		return nil
	}
	delta := m.scrollTarget - m.viewport.YOffset
	if delta == 0 {
		m.scrollTarget = -1
		return nil
	}
	step := delta / 4
	if step == 0 {
		if delta > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	prev := m.viewport.YOffset
	m.viewport.SetYOffset(m.viewport.YOffset + step)
	m.syncScrollState()
	if m.viewport.YOffset == m.scrollTarget || m.viewport.YOffset == prev {
		// Reached the target, or the viewport clamped and cannot get
		// any closer.
		m.scrollTarget = -1
		return nil
	}
	return scrollStepCmd()
}

// applyReload swaps in a live-reloaded page, preserving the scroll
// position and the carousel selection where they still make sense.
// Entrances replay from scratch - useful feedback while authoring.
func (m *Model) applyReload(p *content.Page) tea.Cmd {
	oldIndex := m.carousel.Index()
	m.doc = p
	m.observer = page.NewObserver(m.capable)
	m.carousel = page.NewCarousel(len(p.Testimonials))
	m.epoch++

	var cmd tea.Cmd
	if gen, ok := m.carousel.Start(); ok {
		if oldIndex > 0 && oldIndex < m.carousel.Len() {
			gen, _ = m.carousel.Select(oldIndex)
		}
		cmd = rotateCmd(m.epoch, gen)
	}

	m.refreshContent()
	m.syncScrollState()
	return cmd
}
