package tour

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vitrine/internal/logging"
)

// Update is the single owner of all page state transitions.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case rotateMsg:
		return m.handleRotate(msg)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.id {
			m.toast = nil
		}
		return m, nil

	case scrollStepMsg:
		cmd := m.stepScroll()
		return m, cmd

	case reloadMsg:
		cmds := []tea.Cmd{
			m.applyReload(msg.page),
			m.showToast("Content reloaded"),
		}
		if m.reloads != nil {
			cmds = append(cmds, m.waitForReload())
		}
		return m, tea.Batch(cmds...)

	case reloadErrMsg:
		logging.Get(logging.CategoryContent).Warnf("reload failed: %v", msg.err)
		cmds := []tea.Cmd{m.showToast("Content file has errors, keeping last good page")}
		if m.reloadErrs != nil {
			cmds = append(cmds, m.waitForReloadErr())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleRotate applies a carousel auto-advance tick. Ticks from a
// previous page epoch or an out-of-date timer generation are dropped.
func (m Model) handleRotate(msg rotateMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.epoch {
		return m, nil
	}
	next, ok := m.carousel.Advance(msg.gen)
	if !ok {
		return m, nil
	}
	m.refreshContent()
	return m, rotateCmd(m.epoch, next)
}

// handleKey routes key input by focus zone.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C quits from anywhere, even mid-typing.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case zoneMenu:
		return m.handleMenuKey(msg)
	case zoneForm:
		return m.handleFormKey(msg)
	default:
		return m.handlePageKey(msg)
	}
}

// =============================================================================
// PAGE ZONE
// =============================================================================

func (m Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu):
		m.focus = zoneMenu
		m.menuIndex = 0
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.manualScroll(func() { m.viewport.LineUp(1) })
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.manualScroll(func() { m.viewport.LineDown(1) })
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.manualScroll(func() { m.viewport.ViewUp() })
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.manualScroll(func() { m.viewport.ViewDown() })
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.manualScroll(func() { m.viewport.GotoTop() })
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.manualScroll(func() { m.viewport.GotoBottom() })
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		i := m.carousel.Index() - 1
		if i < 0 {
			i = m.carousel.Len() - 1 // wrap to the last item
		}
		return m.selectTestimonial(i)

	case key.Matches(msg, m.keys.Next):
		i := m.carousel.Index() + 1
		if n := m.carousel.Len(); n > 0 && i >= n {
			i = 0 // wrap to the first item
		}
		return m.selectTestimonial(i)

	case key.Matches(msg, m.keys.FocusNext):
		m.cycleFocus(1)
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		m.cycleFocus(-1)
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		m.ctaIndex = -1
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.ctaIndex >= 0 && m.ctaIndex < len(m.doc.Hero.CTAs) {
			cta := m.doc.Hero.CTAs[m.ctaIndex]
			logging.Get(logging.CategoryUI).Infof("cta activated: %s", cta.Label)
			return m, m.showToast(cta.Toast)
		}
		return m, nil
	}

	// Number keys jump straight to a testimonial.
	if s := msg.String(); len(s) == 1 && s >= "1" && s <= "9" {
		return m.selectTestimonial(int(s[0] - '1'))
	}

	return m, nil
}

// manualScroll wraps a viewport movement: it cancels any in-flight
// smooth scroll and re-derives scroll-dependent state.
func (m *Model) manualScroll(move func()) {
	m.scrollTarget = -1
	move()
	m.syncScrollState()
}

// selectTestimonial applies a manual carousel selection. Out-of-range
// indices (number keys past the end, or anything while inert) are
// dropped by the carousel itself.
func (m Model) selectTestimonial(i int) (tea.Model, tea.Cmd) {
	gen, ok := m.carousel.Select(i)
	if !ok {
		return m, nil
	}
	m.refreshContent()
	return m, rotateCmd(m.epoch, gen)
}

// cycleFocus moves the page-zone focus ring: plain page → each hero
// CTA → the contact form.
func (m *Model) cycleFocus(dir int) {
	ctas := len(m.doc.Hero.CTAs)
	// Ring positions: -1 = plain page, 0..ctas-1 = CTA, ctas = form.
	pos := m.ctaIndex
	pos += dir
	switch {
	case pos < -1:
		pos = ctas
	case pos > ctas:
		pos = -1
	}
	if pos == ctas {
		m.ctaIndex = -1
		m.enterForm(0)
		return
	}
	m.ctaIndex = pos
}

// =============================================================================
// MENU ZONE
// =============================================================================

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Back):
		m.focus = zonePage
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.menuIndex < len(m.doc.Nav)-1 {
			m.menuIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.focus = zonePage
		if m.menuIndex >= 0 && m.menuIndex < len(m.doc.Nav) {
			// Selecting an entry closes the menu and glides to the
			// section.
			return m, m.scrollTo(m.doc.Nav[m.menuIndex].Target)
		}
		return m, nil
	}
	return m, nil
}

// =============================================================================
// FORM ZONE
// =============================================================================

// enterForm focuses the contact form at input i.
func (m *Model) enterForm(i int) {
	m.focus = zoneForm
	m.formIndex = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// leaveForm blurs everything and returns focus to the page.
func (m *Model) leaveForm() {
	m.focus = zonePage
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onSubmit := m.formIndex == len(m.inputs)

	switch {
	case key.Matches(msg, m.keys.Back):
		m.leaveForm()
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.FocusNext):
		if onSubmit {
			m.leaveForm()
		} else {
			m.enterForm(m.formIndex + 1)
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.FocusPrev):
		if m.formIndex == 0 {
			m.leaveForm()
			m.ctaIndex = len(m.doc.Hero.CTAs) - 1
		} else {
			m.enterForm(m.formIndex - 1)
		}
		m.refreshContent()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if onSubmit {
			return m.submitForm()
		}
		// Enter inside an input advances towards the submit button.
		m.enterForm(m.formIndex + 1)
		m.refreshContent()
		return m, nil
	}

	if onSubmit {
		return m, nil
	}

	// Everything else is typing.
	var cmd tea.Cmd
	m.inputs[m.formIndex], cmd = m.inputs[m.formIndex].Update(msg)
	m.refreshContent()
	return m, cmd
}

// submitForm raises the thank-you toast and resets the form. There is
// no backend; submission is purely presentational.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	filled := 0
	for i := range m.inputs {
		if strings.TrimSpace(m.inputs[i].Value()) != "" {
			filled++
		}
	}
	if filled == 0 {
		return m, m.showToast("Fill in the form first")
	}

	logging.Get(logging.CategoryUI).Infof("form submitted (%d/%d fields)", filled, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.leaveForm()
	m.refreshContent()
	return m, m.showToast(m.doc.Form.Toast)
}
