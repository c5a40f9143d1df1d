package tour

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vitrine/internal/content"
)

// View renders the full page: nav bar, optional menu panel, the
// scrolling viewport and a footer that doubles as the toast area.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	parts := []string{m.renderNavbar(), m.styles.RenderDivider(m.width)}
	vp := m.viewport
	if m.focus == zoneMenu {
		menu := m.renderMenu()
		parts = append(parts, menu)
		// The open menu borrows rows from the viewport so the frame
		// keeps fitting the terminal.
		vp.Height -= lipgloss.Height(menu)
		if vp.Height < 1 {
			vp.Height = 1
		}
	}
	parts = append(parts, vp.View(), m.renderFooter())
	return strings.Join(parts, "\n")
}

// =============================================================================
// CHROME
// =============================================================================

func (m Model) renderNavbar() string {
	bar := m.styles.Navbar
	if m.scrolled {
		bar = m.styles.NavbarScrolled
	}

	current := m.currentSectionID()
	var links []string
	for _, link := range m.doc.Nav {
		style := m.styles.NavLink
		if link.Target == current {
			style = m.styles.NavLinkActive
		}
		links = append(links, style.Render(link.Label))
	}

	left := bar.Render(m.doc.Brand)
	right := strings.Join(links, "")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderMenu() string {
	var rows []string
	for i, link := range m.doc.Nav {
		style := m.styles.MenuItem
		prefix := "  "
		if i == m.menuIndex {
			style = m.styles.MenuItemFocus
			prefix = "» "
		}
		rows = append(rows, style.Render(prefix+link.Label))
	}
	return m.styles.MenuPanel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderFooter() string {
	if m.toast != nil {
		toast := m.styles.Toast.Render(m.toast.Message)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, toast)
	}

	hints := []string{
		m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key + " scroll",
		m.keys.Menu.Help().Key + " " + m.keys.Menu.Help().Desc,
		m.keys.FocusNext.Help().Key + " " + m.keys.FocusNext.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	pct := fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100)
	line := strings.Join(hints, "  ·  ")
	gap := m.width - lipgloss.Width(line) - lipgloss.Width(pct) - 4
	if gap < 1 {
		gap = 1
	}
	return m.styles.Footer.Render(line + strings.Repeat(" ", gap) + pct)
}

// =============================================================================
// PAGE CONTENT
// =============================================================================

// renderPage builds the scrollable body and records where each section
// starts, in viewport lines.
func (m *Model) renderPage() (string, []sectionLayout) {
	var b strings.Builder
	var layout []sectionLayout
	line := 0

	write := func(block string) {
		b.WriteString(block)
		b.WriteString("\n")
		line += lipgloss.Height(block) + 1
	}

	write(m.renderHero())

	for _, s := range m.doc.Sections {
		start := line
		write(m.renderSection(s))
		layout = append(layout, sectionLayout{
			id:    s.ID,
			start: start,
			lines: line - start,
		})
	}

	write(m.styles.Muted.Render("© " + m.doc.Brand))
	return b.String(), layout
}

func (m *Model) renderHero() string {
	var rows []string
	rows = append(rows, "", m.styles.HeroTitle.Render(m.doc.Hero.Title))
	if m.doc.Hero.Subtitle != "" {
		rows = append(rows, m.styles.HeroSubtitle.Render(m.doc.Hero.Subtitle))
	}
	if m.doc.Tagline != "" {
		rows = append(rows, m.styles.Muted.Render(m.doc.Tagline))
	}
	if len(m.doc.Hero.CTAs) > 0 {
		var buttons []string
		for i, cta := range m.doc.Hero.CTAs {
			style := m.styles.Button
			if m.focus == zonePage && i == m.ctaIndex {
				style = m.styles.ButtonFocus
			}
			buttons = append(buttons, style.Render(cta.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	rows = append(rows, "")
	return strings.Join(rows, "\n")
}

func (m *Model) renderSection(s content.Section) string {
	titleStyle := m.styles.SectionTitle
	marker := "▌ "
	if !m.observer.Visible(s.ID) {
		titleStyle = m.styles.SectionHidden
		marker = "· "
	}

	var rows []string
	rows = append(rows, titleStyle.Render(marker+s.Title))

	if body := strings.TrimRight(s.Body, "\n"); body != "" {
		rows = append(rows, m.renderMarkdown(body))
	}

	switch s.Widget {
	case content.WidgetCarousel:
		rows = append(rows, m.renderCarousel())
	case content.WidgetForm:
		rows = append(rows, m.renderForm())
	}

	return strings.Join(rows, "\n")
}

func (m *Model) renderMarkdown(body string) string {
	if m.renderer != nil {
		if out, err := m.renderer.Render(body); err == nil {
			return strings.TrimRight(out, "\n")
		}
	}
	return m.styles.Body.Render(body)
}

// renderCarousel shows the single active testimonial plus one
// indicator per item, active indicator at the same position.
func (m *Model) renderCarousel() string {
	if m.carousel.Inert() {
		return m.styles.Muted.Render("(no testimonials yet)")
	}

	ts := m.doc.Testimonials[m.carousel.Index()]
	quote := m.styles.Quote.Render("“" + ts.Quote + "”")
	who := ts.Author
	if ts.Role != "" {
		who += " — " + ts.Role
	}
	card := m.styles.Card.Render(quote + "\n" + m.styles.QuoteAttribution.Render(who))

	var dots []string
	for i := 0; i < m.carousel.Len(); i++ {
		if m.carousel.IsActive(i) {
			dots = append(dots, m.styles.IndicatorOn.Render("●"))
		} else {
			dots = append(dots, m.styles.IndicatorOff.Render("○"))
		}
	}
	indicators := strings.Join(dots, " ")
	hint := m.styles.Muted.Render("←/→ browse · 1-9 jump")

	return card + "\n" + indicators + "  " + hint
}

func (m *Model) renderForm() string {
	labels := []string{"Name", "Email", "Message"}
	var rows []string
	if m.doc.Form.Heading != "" {
		rows = append(rows, m.styles.FormLabel.Render(m.doc.Form.Heading))
	}
	for i, input := range m.inputs {
		rows = append(rows, m.styles.FormLabel.Render(labels[i]), input.View())
	}

	submit := m.styles.Button
	if m.focus == zoneForm && m.formIndex == len(m.inputs) {
		submit = m.styles.ButtonFocus
	}
	rows = append(rows, submit.Render(m.doc.Form.SubmitLabel))
	return strings.Join(rows, "\n")
}
