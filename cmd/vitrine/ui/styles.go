// Package ui provides the visual styling for the vitrine landing page.
// All animation and emphasis is expressed as style swaps; the page
// controllers only flip flags.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f7f7f5")
	LightForeground = lipgloss.Color("#1d2433")
	LightPrimary    = lipgloss.Color("#2f6fed") // Blue
	LightAccent     = lipgloss.Color("#e8590c") // Burnt orange
	LightMuted      = lipgloss.Color("#8a93a6")
	LightBorder     = lipgloss.Color("#d8dce3")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#10141c")
	DarkForeground = lipgloss.Color("#e8eaef")
	DarkPrimary    = lipgloss.Color("#6ca0ff")
	DarkAccent     = lipgloss.Color("#ff8f4d")
	DarkMuted      = lipgloss.Color("#5b6578")
	DarkBorder     = lipgloss.Color("#2a3244")
	DarkCard       = lipgloss.Color("#1a2130")

	// Semantic colors (same in both modes)
	Success = lipgloss.Color("#37b24d")
	Info    = lipgloss.Color("#1c7ed6")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeByName resolves a config theme name; "auto" detects from the
// terminal and unknown names fall back to light.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme auto-detects based on the terminal, defaulting to light.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes are
	// the common dark-terminal setups.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("VITRINE_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components of the page.
type Styles struct {
	Theme Theme

	// Chrome
	Navbar         lipgloss.Style // top bar at rest
	NavbarScrolled lipgloss.Style // top bar once the page is scrolled
	NavLink        lipgloss.Style
	NavLinkActive  lipgloss.Style
	MenuPanel      lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemFocus  lipgloss.Style
	Footer         lipgloss.Style

	// Page content
	HeroTitle     lipgloss.Style
	HeroSubtitle  lipgloss.Style
	SectionTitle  lipgloss.Style
	SectionHidden lipgloss.Style // entrance not yet triggered
	Body          lipgloss.Style
	Muted         lipgloss.Style

	// Components
	Card            lipgloss.Style
	Quote           lipgloss.Style
	QuoteAttribution lipgloss.Style
	IndicatorOn     lipgloss.Style
	IndicatorOff    lipgloss.Style
	Button          lipgloss.Style
	ButtonFocus     lipgloss.Style
	Toast           lipgloss.Style
	FormLabel       lipgloss.Style
	Divider         lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Navbar: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 2),

		NavbarScrolled: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 2).
			Bold(true),

		NavLink: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		NavLinkActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Padding(0, 1).
			Bold(true).
			Underline(true),

		MenuPanel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 2),

		MenuItem: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		MenuItemFocus: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		HeroTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		HeroSubtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginTop(1),

		SectionHidden: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Faint(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Card: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		Quote: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Italic(true).
			PaddingLeft(2).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		QuoteAttribution: lipgloss.NewStyle().
			Foreground(theme.Muted).
			PaddingLeft(2),

		IndicatorOn: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		IndicatorOff: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Button: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),

		ButtonFocus: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Bold(true),

		Toast: lipgloss.NewStyle().
			Background(theme.Foreground).
			Foreground(theme.Background).
			Padding(0, 2).
			Bold(true),

		FormLabel: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
