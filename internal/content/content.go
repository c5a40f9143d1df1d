// Package content defines the landing-page content model and its YAML
// loader. Content is pure data: the tour surface decides how to render
// it and the page controllers decide how it behaves.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Entrance modes accepted in section definitions.
const (
	EntranceOneShot  = "one-shot"
	EntranceBistable = "bistable"
)

// Widgets a section can host.
const (
	WidgetCarousel = "carousel"
	WidgetForm     = "form"
)

// Page is the root of a landing-page definition.
type Page struct {
	Brand   string `yaml:"brand"`
	Tagline string `yaml:"tagline,omitempty"`

	Nav          []NavLink     `yaml:"nav,omitempty"`
	Hero         Hero          `yaml:"hero"`
	Sections     []Section     `yaml:"sections,omitempty"`
	Testimonials []Testimonial `yaml:"testimonials,omitempty"`
	Form         Form          `yaml:"form,omitempty"`
}

// NavLink is one entry in the navigation menu.
type NavLink struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"` // section id to scroll to
}

// Hero is the top-of-page banner.
type Hero struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
	CTAs     []CTA  `yaml:"ctas,omitempty"`
}

// CTA is a call-to-action button. Activating it raises a toast.
type CTA struct {
	Label string `yaml:"label"`
	Toast string `yaml:"toast"`
}

// Section is one scrollable page section with a markdown body and an
// optional hosted widget (the testimonial carousel or the contact
// form).
type Section struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body,omitempty"` // markdown
	Entrance string `yaml:"entrance,omitempty"`
	Widget   string `yaml:"widget,omitempty"`
}

// Testimonial is one carousel entry.
type Testimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role,omitempty"`
}

// Form describes the contact form at the bottom of the page.
type Form struct {
	Heading     string `yaml:"heading,omitempty"`
	SubmitLabel string `yaml:"submit_label,omitempty"`
	Toast       string `yaml:"toast,omitempty"`
}

// Default returns the built-in sample page, so the binary runs with no
// arguments. Panics only if the embedded file is broken, which a test
// pins down.
func Default() *Page {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default page invalid: %v", err))
	}
	return p
}

// Load reads and validates a page definition from path.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML page definition.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks cross-references and fills defaulted fields.
func (p *Page) Validate() error {
	if strings.TrimSpace(p.Brand) == "" {
		return fmt.Errorf("brand is required")
	}
	if strings.TrimSpace(p.Hero.Title) == "" {
		return fmt.Errorf("hero.title is required")
	}

	ids := make(map[string]bool, len(p.Sections))
	widgets := make(map[string]bool, 2)
	bistable := 0
	for i := range p.Sections {
		s := &p.Sections[i]
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("sections[%d]: id is required", i)
		}
		if ids[s.ID] {
			return fmt.Errorf("sections[%d]: duplicate id %q", i, s.ID)
		}
		ids[s.ID] = true

		switch s.Entrance {
		case "":
			s.Entrance = EntranceOneShot
		case EntranceOneShot:
		case EntranceBistable:
			bistable++
		default:
			return fmt.Errorf("sections[%d] (%s): unknown entrance %q", i, s.ID, s.Entrance)
		}

		switch s.Widget {
		case "", WidgetCarousel, WidgetForm:
			if s.Widget != "" {
				if widgets[s.Widget] {
					return fmt.Errorf("sections[%d] (%s): widget %q already placed", i, s.ID, s.Widget)
				}
				widgets[s.Widget] = true
			}
		default:
			return fmt.Errorf("sections[%d] (%s): unknown widget %q", i, s.ID, s.Widget)
		}
	}
	if bistable > 1 {
		return fmt.Errorf("at most one section may use entrance %q", EntranceBistable)
	}

	for i, link := range p.Nav {
		if strings.TrimSpace(link.Label) == "" {
			return fmt.Errorf("nav[%d]: label is required", i)
		}
		if !ids[link.Target] {
			return fmt.Errorf("nav[%d] (%s): unknown target section %q", i, link.Label, link.Target)
		}
	}

	for i, ts := range p.Testimonials {
		if strings.TrimSpace(ts.Quote) == "" || strings.TrimSpace(ts.Author) == "" {
			return fmt.Errorf("testimonials[%d]: quote and author are required", i)
		}
	}

	for i, cta := range p.Hero.CTAs {
		if strings.TrimSpace(cta.Label) == "" {
			return fmt.Errorf("hero.ctas[%d]: label is required", i)
		}
		if strings.TrimSpace(cta.Toast) == "" {
			return fmt.Errorf("hero.ctas[%d] (%s): toast message is required", i, cta.Label)
		}
	}

	if p.Form.SubmitLabel == "" {
		p.Form.SubmitLabel = "Send Message"
	}
	if p.Form.Toast == "" {
		p.Form.Toast = "Thanks! We'll be in touch."
	}
	return nil
}
