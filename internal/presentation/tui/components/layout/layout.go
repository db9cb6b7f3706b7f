// Package layout provides the page composition component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Header string
	// Body holds the rendered visible regions from left to right.
	Body   []string
	Footer string
}

// Render stacks the header, the body regions side by side and the footer.
func Render(p Props) string {
	parts := make([]string, 0, 3)
	if p.Header != "" {
		parts = append(parts, p.Header)
	}
	body := make([]string, 0, len(p.Body))
	for _, region := range p.Body {
		if region != "" {
			body = append(body, region)
		}
	}
	if len(body) > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, body...))
	}
	if p.Footer != "" {
		parts = append(parts, p.Footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
