// Package mainview provides the main feed column component.
package mainview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	// Pad is the left offset that centers the content box in the column.
	Pad  int
	Body string
}

// Render renders the main view component.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	pad := min(max(p.Pad, 0), p.Width)
	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		MaxHeight(p.Height).
		PaddingLeft(pad).
		Render(textutil.Fit(p.Body, p.Width-pad))
}
