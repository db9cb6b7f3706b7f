// Package palette resolves the configured theme into lipgloss colors.
package palette

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/application/settings"
)

// Palette is the set of colors shared by all components.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

// FromTheme builds a Palette, falling back to the default colors for empty
// entries.
func FromTheme(t settings.ThemeConfig) Palette {
	return Palette{
		Primary: color(t.Primary, "33"),
		Accent:  color(t.Accent, "205"),
		Muted:   color(t.Muted, "244"),
		Border:  color(t.Border, "63"),
	}
}

// Default returns the palette for an empty theme.
func Default() Palette {
	return FromTheme(settings.ThemeConfig{})
}

// Frame returns the border color of a region, accented when focused.
func (p Palette) Frame(focused bool) lipgloss.Color {
	if focused {
		return p.Accent
	}
	return p.Border
}

func color(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}
