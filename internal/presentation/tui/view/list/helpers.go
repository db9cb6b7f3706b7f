package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// navStyles pads every title state so badges never touch the sidebar border.
func navStyles(accent lipgloss.Color) list.DefaultItemStyles {
	s := list.NewDefaultItemStyles()
	pad := func(st lipgloss.Style) lipgloss.Style { return st.PaddingRight(metrics.ItemRightPadding) }
	s.NormalTitle = pad(s.NormalTitle)
	s.DimmedTitle = pad(s.DimmedTitle)
	s.SelectedTitle = pad(s.SelectedTitle).Foreground(accent).BorderForeground(accent)
	return s
}

// writeRow renders one nav row clipped to the list width.
func writeRow(w io.Writer, m list.Model, style lipgloss.Style, text string) {
	room := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	_, _ = io.WriteString(w, style.Render(textutil.Truncate(text, room)))
}
