// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/glyph"
)

// NavRow interface for items that can be rendered by NavDelegate.
type NavRow interface {
	list.Item
	Title() string
	IsSectionHeader() bool
	IconID() social.Icon
	Badge() string
	IsActive() bool
	IsPictured() bool
}

// NavDelegate renders left navigation rows.
type NavDelegate struct {
	Styles  list.DefaultItemStyles
	Header  lipgloss.Style
	Badge   lipgloss.Style
	Focused bool
}

// NewNavDelegate creates a new NavDelegate using accent for the selection and
// muted for section titles and badges.
func NewNavDelegate(accent, muted lipgloss.Color) *NavDelegate {
	return &NavDelegate{
		Styles: navStyles(accent),
		Header: lipgloss.NewStyle().Foreground(muted).Bold(true).PaddingLeft(1),
		Badge:  lipgloss.NewStyle().Foreground(muted),
	}
}

// Height returns the height of the item.
func (d *NavDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *NavDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *NavDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *NavDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(NavRow)
	if !ok {
		return
	}

	if row.IsSectionHeader() {
		writeRow(w, m, d.Header, row.Title())
		return
	}

	marker := glyph.For(row.IconID())
	if row.IsPictured() {
		marker = social.Initials(row.Title(), 1)
	}
	text := fmt.Sprintf("%s %s", marker, row.Title())
	if badge := row.Badge(); badge != "" {
		text = fmt.Sprintf("%s %s", text, d.Badge.Render(badge))
	}

	style := d.Styles.NormalTitle
	if index == m.Index() && d.Focused {
		style = d.Styles.SelectedTitle
	} else if row.IsActive() {
		style = style.Bold(true)
	}
	writeRow(w, m, style, text)
}
