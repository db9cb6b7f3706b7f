// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/header"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/socialfeed/internal/presentation/tui/components/main"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/modal"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/rail"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/sidebar"
)

// Props aggregates properties for all UI components. Hidden regions have
// zero width and render nothing.
type Props struct {
	Header  header.Props
	Sidebar sidebar.Props
	Main    mainview.Props
	Rail    rail.Props
	Modal   modal.Props
	Footer  string
}

// Render renders the complete UI view based on the provided props.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	return layout.Render(layout.Props{
		Header: header.Render(p.Header),
		Body: []string{
			sidebar.Render(p.Sidebar),
			mainview.Render(p.Main),
			rail.Render(p.Rail),
		},
		Footer: p.Footer,
	})
}
