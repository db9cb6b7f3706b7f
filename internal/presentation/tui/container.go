// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"

	"github.com/tesso57/socialfeed/internal/domain/layout"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/socialfeed/internal/presentation/tui/components/main"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/modal"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/rail"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
	"github.com/tesso57/socialfeed/internal/presentation/tui/update"
	"github.com/tesso57/socialfeed/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Header:  m.buildHeaderProps(),
		Sidebar: m.buildSidebarProps(),
		Main:    m.buildMainProps(),
		Rail:    m.buildRailProps(),
		Modal:   m.buildModalProps(),
		Footer:  update.FooterView(m.state),
	}
}

func (m *Model) buildHeaderProps() header.Props {
	st := m.state
	tier := st.Frame.Layout.Tier
	snap := st.Snapshot

	p := header.Props{
		Width:   st.Frame.Width,
		Height:  st.Frame.HeaderRows,
		Brand:   snap.Brand,
		Actions: snap.QuickActions,
		Colors:  st.Colors,
	}
	if tier >= layout.Medium {
		p.Search = st.HeaderSearch.View()
	}
	if tier >= layout.Wide {
		p.Links = snap.HeaderLinks
		p.ProfileName = snap.Profile.ShortName
	}
	return p
}

func (m *Model) buildSidebarProps() sidebar.Props {
	st := m.state
	if !st.Frame.Visible(layout.LeftNav) {
		return sidebar.Props{}
	}
	return sidebar.Props{
		View:        st.NavList.View(),
		Width:       st.Frame.LeftCols,
		Height:      st.Frame.BodyRows,
		FooterLinks: st.Snapshot.FooterLinks,
		Active:      st.Focus == state.FocusLeftNav,
		Colors:      st.Colors,
	}
}

func (m *Model) buildMainProps() mainview.Props {
	st := m.state
	var body string
	switch {
	case st.Loading:
		body = fmt.Sprintf("\n\n   %s Loading feed...", st.Spinner.View())
	case st.Err != nil:
		body = fmt.Sprintf("\n\n   Error: %v", st.Err)
	default:
		body = st.MainViewport.View()
	}
	return mainview.Props{
		Width:  st.Frame.MainCols,
		Height: st.Frame.BodyRows,
		Pad:    st.Frame.ContentPad,
		Body:   body,
	}
}

func (m *Model) buildRailProps() rail.Props {
	st := m.state
	if !st.Frame.Visible(layout.RightRail) {
		return rail.Props{}
	}
	return rail.Props{
		Width:  st.Frame.RightCols,
		Height: st.Frame.BodyRows,
		Body:   st.RailViewport.View(),
		Active: st.Focus == state.FocusRightRail,
		Colors: st.Colors,
	}
}

func (m *Model) buildModalProps() modal.Props {
	st := m.state
	if st.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   st.Width,
			Height:  st.Height,
			Border:  st.Colors.Border,
			Accent:  st.Colors.Accent,
		}
	}
	if st.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    st.Help.View(&st.Keys),
			Width:   st.Width,
			Height:  st.Height,
			Border:  st.Colors.Border,
			Accent:  st.Colors.Accent,
		}
	}
	return modal.Props{Visible: false}
}
