package views

import (
	"gameshelf/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ScreenView lays out the routed sections above the tab bar.
type ScreenView struct{}

func (v ScreenView) Render(s state.AppState, props ViewProps) string {
	var parts []string
	for _, sec := range s.Screen.Sections {
		parts = append(parts,
			RenderHeader(sec.Title, props.Width),
			props.Lists[sec.ID],
		)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	tabBar := TabBarView{}.Render(s, props)

	// Keep the tab bar pinned to the bottom edge. Lists already fit their
	// rows, so the cut only reaches headers on very short terminals.
	if props.Height > 0 {
		bodyHeight := props.Height - lipgloss.Height(tabBar)
		if props.HelpView != "" {
			bodyHeight -= lipgloss.Height(props.HelpView)
		}
		if bodyHeight > 0 {
			body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
		}
	}

	out := []string{body, tabBar}
	if props.HelpView != "" {
		out = append(out, lipgloss.NewStyle().PaddingLeft(1).Render(props.HelpView))
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, out...))
}
