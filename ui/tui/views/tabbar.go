package views

import (
	"strings"

	"gameshelf/internal/nav"
	"gameshelf/ui/tui/state"
	"gameshelf/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

var tabGlyphs = map[nav.Tab]string{
	nav.Home:    "⌂",
	nav.Search:  "⌕",
	nav.Profile: "☺",
}

// TabZoneID is the bubblezone ID of a tab bar entry.
func TabZoneID(t nav.Tab) string {
	return "tab_" + strings.ToLower(t.String())
}

func TabLabel(t nav.Tab) string {
	return tabGlyphs[t] + " " + t.String()
}

// TabBarView is the bottom navigation bar.
type TabBarView struct{}

func (v TabBarView) Render(s state.AppState, props ViewProps) string {
	entries := make([]string, 0, len(nav.Tabs()))
	for _, t := range nav.Tabs() {
		st := styles.TabStyle
		if t == s.Tab {
			st = styles.ActiveTabStyle
		}
		entries = append(entries, zone.Mark(TabZoneID(t), st.Render(TabLabel(t))))
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, entries...)
	if props.Width > 0 {
		bar = lipgloss.PlaceHorizontal(props.Width, lipgloss.Center, bar)
	}
	return styles.TabBarStyle.Render(bar)
}
