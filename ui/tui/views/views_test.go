package views

import (
	"os"
	"strings"
	"testing"

	"gameshelf/internal/nav"
	"gameshelf/internal/output"
	"gameshelf/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestTabZoneID(t *testing.T) {
	tests := []struct {
		tab  nav.Tab
		want string
	}{
		{nav.Home, "tab_home"},
		{nav.Search, "tab_search"},
		{nav.Profile, "tab_profile"},
	}
	for _, tt := range tests {
		if got := TabZoneID(tt.tab); got != tt.want {
			t.Errorf("TabZoneID(%v) = %q, want %q", tt.tab, got, tt.want)
		}
	}
}

func TestTabBarListsEveryTab(t *testing.T) {
	bar := zone.Scan(TabBarView{}.Render(state.AppState{Tab: nav.Search}, ViewProps{Width: 60}))

	home := strings.Index(bar, "Home")
	search := strings.Index(bar, "Search")
	profile := strings.Index(bar, "Profile")
	if home < 0 || search < 0 || profile < 0 {
		t.Fatalf("Expected all tab labels, got %q", bar)
	}
	if !(home < search && search < profile) {
		t.Error("Expected tabs in Home, Search, Profile order")
	}
}

func TestScreenViewHome(t *testing.T) {
	s := state.AppState{
		Tab: nav.Home,
		Screen: output.Screen{
			Tab: nav.Home,
			Sections: []output.Section{
				{ID: output.SectionHot, Title: "Hot Games", Orientation: output.Horizontal},
				{ID: output.SectionPopular, Title: "Popular Games", Orientation: output.Vertical},
			},
		},
	}
	out := RenderScreen(s, 80, 30, map[string]string{
		output.SectionHot:     "HOT-LIST",
		output.SectionPopular: "POPULAR-LIST",
	}, "help")

	hot := strings.Index(out, "Hot Games")
	popular := strings.Index(out, "Popular Games")
	if hot < 0 || popular < 0 || hot > popular {
		t.Errorf("Expected Hot Games above Popular Games, got %q", out)
	}
	if !strings.Contains(out, "HOT-LIST") || !strings.Contains(out, "POPULAR-LIST") {
		t.Error("Expected list bodies in screen")
	}
	if h := lipgloss.Height(out); h != 30 {
		t.Errorf("Expected screen height 30, got %d", h)
	}
}

func TestScreenViewEmptyBody(t *testing.T) {
	s := state.AppState{Tab: nav.Profile, Screen: output.Screen{Tab: nav.Profile}}
	out := RenderScreen(s, 80, 20, nil, "")

	if strings.Contains(out, "Games") {
		t.Errorf("Expected no sections, got %q", out)
	}
	if !strings.Contains(out, "Profile") {
		t.Error("Expected tab bar on an empty screen")
	}
	if h := lipgloss.Height(out); h != 20 {
		t.Errorf("Expected screen height 20, got %d", h)
	}
}

func TestRenderHeaderWidth(t *testing.T) {
	if w := lipgloss.Width(RenderHeader("Hot Games", 50)); w != 50 {
		t.Errorf("Expected header width 50, got %d", w)
	}
}
