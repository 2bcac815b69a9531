package output

import (
	"gameshelf/internal/artwork"
	"gameshelf/internal/catalog"
	"gameshelf/internal/nav"
)

// Section IDs, also used as bubblezone IDs by the TUI lists.
const (
	SectionHot     = "hot"
	SectionPopular = "popular"
)

type Section struct {
	ID          string // hot/popular
	Title       string
	Orientation Orientation
	Items       []ItemView
}

// Screen is everything the body shows for one tab.
type Screen struct {
	Tab      nav.Tab
	Sections []Section
}

// RouterConfig controls which sections a tab gets.
type RouterConfig struct {
	HotOrientation Orientation
	// GatePopular restricts Popular Games to Home. Off by default: the
	// section renders under every tab.
	GatePopular bool
}

func DefaultRouterConfig() RouterConfig {
	return RouterConfig{HotOrientation: Horizontal}
}

// Route decides the body content for tab.
// Search and Profile have no content of their own.
func Route(tab nav.Tab, set catalog.Set, cfg RouterConfig, art artwork.Resolver) Screen {
	s := Screen{Tab: tab}

	if tab == nav.Home {
		s.Sections = append(s.Sections, Section{
			ID:          SectionHot,
			Title:       "Hot Games",
			Orientation: cfg.HotOrientation,
			Items:       BuildItems(set.Hot, art),
		})
	}

	if tab == nav.Home || !cfg.GatePopular {
		s.Sections = append(s.Sections, Section{
			ID:          SectionPopular,
			Title:       "Popular Games",
			Orientation: Vertical,
			Items:       BuildItems(set.Popular, art),
		})
	}

	return s
}

func (s Screen) SectionByID(id string) *Section {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i]
		}
	}
	return nil
}
