package components

import (
	"fmt"

	"gameshelf/internal/output"
	"gameshelf/ui/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minFullWidth  = 40
)

// GameList shows a window of item views and only renders the cards inside it.
type GameList struct {
	ID          string
	Items       []output.ItemView
	Orientation output.Orientation
	Offset      int
	Width       int
	Height      int

	sized bool
}

func NewGameList(id string, o output.Orientation) *GameList {
	return &GameList{ID: id, Orientation: o}
}

func (g *GameList) Init() tea.Cmd {
	return nil
}

func (g *GameList) SetItems(items []output.ItemView) {
	g.Items = items
	g.clamp()
}

func (g *GameList) SetOrientation(o output.Orientation) {
	g.Orientation = o
	g.clamp()
}

// Resize sets the box the list draws into. A zero or negative height hides it.
func (g *GameList) Resize(w, h int) {
	g.Width = w
	g.Height = h
	g.sized = true
	g.clamp()
}

// capacity is the number of whole cards the box can draw, possibly zero.
func (g *GameList) capacity() int {
	w, h := g.size()
	if g.Orientation == output.Horizontal {
		if h < CompactCardHeight {
			return 0
		}
		// a single card too wide for the box is clipped
		return max(w/CompactCardWidth, 1)
	}
	if h/FullCardHeight >= len(g.Items) {
		return h / FullCardHeight
	}
	// one line is kept for the scroll hint
	return max((h-1)/FullCardHeight, 0)
}

// Visible is the number of cards one page scrolls over. It stays at least 1
// when the box is too short to draw a card.
func (g *GameList) Visible() int {
	return max(g.capacity(), 1)
}

// Window returns the [start, end) range of items currently realised.
func (g *GameList) Window() (int, int) {
	end := g.Offset + g.Visible()
	if end > len(g.Items) {
		end = len(g.Items)
	}
	return g.Offset, end
}

func (g *GameList) ScrollBy(n int) {
	g.Offset += n
	g.clamp()
}

func (g *GameList) maxOffset() int {
	m := len(g.Items) - g.Visible()
	if m < 0 {
		return 0
	}
	return m
}

func (g *GameList) clamp() {
	if g.Offset > g.maxOffset() {
		g.Offset = g.maxOffset()
	}
	if g.Offset < 0 {
		g.Offset = 0
	}
}

func (g *GameList) size() (int, int) {
	w, h := g.Width, g.Height
	if !g.sized {
		if w <= 0 {
			w = defaultWidth
		}
		if h <= 0 {
			h = defaultHeight
		}
	}
	return max(w, 0), max(h, 0)
}

// Update scrolls on mouse wheel events that land inside the list.
func (g *GameList) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress {
		return g, nil
	}
	if z := zone.Get(g.ID); z == nil || !z.InBounds(mouse) {
		return g, nil
	}

	switch mouse.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		g.ScrollBy(-1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		g.ScrollBy(1)
	}
	return g, nil
}

// View draws the window of cards and, given a spare row, the scroll hint.
// The output never exceeds the size passed to Resize.
func (g *GameList) View() string {
	w, h := g.size()
	if w == 0 || h == 0 {
		return ""
	}
	clip := lipgloss.NewStyle().MaxWidth(w).MaxHeight(h)
	if len(g.Items) == 0 {
		return zone.Mark(g.ID, clip.Render(styles.ScrollHintStyle.Render("No games")))
	}

	start, end := g.Window()
	shown := min(g.capacity(), end-start)
	cards := make([]string, 0, shown)
	for _, it := range g.Items[start : start+shown] {
		if g.Orientation == output.Horizontal {
			cards = append(cards, RenderCompactCard(it))
		} else {
			cards = append(cards, RenderFullCard(it, max(w, minFullWidth)))
		}
	}

	var parts []string
	if shown > 0 {
		if g.Orientation == output.Horizontal {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		} else {
			parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, cards...))
		}
	}
	used := 0
	if len(parts) > 0 {
		used = lipgloss.Height(parts[0])
	}
	if len(g.Items) > shown && h > used {
		parts = append(parts, g.scrollHint(start, end))
	}
	if len(parts) == 0 {
		return ""
	}
	return zone.Mark(g.ID, clip.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}

func (g *GameList) scrollHint(start, end int) string {
	prev, next := " ", " "
	if start > 0 {
		prev = "‹"
	}
	if end < len(g.Items) {
		next = "›"
	}
	if g.Orientation == output.Vertical {
		prev, next = " ", " "
		if start > 0 {
			prev = "↑"
		}
		if end < len(g.Items) {
			next = "↓"
		}
	}
	return styles.ScrollHintStyle.Render(fmt.Sprintf("%s %d-%d of %d %s", prev, start+1, end, len(g.Items), next))
}
