package components

import (
	"strings"

	"gameshelf/internal/artwork"
	"gameshelf/internal/output"
	"gameshelf/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	StarGlyph = "★"

	// CompactCardWidth is the outer width of a card in a horizontal strip.
	CompactCardWidth = 26
	// CompactCardHeight counts border, art tile, title and rating.
	CompactCardHeight = 7
	// FullCardHeight counts border and the four text lines of a list row.
	FullCardHeight = 6

	fullArtWidth = 14
)

func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// RenderStars draws one glyph per filled star.
func RenderStars(n int) string {
	if n <= 0 {
		return ""
	}
	return styles.StarStyle.Render(strings.Repeat(StarGlyph, n))
}

// RenderChips draws one tag per genre, in order.
func RenderChips(genres []string) string {
	chips := make([]string, 0, len(genres))
	for _, g := range genres {
		chips = append(chips, styles.ChipStyle.Render(g))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// RenderArt draws the image tile. lines is the number of text lines inside the frame.
func RenderArt(a artwork.Art, width, lines int) string {
	inner := width - 2
	var text []string
	st := styles.ArtStyle
	if a.Placeholder {
		st = styles.PlaceholderStyle
		text = []string{"no image"}
	} else {
		label := a.Name
		if label == "" {
			label = a.Source
		}
		text = []string{"▣ " + label, a.Source}
	}

	for len(text) < lines {
		text = append(text, "")
	}
	text = text[:lines]
	for i := range text {
		text[i] = fit(text[i], inner)
	}
	return st.Width(inner).Render(strings.Join(text, "\n"))
}

// RenderCompactCard is the card used in horizontal strips: art, title and rating.
func RenderCompactCard(it output.ItemView) string {
	inner := CompactCardWidth - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		RenderArt(it.Art, inner, 1),
		styles.TitleStyle.Render(fit(it.Title, inner)),
		RenderStars(it.Stars),
	)
	return styles.CardStyle.Width(CompactCardWidth - 2).Render(body)
}

// RenderFullCard is the row used in vertical lists: art on the left, details on the right.
func RenderFullCard(it output.ItemView, width int) string {
	inner := width - 4
	textWidth := inner - fullArtWidth - 1
	if textWidth < 10 {
		textWidth = 10
	}

	details := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(fit(it.Title, textWidth)),
		RenderStars(it.Stars),
		fit(it.ReleaseText, textWidth),
		fit(RenderChips(it.Genres), textWidth),
	)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderArt(it.Art, fullArtWidth, 2),
		" ",
		details,
	)
	return styles.CardStyle.Width(width - 2).Render(row)
}
