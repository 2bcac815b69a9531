package output

import (
	"fmt"
	"math"
	"strings"

	"gameshelf/internal/artwork"
	"gameshelf/internal/catalog"
)

// MaxStars is the upper bound of the rating scale.
const MaxStars = 5

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "column":
		return Vertical, nil
	case "horizontal", "row":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown orientation %q", s)
}

// ItemView is one game as every front end draws it.
type ItemView struct {
	Title       string
	Stars       int
	ReleaseText string
	Genres      []string
	Art         artwork.Art
}

// StarCount rounds half up and clamps the result to [0, MaxStars]. NaN counts as zero.
func StarCount(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	if rating >= MaxStars {
		return MaxStars
	}
	return int(math.Round(rating))
}

// ReleaseText is the label shown under the rating.
func ReleaseText(date string) string {
	return "Release Date: " + date
}

// BuildItem converts a game into its item view. Art failures degrade to a placeholder.
func BuildItem(g catalog.Game, art artwork.Resolver) ItemView {
	genres := make([]string, len(g.Genres))
	copy(genres, g.Genres)

	return ItemView{
		Title:       g.Title,
		Stars:       StarCount(g.Rating),
		ReleaseText: ReleaseText(g.ReleaseDate),
		Genres:      genres,
		Art:         artwork.ResolveOrPlaceholder(art, g.Image),
	}
}

// BuildItems keeps catalog order.
func BuildItems(c catalog.Catalog, art artwork.Resolver) []ItemView {
	items := make([]ItemView, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		items = append(items, BuildItem(c.At(i), art))
	}
	return items
}
