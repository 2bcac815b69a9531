// Package catalog loads the static game catalogs shown on the home screen.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog names used by the router and the MCP tools.
const (
	NameHot     = "hot"
	NamePopular = "popular"
)

//go:embed games.yaml
var embeddedGames []byte

var ErrEmptyTitle = errors.New("game title must not be empty")

// ErrEmptyCatalog is reported by Watch when a reload finds no games at all.
var ErrEmptyCatalog = errors.New("catalog file has no games")

// Game describes one game's display attributes. Rating is not range checked.
type Game struct {
	Title       string   `yaml:"title" json:"title"`
	Rating      float64  `yaml:"rating" json:"rating"`
	Image       string   `yaml:"image" json:"image"`
	ReleaseDate string   `yaml:"release_date" json:"release_date"`
	Genres      []string `yaml:"genres" json:"genres"`
}

func (g Game) clone() Game {
	if g.Genres != nil {
		g.Genres = append([]string(nil), g.Genres...)
	}
	return g
}

// Catalog is a named, ordered and immutable sequence of games.
type Catalog struct {
	name  string
	games []Game
}

// New copies games into a catalog. Later changes to the input do not leak in.
func New(name string, games []Game) Catalog {
	c := Catalog{name: name, games: make([]Game, len(games))}
	for i, g := range games {
		c.games[i] = g.clone()
	}
	return c
}

func (c Catalog) Name() string { return c.name }

func (c Catalog) Len() int { return len(c.games) }

// At returns a copy of the i-th game.
func (c Catalog) At(i int) Game { return c.games[i].clone() }

// Games returns a copy of every game in display order.
func (c Catalog) Games() []Game {
	out := make([]Game, len(c.games))
	for i, g := range c.games {
		out[i] = g.clone()
	}
	return out
}

// Set bundles the two catalogs the screen needs.
type Set struct {
	Hot     Catalog
	Popular Catalog
}

// ByName returns the catalog registered under name.
func (s Set) ByName(name string) (Catalog, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameHot:
		return s.Hot, true
	case NamePopular:
		return s.Popular, true
	}
	return Catalog{}, false
}

type fileFormat struct {
	Hot     []Game `yaml:"hot"`
	Popular []Game `yaml:"popular"`
}

// Load decodes a YAML catalog file with top-level "hot" and "popular" lists.
func Load(r io.Reader) (Set, error) {
	var f fileFormat
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate(NameHot, f.Hot); err != nil {
		return Set{}, err
	}
	if err := validate(NamePopular, f.Popular); err != nil {
		return Set{}, err
	}
	return Set{
		Hot:     New(NameHot, f.Hot),
		Popular: New(NamePopular, f.Popular),
	}, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open catalog: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

// Default returns the catalogs compiled into the binary.
func Default() (Set, error) {
	return Load(bytes.NewReader(embeddedGames))
}

// Resolve loads path, or the embedded catalogs when path is empty.
func Resolve(path string) (Set, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

func validate(name string, games []Game) error {
	for i, g := range games {
		if strings.TrimSpace(g.Title) == "" {
			return fmt.Errorf("%s[%d]: %w", name, i, ErrEmptyTitle)
		}
	}
	return nil
}
