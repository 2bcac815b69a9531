package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"gameshelf/internal/artwork"
	"gameshelf/internal/catalog"
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
)

// Server exposes the game shelf over MCP: catalogs, tab selection and the routed screen.
type Server struct {
	mcpServer *mcp.Server
	store     *nav.Store
	catalogs  catalog.Set
	router    output.RouterConfig
	art       artwork.Resolver
	render    func(io.Writer, output.Screen)
	logger    *slog.Logger

	// selectMu pairs each Select with the event it produced.
	selectMu    sync.Mutex
	eventMu     sync.Mutex
	lastEvent   nav.Event
	unsubscribe func()
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	Router        output.RouterConfig
	InitialTab    nav.Tab
	// Render writes the text form of a screen. Nil leaves the Text field empty.
	Render func(io.Writer, output.Screen)
	Logger *slog.Logger
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, catalogs catalog.Set, art artwork.Resolver) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if art == nil {
		art = artwork.LabelResolver{}
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		store:     nav.NewStore(cfg.InitialTab),
		catalogs:  catalogs,
		router:    cfg.Router,
		art:       art,
		render:    cfg.Render,
		logger:    logger,
	}
	s.unsubscribe = s.store.Subscribe(s.onSelect)

	s.registerTools()
	return s
}

func (s *Server) onSelect(ev nav.Event) {
	s.eventMu.Lock()
	s.lastEvent = ev
	s.eventMu.Unlock()
	s.logger.Info("tab selected", "tab", ev.Current.String(), "previous", ev.Previous.String(), "changed", ev.Changed)
}

// ListGamesArgs defines the input for list_games tool.
type ListGamesArgs struct {
	Catalog string `json:"catalog,omitempty" jsonschema:"catalog name: hot or popular (default popular)"`
}

// ListGamesResult wraps one catalog's games in order.
type ListGamesResult struct {
	Catalog string         `json:"catalog" jsonschema:"catalog name"`
	Count   int            `json:"count" jsonschema:"number of games"`
	Games   []catalog.Game `json:"games" jsonschema:"games in display order"`
}

// SelectTabArgs defines the input for select_tab tool.
type SelectTabArgs struct {
	Tab string `json:"tab" jsonschema:"tab to select: Home, Search or Profile"`
}

// SelectTabResult reports the selection event and the screen it produced.
type SelectTabResult struct {
	Previous string       `json:"previous" jsonschema:"tab selected before the call"`
	Current  string       `json:"current" jsonschema:"tab selected after the call"`
	Changed  bool         `json:"changed" jsonschema:"false when the tab was already selected"`
	Screen   ScreenResult `json:"screen" jsonschema:"screen for the selected tab"`
}

// ItemResult is one rendered card.
type ItemResult struct {
	Title       string   `json:"title"`
	Stars       int      `json:"stars" jsonschema:"filled stars, 0 to 5"`
	ReleaseText string   `json:"release_text"`
	Genres      []string `json:"genres"`
	Image       string   `json:"image,omitempty"`
	Placeholder bool     `json:"placeholder" jsonschema:"true when the image could not be resolved"`
}

type SectionResult struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Orientation string       `json:"orientation" jsonschema:"vertical or horizontal"`
	Items       []ItemResult `json:"items"`
}

// ScreenResult is the body content of the selected tab.
type ScreenResult struct {
	Tab      string          `json:"tab"`
	Sections []SectionResult `json:"sections"`
	Text     string          `json:"text,omitempty" jsonschema:"plain text rendering of the screen"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_games",
		Description: "List the games of a catalog in display order. Catalogs: hot (shown on Home only) and popular.",
	}, s.handleListGames)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "select_tab",
		Description: "Select a bottom navigation tab (Home, Search or Profile) and return the screen it shows. Selecting the active tab reports changed=false.",
	}, s.handleSelectTab)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "current_screen",
		Description: "Return the sections, cards and text rendering of the currently selected tab.",
	}, s.handleCurrentScreen)
}

func (s *Server) handleListGames(_ context.Context, _ *mcp.CallToolRequest, args ListGamesArgs) (*mcp.CallToolResult, ListGamesResult, error) {
	name := args.Catalog
	if name == "" {
		name = catalog.NamePopular
	}
	c, ok := s.catalogs.ByName(name)
	if !ok {
		return nil, ListGamesResult{}, fmt.Errorf("unknown catalog %q (must be %q or %q)", args.Catalog, catalog.NameHot, catalog.NamePopular)
	}
	games := c.Games()
	for i := range games {
		games[i].Genres = nonNil(games[i].Genres)
	}
	return nil, ListGamesResult{Catalog: c.Name(), Count: len(games), Games: games}, nil
}

func (s *Server) handleSelectTab(_ context.Context, _ *mcp.CallToolRequest, args SelectTabArgs) (*mcp.CallToolResult, SelectTabResult, error) {
	tab, err := nav.ParseTab(args.Tab)
	if err != nil {
		return nil, SelectTabResult{}, fmt.Errorf("select tab: %w", err)
	}

	s.selectMu.Lock()
	s.store.Select(tab)
	s.eventMu.Lock()
	ev := s.lastEvent
	s.eventMu.Unlock()
	s.selectMu.Unlock()

	return nil, SelectTabResult{
		Previous: ev.Previous.String(),
		Current:  ev.Current.String(),
		Changed:  ev.Changed,
		Screen:   s.screen(ev.Current),
	}, nil
}

func (s *Server) handleCurrentScreen(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ScreenResult, error) {
	return nil, s.screen(s.store.Current()), nil
}

func (s *Server) screen(tab nav.Tab) ScreenResult {
	screen := output.Route(tab, s.catalogs, s.router, s.art)

	res := ScreenResult{Tab: tab.String(), Sections: make([]SectionResult, 0, len(screen.Sections))}
	for _, sec := range screen.Sections {
		sr := SectionResult{
			ID:          sec.ID,
			Title:       sec.Title,
			Orientation: sec.Orientation.String(),
			Items:       make([]ItemResult, 0, len(sec.Items)),
		}
		for _, it := range sec.Items {
			sr.Items = append(sr.Items, ItemResult{
				Title:       it.Title,
				Stars:       it.Stars,
				ReleaseText: it.ReleaseText,
				Genres:      nonNil(it.Genres),
				Image:       it.Art.Ref,
				Placeholder: it.Art.Placeholder,
			})
		}
		res.Sections = append(res.Sections, sr)
	}

	if s.render != nil {
		var buf bytes.Buffer
		s.render(&buf, screen)
		res.Text = buf.String()
	}
	return res
}

// nonNil keeps empty lists encoded as [] so output validates against the schema.
func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	return s.Serve(ctx, &mcp.StdioTransport{})
}

// Serve runs the server on t until the client disconnects or ctx is done.
func (s *Server) Serve(ctx context.Context, t mcp.Transport) error {
	return s.mcpServer.Run(ctx, t)
}

// Close stops listening to tab selections.
func (s *Server) Close() error {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	return nil
}
