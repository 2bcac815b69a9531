package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"gameshelf/internal/artwork"
	"gameshelf/internal/catalog"
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	set, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	if cfg.ServerName == "" {
		cfg.ServerName = "gameshelf-test"
		cfg.ServerVersion = "0.0.0"
		cfg.Router = output.DefaultRouterConfig()
	}
	s := NewServer(cfg, set, artwork.LabelResolver{})
	t.Cleanup(func() { s.Close() })
	return s
}

// fakeRender records every screen it is asked to draw.
type fakeRender struct {
	screens []output.Screen
}

func (f *fakeRender) render(w io.Writer, s output.Screen) {
	f.screens = append(f.screens, s)
	fmt.Fprintf(w, "screen:%s sections:%d", s.Tab, len(s.Sections))
}

func TestHandleListGames(t *testing.T) {
	s := newTestServer(t, Config{})
	ctx := context.Background()

	tests := []struct {
		catalog string
		want    string
		count   int
		first   string
	}{
		{"hot", catalog.NameHot, 8, ""},
		{"popular", catalog.NamePopular, 6, "Red Dead Redemption 2"},
		{"", catalog.NamePopular, 6, "Red Dead Redemption 2"},
		{"HOT", catalog.NameHot, 8, ""},
	}

	for _, tt := range tests {
		_, result, err := s.handleListGames(ctx, nil, ListGamesArgs{Catalog: tt.catalog})
		if err != nil {
			t.Fatalf("list_games(%q): %v", tt.catalog, err)
		}
		if result.Catalog != tt.want || result.Count != tt.count || len(result.Games) != tt.count {
			t.Errorf("list_games(%q) = %s/%d, want %s/%d", tt.catalog, result.Catalog, result.Count, tt.want, tt.count)
		}
		if tt.first != "" && result.Games[0].Title != tt.first {
			t.Errorf("Expected first game %q, got %q", tt.first, result.Games[0].Title)
		}
	}
}

func TestHandleListGames_Unknown(t *testing.T) {
	s := newTestServer(t, Config{})
	_, _, err := s.handleListGames(context.Background(), nil, ListGamesArgs{Catalog: "upcoming"})
	if err == nil {
		t.Fatal("Expected error for unknown catalog")
	}
}

func TestHandleSelectTab(t *testing.T) {
	s := newTestServer(t, Config{})
	ctx := context.Background()

	_, result, err := s.handleSelectTab(ctx, nil, SelectTabArgs{Tab: "search"})
	if err != nil {
		t.Fatalf("select_tab: %v", err)
	}
	if result.Previous != "Home" || result.Current != "Search" || !result.Changed {
		t.Errorf("Unexpected event: %+v", result)
	}
	if len(result.Screen.Sections) != 1 || result.Screen.Sections[0].Title != "Popular Games" {
		t.Errorf("Expected only Popular Games on Search, got %+v", result.Screen.Sections)
	}

	_, again, err := s.handleSelectTab(ctx, nil, SelectTabArgs{Tab: "Search"})
	if err != nil {
		t.Fatalf("select_tab: %v", err)
	}
	if again.Changed {
		t.Error("Re-selecting the active tab should report changed=false")
	}
	if s.store.Current() != nav.Search {
		t.Errorf("Expected store on Search, got %v", s.store.Current())
	}
}

func TestHandleSelectTab_Invalid(t *testing.T) {
	s := newTestServer(t, Config{})
	_, _, err := s.handleSelectTab(context.Background(), nil, SelectTabArgs{Tab: "Settings"})
	if !errors.Is(err, nav.ErrUnknownTab) {
		t.Fatalf("Expected ErrUnknownTab, got %v", err)
	}
	if s.store.Current() != nav.Home {
		t.Errorf("Invalid selection must leave Home selected, got %v", s.store.Current())
	}
}

func TestHandleCurrentScreen(t *testing.T) {
	r := &fakeRender{}
	s := newTestServer(t, Config{
		ServerName: "gameshelf-test",
		Router:     output.DefaultRouterConfig(),
		InitialTab: nav.Home,
		Render:     r.render,
	})

	_, result, err := s.handleCurrentScreen(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("current_screen: %v", err)
	}
	if result.Tab != "Home" || len(result.Sections) != 2 {
		t.Fatalf("Expected Home with two sections, got %+v", result)
	}
	hot := result.Sections[0]
	if hot.ID != output.SectionHot || hot.Orientation != "horizontal" || len(hot.Items) != 8 {
		t.Errorf("Unexpected hot section: %s %s %d", hot.ID, hot.Orientation, len(hot.Items))
	}
	first := result.Sections[1].Items[0]
	if first.Title != "Red Dead Redemption 2" || first.Stars != 5 || first.ReleaseText != "Release Date: 26 October 2018" {
		t.Errorf("Unexpected first popular item: %+v", first)
	}
	if result.Text != "screen:Home sections:2" || len(r.screens) != 1 {
		t.Errorf("Expected rendered text, got %q", result.Text)
	}
}

func TestGatePopular(t *testing.T) {
	s := newTestServer(t, Config{
		ServerName: "gameshelf-test",
		Router:     output.RouterConfig{HotOrientation: output.Horizontal, GatePopular: true},
	})
	_, result, err := s.handleSelectTab(context.Background(), nil, SelectTabArgs{Tab: "Profile"})
	if err != nil {
		t.Fatalf("select_tab: %v", err)
	}
	if len(result.Screen.Sections) != 0 {
		t.Errorf("Expected empty Profile body when gated, got %d sections", len(result.Screen.Sections))
	}
}

func TestToolsOverInMemoryTransport(t *testing.T) {
	s := newTestServer(t, Config{})
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	var names []string
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			t.Fatalf("list tools: %v", err)
		}
		names = append(names, tool.Name)
	}
	if got := strings.Join(names, ","); !strings.Contains(got, "list_games") || !strings.Contains(got, "select_tab") || !strings.Contains(got, "current_screen") {
		t.Errorf("Unexpected tools: %s", got)
	}

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "select_tab",
		Arguments: map[string]any{"tab": "Profile"},
	})
	if err != nil {
		t.Fatalf("call select_tab: %v", err)
	}
	if res.IsError {
		t.Fatalf("select_tab returned a tool error: %+v", res.Content)
	}

	var out SelectTabResult
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("Expected text content, got %T", res.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if out.Current != "Profile" || !out.Changed {
		t.Errorf("Unexpected result: %+v", out)
	}

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "select_tab",
		Arguments: map[string]any{"tab": "Settings"},
	})
	if err != nil {
		t.Fatalf("call select_tab: %v", err)
	}
	if !res.IsError {
		t.Error("Expected a tool error for an unknown tab")
	}
}
