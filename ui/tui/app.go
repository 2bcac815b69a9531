package tui

import (
	"context"
	"io"
	"log/slog"

	"gameshelf/internal/artwork"
	"gameshelf/internal/catalog"
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
	"gameshelf/ui/tui/components"
	"gameshelf/ui/tui/state"
	"gameshelf/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Options wires the screen to its data and collaborators.
type Options struct {
	Catalogs catalog.Set
	// CatalogPath, when set, is watched and reloaded while the program runs.
	CatalogPath string
	Router      output.RouterConfig
	Art         artwork.Resolver
	InitialTab  nav.Tab
	Logger      *slog.Logger
	Mouse       bool
}

// CatalogsMsg replaces the catalogs shown on screen.
type CatalogsMsg struct {
	Set catalog.Set
}

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	store       *nav.Store
	unsubscribe func()
	catalogs    catalog.Set
	router      output.RouterConfig
	art         artwork.Resolver
	logger      *slog.Logger
	mouse       bool

	state    state.AppState
	lists    map[string]*components.GameList
	keys     keyMap
	help     help.Model
	quitting bool
	width    int
	height   int
}

func InitialModel(opts Options) *MainModel {
	zone.NewGlobal()

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &MainModel{
		store:    nav.NewStore(opts.InitialTab),
		catalogs: opts.Catalogs,
		router:   opts.Router,
		art:      opts.Art,
		logger:   logger,
		mouse:    opts.Mouse,
		lists: map[string]*components.GameList{
			output.SectionHot:     components.NewGameList(output.SectionHot, opts.Router.HotOrientation),
			output.SectionPopular: components.NewGameList(output.SectionPopular, output.Vertical),
		},
		keys: defaultKeyMap(),
		help: help.New(),
	}
	m.state.Tab = m.store.Current()
	m.unsubscribe = m.store.Subscribe(m.onSelect)
	m.refresh()
	return m
}

// Store exposes the navigation state holder.
func (m *MainModel) Store() *nav.Store {
	return m.store
}

func (m *MainModel) Init() tea.Cmd {
	return nil
}

// onSelect runs on every store notification and re-routes the body.
func (m *MainModel) onSelect(ev nav.Event) {
	m.state.Selections++
	m.state.LastEvent = ev
	m.state.Tab = ev.Current
	m.logger.Debug("tab selected", "tab", ev.Current.String(), "previous", ev.Previous.String(), "changed", ev.Changed)
	m.refresh()
}

func (m *MainModel) refresh() {
	m.state.Screen = output.Route(m.state.Tab, m.catalogs, m.router, m.art)
	for _, sec := range m.state.Screen.Sections {
		if l, ok := m.lists[sec.ID]; ok {
			l.SetOrientation(sec.Orientation)
			l.SetItems(sec.Items)
		}
	}
	m.layout()
}

// layout shares the rows left under the headers between the visible
// sections. Horizontal strips are sized first, vertical lists split the rest
// and draw only what fits.
func (m *MainModel) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	sections := m.state.Screen.Sections
	body := m.height -
		lipgloss.Height(views.TabBarView{}.Render(m.state, views.ViewProps{Width: m.width})) -
		lipgloss.Height(m.help.View(m.keys))
	for _, sec := range sections {
		body -= lipgloss.Height(views.RenderHeader(sec.Title, m.width))
	}

	var flexible []*components.GameList
	for _, sec := range sections {
		l := m.lists[sec.ID]
		if l == nil {
			continue
		}
		if sec.Orientation == output.Horizontal {
			h := min(components.CompactCardHeight+1, max(body, 0))
			l.Resize(m.width, h)
			body -= h
			continue
		}
		flexible = append(flexible, l)
	}

	if len(flexible) == 0 {
		return
	}
	share := max(body, 0) / len(flexible)
	for _, l := range flexible {
		l.Resize(m.width, share)
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case CatalogsMsg:
		m.catalogs = msg.Set
		m.logger.Info("catalogs reloaded", "hot", msg.Set.Hot.Len(), "popular", msg.Set.Popular.Len())
		m.refresh()
		return m, nil
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unsubscribe()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Home):
		m.store.Select(nav.Home)
	case key.Matches(msg, m.keys.Search):
		m.store.Select(nav.Search)
	case key.Matches(msg, m.keys.Profile):
		m.store.Select(nav.Profile)
	case key.Matches(msg, m.keys.NextTab):
		m.store.Select(cycle(m.state.Tab, 1))
	case key.Matches(msg, m.keys.PrevTab):
		m.store.Select(cycle(m.state.Tab, -1))
	case key.Matches(msg, m.keys.Up):
		m.scroll(output.SectionPopular, -1)
	case key.Matches(msg, m.keys.Down):
		m.scroll(output.SectionPopular, 1)
	case key.Matches(msg, m.keys.Left):
		m.scroll(output.SectionHot, -1)
	case key.Matches(msg, m.keys.Right):
		m.scroll(output.SectionHot, 1)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

func cycle(t nav.Tab, step int) nav.Tab {
	tabs := nav.Tabs()
	i := (int(t) + step) % len(tabs)
	if i < 0 {
		i += len(tabs)
	}
	return tabs[i]
}

// scroll only moves lists that are on screen.
func (m *MainModel) scroll(id string, n int) {
	if m.state.Screen.SectionByID(id) == nil {
		return
	}
	m.lists[id].ScrollBy(n)
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse {
		return m, nil
	}

	if msg.Action == tea.MouseActionRelease {
		for _, t := range nav.Tabs() {
			if zone.Get(views.TabZoneID(t)).InBounds(msg) {
				m.store.Select(t)
				return m, nil
			}
		}
	}

	for _, sec := range m.state.Screen.Sections {
		if l, ok := m.lists[sec.ID]; ok {
			l.Update(msg)
		}
	}
	return m, nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	lists := make(map[string]string, len(m.state.Screen.Sections))
	for _, sec := range m.state.Screen.Sections {
		if l, ok := m.lists[sec.ID]; ok {
			lists[sec.ID] = l.View()
		}
	}
	return views.RenderScreen(m.state, m.width, m.height, lists, m.help.View(m.keys))
}

func Start(opts Options) error {
	m := InitialModel(opts)
	defer m.unsubscribe()

	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, progOpts...)

	if opts.CatalogPath != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := catalog.Watch(ctx, opts.CatalogPath,
				func(set catalog.Set) { p.Send(CatalogsMsg{Set: set}) },
				func(err error) { m.logger.Warn("catalog reload failed", "path", opts.CatalogPath, "error", err) },
			)
			if err != nil {
				m.logger.Warn("catalog watch stopped", "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
