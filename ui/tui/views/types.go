package views

import (
	"gameshelf/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	Lists    map[string]string // rendered list widget per section ID
	HelpView string
}

// View defines the contract for any renderable part of the screen.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

var (
	_ View = ScreenView{}
	_ View = TabBarView{}
)
