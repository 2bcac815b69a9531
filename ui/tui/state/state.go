package state

import (
	"gameshelf/internal/nav"
	"gameshelf/internal/output"
)

// AppState is what the views draw from: the selected tab and the routed body.
type AppState struct {
	Tab    nav.Tab
	Screen output.Screen
	// Selections counts notifications received from the navigation store.
	Selections int
	LastEvent  nav.Event
}
