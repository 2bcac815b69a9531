package views

import (
	"gameshelf/ui/tui/state"
)

func RenderScreen(s state.AppState, width, height int, lists map[string]string, helpView string) string {
	v := ScreenView{}
	return v.Render(s, ViewProps{
		Width:    width,
		Height:   height,
		Lists:    lists,
		HelpView: helpView,
	})
}
