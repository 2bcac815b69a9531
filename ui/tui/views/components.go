package views

import (
	"gameshelf/ui/tui/styles"
)

// RenderHeader draws a section title as a full-width bar.
func RenderHeader(title string, width int) string {
	st := styles.HeaderStyle
	if width > 0 {
		st = st.Width(width)
	}
	return st.Render(title)
}
