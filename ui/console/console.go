package console

import (
	"fmt"
	"io"
	"strings"

	"gameshelf/internal/nav"
	"gameshelf/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const maxTitle = 28

type palette struct {
	reset, header, star, accent, bold string
}

var (
	ansiPalette  = palette{reset: colorReset, header: colorCyan, star: colorRed, accent: colorYellow, bold: colorBold}
	plainPalette = palette{}
)

// Print renders a routed screen to the writer in a compact colored format.
func Print(w io.Writer, screen output.Screen) {
	render(w, screen, ansiPalette)
}

// PrintPlain is Print without escape codes, for pipes and MCP text content.
func PrintPlain(w io.Writer, screen output.Screen) {
	render(w, screen, plainPalette)
}

func render(w io.Writer, screen output.Screen, p palette) {
	fmt.Fprintf(w, "%s■ GAMESHELF · %s%s\n", p.header, screen.Tab, p.reset)

	for _, sec := range screen.Sections {
		fmt.Fprintf(w, "%s─ %s (%s)%s\n", p.header, sec.Title, sec.Orientation, p.reset)

		for _, it := range sec.Items {
			title := it.Title
			if len([]rune(title)) > maxTitle {
				title = string([]rune(title)[:maxTitle-3]) + "..."
			}
			dots := strings.Repeat("·", maxTitle+2-len([]rune(title)))
			stars := starLine(it.Stars)

			line := fmt.Sprintf("  %s%s%s%s%s%s %s%s%s",
				p.bold, title, p.reset,
				p.header, dots, p.reset,
				p.star, stars, p.reset)
			if sec.Orientation == output.Vertical {
				if it.ReleaseText != "" {
					line += "  " + it.ReleaseText
				}
				if len(it.Genres) > 0 {
					line += fmt.Sprintf("  %s[%s]%s", p.accent, strings.Join(it.Genres, ", "), p.reset)
				}
			}
			fmt.Fprintln(w, line)
		}
	}

	fmt.Fprintf(w, "%s─%s %s\n\n", p.header, p.reset, tabBar(screen.Tab, p))
}

func starLine(n int) string {
	n = max(0, min(n, output.MaxStars))
	return strings.Repeat("★", n) + strings.Repeat("·", output.MaxStars-n)
}

func tabBar(active nav.Tab, p palette) string {
	parts := make([]string, 0, len(nav.Tabs()))
	for _, t := range nav.Tabs() {
		if t == active {
			parts = append(parts, fmt.Sprintf("%s[%s]%s", p.accent, t, p.reset))
			continue
		}
		parts = append(parts, " "+t.String()+" ")
	}
	return strings.Join(parts, " ")
}
