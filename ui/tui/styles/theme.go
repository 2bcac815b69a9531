package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#6650A4", Dark: "#D0BCFF"}
	Primary   = lipgloss.AdaptiveColor{Light: "#6650A4", Dark: "#381E72"}
	OnPrimary = lipgloss.Color("#FFFFFF")
	Secondary = lipgloss.AdaptiveColor{Light: "#625B71", Dark: "#4A4458"}
	StarColor = lipgloss.Color("196") // Red
	Muted     = lipgloss.Color("#888")

	// HeaderStyle is the full-width bar above each section.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(OnPrimary).
			Background(Primary).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().Bold(true)

	StarStyle = lipgloss.NewStyle().Foreground(StarColor)

	ChipStyle = lipgloss.NewStyle().
			Foreground(OnPrimary).
			Background(Secondary).
			Padding(0, 1).
			MarginRight(1)

	ArtStyle = lipgloss.NewStyle().
			Foreground(Highlight).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Subtle)

	PlaceholderStyle = ArtStyle.
				Foreground(Muted).
				Italic(true)

	TabBarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(Subtle)

	TabStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2)

	ActiveTabStyle = TabStyle.
			Bold(true).
			Foreground(Highlight).
			Underline(true)

	ScrollHintStyle = lipgloss.NewStyle().Foreground(Muted)
)
