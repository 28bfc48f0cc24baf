package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary   = lipgloss.Color("#7D56F4")
	Secondary = lipgloss.Color("#00D4AA")
	Muted     = lipgloss.Color("#6B7280")
	Success   = lipgloss.Color("#00D26A")
	Warning   = lipgloss.Color("#FFB800")
	Error     = lipgloss.Color("#FF3838")
	Text      = lipgloss.Color("#FAFAFA")
)

// Pre-configured styles
var (
	SectionStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text)

	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	TargetStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	ValueHighlightStyle = lipgloss.NewStyle().
				Foreground(Warning).
				Bold(true)
)

// kindColors gives each mutant kind a stable color in console output.
var kindColors = map[string]lipgloss.Color{
	"filename": lipgloss.Color("#4D96FF"),
	"cookie":   lipgloss.Color("#FFD93D"),
	"query":    lipgloss.Color("#6BCB77"),
	"header":   lipgloss.Color("#FF6B6B"),
}

// KindStyle returns the bracket style for a mutant kind slug.
func KindStyle(slug string) lipgloss.Style {
	c, ok := kindColors[slug]
	if !ok {
		c = Primary
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
