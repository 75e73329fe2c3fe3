// Package styles holds the console's lipgloss design tokens: the dark
// palette and spacing the screens share.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorPrimary   = lipgloss.Color("#1E90FF")
	ColorSuccess   = lipgloss.Color("#51CF66") // gains, buys, up trend
	ColorError     = lipgloss.Color("#FF6B6B") // losses, sells, down trend
	ColorWarning   = lipgloss.Color("#FFD43B") // holds, neutral
	ColorSurface   = lipgloss.Color("#1A1F3A")
	ColorBorder    = lipgloss.Color("#3A3F5C")
	ColorText      = lipgloss.Color("#FFFFFF")
	ColorTextDim   = lipgloss.Color("#B0B5C1")
	ColorTextFaint = lipgloss.Color("#7A7F99")
	ColorDisabled  = lipgloss.Color("#4A5068")
)

// Shared styles.
var (
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	Label = lipgloss.NewStyle().
		Foreground(ColorTextDim)

	Faint = lipgloss.NewStyle().
		Foreground(ColorTextFaint)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	Up = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	Down = lipgloss.NewStyle().
		Foreground(ColorError)

	Neutral = lipgloss.NewStyle().
		Foreground(ColorWarning)

	ActiveTab = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	InactiveTab = lipgloss.NewStyle().
			Foreground(ColorTextFaint)

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	StatusErr = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorSurface)
)

// PnL picks the up or down style by sign; zero renders dim.
func PnL(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return Up
	case v < 0:
		return Down
	default:
		return Label
	}
}
