package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night palette.
const (
	colorBg      = "#1a1b26"
	colorAccent  = "#7aa2f7"
	colorText    = "#c0caf5"
	colorMuted   = "#565f89"
	colorGreen   = "#9ece6a"
	colorYellow  = "#e0af68"
	colorRed     = "#f7768e"
	colorMagenta = "#bb9af7"
)

// Styles holds the lipgloss styles used across the TUI.
type Styles struct {
	Title        lipgloss.Style
	StatusBar    lipgloss.Style
	StatusError  lipgloss.Style
	LeverName    lipgloss.Style
	LeverCursor  lipgloss.Style
	LeverLocked  lipgloss.Style
	LeverValue   lipgloss.Style
	GaugeFilled  lipgloss.Style
	GaugeEmpty   lipgloss.Style
	Category     lipgloss.Style
	PreviewPane  lipgloss.Style
	PreviewTitle lipgloss.Style
	Selection    lipgloss.Style
	PromptBox    lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorRed)),
		LeverName: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorText)),
		LeverCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBg)).
			Background(lipgloss.Color(colorAccent)).
			Bold(true),
		LeverLocked: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			Strikethrough(true),
		LeverValue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorYellow)),
		GaugeFilled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)),
		GaugeEmpty: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)),
		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMagenta)).
			Bold(true),
		PreviewPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)).
			Padding(0, 1),
		PreviewTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true),
		Selection: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)),
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(0, 1),
	}
}
