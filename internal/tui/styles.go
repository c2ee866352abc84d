package tui

import "github.com/charmbracelet/lipgloss"

// Palette runs blue to green, with orange for selected goals.
var (
	colorPrimary = lipgloss.Color("#2563EB")
	colorAccent  = lipgloss.Color("#16A34A")
	colorGoal    = lipgloss.Color("#EA580C")
	colorMuted   = lipgloss.Color("#888888")
	colorFaint   = lipgloss.Color("#444444")
	colorWarn    = lipgloss.Color("#FFC107")
	colorText    = lipgloss.Color("#E2E8F0")
)

// Styles groups every lipgloss style the TUI renders with.
type Styles struct {
	Header      lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Muted       lipgloss.Style
	Warning     lipgloss.Style
	Projection  lipgloss.Style
	Card        lipgloss.Style
	ActiveCard  lipgloss.Style
	GoalCard    lipgloss.Style
	Button      lipgloss.Style
	ButtonOff   lipgloss.Style
	Box         lipgloss.Style
	LogHeading  lipgloss.Style
	LogBody     lipgloss.Style
	StatusLine  lipgloss.Style
	FocusPrompt lipgloss.Style
}

// DefaultStyles returns the style set used by NewApp.
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFaint).
		Padding(0, 1)
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Tab:         lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorPrimary).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Subtitle:    lipgloss.NewStyle().Foreground(colorMuted).MarginBottom(1),
		Label:       lipgloss.NewStyle().Foreground(colorMuted),
		Value:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(colorMuted),
		Warning:     lipgloss.NewStyle().Foreground(colorWarn),
		Projection:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Card:        card,
		ActiveCard:  card.BorderForeground(colorPrimary).Bold(true),
		GoalCard:    card.BorderForeground(colorGoal).Bold(true),
		Button:      lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorAccent).Padding(0, 2),
		ButtonOff:   lipgloss.NewStyle().Foreground(colorMuted).Background(colorFaint).Padding(0, 2),
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorFaint).Padding(0, 1),
		LogHeading:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		LogBody:     lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")),
		StatusLine:  lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		FocusPrompt: lipgloss.NewStyle().Foreground(colorPrimary),
	}
}
