package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Prompt        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	ResultTitle   lipgloss.Style
	ResultURL     lipgloss.Style
	Snippet       lipgloss.Style
	LevelBadge    lipgloss.Style
	HeadingText   lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusEmpty   lipgloss.Style
	SelectionBg   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		ResultTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Underline(true),
		ResultURL:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Snippet:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LevelBadge:    lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HeadingText:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusEmpty:   lipgloss.NewStyle().Faint(true).Italic(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
