package views

import (
	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	PagePath    lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Loading     lipgloss.Style
	NoResults   lipgloss.Style
	Name        lipgloss.Style
	Desc        lipgloss.Style
	Link        lipgloss.Style
	Scroll      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	SelectionBg lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		PagePath:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:         lipgloss.NewStyle().Faint(true),
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		NoResults:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Name:        lipgloss.NewStyle().Bold(true),
		Desc:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Link:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}

// GetKindColor returns the terminal colour for a kind label colour
func GetKindColor(c domain.Color) string {
	switch c {
	case domain.ColorPurple:
		return "99"
	case domain.ColorGreen:
		return "78"
	case domain.ColorYellow:
		return "214"
	case domain.ColorBlue:
		return "33"
	default:
		return "241" // gray
	}
}
