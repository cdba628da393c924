package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/search"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	PagePath         string
	Loading          bool
	InputFocused     bool
	TextInput        string
	PanelVisible     bool
	NoResults        bool
	Rows             []search.Row
	Selected         int
	ShowSelection    bool
	ListHeight       int
	ShowDescriptions bool
	DescriptionWidth int
	HelpView         string
}

// Renderer handles all view rendering
type Renderer struct {
	styles  *Styles
	results *ResultsRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:  styles,
		results: NewResultsRenderer(styles),
	}
}

// reservedLines is the space taken by everything but the results list:
// padding, title, search field, footer and help.
const reservedLines = 8

// ListHeight returns how many result rows fit on a screen of the given height
func ListHeight(height int) int {
	if height <= 0 {
		return 0
	}
	if h := height - reservedLines; h > 1 {
		return h
	}
	return 1
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	content.WriteString(r.styles.Prompt.Render("Search: "))
	if state.InputFocused || state.TextInput != "" {
		content.WriteString(state.TextInput)
	} else {
		content.WriteString(r.styles.Dim.Render("press / to search"))
	}
	content.WriteString("\n\n")

	if state.PanelVisible {
		content.WriteString(r.results.RenderResults(state))
		content.WriteString("\n")

		if state.ShowSelection && state.Selected >= 0 && state.Selected < len(state.Rows) {
			row := state.Rows[state.Selected]
			content.WriteString("\n")
			content.WriteString(r.styles.Link.Render(row.Href))
			content.WriteString(r.styles.Dim.Render("  " + row.Name))
			content.WriteString("\n")
		}
	}

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("docsearch")
	title := logo
	if state.PagePath != "" {
		title += "  " + r.styles.PagePath.Render(state.PagePath)
	}

	if !state.Loading {
		return title
	}

	indicator := r.styles.Loading.Render("Loading index…")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	paddingWidth := termWidth - 4 - lipgloss.Width(title) - lipgloss.Width(indicator)
	if paddingWidth < 2 {
		paddingWidth = 2
	}
	return title + strings.Repeat(" ", paddingWidth) + indicator
}
