package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docsearch/internal/search"
)

// labelWidth fits the longest kind label, "Constructor"
const labelWidth = 11

// defaultScrollPadding is used when the list height is unknown
const defaultScrollPadding = 5

// ResultsRenderer renders the search results table
type ResultsRenderer struct {
	styles *Styles
}

// NewResultsRenderer creates a new results renderer
func NewResultsRenderer(styles *Styles) *ResultsRenderer {
	return &ResultsRenderer{styles: styles}
}

// ScrollOffset returns the first visible row so that the selected row sits
// roughly in the middle of a list of the given height.
func ScrollOffset(selected, total, height int) int {
	padding := defaultScrollPadding
	if height > 0 {
		padding = height / 2
	}

	offset := selected - padding
	if height > 0 && offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RenderResults renders the visible part of the results table
func (r *ResultsRenderer) RenderResults(state ViewState) string {
	if state.NoResults || len(state.Rows) == 0 {
		return r.styles.NoResults.Render("No results")
	}

	height := state.ListHeight
	offset := ScrollOffset(state.Selected, len(state.Rows), height)
	end := len(state.Rows)
	if height > 0 && offset+height < end {
		end = offset + height
	}

	lines := make([]string, 0, end-offset+1)
	for i := offset; i < end; i++ {
		selected := state.ShowSelection && i == state.Selected
		lines = append(lines, r.RenderRow(state.Rows[i], selected, state.ShowDescriptions, state.DescriptionWidth))
	}

	if offset > 0 || end < len(state.Rows) {
		lines = append(lines, r.styles.Scroll.Render(
			fmt.Sprintf("%d-%d of %d results", offset+1, end, len(state.Rows))))
	}

	return strings.Join(lines, "\n")
}

// RenderRow renders a single result: kind label, qualified name and description
func (r *ResultsRenderer) RenderRow(row search.Row, isSelected bool, showDesc bool, descWidth int) string {
	bg := lipgloss.NewStyle()
	if isSelected {
		bg = r.styles.SelectionBg
	}

	labelStyle := bg.Foreground(lipgloss.Color(GetKindColor(row.Color))).Bold(true)
	nameStyle := bg.Inherit(r.styles.Name)
	if isSelected {
		nameStyle = nameStyle.Underline(true)
	}

	parts := []string{
		labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, row.Label)),
		bg.Render("  "),
		nameStyle.Render(row.Name),
	}

	if showDesc && row.Desc != "" {
		desc := Truncate(InlineText(row.Desc), descWidth)
		parts = append(parts, bg.Render("  "), bg.Inherit(r.styles.Desc).Render(desc))
	}

	return strings.Join(parts, "")
}
