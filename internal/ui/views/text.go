package views

import (
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/mattn/go-runewidth"
)

// InlineText converts an HTML description to a single line of plain text.
// Descriptions that fail to parse are shown as they are.
func InlineText(html string) string {
	text, err := html2text.FromString(html, html2text.Options{OmitLinks: true})
	if err != nil {
		text = html
	}
	return strings.Join(strings.Fields(text), " ")
}

// PageText converts a documentation page to text suitable for a pager
func PageText(html string) string {
	text, err := html2text.FromString(html, html2text.Options{PrettyTables: true})
	if err != nil {
		return html
	}
	return text
}

// Truncate shortens s to at most width cells
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
