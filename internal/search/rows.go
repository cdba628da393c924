package search

import "docsearch/internal/domain"

// Row is one rendered search result
type Row struct {
	Kind  domain.Kind
	Label string
	Color domain.Color
	Name  string // scope qualified, also used as the link title
	Href  string
	Desc  string
}

// Filter returns the entries whose name matches q, in index order.
// Scope and description are never matched against.
func Filter(q *Query, entries []domain.IndexEntry) []domain.IndexEntry {
	var matched []domain.IndexEntry
	for _, entry := range entries {
		if q.Matches(entry.Name) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// BuildRows filters entries with q and derives a row for every match.
// resolve turns an entry link into a navigable href.
func BuildRows(q *Query, entries []domain.IndexEntry, resolve func(link string) string) []Row {
	matched := Filter(q, entries)
	rows := make([]Row, 0, len(matched))

	for _, entry := range matched {
		label := LabelFor(entry.Kind)
		rows = append(rows, Row{
			Kind:  entry.Kind,
			Label: label.Text,
			Color: label.Color,
			Name:  entry.QualifiedName(),
			Href:  resolve(entry.Link),
			Desc:  entry.Desc,
		})
	}

	return rows
}
