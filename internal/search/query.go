package search

import "strings"

// Query is a reusable match predicate built from raw search input.
//
// The query is case sensitive as soon as any word contains an upper case
// character; otherwise both sides are lower cased before comparison. Every
// word must occur in the text for it to match.
type Query struct {
	words         []string
	lowerWords    []string
	caseSensitive bool
}

// NewQuery parses input into a Query. Words are separated by any Unicode
// white space. Empty input yields a single empty word, which matches
// everything, so callers trim and skip empty input.
func NewQuery(input string) *Query {
	words := strings.Fields(input)
	if len(words) == 0 {
		words = []string{""}
	}
	q := &Query{
		words:      words,
		lowerWords: make([]string, len(words)),
	}

	for i, word := range words {
		lower := strings.ToLower(word)
		q.lowerWords[i] = lower
		if word != lower {
			q.caseSensitive = true
		}
	}

	return q
}

// Words returns the whitespace separated words of the query
func (q *Query) Words() []string {
	return q.words
}

// CaseSensitive reports whether the input contained upper case characters
func (q *Query) CaseSensitive() bool {
	return q.caseSensitive
}

// Matches reports whether every word of the query is a substring of text
func (q *Query) Matches(text string) bool {
	if q.caseSensitive {
		for _, word := range q.words {
			if !strings.Contains(text, word) {
				return false
			}
		}
		return true
	}

	lowerText := strings.ToLower(text)
	for _, word := range q.lowerWords {
		if !strings.Contains(lowerText, word) {
			return false
		}
	}
	return true
}
