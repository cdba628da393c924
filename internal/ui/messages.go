package ui

import (
	"time"

	"docsearch/internal/domain"
)

// indexLoadedMsg carries the result of the one-time index fetch
type indexLoadedMsg struct {
	url     string
	entries []domain.IndexEntry
	elapsed time.Duration
	err     error
}

// debounceMsg fires when the quiet period after typing has elapsed.
// Only the message carrying the latest sequence number is acted upon.
type debounceMsg struct {
	seq int
}

// pageClosedMsg is sent when the pager showing an opened page exits
type pageClosedMsg struct {
	url string
	err error
}
