package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventIndexLoadStarted EventType = "IndexLoadStarted"
	EventIndexLoaded      EventType = "IndexLoaded"
	EventIndexLoadFailed  EventType = "IndexLoadFailed"
	EventSearchEvaluated  EventType = "SearchEvaluated"
	EventSearchReset      EventType = "SearchReset"
	EventPageNavigated    EventType = "PageNavigated"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ConfigLoadedEvent is emitted once configuration has been read
type ConfigLoadedEvent struct {
	Path string
	Site string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// IndexLoadStartedEvent is emitted when the search index fetch begins
type IndexLoadStartedEvent struct {
	URL string
}

func (e IndexLoadStartedEvent) Type() EventType { return EventIndexLoadStarted }

// IndexLoadedEvent is emitted when the search index has been parsed
type IndexLoadedEvent struct {
	URL     string
	Entries int
	Elapsed time.Duration // time spent fetching and decoding
}

func (e IndexLoadedEvent) Type() EventType { return EventIndexLoaded }

// IndexLoadFailedEvent is emitted when fetching or parsing the index fails
type IndexLoadFailedEvent struct {
	URL string
	Err error
}

func (e IndexLoadFailedEvent) Type() EventType { return EventIndexLoadFailed }

// SearchEvaluatedEvent is emitted after every non-empty evaluation
type SearchEvaluatedEvent struct {
	Query   string
	Matches int
}

func (e SearchEvaluatedEvent) Type() EventType { return EventSearchEvaluated }

// SearchResetEvent is emitted when the results panel is cleared and hidden
type SearchResetEvent struct{}

func (e SearchResetEvent) Type() EventType { return EventSearchReset }

// PageNavigatedEvent is emitted when a result link leads to another page
type PageNavigatedEvent struct {
	From string
	To   string
}

func (e PageNavigatedEvent) Type() EventType { return EventPageNavigated }
