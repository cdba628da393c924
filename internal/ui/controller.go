package ui

import (
	"context"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/domain"
	"docsearch/internal/eventbus"
	"docsearch/internal/index"
	"docsearch/internal/page"
	"docsearch/internal/search"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// search is evaluated
const DefaultDebounce = 300 * time.Millisecond

// TextField is the search input the controller reads and clears
type TextField interface {
	Value() string
	SetValue(s string)
}

// ResultSet is what the results panel currently shows
type ResultSet struct {
	Rows         []search.Row
	PanelVisible bool
	NoResults    bool
}

// SearchController owns the lazily loaded index, the debounce timer and the
// current results. It runs entirely inside the Bubble Tea update loop, so
// none of its state needs locking.
type SearchController struct {
	ctx      context.Context
	bus      eventbus.EventBus
	loader   index.Loader
	opener   Opener
	page     *page.Page
	input    TextField
	debounce time.Duration

	state     index.LoadState
	entries   []domain.IndexEntry
	listening bool

	// timerSeq identifies the live debounce tick; ticks with an older
	// sequence number were cancelled
	timerSeq   int
	timerArmed bool

	results ResultSet
}

// NewSearchController creates a controller. Nothing is fetched until the
// search field is focused for the first time.
func NewSearchController(ctx context.Context, bus eventbus.EventBus, loader index.Loader, opener Opener,
	pg *page.Page, input TextField, debounce time.Duration) *SearchController {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &SearchController{
		ctx:      ctx,
		bus:      bus,
		loader:   loader,
		opener:   opener,
		page:     pg,
		input:    input,
		debounce: debounce,
	}
}

// State returns the index load state
func (c *SearchController) State() index.LoadState {
	return c.state
}

// Entries returns the loaded index entries
func (c *SearchController) Entries() []domain.IndexEntry {
	return c.entries
}

// Results returns the current result set
func (c *SearchController) Results() ResultSet {
	return c.results
}

// Page returns the page the search runs on
func (c *SearchController) Page() *page.Page {
	return c.page
}

// Pending reports whether a debounce timer is armed
func (c *SearchController) Pending() bool {
	return c.timerArmed
}

// Focus is called whenever the search field gains focus. The first call
// starts the index fetch; later calls do nothing.
func (c *SearchController) Focus() tea.Cmd {
	if c.state != index.NotLoaded {
		return nil
	}

	u, err := c.page.IndexURL()
	if err != nil {
		c.HandleIndexLoaded(indexLoadedMsg{err: err})
		return nil
	}

	c.state = index.Loading
	c.bus.Publish(eventbus.IndexLoadStartedEvent{URL: u.String()})
	log.Printf("Loading search index from %s", u)

	ctx, loader := c.ctx, c.loader
	return func() tea.Msg {
		start := time.Now()
		entries, err := loader.Load(ctx, u)
		return indexLoadedMsg{url: u.String(), entries: entries, elapsed: time.Since(start), err: err}
	}
}

// HandleIndexLoaded records the outcome of the index fetch. A failure is
// final: the index stays empty and every search shows no results.
func (c *SearchController) HandleIndexLoaded(msg indexLoadedMsg) {
	if msg.err != nil {
		c.state = index.Failed
		c.entries = nil
		log.Printf("Failed to load search index: %v", msg.err)
		c.bus.Publish(eventbus.IndexLoadFailedEvent{URL: msg.url, Err: msg.err})
		return
	}

	c.state = index.Loaded
	c.entries = msg.entries
	c.listening = true
	c.bus.Publish(eventbus.IndexLoadedEvent{URL: msg.url, Entries: len(msg.entries), Elapsed: msg.elapsed})
}

// InputChanged restarts the debounce timer. Changes made before the index
// has loaded are ignored rather than queued.
func (c *SearchController) InputChanged() tea.Cmd {
	if !c.listening {
		return nil
	}

	c.cancelTimer()
	c.timerSeq++
	c.timerArmed = true

	seq := c.timerSeq
	return tea.Tick(c.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

// HandleDebounce evaluates the search if msg belongs to the live timer
func (c *SearchController) HandleDebounce(msg debounceMsg) {
	if !c.timerArmed || msg.seq != c.timerSeq {
		return
	}
	c.timerArmed = false
	c.Evaluate()
}

// Submit evaluates immediately, dropping any pending timer
func (c *SearchController) Submit() {
	c.cancelTimer()
	c.Evaluate()
}

// Reset drops any pending timer, clears the rows and hides the panel.
// The loaded index is kept.
func (c *SearchController) Reset() {
	c.cancelTimer()
	c.results = ResultSet{}
	c.bus.Publish(eventbus.SearchResetEvent{})
}

// Evaluate runs the current input against the index and replaces the
// result set. Empty input behaves like Reset.
func (c *SearchController) Evaluate() {
	value := strings.TrimSpace(c.input.Value())
	if value == "" {
		c.Reset()
		return
	}

	query := search.NewQuery(value)
	rows := search.BuildRows(query, c.entries, c.page.ResolveLink)

	c.results = ResultSet{
		Rows:         rows,
		PanelVisible: true,
		NoResults:    len(rows) == 0,
	}
	c.bus.Publish(eventbus.SearchEvaluatedEvent{Query: value, Matches: len(rows)})
}

// Activate follows the link of row i. A link to the current page only
// changes the fragment, so nothing reloads and the search is dismissed
// here. Any other page replaces the current one.
func (c *SearchController) Activate(i int) tea.Cmd {
	if i < 0 || i >= len(c.results.Rows) {
		return nil
	}
	row := c.results.Rows[i]

	if c.page.IsSamePage(row.Href) {
		c.input.SetValue("")
		c.Reset()
		return nil
	}

	next, err := c.page.Navigate(row.Href)
	if err != nil {
		log.Printf("Failed to follow %s: %v", row.Href, err)
		return nil
	}

	from := c.page.String()
	c.page = next
	c.input.SetValue("")
	c.Reset()
	c.bus.Publish(eventbus.PageNavigatedEvent{From: from, To: next.String()})

	if c.opener == nil {
		return nil
	}
	return c.opener.Open(next.URL())
}

func (c *SearchController) cancelTimer() {
	if c.timerArmed {
		c.timerArmed = false
		c.timerSeq++
	}
}
