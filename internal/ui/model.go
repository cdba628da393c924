package ui

import (
	"context"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/index"
	"docsearch/internal/page"
	"docsearch/internal/ui/views"
)

// focusArea is the part of the screen receiving key presses
type focusArea int

const (
	focusNone focusArea = iota
	focusInput
	focusResults
)

// Model represents the UI state
type Model struct {
	config     *config.Config
	controller *SearchController

	input    textinput.Model
	help     help.Model
	keys     KeyMap
	renderer *views.Renderer

	focus    focusArea
	selected int // selected result row
	width    int
	height   int
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, bus eventbus.EventBus, cfg *config.Config, pg *page.Page,
	loader index.Loader, opener Opener) *Model {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the view
	ti.Placeholder = "type to search"

	m := &Model{
		config:   cfg,
		input:    ti,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		renderer: views.NewRenderer(),
	}

	debounce := time.Duration(cfg.DebounceMs) * time.Millisecond
	m.controller = NewSearchController(ctx, bus, loader, opener, pg, &m.input, debounce)

	return m
}

// Controller returns the search controller
func (m *Model) Controller() *SearchController {
	return m.controller
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case indexLoadedMsg:
		m.controller.HandleIndexLoaded(msg)
		return m, nil

	case debounceMsg:
		m.controller.HandleDebounce(msg)
		m.syncSelection()
		return m, nil

	case pageClosedMsg:
		if msg.err == nil {
			log.Printf("Closed %s", msg.url)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusResults:
		return m.handleResultsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.controller.Submit()
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.input.Reset()
		m.controller.Reset()
		m.selected = 0
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		if len(m.controller.Results().Rows) > 0 {
			m.focus = focusResults
			m.input.Blur()
		}
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.controller.InputChanged())
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.controller.Results().Rows

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(rows)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		cmd := m.controller.Activate(m.selected)
		m.selected = 0
		m.focus = focusNone
		m.input.Blur()
		return m, cmd
	case key.Matches(msg, m.keys.Back):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Help):
		m.toggleHelp()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

// focusInput focuses the search field. The controller loads the index the
// first time this happens.
func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return tea.Batch(m.input.Focus(), m.controller.Focus())
}

// toggleHelp expands or collapses the full key help
func (m *Model) toggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
	if m.help.ShowAll {
		m.keys.Help.SetHelp("?", "less")
	} else {
		m.keys.Help.SetHelp("?", "more")
	}
}

// syncSelection keeps the selection inside the current results
func (m *Model) syncSelection() {
	rows := m.controller.Results().Rows
	if m.selected >= len(rows) {
		m.selected = 0
	}
	if m.focus == focusResults && len(rows) == 0 {
		m.focus = focusInput
		m.input.Focus()
	}
}

// View renders the UI
func (m *Model) View() string {
	results := m.controller.Results()

	textView := ""
	if m.focus == focusInput || m.input.Value() != "" {
		textView = m.input.View()
	}

	state := views.ViewState{
		Width:            m.width,
		Height:           m.height,
		PagePath:         m.controller.Page().Path(),
		Loading:          m.controller.State() == index.Loading,
		InputFocused:     m.focus == focusInput,
		TextInput:        textView,
		PanelVisible:     results.PanelVisible,
		NoResults:        results.NoResults,
		Rows:             results.Rows,
		Selected:         m.selected,
		ShowSelection:    m.focus == focusResults,
		ListHeight:       views.ListHeight(m.height),
		ShowDescriptions: m.config.UISettings.ShowDescriptions,
		DescriptionWidth: m.config.UISettings.DescriptionWidth,
		HelpView:         m.help.View(m.keys),
	}

	return m.renderer.Render(state)
}
