package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"docsearch/internal/index"
	"docsearch/internal/ui/views"
)

// Opener shows the page a result link leads to
type Opener interface {
	Open(target *url.URL) tea.Cmd
}

// PagerOpener fetches the target page and shows it as text in the ov pager
type PagerOpener struct {
	ctx     context.Context
	fetcher *index.Fetcher
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOpener creates a pager opener. SetProgram must be called before
// the first page is opened.
func NewPagerOpener(ctx context.Context, fetcher *index.Fetcher) *PagerOpener {
	return &PagerOpener{
		ctx:     ctx,
		fetcher: fetcher,
	}
}

// SetProgram sets the program reference for terminal management
func (o *PagerOpener) SetProgram(p *tea.Program) {
	o.program = p
}

// Open returns a command that shows target in the pager
func (o *PagerOpener) Open(target *url.URL) tea.Cmd {
	return func() tea.Msg {
		err := o.show(target)
		if err != nil {
			log.Printf("Failed to open %s: %v", target, err)
		}
		return pageClosedMsg{url: target.String(), err: err}
	}
}

func (o *PagerOpener) show(target *url.URL) error {
	if o.program == nil {
		return fmt.Errorf("program not set")
	}

	data, err := o.fetcher.ReadPage(o.ctx, target)
	if err != nil {
		return err
	}

	root, err := oviewer.NewRoot(strings.NewReader(views.PageText(string(data))))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Release terminal control to run ov
	if err := o.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = o.program.RestoreTerminal()
	}()

	return root.Run()
}
