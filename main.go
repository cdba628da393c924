package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docsearch/internal/config"
	"docsearch/internal/eventbus"
	"docsearch/internal/index"
	"docsearch/internal/page"
	"docsearch/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		configPath  string
		site        string
		pagePath    string
		searchIndex string
		debounceMs  int
		writeConfig string
	)
	flag.StringVar(&configPath, "config", "", "Configuration file (.toml or .yaml)")
	flag.StringVar(&site, "site", "", "Documentation site: http(s) URL or local directory")
	flag.StringVar(&pagePath, "page", "", "Current page, relative to the site root")
	flag.StringVar(&searchIndex, "index", "", "Search index, relative to the site root")
	flag.IntVar(&debounceMs, "debounce", 0, "Milliseconds to wait after typing before searching")
	flag.StringVar(&writeConfig, "write-config", "", "Write the effective configuration to this file and exit")
	flag.Parse()

	// The site may also be given as the only argument
	if site == "" && flag.NArg() > 0 {
		site = flag.Arg(0)
	}

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadConfig(configSvc, configPath)

	if site != "" {
		cfg.Site = site
	}
	if pagePath != "" {
		cfg.Page = pagePath
	}
	if searchIndex != "" {
		cfg.SearchIndex = searchIndex
	}
	if debounceMs > 0 {
		cfg.DebounceMs = debounceMs
	}

	if writeConfig != "" {
		if err := configSvc.SaveToPath(cfg, writeConfig); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration written to %s\n", writeConfig)
		return
	}

	// Set up logging
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	pg, err := page.New(cfg.Site, cfg.Page, cfg.SearchIndex)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Usage: docsearch [-config file] [-page path] [-index path] <site>")
		os.Exit(1)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	subscribeLogging(bus)

	fetcher := index.NewFetcher(nil)
	opener := ui.NewPagerOpener(ctx, fetcher)
	uiModel := ui.NewModel(ctx, bus, cfg, pg, fetcher, opener)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	opener.SetProgram(p)

	log.Printf("Starting UI on %s", pg)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadConfig reads the given config file, or the default one when path is
// empty. Problems fall back to the default configuration.
func loadConfig(configSvc config.ConfigService, path string) *config.Config {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = configSvc.LoadFromPath(path)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// subscribeLogging writes index and navigation events to the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventIndexLoadStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IndexLoadStartedEvent); ok {
			log.Printf("Fetching search index %s", event.URL)
		}
	})
	bus.Subscribe(eventbus.EventIndexLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IndexLoadedEvent); ok {
			log.Printf("Search index ready: %d entries in %s", event.Entries, event.Elapsed.Round(time.Millisecond))
		}
	})
	bus.Subscribe(eventbus.EventIndexLoadFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.IndexLoadFailedEvent); ok {
			log.Printf("Search index %s unavailable, searches will show no results: %v", event.URL, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventSearchEvaluated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchEvaluatedEvent); ok {
			log.Printf("Search %q: %d matches", event.Query, event.Matches)
		}
	})
	bus.Subscribe(eventbus.EventPageNavigated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageNavigatedEvent); ok {
			log.Printf("Navigated from %s to %s", event.From, event.To)
		}
	})
}
