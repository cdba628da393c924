package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"docsearch/internal/eventbus"
)

const (
	DefaultPage        = "index.html"
	DefaultSearchIndex = "search-index.json"
	DefaultDebounceMs  = 300
	DefaultLogFile     = "docsearch.log"
)

// Config represents the application configuration
type Config struct {
	Site        string     `toml:"site" yaml:"site"`                 // http(s) URL or local directory
	Page        string     `toml:"page" yaml:"page"`                 // current page, relative to site
	SearchIndex string     `toml:"search_index" yaml:"search_index"` // relative to site
	DebounceMs  int        `toml:"debounce_ms" yaml:"debounce_ms"`
	LogFile     string     `toml:"log_file" yaml:"log_file"`
	UISettings  UISettings `toml:"ui" yaml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDescriptions bool `toml:"show_descriptions" yaml:"show_descriptions"`
	DescriptionWidth int  `toml:"description_width" yaml:"description_width"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "docsearch", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location. A missing file
// yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded("", cfg)
		return cfg, nil
	}

	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. The format is
// chosen by extension: .yaml/.yml for YAML, anything else is TOML.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	cs.publishLoaded(path, cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path: path,
			Site: cfg.Site,
		})
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// applyDefaults fills in fields a config file left empty
func (c *Config) applyDefaults() {
	if c.Page == "" {
		c.Page = DefaultPage
	}
	if c.SearchIndex == "" {
		c.SearchIndex = DefaultSearchIndex
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = DefaultDebounceMs
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Page:        DefaultPage,
		SearchIndex: DefaultSearchIndex,
		DebounceMs:  DefaultDebounceMs,
		LogFile:     DefaultLogFile,
		UISettings: UISettings{
			ShowDescriptions: true,
			DescriptionWidth: 60,
		},
	}
}
