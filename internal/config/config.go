package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"promodeck/internal/eventbus"
)

// ErrNotFound is returned by LoadFromPath when the file does not exist
var ErrNotFound = errors.New("config file not found")

// CurrentVersion is written to new config files
const CurrentVersion = 1

// Config represents the application configuration
type Config struct {
	Version       int        `toml:"version"`
	CatalogPath   string     `toml:"catalog_path"` // file or directory; empty uses the built-in catalog
	WatchCatalog  bool       `toml:"watch_catalog"`
	LogFile       string     `toml:"log_file"`
	Verbose       bool       `toml:"verbose"`
	RememberQuery bool       `toml:"remember_query"`
	LastQuery     string     `toml:"last_query"`
	UISettings    UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Layout             string `toml:"layout"`       // card or compact
	BufferCount        int    `toml:"buffer_count"` // items rendered above and below the viewport
	DebounceMillis     int    `toml:"debounce_ms"`
	VirtualizeAbove    int    `toml:"virtualize_above"`     // virtualize when the result count exceeds this
	VirtualizePageSize int    `toml:"virtualize_page_size"` // or when the page size exceeds this
	PageSizeOptions    []int  `toml:"page_size_options"`
	ConfirmDelete      bool   `toml:"confirm_delete"`
}

// DebounceDelay returns the keyword debounce delay
func (u UISettings) DebounceDelay() time.Duration {
	return time.Duration(u.DebounceMillis) * time.Millisecond
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/promodeck/config.toml, or the platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "promodeck", "config.toml")
}

// NewConfigService creates a config service for path. An empty path uses DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that publishes load and save events
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Normalize replaces invalid or zero UI values with their defaults
func (c *Config) Normalize() {
	d := DefaultConfig().UISettings
	u := &c.UISettings

	if u.Layout == "" {
		u.Layout = d.Layout
	}
	if u.BufferCount < 0 {
		u.BufferCount = d.BufferCount
	}
	if u.DebounceMillis <= 0 {
		u.DebounceMillis = d.DebounceMillis
	}
	if u.VirtualizeAbove <= 0 {
		u.VirtualizeAbove = d.VirtualizeAbove
	}
	if u.VirtualizePageSize <= 0 {
		u.VirtualizePageSize = d.VirtualizePageSize
	}
	valid := u.PageSizeOptions[:0:0]
	for _, n := range u.PageSizeOptions {
		if n > 0 {
			valid = append(valid, n)
		}
	}
	if len(valid) == 0 {
		valid = d.PageSizeOptions
	}
	u.PageSizeOptions = valid
	if c.Version == 0 {
		c.Version = CurrentVersion
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:       CurrentVersion,
		WatchCatalog:  true,
		RememberQuery: true,
		UISettings: UISettings{
			Layout:             "card",
			BufferCount:        5,
			DebounceMillis:     300,
			VirtualizeAbove:    50,
			VirtualizePageSize: 20,
			PageSizeOptions:    []int{10, 20, 50, 100},
			ConfirmDelete:      true,
		},
	}
}
