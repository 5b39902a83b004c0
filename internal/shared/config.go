package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Library LibraryConfig `toml:"library"`
	Output  OutputConfig  `toml:"output"`
}

// CatalogConfig controls how playlists are built.
type CatalogConfig struct {
	SourceLink  string `toml:"source_link"`
	Description string `toml:"description"`
	MaxSongs    int    `toml:"max_songs"` // without Shuffle the cap keeps matches in name order
	Shuffle     bool   `toml:"shuffle"`
}

// LibraryConfig points at an exported track library.
type LibraryConfig struct {
	Path string `toml:"path"`
}

// OutputConfig contains rendering defaults.
type OutputConfig struct {
	Format string `toml:"format"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate reports values that would make the catalog misbehave.
func (c *Config) Validate() error {
	if c.Catalog.MaxSongs < 0 {
		return fmt.Errorf("%w: catalog.max_songs must not be negative", ErrInvalidConfig)
	}
	switch c.Output.Format {
	case "", "text", "markdown", "csv", "json":
	default:
		return fmt.Errorf("%w: output.format %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
