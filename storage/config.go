// Package storage persists viewer settings in a JSON config file. All file
// access goes through an afero.Fs so callers and tests can swap the backing
// file system.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/user-none/softfilter/filter"
	"github.com/user-none/softfilter/pixel"
)

// configFileName is the name of the config file inside the store directory
const configFileName = "config.json"

// ErrCorruptConfig is returned when config.json exists but cannot be parsed
var ErrCorruptConfig = errors.New("config file is corrupt")

// Store reads and writes configuration under a single directory.
type Store struct {
	fs  afero.Fs
	dir string
}

// New returns a store rooted at dir on fs.
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

// NewOS returns a store in the user's config directory on the OS file
// system, e.g. ~/.config/softfilter.
func NewOS() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find config directory: %w", err)
	}
	return New(afero.NewOsFs(), filepath.Join(base, "softfilter")), nil
}

// ConfigPath returns the full path of config.json
func (s *Store) ConfigPath() string {
	return filepath.Join(s.dir, configFileName)
}

// LoadConfig loads the configuration from config.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func (s *Store) LoadConfig() (*Config, error) {
	path := s.ConfigPath()

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return DefaultConfig(), nil
	}

	config := &Config{}
	if err := ReadJSON(s.fs, path, config); err != nil {
		return nil, err
	}

	return migrateConfig(config), nil
}

// LoadConfigFile loads a config from an explicit path, applying the same
// defaults as LoadConfig.
func LoadConfigFile(fs afero.Fs, path string) (*Config, error) {
	config := &Config{}
	if err := ReadJSON(fs, path, config); err != nil {
		return nil, err
	}
	return migrateConfig(config), nil
}

// SaveConfig saves the configuration to config.json atomically
func (s *Store) SaveConfig(config *Config) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return AtomicWriteJSON(s.fs, s.ConfigPath(), config)
}

// CreateConfigIfMissing creates a default config.json if it doesn't exist
func (s *Store) CreateConfigIfMissing() error {
	exists, err := afero.Exists(s.fs, s.ConfigPath())
	if err != nil {
		return err
	}
	if !exists {
		return s.SaveConfig(DefaultConfig())
	}
	return nil
}

// DeleteConfig removes the config.json file
func (s *Store) DeleteConfig() error {
	if err := s.fs.Remove(s.ConfigPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// ReadJSON decodes the JSON file at path into v
func ReadJSON(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorruptConfig, filepath.Base(path), err)
	}
	return nil
}

// AtomicWriteJSON writes v as indented JSON to a temp file and renames it
// over path, so readers never observe a partial file.
func AtomicWriteJSON(fs afero.Fs, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(fs, tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(tmpPath), err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		fs.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// migrateConfig handles any necessary migrations from older config versions
// and replaces values the viewer cannot use.
func migrateConfig(config *Config) *Config {
	if config.Version == 0 {
		config.Version = currentVersion
	}

	if _, err := filter.Lookup(config.Video.Filter); err != nil {
		config.Video.Filter = defaultFilter
	}
	if _, err := pixel.ParseFormat(config.Video.Format); err != nil {
		config.Video.Format = defaultFormat
	}
	if config.Video.Threads < 1 {
		config.Video.Threads = 1
	}

	if config.Window.Width == 0 {
		config.Window.Width = defaultWidth
	}
	if config.Window.Height == 0 {
		config.Window.Height = defaultHeight
	}

	return config
}
