package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ytget/quickbar/internal/platform"
	"github.com/ytget/quickbar/internal/storage"
)

// File locations inside the app config directory
const (
	AppName          = "quickbar"
	ConfigFileName   = "config.yaml"
	StateDirName     = "state"
	DatabaseFileName = "quickbar.db"
	LogFileName      = "quickbar.log"
)

// StorageConfig selects where the sidebar state is persisted
type StorageConfig struct {
	Backend storage.Backend `yaml:"backend"`
	Path    string          `yaml:"path,omitempty"`
	Watch   bool            `yaml:"watch"`
}

// LogConfig controls log output
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Debug bool   `yaml:"debug"`
}

// Config is the on-disk application configuration
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	dir string
}

// Default returns the configuration used when no file exists
func Default(dir string) *Config {
	return &Config{
		Storage: StorageConfig{Backend: storage.BackendFile, Watch: true},
		dir:     dir,
	}
}

// DefaultDir returns the per-user config directory for the app
func DefaultDir() (string, error) {
	return platform.ConfigDir(AppName)
}

// Load reads config.yaml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = storage.BackendFile
	}
	if !cfg.Storage.Backend.IsValid() {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, cfg.Storage.Backend)
	}
	return cfg, nil
}

// Save writes the configuration to dir/config.yaml
func (c *Config) Save() error {
	if err := platform.CreateDirectoryIfNotExists(c.dir); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(filepath.Join(c.dir, ConfigFileName), data, 0o644)
}

// Dir returns the directory the config was loaded from
func (c *Config) Dir() string {
	return c.dir
}

// StoragePath resolves the backend path, defaulting inside the config dir
func (c *Config) StoragePath() string {
	if c.Storage.Path != "" {
		return c.Storage.Path
	}
	switch c.Storage.Backend {
	case storage.BackendSQLite:
		return filepath.Join(c.dir, DatabaseFileName)
	case storage.BackendFile:
		return filepath.Join(c.dir, StateDirName)
	}
	return ""
}

// LogPath resolves the log file, empty meaning stderr only
func (c *Config) LogPath() string {
	if c.Log.File == "" {
		return ""
	}
	if filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(c.dir, c.Log.File)
}
