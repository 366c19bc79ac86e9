package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

const appDirName = "book_browser"

// UI settings
type UIConfig struct {
	Theme    string `toml:"theme" validate:"oneof=day night system"`
	Language string `toml:"language" validate:"locale"`
}

// Catalog settings
type CatalogConfig struct {
	Path     string `toml:"path"`
	PageSize int    `toml:"page_size" validate:"min=1,max=500"`
}

// Log settings
type LogConfig struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error disabled"`
	File  string `toml:"file"`
}

// Root config
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Catalog CatalogConfig `toml:"catalog"`
	Log     LogConfig     `toml:"log"`
}

// ConfigError reports a config file that could not be read, parsed or validated.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	prefix := "config"
	if e.Path != "" {
		prefix += " " + e.Path
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			Theme:    "system",
			Language: "en",
		},
		Catalog: CatalogConfig{
			PageSize: 36,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir is ~/.config/book_browser.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName), nil
}

func DefaultConfigPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "config.toml")
}

// expandHome resolves "~" and "~/..." against the user's home directory.
// Other paths, including "~name/...", are returned unchanged.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		if path != "~" {
			return path
		}
		rest = ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// LoadConfig reads a TOML config file over the defaults. A missing file is
// not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ConfigError{Path: path, Err: err}
	}

	cfg.Catalog.Path = expandHome(cfg.Catalog.Path)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field ranges and enumerations. The first failing field is
// reported.
func (c Config) Validate() error {
	err := Validator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ConfigError{
			Field: fe.Namespace(),
			Err:   fmt.Errorf("value %v fails %q", fe.Value(), fe.Tag()),
		}
	}
	return &ConfigError{Err: err}
}
