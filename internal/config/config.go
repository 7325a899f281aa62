// Package config loads tabulate defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/bjaus/tabulate"
)

const (
	appName        = "tabulate"
	ConfigFileName = "config.toml"
)

// ErrUnknownKey is returned when a config file sets a key tabulate does not
// recognize.
var ErrUnknownKey = errors.New("unknown config key")

// File holds the settings a config file may carry. Unset keys stay nil so
// they do not override engine defaults.
type File struct {
	Align     *tabulate.Alignment `toml:"align"`
	Down      *bool               `toml:"down"`
	Width     *int                `toml:"width"`
	Columns   *int                `toml:"columns"`
	Separator *string             `toml:"separator"`
	Force     *int                `toml:"force"`
	Lines     *bool               `toml:"lines"`
}

// DefaultPath returns $XDG_CONFIG_HOME/tabulate/config.toml, falling back to
// ~/.config/tabulate/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, ConfigFileName), nil
}

// Parse decodes TOML data.
func Parse(data string) (File, error) {
	var f File
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	return f, nil
}

// Load reads the config file at path. A missing file is an error.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(string(data))
	if err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// LoadDefault reads the config file at [DefaultPath]. A missing file yields
// an empty File. The path consulted is returned either way.
func LoadDefault() (File, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return File{}, "", err
	}
	f, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, path, nil
	}
	return f, path, err
}

// Apply copies every set key onto cfg.
func (f File) Apply(cfg *tabulate.Config) {
	if f.Align != nil {
		cfg.Alignment = *f.Align
	}
	if f.Down != nil {
		cfg.Down = *f.Down
	}
	if f.Width != nil {
		cfg.MaxWidth = *f.Width
	}
	if f.Columns != nil {
		cfg.MaxColumns = *f.Columns
	}
	if f.Separator != nil {
		cfg.Separator = *f.Separator
	}
	if f.Force != nil {
		cfg.Force = *f.Force
	}
}
