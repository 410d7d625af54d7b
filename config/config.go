// Package config loads default settings for the pixeltext command from TOML
// files.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	appName   = "pixeltext"
	fileName  = "config.toml"
	localName = "pixeltext.toml"
)

// Config holds defaults for command line flags that were not given
type Config struct {
	Meta    string `koanf:"meta"`   // single character
	Mode    string `koanf:"mode"`   // "auto", "text" or "image"
	Colors  int    `koanf:"colors"` // reduce palette, 0 disables
	Scale   int    `koanf:"scale"`
	Width   uint   `koanf:"width"`
	Height  uint   `koanf:"height"`
	Verbose bool   `koanf:"verbose"`
}

func defaults() *Config {
	return &Config{
		Mode:  "auto",
		Scale: 1,
	}
}

// Load reads the configuration from path. If path is empty the user config
// file and then ./pixeltext.toml are tried in turn with later files taking
// priority; it is not an error for neither to exist.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	paths := []string{path}
	if path == "" {
		paths = getConfigPaths()
	}

	for _, p := range paths {
		if path == "" {
			if _, err := os.Stat(p); err != nil {
				continue
			}
		}
		if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
			return nil, err
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/pixeltext/config.toml or one of $XDG_CONFIG_DIRS
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, fileName)); err == nil {
		paths = append(paths, p)
	}

	// 2. ./pixeltext.toml (pwd, highest priority)
	paths = append(paths, localName)

	return paths
}

// MetaRune returns the configured meta character, or zero if none is set
func (c *Config) MetaRune() (rune, error) {
	r := []rune(c.Meta)
	switch len(r) {
	case 0:
		return 0, nil
	case 1:
		return r[0], nil
	}
	return 0, errors.New("config: meta must be a single character")
}
