// Package config loads and watches editor configuration.
//
// Configuration lives in a TOML file. A missing file is not an error: the
// defaults apply. The Watcher reloads the file on change and hands the
// fresh Config to its handler, debouncing editor-style save bursts.
package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds host-tunable editor behavior.
type Config struct {
	// Placeholder is shown by the engine while the document is empty.
	Placeholder string `toml:"placeholder"`

	// SelectAfterLoad selects the whole document after SetHTML.
	SelectAfterLoad bool `toml:"select_after_load"`

	// PasteAsPlainText strips markup from HTML clipboard entries.
	PasteAsPlainText bool `toml:"paste_as_plain_text"`

	// SearchWrap continues a failed search from the opposite end of the
	// document instead of reporting no match.
	SearchWrap bool `toml:"search_wrap"`

	// LogLevel is the zap level name for the editor's loggers.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load reads the configuration at path, merged over defaults. A missing
// file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
