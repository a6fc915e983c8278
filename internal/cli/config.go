package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config is the optional user configuration, read from
// ~/.config/smtree/config.toml (or the platform equivalent). A missing
// file is not an error, defaults apply.
type Config struct {
	Export ExportConfig `toml:"export"`
	UI     UIConfig     `toml:"ui"`
}

// ExportConfig controls the export command defaults.
type ExportConfig struct {
	// Format is the default output format, "dot" or "svg".
	Format string `toml:"format"`
	// Behavior includes behavior text in exported labels.
	Behavior bool `toml:"behavior"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	// Glyphs prefixes tree lines with per-kind glyphs.
	Glyphs bool `toml:"glyphs"`
}

func defaultConfig() Config {
	return Config{
		Export: ExportConfig{Format: "dot", Behavior: true},
		UI:     UIConfig{Glyphs: true},
	}
}

// loadConfig reads the user config file, merging it over the defaults.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	path, err := userConfigPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
