package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config carries the optional defaults a meshdom.toml file can provide:
// paths of the domain files and the numeric tolerance. Flags always win
// over config values.
type Config struct {
	Elements string  `toml:"elements"`
	Vertices string  `toml:"vertices"`
	Epsilon  float64 `toml:"epsilon"`
}

// defaultConfigFile is probed when --config is not given.
const defaultConfigFile = "meshdom.toml"

// loadConfig reads path, or probes defaultConfigFile when path is empty.
// A missing default file yields a zero Config; a missing explicit file is
// an error.
func loadConfig(path string) (Config, error) {
	probe := path == ""
	if probe {
		path = defaultConfigFile
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if probe && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
