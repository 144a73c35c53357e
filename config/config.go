// Package config loads wmccore's own CLI configuration, an ambient
// concern the core itself never touches. File values are read with
// github.com/BurntSushi/toml the same way the rest of the example pack
// reads TOML manifests (toml.Decode into a plain struct); flags set
// by the caller take precedence over file values.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the defaults for a wmccore CLI invocation.
type Config struct {
	Dialect           string `toml:"dialect"`
	Heuristic         string `toml:"heuristic"`
	Inverse           bool   `toml:"inverse"`
	RestrictProjected bool   `toml:"restrict_projected"`
	Seed              int64  `toml:"seed"`
	LogLevel          string `toml:"log_level"`
}

// Default returns the built-in defaults used when no config file and
// no flags override them.
func Default() Config {
	return Config{
		Dialect:           "unweighted",
		Heuristic:         "appearance",
		Inverse:           false,
		RestrictProjected: false,
		Seed:              0,
		LogLevel:          "info",
	}
}

// Load reads path and overlays it onto Default(). A missing file is
// not an error: it simply leaves the defaults in place, the way an
// optional dotfile config is typically treated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
