// Package config loads the TOML configuration of the lists command.
package config

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"hop.computer/lists/pkg/combinators"
	"hop.computer/lists/pkg/thunks"
)

const (
	// UserConfigDirectory is the dirname of the directory holding the user
	// configuration, relative to the home directory.
	UserConfigDirectory = ".hop"

	// DefaultConfigFile is the name of the config file inside
	// UserConfigDirectory.
	DefaultConfigFile = "lists.toml"

	// DefaultLogLevel is used when log_level is unset.
	DefaultLogLevel = "info"
)

// Config is the parsed configuration.
type Config struct {
	LogLevel string `toml:"log_level"`

	// Validate checks the list invariants after every executed op.
	Validate bool `toml:"validate"`

	Render RenderConfig `toml:"render"`
	Random RandomConfig `toml:"random"`
}

// RenderConfig controls how the list is drawn after each op.
type RenderConfig struct {
	Enabled bool `toml:"enabled"`
	Color   bool `toml:"color"`

	// Width wraps the drawing. Zero means use the terminal width.
	Width int `toml:"width"`
}

// RandomConfig holds defaults for generated runs.
type RandomConfig struct {
	Seed  uint64 `toml:"seed"`
	Steps int    `toml:"steps"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Render: RenderConfig{
			Enabled: true,
			Color:   true,
		},
		Random: RandomConfig{
			Seed:  1,
			Steps: 100,
		},
	}
}

// DefaultPath returns ~/.hop/lists.toml.
func DefaultPath() (string, error) {
	home, err := thunks.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine home directory")
	}
	return filepath.Join(home, UserConfigDirectory, DefaultConfigFile), nil
}

// Load reads the config at path on top of Default. An empty path means
// DefaultPath, which may be missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	c := Default()
	f, err := fileSystem.Open(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		logrus.Debugf("config: no file at %s, using defaults", path)
		return c, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open config %s", path)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(c)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if c.Random.Steps < 0 {
		return nil, errors.Errorf("config %s: random.steps must not be negative", path)
	}
	return c, nil
}

// Level parses LogLevel, falling back to DefaultLogLevel.
func (c *Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(combinators.Or(c.LogLevel, DefaultLogLevel))
	if err != nil {
		return logrus.InfoLevel, errors.Wrap(err, "config: log_level")
	}
	return lvl, nil
}
