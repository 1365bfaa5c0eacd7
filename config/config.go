package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

import (
	"github.com/BurntSushi/toml"
)

import (
	"github.com/timtadh/fim/miners"
)

type Config struct {
	Output     string   `toml:"output"`
	MinSupport float64  `toml:"support"`
	Miner      string   `toml:"miner"`
	Loader     string   `toml:"loader"`
	SkipLog    []string `toml:"skip-log"`
}

// UnknownKeyError lists the keys of a config file that do not name a
// setting.
type UnknownKeyError struct {
	Path string
	Keys []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown keys in %v: %v", e.Path, strings.Join(e.Keys, ", "))
}

// Default is the configuration used when neither a file nor a flag says
// otherwise.
func Default() *Config {
	return &Config{
		MinSupport: -1,
		Loader:     "string",
	}
}

// Load reads a TOML file over the defaults.
//
//	output = "/tmp/fim"
//	support = 0.4
//	miner = "eclat"
//	loader = "string"
//	skip-log = ["DEBUG"]
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, &UnknownKeyError{Path: path, Keys: keys}
	}
	return c, nil
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// Validate checks the threshold and, when a miner is named, that it is one of
// names.
func (c *Config) Validate(names []string) error {
	if err := miners.CheckThreshold(c.MinSupport); err != nil {
		return err
	}
	if c.Miner != "" && !slices.Contains(names, c.Miner) {
		return &miners.UnknownMinerError{Name: c.Miner}
	}
	switch c.Loader {
	case "string", "int":
	default:
		return fmt.Errorf("unknown loader '%v' (expected string or int)", c.Loader)
	}
	return nil
}
