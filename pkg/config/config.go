// Package config loads the optional per-project configuration.
//
// Settings come from three layers, later ones winning:
//
//  1. built-in defaults ([Default])
//  2. FileName in the project root, in TOML
//  3. environment variables (CLASSGRAPH_*), after loading .env from the
//     working directory
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	errs "github.com/matzehuels/classgraph/pkg/errors"
	"github.com/matzehuels/classgraph/pkg/graph"
	"github.com/matzehuels/classgraph/pkg/scan"
)

// FileName is the configuration file looked up in the project root.
const FileName = ".classgraph.toml"

// Output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// DefaultOutput is where the document is written when nothing else is
// configured. Relative paths resolve against the working directory.
const DefaultOutput = "classgraph.json"

// Environment overrides.
const (
	EnvOutput  = "CLASSGRAPH_OUTPUT"
	EnvFormat  = "CLASSGRAPH_FORMAT"
	EnvWorkers = "CLASSGRAPH_WORKERS"
	EnvNoCache = "CLASSGRAPH_NO_CACHE"
)

// Config holds the settings of one analysis run.
type Config struct {
	Output      string   `toml:"output"`
	Format      string   `toml:"format"`
	Workers     int      `toml:"workers"` // 0 = GOMAXPROCS
	Ignore      []string `toml:"ignore"`
	TestMarkers []string `toml:"test_markers"`
	Weight      Weight   `toml:"weight"`
	Cache       Cache    `toml:"cache"`
}

// Weight configures node weights.
type Weight struct {
	Base          int `toml:"base"`
	PerDependency int `toml:"per_dependency"`
}

// Cache configures the scan cache.
type Cache struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:      DefaultOutput,
		Format:      FormatJSON,
		Ignore:      append([]string(nil), scan.DefaultIgnore...),
		TestMarkers: append([]string(nil), graph.DefaultTestMarkers...),
		Weight:      Weight{Base: graph.BaseWeight, PerDependency: graph.DefaultPerDependency},
		Cache:       Cache{Enabled: true},
	}
}

// Load builds the configuration for the project rooted at root. A missing
// config file or .env is not an error; an unparsable file or an invalid
// value is an INVALID_CONFIG error.
func Load(root string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read %s", path)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s must be an integer", EnvWorkers)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvNoCache); v != "" {
		off, err := strconv.ParseBool(v)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInvalidConfig, err, "%s must be a boolean", EnvNoCache)
		}
		c.Cache.Enabled = !off
	}
	return nil
}

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (c *Config) Validate() error {
	if c.Format != FormatJSON && c.Format != FormatDOT {
		return errs.New(errs.ErrCodeInvalidConfig, "format must be %q or %q, got %q", FormatJSON, FormatDOT, c.Format)
	}
	if err := errs.ValidateOutputPath(c.Output); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidConfig, err, "output")
	}
	if c.Workers < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Weight.Base <= 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "weight.base must be positive, got %d", c.Weight.Base)
	}
	if c.Weight.PerDependency < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "weight.per_dependency must not be negative, got %d", c.Weight.PerDependency)
	}
	for _, m := range c.TestMarkers {
		if err := errs.ValidateMarker(m); err != nil {
			return err
		}
	}
	return nil
}

// WeightFunc returns the class weight function for c.
func (c *Config) WeightFunc() graph.WeightFunc {
	return graph.LinearWeight(c.Weight.Base, c.Weight.PerDependency)
}
