package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridpath/internal/server"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// Cache backends accepted in [cache] backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

const configFileName = "config.toml"

// Config is the optional gridpath.toml user configuration. Command-line
// flags override it; it overrides the built-in defaults.
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[solve]
//	algorithms = ["dynamic", "greedy"]
//
//	[render]
//	cell_size = 32
//	formats = ["svg", "png"]
//
//	[serve]
//	addr = ":8080"
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Solve  SolveConfig  `toml:"solve"`
	Render RenderConfig `toml:"render"`
	Serve  ServeConfig  `toml:"serve"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	RedisURL string `toml:"redis_url"`
}

// SolveConfig holds solve defaults.
type SolveConfig struct {
	Algorithms []string `toml:"algorithms"`
}

// RenderConfig holds render defaults.
type RenderConfig struct {
	CellSize float64  `toml:"cell_size"`
	Formats  []string `toml:"formats"`
}

// ServeConfig holds HTTP server defaults.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: BackendFile},
		Solve:  SolveConfig{Algorithms: append([]string(nil), pipeline.DefaultAlgorithms...)},
		Render: RenderConfig{CellSize: pipeline.DefaultCellSize, Formats: []string{pipeline.FormatSVG}},
		Serve:  ServeConfig{Addr: server.DefaultAddr},
	}
}

// LoadConfig reads the config at path, or at the default location when path
// is empty. A missing default file is not an error; a missing explicit file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be fixed up by defaults.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "":
		c.Cache.Backend = BackendFile
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New("cache backend redis requires redis_url")
		}
	default:
		return fmt.Errorf("unknown cache backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if err := pipeline.ValidateAlgorithms(c.Solve.Algorithms); err != nil {
		return err
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if c.Render.CellSize < 0 {
		return fmt.Errorf("render cell_size must be positive, got %g", c.Render.CellSize)
	}
	return nil
}
