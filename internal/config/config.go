package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/wobbly/internal/animate"
	"github.com/san-kum/wobbly/internal/harmonic"
)

const (
	DefaultWobbles   = harmonic.StandardWobbles
	DefaultOvershoot = harmonic.StandardOvershoot
	DefaultPoints    = 200
	DefaultDuration  = 1.0
	DefaultFPS       = 60
	DefaultDataDir   = ".wobbly"
	DefaultDatabase  = "catalog.db"
	DefaultLogLevel  = "info"
	DefaultCacheSize = harmonic.DefaultCacheSize
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Curve    CurveConfig    `yaml:"curve" toml:"curve"`
	Solver   SolverConfig   `yaml:"solver" toml:"solver"`
	Sampling SamplingConfig `yaml:"sampling" toml:"sampling"`
	DataDir  string         `yaml:"data_dir" toml:"data_dir"`
	Database string         `yaml:"database" toml:"database"`
	LogLevel string         `yaml:"log_level" toml:"log_level"`
}

type CurveConfig struct {
	Wobbles   float64 `yaml:"wobbles" toml:"wobbles"`
	Overshoot float64 `yaml:"overshoot" toml:"overshoot"`
	Reverse   bool    `yaml:"reverse" toml:"reverse"`
}

type SolverConfig struct {
	Step          float64 `yaml:"step" toml:"step"`
	MaxIterations int     `yaml:"max_iterations" toml:"max_iterations"`
	Policy        string  `yaml:"policy" toml:"policy"`
	CacheSize     int     `yaml:"cache_size" toml:"cache_size"`
}

type SamplingConfig struct {
	Points   int     `yaml:"points" toml:"points"`
	Duration float64 `yaml:"duration" toml:"duration"`
	FPS      int     `yaml:"fps" toml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Curve: CurveConfig{
			Wobbles:   DefaultWobbles,
			Overshoot: DefaultOvershoot,
		},
		Solver: SolverConfig{
			Step:          harmonic.DefaultStep,
			MaxIterations: harmonic.DefaultMaxIterations,
			Policy:        harmonic.PolicyConsistent.String(),
			CacheSize:     DefaultCacheSize,
		},
		Sampling: SamplingConfig{
			Points:   DefaultPoints,
			Duration: DefaultDuration,
			FPS:      DefaultFPS,
		},
		DataDir:  DefaultDataDir,
		Database: DefaultDatabase,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML or TOML file over the defaults. The format follows the extension.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	case ".yaml", ".yml", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(f).Encode(cfg); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Request().Validate(); err != nil {
		return err
	}
	if _, err := harmonic.ParsePolicy(c.Solver.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Solver.Step < 0 || c.Solver.MaxIterations < 0 {
		return fmt.Errorf("%w: solver step and max_iterations must not be negative", ErrInvalidConfig)
	}
	if c.Sampling.Points < 2 {
		return fmt.Errorf("%w: sampling points must be at least 2, got %d", ErrInvalidConfig, c.Sampling.Points)
	}
	if c.Sampling.Duration <= 0 || c.Sampling.FPS <= 0 {
		return fmt.Errorf("%w: sampling duration and fps must be positive", ErrInvalidConfig)
	}
	if c.Sampling.FPS > animate.MaxFPS {
		return fmt.Errorf("%w: sampling fps must not exceed %d, got %d", ErrInvalidConfig, animate.MaxFPS, c.Sampling.FPS)
	}
	return nil
}

func (c *Config) Request() harmonic.Request {
	return harmonic.Request{Wobbles: c.Curve.Wobbles, Overshoot: c.Curve.Overshoot}
}

func (c *Config) HarmonicSolver() (harmonic.Solver, error) {
	policy, err := harmonic.ParsePolicy(c.Solver.Policy)
	if err != nil {
		return harmonic.Solver{}, err
	}
	return harmonic.Solver{
		Step:          c.Solver.Step,
		MaxIterations: c.Solver.MaxIterations,
		Policy:        policy,
	}, nil
}

// DatabasePath resolves the catalog database relative to the data directory.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(c.DataDir, c.Database)
}
