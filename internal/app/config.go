package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"voxel-ca/internal/sims/voxelca"
)

// EnvConfig names the environment variable consulted when -config is unset.
const EnvConfig = "VOXELCA_CONFIG"

// Config represents the command-line parameters for the application. Values
// resolve as defaults, then the YAML file, then explicit flags.
type Config struct {
	Sim   string `yaml:"sim"`
	Scale int    `yaml:"scale"`
	TPS   int    `yaml:"tps"`
	Seed  int64  `yaml:"seed"`

	Scene    string `yaml:"scene"`
	LifeRule string `yaml:"life_rule"`
	View     string `yaml:"view"`
	Layer    int    `yaml:"layer"`
	Brush    string `yaml:"brush"`

	Steps       int    `yaml:"steps"`
	Paced       bool   `yaml:"paced"`
	MetricsAddr string `yaml:"metrics_addr"`
	Sweep       int    `yaml:"sweep"`
	Workers     int    `yaml:"workers"`
}

// NewConfig returns a Config populated with sensible defaults. Simulation
// fields come from voxelca.DefaultConfig.
func NewConfig() *Config {
	sim := voxelca.DefaultConfig()
	return &Config{
		Sim:      "voxel",
		Scale:    10,
		TPS:      20,
		Seed:     sim.Seed,
		Scene:    sim.Scene,
		LifeRule: sim.LifeRule,
		View:     sim.View,
		Layer:    sim.Layer,
		Brush:    sim.Brush,
		Steps:    200,
		Workers:  4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Scene, "scene", c.Scene, "initial scene")
	fs.StringVar(&c.LifeRule, "life_rule", c.LifeRule, "life rule variant: axis or moore")
	fs.StringVar(&c.View, "view", c.View, "display projection: slice or top")
	fs.IntVar(&c.Layer, "layer", c.Layer, "z layer shown by the slice view")
	fs.StringVar(&c.Brush, "brush", c.Brush, "material placed by clicks")
	fs.IntVar(&c.Steps, "steps", c.Steps, "ticks to run in headless mode")
	fs.BoolVar(&c.Paced, "paced", c.Paced, "pace headless runs at -tps")
	fs.StringVar(&c.MetricsAddr, "metrics_addr", c.MetricsAddr, "serve Prometheus metrics on this address")
	fs.IntVar(&c.Sweep, "sweep", c.Sweep, "run this many consecutive seeds in parallel")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel workers for -sweep")
}

// LoadFile overlays the YAML document at path onto c. Keys missing from the
// document keep their current values.
func (c *Config) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate checks ranges that do not depend on the chosen simulation.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Sim) == "" {
		errs = append(errs, errors.New("sim must be set"))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	if c.TPS < 0 {
		errs = append(errs, fmt.Errorf("tps must not be negative, got %d", c.TPS))
	}
	if c.Steps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", c.Steps))
	}
	if c.Sweep < 0 {
		errs = append(errs, fmt.Errorf("sweep must not be negative, got %d", c.Sweep))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	return errors.Join(errs...)
}

// SimOptions renders the simulation-facing fields as the string map passed to
// a core.Factory.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"seed":      strconv.FormatInt(c.Seed, 10),
		"scene":     c.Scene,
		"life_rule": c.LifeRule,
		"view":      c.View,
		"layer":     strconv.Itoa(c.Layer),
		"brush":     c.Brush,
	}
}

// Load binds a fresh Config to fs and resolves it from args. The YAML file is
// taken from -config, falling back to $VOXELCA_CONFIG.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	path := os.Getenv(EnvConfig)
	fs.StringVar(&path, "config", path, "YAML config file (env "+EnvConfig+")")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		// Parse again so explicit flags win over the file.
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
