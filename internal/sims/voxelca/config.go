package voxelca

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"voxel-ca/internal/rules"
	"voxel-ca/internal/voxel"
)

// Config controls how the voxel world is seeded and displayed.
type Config struct {
	Seed     int64
	Scene    string
	LifeRule string
	View     string
	Layer    int
	Brush    string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:     42,
		Scene:    "sandpile",
		LifeRule: "axis",
		View:     "slice",
		Layer:    32,
		Brush:    "sand",
	}
}

// Validate reports every field that NewWithConfig would reject.
func (c Config) Validate() error {
	var errs []error
	if _, err := lookupScene(c.Scene); err != nil {
		errs = append(errs, err)
	}
	if _, err := rules.ParseLifeRule(c.LifeRule); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseView(c.View); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseBrush(c.Brush); err != nil {
		errs = append(errs, err)
	}
	if c.Layer < 0 || c.Layer >= voxel.N {
		errs = append(errs, fmt.Errorf("layer %d outside [0,%d)", c.Layer, voxel.N))
	}
	return errors.Join(errs...)
}

func parseBrush(name string) (voxel.Material, error) {
	m, err := voxel.ParseMaterial(name)
	if err != nil {
		return voxel.Empty, err
	}
	if m == voxel.Empty {
		return voxel.Empty, fmt.Errorf("brush must not be %v", m)
	}
	return m, nil
}

// ParseOptions reads a flag-style key/value map strictly: any unparseable or
// invalid value is an error.
func ParseOptions(opts map[string]string) (Config, error) {
	c := DefaultConfig()
	var errs []error
	if v, ok := opts["seed"]; ok {
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("seed: %w", err))
		} else {
			c.Seed = parsed
		}
	}
	if v, ok := opts["layer"]; ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("layer: %w", err))
		} else {
			c.Layer = parsed
		}
	}
	setName(&c.Scene, opts, "scene")
	setName(&c.LifeRule, opts, "life_rule")
	setName(&c.View, opts, "view")
	setName(&c.Brush, opts, "brush")
	if err := c.Validate(); err != nil {
		errs = append(errs, err)
	}
	return c, errors.Join(errs...)
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Each unparseable or invalid value keeps its default; the other fields are
// still applied.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	d := c
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["layer"]; ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 && parsed < voxel.N {
			c.Layer = parsed
		}
	}
	setName(&c.Scene, cfg, "scene")
	setName(&c.LifeRule, cfg, "life_rule")
	setName(&c.View, cfg, "view")
	setName(&c.Brush, cfg, "brush")

	if _, err := lookupScene(c.Scene); err != nil {
		c.Scene = d.Scene
	}
	if _, err := rules.ParseLifeRule(c.LifeRule); err != nil {
		c.LifeRule = d.LifeRule
	}
	if _, err := ParseView(c.View); err != nil {
		c.View = d.View
	}
	if _, err := parseBrush(c.Brush); err != nil {
		c.Brush = d.Brush
	}
	return c
}

func setName(dst *string, opts map[string]string, key string) {
	if v, ok := opts[key]; ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}
