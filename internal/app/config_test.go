package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-ca/internal/sims/voxelca"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "voxel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	t.Setenv(EnvConfig, "")
	path := writeYAML(t, "scene: pool\nseed: 9\ntps: 5\nlife_rule: moore\n")

	cfg, err := Load(newFlagSet(), []string{"-config", path, "-seed", "11"})
	require.NoError(t, err)
	assert.Equal(t, "pool", cfg.Scene)
	assert.Equal(t, 5, cfg.TPS)
	assert.Equal(t, "moore", cfg.LifeRule)
	assert.Equal(t, int64(11), cfg.Seed, "flag beats file")
	assert.Equal(t, 10, cfg.Scale, "default survives when neither sets it")
}

func TestLoadReadsEnvironment(t *testing.T) {
	path := writeYAML(t, "view: top\nlayer: 7\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "top", cfg.View)
	assert.Equal(t, 7, cfg.Layer)
}

func TestLoadErrors(t *testing.T) {
	t.Setenv(EnvConfig, "")

	_, err := Load(newFlagSet(), []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeYAML(t, "tps: [1, 2]\n")
	_, err = Load(newFlagSet(), []string{"-config", bad})
	assert.Error(t, err)

	_, err = Load(newFlagSet(), []string{"-scale", "0", "-workers", "0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale")
	assert.Contains(t, err.Error(), "workers")

	_, err = Load(newFlagSet(), []string{"-nope"})
	assert.Error(t, err)
}

func TestSimOptions(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = -3
	cfg.Layer = 12
	opts := cfg.SimOptions()
	assert.Equal(t, map[string]string{
		"seed":      "-3",
		"scene":     "sandpile",
		"life_rule": "axis",
		"view":      "slice",
		"layer":     "12",
		"brush":     "sand",
	}, opts)
}

func TestDefaultsMatchSim(t *testing.T) {
	opts := NewConfig().SimOptions()
	parsed, err := voxelca.ParseOptions(opts)
	require.NoError(t, err)
	assert.Equal(t, voxelca.DefaultConfig(), parsed)

	// The window opens on the same world a bare voxelca.New builds.
	sim, err := voxelca.NewWithConfig(parsed)
	require.NoError(t, err)
	assert.Equal(t, voxelca.New().Counts(), sim.Counts())
}
