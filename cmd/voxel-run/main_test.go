package main

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxel-ca/internal/app"
)

func testConfig() *app.Config {
	cfg := app.NewConfig()
	cfg.Scene = "life-random"
	cfg.LifeRule = "moore"
	cfg.Steps = 5
	return cfg
}

func TestRunIsReproducible(t *testing.T) {
	logger := log.New(io.Discard, "", 0)
	cfg := testConfig()

	a, err := run(context.Background(), cfg, logger)
	require.NoError(t, err)
	b, err := run(context.Background(), cfg, logger)
	require.NoError(t, err)

	assert.Equal(t, uint64(5), a.Ticks)
	assert.Equal(t, a.Digest, b.Digest)
	assert.Equal(t, a.Life, b.Life)
	assert.Contains(t, a.String(), "seed=42 ticks=5")
}

func TestRunRejectsUnknownScene(t *testing.T) {
	cfg := testConfig()
	cfg.Scene = "nowhere"
	_, err := run(context.Background(), cfg, log.New(io.Discard, "", 0))
	assert.Error(t, err)
}

func TestRunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.Steps = 1000
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := run(ctx, cfg, log.New(io.Discard, "", 0))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), res.Ticks)
}

func TestSweepMatchesSingleRuns(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 7

	results, err := sweep(context.Background(), cfg, 4, 3)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, res := range results {
		assert.Equal(t, int64(7+i), res.Seed)
		require.NoError(t, res.Err)

		single := *cfg
		single.Seed = res.Seed
		want, err := run(context.Background(), &single, log.New(io.Discard, "", 0))
		require.NoError(t, err)
		assert.Equal(t, want.Digest, res.Digest, "seed %d", res.Seed)
	}
	assert.NotEqual(t, results[0].Digest, results[1].Digest)
}

func TestSweepValidatesUpFront(t *testing.T) {
	cfg := testConfig()
	cfg.LifeRule = "hex"
	_, err := sweep(context.Background(), cfg, 2, 2)
	assert.Error(t, err)
}
