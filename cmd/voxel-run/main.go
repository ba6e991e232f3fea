// Command voxel-run advances the voxel automaton without a window and prints
// population counts and a state digest. With -sweep it runs consecutive seeds
// on a worker pool.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"voxel-ca/internal/app"
	"voxel-ca/internal/core"
	"voxel-ca/internal/metrics"
	"voxel-ca/internal/sims/voxelca"
	"voxel-ca/internal/voxel"
)

func main() {
	logger := log.New(os.Stdout, "[voxel-run] ", log.LstdFlags)

	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Sweep > 0 {
		results, err := sweep(ctx, cfg, cfg.Sweep, cfg.Workers)
		for _, res := range results {
			logger.Print(res)
		}
		if err != nil {
			logger.Fatal(err)
		}
		return
	}

	res, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Print(res)
}

// simConfig translates the shared application config for a single seed.
func simConfig(cfg *app.Config, seed int64) voxelca.Config {
	return voxelca.Config{
		Seed:     seed,
		Scene:    cfg.Scene,
		LifeRule: cfg.LifeRule,
		View:     cfg.View,
		Layer:    cfg.Layer,
		Brush:    cfg.Brush,
	}
}

// run advances one world for cfg.Steps ticks, optionally paced and exported
// to Prometheus.
func run(ctx context.Context, cfg *app.Config, logger *log.Logger) (result, error) {
	sim, err := voxelca.NewWithConfig(simConfig(cfg, cfg.Seed))
	if err != nil {
		return result{}, err
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		sim.SetObserver(metrics.NewRecorder(reg))
		srv := metrics.Serve(cfg.MetricsAddr, reg)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Printf("metrics shutdown: %v", err)
			}
		}()
	}

	logger.Printf("scene=%s life_rule=%s seed=%d steps=%d paced=%t", cfg.Scene, cfg.LifeRule, cfg.Seed, cfg.Steps, cfg.Paced)
	start := time.Now()
	if cfg.Paced {
		err = stepPaced(ctx, sim, cfg.Steps, core.NewFixedStep(cfg.TPS))
	} else {
		err = stepFree(ctx, sim, cfg.Steps)
	}
	return summarize(sim, time.Since(start)), err
}

func stepFree(ctx context.Context, sim *voxelca.Sim, steps int) error {
	for i := 0; i < steps; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		sim.Step()
	}
	return nil
}

func stepPaced(ctx context.Context, sim *voxelca.Sim, steps int, clock *core.FixedStep) error {
	poll := clock.Step() / 4
	if poll <= 0 {
		poll = time.Millisecond
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	done := 0
	for done < steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for done < steps && clock.ShouldStep() {
				sim.Step()
				done++
			}
		}
	}
	return nil
}

func summarize(sim *voxelca.Sim, elapsed time.Duration) result {
	counts := sim.Counts()
	return result{
		Seed:    sim.Seed(),
		Ticks:   sim.Tick(),
		Sand:    counts[voxel.Sand],
		Water:   counts[voxel.Water],
		Life:    counts[voxel.Life],
		Digest:  sim.Digest(),
		Elapsed: elapsed,
	}
}
