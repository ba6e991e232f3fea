package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"voxel-ca/internal/app"
	"voxel-ca/internal/sims/voxelca"
)

type result struct {
	Seed    int64
	Ticks   uint64
	Sand    int
	Water   int
	Life    int
	Digest  uint64
	Elapsed time.Duration
	Err     error
}

func (r result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("seed=%d error: %v", r.Seed, r.Err)
	}
	return fmt.Sprintf("seed=%d ticks=%d sand=%d water=%d life=%d digest=%016x elapsed=%s",
		r.Seed, r.Ticks, r.Sand, r.Water, r.Life, r.Digest, r.Elapsed.Round(time.Millisecond))
}

// sweep runs count consecutive seeds starting at cfg.Seed, each in its own
// world, and returns the results ordered by seed. Every run is unpaced.
func sweep(ctx context.Context, cfg *app.Config, count, workers int) ([]result, error) {
	if workers <= 0 {
		workers = 1
	}
	if _, err := voxelca.NewWithConfig(simConfig(cfg, cfg.Seed)); err != nil {
		return nil, err
	}

	jobs := make(chan int64)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < count; i++ {
			select {
			case jobs <- cfg.Seed + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all, ctx.Err()
}

func runSeed(ctx context.Context, cfg *app.Config, seed int64) result {
	sim, err := voxelca.NewWithConfig(simConfig(cfg, seed))
	if err != nil {
		return result{Seed: seed, Err: err}
	}
	start := time.Now()
	err = stepFree(ctx, sim, cfg.Steps)
	res := summarize(sim, time.Since(start))
	res.Err = err
	return res
}
