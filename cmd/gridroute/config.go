package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/katalvlaran/gridroute/route"
)

// config is the resolved command line: flags over GRIDROUTE_* variables
// over built-in defaults.
type config struct {
	MapPath   string
	PNGPath   string
	CachePath string
	Scale     int
	Strategy  route.Strategy
	Timeout   time.Duration
	Workers   int
	NoPrune   bool
}

var errNoMap = errors.New("a map file is required (-map or GRIDROUTE_MAP)")

func parseConfig(args []string) (config, error) {
	var (
		cfg      config
		strategy string
		err      error
	)

	fs := flag.NewFlagSet("gridroute", flag.ContinueOnError)
	fs.StringVar(&cfg.MapPath, "map", getEnv("GRIDROUTE_MAP", ""), "YAML map file")
	fs.StringVar(&cfg.PNGPath, "png", getEnv("GRIDROUTE_PNG", ""), "write a PNG rendering to this file")
	fs.StringVar(&cfg.CachePath, "cache", getEnv("GRIDROUTE_CACHE", ""), "SQLite route cache file")
	fs.StringVar(&strategy, "strategy", getEnv("GRIDROUTE_STRATEGY", "auto"), "waypoint search: auto, perm or heldkarp")
	fs.BoolVar(&cfg.NoPrune, "no-prune", false, "disable branch pruning")

	scale, err := envInt("GRIDROUTE_SCALE", 24)
	if err != nil {
		return config{}, err
	}
	fs.IntVar(&cfg.Scale, "scale", scale, "PNG pixels per cell")

	workers, err := envInt("GRIDROUTE_WORKERS", runtime.GOMAXPROCS(0))
	if err != nil {
		return config{}, err
	}
	fs.IntVar(&cfg.Workers, "workers", workers, "goroutines for SSSP runs and search")

	timeout, err := envDuration("GRIDROUTE_TIMEOUT", 0)
	if err != nil {
		return config{}, err
	}
	fs.DurationVar(&cfg.Timeout, "timeout", timeout, "search time limit, 0 for none")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if cfg.MapPath == "" {
		return config{}, errNoMap
	}
	if cfg.Strategy, err = route.ParseStrategy(strategy); err != nil {
		return config{}, err
	}
	if cfg.Workers < 1 {
		return config{}, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Timeout < 0 {
		return config{}, fmt.Errorf("timeout must be non-negative, got %s", cfg.Timeout)
	}
	if cfg.Scale < 1 {
		return config{}, fmt.Errorf("scale must be at least 1, got %d", cfg.Scale)
	}

	return cfg, nil
}

// routeOptions translates cfg into Finder options bound to ctx.
func (cfg config) routeOptions(ctx context.Context) []route.Option {
	return []route.Option{
		route.WithContext(ctx),
		route.WithStrategy(cfg.Strategy),
		route.WithPruning(!cfg.NoPrune),
		route.WithWorkers(cfg.Workers),
		route.WithTimeLimit(cfg.Timeout),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
