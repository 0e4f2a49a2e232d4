// Command gridroute loads a YAML terrain map, finds the cheapest
// origin → waypoints → destination route and prints it.
//
// Usage:
//
//	gridroute -map examples/valley.yaml [-png out.png] [-scale 24]
//	          [-strategy auto|perm|heldkarp] [-timeout 10s] [-workers N]
//	          [-no-prune] [-cache routes.db]
//
// Flags default to GRIDROUTE_* environment variables, which may also come
// from a .env file in the working directory.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridroute/gridmap"
	"github.com/katalvlaran/gridroute/render"
	"github.com/katalvlaran/gridroute/route"
	"github.com/katalvlaran/gridroute/routecache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Printf("op=gridroute err=%v", err)
		stop()
		os.Exit(1)
	}
}

// run is the whole program minus process setup, so tests can drive it.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	doc, err := os.ReadFile(cfg.MapPath)
	if err != nil {
		return fmt.Errorf("read map: %w", err)
	}
	m, err := gridmap.Load(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("load map %s: %w", cfg.MapPath, err)
	}
	rows, cols := m.Size()
	log.Printf("op=map.load path=%s rows=%d cols=%d origins=%d waypoints=%d destinations=%d",
		cfg.MapPath, rows, cols, len(m.Origins()), len(m.Waypoints()), len(m.Destinations()))

	var (
		cache *routecache.Cache
		key   string
	)
	if cfg.CachePath != "" {
		if cache, err = routecache.Open(cfg.CachePath); err != nil {
			return err
		}
		defer cache.Close()
		key = routecache.Key(doc, cfg.Strategy)
	}

	res, cached, err := solve(ctx, cfg, m, cache, key)
	if err != nil {
		return err
	}

	fmt.Fprint(stdout, render.ASCII(m, res.Path))
	fmt.Fprintf(stdout, "path: %v\n", res.Path)
	fmt.Fprintf(stdout, "cost: %g\n", res.Cost)
	fmt.Fprintf(stdout, "order: %v\n", res.Order)
	fmt.Fprintf(stdout, "explored: %d\n", res.Explored)
	fmt.Fprintf(stdout, "strategy: %s\n", res.Strategy)
	if cached {
		fmt.Fprintln(stdout, "cached: true")
	}
	if res.Partial {
		fmt.Fprintln(stdout, "partial: true (time limit hit, route may not be optimal)")
	}

	if cfg.PNGPath != "" {
		if err := writePNG(cfg, m, res.Path); err != nil {
			return err
		}
	}

	return nil
}

// solve returns the route from cache when possible, otherwise searches
// and stores the fresh result.
func solve(ctx context.Context, cfg config, m *gridmap.Map, cache *routecache.Cache, key string) (res route.Result, cached bool, err error) {
	if cache != nil {
		hit, ok, err := cache.Get(ctx, key)
		if err != nil {
			return route.Result{}, false, err
		}
		if ok {
			log.Printf("op=cache.get key=%.12s hit=true", key)
			return hit, true, nil
		}
		log.Printf("op=cache.get key=%.12s hit=false", key)
	}

	f, err := route.New(m, cfg.routeOptions(ctx)...)
	if err != nil {
		return route.Result{}, false, err
	}

	done := timed("route.find")
	res, err = f.Find()
	done(&err)
	if err != nil {
		return route.Result{}, false, err
	}
	log.Printf("op=route.find cost=%g explored=%d chains=%d strategy=%s partial=%t",
		res.Cost, res.Explored, res.Chains, res.Strategy, res.Partial)

	if cache != nil {
		if err := cache.Put(ctx, key, res); err != nil {
			return route.Result{}, false, err
		}
	}

	return res, false, nil
}

func writePNG(cfg config, m *gridmap.Map, path []gridmap.Coordinate) (err error) {
	defer timed("render.png")(&err)

	return render.PNG(m, path, cfg.PNGPath, render.WithScale(cfg.Scale))
}

// timed logs the duration of op, and its error if any, when the returned
// func runs.
func timed(op string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			log.Printf("op=%s dur=%dms err=%v", op, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("op=%s dur=%dms", op, dur.Milliseconds())
	}
}
