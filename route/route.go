package route

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridmap"
)

// Finder searches a Map for the cheapest origin → waypoints → destination
// route. Apart from the diagnostic explored counter it holds no state
// between calls; every Find builds and owns its own cost tables.
type Finder struct {
	m        Map
	opts     Options
	explored atomic.Int64
}

// New returns a Finder over m configured by opts.
// m is only read, never modified.
func New(m Map, opts ...Option) (*Finder, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	return &Finder{m: m, opts: cfg}, nil
}

// FindPath returns the cheapest coordinate sequence, origin first and
// destination last. See Find for errors.
func (f *Finder) FindPath() ([]gridmap.Coordinate, error) {
	res, err := f.Find()
	if err != nil {
		return nil, err
	}
	return res.Path, nil
}

// CoordinatesExplored reports how many distinct cells were finalized by
// any SSSP run of the most recent Find call, 0 when that call failed
// before running one. Diagnostic only.
func (f *Finder) CoordinatesExplored() int {
	return int(f.explored.Load())
}

// Find computes the cheapest route and returns it with search diagnostics.
//
// Steps:
//  1. Validate registries (ErrNoOriginOrDestination, ErrInvalidSource).
//  2. Run dijkstra.Compute once per distinct origin and waypoint.
//  3. Prefetch leg costs into dense matrices.
//  4. Search chains with the configured Strategy.
//  5. Stitch the winning chain's segments.
//
// Returns ErrUnreachable when no chain is fully connected and an error
// wrapping ErrTimeLimit when the deadline hits before any valid chain.
func (f *Finder) Find() (Result, error) {
	f.explored.Store(0)

	ctx := f.opts.Ctx
	if f.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.opts.TimeLimit)
		defer cancel()
	}

	origins := f.m.Origins()
	dests := f.m.Destinations()
	wps := f.m.Waypoints()

	// 1) Fail fast before any SSSP run.
	if len(origins) == 0 || len(dests) == 0 {
		return Result{}, ErrNoOriginOrDestination
	}
	if err := f.validateSources(origins, wps); err != nil {
		return Result{}, err
	}
	strategy := resolveStrategy(f.opts.Strategy, len(wps))
	if strategy == HeldKarp && len(wps) > maxHeldKarpWaypoints {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyWaypoints, len(wps), maxHeldKarpWaypoints)
	}

	// 2) One cost table per distinct source.
	tables, err := f.computeTables(ctx, append(append([]gridmap.Coordinate{}, origins...), wps...))
	if err != nil {
		return Result{}, err
	}
	explored := countExplored(tables, f.m)
	f.explored.Store(int64(explored))

	// 3) Dense leg costs.
	lg := newLegs(tables, origins, wps, dests)

	// 4) Search.
	var (
		best    incumbent
		chains  int
		partial bool
	)
	switch strategy {
	case HeldKarp:
		best, chains, err = heldKarp(ctx, lg)
		if err != nil {
			return Result{}, err
		}
	default:
		best, chains, partial = f.searchPermutations(ctx, lg)
	}

	if !best.found {
		if partial {
			return Result{}, fmt.Errorf("%w: %w", ErrTimeLimit, ctx.Err())
		}
		return Result{}, ErrUnreachable
	}

	// 5) Stitch.
	order := make([]gridmap.Coordinate, len(best.order))
	for i, w := range best.order {
		order[i] = wps[w]
	}
	points := make([]gridmap.Coordinate, 0, len(order)+2)
	points = append(points, origins[best.origin])
	points = append(points, order...)
	points = append(points, dests[best.dest])

	path, err := stitch(tables, points)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path:        path,
		Cost:        best.cost,
		Origin:      origins[best.origin],
		Destination: dests[best.dest],
		Order:       order,
		Explored:    explored,
		Chains:      chains,
		Partial:     partial,
		Strategy:    strategy,
	}, nil
}

// resolveStrategy turns Auto into a concrete strategy for w waypoints.
func resolveStrategy(s Strategy, w int) Strategy {
	if s != Auto {
		return s
	}
	if w > autoPermutationLimit {
		return HeldKarp
	}
	return Permutations
}

// validateSources checks every origin and waypoint is an in-bounds passable
// cell. Destinations are not checked: a bad destination is just unreachable.
func (f *Finder) validateSources(origins, wps []gridmap.Coordinate) error {
	rows, cols := f.m.Size()
	check := func(kind string, c gridmap.Coordinate) error {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return fmt.Errorf("%w: %s %v outside %dx%d grid", ErrInvalidSource, kind, c, rows, cols)
		}
		if f.m.CellAt(c.Row, c.Col).Impassable {
			return fmt.Errorf("%w: %s %v is impassable", ErrInvalidSource, kind, c)
		}
		return nil
	}
	for _, o := range origins {
		if err := check("origin", o); err != nil {
			return err
		}
	}
	for _, w := range wps {
		if err := check("waypoint", w); err != nil {
			return err
		}
	}

	return nil
}

// computeTables runs one SSSP per distinct source on an errgroup limited to
// opts.Workers goroutines. Each goroutine writes only its own slot.
func (f *Finder) computeTables(ctx context.Context, sources []gridmap.Coordinate) (map[gridmap.Coordinate]*dijkstra.Table, error) {
	uniq := make([]gridmap.Coordinate, 0, len(sources))
	seen := make(map[gridmap.Coordinate]struct{}, len(sources))
	for _, s := range sources {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}

	results := make([]*dijkstra.Table, len(uniq))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.opts.Workers)
	for i, src := range uniq {
		g.Go(func() error {
			t, err := dijkstra.Compute(f.m, src, dijkstra.WithContext(gctx))
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeLimit, ctxErr)
		}
		return nil, err
	}

	tables := make(map[gridmap.Coordinate]*dijkstra.Table, len(uniq))
	for i, src := range uniq {
		tables[src] = results[i]
	}

	return tables, nil
}

// countExplored returns the number of distinct cells finalized by at least
// one table. A cell reached from several sources counts once.
func countExplored(tables map[gridmap.Coordinate]*dijkstra.Table, g dijkstra.Grid) int {
	rows, cols := g.Size()
	seen := make([]bool, rows*cols)
	n := 0
	for _, t := range tables {
		t.Each(func(c gridmap.Coordinate, _ float64) bool {
			if i := c.Row*cols + c.Col; !seen[i] {
				seen[i] = true
				n++
			}
			return true
		})
	}

	return n
}

// stitch concatenates the per-leg segments of points into one path,
// emitting each shared boundary coordinate once.
func stitch(tables map[gridmap.Coordinate]*dijkstra.Table, points []gridmap.Coordinate) ([]gridmap.Coordinate, error) {
	path := []gridmap.Coordinate{points[0]}
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		seg, err := tables[from].PathTo(to)
		if err != nil {
			return nil, fmt.Errorf("%w: leg %v → %v: %w", ErrUnreachable, from, to, err)
		}
		path = append(path, seg[1:]...)
	}

	return path, nil
}
