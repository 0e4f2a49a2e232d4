package route

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridmap"
)

// Sentinel errors returned by the route assembler.
var (
	// ErrNilMap indicates New was called with a nil Map.
	ErrNilMap = errors.New("route: map is nil")

	// ErrNoOriginOrDestination indicates an empty origin or destination registry.
	ErrNoOriginOrDestination = errors.New("route: map needs at least one origin and one destination")

	// ErrInvalidSource indicates an origin or waypoint outside the grid or on
	// an impassable cell. It is the same value as dijkstra.ErrInvalidSource.
	ErrInvalidSource = dijkstra.ErrInvalidSource

	// ErrUnreachable indicates that no origin/waypoints/destination chain is
	// fully connected.
	ErrUnreachable = errors.New("route: no reachable origin/destination chain")

	// ErrTimeLimit indicates the deadline expired before a valid chain was found.
	ErrTimeLimit = errors.New("route: time limit exceeded")

	// ErrTooManyWaypoints indicates a waypoint count beyond the Held–Karp table limit.
	ErrTooManyWaypoints = errors.New("route: too many waypoints for Held-Karp")
)

// Map is the read-only collaborator consumed by Finder.
// *gridmap.Map satisfies it.
type Map interface {
	dijkstra.Grid
	Origins() []gridmap.Coordinate
	Destinations() []gridmap.Coordinate
	Waypoints() []gridmap.Coordinate
}

// Strategy selects the waypoint-ordering search.
type Strategy int

const (
	// Auto uses Permutations up to autoPermutationLimit waypoints, HeldKarp above.
	Auto Strategy = iota
	// Permutations enumerates every waypoint ordering (|W|! chains per pair).
	Permutations
	// HeldKarp runs the subset dynamic program.
	HeldKarp
)

// autoPermutationLimit is the largest waypoint count Auto enumerates.
const autoPermutationLimit = 8

// maxHeldKarpWaypoints bounds the 2^W·W tables.
const maxHeldKarpWaypoints = 20

// checkEvery is how many chains (or DP masks) pass between deadline checks.
const checkEvery = 1024

// String returns the flag spelling of s.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case Permutations:
		return "perm"
	case HeldKarp:
		return "heldkarp"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "perm"/"permutations" and "heldkarp"/"held-karp"
// (case-insensitive) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "perm", "permutations":
		return Permutations, nil
	case "heldkarp", "held-karp", "hk":
		return HeldKarp, nil
	}
	return Auto, fmt.Errorf("route: unknown strategy %q", s)
}

// Options configures a Finder.
//
// Strategy  – waypoint-ordering search (Auto by default).
// Prune     – abandon chains whose partial sum reaches the incumbent (default true).
// Workers   – goroutines for SSSP runs and the per-origin search fan-out.
// Ctx       – cancellation for one Find call; nil means Background.
// TimeLimit – per-call wall-clock budget; 0 disables it.
type Options struct {
	Strategy  Strategy
	Prune     bool
	Workers   int
	Ctx       context.Context
	TimeLimit time.Duration
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns Auto strategy, pruning on, GOMAXPROCS workers and
// no deadline.
func DefaultOptions() Options {
	return Options{
		Strategy: Auto,
		Prune:    true,
		Workers:  runtime.GOMAXPROCS(0),
		Ctx:      context.Background(),
	}
}

// WithStrategy selects the waypoint-ordering search.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithPruning toggles early abandonment of chains that cannot improve on
// the incumbent. Disabling it never changes the selected chain.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Prune = on
	}
}

// WithWorkers sets the goroutine limit. n < 1 panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("route: Workers must be at least 1")
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithContext bounds each Find call by ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithTimeLimit bounds each Find call by d of wall-clock time.
// Negative durations panic.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("route: TimeLimit must be non-negative")
	}
	return func(o *Options) {
		o.TimeLimit = d
	}
}

// Result is the outcome of one Find call.
type Result struct {
	// Path runs from Origin through every waypoint, in Order, to Destination.
	// Shared segment boundaries appear once.
	Path []gridmap.Coordinate

	// Cost is the sum of entered-cell terrain costs along Path.
	Cost float64

	Origin      gridmap.Coordinate
	Destination gridmap.Coordinate
	Order       []gridmap.Coordinate // waypoints in visiting order

	// Explored counts distinct cells finalized by any SSSP run of this call.
	Explored int

	// Chains counts complete chains priced by Permutations, or DP states
	// filled by HeldKarp.
	Chains int

	// Partial is set when a deadline cut the enumeration short; Path is then
	// the best chain seen, not necessarily the optimum.
	Partial bool

	// Strategy is the search actually used (never Auto).
	Strategy Strategy
}
