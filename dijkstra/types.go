package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil Grid was passed to Compute.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrInvalidSource indicates a source outside the grid or on an impassable cell.
	ErrInvalidSource = errors.New("dijkstra: source must be an in-bounds passable cell")

	// ErrNegativeCost indicates a negative or NaN terrain cost.
	ErrNegativeCost = errors.New("dijkstra: negative terrain cost encountered")

	// ErrUnreachable indicates a target absent from the table.
	ErrUnreachable = errors.New("dijkstra: target not reachable from source")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Grid is the read-only terrain view consumed by Compute.
// *gridmap.Map satisfies it.
type Grid interface {
	Size() (rows, cols int)
	CellAt(r, c int) gridmap.Cell
}

// Options configures a single Compute call.
//
// Ctx     – checked every cancelEvery finalizations; nil means Background.
// MaxCost – cells whose cheapest cost exceeds it are not finalized.
//
//	Must be ≥ 0. Default is +Inf (explore everything reachable).
type Options struct {
	Ctx     context.Context
	MaxCost float64
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// WithContext makes Compute abort with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithMaxCost bounds exploration to cells with cost ≤ max.
// Negative or NaN values panic with ErrBadMaxCost when the option is built.
func WithMaxCost(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxCost.Error())
	}
	return func(o *Options) {
		o.MaxCost = max
	}
}

// DefaultOptions returns Options with no cost cap and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxCost: math.Inf(1),
	}
}

// cancelEvery is how many finalizations pass between context checks.
const cancelEvery = 1024

// entry is one cell record of a Table.
type entry struct {
	cost    float64
	prev    int // row-major index of the predecessor, -1 for none
	reached bool
}

// Table holds the result of one Compute run: cumulative cost and
// predecessor for every cell reached from Source. It is read-only.
type Table struct {
	source     gridmap.Coordinate
	rows, cols int
	cells      []entry
	finalized  int
}
