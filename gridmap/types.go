// Package gridmap defines core types, options, and sentinel errors
// for the gridmap package of github.com/katalvlaran/gridroute.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost that is negative, NaN or infinite.
	ErrNegativeCost = errors.New("gridmap: terrain cost must be finite and non-negative")
	// ErrOutOfBounds indicates a registry coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
	// ErrDuplicateCoordinate indicates a coordinate listed twice in one registry.
	ErrDuplicateCoordinate = errors.New("gridmap: duplicate coordinate")
	// ErrInvalidMapFile indicates a malformed YAML map document.
	ErrInvalidMapFile = errors.New("gridmap: invalid map file")
)

// Coordinate identifies a grid cell by row and column.
// It is a comparable value and may be used directly as a map key.
type Coordinate struct {
	Row, Col int
}

// At is shorthand for Coordinate{Row: r, Col: c}.
func At(r, c int) Coordinate {
	return Coordinate{Row: r, Col: c}
}

// String renders the coordinate as "(r,c)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol| between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Adjacent reports whether o is one of the four orthogonal neighbors of c.
func (c Coordinate) Adjacent(o Coordinate) bool {
	return c.Manhattan(o) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cell holds the terrain data of a single grid position.
type Cell struct {
	Cost       float64 // cost charged for entering the cell
	Impassable bool    // cell can never be entered
}

// Wall is an impassable Cell.
var Wall = Cell{Impassable: true}

// offsets lists the 4-connected neighbor deltas in N, E, S, W order.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Options holds the coordinate registries supplied at construction.
type Options struct {
	Origins      []Coordinate
	Destinations []Coordinate
	Waypoints    []Coordinate
}

// Option configures a Map under construction.
type Option func(*Options)

// WithOrigins appends candidate origin coordinates, in order.
func WithOrigins(cs ...Coordinate) Option {
	return func(o *Options) {
		o.Origins = append(o.Origins, cs...)
	}
}

// WithDestinations appends candidate destination coordinates, in order.
func WithDestinations(cs ...Coordinate) Option {
	return func(o *Options) {
		o.Destinations = append(o.Destinations, cs...)
	}
}

// WithWaypoints appends mandatory waypoint coordinates, in order.
func WithWaypoints(cs ...Coordinate) Option {
	return func(o *Options) {
		o.Waypoints = append(o.Waypoints, cs...)
	}
}

// Map is an immutable rows×cols terrain grid with origin, destination and
// waypoint registries. cells is stored row-major: cells[r*cols+c].
type Map struct {
	rows, cols   int
	cells        []Cell
	origins      []Coordinate
	destinations []Coordinate
	waypoints    []Coordinate
}
