// Package gridmap provides the terrain Map consumed by the routing engine.
//
// A Map is built once from a rectangular [][]Cell and never mutated, so a
// single instance may be shared by any number of concurrent searches.
package gridmap

import (
	"fmt"
	"math"
)

// New constructs a Map from a non-empty, rectangular 2D slice of cells.
// It deep-copies the input to ensure immutability.
//
// Validation order:
//  1. ErrEmptyGrid if cells has no rows or no columns.
//  2. ErrNonRectangular if any row length differs.
//  3. ErrNegativeCost if a cell cost is negative, NaN or +Inf.
//  4. ErrOutOfBounds / ErrDuplicateCoordinate for each registry.
//
// Terminals on impassable cells are accepted; the routing layer decides
// what they mean.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell, opts ...Option) (*Map, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	flat := make([]Cell, 0, rows*cols)
	for r, row := range cells {
		for c, cell := range row {
			if cell.Cost < 0 || math.IsNaN(cell.Cost) || math.IsInf(cell.Cost, 0) {
				return nil, fmt.Errorf("%w: cell %v cost=%v", ErrNegativeCost, At(r, c), cell.Cost)
			}
			flat = append(flat, cell)
		}
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Map{rows: rows, cols: cols, cells: flat}
	var err error
	if m.origins, err = m.registry("origin", cfg.Origins); err != nil {
		return nil, err
	}
	if m.destinations, err = m.registry("destination", cfg.Destinations); err != nil {
		return nil, err
	}
	if m.waypoints, err = m.registry("waypoint", cfg.Waypoints); err != nil {
		return nil, err
	}

	return m, nil
}

// registry validates and copies one coordinate registry.
func (m *Map) registry(kind string, cs []Coordinate) ([]Coordinate, error) {
	out := make([]Coordinate, 0, len(cs))
	seen := make(map[Coordinate]struct{}, len(cs))
	for _, c := range cs {
		if !m.InBounds(c) {
			return nil, fmt.Errorf("%w: %s %v outside %dx%d grid", ErrOutOfBounds, kind, c, m.rows, m.cols)
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: %s %v", ErrDuplicateCoordinate, kind, c)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}

// Uniform returns a rows×cols grid of passable cells with the given cost,
// ready to be patched and handed to New.
func Uniform(rows, cols int, cost float64) [][]Cell {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
		for c := range cells[r] {
			cells[r][c] = Cell{Cost: cost}
		}
	}

	return cells
}

// Size returns the grid dimensions.
func (m *Map) Size() (rows, cols int) {
	return m.rows, m.cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Map) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < m.rows && c.Col >= 0 && c.Col < m.cols
}

// CellAt returns the cell at (r, c). Out-of-bounds positions report an
// impassable cell.
func (m *Map) CellAt(r, c int) Cell {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return Wall
	}
	return m.cells[r*m.cols+c]
}

// Passable reports whether c is in bounds and not impassable.
func (m *Map) Passable(c Coordinate) bool {
	return m.InBounds(c) && !m.cells[m.Index(c)].Impassable
}

// Index maps c to its row-major index: Row*cols + Col.
// Complexity: O(1).
func (m *Map) Index(c Coordinate) int {
	return c.Row*m.cols + c.Col
}

// Coordinate converts a row-major index back to a Coordinate.
// Complexity: O(1).
func (m *Map) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / m.cols, Col: idx % m.cols}
}

// Neighbors appends the in-bounds 4-connected neighbors of c to dst in
// N, E, S, W order and returns the extended slice. Passability is not
// checked.
func (m *Map) Neighbors(c Coordinate, dst []Coordinate) []Coordinate {
	return AppendNeighbors(dst, c, m.rows, m.cols)
}

// AppendNeighbors appends the 4-connected neighbors of c that fall inside a
// rows×cols grid to dst, in N, E, S, W order.
func AppendNeighbors(dst []Coordinate, c Coordinate, rows, cols int) []Coordinate {
	for _, d := range offsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if r < 0 || r >= rows || col < 0 || col >= cols {
			continue
		}
		dst = append(dst, Coordinate{Row: r, Col: col})
	}

	return dst
}

// Origins returns a copy of the origin registry in insertion order.
func (m *Map) Origins() []Coordinate { return clone(m.origins) }

// Destinations returns a copy of the destination registry in insertion order.
func (m *Map) Destinations() []Coordinate { return clone(m.destinations) }

// Waypoints returns a copy of the waypoint registry in insertion order.
func (m *Map) Waypoints() []Coordinate { return clone(m.waypoints) }

func clone(cs []Coordinate) []Coordinate {
	out := make([]Coordinate, len(cs))
	copy(out, cs)
	return out
}
